// Package manifest encodes and decodes the META-INF/MANIFEST.MF format used
// by JAR and DAR archives.
//
// A Manifest is an ordered list of sections separated by blank lines. Each
// section is an ordered set of "Name: value" attributes. Physical lines are
// limited to DefaultMaxLineLength bytes including the line terminator;
// longer attributes are folded onto continuation lines that start with a
// single space.
//
// Values decode to strings, except the exact literals "true" and "false"
// which decode to booleans. Both directions can be replaced with
// WithDecodeFunc and WithEncodeFunc.
package manifest
