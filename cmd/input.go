package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog/log"

	"github.com/noders-team/go-manifest/internal/convert"
	"github.com/noders-team/go-manifest/pkg/archive"
	"github.com/noders-team/go-manifest/pkg/manifest"
)

// readInput reads path, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func isZip(data []byte) bool {
	return bytes.HasPrefix(data, []byte("PK\x03\x04")) || bytes.HasPrefix(data, []byte("PK\x05\x06"))
}

// loadManifest decodes a manifest from a plain MANIFEST.MF or from an
// archive holding one.
func loadManifest(data []byte, opts ...manifest.Option) (manifest.Manifest, error) {
	if isZip(data) {
		log.Debug().Msg("input is a zip archive")
		return archive.DecodeReaderAt(bytes.NewReader(data), int64(len(data)), opts...)
	}
	return manifest.Unmarshal(data, opts...)
}

func loadManifestFile(path string, opts ...manifest.Option) (manifest.Manifest, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}
	m, err := loadManifest(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to decode manifest from '%s': %w", path, err)
	}
	log.Debug().Msgf("decoded %d sections from %s", len(m), path)
	return m, nil
}

// structuredFormat picks json or yaml from an explicit flag value or the
// file extension.
func structuredFormat(format, path string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return "yaml", nil
		default:
			return "json", nil
		}
	}
	switch format {
	case "json", "yaml":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q, expected json or yaml", format)
	}
}

func render(m manifest.Manifest, format string) ([]byte, error) {
	if format == "yaml" {
		return convert.ToYAML(m)
	}
	out, err := convert.ToJSON(m)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func parse(data []byte, format string) (manifest.Manifest, error) {
	if format == "yaml" {
		return convert.FromYAML(data)
	}
	return convert.FromJSON(data)
}

// writeOutput writes data to path, or stdout when path is empty. Files are
// replaced through a temporary file in the same directory.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if fi, err := os.Stat(path); err == nil {
		if err := tmp.Chmod(fi.Mode().Perm()); err != nil {
			tmp.Close()
			return err
		}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// replaceManifest returns src with its manifest replaced by m. src is an
// archive or a plain manifest.
func replaceManifest(src []byte, m manifest.Manifest, opts ...manifest.Option) ([]byte, error) {
	if !isZip(src) {
		return manifest.Marshal(m, opts...)
	}

	zr, err := zip.NewReader(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := archive.Rewrite(zr, &buf, m, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
