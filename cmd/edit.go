package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/noders-team/go-manifest/pkg/manifest"
)

func newGetCmd() *cobra.Command {
	var section int

	cmd := &cobra.Command{
		Use:   "get <file> <header>",
		Short: "Print the value of one header",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifestFile(args[0], decodeOptions()...)
			if err != nil {
				return err
			}
			sect, err := sectionAt(m, section)
			if err != nil {
				return err
			}
			v, ok := sect.Lookup(args[1])
			if !ok {
				return fmt.Errorf("header %q not found in section %d", args[1], section)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	cmd.Flags().IntVar(&section, "section", 0, "index of the section, 0 is the main section")
	return cmd
}

func newSetCmd() *cobra.Command {
	var (
		section       int
		output        string
		lineEnding    string
		maxLineLength int
	)

	cmd := &cobra.Command{
		Use:   "set <file> <header>=<value>...",
		Short: "Set headers in a manifest or in the manifest of an archive",
		Long: `Sets headers in one section. A section index one past the last section
appends a new section. The file is rewritten in place unless --output is given.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			opts, err := encodeOptions(lineEnding, maxLineLength)
			if err != nil {
				return err
			}

			src, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("failed to read '%s': %w", args[0], err)
			}
			m, err := loadManifest(src, decodeOptions()...)
			if err != nil {
				return fmt.Errorf("failed to decode manifest from '%s': %w", args[0], err)
			}

			if section == len(m) {
				m = append(m, manifest.NewSection())
			}
			sect, err := sectionAt(m, section)
			if err != nil {
				return err
			}
			for _, a := range attrs {
				log.Debug().Msgf("setting %s in section %d", a.Name, section)
				sect.Set(a.Name, a.Value)
			}

			out, err := replaceManifest(src, m, opts...)
			if err != nil {
				return err
			}

			dst := output
			if dst == "" && args[0] != "-" {
				dst = args[0]
			}
			if err := writeOutput(dst, out); err != nil {
				return fmt.Errorf("failed to write '%s': %w", dst, err)
			}
			if dst != "" {
				log.Info().Msgf("successfully written: %s", dst)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&section, "section", 0, "index of the section, 0 is the main section")
	cmd.Flags().StringVar(&output, "output", "", "file to write instead of rewriting the input")
	cmd.Flags().StringVar(&lineEnding, "line-ending", "crlf", "line terminator: crlf or lf")
	cmd.Flags().IntVar(&maxLineLength, "max-line-length", manifest.DefaultMaxLineLength, "maximum bytes per line including the terminator")
	return cmd
}

func sectionAt(m manifest.Manifest, i int) (*manifest.Section, error) {
	if i < 0 || i >= len(m) {
		return nil, fmt.Errorf("section %d out of range, manifest has %d sections", i, len(m))
	}
	return m[i], nil
}

// parseAssignments splits "Name=value" arguments. Values are stored as
// strings; "true" and "false" are written the same either way.
func parseAssignments(args []string) ([]manifest.Attribute, error) {
	attrs := make([]manifest.Attribute, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected <header>=<value>", arg)
		}
		attrs = append(attrs, manifest.Attr(name, value))
	}
	return attrs, nil
}
