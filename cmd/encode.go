package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/noders-team/go-manifest/pkg/manifest"
)

func newEncodeCmd() *cobra.Command {
	var (
		format        string
		output        string
		lineEnding    string
		maxLineLength int
	)

	cmd := &cobra.Command{
		Use:   "encode <json|yaml file>",
		Short: "Write a MANIFEST.MF from a JSON or YAML description",
		Long: `Reads a list of sections, each a mapping of header names to string or boolean
values, and writes it in MANIFEST.MF format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inFormat, err := structuredFormat(format, args[0])
			if err != nil {
				return err
			}
			opts, err := encodeOptions(lineEnding, maxLineLength)
			if err != nil {
				return err
			}

			data, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("failed to read '%s': %w", args[0], err)
			}
			m, err := parse(data, inFormat)
			if err != nil {
				return fmt.Errorf("failed to parse %s from '%s': %w", inFormat, args[0], err)
			}

			out, err := manifest.Marshal(m, opts...)
			if err != nil {
				return err
			}
			if err := writeOutput(output, out); err != nil {
				return fmt.Errorf("failed to write manifest: %w", err)
			}
			if output != "" {
				log.Info().Msgf("successfully written: %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "input format: json or yaml (default from file extension)")
	cmd.Flags().StringVar(&output, "output", "", "file to write instead of stdout")
	cmd.Flags().StringVar(&lineEnding, "line-ending", "crlf", "line terminator: crlf or lf")
	cmd.Flags().IntVar(&maxLineLength, "max-line-length", manifest.DefaultMaxLineLength, "maximum bytes per line including the terminator")
	return cmd
}
