package main

import (
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Print a manifest as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifestFile(args[0], decodeOptions()...)
			if err != nil {
				return err
			}
			out, err := render(m, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}
