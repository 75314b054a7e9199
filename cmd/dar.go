package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noders-team/go-manifest/pkg/dar"
)

func newDarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dar <path>",
		Short: "Print the main attributes of a DAML archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dm, err := dar.ReadFile(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "name:        %s\n", dm.Name)
			fmt.Fprintf(w, "sdk version: %s\n", dm.SdkVersion)
			fmt.Fprintf(w, "created by:  %s\n", dm.CreatedBy)
			fmt.Fprintf(w, "format:      %s\n", dm.Format)
			fmt.Fprintf(w, "encryption:  %s\n", dm.Encryption)
			fmt.Fprintf(w, "main dalf:   %s\n", dm.MainDalf)
			fmt.Fprintf(w, "package id:  %s\n", dm.PackageID())
			fmt.Fprintf(w, "dalfs:       %d\n", len(dm.Dalfs))
			for _, dalf := range dm.Dalfs {
				fmt.Fprintf(w, "  %s\n", dalf)
			}
			return nil
		},
	}
}
