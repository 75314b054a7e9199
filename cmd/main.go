package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/noders-team/go-manifest/pkg/manifest"
)

var (
	debug           bool
	raw             bool
	allowDuplicates bool
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	rootCmd := &cobra.Command{
		Use:   "jarmf",
		Short: "Read and write META-INF/MANIFEST.MF files",
		Long: `A command-line interface tool for JAR style manifests.

Inputs may be a plain MANIFEST.MF file or a jar, war or dar archive containing one.`,
		Example: `  jarmf decode app.jar --format yaml
  jarmf encode manifest.json --output META-INF/MANIFEST.MF
  jarmf get app.jar Main-Class
  jarmf set app.jar Main-Class=com.example.Main Sealed=true
  jarmf dar ./test.dar`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug mode enabled")
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&raw, "raw", false, "keep true/false values as strings")
	rootCmd.PersistentFlags().BoolVar(&allowDuplicates, "allow-duplicates", false, "let the last of repeated headers win instead of failing")

	rootCmd.AddCommand(
		newDecodeCmd(),
		newEncodeCmd(),
		newGetCmd(),
		newSetCmd(),
		newDarCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func decodeOptions() []manifest.Option {
	var opts []manifest.Option
	if raw {
		opts = append(opts, manifest.WithDecodeFunc(manifest.RawDecode))
	}
	if allowDuplicates {
		opts = append(opts, manifest.WithDuplicatePolicy(manifest.DuplicateLastWins))
	}
	return opts
}

func encodeOptions(lineEnding string, maxLineLength int) ([]manifest.Option, error) {
	opts := []manifest.Option{manifest.WithMaxLineLength(maxLineLength)}
	switch lineEnding {
	case "crlf":
		opts = append(opts, manifest.WithLineEnding(manifest.CRLF))
	case "lf":
		opts = append(opts, manifest.WithLineEnding(manifest.LF))
	default:
		return nil, fmt.Errorf("unsupported --line-ending %q, expected crlf or lf", lineEnding)
	}
	return opts, nil
}
