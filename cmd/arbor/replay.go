package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/arbor/internal/app"
	"github.com/dshills/arbor/internal/input/macro"
)

// newReplayCmd creates the replay command.
func newReplayCmd() *cobra.Command {
	var (
		keys     string
		keysFile string
		screen   bool
	)
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Run a key sequence headlessly and print the resulting tree",
		Long: `Replay feeds a key sequence to a fresh session without a terminal and
prints the tree outline, with the selected node in brackets.

Keys are separated by spaces or commas and use the same names as keymap
configuration, for example:

  arbor replay --keys "Down Right Space x Esc"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if keys == "" && keysFile == "" {
				return fmt.Errorf("--keys or --keys-file is required")
			}
			cfg := loadedConfig(cmd.Context()).Config

			logger, closeLog, err := app.LoggerFromConfig(cfg.Log.Level, cfg.Log.File, os.Stderr)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			opts := app.Options{Config: cfg, Logger: logger}
			var res *app.ReplayResult
			if keysFile != "" {
				events, err := macro.Load(keysFile)
				if err != nil {
					return err
				}
				res, err = app.ReplayEvents(cmd.Context(), opts, events)
				if err != nil {
					return err
				}
			} else {
				res, err = app.Replay(cmd.Context(), opts, keys)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if screen {
				_, _ = fmt.Fprintln(out, strings.Join(res.Screen, "\n"))
				_, _ = fmt.Fprintln(out)
			}
			_, _ = fmt.Fprintln(out, res.Outline)
			logger.Debug("replay finished", "mode", res.Mode, "quit", res.Quit)
			return nil
		},
	}
	cmd.Flags().StringVarP(&keys, "keys", "k", "", "key sequence to replay")
	cmd.Flags().StringVar(&keysFile, "keys-file", "", "read the key sequence from a file, such as one saved with --record")
	cmd.MarkFlagsMutuallyExclusive("keys", "keys-file")
	cmd.Flags().BoolVar(&screen, "screen", false, "also print the final screen")
	return cmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "arbor %s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", commit)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", date)
		},
	}
}
