package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/arbor/internal/app"
	"github.com/dshills/arbor/internal/config"
	"github.com/dshills/arbor/internal/input/macro"
	"github.com/dshills/arbor/internal/renderer/backend"
)

// errNotTerminal is returned when the editor is started without a TTY.
var errNotTerminal = errors.New("arbor needs an interactive terminal; use 'arbor replay' for headless runs")

// isTerminal reports whether stdin and stdout are attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// configKey is used to store the loaded config in the command context.
type configKey struct{}

var (
	cfgFile    string
	recordFile string
)

// newRootCmd creates and returns the root command.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arbor",
		Short: "arbor - keyboard-driven tree editor",
		Long: `arbor edits a nested tree of collections and tokens from the keyboard.

Arrow keys move between parents, children and siblings. Enter edits the
selected token, Space inserts a new token after the selection and Delete
removes it. Ctrl+Q quits.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			res, err := config.Load(config.Options{
				File:  cfgFile,
				Flags: cmd.Root().PersistentFlags(),
			})
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, res))
			return nil
		},
		RunE:          runEditor,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./arbor.toml or ./arbor.yaml)")
	rootCmd.PersistentFlags().StringP("document", "d", "", "seed document (.yaml, .yml or .lua)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&recordFile, "record", "", "save the session's keys to this file for 'arbor replay --keys-file'")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagFilename("document", "yaml", "yml", "lua")

	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadedConfig retrieves the config stored by PersistentPreRunE.
func loadedConfig(ctx context.Context) *config.Result {
	if res, ok := ctx.Value(configKey{}).(*config.Result); ok {
		return res
	}
	return &config.Result{Config: &config.Config{Log: config.LogConfig{Level: config.DefaultLogLevel}}}
}

// runEditor starts the interactive terminal editor.
func runEditor(cmd *cobra.Command, _ []string) error {
	if !isTerminal() {
		return errNotTerminal
	}
	res := loadedConfig(cmd.Context())
	cfg := res.Config

	// Without a log file, logs would scribble over the screen.
	logger, closeLog, err := app.LoggerFromConfig(cfg.Log.Level, cfg.Log.File, nil)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()
	if res.File != "" {
		logger.Debug("using config file", "path", res.File)
	}

	screen, err := backend.NewTerminal()
	if err != nil {
		return err
	}

	var rec *macro.Recorder
	if recordFile != "" {
		rec = macro.NewRecorder(0)
		rec.Start()
	}

	application, err := app.New(cmd.Context(), app.Options{
		Config:   cfg,
		Backend:  screen,
		Logger:   logger,
		Recorder: rec,
	})
	if err != nil {
		return err
	}

	stopSignals := watchSignals(application.Quit)
	runErr := application.Run()
	stopSignals()
	if rec != nil {
		events := rec.Stop()
		if err := macro.Save(recordFile, events); err != nil {
			return errors.Join(runErr, err)
		}
		logger.Info("session recorded", "path", recordFile, "keys", len(events), "dropped", rec.Dropped())
	}
	return runErr
}

// watchSignals calls quit on SIGINT, SIGTERM or SIGHUP until the returned
// stop function is called. stop waits for the watcher goroutine to exit.
func watchSignals(quit func()) (stop func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-signals:
			quit()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(signals)
		close(done)
		<-exited
	}
}
