package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yllada/exforms/common"
	"github.com/yllada/exforms/config"
	"github.com/yllada/exforms/demo"
	"github.com/yllada/exforms/instance"
	"github.com/yllada/exforms/position"
	"github.com/yllada/exforms/tui"
	"github.com/yllada/exforms/ui"
)

type rootFlags struct {
	tui      bool
	verbose  bool
	multiple bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           common.AppName,
		Short:         "exforms shows a decorated sample form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogging(flags, cmd.Name() == common.AppName)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			common.CloseLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flags.tui, "tui", false, "Host the form in the terminal")
	cmd.Flags().BoolVar(&flags.multiple, "multiple", false, "Allow more than one running instance")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newPositionsCmd())

	return cmd
}

// initLogging sets up the shared logger. The terminal host owns the
// screen, so its log lines go to the file only.
func initLogging(flags *rootFlags, hostsForm bool) {
	logLevel := common.LevelInfo
	if flags.verbose {
		logLevel = common.LevelDebug
	}

	cfg := common.LogConfig{
		Level:       logLevel,
		EnableFile:  hostsForm,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}
	if hostsForm && flags.tui {
		cfg.Console = io.Discard
	}
	if err := common.InitLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
}

// runForm shows the sample form in the configured host. With single
// instance on, a second copy exits without showing anything.
func runForm(flags *rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Using default configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	host := cfg.Host
	if flags.tui {
		host = common.HostTUI
	}
	if host == common.HostTUI && !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the terminal host needs an interactive terminal")
	}

	if cfg.SingleInstance && !flags.multiple {
		return instance.Exclusive(instance.New(instance.Name()), func() error {
			return showForm(cfg, host)
		})
	}
	return showForm(cfg, host)
}

// showForm opens the position store and runs the demo form in host.
func showForm(cfg *config.Config, host string) error {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	form := demo.NewForm(demo.Options{Positions: store})
	defer form.Dispose()

	common.LogInfo("Starting %s v%s (%s host)", common.AppName, appVersion, host)

	if host == common.HostTUI {
		return tui.Run(form)
	}

	app := ui.NewApplication(common.AppID, form, cfg)

	// Setup graceful shutdown context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)
	go func() {
		<-ctx.Done()
		app.Shutdown()
	}()

	// GTK parses its own arguments; cobra already consumed ours.
	if code := app.Run(os.Args[:1]); code != 0 {
		return fmt.Errorf("application exited with code %d", code)
	}
	return nil
}

// openStore opens the configured position store.
func openStore(cfg *config.Config) (position.Store, func(), error) {
	dir := cfg.PositionDir
	if dir == "" {
		var err error
		if dir, err = position.DefaultDir(); err != nil {
			return nil, nil, err
		}
	}

	if cfg.PositionBackend != common.PositionBackendSQLite {
		store := position.NewFileStore(dir)
		return store, func() { releaseStore(store) }, nil
	}

	if err := common.EnsureDir(dir); err != nil {
		return nil, nil, fmt.Errorf("failed to create position directory: %w", err)
	}
	store, err := position.OpenSQLiteStore(filepath.Join(dir, common.PositionsDBName))
	if err != nil {
		return nil, nil, err
	}
	return store, func() { releaseStore(store) }, nil
}

// releaseStore closes stores that hold an open resource.
func releaseStore(store position.Store) {
	c, ok := store.(common.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		common.LogWarn("Failed to close position store: %v", err)
	}
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
// When a signal is received, it cancels the context to allow cleanup.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
		cancel()
	}()
}
