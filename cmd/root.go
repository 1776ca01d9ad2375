package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"imessage-sender/applescript"
	"imessage-sender/config"
	"imessage-sender/messaging"
)

var configPath string
var historyPath string
var serviceType string
var verbose bool

// newRunner is swapped out in tests.
var newRunner = func(cfg config.Config) applescript.Runner {
	return applescript.NewOSAScript(cfg.OSAScriptPath)
}

func defaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return ""
	}
	return filepath.Join(base, "imessage-sender", "config.plist")
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "imessage-sender",
		Short:         "Send iMessages by scripting Messages.app",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "Path to config file (.plist or .json)")
	cmd.PersistentFlags().StringVar(&historyPath, "history", "", "Path to sent message history (\"\" for in-memory; defaults to the config value)")
	cmd.PersistentFlags().StringVar(&serviceType, "service", "", "Messages service type (iMessage or SMS)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log the generated script and osascript output")
	cmd.AddCommand(newSendMessageCmd())
	cmd.AddCommand(newScriptCmd())
	cmd.AddCommand(newHistoryCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if serviceType != "" {
		cfg.ServiceType = serviceType
		if err = cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("history") {
		cfg.HistoryPath = historyPath
	}
	return cfg, nil
}

func newClient(cmd *cobra.Command, cfg config.Config, tmpl applescript.Template) (*messaging.Client, error) {
	var store messaging.Store
	var err error
	if cfg.HistoryPath != "" {
		store, err = messaging.NewFileStore(cfg.HistoryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize history: %w", err)
		}
	} else {
		store = messaging.NewMemoryStore()
	}

	return messaging.NewClientWithStore(newRunner(cfg), store).
		WithTemplate(tmpl).
		WithLogger(newLogger(cmd)), nil
}
