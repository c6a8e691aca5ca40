package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/gosonarr/config"
	"github.com/s0up4200/gosonarr/sonarr"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *sonarr.Client

	// Version info set from main
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the version information from build flags
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gosonarr",
	Short: "A CLI for managing a Sonarr library",
	Long: `gosonarr is a CLI tool for talking to a Sonarr server: list and add
series, inspect the download queue, browse the calendar and history,
and run server-side commands.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(commandCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and the Sonarr client
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd == versionCmd {
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Sonarr client
	client, err = sonarr.NewClient(cfg.Sonarr.URL, cfg.Sonarr.APIKey, logger,
		sonarr.WithUserAgent("gosonarr/"+version))
	if err != nil {
		return fmt.Errorf("failed to create Sonarr client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, color only on real terminals
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosonarr %s (built %s)\n", version, buildTime)
	},
}
