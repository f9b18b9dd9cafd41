// Package cli implements the command-line interface for cubeascii.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeascii/internal/config"
	"github.com/SeamusWaldron/cubeascii/internal/logging"
	"github.com/SeamusWaldron/cubeascii/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	noHistory  bool
	logFile    string
	verbose    bool

	logCloser io.Closer
)

// rootCmd is the base command. Without a subcommand it starts the game.
var rootCmd = &cobra.Command{
	Use:   "cubeascii",
	Short: "A 3x3x3 cube rendered as shaded ASCII art",
	Long: `cubeascii - An interactive 3x3x3 twisty-puzzle cube drawn with shaded
characters in your terminal.

Orbit the camera with the arrow keys, twist faces with u d f b r l, and
scramble with space. Every session is journaled to a local SQLite database
unless --no-history is given.`,
	Version:            version,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
	RunE:               runPlay,
	SilenceUsage:       true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubeascii/config.json)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubeascii/history.db)")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Do not journal this session")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug records")
	addPlayFlags(rootCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if logFile == "" {
		return nil
	}
	l, closer, err := logging.OpenFile(logFile, verbose)
	if err != nil {
		return err
	}
	logging.SetLogger(l)
	logCloser = closer
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logCloser == nil {
		return nil
	}
	logging.SetLogger(nil)
	err := logCloser.Close()
	logCloser = nil
	return err
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if noHistory {
		cfg.History = false
	}
	return cfg, nil
}

// openDB opens the journal database named by cfg.
func openDB(cfg config.Config) (*storage.DB, error) {
	path, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, err
	}
	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
