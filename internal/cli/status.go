package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeascii/internal/config"
	"github.com/SeamusWaldron/cubeascii/internal/recorder"
	"github.com/SeamusWaldron/cubeascii/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and journal information",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "cubeascii Status")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	path := configPath
	if path == "" {
		path, _ = config.DefaultPath()
	}
	fmt.Fprintf(out, "Config:        %s\n", path)
	fmt.Fprintf(out, "FPS:           %d\n", cfg.FPS)
	fmt.Fprintf(out, "Scramble:      %d moves\n", cfg.ScrambleLength)
	fmt.Fprintf(out, "Inertia:       %v\n", cfg.Inertia)
	fmt.Fprintf(out, "Color profile: %s\n", cfg.ColorProfile)
	fmt.Fprintln(out)

	if !cfg.History {
		fmt.Fprintln(out, "History disabled")
		return nil
	}

	db, err := openDB(cfg)
	if err != nil {
		fmt.Fprintf(out, "Database error: %v\n", err)
		return nil
	}
	defer db.Close()

	fmt.Fprintf(out, "Database:      %s\n", db.Path())
	if v, err := db.CurrentVersion(); err == nil {
		fmt.Fprintf(out, "Schema:        v%d\n", v)
	}

	sessions := storage.NewSessionRepository(db)
	if total, err := sessions.Count(); err == nil {
		fmt.Fprintf(out, "Sessions:      %d\n", total)
	}
	if last, err := sessions.GetLast(); err == nil {
		fmt.Fprintf(out, "Last session:  %s (%s)\n", last.SessionID, last.StartedAt.Local().Format(time.RFC3339))
	}

	if sf, err := recorder.NewDefaultStateFile(); err == nil && sf.LastSessionID() != "" {
		fmt.Fprintf(out, "State file:    last %s in %s\n", sf.LastSessionID(), sf.DBPath())
	}
	return nil
}
