package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fairshare-dev/fairshare/internal/config"
	"github.com/fairshare-dev/fairshare/internal/ledger"
	"github.com/fairshare-dev/fairshare/internal/store"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new FairShare ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir)
		},
	}
	return cmd
}

func runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default()
	cfg.Store.Path = filepath.Join(dir, cfg.Store.Path)
	cfg.Store.SQLitePath = filepath.Join(dir, cfg.Store.SQLitePath)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty snapshot so the data file exists from the start.
	st := store.NewFileStore(cfg.Store.Path)
	if err := st.Save(ledger.NewService().Snapshot()); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	fmt.Printf("Initialized FairShare ledger at %s\n", dir)
	return nil
}
