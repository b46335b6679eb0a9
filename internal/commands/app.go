package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fairshare-dev/fairshare/internal/config"
	"github.com/fairshare-dev/fairshare/internal/ledger"
	"github.com/fairshare-dev/fairshare/internal/store"
)

// ConfigFile is the per-directory configuration file name.
const ConfigFile = "fairshare.yaml"

// app bundles the loaded config, store, and ledger for a command run.
type app struct {
	cfg    *config.Config
	store  store.Store
	ledger *ledger.Service
	closer func() error
}

// openApp loads configuration (falling back to defaults when no
// fairshare.yaml exists), opens the configured store, and restores the
// ledger from the persisted snapshot.
func openApp() (*app, error) {
	_ = godotenv.Load() // .env is optional

	cfg := config.Default()
	if _, err := os.Stat(ConfigFile); err == nil {
		loaded, err := config.Load(ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	st, closer, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	snap, err := st.Load()
	if err != nil {
		if closer != nil {
			closer()
		}
		return nil, err
	}

	return &app{
		cfg:    cfg,
		store:  st,
		ledger: ledger.FromSnapshot(snap),
		closer: closer,
	}, nil
}

func openStore(cfg *config.Config) (store.Store, func() error, error) {
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		st, err := store.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	case config.BackendFile, "":
		return store.NewFileStore(cfg.Store.Path), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// save persists the full ledger snapshot.
func (a *app) save() error {
	return a.store.Save(a.ledger.Snapshot())
}

// close releases store resources, if any.
func (a *app) close() {
	if a.closer != nil {
		_ = a.closer()
	}
}
