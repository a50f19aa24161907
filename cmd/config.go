package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/josephgoksu/kanban-sheets/internal/config"
	"github.com/josephgoksu/kanban-sheets/internal/logger"
	"github.com/josephgoksu/kanban-sheets/store"
	"github.com/josephgoksu/kanban-sheets/types"
)

var (
	// GlobalAppConfig holds the configuration loaded by InitConfig.
	GlobalAppConfig *types.AppConfig
	// configErr is the load failure, reported by commands that need a config.
	configErr error
)

// InitConfig reads in the config file and ENV variables if set.
func InitConfig() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	if dir, err := config.GetGlobalConfigDir(); err == nil {
		logger.SetBasePath(dir)
	}

	GlobalAppConfig, configErr = loadConfig(viper.GetViper(), viper.GetString("config"))
	if configErr != nil {
		return
	}
	logger.SetVersion(version)
	logger.SetBackend(GlobalAppConfig.Backend, backendTarget(GlobalAppConfig))
}

// loadConfig runs the full config pipeline against v.
func loadConfig(v *viper.Viper, file string) (*types.AppConfig, error) {
	if err := config.Setup(v, file); err != nil {
		return nil, err
	}
	found, err := config.ReadFile(v)
	if err != nil {
		return nil, err
	}
	if found && v.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	}
	return config.Load(v)
}

// GetConfig returns the loaded configuration or the error that prevented it.
func GetConfig() (*types.AppConfig, error) {
	if configErr != nil {
		return nil, configErr
	}
	if GlobalAppConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return GlobalAppConfig, nil
}

func backendTarget(cfg *types.AppConfig) string {
	if cfg.Backend == store.BackendSheets {
		return cfg.Sheets.SpreadsheetID
	}
	return cfg.File.Path
}

// newLogger builds the zap logger described by cfg.
func newLogger(cfg *types.AppConfig) (*zap.Logger, error) {
	level := cfg.Log.Level
	if cfg.Verbose {
		level = "debug"
	}
	return logger.New(level, cfg.Log.File)
}

// storeOptions maps configuration onto connector options.
func storeOptions(cfg *types.AppConfig, log *zap.Logger) store.Options {
	return store.Options{
		Backend:         cfg.Backend,
		SpreadsheetID:   cfg.Sheets.SpreadsheetID,
		SheetName:       cfg.Sheets.SheetName,
		Columns:         cfg.Sheets.Columns,
		CredentialsFile: cfg.Sheets.CredentialsFile,
		FilePath:        cfg.File.Path,
		FileSheet:       cfg.File.Sheet,
		Logger:          log,
	}
}

// newProvider returns a lazily opened connector for cfg.
func newProvider(cfg *types.AppConfig, log *zap.Logger) *store.Provider {
	opts := storeOptions(cfg, log)
	return store.NewProvider(func(ctx context.Context) (store.Connector, error) {
		return store.Open(ctx, opts)
	})
}

// openConnector opens the configured backend for a one-shot CLI command.
func openConnector(ctx context.Context) (store.Connector, *zap.Logger, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	conn, err := store.Open(ctx, storeOptions(cfg, log))
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}
	return conn, log, nil
}
