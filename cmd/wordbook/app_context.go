package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/wordbook/internal/config"
	"github.com/alexisbeaulieu97/wordbook/internal/dictionary"
	"github.com/alexisbeaulieu97/wordbook/internal/favorites"
	"github.com/alexisbeaulieu97/wordbook/internal/logger"
	"github.com/alexisbeaulieu97/wordbook/internal/lookup"
	"github.com/alexisbeaulieu97/wordbook/internal/storage"
	"github.com/alexisbeaulieu97/wordbook/internal/theme"
)

// AppContext bundles long-lived services created for one command invocation.
type AppContext struct {
	Config     *config.Config
	Logger     *logger.Logger
	SessionDir string
	DataDir    string

	session storage.Store
	durable storage.Store
	client  *dictionary.Client
	logFile io.Closer
}

// newAppContext resolves configuration, storage locations and logging for
// the named operation. Callers must Close the returned context.
func newAppContext(cmd *cobra.Command, flags *rootFlags, operation string) (*AppContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Fix the configuration file or pass --config with a valid path.")
	}

	dataDir := cfg.Storage.DataDir
	if dataDir == "" {
		dataDir, err = defaultDataDir()
		if err != nil {
			return nil, newCommandError(operation, "determining data directory", err, "Ensure your HOME directory is set correctly.")
		}
	}

	sessionDir := cfg.Storage.SessionDir
	if sessionDir == "" {
		sessionDir = defaultSessionDir()
	}

	session, err := storage.NewFileStore(sessionDir)
	if err != nil {
		return nil, newCommandError(operation, "opening session storage", err, "Check permissions on the session directory or set XDG_RUNTIME_DIR.")
	}

	durable, err := storage.NewFileStore(dataDir)
	if err != nil {
		return nil, newCommandError(operation, "opening data directory", err, "Check permissions on your home directory.")
	}

	app := &AppContext{
		Config:     cfg,
		SessionDir: sessionDir,
		DataDir:    dataDir,
		session:    session,
		durable:    durable,
	}

	if err := app.openLogger(cmd, flags); err != nil {
		return nil, newCommandError(operation, "configuring logging", err, "Use --log-level with one of debug, info, warn or error.")
	}
	app.Logger = app.Logger.WithCorrelationID().WithFields(map[string]any{"command": operation, "session": filepath.Base(sessionDir)})

	return app, nil
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.Load(flags.configPath)
	} else {
		var path string
		path, err = defaultConfigPath()
		if err != nil {
			return nil, err
		}
		cfg, err = config.LoadOptional(path)
	}
	if err != nil {
		return nil, err
	}

	if flags.serviceURL != "" {
		cfg.Service.BaseURL = flags.serviceURL
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.verbose && flags.logLevel == "" {
		cfg.Logging.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *AppContext) openLogger(cmd *cobra.Command, flags *rootFlags) error {
	opts := logger.Options{
		Level:         strings.ToLower(a.Config.Logging.Level),
		HumanReadable: a.Config.Logging.HumanReadable,
	}

	if flags.verbose {
		opts.Writer = cmd.ErrOrStderr()
		opts.HumanReadable = true
	} else {
		path := a.Config.Logging.File
		if path == "" {
			path = filepath.Join(a.SessionDir, logFileName)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		a.logFile = file
		opts.Writer = file
	}

	log, err := logger.New(opts)
	if err != nil {
		return errors.Join(err, a.Close())
	}
	a.Logger = log
	return nil
}

// Client returns the dictionary client, building it on first use.
func (a *AppContext) Client() (*dictionary.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	svc := a.Config.Service
	client, err := dictionary.NewClient(dictionary.Options{
		BaseURL:   svc.BaseURL,
		Timeout:   svc.Timeout,
		Retries:   svc.Retries,
		RateLimit: svc.RateLimit,
		Burst:     svc.Burst,
		Logger:    a.Logger,
	})
	if err != nil {
		return nil, err
	}
	a.client = client
	return client, nil
}

// Lookup returns a controller fetching through the dictionary client.
func (a *AppContext) Lookup() (*lookup.Controller, error) {
	client, err := a.Client()
	if err != nil {
		return nil, err
	}
	return lookup.New(client, a.Logger), nil
}

// Favorites restores the session's favorites.
func (a *AppContext) Favorites(ctx context.Context) (*favorites.Store, error) {
	return favorites.NewStore(ctx, favorites.NewStoreRepository(a.session), a.Logger)
}

// Theme loads the durable theme preference.
func (a *AppContext) Theme() (*theme.Manager, error) {
	return theme.NewManager(a.durable, a.Logger)
}

// Close releases the log file, if one was opened.
func (a *AppContext) Close() error {
	if a == nil || a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
