// Package cli implements the thesisvault command-line surface: file and
// folder management, notes, the keychain and journal inspection.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/thesisvault/internal/activity"
	"github.com/dmitrijs2005/thesisvault/internal/config"
	"github.com/dmitrijs2005/thesisvault/internal/cryptox"
	"github.com/dmitrijs2005/thesisvault/internal/filex"
	"github.com/dmitrijs2005/thesisvault/internal/logging"
	"github.com/dmitrijs2005/thesisvault/internal/vault"
)

// App bundles the services every command needs. Construct it once in main
// and hand it to NewRootCmd; Init wires the vault and keychain after flag
// parsing has settled the configuration.
type App struct {
	Config   *config.Config
	Logger   logging.Logger
	Vault    *vault.Vault
	Keychain *cryptox.Keychain

	out    io.Writer
	reader *bufio.Reader
}

// NewApp returns an App bound to the given configuration, logging JSON to
// stderr so command output on stdout stays clean.
func NewApp(cfg *config.Config) *App {
	l := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	return &App{
		Config: cfg,
		Logger: logging.NewSlogLogger(l),
		out:    os.Stdout,
		reader: bufio.NewReader(os.Stdin),
	}
}

// Init opens the vault database, the activity journal and the keychain.
// Called from the root command once flags are parsed.
func (a *App) Init(ctx context.Context) error {
	if err := filex.EnsureDir(a.Config.DataDir); err != nil {
		return err
	}

	journal, err := activity.NewJournal(a.Config.DataDir, a.Config.ActivityLimit)
	if err != nil {
		return err
	}

	v, err := vault.Open(ctx, a.Config.DatabasePath(), journal, a.Logger)
	if err != nil {
		return err
	}

	a.Vault = v
	a.Keychain = cryptox.NewKeychain(a.Config.KeychainPath())
	return nil
}

// Close releases the vault database handle.
func (a *App) Close() {
	if a.Vault != nil {
		_ = a.Vault.Close()
	}
}
