package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/spf13/pflag"
)

const (
	storagePathFlag   = "storage-path"
	migrationPathFlag = "migrations-path"
)

func main() {
	storagePath, migrationsPath := getFlagsValues()
	validateFlags(storagePath)

	if migrationsPath == "" {
		applyEmbedded(storagePath)
		return
	}
	applyFromDir(storagePath, migrationsPath)
}

type MigrationLogger struct {
	logger  *slog.Logger
	verbose bool
}

func NewMigrationLogger() *MigrationLogger {
	return &MigrationLogger{
		logger:  slog.Default(),
		verbose: true,
	}
}

func (ml *MigrationLogger) Printf(format string, v ...any) {
	ml.logger.Info(fmt.Sprintf(format, v...))
}

func (ml *MigrationLogger) Verbose() bool {
	return ml.verbose
}

func getFlagsValues() (storage, migrations string) {
	storagePath := pflag.StringP(storagePathFlag, "s", "", "postgres url")
	migrationsPath := pflag.StringP(
		migrationPathFlag, "m", "", "migrations dir, the embedded set when empty",
	)
	pflag.Parse()
	return *storagePath, *migrationsPath
}

func validateFlags(storagePath string) {
	if storagePath == "" {
		err := fmt.Errorf("--%s flag: required", storagePathFlag)
		slog.Error("too few args", "err", err)
		fallDown()
	}
}

func applyEmbedded(storagePath string) {
	if err := storage.Migrate(storagePath, NewMigrationLogger()); err != nil {
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}
	slog.Info("migrations applied")
}

func applyFromDir(storagePath, migrationsPath string) {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		storage.MigrateURL(storagePath),
	)
	if err != nil {
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}

	m.Log = NewMigrationLogger()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("no migrations to apply")
			return
		}
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}
	m.Log.Printf("migration applied")
}

func fallDown() {
	os.Exit(2)
}
