package database

import (
	"context"
	"embed"
	"io/fs"

	"github.com/deppfellow/bff-service/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const schemaVersionTable = "schema_version"

//go:embed migrations/*.sql
var migrations embed.FS

// MigrationFiles returns the embedded migrations rooted at the migrations
// directory, in the layout tern expects.
func MigrationFiles() (fs.FS, error) {
	return fs.Sub(migrations, "migrations")
}

// Migrate applies every pending embedded migration over a dedicated pgx
// connection. The applied version is tracked in schema_version.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return errors.Wrap(err, "failed to connect for migrations")
	}
	defer conn.Close(ctx)

	files, err := MigrationFiles()
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	m, err := tern.NewMigrator(ctx, conn, schemaVersionTable)
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}
	if err := m.LoadMigrations(files); err != nil {
		return errors.Wrap(err, "failed to load migrations")
	}

	current, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}

	latest := int32(len(m.Migrations))
	log := logger.With().
		Int32("from", current).
		Int32("to", latest).
		Logger()

	if current == latest {
		log.Info().Msg("database schema up to date")
		return nil
	}

	m.OnStart = func(sequence int32, name, _, _ string) {
		log.Info().Int32("sequence", sequence).Str("name", name).Msg("applying migration")
	}

	if err := m.Migrate(ctx); err != nil {
		return errors.Wrap(err, "failed to migrate database schema")
	}

	log.Info().Msg("migrated database schema")
	return nil
}
