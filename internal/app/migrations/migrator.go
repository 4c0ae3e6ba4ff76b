package migrations

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// Migrator manages database migrations
type Migrator struct {
	db *pgxpool.Pool
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{
		db: db,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := m.db.Exec(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	err := m.db.QueryRow(ctx, query, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// recordMigration marks a migration as applied within tx
func recordMigration(ctx context.Context, tx pgx.Tx, version string) error {
	_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version)
	if err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// VersionOf extracts the version prefix of a migration file name
// ("001_init.sql" => "001").
func VersionOf(fileName string) string {
	base := path.Base(fileName)
	return strings.SplitN(base, "_", 2)[0]
}

// SortedSQLFiles lists the *.sql files at the root of fsys in lexical order.
func SortedSQLFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)
	return sqlFiles, nil
}

// MigrateFile executes one SQL file from fsys unless its version was already applied.
func (m *Migrator) MigrateFile(ctx context.Context, fsys fs.FS, fileName string) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	version := VersionOf(fileName)

	migrationApplied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return err
	}
	if migrationApplied {
		logger.Debug().Str("file", fileName).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := fs.ReadFile(fsys, fileName)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("error occurred during SQL migration %s: %w", fileName, err)
	}

	if err := recordMigration(ctx, tx, version); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info().Str("file", fileName).Str("version", version).Msg("Migration applied")
	return nil
}

// MigrateFS applies every SQL file of fsys in order.
func (m *Migrator) MigrateFS(ctx context.Context, fsys fs.FS) error {
	files, err := SortedSQLFiles(fsys)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := m.MigrateFile(ctx, fsys, file); err != nil {
			return err
		}
	}
	return nil
}
