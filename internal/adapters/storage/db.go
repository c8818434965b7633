package storage

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// migration is a single schema change applied in order.
type migration struct {
	version int
	name    string
	apply   func(tx *sql.Tx) error
}

// migrations is the ordered chain of schema changes. Append only; never
// modify an entry that has shipped.
var migrations = []migration{
	{version: 1, name: "baseline", apply: migrateBaseline},
}

// LatestSchemaVersion returns the version the database should be at after
// all migrations have run.
func LatestSchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// InitDB configures connection-level pragmas.
// PRE: db is a valid database connection
// POST: WAL mode and foreign key enforcement enabled
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return nil
}

// SchemaVersion returns the current schema version, or 0 if the database
// has never been migrated.
func SchemaVersion(db *sql.DB) (int, error) {
	var exists int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&exists)
	if err != nil {
		return 0, err
	}
	if exists == 0 {
		return 0, nil
	}
	var version int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	return version, err
}

// MigrateDB applies all pending migrations inside transactions.
// A file-backed database is copied aside before any migration runs so a
// failed upgrade can be rolled back by hand.
// PRE: db is a valid database connection
// POST: Schema is at LatestSchemaVersion
func MigrateDB(db *sql.DB, dbPath string) error {
	if err := InitDB(db); err != nil {
		return err
	}

	current, err := SchemaVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current >= LatestSchemaVersion() {
		return nil
	}

	if err := backupDBFile(dbPath, current); err != nil {
		return fmt.Errorf("failed to back up database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("migration %d (%s): begin: %w", m.version, m.name, err)
		}
		if err := m.apply(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version, applied_at) VALUES (?, datetime('now'))", m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): record version: %w", m.version, m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %d (%s): commit: %w", m.version, m.name, err)
		}
		slog.Info("applied migration", "version", m.version, "name", m.name)
	}

	return nil
}

// backupDBFile copies the database file aside before migrating.
// In-memory and missing databases are skipped.
func backupDBFile(dbPath string, fromVersion int) error {
	if dbPath == "" || dbPath == ":memory:" {
		return nil
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil
	}
	src, err := os.Open(dbPath)
	if err != nil {
		return err
	}
	defer src.Close()

	backupPath := fmt.Sprintf("%s.v%d.bak", dbPath, fromVersion)
	dst, err := os.Create(backupPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Sync()
}

// migrateBaseline creates the initial schema. Local state only: operator
// accounts, the audit trail, the email outbox, and dashboard feedback.
// All coaching data lives behind the backend API.
func migrateBaseline(tx *sql.Tx) error {
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT,
		password_change_required INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS audit_event (
		id TEXT PRIMARY KEY,
		timestamp TEXT NOT NULL,
		category TEXT NOT NULL,
		action TEXT NOT NULL,
		actor_id TEXT NOT NULL,
		actor_email TEXT NOT NULL DEFAULT '',
		resource_type TEXT NOT NULL DEFAULT '',
		resource_id TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		ip_address TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_audit_event_timestamp ON audit_event(timestamp);

	CREATE TABLE IF NOT EXISTS outbox (
		id TEXT PRIMARY KEY,
		action_type TEXT NOT NULL,
		payload TEXT NOT NULL,
		status TEXT NOT NULL,
		attempts INTEGER NOT NULL DEFAULT 0,
		max_attempts INTEGER NOT NULL DEFAULT 5,
		last_attempted_at TEXT,
		created_at TEXT NOT NULL,
		error_message TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS feedback_submission (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		category TEXT NOT NULL,
		message TEXT NOT NULL,
		page TEXT NOT NULL DEFAULT '',
		user_agent TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'new',
		submitted_at TEXT NOT NULL
	);
	`
	if _, err := tx.Exec(schema); err != nil {
		return fmt.Errorf("failed to create baseline schema: %w", err)
	}
	return nil
}
