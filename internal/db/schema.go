package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStep is one version upgrade, applied in order. Collection tables
// use CREATE TABLE IF NOT EXISTS so re-running a step never duplicates
// or drops an existing collection.
type schemaStep struct {
	Version    int
	Statements []string
}

func collectionDDL(table string) string {
	return `CREATE TABLE IF NOT EXISTS ` + table + `(
	id TEXT PRIMARY KEY,
	record TEXT NOT NULL
);`
}

func schemaSteps() []schemaStep {
	v1 := make([]string, 0, len(Collections)+1)
	for _, c := range Collections {
		v1 = append(v1, collectionDDL(collectionTables[c]))
	}
	v1 = append(v1, `CREATE TABLE IF NOT EXISTS events(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	ts TEXT NOT NULL,
	type TEXT NOT NULL,
	entity_kind TEXT NOT NULL,
	entity_id TEXT,
	payload_json TEXT NOT NULL
);`)
	return []schemaStep{{Version: 1, Statements: v1}}
}

// applySchema brings the database to the current schema version.
func applySchema(ctx context.Context, conn *sql.DB) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version(version INTEGER NOT NULL);`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}
	var currentVersion int
	err = tx.QueryRowContext(ctx, `SELECT version FROM schema_version LIMIT 1`).Scan(&currentVersion)
	if err == sql.ErrNoRows {
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version(version) VALUES (0)`); err != nil {
			return fmt.Errorf("init schema_version: %w", err)
		}
		currentVersion = 0
	} else if err != nil {
		return fmt.Errorf("read schema_version: %w", err)
	}

	for _, step := range schemaSteps() {
		if step.Version <= currentVersion {
			continue
		}
		for _, stmt := range step.Statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("schema v%d: %w", step.Version, err)
			}
		}
		if _, err := tx.ExecContext(ctx, `UPDATE schema_version SET version=?`, step.Version); err != nil {
			return fmt.Errorf("update schema_version: %w", err)
		}
		currentVersion = step.Version
	}
	return tx.Commit()
}

// dropSchema destroys every collection, the audit log and the version
// marker, so a later applySchema rebuilds from nothing.
func dropSchema(ctx context.Context, conn *sql.DB) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for _, c := range Collections {
		if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+collectionTables[c]); err != nil {
			return fmt.Errorf("drop %s: %w", c, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS events`); err != nil {
		return fmt.Errorf("drop events: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS schema_version`); err != nil {
		return fmt.Errorf("drop schema_version: %w", err)
	}
	return tx.Commit()
}
