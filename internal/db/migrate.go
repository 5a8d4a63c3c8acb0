package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent, so it runs on
// each open.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// snapshot_meta holds exactly one row (id = 1) once a snapshot has been
	// saved. Its absence means "nothing persisted yet".
	`CREATE TABLE IF NOT EXISTS snapshot_meta (
		id          INTEGER PRIMARY KEY CHECK(id = 1),
		revision    TEXT NOT NULL,
		version     INTEGER NOT NULL,
		vendor_id   INTEGER NOT NULL,
		saved_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id              INTEGER PRIMARY KEY,
		position        INTEGER NOT NULL,
		name            TEXT NOT NULL,
		user_id         INTEGER NOT NULL DEFAULT 0,
		site_manager_id INTEGER NOT NULL DEFAULT 0,
		nweeks          INTEGER NOT NULL DEFAULT 0,
		total_cost      REAL NOT NULL DEFAULT 0 CHECK(total_cost >= 0),
		status          TEXT NOT NULL DEFAULT 'active'
		                CHECK(status IN ('active','completed'))
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id                INTEGER PRIMARY KEY,
		position          INTEGER NOT NULL,
		project_id        INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name              TEXT NOT NULL,
		vendor_id         INTEGER NOT NULL,
		category          TEXT NOT NULL DEFAULT '',
		week_id           INTEGER NOT NULL CHECK(week_id >= 1),
		completed_percent INTEGER NOT NULL DEFAULT 0
		                  CHECK(completed_percent BETWEEN 0 AND 100),
		images_before     TEXT,
		images_after      TEXT,
		notes             TEXT,
		status            TEXT NOT NULL DEFAULT 'active'
		                  CHECK(status IN ('active','completed'))
	)`,

	`CREATE TABLE IF NOT EXISTS payments (
		id           INTEGER PRIMARY KEY,
		position     INTEGER NOT NULL,
		project_id   INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		task_id      INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		vendor_id    INTEGER NOT NULL,
		status       TEXT NOT NULL DEFAULT 'pending'
		             CHECK(status IN ('pending','approved','paid')),
		request_date TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project_vendor ON tasks(project_id, vendor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_vendor ON payments(vendor_id)`,
}
