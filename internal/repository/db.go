// Package repository provides SQLite-backed data access for study
// sessions, performance records, and wellness entries.
package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS study_sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL DEFAULT '',
		subject TEXT NOT NULL,
		duration INTEGER NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		study_method TEXT NOT NULL,
		difficulty_level INTEGER NOT NULL,
		focus_rating INTEGER NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS performance_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL DEFAULT '',
		subject TEXT NOT NULL,
		assessment_type TEXT NOT NULL,
		score REAL NOT NULL,
		max_score REAL NOT NULL,
		date TEXT NOT NULL,
		topics_covered TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS wellness_tracking (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		sleep_hours REAL NOT NULL,
		stress_level INTEGER NOT NULL,
		mood_rating INTEGER NOT NULL,
		exercise_minutes INTEGER NOT NULL DEFAULT 0,
		caffeine_intake INTEGER NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_user ON study_sessions(user_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_subject ON study_sessions(subject)`,
	`CREATE INDEX IF NOT EXISTS idx_performance_user ON performance_records(user_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_wellness_user ON wellness_tracking(user_id, date)`,
}

// Open opens the SQLite database at path and ensures the schema exists.
// Pass ":memory:" for an ephemeral store. Schema creation runs only at
// startup; request-time code never alters the schema.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// The embedded store is single-writer; a second connection would only
	// queue behind SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return db, nil
}
