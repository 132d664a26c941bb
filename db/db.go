package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS admins (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL DEFAULT 'New Note',
	content TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '#ffff99',
	position_x INTEGER NOT NULL DEFAULT 100,
	position_y INTEGER NOT NULL DEFAULT 100,
	width INTEGER NOT NULL DEFAULT 250,
	height INTEGER NOT NULL DEFAULT 200,
	admin_id INTEGER NOT NULL,
	FOREIGN KEY (admin_id) REFERENCES admins(id)
);`

// Connect opens the sqlite database at path and creates the tables if they
// don't exist yet. The returned handle is the single shared store for the
// process; callers pass it to the stores rather than reaching for a global.
func Connect(path string) (*sqlx.DB, error) {
	database, err := sqlx.Connect("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if _, err := database.Exec(schema); err != nil {
		database.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return database, nil
}
