package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS posts (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL,
	caption TEXT DEFAULT '',
	category TEXT DEFAULT 'other',
	image_file TEXT NOT NULL,
	share_token TEXT UNIQUE NOT NULL,
	pin_hash TEXT,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS ratings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	post_id TEXT NOT NULL,
	rater_name TEXT DEFAULT 'Anonymous',
	score INTEGER NOT NULL CHECK(score BETWEEN 1 AND 10),
	created_at TIMESTAMP NOT NULL,
	FOREIGN KEY(post_id) REFERENCES posts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS reactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	post_id TEXT NOT NULL,
	emoji TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	FOREIGN KEY(post_id) REFERENCES posts(id) ON DELETE CASCADE
);
`

// Open opens (or creates) the sqlite database file and makes sure the
// schema exists. Foreign keys are enabled on every connection so deleting
// a post cascades to its ratings and reactions.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_fk=1&_loc=UTC", path))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	return db, nil
}
