// Package store persists check runs and their matches in a local sqlite
// database so past reports can be re-rendered or compared.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY,
    examined_document TEXT,
    metric TEXT,
    similarity_threshold REAL,
    min_length INTEGER,
    match_count INTEGER,
    created_at TEXT
);

CREATE TABLE IF NOT EXISTS matches (
    id INTEGER PRIMARY KEY,
    run_id INTEGER,
    input_sentence TEXT,
    input_start_pos INTEGER,
    input_end_pos INTEGER,
    reference_sentence TEXT,
    reference_start_pos INTEGER,
    reference_end_pos INTEGER,
    reference_document TEXT,
    similarity_score REAL
);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
