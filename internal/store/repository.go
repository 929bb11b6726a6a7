package store

import (
	"database/sql"
	"fmt"
	"time"

	"plagscan/internal/checker"
)

// Run describes one recorded check invocation.
type Run struct {
	ID               int64
	ExaminedDocument string
	Metric           string
	Threshold        float64
	MinLength        int
	MatchCount       int
	CreatedAt        time.Time
}

// PersistRun stores the run and all of its matches in one transaction and
// returns the new run id.
func PersistRun(dbPath string, run Run, matches []checker.Match) (int64, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	created := run.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	res, err := tx.Exec(
		`INSERT INTO runs(examined_document, metric, similarity_threshold, min_length, match_count, created_at)
		 VALUES(?,?,?,?,?,?)`,
		run.ExaminedDocument,
		run.Metric,
		run.Threshold,
		run.MinLength,
		len(matches),
		created.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run last insert id: %w", err)
	}

	for _, m := range matches {
		if _, err := tx.Exec(
			`INSERT INTO matches(run_id, input_sentence, input_start_pos, input_end_pos,
			     reference_sentence, reference_start_pos, reference_end_pos,
			     reference_document, similarity_score)
			 VALUES(?,?,?,?,?,?,?,?,?)`,
			runID,
			m.InputSentence,
			m.InputStart,
			m.InputEnd,
			m.ReferenceSentence,
			m.ReferenceStart,
			m.ReferenceEnd,
			m.ReferenceDocument,
			m.SimilarityScore,
		); err != nil {
			return 0, fmt.Errorf("insert match: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return runID, nil
}

// MatchesForRun loads the stored matches of a run in insertion order.
func MatchesForRun(dbPath string, runID int64) ([]checker.Match, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.Query(
		`SELECT input_sentence, input_start_pos, input_end_pos,
		        reference_sentence, reference_start_pos, reference_end_pos,
		        reference_document, similarity_score
		   FROM matches WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var matches []checker.Match
	for rows.Next() {
		var m checker.Match
		if err := rows.Scan(
			&m.InputSentence, &m.InputStart, &m.InputEnd,
			&m.ReferenceSentence, &m.ReferenceStart, &m.ReferenceEnd,
			&m.ReferenceDocument, &m.SimilarityScore,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return matches, nil
}

// CountRows reports the row count of a table, mostly for tests and the
// CLI summary.
func CountRows(dbPath, table string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return countRowsConn(conn, table)
}

func countRowsConn(conn *sql.DB, table string) (int, error) {
	row := conn.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
