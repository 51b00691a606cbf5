package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    transcript TEXT NOT NULL,
    project TEXT NOT NULL,
    mode TEXT NOT NULL,
    model TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_transcript ON runs (transcript);

CREATE TABLE IF NOT EXISTS answers (
    seq INTEGER NOT NULL,
    run_id TEXT NOT NULL,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    PRIMARY KEY (run_id, seq)
);

CREATE TABLE IF NOT EXISTS evaluations (
    run_id TEXT PRIMARY KEY,
    final_score REAL NOT NULL,
    performance TEXT NOT NULL,
    raw_score INTEGER NOT NULL,
    max_raw_score INTEGER NOT NULL,
    foreman_present INTEGER NOT NULL
);
`

type implStore struct {
	db *sql.DB
}

// New opens the history database at path, creating the directory and
// schema when missing.
func New(path string) (Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &implStore{db: db}, nil
}

func (s *implStore) SaveRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, transcript, project, mode, model, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Transcript, run.Project, run.Mode, run.Model,
		run.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("save run %s: %w", run.ID, err)
	}
	return nil
}

func (s *implStore) SaveAnswer(ctx context.Context, answer Answer) error {
	var lastSeq int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM answers WHERE run_id = ?`, answer.RunID,
	).Scan(&lastSeq)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("next answer seq for run %s: %w", answer.RunID, err)
	}

	answer.Seq = lastSeq + 1

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO answers (seq, run_id, question, answer) VALUES (?, ?, ?, ?)`,
		answer.Seq, answer.RunID, answer.Question, answer.Answer,
	)
	if err != nil {
		return fmt.Errorf("save answer for run %s: %w", answer.RunID, err)
	}
	return nil
}

func (s *implStore) SaveEvaluation(ctx context.Context, record EvaluationRecord) error {
	foreman := 0
	if record.ForemanPresent {
		foreman = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO evaluations (run_id, final_score, performance, raw_score, max_raw_score, foreman_present)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.RunID, record.FinalScore, record.Performance,
		record.RawScore, record.MaxRawScore, foreman,
	)
	if err != nil {
		return fmt.Errorf("save evaluation for run %s: %w", record.RunID, err)
	}
	return nil
}

func (s *implStore) RunsForTranscript(ctx context.Context, transcript string) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, transcript, project, mode, model, created_at
		 FROM runs
		 WHERE transcript = ?
		 ORDER BY created_at ASC`,
		transcript,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs for %s: %w", transcript, err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Transcript, &run.Project, &run.Mode, &run.Model, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		run.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

func (s *implStore) AnswersForRun(ctx context.Context, runID string) ([]Answer, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, run_id, question, answer
		 FROM answers
		 WHERE run_id = ?
		 ORDER BY seq ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query answers for run %s: %w", runID, err)
	}
	defer rows.Close()

	var answers []Answer
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.Seq, &a.RunID, &a.Question, &a.Answer); err != nil {
			return nil, fmt.Errorf("scan answer row: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return answers, nil
}

func (s *implStore) Close() error {
	return s.db.Close()
}
