// Package db provides PostgreSQL storage for match runs and their results.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateMatchRun records a scoring run for one job description and returns its ID
func (db *DB) CreateMatchRun(ctx context.Context, job types.JobRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO match_runs (position, req_exp_years, req_education, req_skills)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		job.Position.String(), job.ReqExpYears, job.ReqEducation.String(), job.ReqSkills.String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create match run: %w", err)
	}
	return id, nil
}

// marshalBreakdown serializes a score breakdown for the jsonb column.
func marshalBreakdown(b types.Breakdown) ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal breakdown: %w", err)
	}
	return data, nil
}

// scanBreakdown parses the jsonb column; NULL columns leave the zero value.
func scanBreakdown(data []byte, into *types.Breakdown) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("failed to parse breakdown: %w", err)
	}
	return nil
}

// SaveMatchResult stores one scored resume under a match run
func (db *DB) SaveMatchResult(ctx context.Context, runID uuid.UUID, resumeName string, resume types.ResumeRecord, result types.MatchResult) (uuid.UUID, error) {
	breakdown, err := marshalBreakdown(result.Breakdown)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_results
		   (run_id, resume_name, candidate_name, email, phone, skills, experience_years, education, total_percent, breakdown)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		runID, resumeName, resume.Name.String(), resume.Email.String(), resume.Phone.String(),
		resume.Skills.String(), resume.ExperienceYears, resume.Education.String(),
		result.TotalPercent, breakdown,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match result: %w", err)
	}
	return id, nil
}

// GetMatchRun retrieves a match run by ID
func (db *DB) GetMatchRun(ctx context.Context, runID uuid.UUID) (*MatchRun, error) {
	var run MatchRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, position, req_exp_years, req_education, req_skills, created_at
		 FROM match_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Position, &run.ReqExpYears, &run.ReqEducation, &run.ReqSkills, &run.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match run: %w", err)
	}
	return &run, nil
}

// ListMatchRuns retrieves recent match runs
func (db *DB) ListMatchRuns(ctx context.Context, limit int) ([]MatchRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, position, req_exp_years, req_education, req_skills, created_at
		 FROM match_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match runs: %w", err)
	}
	defer rows.Close()

	var runs []MatchRun
	for rows.Next() {
		var run MatchRun
		if err := rows.Scan(&run.ID, &run.Position, &run.ReqExpYears, &run.ReqEducation, &run.ReqSkills, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// ListMatchResults retrieves every result of a run, best match first
func (db *DB) ListMatchResults(ctx context.Context, runID uuid.UUID) ([]MatchResultRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, run_id, resume_name, candidate_name, email, phone, skills, experience_years, education, total_percent, breakdown, created_at
		 FROM match_results WHERE run_id = $1 ORDER BY total_percent DESC, created_at ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	defer rows.Close()

	var results []MatchResultRow
	for rows.Next() {
		var r MatchResultRow
		var breakdown []byte
		if err := rows.Scan(&r.ID, &r.RunID, &r.ResumeName, &r.CandidateName, &r.Email, &r.Phone,
			&r.Skills, &r.ExperienceYears, &r.Education, &r.TotalPercent, &breakdown, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		if err := scanBreakdown(breakdown, &r.Breakdown); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// DeleteMatchRun deletes a match run and all its results (via cascade)
func (db *DB) DeleteMatchRun(ctx context.Context, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM match_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete match run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("match run not found: %s", runID)
	}
	return nil
}
