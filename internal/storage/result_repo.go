package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// timeLayout keeps a fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Listing limits for ListRecent.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ResultRepo provides methods for result history operations.
type ResultRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewResultRepo creates a new ResultRepo.
func NewResultRepo(db *sql.DB) *ResultRepo {
	return &ResultRepo{db: db, now: time.Now}
}

// Insert stores a result. ID and CreatedAt are assigned when empty.
func (r *ResultRepo) Insert(ctx context.Context, result *Result) error {
	if result.ID == "" {
		result.ID = uuid.New().String()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = r.now()
	}
	result.CreatedAt = result.CreatedAt.UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO results (id, created_at, project_name, job_number, load_tag_number, parameters, prompt, model, status, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID, result.CreatedAt.Format(timeLayout), result.ProjectName, result.JobNumber,
		result.LoadTagNumber, result.Parameters, result.Prompt, result.Model, result.Status, result.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}
	return nil
}

// GetByID returns the result with the given ID.
// Returns nil and ErrNotFound if not found.
func (r *ResultRepo) GetByID(ctx context.Context, id string) (*Result, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, project_name, job_number, load_tag_number, parameters, prompt, model, status, message
		 FROM results WHERE id = ?`,
		id,
	)
	result, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query result: %w", err)
	}
	return result, nil
}

// ListRecent returns up to limit results, newest first. A non-positive limit
// selects DefaultListLimit; limits above MaxListLimit are capped.
func (r *ResultRepo) ListRecent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, project_name, job_number, load_tag_number, parameters, prompt, model, status, message
		 FROM results ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, *result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}
	return results, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(s scanner) (*Result, error) {
	var result Result
	var createdAtStr string
	err := s.Scan(&result.ID, &createdAtStr, &result.ProjectName, &result.JobNumber, &result.LoadTagNumber,
		&result.Parameters, &result.Prompt, &result.Model, &result.Status, &result.Message)
	if err != nil {
		return nil, err
	}
	result.CreatedAt, err = time.Parse(timeLayout, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return &result, nil
}
