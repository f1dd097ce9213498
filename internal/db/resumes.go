package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ResumeRecord is a stored resume row.
type ResumeRecord struct {
	ID        uuid.UUID          `json:"id"`
	UserID    string             `json:"user_id"`
	Filename  string             `json:"filename"`
	Parsed    types.ParsedResume `json:"parsed_content"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// SaveResume stores a parsed resume and returns its ID.
func (db *DB) SaveResume(ctx context.Context, userID, filename string, parsed *types.ParsedResume) (uuid.UUID, error) {
	content, err := json.Marshal(parsed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, filename, parsed_content)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, filename, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a stored resume by ID. Returns nil when absent.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*ResumeRecord, error) {
	var record ResumeRecord
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, filename, parsed_content, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.UserID, &record.Filename, &content, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(content, &record.Parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parsed resume: %w", err)
	}
	return &record, nil
}

// ListResumes retrieves a user's resumes, newest first.
func (db *DB) ListResumes(ctx context.Context, userID string, limit int) ([]ResumeRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, filename, parsed_content, created_at, updated_at
		 FROM resumes WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var records []ResumeRecord
	for rows.Next() {
		var record ResumeRecord
		var content []byte
		if err := rows.Scan(&record.ID, &record.UserID, &record.Filename, &content, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		if err := json.Unmarshal(content, &record.Parsed); err != nil {
			return nil, fmt.Errorf("failed to unmarshal parsed resume: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// DeleteResume removes a stored resume.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}
