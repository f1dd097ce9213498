package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// SaveMatch stores a match result. The result's own ID and timestamp are
// preserved so the stored row round-trips exactly.
func (db *DB) SaveMatch(ctx context.Context, match *types.MatchResult) error {
	jd, err := json.Marshal(match.JobDescription)
	if err != nil {
		return fmt.Errorf("failed to marshal job description: %w", err)
	}
	feedback, err := json.Marshal(match.Feedback)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO matches (id, user_id, resume_id, job_description, compatibility_score,
			matched_skills, partial_skills, missing_skills, feedback, recommendations, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		match.ID, match.UserID, match.ResumeID, jd, match.CompatibilityScore,
		match.MatchedSkills, match.PartialSkills, match.MissingSkills,
		feedback, match.Recommendations, match.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}

// GetMatch retrieves a match result by ID. Returns nil when absent.
func (db *DB) GetMatch(ctx context.Context, id string) (*types.MatchResult, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_id, job_description, compatibility_score,
			matched_skills, partial_skills, missing_skills, feedback, recommendations, created_at
		 FROM matches WHERE id = $1`,
		id,
	)

	match, err := scanMatch(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// ListMatches retrieves a user's match history, newest first.
func (db *DB) ListMatches(ctx context.Context, userID string, limit int) ([]types.MatchResult, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, resume_id, job_description, compatibility_score,
			matched_skills, partial_skills, missing_skills, feedback, recommendations, created_at
		 FROM matches WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []types.MatchResult
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, *match)
	}
	return matches, nil
}

func scanMatch(row pgx.Row) (*types.MatchResult, error) {
	var match types.MatchResult
	var jd, feedback []byte

	err := row.Scan(&match.ID, &match.UserID, &match.ResumeID, &jd, &match.CompatibilityScore,
		&match.MatchedSkills, &match.PartialSkills, &match.MissingSkills,
		&feedback, &match.Recommendations, &match.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(jd, &match.JobDescription); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job description: %w", err)
	}
	if err := json.Unmarshal(feedback, &match.Feedback); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feedback: %w", err)
	}
	return &match, nil
}
