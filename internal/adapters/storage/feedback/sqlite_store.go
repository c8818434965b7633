package feedback

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	storage "coachdesk/internal/adapters/storage"
	domain "coachdesk/internal/domain/feedback"
)

type sqliteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore returns a Store backed by SQLite.
func NewSQLiteStore(db storage.SQLDB) Store {
	return &sqliteStore{db: db}
}

// Save persists a Submission.
// PRE: s.ID is non-empty and unique
// POST: row inserted into feedback_submission
func (s *sqliteStore) Save(ctx context.Context, sub domain.Submission) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback_submission (
			id, user_id, category, message, page, user_agent, status, submitted_at
		) VALUES (?,?,?,?,?,?,?,?)`,
		sub.ID,
		sub.UserID,
		sub.Category,
		sub.Message,
		sub.Page,
		sub.UserAgent,
		sub.Status,
		sub.SubmittedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("feedback save: %w", err)
	}
	return nil
}

// GetByID retrieves a Submission by its ID.
// PRE: id is non-empty
// POST: returns domain.Submission or error if not found
func (s *sqliteStore) GetByID(ctx context.Context, id string) (domain.Submission, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, category, message, page, user_agent, status, submitted_at
		FROM feedback_submission WHERE id = ?`, id)

	sub, err := scanSubmission(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Submission{}, fmt.Errorf("feedback submission not found: %s", id)
	}
	if err != nil {
		return domain.Submission{}, fmt.Errorf("feedback get: %w", err)
	}
	return sub, nil
}

// List returns submissions, optionally filtered by status, newest first.
// PRE: limit > 0
// POST: returns up to limit submissions ordered by submitted_at desc
func (s *sqliteStore) List(ctx context.Context, status string, limit int) ([]domain.Submission, error) {
	var rows *sql.Rows
	var err error
	if status != "" {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, user_id, category, message, page, user_agent, status, submitted_at
			FROM feedback_submission WHERE status = ? ORDER BY submitted_at DESC LIMIT ?`, status, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, user_id, category, message, page, user_agent, status, submitted_at
			FROM feedback_submission ORDER BY submitted_at DESC LIMIT ?`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("feedback list: %w", err)
	}
	defer rows.Close()

	var subs []domain.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("feedback list scan: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// UpdateStatus moves a submission through triage.
// PRE: id is non-empty, status is a valid triage status
// POST: submission status updated
func (s *sqliteStore) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE feedback_submission SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("feedback update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("feedback submission not found: %s", id)
	}
	return nil
}

// scanSubmission extracts a Submission from a row scanner function.
func scanSubmission(scan func(dest ...interface{}) error) (domain.Submission, error) {
	var sub domain.Submission
	var submittedAt string
	err := scan(
		&sub.ID,
		&sub.UserID,
		&sub.Category,
		&sub.Message,
		&sub.Page,
		&sub.UserAgent,
		&sub.Status,
		&submittedAt,
	)
	if err != nil {
		return domain.Submission{}, err
	}
	sub.SubmittedAt, _ = time.Parse(time.RFC3339, submittedAt)
	return sub, nil
}
