package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meikuraledutech/skillgraph"
)

// CreateResume records the metadata of an uploaded resume.
// If r.ID is empty, a UUID is auto-generated.
func (s *PGStore) CreateResume(ctx context.Context, r *skillgraph.Resume) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO resumes (id, original_name, file_path, mime_type, size)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		r.ID, r.OriginalName, r.FilePath, r.MimeType, r.Size,
	).Scan(&r.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("skillgraph: insert resume: %w", err)
	}

	return r.ID, nil
}

// GetResume fetches resume metadata by its ID.
// Returns nil, nil if not found.
func (s *PGStore) GetResume(ctx context.Context, id string) (*skillgraph.Resume, error) {
	var r skillgraph.Resume
	err := s.db.QueryRow(ctx,
		`SELECT id, original_name, file_path, mime_type, size, created_at FROM resumes WHERE id = $1`, id,
	).Scan(&r.ID, &r.OriginalName, &r.FilePath, &r.MimeType, &r.Size, &r.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("skillgraph: get resume: %w", err)
	}

	return &r, nil
}

// DeleteResume deletes resume metadata by its ID.
// Profiles linked to it have their resume_id cleared by the DB.
// No error if the resume doesn't exist.
func (s *PGStore) DeleteResume(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("skillgraph: delete resume: %w", err)
	}
	return nil
}
