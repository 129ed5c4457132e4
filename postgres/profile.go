package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/meikuraledutech/skillgraph"
)

const profileColumns = `id, first_name, last_name, skills, position, academic_history,
	career_aspirations, preferences, COALESCE(resume_id, ''), created_at, updated_at`

// CreateProfile inserts a profile.
// If p.ID is empty, a UUID is auto-generated.
// Timestamps are set by the database and written back to p.
func (s *PGStore) CreateProfile(ctx context.Context, p *skillgraph.Profile) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	var resumeID *string
	if p.ResumeID != "" {
		resumeID = &p.ResumeID
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO profiles (id, first_name, last_name, skills, position, academic_history,
			career_aspirations, preferences, resume_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`,
		p.ID, p.FirstName, p.LastName, p.Skills, p.Position, p.AcademicHistory,
		p.CareerAspirations, p.Preferences, resumeID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("skillgraph: insert profile: %w", err)
	}

	return p.ID, nil
}

// GetProfile fetches a single profile by its ID.
// Returns nil, nil if not found.
func (s *PGStore) GetProfile(ctx context.Context, id string) (*skillgraph.Profile, error) {
	p, err := scanProfile(s.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("skillgraph: get profile: %w", err)
	}
	return p, nil
}

// ListProfiles returns all profiles, newest first.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListProfiles(ctx context.Context) ([]skillgraph.Profile, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("skillgraph: list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []skillgraph.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("skillgraph: scan profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("skillgraph: rows profiles: %w", err)
	}

	return profiles, nil
}

// DeleteProfile deletes a profile by its ID.
// Returns ErrProfileNotFound if the profile doesn't exist.
func (s *PGStore) DeleteProfile(ctx context.Context, id string) error {
	ct, err := s.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("skillgraph: delete profile: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return skillgraph.ErrProfileNotFound
	}
	return nil
}

// AttachResume links an uploaded resume to a profile.
// Returns ErrProfileNotFound if the profile doesn't exist and
// ErrResumeNotFound if the resume doesn't.
func (s *PGStore) AttachResume(ctx context.Context, profileID, resumeID string) error {
	r, err := s.GetResume(ctx, resumeID)
	if err != nil {
		return err
	}
	if r == nil {
		return skillgraph.ErrResumeNotFound
	}

	ct, err := s.db.Exec(ctx,
		`UPDATE profiles SET resume_id = $1, updated_at = NOW() WHERE id = $2`,
		resumeID, profileID,
	)
	if err != nil {
		return fmt.Errorf("skillgraph: attach resume: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return skillgraph.ErrProfileNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*skillgraph.Profile, error) {
	var p skillgraph.Profile
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Skills, &p.Position,
		&p.AcademicHistory, &p.CareerAspirations, &p.Preferences, &p.ResumeID,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
