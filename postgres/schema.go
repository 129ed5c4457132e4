package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS resumes (
    id            TEXT PRIMARY KEY,
    original_name TEXT NOT NULL,
    file_path     TEXT NOT NULL,
    mime_type     TEXT NOT NULL,
    size          BIGINT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS profiles (
    id                 TEXT PRIMARY KEY,
    first_name         TEXT NOT NULL,
    last_name          TEXT NOT NULL,
    skills             TEXT[] NOT NULL,
    position           TEXT NOT NULL DEFAULT '',
    academic_history   TEXT NOT NULL DEFAULT '',
    career_aspirations TEXT NOT NULL DEFAULT '',
    preferences        TEXT NOT NULL DEFAULT '',
    resume_id          TEXT REFERENCES resumes(id) ON DELETE SET NULL,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_profiles_created_at ON profiles(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_profiles_resume_id  ON profiles(resume_id);
`

// CreateSchema creates the profiles and resumes tables if they don't exist.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops the profiles and resumes tables.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS profiles, resumes CASCADE;`)
	return err
}
