package skillgraph

import (
	"context"
	"errors"
)

var (
	ErrProfileNotFound  = errors.New("skillgraph: profile not found")
	ErrResumeNotFound   = errors.New("skillgraph: resume not found")
	ErrInvalidProfile   = errors.New("skillgraph: invalid profile")
	ErrInvalidKnowledge = errors.New("skillgraph: invalid knowledge graph")
)

// GraphSource yields one EdgeRecord per directed relationship in the graph.
// Implementations return either the full record set or an error, never a
// partial result.
type GraphSource interface {
	EdgeRecords(ctx context.Context) ([]EdgeRecord, error)
}

// GraphSeeder writes a knowledge description into the graph store.
type GraphSeeder interface {
	Seed(ctx context.Context, k *Knowledge) error
}

// ProfileStore defines the contract for persisting profiles and resume metadata.
type ProfileStore interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Profiles
	CreateProfile(ctx context.Context, p *Profile) (string, error)
	GetProfile(ctx context.Context, id string) (*Profile, error)
	ListProfiles(ctx context.Context) ([]Profile, error)
	DeleteProfile(ctx context.Context, id string) error
	AttachResume(ctx context.Context, profileID, resumeID string) error

	// Resumes
	CreateResume(ctx context.Context, r *Resume) (string, error)
	GetResume(ctx context.Context, id string) (*Resume, error)
	DeleteResume(ctx context.Context, id string) error
}
