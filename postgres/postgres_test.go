package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meikuraledutech/skillgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNoRows(t *testing.T) {
	assert.True(t, isNoRows(pgx.ErrNoRows))
	assert.False(t, isNoRows(nil))
	assert.False(t, isNoRows(context.Canceled))
}

// newTestStore connects to DATABASE_URL and recreates the schema.
func newTestStore(t *testing.T) *PGStore {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	s := New(pool)
	require.NoError(t, s.DropSchema(ctx))
	require.NoError(t, s.CreateSchema(ctx))
	return s
}

func TestPGStore_Profiles(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &skillgraph.Profile{FirstName: "Ada", LastName: "Lovelace", Skills: []string{"Python", "SQL"}}
	id, err := s.CreateProfile(ctx, p)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := s.GetProfile(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"Python", "SQL"}, got.Skills)
	assert.Empty(t, got.ResumeID)

	list, err := s.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteProfile(ctx, id))
	assert.ErrorIs(t, s.DeleteProfile(ctx, id), skillgraph.ErrProfileNotFound)

	missing, err := s.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPGStore_Resumes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := &skillgraph.Resume{OriginalName: "cv.pdf", FilePath: "/uploads/x.pdf", MimeType: "application/pdf", Size: 12}
	rid, err := s.CreateResume(ctx, r)
	require.NoError(t, err)

	pid, err := s.CreateProfile(ctx, &skillgraph.Profile{FirstName: "A", LastName: "B", Skills: []string{"Go"}})
	require.NoError(t, err)

	require.NoError(t, s.AttachResume(ctx, pid, rid))
	assert.ErrorIs(t, s.AttachResume(ctx, "missing", rid), skillgraph.ErrProfileNotFound)
	assert.ErrorIs(t, s.AttachResume(ctx, pid, "missing"), skillgraph.ErrResumeNotFound)

	got, err := s.GetProfile(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, rid, got.ResumeID)

	require.NoError(t, s.DeleteResume(ctx, rid))
	require.NoError(t, s.DeleteResume(ctx, rid))
	gone, err := s.GetResume(ctx, rid)
	require.NoError(t, err)
	assert.Nil(t, gone)

	got, err = s.GetProfile(ctx, pid)
	require.NoError(t, err)
	assert.Empty(t, got.ResumeID)
}
