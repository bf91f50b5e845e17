//go:build integration
// +build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func connectTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	database, err := Connect(context.Background(), url)
	require.NoError(t, err, "should connect to database")
	require.NoError(t, database.Migrate(context.Background()), "should run migrations")
	t.Cleanup(database.Close)
	return database
}

func TestResumeCRUD_Integration(t *testing.T) {
	database := connectTestDB(t)
	ctx := context.Background()

	doc := &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{Name: "Dana Smith"},
		Summary:      "Builds services.",
	}
	accent := "#1a365d"
	custom := &types.CustomizationInput{Theme: &types.ThemeInput{Accent: &accent}}

	// Create
	id, err := database.CreateResume(ctx, "Backend roles", "classic", doc, custom)
	require.NoError(t, err, "should create resume")
	require.NotEqual(t, uuid.Nil, id)
	t.Cleanup(func() { _ = database.DeleteResume(ctx, id) })

	// Read
	saved, err := database.GetResume(ctx, id)
	require.NoError(t, err, "should load resume")
	assert.Equal(t, "Backend roles", saved.Name)
	assert.Equal(t, "classic", saved.TemplateID)
	require.NotNil(t, saved.Document)
	assert.Equal(t, "Dana Smith", saved.Document.PersonalInfo.Name)
	require.NotNil(t, saved.Customization)
	assert.Equal(t, accent, *saved.Customization.Theme.Accent)

	// Update
	doc.Summary = "Builds distributed systems."
	err = database.UpdateResume(ctx, id, "Platform roles", "modern", doc, nil)
	require.NoError(t, err, "should update resume")

	saved, err = database.GetResume(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Platform roles", saved.Name)
	assert.Equal(t, "modern", saved.TemplateID)
	assert.Equal(t, "Builds distributed systems.", saved.Document.Summary)

	// List
	list, err := database.ListResumes(ctx)
	require.NoError(t, err, "should list resumes")
	found := false
	for _, r := range list {
		if r.ID == id {
			found = true
		}
	}
	assert.True(t, found, "created resume should appear in listing")

	// Delete
	require.NoError(t, database.DeleteResume(ctx, id), "should delete resume")
	_, err = database.GetResume(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResumeNotFound_Integration(t *testing.T) {
	database := connectTestDB(t)
	ctx := context.Background()

	missing := uuid.New()
	_, err := database.GetResume(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, database.UpdateResume(ctx, missing, "n", "classic", &types.ResumeDocument{}, nil), ErrNotFound)
	assert.ErrorIs(t, database.DeleteResume(ctx, missing), ErrNotFound)
}
