package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

// fakeRow feeds canned column values into Scan.
type fakeRow struct {
	values []any
	err    error
}

func (f *fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = f.values[i].(uuid.UUID)
		case *string:
			*p = f.values[i].(string)
		case *[]byte:
			*p = f.values[i].([]byte)
		case *time.Time:
			*p = f.values[i].(time.Time)
		}
	}
	return nil
}

func TestScanResume(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	doc := types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{Name: "Dana Smith"},
		Summary:      "Builds services.",
	}
	docJSON, err := json.Marshal(doc)
	require.NoError(t, err)

	accent := "#1a365d"
	custom := types.CustomizationInput{Theme: &types.ThemeInput{Accent: &accent}}
	customJSON, err := json.Marshal(custom)
	require.NoError(t, err)

	row := &fakeRow{values: []any{id, "Backend roles", "classic", docJSON, customJSON, now, now}}
	saved, err := scanResume(row)
	require.NoError(t, err)

	assert.Equal(t, id, saved.ID)
	assert.Equal(t, "Backend roles", saved.Name)
	assert.Equal(t, "classic", saved.TemplateID)
	require.NotNil(t, saved.Document)
	assert.Equal(t, "Dana Smith", saved.Document.PersonalInfo.Name)
	require.NotNil(t, saved.Customization)
	assert.Equal(t, "#1a365d", *saved.Customization.Theme.Accent)
}

func TestScanResume_NullCustomization(t *testing.T) {
	row := &fakeRow{values: []any{
		uuid.New(), "n", "classic", []byte(`{}`), []byte(`null`), time.Now(), time.Now(),
	}}

	saved, err := scanResume(row)
	require.NoError(t, err)
	assert.Nil(t, saved.Customization)
	require.NotNil(t, saved.Document)
}

func TestScanResume_NoRows(t *testing.T) {
	row := &fakeRow{err: pgx.ErrNoRows}

	_, err := scanResume(row)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScanResume_CorruptDocument(t *testing.T) {
	row := &fakeRow{values: []any{
		uuid.New(), "n", "classic", []byte(`{broken`), []byte(nil), time.Now(), time.Now(),
	}}

	_, err := scanResume(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal document")
}
