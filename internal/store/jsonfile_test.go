package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joescharf/pomo/internal/models"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), "history.json"))
}

func testRecord(kind models.IntervalKind, completed bool) *models.SessionRecord {
	started := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	return &models.SessionRecord{
		Kind:            kind,
		StartedAt:       started,
		EndedAt:         started.Add(25 * time.Minute),
		DurationSeconds: 1500,
		Completed:       completed,
	}
}

func TestLoad_FirstRun(t *testing.T) {
	s := newTestStore(t)

	records, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records, "missing file is a first run, not an error")
}

func TestAppend_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := testRecord(models.KindWork, true)
	require.NoError(t, s.Append(ctx, rec))
	assert.NotEmpty(t, rec.ID, "append should assign an ID")

	records, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Equal(t, models.KindWork, records[0].Kind)
	assert.Equal(t, 1500, records[0].DurationSeconds)
	assert.True(t, records[0].Completed)
	assert.True(t, rec.StartedAt.Equal(records[0].StartedAt))
}

func TestAppend_PreservesOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	kinds := []models.IntervalKind{models.KindWork, models.KindShortBreak, models.KindWork}
	for _, k := range kinds {
		require.NoError(t, s.Append(ctx, testRecord(k, true)))
	}

	records, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, k := range kinds {
		assert.Equal(t, k, records[i].Kind)
	}
}

func TestAppend_CreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONStore(filepath.Join(dir, "nested", "history.json"))

	require.NoError(t, s.Append(context.Background(), testRecord(models.KindWork, true)))

	_, err := os.Stat(filepath.Join(dir, "nested"))
	assert.NoError(t, err, "should create parent directory")
}

func TestLoad_CorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0644))

	_, err := s.Load(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse history file")
}

func TestLoad_MissingFieldsDefault(t *testing.T) {
	// Records written by an older version may lack newer fields like "id".
	s := newTestStore(t)
	doc := `{"version":1,"sessions":[{"kind":"work","started_at":"2026-08-31T09:00:00+10:00","ended_at":"2026-08-31T09:25:00+10:00"}]}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(doc), 0644))

	records, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].ID)
	assert.Zero(t, records[0].DurationSeconds)
	assert.False(t, records[0].Completed)
}

func TestLoad_UnknownFieldsIgnored(t *testing.T) {
	s := newTestStore(t)
	doc := `{"version":2,"sessions":[{"kind":"work","completed":true,"mood":"great"}],"extra":{}}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(doc), 0644))

	records, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Completed)
}

func TestAppend_AppendsToExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := testRecord(models.KindWork, true)
	require.NoError(t, s.Append(ctx, first))

	second := testRecord(models.KindShortBreak, false)
	require.NoError(t, s.Append(ctx, second))

	records, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestWrite_HumanInspectable(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(context.Background(), testRecord(models.KindWork, true)))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind": "work"`)
	assert.Contains(t, string(data), `"duration_seconds": 1500`)
}
