package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joescharf/pomo/internal/models"
	"github.com/joescharf/pomo/internal/stats"
)

func seedRecords(t *testing.T, kinds ...models.IntervalKind) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	for i, k := range kinds {
		rec := &models.SessionRecord{
			Kind:            k,
			StartedAt:       now.Add(time.Duration(i) * time.Minute),
			EndedAt:         now.Add(time.Duration(i)*time.Minute + 25*time.Minute),
			DurationSeconds: 1500,
			Completed:       true,
		}
		require.NoError(t, getStore().Append(ctx, rec))
	}
}

func TestStatsWindow(t *testing.T) {
	w, err := statsWindow(false, false)
	require.NoError(t, err)
	assert.Equal(t, stats.AllTime, w)

	w, err = statsWindow(true, false)
	require.NoError(t, err)
	assert.Equal(t, stats.Week, w)

	w, err = statsWindow(false, true)
	require.NoError(t, err)
	assert.Equal(t, stats.Month, w)

	_, err = statsWindow(true, true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestStatsRun_Empty(t *testing.T) {
	testEnv(t)

	out := &bytes.Buffer{}
	ui.Out = out

	err := statsRun(stats.AllTime)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No sessions recorded")
}

func TestStatsRun_WithRecords(t *testing.T) {
	testEnv(t)
	seedRecords(t, models.KindWork, models.KindWork, models.KindShortBreak)

	out := &bytes.Buffer{}
	ui.Out = out

	err := statsRun(stats.AllTime)
	require.NoError(t, err)

	result := out.String()
	assert.Contains(t, result, "Work sessions:")
	assert.Contains(t, result, "2")
	assert.Contains(t, result, "Focused time:")
	assert.Contains(t, result, "50 min")
}

func TestExportRun_JSON(t *testing.T) {
	testEnv(t)
	seedRecords(t, models.KindWork)

	out := &bytes.Buffer{}
	ui.Out = out

	exportFormat = "json"
	err := exportRun()
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"kind": "work"`)
}

func TestExportRun_CSV(t *testing.T) {
	testEnv(t)
	seedRecords(t, models.KindWork, models.KindShortBreak)

	out := &bytes.Buffer{}
	ui.Out = out

	exportFormat = "csv"
	err := exportRun()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ID,Kind,Started")
	assert.Contains(t, out.String(), "short_break")
}

func TestExportRun_UnknownFormat(t *testing.T) {
	testEnv(t)

	exportFormat = "xml"
	err := exportRun()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
