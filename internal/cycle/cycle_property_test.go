package cycle

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/joescharf/pomo/internal/notify"
	"github.com/joescharf/pomo/internal/output"
	"github.com/joescharf/pomo/internal/store"
)

// For every valid long break length, an un-interrupted cycle persists
// exactly 8 records, or exactly 5 when short breaks are skipped.
func TestProperty_CycleRecordCount(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		longBreak := rapid.IntRange(MinLongBreak, MaxLongBreak).Draw(rt, "longBreak")
		skip := rapid.Bool().Draw(rt, "skip")

		cfg := Config{LongBreak: longBreak, SkipBreaks: skip}
		if err := cfg.Validate(); err != nil {
			rt.Fatalf("valid config rejected: %v", err)
		}

		dir, err := os.MkdirTemp("", "cycle-property-*")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		defer os.RemoveAll(dir)

		s := store.NewJSONStore(filepath.Join(dir, "history.json"))
		r := &Runner{
			Store:    s,
			Notifier: notify.Disabled(),
			UI:       &output.UI{Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}},
			Durations: Durations{
				Work:       4 * time.Millisecond,
				ShortBreak: 2 * time.Millisecond,
				LongBreak:  3 * time.Millisecond,
			},
			SkipBreaks: cfg.SkipBreaks,
			Tick:       time.Millisecond,
		}

		if err := r.Run(context.Background()); err != nil {
			rt.Fatalf("cycle failed: %v", err)
		}

		records, err := s.Load(context.Background())
		if err != nil {
			rt.Fatalf("load: %v", err)
		}

		want := len(Sequence)
		if skip {
			want = 5
		}
		if len(records) != want {
			rt.Fatalf("got %d records, want %d (skip=%v)", len(records), want, skip)
		}
		for i, rec := range records {
			if !rec.Completed {
				rt.Fatalf("record %d not completed", i)
			}
			if rec.ID == "" {
				rt.Fatalf("record %d has no ID", i)
			}
		}
	})
}
