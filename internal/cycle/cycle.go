package cycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joescharf/pomo/internal/models"
	"github.com/joescharf/pomo/internal/notify"
	"github.com/joescharf/pomo/internal/output"
	"github.com/joescharf/pomo/internal/store"
)

// ErrInterrupted reports that the user ended the cycle early. The
// interrupted interval has already been recorded as incomplete.
var ErrInterrupted = errors.New("cycle interrupted")

// Long break bounds in minutes.
const (
	MinLongBreak = 15
	MaxLongBreak = 30
)

const workSessionsPerCycle = 4

// Sequence is the fixed interval order of one full Pomodoro cycle.
var Sequence = []models.IntervalKind{
	models.KindWork, models.KindShortBreak,
	models.KindWork, models.KindShortBreak,
	models.KindWork, models.KindShortBreak,
	models.KindWork, models.KindLongBreak,
}

// Config carries the user-tunable parts of a cycle.
type Config struct {
	LongBreak  int  // long break minutes, MinLongBreak..MaxLongBreak
	SkipBreaks bool // skip the short breaks between work sessions
}

// Validate rejects a bad configuration before any interval starts.
func (c Config) Validate() error {
	if c.LongBreak < MinLongBreak || c.LongBreak > MaxLongBreak {
		return fmt.Errorf("long break must be between %d and %d minutes, got %d",
			MinLongBreak, MaxLongBreak, c.LongBreak)
	}
	return nil
}

// Durations maps interval kinds to planned lengths. Tests shrink these.
type Durations struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultDurations returns the classic 25/5 minute durations with the
// configured long break.
func DefaultDurations(longBreakMinutes int) Durations {
	return Durations{
		Work:       25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  time.Duration(longBreakMinutes) * time.Minute,
	}
}

// For returns the planned duration for a kind.
func (d Durations) For(kind models.IntervalKind) time.Duration {
	switch kind {
	case models.KindWork:
		return d.Work
	case models.KindShortBreak:
		return d.ShortBreak
	default:
		return d.LongBreak
	}
}

// Runner drives one full Pomodoro cycle: four work sessions separated by
// short breaks, then a long break. Intervals run strictly in sequence on a
// single goroutine; the only asynchronous input is ctx cancellation, which
// ends the run after recording the current interval as incomplete.
type Runner struct {
	Store      store.Store
	Notifier   notify.Notifier
	UI         *output.UI
	Durations  Durations
	SkipBreaks bool
	Tick       time.Duration // countdown cadence, defaults to one second
}

// Run executes the cycle. It returns ErrInterrupted when ctx is cancelled
// mid-interval, or a storage error if a record cannot be persisted.
func (r *Runner) Run(ctx context.Context) error {
	tick := r.Tick
	if tick <= 0 {
		tick = time.Second
	}

	workNum := 0
	for i, kind := range Sequence {
		if r.SkipBreaks && kind == models.KindShortBreak {
			// Skipped breaks vanish from history: no countdown,
			// no notification, no record.
			continue
		}
		if kind == models.KindWork {
			workNum++
		}

		planned := r.Durations.For(kind)
		r.announce(kind, workNum, planned)

		started := time.Now()
		finished := r.countdown(ctx, planned, tick)

		rec := models.SessionRecord{
			Kind:            kind,
			StartedAt:       started,
			EndedAt:         time.Now(),
			DurationSeconds: int(planned / time.Second),
			Completed:       finished,
		}

		if !finished {
			r.UI.Warning("Cancelled during %s", kind.Label())
			if err := r.Store.Append(ctx, &rec); err != nil {
				return fmt.Errorf("record cancelled %s: %w", kind.Label(), err)
			}
			return ErrInterrupted
		}

		// Notification first: a failed append does not retract it.
		r.transition(i, kind, workNum)
		if err := r.Store.Append(ctx, &rec); err != nil {
			return fmt.Errorf("record %s: %w", kind.Label(), err)
		}
	}

	r.UI.Success("Pomodoro complete!")
	return nil
}

// countdown blocks until planned elapses or ctx is cancelled, and reports
// whether the interval ran to completion. The cancellation check happens
// once per tick, before sleeping.
func (r *Runner) countdown(ctx context.Context, planned, tick time.Duration) bool {
	start := time.Now()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			r.UI.CountdownStop()
			return false
		}

		elapsed := time.Since(start)
		if elapsed >= planned {
			r.UI.CountdownDone(planned)
			return true
		}
		r.UI.Countdown(planned-elapsed, planned)

		select {
		case <-ctx.Done():
			r.UI.CountdownStop()
			return false
		case <-ticker.C:
		}
	}
}

// announce prints the interval header.
func (r *Runner) announce(kind models.IntervalKind, workNum int, planned time.Duration) {
	switch kind {
	case models.KindWork:
		r.UI.Info("Work session %d/%d: %s — press Ctrl+C to cancel",
			workNum, workSessionsPerCycle, output.FormatClock(planned))
	case models.KindShortBreak:
		r.UI.Info("Short break: %s", output.FormatClock(planned))
	case models.KindLongBreak:
		r.UI.Info("Long break: %s", output.FormatClock(planned))
	}
}

// transition fires the end-of-interval notification naming what just ended
// and what comes next. Notification failures never abort the cycle.
func (r *Runner) transition(i int, kind models.IntervalKind, workNum int) {
	var title, body string
	next, ok := r.nextKind(i)
	switch {
	case !ok:
		title = "Pomodoro complete!"
		body = "You finished a full Pomodoro cycle. Great job!"
	case kind == models.KindWork:
		title = "Work session complete"
		body = fmt.Sprintf("Great work on session %d/%d! Up next: %s.",
			workNum, workSessionsPerCycle, next.Label())
	default:
		title = "Break over"
		body = fmt.Sprintf("Up next: %s.", next.Label())
	}

	r.UI.Success("%s done", kind.Label())
	if err := r.Notifier.Notify(title, body); err != nil {
		r.UI.VerboseLog("notification failed: %v", err)
	}
}

// nextKind returns the next interval that will actually execute after
// position i, accounting for skipped breaks.
func (r *Runner) nextKind(i int) (models.IntervalKind, bool) {
	for _, k := range Sequence[i+1:] {
		if r.SkipBreaks && k == models.KindShortBreak {
			continue
		}
		return k, true
	}
	return "", false
}
