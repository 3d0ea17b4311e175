package game

import (
	"context"
	"time"

	"gridsnake/game/types"
)

// Runner ticks a Session at its current interval. The timer is re-armed only
// after a step completes, so steps never overlap and a speed change applies
// to the very next wait.
type Runner struct {
	session *Session
	onStep  func(StepResult, Snapshot)
}

// NewRunner creates a runner; onStep, if not nil, receives every step result
// with the snapshot taken right after it
func NewRunner(s *Session, onStep func(StepResult, Snapshot)) *Runner {
	return &Runner{session: s, onStep: onStep}
}

// Run blocks until the game ends or ctx is cancelled. It returns nil on game
// over and ctx.Err() on cancellation.
func (r *Runner) Run(ctx context.Context) error {
	if r.session.Phase() == types.GameOver {
		return nil
	}

	timer := time.NewTimer(r.session.Interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			res := r.session.Tick()
			if r.onStep != nil {
				r.onStep(res, r.session.CurrentState())
			}
			if res.Phase == types.GameOver {
				return nil
			}
			timer.Reset(res.Interval)
		}
	}
}
