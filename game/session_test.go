package game

import (
	"errors"
	"testing"

	"gridsnake/game/manager"
	"gridsnake/game/types"
)

func newTestSession(t *testing.T, cfg Config, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithSpawner(&scriptedSpawner{park: pt(0, 0)})}, opts...)
	s, err := NewSession(cfg, opts...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.StartInterval = 0
	if _, err := NewSession(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("NewSession() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLatestDirectionRequestWins(t *testing.T) {
	s := newTestSession(t, testConfig())

	s.RequestDirection(types.Up)
	s.RequestDirection(types.Down)
	s.Tick()

	if st := s.CurrentState(); st.Head != pt(11, 7) || st.Direction != types.Down {
		t.Errorf("head %v dir %v, want (11,7) down", st.Head, st.Direction)
	}
}

func TestInvalidRequestKeepsPending(t *testing.T) {
	s := newTestSession(t, testConfig())

	s.RequestDirection(types.Up)
	if s.RequestDirection(types.Direction(12)) {
		t.Error("invalid direction accepted")
	}
	s.Tick()

	if st := s.CurrentState(); st.Direction != types.Up {
		t.Errorf("direction = %v, want up", st.Direction)
	}
}

func TestRequestIsConsumedByTick(t *testing.T) {
	s := newTestSession(t, testConfig())

	s.RequestDirection(types.Up)
	s.Tick()
	// Right is legal from Up; a stale buffered Up must not override it
	s.RequestDirection(types.Right)
	s.Tick()
	s.Tick()

	if st := s.CurrentState(); st.Head != pt(9, 9) {
		t.Errorf("head = %v, want (9,9)", st.Head)
	}
}

func TestGameOverReportedOnce(t *testing.T) {
	cfg := testConfig()
	cfg.Start = pt(10, 14)
	sb := manager.NewScoreBoard()
	s := newTestSession(t, cfg, WithScoreBoard(sb))

	calls := 0
	var final Snapshot
	s.OnGameOver(func(snap Snapshot) {
		calls++
		final = snap
		// callbacks may query the session
		_ = s.CurrentState()
	})

	for i := 0; i < 3; i++ {
		s.Tick()
	}

	if calls != 1 {
		t.Fatalf("OnGameOver called %d times, want 1", calls)
	}
	if final.Phase != types.GameOver || final.Collision != types.WallCollision {
		t.Errorf("final snapshot = %+v", final)
	}
	if final.SessionID != s.ID() {
		t.Errorf("snapshot session %q, want %q", final.SessionID, s.ID())
	}
	if sb.GamesPlayed() != 1 {
		t.Errorf("GamesPlayed() = %d, want 1", sb.GamesPlayed())
	}
	if got := sb.History()[0].Collision; got != types.WallCollision {
		t.Errorf("recorded collision = %v", got)
	}
}

func TestResetStartsFreshGame(t *testing.T) {
	cfg := testConfig()
	cfg.Start = pt(10, 14)
	s := newTestSession(t, cfg)
	firstID := s.ID()

	s.Tick()
	if s.Phase() != types.GameOver {
		t.Fatalf("phase = %v, want game over", s.Phase())
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if s.Phase() != types.Active {
		t.Errorf("phase after reset = %v", s.Phase())
	}
	if s.ID() == firstID {
		t.Error("reset kept the old session id")
	}
	st := s.CurrentState()
	if st.Head != cfg.Start || st.Score != 0 || st.Tick != 0 {
		t.Errorf("state after reset = %+v", st)
	}
	if s.Interval() != cfg.StartInterval {
		t.Errorf("interval after reset = %v", s.Interval())
	}
}

func TestCurrentStateIsACopy(t *testing.T) {
	s := newTestSession(t, testConfig())

	st := s.CurrentState()
	st.Trail[0] = pt(99, 99)

	if got := s.CurrentState().Trail[0]; got == pt(99, 99) {
		t.Error("mutating a snapshot changed the session")
	}
}

func TestSeededSessionsPlaceFoodAlike(t *testing.T) {
	a, err := NewSession(DefaultConfig(), WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSession(DefaultConfig(), WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	if fa, fb := a.CurrentState().Food, b.CurrentState().Food; fa != fb {
		t.Errorf("food %v vs %v with the same seed", fa, fb)
	}
}
