package terminal

import (
	"context"
	"testing"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"
)

// shortGame ends on the first tick: the head starts against the right wall
func shortGame(t *testing.T) *game.Session {
	t.Helper()
	cfg := game.Config{
		Rows:           1,
		Cols:           3,
		Start:          pt(0, 2),
		StartDirection: types.Right,
		StartLength:    2,
		StartInterval:  time.Millisecond,
		MinInterval:    time.Millisecond,
	}
	s, err := game.NewSession(cfg, game.WithSeed(1))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestRoundReleasesContextWhenGameEnds(t *testing.T) {
	app := NewApp(nil, shortGame(t), nil)
	frames := make(chan frame, 1)

	for i := 0; i < 3; i++ {
		r := app.startRound(context.Background(), frames)
		select {
		case err := <-r.done:
			if err != nil {
				t.Fatalf("round %d: runner returned %v", i, err)
			}
		case <-time.After(time.Second):
			t.Fatalf("round %d: runner did not finish", i)
		}
		if r.ctx.Err() == nil {
			t.Errorf("round %d: context still live after the runner returned", i)
		}

		f := <-frames
		if f.res.Phase != types.GameOver || f.res.Collision != types.WallCollision {
			t.Errorf("round %d: last frame = %+v, want wall game over", i, f.res)
		}
		if err := app.session.Reset(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRoundStopsWithParent(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.StartInterval = time.Hour
	s, err := game.NewSession(cfg, game.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	app := NewApp(nil, s, nil)

	ctx, cancel := context.WithCancel(context.Background())
	r := app.startRound(ctx, make(chan frame, 1))
	cancel()

	select {
	case err := <-r.done:
		if err != context.Canceled {
			t.Errorf("runner returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("runner ignored cancellation")
	}
}
