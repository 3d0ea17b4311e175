package terminal

import (
	"context"
	"log"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

// frame is one step reported by the runner
type frame struct {
	res  game.StepResult
	snap game.Snapshot
}

// App plays a session on a tcell screen
type App struct {
	screen   tcell.Screen
	session  *game.Session
	renderer *Renderer
	sound    *Sound
}

// OpenScreen creates and initializes the terminal screen
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return screen, nil
}

func NewApp(screen tcell.Screen, session *game.Session, sound *Sound) *App {
	return &App{
		screen:   screen,
		session:  session,
		renderer: NewRenderer(),
		sound:    sound,
	}
}

// Run plays until the user quits or ctx is cancelled. Input is read on its
// own goroutine; drawing happens only on the calling goroutine.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	a.draw(a.session.CurrentState())

	frames := make(chan frame, 1)
	cur := a.startRound(ctx, frames)
	defer func() { cur.cancel() }()
	running := true

	for {
		select {
		case <-ctx.Done():
			return nil

		case f := <-frames:
			if f.res.Ate {
				a.sound.Pickup()
			}
			a.draw(f.snap)

		case err := <-cur.done:
			running = false
			if err != nil && ctx.Err() == nil {
				log.Printf("runner stopped: %v", err)
			}
			// drain a frame the runner handed over just before returning
			select {
			case f := <-frames:
				a.draw(f.snap)
			default:
			}

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if isRestart(ev) && !running && a.session.Phase() == types.GameOver {
					if err := a.session.Reset(); err != nil {
						return err
					}
					a.screen.Clear()
					a.renderer.Invalidate()
					a.draw(a.session.CurrentState())
					cur = a.startRound(ctx, frames)
					running = true
					continue
				}
				if d, ok := KeyDirection(ev); ok {
					a.session.RequestDirection(d)
				}
			case *tcell.EventResize:
				a.screen.Sync()
				a.screen.Clear()
				a.renderer.Invalidate()
				a.draw(a.session.CurrentState())
			}
		}
	}
}

// round is one runner goroutine playing a game to its end
type round struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan error
}

// startRound runs the session on its own goroutine, handing frames to the
// caller. The round's context is released as soon as the runner returns.
func (a *App) startRound(ctx context.Context, frames chan<- frame) *round {
	runCtx, cancel := context.WithCancel(ctx)
	r := &round{ctx: runCtx, cancel: cancel, done: make(chan error, 1)}
	runner := game.NewRunner(a.session, func(res game.StepResult, snap game.Snapshot) {
		select {
		case frames <- frame{res: res, snap: snap}:
		case <-runCtx.Done():
		}
	})
	go func() {
		err := runner.Run(runCtx)
		cancel()
		r.done <- err
	}()
	return r
}

func (a *App) draw(s game.Snapshot) {
	a.renderer.Draw(a.screen, s, a.session.ScoreBoard().HighScore())
	a.screen.Show()
}
