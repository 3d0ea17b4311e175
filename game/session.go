package game

import (
	"log"
	"sync"
	"time"

	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
)

// Session is the entry point for UIs: it starts and resets games, buffers
// direction requests between ticks and reports the end of each game.
// All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	cfg     Config
	spawner Spawner
	scores  *manager.ScoreBoard

	id        string
	engine    *Engine
	pending   types.Direction
	startTime time.Time
	reported  bool

	onGameOver []func(Snapshot)
}

// Option configures a Session
type Option func(*Session)

// WithSpawner replaces the random food spawner
func WithSpawner(sp Spawner) Option {
	return func(s *Session) { s.spawner = sp }
}

// WithSeed makes food placement reproducible
func WithSeed(seed uint64) Option {
	return func(s *Session) { s.spawner = manager.NewFoodManager(seed) }
}

// WithScoreBoard records finished games into sb
func WithScoreBoard(sb *manager.ScoreBoard) Option {
	return func(s *Session) { s.scores = sb }
}

// NewSession validates cfg and starts the first game
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.spawner == nil {
		s.spawner = manager.NewFoodManager(uint64(time.Now().UnixNano()))
	}
	if s.scores == nil {
		s.scores = manager.NewScoreBoard()
	}

	if err := s.Start(); err != nil {
		return nil, err
	}
	return s, nil
}

// Start discards the current game, if any, and begins a new one
func (s *Session) Start() error {
	s.mu.Lock()
	engine, err := NewEngine(s.cfg, s.spawner)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.engine = engine
	s.id = uuid.New().String()
	s.pending = types.None
	s.startTime = time.Now()
	s.reported = false
	id := s.id
	s.mu.Unlock()

	log.Printf("session %s started: %dx%d grid, length %d, interval %v",
		id, s.cfg.Rows, s.cfg.Cols, s.cfg.StartLength, s.cfg.StartInterval)
	return nil
}

// Reset starts a new game after the previous one ended
func (s *Session) Reset() error {
	return s.Start()
}

// RequestDirection buffers d for the next tick. Only the latest request
// before a tick is used. Invalid directions are ignored.
func (s *Session) RequestDirection(d types.Direction) bool {
	if !d.Valid() {
		return false
	}
	s.mu.Lock()
	s.pending = d
	s.mu.Unlock()
	return true
}

// Tick runs one engine step with the buffered direction
func (s *Session) Tick() StepResult {
	s.mu.Lock()
	res := s.engine.Step(s.pending)
	s.pending = types.None

	if res.Phase != types.GameOver || s.reported {
		s.mu.Unlock()
		return res
	}

	s.reported = true
	snap := s.snapshotLocked()
	rec := manager.GameRecord{
		SessionID: s.id,
		Score:     res.Score,
		Length:    res.Length,
		Collision: res.Collision,
		StartTime: s.startTime,
		EndTime:   time.Now(),
	}
	callbacks := append([]func(Snapshot){}, s.onGameOver...)
	s.mu.Unlock()

	best := s.scores.Record(rec)
	log.Printf("session %s over: %s collision, score %d, %d ticks (new high score: %t)",
		rec.SessionID, rec.Collision, rec.Score, res.Tick, best)

	for _, fn := range callbacks {
		fn(snap)
	}
	return res
}

// OnGameOver registers fn to run once when a game ends
func (s *Session) OnGameOver(fn func(Snapshot)) {
	s.mu.Lock()
	s.onGameOver = append(s.onGameOver, fn)
	s.mu.Unlock()
}

// CurrentState returns a snapshot of the running game
func (s *Session) CurrentState() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := s.engine.State()
	snap.SessionID = s.id
	return snap
}

// Interval returns the delay before the next tick
func (s *Session) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Interval()
}

func (s *Session) Phase() types.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Phase()
}

func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *Session) ScoreBoard() *manager.ScoreBoard {
	return s.scores
}

func (s *Session) Config() Config {
	return s.cfg
}
