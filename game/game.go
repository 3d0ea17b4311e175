package game

import (
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Spawner chooses where new food appears
type Spawner interface {
	Spawn(grid types.Grid, occupied func(types.Coordinate) bool) (types.Coordinate, bool)
}

// StepResult describes the outcome of one tick
type StepResult struct {
	Phase     types.Phase
	Ate       bool
	Score     int
	Length    int
	Interval  time.Duration
	Collision types.CollisionType
	Tick      int64
}

// Engine owns the state of a single game and advances it one tick at a time.
// It is not safe for concurrent use; Session serializes access.
type Engine struct {
	cfg        Config
	grid       types.Grid
	snake      *entity.Snake
	collisions *manager.CollisionManager
	spawner    Spawner

	food    types.Coordinate
	hasFood bool

	score     int
	interval  time.Duration
	phase     types.Phase
	collision types.CollisionType
	ticks     int64
}

// NewEngine validates cfg and lays out a fresh game
func NewEngine(cfg Config, spawner Spawner) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := cfg.Grid()
	e := &Engine{
		cfg:        cfg,
		grid:       grid,
		snake:      entity.NewSnake(cfg.Start, cfg.StartDirection, cfg.StartLength),
		collisions: manager.NewCollisionManager(grid),
		spawner:    spawner,
		interval:   cfg.StartInterval,
		phase:      types.Active,
	}
	e.spawnFood()
	return e, nil
}

// Step advances the game by one tick. requested is applied unless it is
// invalid or reverses the current heading; pass types.None to keep going
// straight. Once the game is over Step changes nothing.
func (e *Engine) Step(requested types.Direction) StepResult {
	if e.phase == types.GameOver {
		return e.result(false)
	}
	e.ticks++

	e.snake.SetDirection(requested)
	next := e.snake.NextHead()

	if c := e.collisions.Check(next, e.snake.Trail); c != types.NoCollision {
		e.phase = types.GameOver
		e.collision = c
		return e.result(false)
	}

	ate := e.hasFood && e.collisions.IsFoodCollision(next, e.food)
	if ate {
		e.score++
		e.snake.Grow()
		e.speedUp()
	}

	e.snake.Advance(next)

	if ate {
		e.spawnFood()
	}
	return e.result(ate)
}

func (e *Engine) speedUp() {
	e.interval -= e.cfg.IntervalStep
	if e.interval < e.cfg.MinInterval {
		e.interval = e.cfg.MinInterval
	}
}

// spawnFood places food on a cell outside the trail, which includes the head.
// A full board leaves the game without food.
func (e *Engine) spawnFood() {
	e.food, e.hasFood = e.spawner.Spawn(e.grid, e.snake.Trail.Contains)
}

func (e *Engine) result(ate bool) StepResult {
	return StepResult{
		Phase:     e.phase,
		Ate:       ate,
		Score:     e.score,
		Length:    e.snake.Length(),
		Interval:  e.interval,
		Collision: e.collision,
		Tick:      e.ticks,
	}
}

func (e *Engine) Phase() types.Phase {
	return e.phase
}

func (e *Engine) Interval() time.Duration {
	return e.interval
}

// State returns a snapshot that shares no memory with the engine
func (e *Engine) State() Snapshot {
	return Snapshot{
		Grid:      e.grid,
		Head:      e.snake.Head,
		Direction: e.snake.Direction,
		Trail:     e.snake.Trail.Items(),
		Food:      e.food,
		HasFood:   e.hasFood,
		Score:     e.score,
		Length:    e.snake.Length(),
		Phase:     e.phase,
		Collision: e.collision,
		Interval:  e.interval,
		Tick:      e.ticks,
	}
}
