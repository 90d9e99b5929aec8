package game

import (
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"snake-engine/game/entity"
	"snake-engine/game/manager"
	"snake-engine/game/types"
)

// State is a detached copy of everything the engine owns
type State struct {
	GameID    string
	Grid      types.Grid
	Snake     []types.Point // head first
	Direction types.Direction
	Food      types.Point
	Status    types.Status
	Cause     types.CollisionType
	Score     int
	Speed     int
	Level     int
	Ticks     int
	Variant   VariantState
}

// Engine owns the game state and advances it one tick at a time. It is not
// safe for concurrent use: a host drives it from a single goroutine, which
// is what Runner does.
type Engine struct {
	id         string
	cfg        Config
	grid       types.Grid
	policy     manager.ScoringPolicy
	collisions *manager.CollisionManager
	spawner    *manager.SpawnManager
	stats      *manager.StatsManager
	logger     *log.Logger
	now        func() time.Time

	snake     *entity.Snake
	food      types.Point
	status    types.Status
	cause     types.CollisionType
	score     int
	speed     int
	ticks     int
	startTime time.Time
	variant   VariantState
}

// Option configures an Engine
type Option func(*Engine)

func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStats shares a session stats store between engines
func WithStats(stats *manager.StatsManager) Option {
	return func(e *Engine) {
		if stats != nil {
			e.stats = stats
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New validates cfg and returns an engine in NotStarted
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := cfg.Grid()
	e := &Engine{
		cfg:        cfg,
		grid:       grid,
		policy:     policyFor(cfg),
		collisions: manager.NewCollisionManager(grid),
		spawner:    manager.NewSpawnManager(grid, seed),
		stats:      manager.NewStatsManager(),
		logger:     log.New(io.Discard, "", 0),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.reset()
	return e, nil
}

func policyFor(cfg Config) manager.ScoringPolicy {
	sp := manager.ScoringPolicy{
		BaseSpeedMs:    cfg.BaseSpeedMs,
		MinSpeedMs:     cfg.MinSpeedMs,
		SpeedStepScore: cfg.SpeedStepScore,
		SpeedStepMs:    cfg.SpeedStepMs,
		FoodScore:      cfg.FoodScore,
	}
	if cfg.PowerUp != nil {
		sp.BonusScore = cfg.PowerUp.BonusScore
	}
	return sp
}

// reset restores the configured initial state and leaves the engine in NotStarted
func (e *Engine) reset() {
	e.id = uuid.New().String()
	e.snake = entity.NewSnake(e.cfg.InitialSnake, e.cfg.InitialDirection)
	e.food = e.cfg.InitialFood
	e.status = types.NotStarted
	e.cause = types.NoCollision
	e.score = 0
	e.speed = e.policy.NextSpeed(0)
	e.ticks = 0
	e.startTime = e.now()
	e.variant = newVariantState(e.cfg.Variant)
}

// Start moves NotStarted to Running; any other state is left alone
func (e *Engine) Start() bool {
	if e.status != types.NotStarted {
		return false
	}
	e.status = types.Running
	e.startTime = e.now()
	e.logger.Printf("game %s started (%s)", e.id, e.cfg.Variant)
	return true
}

// Restart discards the current game and begins a fresh one in Running
func (e *Engine) Restart() {
	prev := e.id
	e.reset()
	e.status = types.Running
	e.logger.Printf("game %s restarted as %s", prev, e.id)
}

// SetDirection buffers a turn for the next tick. It is ignored unless
// Running, and reversals are rejected without error.
func (e *Engine) SetDirection(d types.Direction) bool {
	if e.status != types.Running {
		return false
	}
	return e.snake.SetDirection(d)
}

// Tick advances the snake one cell. Outside Running it does nothing. The
// only error is a board with no room left for food, which also ends the game.
func (e *Engine) Tick() error {
	if e.status != types.Running {
		return nil
	}
	e.ticks++

	newHead := e.snake.NextHead()
	invincible := e.invincible()

	if invincible && !e.grid.Contains(newHead) {
		newHead = e.grid.Wrap(newHead)
	}

	if !invincible {
		if e.collisions.IsWallCollision(newHead) {
			e.endGame(types.WallCollision)
			return nil
		}
		if e.collisions.IsSelfCollision(newHead, e.snake.Body) {
			e.endGame(types.SelfCollision)
			return nil
		}
	}

	if hz, ok := e.variant.(*HazardState); ok && e.collisions.IsHazardCollision(newHead, hz.Hazards) {
		e.endGame(types.HazardCollision)
		return nil
	}

	e.snake.Move(newHead)

	if e.collisions.IsFoodCollision(newHead, e.food) {
		if err := e.eat(); err != nil {
			return err
		}
	} else {
		e.snake.RemoveTail()
	}

	if pu, ok := e.variant.(*PowerUpState); ok && e.collisions.IsPowerUpCollision(newHead, pu.PowerUp) {
		pu.PowerUp = nil
		pu.Invincible = true
		pu.RemainingMs = e.cfg.PowerUp.DurationMs
		e.score += e.policy.BonusReward()
		e.logger.Printf("game %s: power-up collected, invincible for %dms", e.id, pu.RemainingMs)
	}

	return nil
}

// eat scores the food, respawns it and rolls for a power-up. The tail is
// kept, so the snake grows by one.
func (e *Engine) eat() error {
	e.score += e.policy.FoodReward()
	e.speed = e.policy.NextSpeed(e.score)

	food, err := e.spawner.SpawnFood(e.occupied())
	if err != nil {
		e.logger.Printf("game %s: no room for food: %v", e.id, err)
		e.endGame(types.BoardFull)
		return errors.Wrapf(err, "game %s", e.id)
	}
	e.food = food

	pu, ok := e.variant.(*PowerUpState)
	if !ok || pu.PowerUp != nil || !e.spawner.Roll(e.cfg.PowerUp.SpawnChance) {
		return nil
	}
	p, err := e.spawner.SpawnPowerUp(e.occupied(), e.food)
	if err != nil {
		e.logger.Printf("game %s: power-up skipped: %v", e.id, err)
		return nil
	}
	pu.PowerUp = &p
	return nil
}

// CountdownInvincibility runs one period of the invincibility timer.
// It reports whether the state changed.
func (e *Engine) CountdownInvincibility() bool {
	pu, ok := e.variant.(*PowerUpState)
	if !ok || !pu.Invincible || e.status != types.Running {
		return false
	}
	pu.RemainingMs -= e.cfg.PowerUp.CountdownMs
	if pu.RemainingMs <= 0 {
		pu.RemainingMs = 0
		pu.Invincible = false
		e.logger.Printf("game %s: invincibility expired", e.id)
	}
	return true
}

// SpawnHazard places one bomb. It is a no-op outside Running, in the
// power-up variant, or when the hazard cap is reached.
func (e *Engine) SpawnHazard() error {
	hz, ok := e.variant.(*HazardState)
	if !ok || e.status != types.Running {
		return nil
	}
	if limit := e.cfg.Hazard.MaxHazards; limit > 0 && len(hz.Hazards) >= limit {
		return nil
	}
	p, err := e.spawner.SpawnHazard(e.occupied(), e.food)
	if err != nil {
		e.logger.Printf("game %s: hazard skipped: %v", e.id, err)
		return errors.Wrapf(err, "game %s", e.id)
	}
	hz.Hazards = append(hz.Hazards, p)
	e.logger.Printf("game %s: hazard at %v (%d total)", e.id, p, len(hz.Hazards))
	return nil
}

func (e *Engine) endGame(cause types.CollisionType) {
	e.status = types.GameOver
	e.cause = cause
	e.stats.AddGame(manager.GameRecord{
		ID:        e.id,
		StartTime: e.startTime,
		EndTime:   e.now(),
		Score:     e.score,
		Length:    e.snake.Len(),
		Ticks:     e.ticks,
		Cause:     cause,
	})
	e.logger.Printf("game %s over: %s, score %d, length %d", e.id, cause, e.score, e.snake.Len())
}

func (e *Engine) invincible() bool {
	pu, ok := e.variant.(*PowerUpState)
	return ok && pu.Invincible
}

// occupied holds the snake plus every variant entity, but not the food
func (e *Engine) occupied() types.PointSet {
	return types.NewPointSet(e.snake.Body, e.variant.entities())
}

func (e *Engine) ID() string {
	return e.id
}

func (e *Engine) Status() types.Status {
	return e.status
}

func (e *Engine) Score() int {
	return e.score
}

// Speed is the current tick interval in milliseconds
func (e *Engine) Speed() int {
	return e.speed
}

// Interval is Speed as a duration, for timers
func (e *Engine) Interval() time.Duration {
	return time.Duration(e.speed) * time.Millisecond
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Stats() *manager.StatsManager {
	return e.stats
}

// State returns a copy of the engine state that shares nothing with it
func (e *Engine) State() State {
	return State{
		GameID:    e.id,
		Grid:      e.grid,
		Snake:     e.snake.Clone(),
		Direction: e.snake.Direction,
		Food:      e.food,
		Status:    e.status,
		Cause:     e.cause,
		Score:     e.score,
		Speed:     e.speed,
		Level:     e.policy.Level(e.speed),
		Ticks:     e.ticks,
		Variant:   e.variant.clone(),
	}
}

// Snapshot projects the current state for a renderer
func (e *Engine) Snapshot() Snapshot {
	snap := Project(e.State())
	snap.HighScore = e.stats.HighScore()
	snap.GamesPlayed = e.stats.GamesPlayed()
	return snap
}
