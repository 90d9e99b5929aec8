package game

import (
	"github.com/pkg/errors"

	"snake-engine/game/types"
)

// ErrInvalidConfig wraps every configuration validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Variant selects the hazard/bonus mechanic
type Variant string

const (
	VariantPowerUp Variant = "powerup"
	VariantHazard  Variant = "hazard"
)

// PowerUpConfig tunes the invincibility power-up
type PowerUpConfig struct {
	SpawnChance float64 // probability of a spawn after each food, when none is on the board
	BonusScore  int
	DurationMs  int
	CountdownMs int // period of the invincibility countdown timer
}

// HazardConfig tunes bomb spawning
type HazardConfig struct {
	SpawnIntervalMs int
	MaxHazards      int // 0 means unlimited
}

// Config is fixed for the lifetime of an engine
type Config struct {
	BoardWidth       int
	BoardHeight      int
	InitialSnake     []types.Point // head first
	InitialFood      types.Point
	InitialDirection types.Direction

	BaseSpeedMs    int
	MinSpeedMs     int
	SpeedStepScore int
	SpeedStepMs    int
	FoodScore      int

	Variant Variant
	PowerUp *PowerUpConfig
	Hazard  *HazardConfig

	// Seed for the spawn source; 0 picks one from the clock
	Seed uint64
}

// DefaultConfig returns the classic 20x20 setup for the given variant
func DefaultConfig(variant Variant) Config {
	cfg := Config{
		BoardWidth:       types.DefaultBoardWidth,
		BoardHeight:      types.DefaultBoardHeight,
		InitialSnake:     []types.Point{{X: 10, Y: 10}},
		InitialFood:      types.Point{X: 15, Y: 15},
		InitialDirection: types.Right,
		BaseSpeedMs:      types.DefaultBaseSpeedMs,
		MinSpeedMs:       types.DefaultMinSpeedMs,
		SpeedStepScore:   types.DefaultSpeedStepScore,
		SpeedStepMs:      types.DefaultSpeedStepMs,
		FoodScore:        types.DefaultFoodScore,
		Variant:          variant,
	}

	switch variant {
	case VariantPowerUp:
		cfg.PowerUp = &PowerUpConfig{
			SpawnChance: types.DefaultPowerUpChance,
			BonusScore:  types.DefaultPowerUpBonus,
			DurationMs:  types.DefaultPowerUpDurationMs,
			CountdownMs: types.DefaultCountdownPeriodMs,
		}
	case VariantHazard:
		cfg.Hazard = &HazardConfig{
			SpawnIntervalMs: types.DefaultHazardIntervalMs,
			MaxHazards:      types.DefaultMaxHazards,
		}
	}

	return cfg
}

// Grid returns the board described by the config
func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.BoardWidth, Height: c.BoardHeight}
}

// Validate checks the config is playable
func (c Config) Validate() error {
	if c.BoardWidth <= 0 || c.BoardHeight <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "board %dx%d", c.BoardWidth, c.BoardHeight)
	}
	if len(c.InitialSnake) == 0 {
		return errors.Wrap(ErrInvalidConfig, "initial snake is empty")
	}

	grid := c.Grid()
	seen := make(types.PointSet, len(c.InitialSnake))
	for _, p := range c.InitialSnake {
		if !grid.Contains(p) {
			return errors.Wrapf(ErrInvalidConfig, "initial segment %v out of bounds", p)
		}
		if seen.Has(p) {
			return errors.Wrapf(ErrInvalidConfig, "initial segment %v repeated", p)
		}
		seen.Add(p)
	}
	if !grid.Contains(c.InitialFood) {
		return errors.Wrapf(ErrInvalidConfig, "initial food %v out of bounds", c.InitialFood)
	}
	if seen.Has(c.InitialFood) {
		return errors.Wrapf(ErrInvalidConfig, "initial food %v on snake", c.InitialFood)
	}
	if !c.InitialDirection.Valid() {
		return errors.Wrapf(ErrInvalidConfig, "initial direction %d", c.InitialDirection)
	}

	if c.BaseSpeedMs <= 0 || c.MinSpeedMs <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "speeds base=%d min=%d", c.BaseSpeedMs, c.MinSpeedMs)
	}
	if c.MinSpeedMs > c.BaseSpeedMs {
		return errors.Wrapf(ErrInvalidConfig, "min speed %d above base speed %d", c.MinSpeedMs, c.BaseSpeedMs)
	}
	if c.SpeedStepScore < 0 || c.SpeedStepMs < 0 || c.FoodScore < 0 {
		return errors.Wrap(ErrInvalidConfig, "negative speed step or food score")
	}

	switch c.Variant {
	case VariantPowerUp:
		if c.PowerUp == nil {
			return errors.Wrap(ErrInvalidConfig, "powerup variant without powerup config")
		}
		if c.PowerUp.SpawnChance < 0 || c.PowerUp.SpawnChance > 1 {
			return errors.Wrapf(ErrInvalidConfig, "spawn chance %v", c.PowerUp.SpawnChance)
		}
		if c.PowerUp.DurationMs <= 0 || c.PowerUp.CountdownMs <= 0 || c.PowerUp.BonusScore < 0 {
			return errors.Wrap(ErrInvalidConfig, "powerup duration, countdown or bonus")
		}
	case VariantHazard:
		if c.Hazard == nil {
			return errors.Wrap(ErrInvalidConfig, "hazard variant without hazard config")
		}
		if c.Hazard.SpawnIntervalMs <= 0 || c.Hazard.MaxHazards < 0 {
			return errors.Wrap(ErrInvalidConfig, "hazard interval or cap")
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown variant %q", c.Variant)
	}

	return nil
}

// ParseVariant maps a flag value to a Variant
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantPowerUp, VariantHazard:
		return Variant(s), nil
	}
	return "", errors.Wrapf(ErrInvalidConfig, "unknown variant %q", s)
}
