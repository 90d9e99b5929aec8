package manager

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"snake-engine/game/types"
)

// ErrBoardFull is returned when no free cell is left to spawn into
var ErrBoardFull = errors.New("board full")

// SpawnManager places food, hazards and power-ups on free cells. Each
// instance owns its random source so engines never share draw order.
type SpawnManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewSpawnManager(grid types.Grid, seed uint64) *SpawnManager {
	return &SpawnManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Reseed restarts the random sequence
func (sm *SpawnManager) Reseed(seed uint64) {
	sm.rng.Seed(seed)
}

// FreeCells lists the cells not in occupied, row by row
func (sm *SpawnManager) FreeCells(occupied types.PointSet) []types.Point {
	n := sm.grid.Cells() - len(occupied)
	if n < 0 {
		n = 0
	}
	free := make([]types.Point, 0, n)
	for y := 0; y < sm.grid.Height; y++ {
		for x := 0; x < sm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !occupied.Has(p) {
				free = append(free, p)
			}
		}
	}
	return free
}

// Spawn picks a uniformly random cell outside occupied
func (sm *SpawnManager) Spawn(occupied types.PointSet) (types.Point, error) {
	free := sm.FreeCells(occupied)
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[sm.rng.Intn(len(free))], nil
}

// SpawnFood returns a free cell for the next food. occupied must hold the
// snake and every hazard or power-up currently on the board.
func (sm *SpawnManager) SpawnFood(occupied types.PointSet) (types.Point, error) {
	p, err := sm.Spawn(occupied)
	if err != nil {
		return p, errors.Wrap(err, "spawn food")
	}
	return p, nil
}

// SpawnHazard returns a free cell that also avoids the current food
func (sm *SpawnManager) SpawnHazard(occupied types.PointSet, food types.Point) (types.Point, error) {
	p, err := sm.Spawn(withPoint(occupied, food))
	if err != nil {
		return p, errors.Wrap(err, "spawn hazard")
	}
	return p, nil
}

// SpawnPowerUp returns a free cell that also avoids the current food
func (sm *SpawnManager) SpawnPowerUp(occupied types.PointSet, food types.Point) (types.Point, error) {
	p, err := sm.Spawn(withPoint(occupied, food))
	if err != nil {
		return p, errors.Wrap(err, "spawn power-up")
	}
	return p, nil
}

// Roll returns true with probability chance
func (sm *SpawnManager) Roll(chance float64) bool {
	return sm.rng.Float64() < chance
}

func withPoint(occupied types.PointSet, p types.Point) types.PointSet {
	s := make(types.PointSet, len(occupied)+1)
	for q := range occupied {
		s[q] = struct{}{}
	}
	s[p] = struct{}{}
	return s
}
