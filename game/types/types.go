package types

// Point is a cell coordinate on the board
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps an out-of-bounds coordinate to the opposite edge, per axis.
// In-bounds axes are returned unchanged.
func (g Grid) Wrap(p Point) Point {
	if p.X < 0 {
		p.X = g.Width - 1
	} else if p.X >= g.Width {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = g.Height - 1
	} else if p.Y >= g.Height {
		p.Y = 0
	}
	return p
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// PointSet is a set of occupied cells
type PointSet map[Point]struct{}

// NewPointSet builds a set from any number of point groups
func NewPointSet(groups ...[]Point) PointSet {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	s := make(PointSet, n)
	for _, g := range groups {
		for _, p := range g {
			s[p] = struct{}{}
		}
	}
	return s
}

// Add inserts points into the set
func (s PointSet) Add(points ...Point) {
	for _, p := range points {
		s[p] = struct{}{}
	}
}

// Has reports whether p is in the set
func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Direction represents a cardinal direction
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Vector converts a Direction into a one-cell displacement. Y grows downwards.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Valid reports whether d is one of the four cardinal directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// Status is the game lifecycle state
type Status int

const (
	NotStarted Status = iota
	Running
	GameOver
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// CollisionType is the reason a game ended
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	HazardCollision
	BoardFull
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case HazardCollision:
		return "hazard"
	case BoardFull:
		return "board-full"
	default:
		return "none"
	}
}

// CellKind labels a rendered board cell
type CellKind int

const (
	Empty CellKind = iota
	SnakeHead
	SnakeBody
	Food
	Hazard
	PowerUp
)

func (k CellKind) String() string {
	switch k {
	case SnakeHead:
		return "head"
	case SnakeBody:
		return "body"
	case Food:
		return "food"
	case Hazard:
		return "hazard"
	case PowerUp:
		return "power-up"
	default:
		return "empty"
	}
}

// Game defaults, matching the classic 20x20 board
const (
	DefaultBoardWidth  = 20
	DefaultBoardHeight = 20

	DefaultBaseSpeedMs    = 200
	DefaultMinSpeedMs     = 80
	DefaultSpeedStepScore = 50
	DefaultSpeedStepMs    = 20
	DefaultFoodScore      = 10

	DefaultPowerUpChance     = 0.15
	DefaultPowerUpBonus      = 25
	DefaultPowerUpDurationMs = 5000
	DefaultCountdownPeriodMs = 100
	DefaultHazardIntervalMs  = 3000
	DefaultMaxHazards        = 15
)
