package entity

import (
	"snake-engine/game/types"
)

// Snake holds the body, head first, and the steering state.
// Direction is the buffered turn for the next tick; Heading is the
// direction the head actually travelled on the last tick.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Heading   types.Direction
}

func NewSnake(body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
		Heading:   dir,
	}
}

// Move prepends a new head and commits the buffered direction
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	s.Heading = s.Direction
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// NextHead is the cell the head would enter on the next tick
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.Vector())
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection buffers dir for the next tick. A reversal of either the
// buffered direction or the current heading is rejected, which keeps the
// head from turning back into the neck between two ticks.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() {
		return false
	}
	if dir == s.Direction.Opposite() || (len(s.Body) > 1 && dir == s.Heading.Opposite()) {
		return false
	}
	s.Direction = dir
	return true
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the body
func (s *Snake) Clone() []types.Point {
	b := make([]types.Point, len(s.Body))
	copy(b, s.Body)
	return b
}
