package entity

import (
	"retro-snake/game/types"
)

// Snake is an ordered run of cells, head first.
type Snake struct {
	Body []types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body: []types.Point{startPos},
	}
}

// Move prepends a new head. The tail stays until RemoveTail is called.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Occupied returns the body as a lookup set. When withoutTail is set the last
// segment is left out, since it vacates its cell on a tick without food.
func (s *Snake) Occupied(withoutTail bool) map[types.Point]struct{} {
	body := s.Body
	if withoutTail && len(body) > 0 {
		body = body[:len(body)-1]
	}
	set := make(map[types.Point]struct{}, len(body))
	for _, part := range body {
		set[part] = struct{}{}
	}
	return set
}

// Points returns a copy of the body, safe to hand to renderers.
func (s *Snake) Points() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
