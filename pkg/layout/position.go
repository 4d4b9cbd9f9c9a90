package layout

import "fmt"

// Position is a 2D integer coordinate. It is a plain value: positions are
// only ever combined by addition and subtraction.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position { return Position{X: x, Y: y} }

// Add returns p + q, component-wise.
func (p Position) Add(q Position) Position { return Position{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q, component-wise.
func (p Position) Sub(q Position) Position { return Position{X: p.X - q.X, Y: p.Y - q.Y} }

// IsZero reports whether p is the origin.
func (p Position) IsZero() bool { return p.X == 0 && p.Y == 0 }

func (p Position) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }
