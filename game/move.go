package game

import "fmt"

// Move is a board coordinate: X is the column, Y the row.
type Move struct {
	X int
	Y int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.X, m.Y)
}

// Location classifies a square for move ordering preferences.
type Location int

const (
	Interior Location = iota + 1
	Edge
	Corner
)

// Locate classifies a move on a board of the given size.
// Corner > Edge > Interior.
func Locate(m Move, size int) Location {
	xEdge := m.X == 0 || m.X == size-1
	yEdge := m.Y == 0 || m.Y == size-1
	switch {
	case xEdge && yEdge:
		return Corner
	case xEdge || yEdge:
		return Edge
	default:
		return Interior
	}
}
