package game

import (
	"errors"
	"fmt"
)

// Cell is the content of a single board square.
type Cell int

const (
	Empty Cell = iota
	White      // player 1
	Black      // player 2
)

// Opponent returns the other player. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

// IsPlayer reports whether c identifies one of the two players.
func (c Cell) IsPlayer() bool {
	return c == White || c == Black
}

func (c Cell) String() string {
	return fmt.Sprintf("%d", int(c))
}

// Names maps player identities to display names. Callers own their copy.
type Names map[Cell]string

func DefaultNames() Names {
	return Names{White: "White", Black: "Black"}
}

// Name returns the display name of a player, falling back to its number.
func (n Names) Name(c Cell) string {
	if name, ok := n[c]; ok {
		return name
	}
	return fmt.Sprintf("Player%d", int(c))
}

// Grid is a row-major snapshot of a board, indexed grid[y][x].
type Grid [][]Cell

// Copy returns a deep copy of the grid.
func (g Grid) Copy() Grid {
	if g == nil {
		return nil
	}
	cp := make(Grid, len(g))
	for y, row := range g {
		cp[y] = append([]Cell(nil), row...)
	}
	return cp
}

var (
	ErrNoBoard     = errors.New("neither a grid nor a size was given")
	ErrOddSize     = errors.New("board size must be even and at least 2")
	ErrNotSquare   = errors.New("grid must be square")
	ErrInvalidCell = errors.New("grid holds an invalid cell value")
)
