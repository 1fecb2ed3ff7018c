package game

import (
	"fmt"
	"strconv"
	"strings"
)

// directions lists the eight neighbouring offsets (dx, dy) around a square.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a square Othello board. A board never shares its cells with
// another board: every constructor and Children copies.
type Board struct {
	size  int
	cells []Cell // row-major, indexed y*size + x
}

// NewBoard builds the starting position on a size x size board: two White
// and two Black discs on the diagonals of the four center squares.
func NewBoard(size int) (*Board, error) {
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("new board of size %d: %w", size, ErrOddSize)
	}
	b := &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
	mid := size/2 - 1
	b.set(Move{mid, mid}, White)
	b.set(Move{mid + 1, mid + 1}, White)
	b.set(Move{mid, mid + 1}, Black)
	b.set(Move{mid + 1, mid}, Black)
	return b, nil
}

// MustNewBoard is NewBoard for sizes known to be valid. It panics otherwise.
func MustNewBoard(size int) *Board {
	b, err := NewBoard(size)
	if err != nil {
		panic(err)
	}
	return b
}

// FromGrid builds a board holding a deep copy of grid.
func FromGrid(grid Grid) (*Board, error) {
	if len(grid) == 0 {
		return nil, ErrNoBoard
	}
	size := len(grid)
	if size%2 != 0 {
		return nil, fmt.Errorf("grid of size %d: %w", size, ErrOddSize)
	}
	b := &Board{
		size:  size,
		cells: make([]Cell, 0, size*size),
	}
	for y, row := range grid {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), size, ErrNotSquare)
		}
		for x, c := range row {
			if c != Empty && !c.IsPlayer() {
				return nil, fmt.Errorf("cell (%d,%d) holds %d: %w", x, y, int(c), ErrInvalidCell)
			}
		}
		b.cells = append(b.cells, row...)
	}
	return b, nil
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Grid returns a deep-copied row-major snapshot of the board.
func (b *Board) Grid() Grid {
	grid := make(Grid, b.size)
	for y := range grid {
		grid[y] = make([]Cell, b.size)
		copy(grid[y], b.cells[y*b.size:(y+1)*b.size])
	}
	return grid
}

// At returns the content of the square at m. m must be on the board.
func (b *Board) At(m Move) Cell {
	return b.cells[m.Y*b.size+m.X]
}

func (b *Board) set(m Move, c Cell) {
	b.cells[m.Y*b.size+m.X] = c
}

// IsOnBoard reports whether both coordinates lie in [0, size).
func (b *Board) IsOnBoard(m Move) bool {
	return m.X >= 0 && m.Y >= 0 && m.X < b.size && m.Y < b.size
}

// Flipped returns the discs that would turn to player if player placed a disc
// at m. A direction only contributes when a run of at least one opposing
// disc ends on one of player's own discs.
func (b *Board) Flipped(m Move, player Cell) []Move {
	var flipped []Move
	for _, d := range directions {
		var run []Move
		at := Move{m.X + d[0], m.Y + d[1]}
		for b.IsOnBoard(at) {
			c := b.At(at)
			if c == Empty {
				break
			}
			if c == player {
				flipped = append(flipped, run...)
				break
			}
			run = append(run, at)
			at = Move{at.X + d[0], at.Y + d[1]}
		}
	}
	return flipped
}

// Play places player's disc at m and flips every captured disc.
// Legality is not checked.
func (b *Board) Play(m Move, player Cell) {
	flipped := b.Flipped(m, player)
	b.set(m, player)
	for _, f := range flipped {
		b.set(f, player)
	}
}

// AvailableMoves returns every empty square where player would capture at
// least one disc, in row-major order.
func (b *Board) AvailableMoves(player Cell) []Move {
	var moves []Move
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			m := Move{x, y}
			if b.At(m) == Empty && b.captures(m, player) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// HasMoves reports whether player has any legal move.
func (b *Board) HasMoves(player Cell) bool {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			m := Move{x, y}
			if b.At(m) == Empty && b.captures(m, player) {
				return true
			}
		}
	}
	return false
}

// captures is Flipped without allocating: it stops at the first capture.
func (b *Board) captures(m Move, player Cell) bool {
	for _, d := range directions {
		seen := false
		at := Move{m.X + d[0], m.Y + d[1]}
		for b.IsOnBoard(at) {
			c := b.At(at)
			if c == Empty {
				break
			}
			if c == player {
				if seen {
					return true
				}
				break
			}
			seen = true
			at = Move{at.X + d[0], at.Y + d[1]}
		}
	}
	return false
}

// IsLegal reports whether m is on the board, empty, and captures for player.
func (b *Board) IsLegal(m Move, player Cell) bool {
	return b.IsOnBoard(m) && b.At(m) == Empty && b.captures(m, player)
}

// Count returns the number of squares holding c. Count(Empty) is the number
// of free squares.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// IsTerminal reports whether the game is over: the board is full, or neither
// player can move. A side without moves on a non-terminal board passes.
func (b *Board) IsTerminal() bool {
	if b.Count(Empty) == 0 {
		return true
	}
	return !b.HasMoves(White) && !b.HasMoves(Black)
}

// Children returns one copied board per available move of player, in the
// order of AvailableMoves.
func (b *Board) Children(player Cell) []*Board {
	moves := b.AvailableMoves(player)
	children := make([]*Board, 0, len(moves))
	for _, m := range moves {
		child := b.Clone()
		child.Play(m, player)
		children = append(children, child)
	}
	return children
}

// Winner returns the player with more discs once the game is over. A drawn
// game returns Empty. ok is false while the game is still in progress.
func (b *Board) Winner() (winner Cell, ok bool) {
	if !b.IsTerminal() {
		return Empty, false
	}
	white, black := b.Count(White), b.Count(Black)
	switch {
	case white > black:
		return White, true
	case black > white:
		return Black, true
	default:
		return Empty, true
	}
}

// String renders the board with column indices on top and row indices on the
// left, one digit per square.
func (b *Board) String() string {
	var sb strings.Builder
	header := make([]string, b.size)
	for i := range header {
		header[i] = strconv.Itoa(i)
	}
	sb.WriteString("  " + strings.Join(header, " ") + "\n")
	row := make([]string, b.size)
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			row[x] = b.At(Move{x, y}).String()
		}
		sb.WriteString(strconv.Itoa(y) + " " + strings.Join(row, " ") + "\n")
	}
	return sb.String()
}
