package player

import (
	"errors"
	"fmt"
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

var ErrInvalidPlayer = errors.New("player must be 1 or 2")

// Player chooses moves for one side. PickMove receives a private copy of the
// board and returns ok=false when the side has no legal move and must pass.
type Player interface {
	ID() game.Cell
	PickMove(grid game.Grid) (move game.Move, ok bool)
}

// Reporter is implemented by players that search, to expose the metrics of
// their most recent move.
type Reporter interface {
	LastMetric() searcher.SearchMetric
}

func validate(id game.Cell) error {
	if !id.IsPlayer() {
		return fmt.Errorf("player %d: %w", int(id), ErrInvalidPlayer)
	}
	return nil
}

// mustBoard builds a board from a snapshot handed over by the game engine.
// A malformed snapshot is a programming error.
func mustBoard(grid game.Grid) *game.Board {
	board, err := game.FromGrid(grid)
	if err != nil {
		panic(fmt.Sprintf("unexpected board snapshot: %v", err))
	}
	return board
}

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer struct {
	id  game.Cell
	rng *rand.Rand
}

func NewRandomPlayer(id game.Cell, seed uint64) (*RandomPlayer, error) {
	if err := validate(id); err != nil {
		return nil, err
	}
	return &RandomPlayer{
		id:  id,
		rng: rand.New(rand.NewSource(seed)),
	}, nil
}

func (p *RandomPlayer) ID() game.Cell {
	return p.id
}

func (p *RandomPlayer) PickMove(grid game.Grid) (game.Move, bool) {
	moves := mustBoard(grid).AvailableMoves(p.id)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[p.rng.Intn(len(moves))], true
}
