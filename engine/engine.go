package engine

import (
	"errors"
	"othello/experiments/metrics"
	"othello/game"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over - no moves allowed")
)

type Runner interface {
	// Run plays the game to the end and returns the winner (game.Empty for a draw)
	Run() (winner game.Cell, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Update describes one turn. Board is a snapshot taken after the turn.
type Update struct {
	Step   int
	Player game.Cell
	Move   game.Move
	Passed bool
	Board  game.Grid
}
