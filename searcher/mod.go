package searcher

import "othello/game"

// Infinity bounds every reachable score: scores are disc counts.
const Infinity = 1 << 30

// Searcher picks a move for player on board, looking plies half-moves ahead.
// ok is false when player has no legal move and must pass.
type Searcher interface {
	BestMove(board *game.Board, player game.Cell, plies int) (move game.Move, ok bool)
}
