package engine

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/player"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithNames sets the display names used in logs.
func WithNames(names game.Names) Option {
	return func(e *Engine) {
		if names != nil {
			e.names = names
		}
	}
}

// WithObserver registers a callback invoked after every move and pass, e.g.
// to re-render the board.
func WithObserver(observe func(Update)) Option {
	return func(e *Engine) {
		e.observe = observe
	}
}

// Engine holds the authoritative board of a local game. Black moves first.
type Engine struct {
	board   *game.Board
	players map[game.Cell]player.Player
	current game.Cell
	names   game.Names
	observe func(Update)
	step    int
}

var _ Runner = (*Engine)(nil)

func LocalEngine(board *game.Board, white, black player.Player, options ...Option) *Engine {
	if white.ID() != game.White || black.ID() != game.Black {
		panic(fmt.Sprintf("players do not match their colours: white=%d black=%d", int(white.ID()), int(black.ID())))
	}

	e := &Engine{
		board: board.Clone(),
		players: map[game.Cell]player.Player{
			game.White: white,
			game.Black: black,
		},
		current: game.Black,
		names:   game.DefaultNames(),
		observe: func(Update) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Board returns a copy of the current position.
func (e *Engine) Board() *game.Board {
	return e.board.Clone()
}

// Current returns the side to move.
func (e *Engine) Current() game.Cell {
	return e.current
}

// Play applies move for the side to move after checking that it is on the
// board, on an empty square, and captures at least one disc.
func (e *Engine) Play(move game.Move) error {
	if e.board.IsTerminal() {
		return ErrGameOver
	}
	if !e.board.IsOnBoard(move) {
		return fmt.Errorf("%v is off the board: %w", move, ErrIllegalMove)
	}
	if e.board.At(move) != game.Empty {
		return fmt.Errorf("%v is occupied: %w", move, ErrIllegalMove)
	}
	if len(e.board.Flipped(move, e.current)) == 0 {
		return fmt.Errorf("%v flips no disc for %s: %w", move, e.names.Name(e.current), ErrIllegalMove)
	}

	e.board.Play(move, e.current)
	e.finishTurn(move, false)
	return nil
}

// Pass hands the turn over. It is only allowed when the side to move has no
// legal move.
func (e *Engine) Pass() error {
	if e.board.IsTerminal() {
		return ErrGameOver
	}
	if e.board.HasMoves(e.current) {
		return fmt.Errorf("%s cannot pass with legal moves available: %w", e.names.Name(e.current), ErrIllegalMove)
	}

	log.Info().Msgf("%s has no moves and passes", e.names.Name(e.current))
	e.finishTurn(game.Move{}, true)
	return nil
}

func (e *Engine) finishTurn(move game.Move, passed bool) {
	e.step++
	e.observe(Update{
		Step:   e.step,
		Player: e.current,
		Move:   move,
		Passed: passed,
		Board:  e.board.Grid(),
	})
	e.current = e.current.Opponent()
}

// Run executes the entire game loop until neither side can move. A player
// returning an illegal move, or passing while it could move, is a
// programming error and panics.
func (e *Engine) Run() (game.Cell, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.current),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.names.Name(e.current))

	for !e.board.IsTerminal() {
		mover := e.current
		p := e.players[mover]

		move, ok := p.PickMove(e.board.Grid())
		if !ok {
			if err := e.Pass(); err != nil {
				panic(fmt.Sprintf("%s: %v", e.names.Name(mover), err))
			}
			gameMetric.Passes++
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:   e.step,
				Player: int(mover),
				Move:   "pass",
			})
			continue
		}

		flipped := len(e.board.Flipped(move, mover))
		if err := e.Play(move); err != nil {
			panic(fmt.Sprintf("%s returned a bad move: %v", e.names.Name(mover), err))
		}
		log.Debug().Msgf("%s played %v flipping %d", e.names.Name(mover), move, flipped)

		mm := metrics.MoveMetric{
			Step:    e.step,
			Player:  int(mover),
			Move:    move.String(),
			Flipped: flipped,
		}
		if r, ok := p.(player.Reporter); ok {
			mm.SearchMetric = r.LastMetric()
		}
		moveMetrics = append(moveMetrics, mm)
		gameMetric.TotalMoves++
	}

	winner, _ := e.board.Winner()
	gameMetric.Winner = int(winner)
	gameMetric.WhiteDiscs = e.board.Count(game.White)
	gameMetric.BlackDiscs = e.board.Count(game.Black)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if winner == game.Empty {
		log.Info().Msgf("game over: tie game with %d discs each", gameMetric.WhiteDiscs)
	} else {
		log.Info().Msgf("game over: %s wins %d to %d", e.names.Name(winner),
			e.board.Count(winner), e.board.Count(winner.Opponent()))
	}

	return winner, gameMetric, moveMetrics
}
