package player

import (
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// ComputerPlayer searches a fixed number of plies ahead with negamax.
type ComputerPlayer struct {
	id     game.Cell
	level  int
	search *searcher.Negamax
}

// NewComputerPlayer returns a player for id (1 or 2) looking level plies
// ahead. Levels below 1 are raised to 1.
func NewComputerPlayer(id game.Cell, level int, options ...searcher.Option) (*ComputerPlayer, error) {
	if err := validate(id); err != nil {
		return nil, err
	}
	if level < 1 {
		log.Warn().Msgf("level %d for player %d raised to its minimum of 1", level, int(id))
		level = 1
	}
	return &ComputerPlayer{
		id:     id,
		level:  level,
		search: searcher.NewNegamax(options...),
	}, nil
}

func (p *ComputerPlayer) ID() game.Cell {
	return p.id
}

func (p *ComputerPlayer) Level() int {
	return p.level
}

func (p *ComputerPlayer) PickMove(grid game.Grid) (game.Move, bool) {
	return p.search.BestMove(mustBoard(grid), p.id, p.level)
}

func (p *ComputerPlayer) LastMetric() searcher.SearchMetric {
	return p.search.LastMetric()
}
