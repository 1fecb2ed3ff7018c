package metrics

import (
	"othello/searcher"
	"time"

	"github.com/google/uuid"
)

// AgentConfig describes one side of a matchup.
type AgentConfig struct {
	ID      int
	Kind    string // "computer" or "random"
	Level   int
	Pruning bool
	Workers int
}

type MoveMetric struct {
	Step    int
	Player  int    // Player ID
	Move    string // "(x,y)" or "pass"
	Flipped int
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, 0 for a draw
	WhiteDiscs     int
	BlackDiscs     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type GameRecord struct {
	ID     uuid.UUID
	White  int // AgentConfig.ID
	Black  int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game uuid.UUID // GameRecord.ID
	MoveMetric
}
