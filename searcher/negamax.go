package searcher

import (
	"othello/game"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type Option func(n *Negamax)

var _ Searcher = (*Negamax)(nil)

// Negamax is a fixed-depth negamax search with optional alpha-beta pruning.
// Every node owns a private copy of its board.
type Negamax struct {
	pruning bool
	shuffle bool
	seed    uint64
	seeded  bool
	workers int
	metrics Collector
	last    SearchMetric
}

func WithPruning(enabled bool) Option {
	return func(n *Negamax) {
		n.pruning = enabled
	}
}

// WithShuffle randomizes the order in which replies are visited. This only
// changes which branches get pruned, never the backed-up value.
func WithShuffle(enabled bool) Option {
	return func(n *Negamax) {
		n.shuffle = enabled
	}
}

func WithSeed(seed uint64) Option {
	return func(n *Negamax) {
		n.seed = seed
		n.seeded = true
	}
}

// WithWorkers evaluates root moves on up to workers goroutines.
func WithWorkers(workers int) Option {
	return func(n *Negamax) {
		if workers > 0 {
			n.workers = workers
		}
	}
}

func WithMetrics() Option {
	return func(n *Negamax) {
		n.metrics = NewCollector()
	}
}

func NewNegamax(options ...Option) *Negamax {
	n := &Negamax{ // Default values
		pruning: true,
		shuffle: true,
		workers: 1,
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

// LastMetric returns the metrics of the most recent BestMove call. It is
// empty unless the search was built WithMetrics.
func (n *Negamax) LastMetric() SearchMetric {
	return n.last
}

// BestMove scores every legal move of player with a plies-deep search and
// returns the highest scoring one. Equal scores prefer the better location
// (corner, then edge), then the earlier move in scan order.
func (n *Negamax) BestMove(board *game.Board, player game.Cell, plies int) (game.Move, bool) {
	moves := board.AvailableMoves(player)
	if len(moves) == 0 {
		return game.Move{}, false
	}

	n.metrics.Start(plies, n.workers, n.pruning)
	scores := n.scoreMoves(board, player, plies, moves)
	n.last = n.metrics.Complete()

	best := 0
	for i := 1; i < len(moves); i++ {
		switch {
		case scores[i] > scores[best]:
			best = i
		case scores[i] == scores[best] &&
			game.Locate(moves[i], board.Size()) > game.Locate(moves[best], board.Size()):
			best = i
		}
	}
	return moves[best], true
}

// scoreMoves returns one score per root move. Each root move searches its own
// subtree with a full window and its own shuffle source, so the scores do not
// depend on the number of workers.
func (n *Negamax) scoreMoves(board *game.Board, player game.Cell, plies int, moves []game.Move) []int {
	scores := make([]int, len(moves))
	base := n.baseSeed()

	score := func(i int) {
		child := board.Clone()
		child.Play(moves[i], player)
		scores[i] = n.search(child, player, plies-1, -Infinity, Infinity, n.newRand(base, uint64(i)))
	}

	if n.workers <= 1 {
		for i := range moves {
			score(i)
		}
		return scores
	}

	var g errgroup.Group
	g.SetLimit(n.workers)
	for i := range moves {
		i := i
		g.Go(func() error {
			score(i)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
	return scores
}

// Search scores board from the point of view of player, the side that has
// just moved, looking depth plies ahead within the window (alpha, beta).
func (n *Negamax) Search(board *game.Board, player game.Cell, depth, alpha, beta int) int {
	return n.search(board, player, depth, alpha, beta, n.newRand(n.baseSeed(), 0))
}

func (n *Negamax) search(board *game.Board, player game.Cell, depth, alpha, beta int, rng *rand.Rand) int {
	n.metrics.AddNode()
	if depth <= 0 || board.IsTerminal() {
		n.metrics.AddLeaf()
		return board.Count(player)
	}

	opponent := player.Opponent()
	children := board.Children(opponent)
	if len(children) == 0 {
		// Opponent passes, player moves again on the same position
		n.metrics.AddPass()
		children = []*game.Board{board.Clone()}
	}
	if rng != nil {
		rng.Shuffle(len(children), func(i, j int) {
			children[i], children[j] = children[j], children[i]
		})
	}

	best := -Infinity
	for _, child := range children {
		value := n.search(child, opponent, depth-1, -beta, -alpha, rng)
		best = max(best, value)

		if n.pruning {
			alpha = max(alpha, value)
			if alpha >= beta {
				n.metrics.AddCutoff()
				break
			}
		}
	}
	return -best
}

func (n *Negamax) baseSeed() uint64 {
	if n.seeded {
		return n.seed
	}
	return uint64(time.Now().UnixNano())
}

func (n *Negamax) newRand(base, stream uint64) *rand.Rand {
	if !n.shuffle {
		return nil
	}
	return rand.New(rand.NewSource(base + stream))
}
