package experiments

import (
	"fmt"
	"othello/config"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/player"
	"othello/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Settings shared by every game of an experiment.
type Settings struct {
	Size     int
	Games    int // Per match up
	Dir      string
	Seed     uint64
	Parallel int // Games played at once
}

func SettingsFrom(c *config.Config) Settings {
	return Settings{
		Size:     c.Size,
		Games:    c.Experiment.Games,
		Dir:      c.Experiment.Dir,
		Seed:     c.Search.Seed,
		Parallel: c.Search.Workers,
	}
}

// RunDepthExperiment pairs computer players of increasing level against a
// level-1 baseline. Colours alternate between games.
func RunDepthExperiment(s Settings, maxLevel int) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: config.KindComputer, Level: 1, Pruning: true, Workers: 1}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for level := 1; level <= maxLevel; level++ {
		agent := metrics.AgentConfig{ID: level, Kind: config.KindComputer, Level: level, Pruning: true, Workers: 1}
		configs = append(configs, agent)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, agent})
	}
	return runExperiment("depth", s, configs, matchUps)
}

// RunPruningExperiment plays the same level with and without alpha-beta
// pruning to compare the number of searched nodes.
func RunPruningExperiment(s Settings, level int) (string, error) {
	pruned := metrics.AgentConfig{ID: 1, Kind: config.KindComputer, Level: level, Pruning: true, Workers: 1}
	unpruned := metrics.AgentConfig{ID: 2, Kind: config.KindComputer, Level: level, Pruning: false, Workers: 1}
	configs := []metrics.AgentConfig{pruned, unpruned}
	return runExperiment("pruning", s, configs, [][]metrics.AgentConfig{{pruned, unpruned}})
}

// RunRandomExperiment pairs each computer level against a random player.
func RunRandomExperiment(s Settings, maxLevel int) (string, error) {
	random := metrics.AgentConfig{ID: 0, Kind: config.KindRandom}
	configs := []metrics.AgentConfig{random}
	matchUps := [][]metrics.AgentConfig{}
	for level := 1; level <= maxLevel; level++ {
		agent := metrics.AgentConfig{ID: level, Kind: config.KindComputer, Level: level, Pruning: true, Workers: 1}
		configs = append(configs, agent)
		matchUps = append(matchUps, []metrics.AgentConfig{random, agent})
	}
	return runExperiment("random", s, configs, matchUps)
}

type result struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

func runExperiment(name string, s Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	if s.Games < 1 {
		return "", fmt.Errorf("experiment %s needs at least one game per matchup", name)
	}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		results := make([]result, s.Games)
		var g errgroup.Group
		g.SetLimit(max(s.Parallel, 1))
		for i := 0; i < s.Games; i++ {
			i := i
			g.Go(func() error {
				// Alternate colours so neither agent always moves first
				white, black := config1, config2
				if i%2 == 1 {
					white, black = config2, config1
				}
				seed := s.Seed + uint64(mi*s.Games+i)*2

				r, err := runGame(s.Size, white, black, seed)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				results[i] = r
				log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %d", mi+1, len(matchUps), i+1, s.Games, r.game.Winner)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return "", err
		}

		for _, r := range results {
			gameRecords = append(gameRecords, r.game)
			moveRecords = append(moveRecords, r.moves...)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(s.Dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents
func runGame(size int, white, black metrics.AgentConfig, seed uint64) (result, error) {
	board, err := game.NewBoard(size)
	if err != nil {
		return result{}, err
	}
	whitePlayer, err := createPlayer(white, game.White, seed)
	if err != nil {
		return result{}, err
	}
	blackPlayer, err := createPlayer(black, game.Black, seed+1)
	if err != nil {
		return result{}, err
	}

	e := engine.LocalEngine(board, whitePlayer, blackPlayer)
	_, gameMetric, moveMetrics := e.Run()

	id := uuid.New()
	r := result{
		game: metrics.GameRecord{
			ID:         id,
			White:      white.ID,
			Black:      black.ID,
			GameMetric: gameMetric,
		},
		moves: make([]metrics.MoveRecord, 0, len(moveMetrics)),
	}
	for _, mm := range moveMetrics {
		r.moves = append(r.moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return r, nil
}

func createPlayer(c metrics.AgentConfig, id game.Cell, seed uint64) (player.Player, error) {
	switch c.Kind {
	case config.KindRandom:
		return player.NewRandomPlayer(id, seed)
	case config.KindComputer:
		return player.NewComputerPlayer(id, c.Level,
			searcher.WithPruning(c.Pruning),
			searcher.WithWorkers(c.Workers),
			searcher.WithSeed(seed),
			searcher.WithMetrics(),
		)
	default:
		return nil, fmt.Errorf("unknown agent kind %q", c.Kind)
	}
}
