package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"othello/config"
	"othello/engine"
	"othello/experiments"
	"othello/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Config file (default: othello/config.yaml in the XDG config dirs)")
	mode := flag.String("mode", "play", "play, experiment, or save-config")
	experiment := flag.String("experiment", "depth", "Experiment to run: depth, pruning, or random")
	white := flag.String("white", "", "White player kind: computer or random")
	black := flag.String("black", "", "Black player kind: computer or random")
	levels := flag.String("l", "", "Computer levels as #,# (white,black) or a single #")
	size := flag.Int("size", 0, "Board size (even)")
	seed := flag.Uint64("seed", 0, "Search seed (0 seeds from the clock)")
	workers := flag.Int("workers", 0, "Goroutines scoring root moves")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := applyFlags(cfg, *white, *black, *levels, *size, *seed, *workers); err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	switch *mode {
	case "play":
		play(cfg)
	case "experiment":
		runExperiment(cfg, *experiment)
	case "save-config":
		path, err := cfg.Save()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
		log.Info().Msgf("saved config to %s", path)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func applyFlags(cfg *config.Config, white, black, levels string, size int, seed uint64, workers int) error {
	if white != "" {
		cfg.White.Kind = white
	}
	if black != "" {
		cfg.Black.Kind = black
	}
	if levels != "" {
		parts := strings.Split(levels, ",")
		if len(parts) > 2 {
			return fmt.Errorf("levels %q: want # or #,#", levels)
		}
		parsed := make([]int, len(parts))
		for i, part := range parts {
			level, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return fmt.Errorf("levels %q: %w", levels, err)
			}
			parsed[i] = level
		}
		cfg.White.Level = parsed[0]
		cfg.Black.Level = parsed[len(parsed)-1]
	}
	if size > 0 {
		cfg.Size = size
	}
	if seed > 0 {
		cfg.Search.Seed = seed
	}
	if workers > 0 {
		cfg.Search.Workers = workers
	}
	return cfg.Validate()
}

func play(cfg *config.Config) {
	board, err := cfg.Board()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create board")
	}
	white, err := cfg.Player(game.White)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create white player")
	}
	black, err := cfg.Player(game.Black)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create black player")
	}

	names := game.DefaultNames()
	render := func(u engine.Update) {
		b, err := game.FromGrid(u.Board)
		if err != nil {
			panic(err)
		}
		if u.Passed {
			fmt.Printf("%s passes\n", names.Name(u.Player))
		} else {
			fmt.Printf("%s plays %v\n", names.Name(u.Player), u.Move)
		}
		fmt.Print(b.String())
	}

	fmt.Print(board.String())
	e := engine.LocalEngine(board, white, black, engine.WithNames(names), engine.WithObserver(render))
	winner, gameMetric, _ := e.Run()

	if winner == game.Empty {
		fmt.Printf("tie game, with %d tokens each!\n", gameMetric.WhiteDiscs)
		return
	}
	fmt.Printf("%s player wins, with %d tokens!\n", names.Name(winner), max(gameMetric.WhiteDiscs, gameMetric.BlackDiscs))
}

func runExperiment(cfg *config.Config, name string) {
	s := experiments.SettingsFrom(cfg)
	var (
		dir string
		err error
	)
	switch name {
	case "depth":
		dir, err = experiments.RunDepthExperiment(s, cfg.White.Level)
	case "pruning":
		dir, err = experiments.RunPruningExperiment(s, cfg.White.Level)
	case "random":
		dir, err = experiments.RunRandomExperiment(s, cfg.White.Level)
	default:
		log.Fatal().Msgf("unknown experiment %q", name)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", name)
	}
	log.Info().Msgf("records written to %s", dir)
}
