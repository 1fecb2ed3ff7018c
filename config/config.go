package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/searcher"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

var (
	cfgFile = "othello/config.yaml"
)

const (
	KindComputer = "computer"
	KindRandom   = "random"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type PlayerConfig struct {
	Kind  string `yaml:"kind"`
	Level int    `yaml:"level"`
}

type SearchConfig struct {
	Pruning bool   `yaml:"pruning"`
	Shuffle bool   `yaml:"shuffle"`
	Seed    uint64 `yaml:"seed"` // 0 seeds from the clock
	Workers int    `yaml:"workers"`
}

type ExperimentConfig struct {
	Games int    `yaml:"games"`
	Dir   string `yaml:"dir"`
}

type Config struct {
	Size       int              `yaml:"size"`
	White      PlayerConfig     `yaml:"white"`
	Black      PlayerConfig     `yaml:"black"`
	Search     SearchConfig     `yaml:"search"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

func Default() Config {
	return Config{
		Size:  meta.DEFAULT_SIZE,
		White: PlayerConfig{Kind: KindComputer, Level: meta.DEFAULT_LEVEL},
		Black: PlayerConfig{Kind: KindComputer, Level: meta.DEFAULT_LEVEL},
		Search: SearchConfig{
			Pruning: true,
			Shuffle: true,
			Workers: meta.DEFAULT_WORKERS,
		},
		Experiment: ExperimentConfig{
			Games: meta.EXPERIMENT_GAMES,
			Dir:   meta.EXPERIMENT_DIR,
		},
	}
}

// Load reads the config file at path, or searches the XDG config
// directories when path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(cfgFile)
		if err != nil {
			config := Default()
			return &config, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		config := Default()
		return &config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Size < 2 || c.Size%2 != 0 {
		return &InvalidConfig{fmt.Sprintf("board size %d must be even and at least 2", c.Size)}
	}
	for _, p := range []PlayerConfig{c.White, c.Black} {
		if p.Kind != KindComputer && p.Kind != KindRandom {
			return &InvalidConfig{fmt.Sprintf("unknown player kind %q", p.Kind)}
		}
		if p.Kind == KindComputer && p.Level < 1 {
			return &InvalidConfig{fmt.Sprintf("level %d must be at least 1", p.Level)}
		}
	}
	if c.Search.Workers < 1 {
		return &InvalidConfig{fmt.Sprintf("workers %d must be at least 1", c.Search.Workers)}
	}
	if c.Experiment.Games < 1 {
		return &InvalidConfig{fmt.Sprintf("experiment games %d must be at least 1", c.Experiment.Games)}
	}
	return nil
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() (string, error) {
	path, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return path, c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0664); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Board builds the starting position.
func (c *Config) Board() (*game.Board, error) {
	return game.NewBoard(c.Size)
}

// Player builds the configured player for id.
func (c *Config) Player(id game.Cell) (player.Player, error) {
	var pc PlayerConfig
	switch id {
	case game.White:
		pc = c.White
	case game.Black:
		pc = c.Black
	default:
		return nil, fmt.Errorf("player %d: %w", int(id), player.ErrInvalidPlayer)
	}

	seed := c.seed(id)
	if pc.Kind == KindRandom {
		return player.NewRandomPlayer(id, seed)
	}
	return player.NewComputerPlayer(id, pc.Level,
		searcher.WithPruning(c.Search.Pruning),
		searcher.WithShuffle(c.Search.Shuffle),
		searcher.WithWorkers(c.Search.Workers),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	)
}

func (c *Config) seed(id game.Cell) uint64 {
	if c.Search.Seed == 0 {
		return uint64(time.Now().UnixNano()) + uint64(id)
	}
	return c.Search.Seed + uint64(id)
}
