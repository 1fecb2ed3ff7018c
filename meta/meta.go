// meta/meta.go
package meta

// DEFAULT_SIZE is the side length of a standard board.
const DEFAULT_SIZE = 8

// DEFAULT_LEVEL is the number of plies a computer player looks ahead.
const DEFAULT_LEVEL = 4

// DEFAULT_WORKERS is the number of goroutines scoring root moves.
const DEFAULT_WORKERS = 1

// EXPERIMENT_GAMES is the number of games per matchup.
const EXPERIMENT_GAMES = 10

// EXPERIMENT_DIR is where experiment records are written.
const EXPERIMENT_DIR = "experiments"
