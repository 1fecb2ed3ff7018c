package player

import (
	"othello/game"
	"othello/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	_ Player   = (*ComputerPlayer)(nil)
	_ Player   = (*RandomPlayer)(nil)
	_ Reporter = (*ComputerPlayer)(nil)
)

func stuckBlack() game.Grid {
	return game.Grid{
		{game.White, game.Black, game.Empty, game.Empty},
		{game.Empty, game.Empty, game.Empty, game.Empty},
		{game.Empty, game.Empty, game.Empty, game.Empty},
		{game.Empty, game.Empty, game.Empty, game.Empty},
	}
}

func TestNewComputerPlayer(t *testing.T) {
	t.Run("rejects unknown players", func(t *testing.T) {
		for _, id := range []game.Cell{game.Empty, 3, -1} {
			_, err := NewComputerPlayer(id, 3)
			require.ErrorIs(t, err, ErrInvalidPlayer)
		}
	})

	t.Run("raises level to one", func(t *testing.T) {
		for _, level := range []int{0, -4} {
			p, err := NewComputerPlayer(game.White, level)
			require.NoError(t, err)
			require.Equal(t, 1, p.Level())
		}
	})

	t.Run("keeps valid level", func(t *testing.T) {
		p, err := NewComputerPlayer(game.Black, 4)
		require.NoError(t, err)
		require.Equal(t, 4, p.Level())
		require.Equal(t, game.Black, p.ID())
	})
}

func TestComputerPlayerPickMove(t *testing.T) {
	t.Run("picks a legal opening move", func(t *testing.T) {
		p, err := NewComputerPlayer(game.Black, 3, searcher.WithSeed(1))
		require.NoError(t, err)

		board := game.MustNewBoard(8)
		move, ok := p.PickMove(board.Grid())
		require.True(t, ok)
		require.Contains(t, []game.Move{{X: 2, Y: 3}, {X: 3, Y: 2}, {X: 4, Y: 5}, {X: 5, Y: 4}}, move)
	})

	t.Run("does not modify the snapshot", func(t *testing.T) {
		p, err := NewComputerPlayer(game.Black, 3)
		require.NoError(t, err)

		snapshot := game.MustNewBoard(8).Grid()
		before := snapshot.Copy()
		_, ok := p.PickMove(snapshot)
		require.True(t, ok)
		require.Equal(t, before, snapshot)
	})

	t.Run("signals a pass", func(t *testing.T) {
		p, err := NewComputerPlayer(game.Black, 2)
		require.NoError(t, err)

		_, ok := p.PickMove(stuckBlack())
		require.False(t, ok)
	})

	t.Run("reports search metrics", func(t *testing.T) {
		p, err := NewComputerPlayer(game.White, 2, searcher.WithMetrics())
		require.NoError(t, err)

		board := game.MustNewBoard(8)
		_, ok := p.PickMove(board.Grid())
		require.True(t, ok)
		require.Equal(t, 2, p.LastMetric().Plies)
		require.Positive(t, p.LastMetric().Nodes)
	})

	t.Run("panics on malformed snapshot", func(t *testing.T) {
		p, err := NewComputerPlayer(game.White, 1)
		require.NoError(t, err)
		require.Panics(t, func() {
			p.PickMove(game.Grid{{game.Empty}})
		})
	})
}

func TestRandomPlayer(t *testing.T) {
	t.Run("rejects unknown players", func(t *testing.T) {
		_, err := NewRandomPlayer(game.Empty, 1)
		require.ErrorIs(t, err, ErrInvalidPlayer)
	})

	t.Run("always picks legal moves", func(t *testing.T) {
		p, err := NewRandomPlayer(game.Black, 11)
		require.NoError(t, err)

		board := game.MustNewBoard(8)
		for i := 0; i < 20; i++ {
			move, ok := p.PickMove(board.Grid())
			require.True(t, ok)
			require.True(t, board.IsLegal(move, game.Black))
		}
	})

	t.Run("same seed same choices", func(t *testing.T) {
		p1, err := NewRandomPlayer(game.Black, 5)
		require.NoError(t, err)
		p2, err := NewRandomPlayer(game.Black, 5)
		require.NoError(t, err)

		grid := game.MustNewBoard(8).Grid()
		for i := 0; i < 10; i++ {
			m1, _ := p1.PickMove(grid)
			m2, _ := p2.PickMove(grid)
			require.Equal(t, m1, m2)
		}
	})

	t.Run("signals a pass", func(t *testing.T) {
		p, err := NewRandomPlayer(game.Black, 1)
		require.NoError(t, err)
		_, ok := p.PickMove(stuckBlack())
		require.False(t, ok)
	})
}
