package series

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/match"
	"laptudirm.com/x/tictactoe/pkg/search"
)

func testConfig() Config {
	return Config{
		Players: [2]PlayerConfig{
			{Name: "Minimax", Algorithm: search.Minimax},
			{Name: "AlphaBeta", Algorithm: search.AlphaBeta},
		},
		Marks:       [2]board.Mark{"X", "O"},
		GamePairs:   3,
		Concurrency: 2,
	}
}

func TestBook(t *testing.T) {
	t.Run("sequential cycles through every cell", func(t *testing.T) {
		book, err := NewBook("sequential")
		require.NoError(t, err)
		require.Equal(t, board.Size*board.Size, book.Len())

		var seen []board.Move
		for range book.Len() + 1 {
			seen = append(seen, book.Current())
			book.Next()
		}

		assert.Equal(t, board.Move{Row: 0, Col: 0}, seen[0])
		assert.Equal(t, board.Move{Row: 0, Col: 1}, seen[1])
		assert.Equal(t, board.Move{Row: 2, Col: 2}, seen[8])
		assert.Equal(t, seen[0], seen[9])
	})

	t.Run("random stays on the board", func(t *testing.T) {
		book, err := NewBook("random")
		require.NoError(t, err)

		for range 50 {
			book.Next()
			move := book.Current()
			assert.True(t, board.New().IsValidMove(move.Row, move.Col))
		}
	})

	t.Run("invalid strategy", func(t *testing.T) {
		_, err := NewBook("alphabetical")
		require.Error(t, err)
	})
}

func TestNewSeries(t *testing.T) {
	t.Run("needs games", func(t *testing.T) {
		config := testConfig()
		config.GamePairs = 0

		_, err := NewSeries(config)
		require.ErrorIs(t, err, ErrNoGames)
	})

	t.Run("concurrency defaults to one", func(t *testing.T) {
		config := testConfig()
		config.Concurrency = 0

		series, err := NewSeries(config)
		require.NoError(t, err)
		assert.Equal(t, 1, series.Config.Concurrency)
		assert.Len(t, series.ID, 8)
	})
}

func TestSeries_Start(t *testing.T) {
	series, err := NewSeries(testConfig())
	require.NoError(t, err)

	require.NoError(t, series.Start())

	// optimal players always draw.
	assert.Equal(t, 6, series.Games)
	assert.Equal(t, Score{Draws: 6}, series.Scores[0])
	assert.Equal(t, Score{Draws: 6}, series.Scores[1])
	assert.Equal(t, [5]int{0, 0, 3, 0, 0}, series.Pairs)

	var out bytes.Buffer
	series.Report(&out)
	assert.Contains(t, out.String(), "Minimax")
	assert.Contains(t, out.String(), "AlphaBeta")
	assert.Contains(t, out.String(), "Pairs: LL 0  LD 0  DD 3  WD 0  WW 0")
}

func TestSeries_ResultHandler(t *testing.T) {
	series, err := NewSeries(testConfig())
	require.NoError(t, err)

	games := []*Game{
		{Pair: 1, Number: 1, Player1: 0, Player2: 1},
		{Pair: 1, Number: 2, Player1: 1, Player2: 0},
		{Pair: 2, Number: 3, Player1: 0, Player2: 1},
		{Pair: 2, Number: 4, Player1: 1, Player2: 0},
	}
	for _, game := range games {
		game.Players[0] = series.newPlayer(game.Player1)
		game.Players[1] = series.newPlayer(game.Player2)
	}

	results := make(chan Result, len(games))
	// pair 1: player 0 wins as first and second mover.
	results <- Result{Game: games[0], Report: match.Report{Result: match.Player1Wins}}
	results <- Result{Game: games[1], Report: match.Report{Result: match.Player2Wins}}
	// pair 2: player 0 draws then loses.
	results <- Result{Game: games[2], Report: match.Report{Result: match.Draw}}
	results <- Result{Game: games[3], Report: match.Report{Result: match.Player1Wins}}
	close(results)

	require.NoError(t, series.ResultHandler(results))

	assert.Equal(t, 4, series.Games)
	assert.Equal(t, Score{Wins: 2, Losses: 1, Draws: 1}, series.Scores[0])
	assert.Equal(t, Score{Wins: 1, Losses: 2, Draws: 1}, series.Scores[1])
	assert.Equal(t, [5]int{0, 1, 0, 0, 1}, series.Pairs)
}
