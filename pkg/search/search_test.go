package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/tictactoe/pkg/board"
)

const (
	x = board.Mark("X")
	o = board.Mark("O")
	e = board.Empty
)

var algorithms = []Algorithm{Minimax, AlphaBeta}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		want Algorithm
	}{
		{"minimax", Minimax},
		{"MiniMax", Minimax},
		{"alphabeta", AlphaBeta},
		{"alpha-beta", AlphaBeta},
		{" ab ", AlphaBeta},
		{"", AlphaBeta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseAlgorithm("mcts")
		require.ErrorIs(t, err, ErrUnknownAlgorithm)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, algorithm := range algorithms {
			got, err := ParseAlgorithm(algorithm.String())
			require.NoError(t, err)
			assert.Equal(t, algorithm, got)
		}
	})
}

func TestFindBestMove(t *testing.T) {
	tests := []struct {
		name  string
		cells [board.Size][board.Size]board.Mark
		turn  board.Turn
		want  board.Move
		score int
	}{
		{
			name: "takes the winning cell in a row",
			cells: [board.Size][board.Size]board.Mark{
				{x, x, e},
				{o, o, e},
				{e, e, e},
			},
			turn:  board.Turn{Current: x, Opponent: o},
			want:  board.Move{Row: 0, Col: 2},
			score: WinScore,
		},
		{
			name: "takes the winning cell in a column",
			cells: [board.Size][board.Size]board.Mark{
				{o, x, x},
				{o, e, e},
				{e, x, e},
			},
			turn:  board.Turn{Current: o, Opponent: x},
			want:  board.Move{Row: 2, Col: 0},
			score: WinScore,
		},
		{
			name: "takes the winning cell on a diagonal",
			cells: [board.Size][board.Size]board.Mark{
				{x, o, e},
				{o, x, e},
				{e, e, e},
			},
			turn:  board.Turn{Current: x, Opponent: o},
			want:  board.Move{Row: 2, Col: 2},
			score: WinScore,
		},
		{
			name: "blocks the opponent's threat",
			cells: [board.Size][board.Size]board.Mark{
				{x, e, o},
				{e, o, e},
				{e, x, e},
			},
			turn: board.Turn{Current: x, Opponent: o},
			want: board.Move{Row: 2, Col: 0},
			// blocking also forks row 2 and column 0.
			score: WinScore - 2,
		},
		{
			name: "every move loses: first in row-major order",
			cells: [board.Size][board.Size]board.Mark{
				{o, e, o},
				{e, x, e},
				{x, e, o},
			},
			turn:  board.Turn{Current: x, Opponent: o},
			want:  board.Move{Row: 0, Col: 1},
			score: -WinScore + 1,
		},
		{
			name: "last cell draws",
			cells: [board.Size][board.Size]board.Mark{
				{x, o, x},
				{x, o, o},
				{o, x, e},
			},
			turn:  board.Turn{Current: x, Opponent: o},
			want:  board.Move{Row: 2, Col: 2},
			score: DrawScore,
		},
	}

	for _, tt := range tests {
		for _, algorithm := range algorithms {
			t.Run(tt.name+"/"+algorithm.String(), func(t *testing.T) {
				b := board.FromCells(tt.cells)

				result := FindBestMove(b, tt.turn, algorithm)

				require.True(t, result.Found)
				assert.Equal(t, tt.want, result.Move)
				assert.Equal(t, tt.score, result.Score)
				assert.Equal(t, tt.cells, b.Cells(), "search must undo every move")
			})
		}
	}
}

func TestFindBestMove_NoMoves(t *testing.T) {
	b := board.FromCells([board.Size][board.Size]board.Mark{
		{x, o, x},
		{x, o, o},
		{o, x, x},
	})

	for _, algorithm := range algorithms {
		result := FindBestMove(b, board.Turn{Current: o, Opponent: x}, algorithm)
		assert.False(t, result.Found)
		assert.Zero(t, result.Nodes)
	}
}

func TestFindBestMove_EmptyBoard(t *testing.T) {
	cornersAndCenter := []board.Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}, {Row: 1, Col: 1}}

	for _, algorithm := range algorithms {
		t.Run(algorithm.String(), func(t *testing.T) {
			b := board.New()
			result := FindBestMove(b, board.Turn{Current: x, Opponent: o}, algorithm)

			require.True(t, result.Found)
			assert.Contains(t, cornersAndCenter, result.Move)
			assert.Equal(t, DrawScore, result.Score)
			assert.Equal(t, *board.New(), *b)
		})
	}
}

func TestFindBestMove_PruningVisitsFewerNodes(t *testing.T) {
	turn := board.Turn{Current: x, Opponent: o}

	full := FindBestMove(board.New(), turn, Minimax)
	pruned := FindBestMove(board.New(), turn, AlphaBeta)

	assert.Equal(t, full.Move, pruned.Move)
	assert.Equal(t, full.Score, pruned.Score)
	assert.Less(t, pruned.Nodes, full.Nodes)

	// every node of the full tree below the root: 549945 positions.
	assert.Equal(t, 549945, full.Nodes)
}

func TestFindBestMove_SelfPlayDraws(t *testing.T) {
	for _, algorithm := range algorithms {
		t.Run(algorithm.String(), func(t *testing.T) {
			b := board.New()
			turn := board.Turn{Current: x, Opponent: o}

			for !b.Outcome(turn).IsTerminal() {
				result := FindBestMove(b, turn, algorithm)
				require.True(t, result.Found)
				require.NoError(t, b.ApplyMove(result.Move.Row, result.Move.Col, turn.Current))
				turn = turn.Next()
			}

			assert.Equal(t, board.Outcome{Status: board.Drawn}, b.Outcome(turn))
		})
	}
}

// TestFindBestMove_AlgorithmsAgree checks both algorithms on every
// non-terminal position reachable by legal play.
func TestFindBestMove_AlgorithmsAgree(t *testing.T) {
	if testing.Short() {
		t.Skip("searches every reachable position")
	}

	seen := map[[board.Size][board.Size]board.Mark]bool{}
	positions := 0

	var walk func(b *board.Board, turn board.Turn)
	walk = func(b *board.Board, turn board.Turn) {
		cells := b.Cells()
		if seen[cells] || b.Outcome(turn).IsTerminal() {
			return
		}
		seen[cells] = true
		positions++

		full := FindBestMove(b, turn, Minimax)
		pruned := FindBestMove(b, turn, AlphaBeta)
		require.Equal(t, full.Move, pruned.Move, "position\n%s", b)
		require.Equal(t, full.Score, pruned.Score, "position\n%s", b)
		require.LessOrEqual(t, pruned.Nodes, full.Nodes)
		require.Equal(t, cells, b.Cells())

		for move := range b.LegalMoves() {
			require.NoError(t, b.ApplyMove(move.Row, move.Col, turn.Current))
			walk(b, turn.Next())
			b.UndoMove(move.Row, move.Col)
		}
	}

	walk(board.New(), board.Turn{Current: x, Opponent: o})

	// 5478 reachable positions minus 958 terminal ones.
	assert.Equal(t, 4520, positions)
}
