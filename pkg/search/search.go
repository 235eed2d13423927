// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package search finds optimal tic-tac-toe moves by exhaustive game-tree
// search, either with plain minimax or with alpha-beta pruning.
package search

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/board"
)

// Algorithm selects how the game tree is searched.
type Algorithm int

const (
	// Minimax visits the full game tree below the current node.
	Minimax Algorithm = iota

	// AlphaBeta prunes branches which can't change the result. It
	// returns the same moves and scores as Minimax.
	AlphaBeta
)

var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// ParseAlgorithm converts an algorithm name into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimax":
		return Minimax, nil
	case "alphabeta", "alpha-beta", "ab", "":
		return AlphaBeta, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

func (algorithm Algorithm) String() string {
	switch algorithm {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	default:
		return "unknown"
	}
}

// Scores of terminal positions, adjusted by depth so that faster wins and
// slower losses are preferred.
const (
	WinScore  = 10
	DrawScore = 0

	infinity = math.MaxInt
)

// Result is the outcome of a search.
type Result struct {
	Move  board.Move
	Score int

	// Found is false if the board had no legal moves.
	Found bool

	// Nodes is the number of positions evaluated.
	Nodes int
}

// FindBestMove returns the optimal move for turn.Current assuming that
// turn.Opponent also plays optimally. Ties are broken in favour of the
// first move in row-major order. The board is left exactly as it was.
func FindBestMove(b *board.Board, turn board.Turn, algorithm Algorithm) Result {
	searcher := searcher{board: b, turn: turn}
	result := Result{Score: -infinity}

	for move := range b.LegalMoves() {
		var score int
		searcher.try(move, turn.Current, func() {
			switch algorithm {
			case Minimax:
				score = searcher.minimax(0, false)
			default:
				score = searcher.alphaBeta(0, -infinity, infinity, false)
			}
		})

		if score > result.Score {
			result.Score = score
			result.Move = move
			result.Found = true
		}
	}

	result.Nodes = searcher.nodes
	if !result.Found {
		result.Score = 0
	}

	logrus.WithFields(logrus.Fields{
		"algorithm": algorithm,
		"mark":      turn.Current,
		"move":      result.Move,
		"score":     result.Score,
		"nodes":     result.Nodes,
	}).Debug("Search complete")

	return result
}

type searcher struct {
	board *board.Board
	turn  board.Turn
	nodes int
}

// try plays move for mark, runs fn and then takes the move back, on every
// exit path out of fn.
func (searcher *searcher) try(move board.Move, mark board.Mark, fn func()) {
	if err := searcher.board.ApplyMove(move.Row, move.Col, mark); err != nil {
		// LegalMoves only yields empty cells.
		panic(err)
	}

	defer searcher.board.UndoMove(move.Row, move.Col)
	fn()
}

// evaluate scores the board if it is terminal.
func (searcher *searcher) evaluate(depth int) (int, bool) {
	searcher.nodes++

	switch {
	case searcher.board.IsWinner(searcher.turn.Opponent):
		return -WinScore + depth, true
	case searcher.board.IsWinner(searcher.turn.Current):
		return WinScore - depth, true
	case searcher.board.IsDraw():
		return DrawScore, true
	default:
		return 0, false
	}
}

func (searcher *searcher) mark(maximizing bool) board.Mark {
	if maximizing {
		return searcher.turn.Current
	}

	return searcher.turn.Opponent
}

func (searcher *searcher) minimax(depth int, maximizing bool) int {
	if score, terminal := searcher.evaluate(depth); terminal {
		return score
	}

	best := infinity
	if maximizing {
		best = -infinity
	}

	mark := searcher.mark(maximizing)
	for move := range searcher.board.LegalMoves() {
		searcher.try(move, mark, func() {
			score := searcher.minimax(depth+1, !maximizing)
			if maximizing {
				best = max(best, score)
			} else {
				best = min(best, score)
			}
		})
	}

	return best
}

func (searcher *searcher) alphaBeta(depth, alpha, beta int, maximizing bool) int {
	if score, terminal := searcher.evaluate(depth); terminal {
		return score
	}

	mark := searcher.mark(maximizing)
	for move := range searcher.board.LegalMoves() {
		searcher.try(move, mark, func() {
			score := searcher.alphaBeta(depth+1, alpha, beta, !maximizing)
			if maximizing {
				alpha = max(alpha, score)
			} else {
				beta = min(beta, score)
			}
		})

		if beta <= alpha {
			break
		}
	}

	if maximizing {
		return alpha
	}

	return beta
}
