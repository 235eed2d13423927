// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package match plays a single game of tic-tac-toe between two players.
package match

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/player"
)

var (
	ErrInvalidMarks = errors.New("match: marks must be distinct and non-empty")
	ErrNoPlayer     = errors.New("match: missing player")
)

type Config struct {
	// Players[0] moves first with Marks[0].
	Players [2]player.Player
	Marks   [2]board.Mark

	// Opening, if set, is played for the first player instead of asking it.
	Opening *board.Move

	// Output receives the rendered board and the result announcement.
	// Nothing is printed if it is nil.
	Output io.Writer
}

func (config *Config) validate() error {
	if config.Players[0] == nil || config.Players[1] == nil {
		return ErrNoPlayer
	}

	if config.Marks[0] == board.Empty || config.Marks[1] == board.Empty ||
		config.Marks[0] == config.Marks[1] {
		return fmt.Errorf("%w: %q %q", ErrInvalidMarks, config.Marks[0], config.Marks[1])
	}

	return nil
}

// Report describes a finished game.
type Report struct {
	Result Result
	Reason string

	// Winner is the name of the winning player, empty for a draw.
	Winner string

	Board *board.Board
	Moves []board.Move
}

// Run plays a game from an empty board until it is won or drawn. The
// board is printed before every move and once more at the end.
func Run(config *Config) (Report, error) {
	if err := config.validate(); err != nil {
		return Report{}, err
	}

	out := config.Output
	if out == nil {
		out = io.Discard
	}

	game := board.New()
	turn := board.Turn{Current: config.Marks[0], Opponent: config.Marks[1]}
	report := Report{Board: game}

	playerToMove := 0
	for {
		fmt.Fprint(out, game)

		current := config.Players[playerToMove]

		var move board.Move
		if config.Opening != nil && len(report.Moves) == 0 {
			move = *config.Opening
		} else {
			var err error
			if move, err = current.DecideMove(game, turn); err != nil {
				return report, fmt.Errorf("%s: %w", current.Name(), err)
			}
		}

		if err := game.ApplyMove(move.Row, move.Col, turn.Current); err != nil {
			return report, fmt.Errorf("%s: %w", current.Name(), err)
		}

		report.Moves = append(report.Moves, move)
		logrus.WithFields(logrus.Fields{
			"player": current.Name(),
			"mark":   turn.Current,
			"move":   move,
		}).Trace("Move played")

		switch outcome := game.Outcome(turn); outcome.Status {
		case board.Won:
			fmt.Fprint(out, game)
			fmt.Fprintf(out, "%s wins!\n", current.Name())

			report.Result = GameWonBy[playerToMove]
			report.Winner = current.Name()
			report.Reason = fmt.Sprintf("three %s in a row", outcome.Winner)
			return report, nil

		case board.Drawn:
			fmt.Fprint(out, game)
			fmt.Fprintln(out, "The game ended in a draw.")

			report.Result = Draw
			report.Reason = "full board"
			return report, nil
		}

		turn = turn.Next()
		playerToMove ^= 1
	}
}
