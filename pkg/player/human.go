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

package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/board"
)

var errMalformed = errors.New("expected two integers")

// Human is a player whose moves are read from a text console.
type Human struct {
	name string

	in  *bufio.Reader
	out io.Writer
}

var _ Player = (*Human)(nil)

// NewHuman returns a human player who is prompted on out and answers on
// in. Players sharing a console should share the same reader.
func NewHuman(name string, in *bufio.Reader, out io.Writer) *Human {
	return &Human{name: name, in: in, out: out}
}

func (human *Human) Name() string {
	return human.name
}

// DecideMove prompts until the human enters the row and column of an
// empty cell. Malformed or illegal input is answered with a new prompt.
func (human *Human) DecideMove(b *board.Board, turn board.Turn) (board.Move, error) {
	for {
		fmt.Fprintf(human.out, "%s (%s), choose the row and column (0-2) separated by a space: ", human.name, turn.Current)

		line, err := human.in.ReadString('\n')
		switch {
		case errors.Is(err, io.EOF) && strings.TrimSpace(line) == "":
			return board.Move{}, ErrInputClosed
		case err != nil && !errors.Is(err, io.EOF):
			return board.Move{}, fmt.Errorf("read move: %w", err)
		}

		move, err := ParseMove(line)
		if err != nil {
			logrus.WithField("input", strings.TrimSpace(line)).Trace("Rejected human input")
			fmt.Fprintln(human.out, "Invalid input. Enter two numbers separated by a space.")
			continue
		}

		if !b.IsValidMove(move.Row, move.Col) {
			logrus.WithField("move", move).Trace("Rejected illegal human move")
			fmt.Fprintln(human.out, "Invalid move. Try again.")
			continue
		}

		return move, nil
	}
}

// ParseMove parses a move written as two whitespace separated integers.
// It doesn't check that the move is on the board.
func ParseMove(line string) (board.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return board.Move{}, fmt.Errorf("parse move %q: %w", line, errMalformed)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return board.Move{}, fmt.Errorf("parse move %q: %w", line, err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return board.Move{}, fmt.Errorf("parse move %q: %w", line, err)
	}

	return board.Move{Row: row, Col: col}, nil
}
