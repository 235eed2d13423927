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
	"io"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/internal/util"
	"laptudirm.com/x/tictactoe/pkg/search"
)

// Computer is a player which picks optimal moves by game-tree search.
type Computer struct {
	name      string
	algorithm search.Algorithm

	spinner *spinner.Spinner
}

var _ Player = (*Computer)(nil)

// NewComputer returns a computer player using the given algorithm.
func NewComputer(name string, algorithm search.Algorithm) *Computer {
	return &Computer{name: name, algorithm: algorithm}
}

// WithSpinner makes the computer draw a spinner on w while it searches.
func (computer *Computer) WithSpinner(w io.Writer) *Computer {
	computer.spinner = util.NewSpinner(w, " "+computer.name+" is thinking...")
	return computer
}

func (computer *Computer) Name() string {
	return computer.name
}

func (computer *Computer) Algorithm() search.Algorithm {
	return computer.algorithm
}

func (computer *Computer) DecideMove(b *board.Board, turn board.Turn) (board.Move, error) {
	if computer.spinner != nil {
		computer.spinner.Start()
		defer computer.spinner.Stop()
	}

	result := search.FindBestMove(b, turn, computer.algorithm)
	if !result.Found {
		return board.Move{}, ErrNoMoves
	}

	logrus.WithFields(logrus.Fields{
		"player": computer.name,
		"move":   result.Move,
		"score":  result.Score,
	}).Debug("Computer decided")

	return result.Move, nil
}
