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

package board

// Turn holds the mark of the side to move and the mark of its opponent.
type Turn struct {
	Current, Opponent Mark
}

// Next returns the turn after the current side has moved.
func (turn Turn) Next() Turn {
	return Turn{Current: turn.Opponent, Opponent: turn.Current}
}

// Status is the state of a game on a board.
type Status int

const (
	InProgress Status = iota
	Won
	Drawn
)

func (status Status) String() string {
	switch status {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Drawn:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome classifies the board for the two marks of turn.
type Outcome struct {
	Status Status
	Winner Mark
}

// Outcome returns exactly one of InProgress, Won(mark), or Drawn for the
// board. Wins are checked before draws since a full board can be a win.
func (board *Board) Outcome(turn Turn) Outcome {
	switch {
	case board.IsWinner(turn.Current):
		return Outcome{Status: Won, Winner: turn.Current}
	case board.IsWinner(turn.Opponent):
		return Outcome{Status: Won, Winner: turn.Opponent}
	case board.IsDraw():
		return Outcome{Status: Drawn}
	default:
		return Outcome{Status: InProgress}
	}
}

// IsTerminal reports whether the game on the board is over.
func (outcome Outcome) IsTerminal() bool {
	return outcome.Status != InProgress
}
