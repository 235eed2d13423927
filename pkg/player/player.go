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

// Package player provides the participants of a game: humans typing their
// moves on a console and computers choosing them by search.
package player

import (
	"errors"

	"laptudirm.com/x/tictactoe/pkg/board"
)

var (
	ErrInputClosed = errors.New("player: input closed")
	ErrNoMoves     = errors.New("player: no legal moves")
)

// Player decides the moves for one side of a game.
type Player interface {
	// Name is the display name of the player.
	Name() string

	// DecideMove returns the move turn.Current should play on b. The
	// returned move is always valid on b when err is nil. The board
	// is left as it was.
	DecideMove(b *board.Board, turn board.Turn) (board.Move, error)
}
