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

// Package board implements the 3x3 tic-tac-toe grid along with the
// queries needed to play and search on it.
package board

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Size is the number of rows and columns on the board.
const Size = 3

var (
	ErrOutOfRange   = errors.New("board: coordinates out of range")
	ErrCellOccupied = errors.New("board: cell is already occupied")
)

// Mark is the token placed in a cell to denote which player occupies it.
// Marks are opaque: a symbol like "X" and a player name both work, the
// board only ever compares them for equality.
type Mark string

// Empty is the mark of an unoccupied cell.
const Empty Mark = ""

// Move is a (row, column) pair on the board.
type Move struct {
	Row, Col int
}

func (move Move) String() string {
	return fmt.Sprintf("%d %d", move.Row, move.Col)
}

// lines are the eight winning lines of the board.
var lines = [8][Size]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a tic-tac-toe grid. The zero value is an empty board.
type Board struct {
	cells [Size][Size]Mark
}

// New returns a new empty board.
func New() *Board {
	return &Board{}
}

// FromCells returns a board holding the given cells.
func FromCells(cells [Size][Size]Mark) *Board {
	return &Board{cells: cells}
}

// Cells returns a copy of the board's grid.
func (board *Board) Cells() [Size][Size]Mark {
	return board.cells
}

func inRange(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the mark at the given cell, or Empty if it is out of range.
func (board *Board) At(row, col int) Mark {
	if !inRange(row, col) {
		return Empty
	}

	return board.cells[row][col]
}

// IsValidMove reports whether the given cell is on the board and empty.
func (board *Board) IsValidMove(row, col int) bool {
	return inRange(row, col) && board.cells[row][col] == Empty
}

// ApplyMove puts mark on the given cell. The board is left unchanged if
// the cell is out of range or already occupied.
func (board *Board) ApplyMove(row, col int, mark Mark) error {
	if !inRange(row, col) {
		return fmt.Errorf("%w: %d %d", ErrOutOfRange, row, col)
	}

	if board.cells[row][col] != Empty {
		return fmt.Errorf("%w: %d %d", ErrCellOccupied, row, col)
	}

	board.cells[row][col] = mark
	return nil
}

// UndoMove clears the given cell. It is the inverse of ApplyMove and is
// used to backtrack during search.
func (board *Board) UndoMove(row, col int) {
	if inRange(row, col) {
		board.cells[row][col] = Empty
	}
}

// IsWinner reports whether mark fills a whole row, column, or diagonal.
func (board *Board) IsWinner(mark Mark) bool {
	if mark == Empty {
		return false
	}

	for _, line := range lines {
		if board.cells[line[0].Row][line[0].Col] == mark &&
			board.cells[line[1].Row][line[1].Col] == mark &&
			board.cells[line[2].Row][line[2].Col] == mark {
			return true
		}
	}

	return false
}

// IsDraw reports whether every cell is occupied. A full board may also be
// a win, so callers must check IsWinner first.
func (board *Board) IsDraw() bool {
	for row := range Size {
		for col := range Size {
			if board.cells[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

// LegalMoves yields the empty cells in row-major order.
func (board *Board) LegalMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for row := range Size {
			for col := range Size {
				if board.cells[row][col] != Empty {
					continue
				}

				if !yield(Move{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// Count returns the number of cells holding mark.
func (board *Board) Count(mark Mark) int {
	n := 0
	for row := range Size {
		for col := range Size {
			if board.cells[row][col] == mark {
				n++
			}
		}
	}

	return n
}

// String renders the board as rows of cells joined by " | ", followed by
// a separator line of dashes.
func (board *Board) String() string {
	var builder strings.Builder

	for _, row := range board.cells {
		cells := make([]string, Size)
		for i, cell := range row {
			cells[i] = string(cell)
			if cell == Empty {
				cells[i] = " "
			}
		}

		builder.WriteString(strings.Join(cells, " | "))
		builder.WriteByte('\n')
	}

	builder.WriteString(strings.Repeat("-", 9))
	builder.WriteByte('\n')
	return builder.String()
}
