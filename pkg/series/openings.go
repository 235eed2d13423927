package series

import (
	"fmt"
	"math/rand"
	"slices"

	"laptudirm.com/x/tictactoe/pkg/board"
)

// NewBook returns an opening book holding every first move of the game.
// The strategy decides how Next picks the following opening: "random"
// picks one at random, anything else cycles through them in row-major
// order.
func NewBook(strategy string) (*Book, error) {
	switch strategy {
	case "", "sequential", "random":
	default:
		return nil, fmt.Errorf("new book: invalid strategy %s", strategy)
	}

	return &Book{
		entries:  slices.Collect(board.New().LegalMoves()),
		strategy: strategy,
	}, nil
}

// Book is a list of forced first moves played by the series.
type Book struct {
	entries  []board.Move
	strategy string
	current  int
}

func (book *Book) Next() {
	switch book.strategy {
	case "random":
		book.current = rand.Intn(len(book.entries))
	default:
		book.current = (book.current + 1) % len(book.entries)
	}
}

func (book *Book) Current() board.Move {
	return book.entries[book.current]
}

func (book *Book) Len() int {
	return len(book.entries)
}
