package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElo(t *testing.T) {
	t.Run("no games", func(t *testing.T) {
		lower, elo, upper := Elo(0, 0, 0)
		assert.Zero(t, lower)
		assert.Zero(t, elo)
		assert.Zero(t, upper)
	})

	t.Run("only draws", func(t *testing.T) {
		lower, elo, upper := Elo(0, 20, 0)
		assert.Zero(t, lower)
		assert.Zero(t, elo)
		assert.Zero(t, upper)
	})

	t.Run("even score", func(t *testing.T) {
		lower, elo, upper := Elo(10, 5, 10)
		assert.InDelta(t, 0, elo, 1e-9)
		assert.Less(t, lower, elo)
		assert.Greater(t, upper, elo)
		assert.InDelta(t, -lower, upper, 1e-9)
	})

	t.Run("winning record", func(t *testing.T) {
		lower, elo, upper := Elo(30, 10, 10)
		assert.Greater(t, elo, 0.0)
		assert.Less(t, lower, elo)
		assert.Greater(t, upper, elo)
	})

	t.Run("losing record mirrors winning record", func(t *testing.T) {
		_, win, _ := Elo(30, 10, 10)
		_, loss, _ := Elo(10, 10, 30)
		assert.InDelta(t, -win, loss, 1e-9)
	})
}

func TestScore(t *testing.T) {
	assert.Zero(t, Score(0, 0, 0))
	assert.Equal(t, 0.5, Score(0, 4, 0))
	assert.Equal(t, 0.75, Score(1, 1, 0))
	assert.Equal(t, 0.0, Score(0, 0, 3))
}

func TestPairElo(t *testing.T) {
	t.Run("only draws", func(t *testing.T) {
		lower, elo, upper := PairElo([5]int{0, 0, 12, 0, 0})
		assert.InDelta(t, 0, elo, 1e-9)
		assert.Less(t, lower, elo)
		assert.Greater(t, upper, elo)
	})

	t.Run("winning pairs", func(t *testing.T) {
		lower, elo, upper := PairElo([5]int{0, 1, 4, 3, 2})
		assert.Greater(t, elo, 0.0)
		assert.Less(t, lower, elo)
		assert.Greater(t, upper, elo)
	})

	t.Run("mirrored pairs", func(t *testing.T) {
		_, win, _ := PairElo([5]int{0, 1, 4, 3, 2})
		_, loss, _ := PairElo([5]int{2, 3, 4, 1, 0})
		assert.InDelta(t, -win, loss, 1e-9)
	})
}
