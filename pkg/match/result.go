package match

// PairResult represents the result of a single game pair.
type PairResult int

const (
	WinWin   = PairResult(Player1Wins + Player1Wins) // Player 1 wins both sides
	WinDraw  = PairResult(Player1Wins + Draw)        // Player 1 wins one and holds
	DrawDraw = PairResult(Draw + Draw)               // Win-Loss or Draw-Draw
	DrawLoss = PairResult(Draw + Player2Wins)        // Player 2 wins one and holds
	LossLoss = PairResult(Player2Wins + Player2Wins) // Player 2 wins both sides
)

// GetPairResult returns the PairResult given the Result of each game in the
// pair, both from Player 1's point of view.
func GetPairResult(result1, result2 Result) PairResult {
	return PairResult(result1 + result2)
}

// Result represents the result of a single game from the point of view of
// the player who moved first.
type Result int

const (
	Player1Wins Result = +1
	Draw        Result = 0
	Player2Wins Result = -1
)

// GameWonBy maps the index of the winning player to the game's Result.
var GameWonBy = [2]Result{
	0: Player1Wins,
	1: Player2Wins,
}

// Flip returns the result from the other player's point of view.
func (result Result) Flip() Result {
	return -result
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Player1Wins:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Player2Wins:
		return "0-1"
	default:
		return "?-?"
	}
}
