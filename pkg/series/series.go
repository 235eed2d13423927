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

// Package series runs many computer versus computer games and keeps score.
package series

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/match"
	"laptudirm.com/x/tictactoe/pkg/player"
	"laptudirm.com/x/tictactoe/pkg/search"
	"laptudirm.com/x/tictactoe/pkg/stats"
)

var ErrNoGames = errors.New("series: at least one game pair is needed")

type PlayerConfig struct {
	Name      string
	Algorithm search.Algorithm
}

type Config struct {
	// The computers taking part in the series.
	Players [2]PlayerConfig

	// Marks[0] is used by whoever moves first in a game.
	Marks [2]board.Mark

	// 1 Series    = {GamePairs} Game Pairs
	// 1 Game Pair = 2 Games from the same opening with sides swapped
	GamePairs int

	// Number of games played concurrently.
	Concurrency int

	// Opening book strategy, see NewBook.
	Openings string
}

// Score holds the results of a single player.
type Score struct {
	Wins, Losses, Draws int
}

func (score Score) Games() int {
	return score.Wins + score.Losses + score.Draws
}

func NewSeries(config Config) (*Series, error) {
	if config.GamePairs < 1 {
		return nil, ErrNoGames
	}

	if config.Concurrency < 1 {
		config.Concurrency = 1
	}

	var series Series
	series.ID = uuid.New().String()[:8]
	series.Config = config

	var err error
	series.openings, err = NewBook(config.Openings)
	if err != nil {
		return nil, err
	}

	return &series, nil
}

type Series struct {
	// ID tells the log lines of concurrently running series apart.
	ID     string
	Config Config

	openings *Book

	Games  int
	Pairs  [5]int // indexed by match.PairResult - match.LossLoss
	Scores [2]Score
}

// Game is a single scheduled game of the series.
type Game struct {
	match.Config

	Pair, Number     int
	Player1, Player2 int
}

// Result is the outcome of a single scheduled game.
type Result struct {
	Game *Game

	Report match.Report
	Err    error
}

func (result Result) String() string {
	switch result.Report.Result {
	case match.Player1Wins:
		return fmt.Sprintf("%s wins by %s", result.Game.Players[0].Name(), result.Report.Reason)
	case match.Player2Wins:
		return fmt.Sprintf("%s wins by %s", result.Game.Players[1].Name(), result.Report.Reason)
	case match.Draw:
		return fmt.Sprintf("Draw by %s", result.Report.Reason)
	}

	return "illegal result"
}

// Start plays every game of the series and blocks until all of them are
// finished. It returns the first error encountered by any game.
func (series *Series) Start() error {
	games := make(chan *Game)
	results := make(chan Result)

	var threads sync.WaitGroup
	for range series.Config.Concurrency {
		threads.Add(1)
		go func() {
			defer threads.Done()
			series.Thread(games, results)
		}()
	}

	go func() {
		series.schedule(games)
		close(games)

		threads.Wait()
		close(results)
	}()

	return series.ResultHandler(results)
}

func (series *Series) schedule(games chan<- *Game) {
	for pair := 0; pair < series.Config.GamePairs; pair++ {
		opening := series.openings.Current()
		p1, p2 := 0, 1

		for game := 0; game < 2; game++ {
			games <- &Game{
				Config: match.Config{
					Players: [2]player.Player{
						series.newPlayer(p1),
						series.newPlayer(p2),
					},
					Marks:   series.Config.Marks,
					Opening: &opening,
				},

				Pair:   pair + 1,
				Number: pair*2 + game + 1,

				Player1: p1,
				Player2: p2,
			}

			// Switch sides.
			p1, p2 = p2, p1
		}

		series.openings.Next()
	}
}

func (series *Series) newPlayer(i int) player.Player {
	config := series.Config.Players[i]
	return player.NewComputer(config.Name, config.Algorithm)
}

func (series *Series) Thread(games <-chan *Game, results chan<- Result) {
	for game := range games {
		results <- series.RunGame(game)
	}
}

func (series *Series) RunGame(game *Game) Result {
	logrus.WithField("series", series.ID).Infof(
		"\x1b[33mStarting\x1b[0m Game #%d: %s vs %s (\x1b[33m%s\x1b[0m)",
		game.Number,
		game.Players[0].Name(),
		game.Players[1].Name(),
		game.Opening,
	)

	report, err := match.Run(&game.Config)
	return Result{Game: game, Report: report, Err: err}
}

func (series *Series) ResultHandler(results <-chan Result) error {
	var firstErr error
	pairs := map[int]match.Result{}

	for result := range results {
		if result.Err != nil {
			logrus.WithField("series", series.ID).Error(result.Err)
			if firstErr == nil {
				firstErr = fmt.Errorf("game #%d: %w", result.Game.Number, result.Err)
			}
			continue
		}

		series.Games++
		p1, p2 := result.Game.Player1, result.Game.Player2

		switch result.Report.Result {
		case match.Player1Wins:
			series.Scores[p1].Wins++
			series.Scores[p2].Losses++

		case match.Player2Wins:
			series.Scores[p2].Wins++
			series.Scores[p1].Losses++

		case match.Draw:
			series.Scores[p1].Draws++
			series.Scores[p2].Draws++
		}

		// Pair results are kept from the point of view of player 0.
		score := result.Report.Result
		if p1 != 0 {
			score = score.Flip()
		}

		if first, found := pairs[result.Game.Pair]; found {
			delete(pairs, result.Game.Pair)
			series.Pairs[match.GetPairResult(first, score)-match.LossLoss]++
		} else {
			pairs[result.Game.Pair] = score
		}

		logrus.WithField("series", series.ID).Infof(
			"\x1b[32mFinished\x1b[0m Game #%d: %s vs %s: %s",
			result.Game.Number,
			result.Game.Players[0].Name(),
			result.Game.Players[1].Name(),
			result,
		)
	}

	return firstErr
}

func (series *Series) Report(w io.Writer) {
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════╣")
	for i, config := range series.Config.Players {
		score := series.Scores[i]
		lower, elo, upper := stats.Elo(score.Wins, score.Draws, score.Losses)

		fmt.Fprintf(w,
			"║ %2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d ║\n",
			i+1, config.Name,
			elo, math.Abs(math.Max(upper-elo, elo-lower)),
			score.Wins, score.Losses, score.Draws,
			score.Games())
	}
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════╝")

	fmt.Fprintf(w,
		"Pairs: LL %d  LD %d  DD %d  WD %d  WW %d\n",
		series.Pairs[0], series.Pairs[1], series.Pairs[2], series.Pairs[3], series.Pairs[4],
	)

	lower, elo, upper := stats.PairElo(series.Pairs)
	fmt.Fprintf(w,
		"Pair Elo of %s: %+.0f ± %.0f\n",
		series.Config.Players[0].Name,
		elo, math.Abs(math.Max(upper-elo, elo-lower)),
	)
}
