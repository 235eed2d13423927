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

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/search"
	"laptudirm.com/x/tictactoe/pkg/series"
)

func Series() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Play a series of games between two computers",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`series plays game pairs between two computer players and
			prints their score. Both games of a pair start from the same
			opening move with the players switching sides, and the
			openings are taken from a book of every first move.

			Since both players search the whole game tree, every game
			of a series should be drawn. A series is useful to compare
			the algorithms, which must agree on every position.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			var config series.Config

			for i, flag := range [2]string{"player1", "player2"} {
				name, _ := cmd.Flags().GetString(flag)
				algorithm, err := search.ParseAlgorithm(name)
				if err != nil {
					return err
				}

				config.Players[i] = series.PlayerConfig{
					Name:      algorithm.String(),
					Algorithm: algorithm,
				}
			}

			// Make the names in the score table distinguishable.
			if config.Players[0].Name == config.Players[1].Name {
				config.Players[0].Name += " 1"
				config.Players[1].Name += " 2"
			}

			config.Marks = [2]board.Mark{"X", "O"}
			config.GamePairs, _ = cmd.Flags().GetInt("games")
			config.Concurrency, _ = cmd.Flags().GetInt("concurrency")
			config.Openings, _ = cmd.Flags().GetString("openings")

			s, err := series.NewSeries(config)
			if err != nil {
				return err
			}

			if err := s.Start(); err != nil {
				return err
			}

			s.Report(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntP("games", "g", 9, "Number of game pairs to play")
	cmd.Flags().IntP("concurrency", "j", 1, "Number of games to play concurrently")
	cmd.Flags().String("player1", search.AlphaBeta.String(), "Algorithm of the first player")
	cmd.Flags().String("player2", search.Minimax.String(), "Algorithm of the second player")
	cmd.Flags().String("openings", "sequential", "Opening book strategy: sequential or random")

	return cmd
}
