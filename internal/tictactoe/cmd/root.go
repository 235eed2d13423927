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
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const Version = "v0.1.0"

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against a human or the computer",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`tictactoe plays a game of tic-tac-toe on the console. Two
			humans can play against each other, a human can play against
			the computer, or the computer can play against itself.

			The game mode is asked for at startup unless --mode is given:
			1 for human vs human, 2 for human vs computer, and 3 for
			computer vs computer. Humans enter their moves as the row
			and the column of a cell, both between 0 and 2, separated by
			a space.

			The computer searches the whole game tree, so it never loses.
			The search algorithm can be chosen with --algorithm.`),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// --trace takes precedence over --debug.
			switch {
			case cmd.Flag("trace").Changed:
				logrus.SetLevel(logrus.TraceLevel)
			case cmd.Flag("debug").Changed:
				logrus.SetLevel(logrus.DebugLevel)
			}
		},

		RunE: play,
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().BoolP("debug", "d", false, "Show Debug Information")

	root.Flags().BoolP("version", "v", false, "Show tictactoe's Version")
	root.Flags().StringP("mode", "m", "", "Game mode to play: 1, 2, or 3")
	root.Flags().StringP("algorithm", "a", "", "Search algorithm of the computer: minimax or alphabeta")
	root.Flags().StringP("config", "c", "", "Configuration file to load")
	root.Flags().Bool("no-spinner", false, "Don't show a spinner while the computer thinks")

	root.SetVersionTemplate(Version + "\n")
	root.Version = Version

	// Register the various commands.
	root.AddCommand(Series())
	root.AddCommand(VersionCmd())

	return root
}

func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show tictactoe's Version",
		Args:  cobra.NoArgs,

		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
