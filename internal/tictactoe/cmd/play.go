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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/config"
	"laptudirm.com/x/tictactoe/pkg/match"
	"laptudirm.com/x/tictactoe/pkg/player"
	"laptudirm.com/x/tictactoe/pkg/search"
)

var ErrInvalidMode = errors.New("invalid mode, please choose 1, 2, or 3")

func play(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	selection, _ := cmd.Flags().GetString("mode")
	if !cmd.Flag("mode").Changed {
		if selection, err = promptMode(in, out); err != nil {
			return err
		}
	}

	mode, ok := config.ParseMode(strings.TrimSpace(selection))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMode, strings.TrimSpace(selection))
	}

	players, marks := newPlayers(mode, conf, in, out)

	logrus.WithFields(logrus.Fields{
		"mode":      mode,
		"algorithm": conf.Algorithm,
	}).Debug("Starting game")

	fmt.Fprintln(out, "Welcome to tic-tac-toe!")
	_, err = match.Run(&match.Config{
		Players: players,
		Marks:   marks,
		Output:  out,
	})

	return err
}

func promptMode(in *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "Choose the game mode:")
	fmt.Fprintf(out, "1. %s\n", config.HumanVsHuman)
	fmt.Fprintf(out, "2. %s\n", config.HumanVsComputer)
	fmt.Fprintf(out, "3. %s\n", config.ComputerVsComputer)
	fmt.Fprint(out, "Choose the mode (1/2/3): ")

	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read mode: %w", err)
	}

	return line, nil
}

// loadConfig loads the --config file and applies the flags given on top
// of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	conf, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flag("algorithm").Changed {
		name, _ := cmd.Flags().GetString("algorithm")
		if conf.Algorithm, err = search.ParseAlgorithm(name); err != nil {
			return nil, err
		}
	}

	if noSpinner, _ := cmd.Flags().GetBool("no-spinner"); noSpinner {
		conf.Spinner = false
	}

	return conf, nil
}

func newPlayers(mode config.Mode, conf *config.Config, in *bufio.Reader, out io.Writer) ([2]player.Player, [2]board.Mark) {
	var players [2]player.Player
	var marks [2]board.Mark

	for i, computer := range mode.Computers() {
		info := conf.Players[mode][i]
		marks[i] = info.Mark

		if !computer {
			players[i] = player.NewHuman(info.Name, in, out)
			continue
		}

		c := player.NewComputer(info.Name, conf.Algorithm)
		if conf.Spinner {
			c.WithSpinner(out)
		}

		players[i] = c
	}

	return players, marks
}
