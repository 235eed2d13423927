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

// Package config loads the optional game configuration file.
//
// A configuration file looks like this:
//
//	algorithm: minimax
//	spinner: false
//	players:
//	  1:
//	    - { name: Alice, mark: X }
//	    - { name: Bob, mark: O }
//
// The keys of players are game modes, see Mode.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/search"
)

// Directory is the name of the program's directory inside the XDG
// configuration directories.
const Directory = "tictactoe"

var ErrInvalidPlayers = errors.New("config: invalid players")

// Mode is a game mode as chosen at the start of the program.
type Mode int

const (
	HumanVsHuman Mode = iota + 1
	HumanVsComputer
	ComputerVsComputer
)

// ParseMode parses the single character mode selection.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "1":
		return HumanVsHuman, true
	case "2":
		return HumanVsComputer, true
	case "3":
		return ComputerVsComputer, true
	default:
		return 0, false
	}
}

func (mode Mode) String() string {
	switch mode {
	case HumanVsHuman:
		return "Human vs Human"
	case HumanVsComputer:
		return "Human vs Computer"
	case ComputerVsComputer:
		return "Computer vs Computer"
	default:
		return fmt.Sprintf("Mode(%d)", int(mode))
	}
}

// Computers reports whether each side of the mode is played by a computer.
func (mode Mode) Computers() [2]bool {
	switch mode {
	case HumanVsComputer:
		return [2]bool{false, true}
	case ComputerVsComputer:
		return [2]bool{true, true}
	default:
		return [2]bool{false, false}
	}
}

type Player struct {
	Name string     `yaml:"name"`
	Mark board.Mark `yaml:"mark"`
}

type Config struct {
	Algorithm search.Algorithm
	Spinner   bool

	// Players[mode][0] moves first.
	Players map[Mode][2]Player
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Algorithm: search.AlphaBeta,
		Spinner:   true,
		Players: map[Mode][2]Player{
			HumanVsHuman:       {{"Player 1", "X"}, {"Player 2", "O"}},
			HumanVsComputer:    {{"Human", "X"}, {"Computer", "O"}},
			ComputerVsComputer: {{"Computer 1", "X"}, {"Computer 2", "O"}},
		},
	}
}

// file is the on-disk form of Config. Missing fields keep their defaults.
type file struct {
	Algorithm *string           `yaml:"algorithm"`
	Spinner   *bool             `yaml:"spinner"`
	Players   map[Mode][]Player `yaml:"players"`
}

// Load returns the default configuration overridden by the given file. An
// empty path returns the defaults. A relative path which does not exist is
// searched for in the XDG configuration directories.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	path, err := resolve(path)
	if err != nil {
		return nil, err
	}

	logrus.WithField("path", path).Debug("Loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := config.Parse(data); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	return config, nil
}

func resolve(path string) (string, error) {
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) || filepath.IsAbs(path) {
		return path, nil
	}

	found, err := xdg.SearchConfigFile(filepath.Join(Directory, path))
	if err != nil {
		return "", fmt.Errorf("load config: %s: %w", path, fs.ErrNotExist)
	}

	return found, nil
}

// Parse overrides the configuration with the given YAML document.
func (config *Config) Parse(data []byte) error {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	if f.Algorithm != nil {
		algorithm, err := search.ParseAlgorithm(*f.Algorithm)
		if err != nil {
			return err
		}

		config.Algorithm = algorithm
	}

	if f.Spinner != nil {
		config.Spinner = *f.Spinner
	}

	for mode, players := range f.Players {
		if _, found := config.Players[mode]; !found {
			return fmt.Errorf("%w: unknown mode %d", ErrInvalidPlayers, mode)
		}

		if len(players) != 2 {
			return fmt.Errorf("%w: mode %d needs 2 players, got %d", ErrInvalidPlayers, mode, len(players))
		}

		pair := [2]Player{players[0], players[1]}
		if pair[0].Mark == board.Empty || pair[1].Mark == board.Empty || pair[0].Mark == pair[1].Mark {
			return fmt.Errorf("%w: mode %d marks must be distinct and non-empty", ErrInvalidPlayers, mode)
		}

		for i := range pair {
			if pair[i].Name == "" {
				pair[i].Name = string(pair[i].Mark)
			}
		}

		config.Players[mode] = pair
	}

	return nil
}
