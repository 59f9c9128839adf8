package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/minaorangina/suits/config"
	"github.com/minaorangina/suits/engine"
	"github.com/minaorangina/suits/game"
	"github.com/minaorangina/suits/store"
	"github.com/spf13/cobra"
)

var (
	configPath string
	difficulty string
	faceValues string
	seed       int64
	auto       bool
)

// RootCmd plays one game in the terminal
var RootCmd = &cobra.Command{
	Use:   "suits",
	Short: "Collect cards of one suit before the computer does",
	Long: `Suits is a two-player card game against the computer.
Draw a card each turn, discard one, and be the first to hold 3 (easy)
or 6 (hard) cards of the same suit. When the deck runs out the lower
hand total wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := gameOpts(cmd)
		if err != nil {
			return err
		}
		return play(opts, os.Stdin, cmd.OutOrStdout())
	},
}

// configCmd writes a config file holding the defaults
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.GetConfigFilePath()
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
		if err := config.Write(path, config.Default()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/suits/config.toml)")
	RootCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "easy or hard")
	RootCmd.Flags().StringVar(&faceValues, "faces", "", "face card values: flat or ranked")
	RootCmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed, for replaying a deal")
	RootCmd.Flags().BoolVar(&auto, "auto", false, "let the computer play your hand too")

	RootCmd.AddCommand(configCmd)
}

// gameOpts merges the config file, the environment and the flags.
// Flags win.
func gameOpts(cmd *cobra.Command) (game.Opts, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return game.Opts{}, err
	}

	if cmd.Flags().Changed("difficulty") {
		cfg.Difficulty = difficulty
	}
	if cmd.Flags().Changed("faces") {
		cfg.FaceValues = faceValues
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return game.Opts{}, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return game.Opts{
		Difficulty: cfg.GameDifficulty(),
		Values:     cfg.Values(),
		Rand:       rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

func play(opts game.Opts, in io.Reader, out io.Writer) error {
	s, err := game.NewGame(opts)
	if err != nil {
		return err
	}

	player := engine.NewCLIPlayer(in, out)
	gameID := store.NewID()

	if auto {
		_, err = engine.Autoplay(gameID, s, game.StrategyFor(opts.Difficulty), player)
		return err
	}

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{GameID: gameID, Game: s, Player: player})
	if err != nil {
		return err
	}

	_, err = ge.Play()
	return err
}
