package main

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/minaorangina/suits/game"
	utils "github.com/minaorangina/suits/internal"
	"github.com/stretchr/testify/assert"
)

func TestPlayAuto(t *testing.T) {
	color.NoColor = true
	auto = true
	defer func() { auto = false }()

	out := &bytes.Buffer{}
	err := play(game.Opts{Difficulty: game.Hard, Rand: rand.New(rand.NewSource(11))}, strings.NewReader(""), out)
	utils.AssertNoError(t, err)

	assert.Contains(t, out.String(), "Collect 6 cards of one suit to win.")
	assert.Contains(t, out.String(), "Computer hand:")
}

func TestGameOpts(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	utils.AssertNoError(t, RootCmd.ParseFlags([]string{"--difficulty", "hard", "--faces", "ranked", "--seed", "5"}))

	opts, err := gameOpts(RootCmd)
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, opts.Difficulty, game.Hard)
	utils.AssertEqual(t, opts.Values.String(), "ranked")
	utils.AssertEqual(t, opts.Rand.Int63(), rand.New(rand.NewSource(5)).Int63())
}

func TestConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	configPath = path
	defer func() { configPath = "" }()

	out := &bytes.Buffer{}
	configCmd.SetOut(out)
	utils.AssertNoError(t, configCmd.RunE(configCmd, nil))
	assert.Contains(t, out.String(), path)

	utils.AssertErrored(t, configCmd.RunE(configCmd, nil))
}
