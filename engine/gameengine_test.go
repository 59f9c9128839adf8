package engine

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/minaorangina/suits/game"
	utils "github.com/minaorangina/suits/internal"
	"github.com/minaorangina/suits/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gameEngineTestTimeout = 2 * time.Second

func TestGameEngineConstructor(t *testing.T) {
	t.Run("wraps a dealt game", func(t *testing.T) {
		ge, err := NewGameEngine(GameEngineOpts{GameID: "some-id", Game: shortGame(t)})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, ge.ID(), "some-id")
		utils.AssertEqual(t, ge.PlayState(), Idle)
	})

	t.Run("refuses a game in progress", func(t *testing.T) {
		s, _, err := shortGame(t).Draw()
		require.NoError(t, err)

		_, err = NewGameEngine(GameEngineOpts{GameID: "some-id", Game: s})
		assert.ErrorIs(t, err, ErrAlreadyStarted)
	})
}

func TestGameEngineAddPlayer(t *testing.T) {
	ge, err := NewGameEngine(GameEngineOpts{GameID: "some-id", Game: shortGame(t)})
	require.NoError(t, err)

	_, err = ge.Play()
	assert.ErrorIs(t, err, ErrNoPlayer)

	utils.AssertNoError(t, ge.AddPlayer(&scriptedPlayer{}))
	assert.ErrorIs(t, ge.AddPlayer(&scriptedPlayer{}), ErrPlayerConnected)
}

func TestGameEnginePlay(t *testing.T) {
	t.Run("plays to the end", func(t *testing.T) {
		player := &scriptedPlayer{responses: []protocol.InboundMessage{discardMsg(t, "9S")}}
		ge, err := NewGameEngine(GameEngineOpts{GameID: "g1", Game: shortGame(t), Player: player})
		require.NoError(t, err)

		final, err := ge.Play()
		utils.AssertNoError(t, err)

		utils.AssertEqual(t, final.Outcome(), game.PlayerWon)
		utils.AssertEqual(t, ge.PlayState(), Finished)
		utils.AssertEqual(t, ge.State().Outcome(), game.PlayerWon)
		assert.Equal(t, []protocol.Cmd{protocol.Start, protocol.Turn, protocol.OpponentMoved, protocol.GameOver}, player.commands())

		turn := player.sent[1]
		utils.AssertTrue(t, turn.ShouldRespond)
		utils.AssertEqual(t, *turn.NewCard, mustCard(t, "4H"))

		moved := player.sent[2]
		utils.AssertEqual(t, *moved.OpponentDiscard, mustCard(t, "KC"))
		// four candidates, two of them clubs, two cards left in the deck
		utils.AssertInDelta(t, moved.OpponentProbability, 2.0/13, 1e-9)

		over := player.sent[3]
		utils.AssertEqual(t, over.Outcome, "PlayerWon")
		utils.AssertEqual(t, over.Reason, "SuitTarget")
		utils.AssertEqual(t, over.Message, "You win!")
	})

	t.Run("re-prompts on an invalid discard", func(t *testing.T) {
		player := &scriptedPlayer{responses: []protocol.InboundMessage{
			discardMsg(t, "KC"),
			{Command: protocol.Start},
			discardMsg(t, "9S"),
		}}
		ge, err := NewGameEngine(GameEngineOpts{GameID: "g2", Game: shortGame(t), Player: player})
		require.NoError(t, err)

		final, err := ge.Play()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, final.Outcome(), game.PlayerWon)

		assert.Equal(t, []protocol.Cmd{
			protocol.Start, protocol.Turn, protocol.Error, protocol.Error, protocol.OpponentMoved, protocol.GameOver,
		}, player.commands())
		assert.Contains(t, player.sent[2].Error, game.ErrInvalidDiscard.Error())
		utils.AssertTrue(t, player.sent[2].ShouldRespond)
	})

	t.Run("re-prompts on an unreadable message", func(t *testing.T) {
		player := &scriptedPlayer{malformed: 2, responses: []protocol.InboundMessage{discardMsg(t, "9S")}}
		ge, err := NewGameEngine(GameEngineOpts{GameID: "g5", Game: shortGame(t), Player: player})
		require.NoError(t, err)

		final, err := ge.Play()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, final.Outcome(), game.PlayerWon)

		assert.Equal(t, []protocol.Cmd{
			protocol.Start, protocol.Turn, protocol.Error, protocol.Error, protocol.OpponentMoved, protocol.GameOver,
		}, player.commands())
		assert.Contains(t, player.sent[2].Error, ErrMalformedMessage.Error())
		utils.AssertTrue(t, player.sent[3].ShouldRespond)
	})

	t.Run("stops when the player goes away", func(t *testing.T) {
		player := &scriptedPlayer{}
		ge, err := NewGameEngine(GameEngineOpts{GameID: "g3", Game: shortGame(t), Player: player})
		require.NoError(t, err)

		state, err := ge.Play()
		assert.ErrorIs(t, err, io.EOF)
		utils.AssertEqual(t, state.Phase(), game.AwaitingPlayerDiscard)
		utils.AssertEqual(t, ge.State().Phase(), game.AwaitingPlayerDiscard)
	})

	t.Run("cannot be played twice", func(t *testing.T) {
		player := &scriptedPlayer{responses: []protocol.InboundMessage{discardMsg(t, "9S")}}
		ge, err := NewGameEngine(GameEngineOpts{GameID: "g4", Game: shortGame(t), Player: player})
		require.NoError(t, err)

		_, err = ge.Play()
		require.NoError(t, err)
		_, err = ge.Play()
		assert.ErrorIs(t, err, ErrAlreadyStarted)
	})
}

func TestAutoplay(t *testing.T) {
	t.Run("reports the opponent's decision", func(t *testing.T) {
		spectator := &scriptedPlayer{}
		final, err := Autoplay("auto", shortGame(t), game.EasyStrategy{}, spectator)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, final.Outcome(), game.PlayerWon)

		assert.Equal(t, []protocol.Cmd{protocol.Start, protocol.Turn, protocol.OpponentMoved, protocol.GameOver}, spectator.commands())

		moved := spectator.sent[2]
		utils.AssertEqual(t, *moved.OpponentDiscard, mustCard(t, "KC"))
		utils.AssertInDelta(t, moved.OpponentProbability, 2.0/13, 1e-9)
	})

	for _, d := range []game.Difficulty{game.Easy, game.Hard} {
		t.Run(d.String(), func(t *testing.T) {
			s, err := game.NewGame(game.Opts{Difficulty: d, Rand: rand.New(rand.NewSource(3))})
			require.NoError(t, err)

			spectator := &scriptedPlayer{}
			utils.Within(t, gameEngineTestTimeout, func() {
				final, err := Autoplay("auto", s, game.StrategyFor(d), spectator)
				utils.AssertNoError(t, err)
				utils.AssertEqual(t, final.Phase(), game.Resolved)
			})

			cmds := spectator.commands()
			require.NotEmpty(t, cmds)
			utils.AssertEqual(t, cmds[0], protocol.Start)
			utils.AssertEqual(t, cmds[len(cmds)-1], protocol.GameOver)
			for _, m := range spectator.sent {
				assert.False(t, m.ShouldRespond)
			}
		})
	}
}
