package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/minaorangina/suits/deck"
	utils "github.com/minaorangina/suits/internal"
	"github.com/minaorangina/suits/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendText(t *testing.T) {
	buffer := &bytes.Buffer{}
	SendText(buffer, "Hello, %s", "human")
	utils.AssertEqual(t, buffer.String(), "Hello, human")
}

func TestCLIPlayer(t *testing.T) {
	color.NoColor = true

	turn := func(t *testing.T) protocol.OutboundMessage {
		newCard := mustCard(t, "4H")
		return protocol.OutboundMessage{
			Command:       protocol.Turn,
			Hand:          []deck.Card{mustCard(t, "2H"), mustCard(t, "3H"), mustCard(t, "9S")},
			NewCard:       &newCard,
			OpponentHand:  []deck.Card{mustCard(t, "2C"), mustCard(t, "3D"), mustCard(t, "4S")},
			DeckCount:     2,
			ShouldRespond: true,
		}
	}

	t.Run("shows the numbered candidates", func(t *testing.T) {
		out := &bytes.Buffer{}
		p := NewCLIPlayer(strings.NewReader(""), out)
		require.NoError(t, p.Send(turn(t)))

		text := out.String()
		assert.Contains(t, text, "2 cards left")
		assert.Contains(t, text, "1 - 2♥")
		assert.Contains(t, text, "3 - 9♠")
		assert.Contains(t, text, "4 - 4♥ (new)")
	})

	t.Run("accepts a list number", func(t *testing.T) {
		p := NewCLIPlayer(strings.NewReader("3\n"), &bytes.Buffer{})
		require.NoError(t, p.Send(turn(t)))

		msg, err := p.Receive()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, msg.Command, protocol.Discard)
		utils.AssertEqual(t, msg.Card, mustCard(t, "9S"))
	})

	t.Run("accepts a card code after a bad entry", func(t *testing.T) {
		out := &bytes.Buffer{}
		p := NewCLIPlayer(strings.NewReader("7\n4h\n"), out)
		require.NoError(t, p.Send(turn(t)))

		msg, err := p.Receive()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, msg.Card, mustCard(t, "4H"))
		assert.Contains(t, out.String(), "Invalid choice")
	})

	t.Run("gives up after too many bad entries", func(t *testing.T) {
		p := NewCLIPlayer(strings.NewReader(strings.Repeat("x\n", maxRetries)), &bytes.Buffer{})
		require.NoError(t, p.Send(turn(t)))

		_, err := p.Receive()
		assert.ErrorIs(t, err, ErrMaxRetries)
	})

	t.Run("plays a whole game through the engine", func(t *testing.T) {
		out := &bytes.Buffer{}
		p := NewCLIPlayer(strings.NewReader("9S\n"), out)
		ge, err := NewGameEngine(GameEngineOpts{GameID: "cli", Game: shortGame(t), Player: p})
		require.NoError(t, err)

		_, err = ge.Play()
		utils.AssertNoError(t, err)
		assert.Contains(t, out.String(), "You win!")
		assert.Contains(t, out.String(), "Opponent discarded the King of Clubs")
	})
}
