package engine

import (
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/minaorangina/suits/deck"
	"github.com/minaorangina/suits/game"
	"github.com/minaorangina/suits/protocol"
	"github.com/stretchr/testify/require"
)

// scriptedPlayer answers with canned responses and records what it is sent
type scriptedPlayer struct {
	mu        sync.Mutex
	responses []protocol.InboundMessage
	sent      []protocol.OutboundMessage
	// malformed is how many unreadable messages arrive before the responses
	malformed int
}

func (p *scriptedPlayer) Send(msg protocol.OutboundMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, msg)
	return nil
}

func (p *scriptedPlayer) Receive() (protocol.InboundMessage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.malformed > 0 {
		p.malformed--
		return protocol.InboundMessage{}, fmt.Errorf("%w: unknown command", ErrMalformedMessage)
	}
	if len(p.responses) == 0 {
		return protocol.InboundMessage{}, io.EOF
	}
	msg := p.responses[0]
	p.responses = p.responses[1:]
	return msg, nil
}

func (p *scriptedPlayer) commands() []protocol.Cmd {
	p.mu.Lock()
	defer p.mu.Unlock()
	cmds := []protocol.Cmd{}
	for _, m := range p.sent {
		cmds = append(cmds, m.Command)
	}
	return cmds
}

func discardMsg(t *testing.T, code string) protocol.InboundMessage {
	t.Helper()
	return protocol.InboundMessage{Command: protocol.Discard, Card: mustCard(t, code)}
}

func mustCard(t *testing.T, code string) deck.Card {
	t.Helper()
	c, err := deck.ParseCard(code)
	require.NoError(t, err)
	return c
}

// shortGame is an easy game the player wins by discarding the Nine of Spades
func shortGame(t *testing.T) game.State {
	t.Helper()
	preset := deck.Deck{}
	for _, code := range []string{"2H", "3H", "9S", "2C", "3D", "4S", "4H", "KC", "9D", "10D"} {
		preset = append(preset, mustCard(t, code))
	}
	s, err := game.NewGame(game.Opts{Difficulty: game.Easy, Deck: preset})
	require.NoError(t, err)
	return s
}
