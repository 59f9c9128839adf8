package engine

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/suits/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Close frame payloads are limited to 125 bytes, two of them the code.
	maxCloseReason = 123
)

// WSPlayer plays over a websocket connection. A WSPlayer can join a game
// before its connection is ready; it must be connected before the game plays.
type WSPlayer struct {
	conn *websocket.Conn
}

func NewWSPlayer() *WSPlayer {
	return &WSPlayer{}
}

// Connect hands the player its upgraded connection
func (p *WSPlayer) Connect(conn *websocket.Conn) {
	conn.SetReadLimit(maxMessageSize)
	p.conn = conn
}

func (p *WSPlayer) Send(msg protocol.OutboundMessage) error {
	p.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return p.conn.WriteJSON(msg)
}

// Receive blocks until the next message arrives; there is no read deadline
// because the game waits on the player indefinitely. A message that is not a
// valid InboundMessage gives ErrMalformedMessage and the connection stays open.
func (p *WSPlayer) Receive() (protocol.InboundMessage, error) {
	var msg protocol.InboundMessage

	_, data, err := p.conn.ReadMessage()
	if err != nil {
		return msg, err
	}

	if err := json.Unmarshal(data, &msg); err != nil {
		return protocol.InboundMessage{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return msg, nil
}

// Close says goodbye with reason and closes the connection
func (p *WSPlayer) Close(code int, reason string) error {
	if len(reason) > maxCloseReason {
		reason = reason[:maxCloseReason]
	}

	p.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeWait),
	)
	return p.conn.Close()
}
