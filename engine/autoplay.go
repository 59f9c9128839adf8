package engine

import (
	"github.com/minaorangina/suits/game"
	"github.com/minaorangina/suits/protocol"
)

// Autoplay plays a whole game with strategy choosing the player's discards,
// narrating every step to spectator
func Autoplay(gameID string, s game.State, strategy game.Strategy, spectator Player) (game.State, error) {
	var sendErr error
	send := func(msg protocol.OutboundMessage) {
		if sendErr == nil {
			sendErr = spectator.Send(msg)
		}
	}

	send(buildStartMessage(gameID, s))

	final, err := game.PlayOut(s, strategy, func(s game.State, opponent *game.Decision) {
		switch {
		case opponent != nil:
			send(buildOpponentMovedMessage(gameID, s, *opponent))

		case s.Phase() == game.AwaitingPlayerDiscard:
			msg := buildTurnMessage(gameID, s)
			msg.ShouldRespond = false
			send(msg)
		}
	})
	if err != nil {
		return final, err
	}

	send(buildGameOverMessage(gameID, final))
	return final, sendErr
}
