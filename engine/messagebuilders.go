package engine

import (
	"errors"
	"fmt"

	"github.com/minaorangina/suits/deck"
	"github.com/minaorangina/suits/game"
	"github.com/minaorangina/suits/protocol"
)

func buildBaseMessage(gameID string, cmd protocol.Cmd, s game.State) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		GameID:              gameID,
		Command:             cmd,
		Difficulty:          s.Difficulty().String(),
		Hand:                s.PlayerHand(),
		OpponentHand:        s.OpponentHand(),
		Pile:                s.Discards(),
		DeckCount:           s.DeckSize(),
		OpponentProbability: s.OpponentProbability(),
	}
}

func buildStartMessage(gameID string, s game.State) protocol.OutboundMessage {
	msg := buildBaseMessage(gameID, protocol.Start, s)
	msg.Message = fmt.Sprintf("Collect %d cards of one suit to win.", s.Difficulty().Target())
	return msg
}

func buildTurnMessage(gameID string, s game.State) protocol.OutboundMessage {
	msg := buildBaseMessage(gameID, protocol.Turn, s)
	if c, ok := s.PlayerDrawn(); ok {
		msg.NewCard = cardRef(c)
	}
	if c, ok := s.OpponentDrawn(); ok {
		msg.OpponentNewCard = cardRef(c)
	}
	msg.ShouldRespond = s.Phase() == game.AwaitingPlayerDiscard
	msg.Message = "Choose a card to discard (you may discard the new card)."
	return msg
}

func buildOpponentMovedMessage(gameID string, s game.State, decision game.Decision) protocol.OutboundMessage {
	msg := buildBaseMessage(gameID, protocol.OpponentMoved, s)
	msg.OpponentDiscard = cardRef(decision.Discard)
	msg.OpponentProbability = decision.Probability
	msg.Message = fmt.Sprintf("Opponent discarded the %s.", decision.Discard)
	return msg
}

func buildGameOverMessage(gameID string, s game.State) protocol.OutboundMessage {
	msg := buildBaseMessage(gameID, protocol.GameOver, s)
	msg.PlayerScore, msg.OpponentScore = s.FinalScores()
	msg.Outcome = s.Outcome().String()
	msg.Reason = s.Reason().String()
	msg.Message = gameOverText(s, msg.PlayerScore, msg.OpponentScore)
	return msg
}

func buildErrorMessage(gameID string, s game.State, err error) protocol.OutboundMessage {
	msg := buildTurnMessage(gameID, s)
	msg.Command = protocol.Error
	msg.Error = err.Error()
	msg.Message = "Choose a card to discard."
	if errors.Is(err, game.ErrInvalidDiscard) {
		msg.Message = "That card can't be discarded. Try again."
	}
	return msg
}

func gameOverText(s game.State, player, opponent int) string {
	if s.Reason() == game.SuitTarget {
		if s.Outcome() == game.PlayerWon {
			return "You win!"
		}
		return "The computer wins!"
	}

	switch s.Outcome() {
	case game.PlayerWon:
		return fmt.Sprintf("Game over! You win on points (%d vs %d).", player, opponent)
	case game.OpponentWon:
		return fmt.Sprintf("Game over! The computer wins on points (%d vs %d).", opponent, player)
	}
	return fmt.Sprintf("Game over! It's a tie (%d each).", player)
}

func cardRef(c deck.Card) *deck.Card {
	return &c
}
