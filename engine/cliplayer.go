package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/minaorangina/suits/deck"
	"github.com/minaorangina/suits/protocol"
)

const (
	discardPromptText = "Discard which card? [1-%d or a code such as QS] "
	retryDiscardText  = "Invalid choice. Enter a number from the list or a card code.\n"
	maxRetriesText    = "\nMax retries exceeded."
	pileShown         = 8
	maxRetries        = 5
)

var ErrMaxRetries = errors.New("max retries exceeded")

var (
	redSuit   = color.New(color.FgRed, color.Bold)
	blackSuit = color.New(color.Bold)
	newCard   = color.New(color.FgGreen)
	heading   = color.New(color.FgBlue, color.Bold)
)

// CLIPlayer plays through a terminal
type CLIPlayer struct {
	in         *bufio.Reader
	out        io.Writer
	candidates []deck.Card
}

// NewCLIPlayer constructs a CLIPlayer reading from in and writing to out
func NewCLIPlayer(in io.Reader, out io.Writer) *CLIPlayer {
	return &CLIPlayer{in: bufio.NewReader(in), out: out}
}

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func (p *CLIPlayer) Send(msg protocol.OutboundMessage) error {
	switch msg.Command {
	case protocol.Start:
		SendText(p.out, "%s\n\n", heading.Sprint(msg.Message))

	case protocol.Turn, protocol.Error:
		if msg.Error != "" {
			SendText(p.out, "%s\n", msg.Message)
		}
		fmt.Fprint(p.out, buildTurnDisplayText(msg))
		p.candidates = nil
		if msg.ShouldRespond && msg.NewCard != nil {
			p.candidates = append(append([]deck.Card{}, msg.Hand...), *msg.NewCard)
		}

	case protocol.OpponentMoved:
		SendText(p.out, "%s (win chance %.0f%%)\n\n", msg.Message, msg.OpponentProbability*100)

	case protocol.GameOver:
		SendText(p.out, "\n%s\n", heading.Sprint(msg.Message))
		SendText(p.out, "Your hand:     %s\n", cardsText(msg.Hand))
		SendText(p.out, "Computer hand: %s\n", cardsText(msg.OpponentHand))
	}

	return nil
}

// Receive prompts for a discard and parses either a list number or a card code
func (p *CLIPlayer) Receive() (protocol.InboundMessage, error) {
	if len(p.candidates) == 0 {
		return protocol.InboundMessage{}, errors.New("no discard has been asked for")
	}

	for i := 0; i < maxRetries; i++ {
		SendText(p.out, discardPromptText, len(p.candidates))

		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return protocol.InboundMessage{}, err
		}

		if c, ok := p.parseChoice(line); ok {
			return protocol.InboundMessage{Command: protocol.Discard, Card: c}, nil
		}
		SendText(p.out, retryDiscardText)
	}

	SendText(p.out, maxRetriesText)
	return protocol.InboundMessage{}, ErrMaxRetries
}

func (p *CLIPlayer) parseChoice(line string) (deck.Card, bool) {
	line = strings.TrimSpace(line)
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(p.candidates) {
			return deck.Card{}, false
		}
		return p.candidates[n-1], true
	}

	c, err := deck.ParseCard(line)
	return c, err == nil
}

func buildTurnDisplayText(msg protocol.OutboundMessage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s (%d cards left in the deck)\n", heading.Sprint("Your turn"), msg.DeckCount)
	fmt.Fprintf(&b, "Computer hand: %s", cardsText(msg.OpponentHand))
	if msg.OpponentNewCard != nil {
		fmt.Fprintf(&b, "  + %s", newCard.Sprint(cardText(*msg.OpponentNewCard)))
	}
	fmt.Fprintf(&b, "\n")

	pile := msg.Pile
	if len(pile) > pileShown {
		pile = pile[len(pile)-pileShown:]
	}
	fmt.Fprintf(&b, "Discard pile:  %s\n\n", cardsText(pile))

	for i, c := range msg.Hand {
		fmt.Fprintf(&b, "%d - %s\n", i+1, cardText(c))
	}
	if msg.NewCard != nil {
		fmt.Fprintf(&b, "%d - %s (new)\n", len(msg.Hand)+1, newCard.Sprint(cardText(*msg.NewCard)))
	}

	return b.String()
}

func cardsText(cards []deck.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	texts := make([]string, 0, len(cards))
	for _, c := range cards {
		texts = append(texts, cardText(c))
	}
	return strings.Join(texts, " ")
}

func cardText(c deck.Card) string {
	text := c.Rank.Code() + c.Suit.Symbol()
	if c.Suit.Red() {
		return redSuit.Sprint(text)
	}
	return blackSuit.Sprint(text)
}
