package deck

import "fmt"

// FaceValues selects how Jack, Queen and King are scored.
// Number cards always score their face value and Ace always scores 1.
type FaceValues int

const (
	// FlatFaces scores every face card as 10
	FlatFaces FaceValues = iota
	// RankedFaces scores Jack 11, Queen 12 and King 13
	RankedFaces
)

var faceValuesNames = map[FaceValues]string{
	FlatFaces:   "flat",
	RankedFaces: "ranked",
}

func (fv FaceValues) String() string {
	return faceValuesNames[fv]
}

// ParseFaceValues parses "flat" or "ranked". The empty string means FlatFaces.
func ParseFaceValues(s string) (FaceValues, error) {
	switch s {
	case "", "flat":
		return FlatFaces, nil
	case "ranked":
		return RankedFaces, nil
	}
	return FlatFaces, fmt.Errorf("unknown face values %q", s)
}

// Value returns the numeric value of a card under this mapping
func (fv FaceValues) Value(c Card) int {
	switch c.Rank {
	case Ace:
		return 1
	case Jack, Queen, King:
		if fv == RankedFaces {
			return int(c.Rank-Jack) + 11
		}
		return 10
	}
	return int(c.Rank-Two) + 2
}

// Total sums the values of the cards
func (fv FaceValues) Total(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += fv.Value(c)
	}
	return total
}
