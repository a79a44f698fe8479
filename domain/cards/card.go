package cards

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Suits lists every suit in flush precedence order
var Suits = []Suit{Spades, Clubs, Hearts, Diamonds}

// Letter returns the ASCII letter used in hand-history notation
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	}
	return "?"
}

// Rank represents a card rank, valued 2 through 14 (Ace high)
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from Two to Ace
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the single-character rank, ten being T
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card, rejecting unknown ranks and suits
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d", ErrInvalidCardNotation, int(rank))
	}
	switch suit {
	case Spades, Hearts, Diamonds, Clubs:
	default:
		return Card{}, fmt.Errorf("%w: suit %q", ErrInvalidCardNotation, string(suit))
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// CardFromString creates a card from its two-character notation
// e.g., "Ts" or "TS" or "T♠" -> Card{Rank: Ten, Suit: Spades}
func CardFromString(s string) (Card, error) {
	if utf8.RuneCountInString(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be [Rank][Suit], ten being T", ErrInvalidCardNotation, s)
	}

	rankRune, size := utf8.DecodeRuneInString(s)
	suitPart := s[size:]

	var rank Rank
	switch strings.ToUpper(string(rankRune)) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T":
		rank = Ten
	default:
		if rankRune < '2' || rankRune > '9' {
			return Card{}, fmt.Errorf("%w: invalid rank in %q", ErrInvalidCardNotation, s)
		}
		rank = Rank(rankRune - '0')
	}

	var suit Suit
	switch suitPart {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: invalid suit in %q", ErrInvalidCardNotation, s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustCard is CardFromString for literals known to be valid; it panics otherwise
func MustCard(s string) Card {
	c, err := CardFromString(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Notation returns the ASCII notation, e.g. "Ts"
func (c Card) Notation() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Notation())
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := CardFromString(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
