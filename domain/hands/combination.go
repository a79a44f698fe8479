package hands

import "fmt"

// Combination is a poker hand category
type Combination string

const (
	HighCard      Combination = "HIGH_CARD"
	Pair          Combination = "PAIR"
	TwoPair       Combination = "TWO_PAIR"
	ThreeOfAKind  Combination = "THREE_OF_A_KIND"
	Straight      Combination = "STRAIGHT"
	Flush         Combination = "FLUSH"
	FullHouse     Combination = "FULL_HOUSE"
	FourOfAKind   Combination = "FOUR_OF_A_KIND"
	StraightFlush Combination = "STRAIGHT_FLUSH"
	RoyalFlush    Combination = "ROYAL_FLUSH"
)

// strengths ranks the categories, weakest first. The detector battery is
// ordered by these values, not by declaration order.
var strengths = map[Combination]int{
	HighCard:      1,
	Pair:          2,
	TwoPair:       3,
	ThreeOfAKind:  4,
	Straight:      5,
	Flush:         6,
	FullHouse:     7,
	FourOfAKind:   8,
	StraightFlush: 9,
	RoyalFlush:    10,
}

var displayNames = map[Combination]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

// Combinations lists every category, weakest first
func Combinations() []Combination {
	return []Combination{
		HighCard, Pair, TwoPair, ThreeOfAKind, Straight,
		Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
	}
}

// Strength returns the category's position in the ranking, 1 for High Card
// up to 10 for Royal Flush, or 0 for an unknown value.
func (c Combination) Strength() int {
	return strengths[c]
}

// Valid reports whether c is one of the ten categories
func (c Combination) Valid() bool {
	_, ok := strengths[c]
	return ok
}

// Beats reports whether c is a strictly stronger category than other
func (c Combination) Beats(other Combination) bool {
	return c.Strength() > other.Strength()
}

func (c Combination) String() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Combination(%s)", string(c))
}
