package cards

import "fmt"

// Hand is a player's two hole cards
type Hand struct {
	first  Card
	second Card
}

// NewHand creates a hand from two distinct cards
func NewHand(first, second Card) (Hand, error) {
	if first.Equals(second) {
		return Hand{}, fmt.Errorf("%w: cards must be unique, got %s twice", ErrInvalidHand, first)
	}
	return Hand{first: first, second: second}, nil
}

// NewHandFromStrings parses two notations into a hand
func NewHandFromStrings(first, second string) (Hand, error) {
	c1, err := CardFromString(first)
	if err != nil {
		return Hand{}, err
	}
	c2, err := CardFromString(second)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(c1, c2)
}

// Cards returns the hole cards in the order they were given
func (h Hand) Cards() Stack {
	return Stack{h.first, h.second}
}

// Equal ignores the order of the hole cards
func (h Hand) Equal(other Hand) bool {
	return (h.first.Equals(other.first) && h.second.Equals(other.second)) ||
		(h.first.Equals(other.second) && h.second.Equals(other.first))
}

func (h Hand) String() string {
	return fmt.Sprintf("[%s %s]", h.first, h.second)
}
