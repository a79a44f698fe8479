package cards

import "errors"

var (
	// ErrInvalidCardNotation is returned for malformed [Rank][Suit] text
	ErrInvalidCardNotation = errors.New("invalid card notation")
	// ErrInvalidHand is returned when hole cards are not two distinct cards
	ErrInvalidHand = errors.New("invalid hand")
	// ErrInvalidBoard is returned when a board is not 3 to 5 distinct cards
	ErrInvalidBoard = errors.New("invalid board")
)
