package hands

import "errors"

var (
	// ErrDuplicateCard is returned when board and hand together repeat a card
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrInsufficientCards is returned when fewer than 5 cards are available
	ErrInsufficientCards = errors.New("insufficient cards")
	// ErrTooManyCards is returned when more than 7 cards are given
	ErrTooManyCards = errors.New("too many cards")
)
