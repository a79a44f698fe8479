package cards

import "fmt"

const (
	MinBoardCards = 3
	MaxBoardCards = 5
)

// Board holds the community cards: flop, then turn and river
type Board struct {
	cards Stack
}

// NewBoard creates a board from 3 to 5 distinct cards
func NewBoard(cards ...Card) (Board, error) {
	if len(cards) < MinBoardCards || len(cards) > MaxBoardCards {
		return Board{}, fmt.Errorf("%w: board must contain from %d to %d cards, got %d",
			ErrInvalidBoard, MinBoardCards, MaxBoardCards, len(cards))
	}
	stack := Stack(cards).Clone()
	if stack.HasDuplicates() {
		return Board{}, fmt.Errorf("%w: board must only contain unique cards: %s", ErrInvalidBoard, stack)
	}
	return Board{cards: stack}, nil
}

// NewBoardFromStrings parses notations into a board
func NewBoardFromStrings(notations ...string) (Board, error) {
	stack, err := StackFromStrings(notations...)
	if err != nil {
		return Board{}, err
	}
	return NewBoard(stack...)
}

// Cards returns a copy of the board cards in dealing order
func (b Board) Cards() Stack {
	return b.cards.Clone()
}

func (b Board) Size() int {
	return len(b.cards)
}

// Equal treats the flop as unordered and the turn and river as ordered
func (b Board) Equal(other Board) bool {
	if b.Size() != other.Size() || b.Size() < MinBoardCards {
		return false
	}
	for _, c := range b.cards[:MinBoardCards] {
		if !other.cards[:MinBoardCards].Contains(c) {
			return false
		}
	}
	for i := MinBoardCards; i < b.Size(); i++ {
		if !b.cards[i].Equals(other.cards[i]) {
			return false
		}
	}
	return true
}

func (b Board) String() string {
	return "(" + b.cards.String() + ")"
}
