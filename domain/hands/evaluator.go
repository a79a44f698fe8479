package hands

import (
	"fmt"
	"sort"

	"github.com/lazharichir/pokerreview/domain/cards"
)

const (
	comboSize       = 5
	maxExtendedSize = 7
)

// IsExtendedSetValid reports whether no card appears twice in the set
func IsExtendedSetValid(set cards.Stack) bool {
	return !set.HasDuplicates()
}

// ValidateExtendedSet returns ErrDuplicateCard if any card appears twice
func ValidateExtendedSet(set cards.Stack) error {
	if !IsExtendedSetValid(set) {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, set)
	}
	return nil
}

// SortByRank returns a copy sorted ascending by rank. Cards of equal rank keep
// their relative input order.
func SortByRank(set cards.Stack) cards.Stack {
	sorted := set.Clone()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank < sorted[j].Rank
	})
	return sorted
}

// ExtendedSet joins the board cards and, when present, the hole cards
func ExtendedSet(board cards.Board, hand *cards.Hand) cards.Stack {
	set := board.Cards()
	if hand != nil {
		set = append(set, hand.Cards()...)
	}
	return set
}

// Recognize finds the best combination made from the board and the optional
// hand, and the five cards that make it.
func Recognize(board cards.Board, hand *cards.Hand) (Result, error) {
	return RecognizeStack(ExtendedSet(board, hand))
}

// RecognizeStack finds the best combination within 5 to 7 distinct cards
func RecognizeStack(set cards.Stack) (Result, error) {
	if err := ValidateExtendedSet(set); err != nil {
		return Result{}, err
	}
	if len(set) < comboSize {
		return Result{}, fmt.Errorf("%w: a combination needs %d cards, got %d", ErrInsufficientCards, comboSize, len(set))
	}
	if len(set) > maxExtendedSize {
		return Result{}, fmt.Errorf("%w: at most %d cards can be evaluated, got %d", ErrTooManyCards, maxExtendedSize, len(set))
	}

	sorted := SortByRank(set)
	for _, d := range battery {
		if selected, ok := d.find(sorted); ok {
			return NewResult(d.combination, selected), nil
		}
	}

	// findHighCard always matches, so this is unreachable with 5+ cards
	return Result{}, fmt.Errorf("no combination found for %s", set)
}
