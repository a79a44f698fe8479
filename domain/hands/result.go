package hands

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lazharichir/pokerreview/domain/cards"
)

// Result pairs a combination with the exact five cards that make it
type Result struct {
	combination Combination
	cards       cards.Stack
}

// NewResult does not check that the cards actually form the combination
func NewResult(combination Combination, cs cards.Stack) Result {
	return Result{combination: combination, cards: cs.Clone()}
}

func (r Result) Combination() Combination {
	return r.combination
}

// Cards returns a copy of the selected cards. Their order carries no meaning.
func (r Result) Cards() cards.Stack {
	return r.cards.Clone()
}

// SortedCards returns the selected cards from highest to lowest rank
func (r Result) SortedCards() cards.Stack {
	sorted := r.cards.Clone()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})
	return sorted
}

// Equal compares the combination and the cards as a set
func (r Result) Equal(other Result) bool {
	if r.combination != other.combination || len(r.cards) != len(other.cards) {
		return false
	}
	for _, c := range r.cards {
		if !other.cards.Contains(c) {
			return false
		}
	}
	return true
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %s", r.combination, r.SortedCards())
}

type resultJSON struct {
	Combination Combination `json:"combination"`
	Strength    int         `json:"strength"`
	Cards       cards.Stack `json:"cards"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Combination: r.combination,
		Strength:    r.combination.Strength(),
		Cards:       r.SortedCards(),
	})
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var raw resultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Combination.Valid() {
		return fmt.Errorf("unknown combination %q", string(raw.Combination))
	}
	*r = NewResult(raw.Combination, raw.Cards)
	return nil
}
