package hands

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/lazharichir/pokerreview/domain/cards"
	"github.com/paulhankin/poker"
	"github.com/sanity-io/litter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSet(r *rand.Rand, size int) cards.Stack {
	dealt, _ := cards.DealCards(cards.ShuffleCards(r, cards.NewDeck52()), size)
	return dealt
}

func ranksOf(s cards.Stack) []int {
	out := make([]int, len(s))
	for i, c := range s {
		out[i] = int(c.Rank)
	}
	sort.Ints(out)
	return out
}

func TestRecognizeStack_SelectsFiveInputCards(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for size := 5; size <= 7; size++ {
		for i := 0; i < 2000; i++ {
			set := randomSet(r, size)
			got, err := RecognizeStack(set)
			require.NoError(t, err)

			selected := got.Cards()
			require.Len(t, selected, 5, litter.Sdump(set.Notations()))
			assert.False(t, selected.HasDuplicates())
			for _, c := range selected {
				assert.True(t, set.Contains(c), "%s not in %s", c, set)
			}
		}
	}
}

func TestRecognizeStack_OrderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for size := 5; size <= 7; size++ {
		for i := 0; i < 2000; i++ {
			set := randomSet(r, size)
			first, err := RecognizeStack(set)
			require.NoError(t, err)

			again, err := RecognizeStack(set)
			require.NoError(t, err)
			require.True(t, first.Equal(again), "same input must give the same result")

			shuffled, err := RecognizeStack(cards.ShuffleCards(r, set))
			require.NoError(t, err)
			assert.Equal(t, first.Combination(), shuffled.Combination(), set.String())
			assert.Equal(t, ranksOf(first.Cards()), ranksOf(shuffled.Cards()), set.String())
		}
	}
}

// TestRecognizeStack_SelectedCardsRecognizedAlone checks that the five
// selected cards on their own still make the same combination.
func TestRecognizeStack_SelectedCardsRecognizedAlone(t *testing.T) {
	r := rand.New(rand.NewSource(99))

	for i := 0; i < 2000; i++ {
		set := randomSet(r, 7)
		got, err := RecognizeStack(set)
		require.NoError(t, err)

		alone, err := RecognizeStack(got.Cards())
		require.NoError(t, err)
		assert.Equal(t, got.Combination(), alone.Combination(), set.String())
	}
}

func toOracle(t *testing.T, set cards.Stack) []poker.Card {
	t.Helper()
	suits := map[cards.Suit]int{cards.Clubs: 0, cards.Diamonds: 1, cards.Hearts: 2, cards.Spades: 3}

	out := make([]poker.Card, len(set))
	for i, c := range set {
		rank := int(c.Rank)
		if c.Rank == cards.Ace {
			rank = 1
		}
		pc, err := poker.MakeCard(poker.Suit(suits[c.Suit]), poker.Rank(rank))
		require.NoError(t, err)
		out[i] = pc
	}
	return out
}

// bestEval5 scores the best five-card subset of hand
func bestEval5(hand []poker.Card) int16 {
	best := int16(-1)
	var five [5]poker.Card
	var pick func(start, n int)
	pick = func(start, n int) {
		if n == 5 {
			if score := poker.Eval5(&five); score > best {
				best = score
			}
			return
		}
		for i := start; i < len(hand); i++ {
			five[n] = hand[i]
			pick(i+1, n+1)
		}
	}
	pick(0, 0)
	return best
}

// TestRecognizeStack_SelectsBestFive scores the selected cards with an
// independent evaluator: they must be worth as much as the best five of the set.
func TestRecognizeStack_SelectsBestFive(t *testing.T) {
	r := rand.New(rand.NewSource(2024))

	for size := 5; size <= 7; size++ {
		for i := 0; i < 3000; i++ {
			set := randomSet(r, size)
			got, err := RecognizeStack(set)
			require.NoError(t, err)

			var selected [5]poker.Card
			copy(selected[:], toOracle(t, got.Cards()))
			all := toOracle(t, set)

			want := bestEval5(all)
			if size == 7 {
				var seven [7]poker.Card
				copy(seven[:], all)
				require.Equal(t, poker.Eval7(&seven), want)
				want = poker.Eval7(&seven)
			}
			assert.Equal(t, want, poker.Eval5(&selected), "%s: %s %s", set, got.Combination(), got.Cards())
		}
	}
}

func TestRecognizeStack_CombinationOrderMatchesEval7(t *testing.T) {
	r := rand.New(rand.NewSource(77))

	type scored struct {
		set   cards.Stack
		combo Combination
		score int16
	}

	var all []scored
	for i := 0; i < 3000; i++ {
		set := randomSet(r, 7)
		got, err := RecognizeStack(set)
		require.NoError(t, err)

		var seven [7]poker.Card
		copy(seven[:], toOracle(t, set))
		all = append(all, scored{set: set, combo: got.Combination(), score: poker.Eval7(&seven)})
	}

	for i := 1; i < len(all); i++ {
		a, b := all[i-1], all[i]
		switch {
		case a.combo.Beats(b.combo):
			assert.Greater(t, a.score, b.score, "%s (%s) vs %s (%s)", a.set, a.combo, b.set, b.combo)
		case b.combo.Beats(a.combo):
			assert.Greater(t, b.score, a.score, "%s (%s) vs %s (%s)", b.set, b.combo, a.set, a.combo)
		}
	}
}
