package hands

import (
	"sort"

	"github.com/lazharichir/pokerreview/domain/cards"
)

// finder inspects an ascending, stable-sorted set and returns the five cards
// of its combination when present.
type finder func(sorted cards.Stack) (cards.Stack, bool)

type detector struct {
	combination Combination
	find        finder
}

// battery holds the detectors from strongest to weakest; the first match wins
var battery = newBattery([]detector{
	{RoyalFlush, findRoyalFlush},
	{StraightFlush, findStraightFlush},
	{FourOfAKind, findFourOfAKind},
	{FullHouse, findFullHouse},
	{Flush, findFlush},
	{Straight, findStraight},
	{ThreeOfAKind, findThreeOfAKind},
	{TwoPair, findTwoPair},
	{Pair, findPair},
	{HighCard, findHighCard},
})

func newBattery(detectors []detector) []detector {
	sort.SliceStable(detectors, func(i, j int) bool {
		return detectors[i].combination.Strength() > detectors[j].combination.Strength()
	})
	return detectors
}

// rankGroup is every card of one rank, in sorted order
type rankGroup struct {
	rank  cards.Rank
	cards cards.Stack
}

// groupByRank returns the groups from highest rank to lowest
func groupByRank(sorted cards.Stack) []rankGroup {
	var groups []rankGroup
	for i := len(sorted) - 1; i >= 0; i-- {
		c := sorted[i]
		if n := len(groups); n > 0 && groups[n-1].rank == c.Rank {
			// scanning downward, so prepend to keep sorted order
			groups[n-1].cards = append(cards.Stack{c}, groups[n-1].cards...)
			continue
		}
		groups = append(groups, rankGroup{rank: c.Rank, cards: cards.Stack{c}})
	}
	return groups
}

// withKickers fills selected up to five cards with the highest unused cards
func withKickers(sorted, selected cards.Stack) cards.Stack {
	out := selected.Clone()
	for i := len(sorted) - 1; i >= 0 && len(out) < comboSize; i-- {
		if !out.Contains(sorted[i]) {
			out = append(out, sorted[i])
		}
	}
	return out
}

// flushSuit returns the first suit, in precedence order, with 5 or more cards
func flushSuit(set cards.Stack) (cards.Suit, bool) {
	counts := make(map[cards.Suit]int, len(cards.Suits))
	for _, c := range set {
		counts[c.Suit]++
	}
	for _, s := range cards.Suits {
		if counts[s] >= comboSize {
			return s, true
		}
	}
	return "", false
}

func suited(sorted cards.Stack, suit cards.Suit) cards.Stack {
	var out cards.Stack
	for _, c := range sorted {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// findRoyalFlush matches when the flush suit holds T, J, Q, K and A, however
// many other cards of that suit are present.
func findRoyalFlush(sorted cards.Stack) (cards.Stack, bool) {
	run, ok := findStraightFlush(sorted)
	if !ok || run[0].Rank != cards.Ace {
		return nil, false
	}
	return run, true
}

func findStraightFlush(sorted cards.Stack) (cards.Stack, bool) {
	suit, ok := flushSuit(sorted)
	if !ok {
		return nil, false
	}
	return findStraight(suited(sorted, suit))
}

func findFourOfAKind(sorted cards.Stack) (cards.Stack, bool) {
	for _, g := range groupByRank(sorted) {
		if len(g.cards) == 4 {
			return withKickers(sorted, g.cards), true
		}
	}
	return nil, false
}

// findFullHouse takes the highest trips and the highest other rank holding at
// least two cards. A second trips gives its first two cards as the pair.
func findFullHouse(sorted cards.Stack) (cards.Stack, bool) {
	groups := groupByRank(sorted)

	trips := -1
	for i, g := range groups {
		if len(g.cards) >= 3 {
			trips = i
			break
		}
	}
	if trips < 0 {
		return nil, false
	}

	for i, g := range groups {
		if i == trips || len(g.cards) < 2 {
			continue
		}
		out := append(groups[trips].cards[:3].Clone(), g.cards[:2]...)
		return out, true
	}
	return nil, false
}

func findFlush(sorted cards.Stack) (cards.Stack, bool) {
	suit, ok := flushSuit(sorted)
	if !ok {
		return nil, false
	}
	var out cards.Stack
	for i := len(sorted) - 1; i >= 0 && len(out) < comboSize; i-- {
		if sorted[i].Suit == suit {
			out = append(out, sorted[i])
		}
	}
	return out, true
}

// findStraight scans from the top for five consecutive ranks. For a rank held
// more than once, the card met first (the last in sorted order) is used. The
// result runs from the high card down; in the wheel the Ace comes last.
func findStraight(sorted cards.Stack) (cards.Stack, bool) {
	n := len(sorted)
	if n == 0 {
		return nil, false
	}

	run := cards.Stack{sorted[n-1]}
	for i := n - 2; i >= 0 && len(run) < comboSize; i-- {
		switch {
		case sorted[i].Rank == sorted[i+1].Rank-1:
			run = append(run, sorted[i])
		case sorted[i].Rank != sorted[i+1].Rank:
			run = cards.Stack{sorted[i]}
		}
	}

	if len(run) == comboSize {
		return run, true
	}

	// wheel: 5-4-3-2 with the Ace playing low
	if len(run) == comboSize-1 && run[len(run)-1].Rank == cards.Two && sorted[n-1].Rank == cards.Ace {
		return append(run, sorted[n-1]), true
	}

	return nil, false
}

func findThreeOfAKind(sorted cards.Stack) (cards.Stack, bool) {
	for _, g := range groupByRank(sorted) {
		if len(g.cards) >= 3 {
			return withKickers(sorted, g.cards[:3]), true
		}
	}
	return nil, false
}

func findTwoPair(sorted cards.Stack) (cards.Stack, bool) {
	var pairs cards.Stack
	for _, g := range groupByRank(sorted) {
		if len(g.cards) >= 2 {
			pairs = append(pairs, g.cards[:2]...)
			if len(pairs) == 4 {
				return withKickers(sorted, pairs), true
			}
		}
	}
	return nil, false
}

func findPair(sorted cards.Stack) (cards.Stack, bool) {
	for _, g := range groupByRank(sorted) {
		if len(g.cards) >= 2 {
			return withKickers(sorted, g.cards[:2]), true
		}
	}
	return nil, false
}

func findHighCard(sorted cards.Stack) (cards.Stack, bool) {
	if len(sorted) < comboSize {
		return nil, false
	}
	return withKickers(sorted, nil), true
}
