package cards

import "strings"

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack from the given cards
func NewStack(cards ...Card) Stack {
	return cards
}

// StackFromStrings parses every notation into a stack
func StackFromStrings(notations ...string) (Stack, error) {
	stack := make(Stack, 0, len(notations))
	for _, n := range notations {
		c, err := CardFromString(n)
		if err != nil {
			return nil, err
		}
		stack = append(stack, c)
	}
	return stack, nil
}

// Contains reports whether the stack holds the card
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c.Equals(card) {
			return true
		}
	}
	return false
}

// HasDuplicates reports whether any card appears more than once
func (s Stack) HasDuplicates() bool {
	seen := make(map[Card]struct{}, len(s))
	for _, c := range s {
		if _, ok := seen[c]; ok {
			return true
		}
		seen[c] = struct{}{}
	}
	return false
}

// Clone returns a copy that does not share the backing array
func (s Stack) Clone() Stack {
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// Notations returns the ASCII notation of every card
func (s Stack) Notations() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Notation()
	}
	return out
}

func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
