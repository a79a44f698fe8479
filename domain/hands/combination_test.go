package hands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombination_Strength(t *testing.T) {
	all := Combinations()
	for i, c := range all {
		assert.Equal(t, i+1, c.Strength(), c.String())
		assert.True(t, c.Valid())
	}

	assert.True(t, RoyalFlush.Beats(StraightFlush))
	assert.True(t, Flush.Beats(Straight))
	assert.False(t, Pair.Beats(Pair))
	assert.Equal(t, 0, Combination("FIVE_OF_A_KIND").Strength())
	assert.False(t, Combination("FIVE_OF_A_KIND").Valid())
}

func TestCombination_String(t *testing.T) {
	assert.Equal(t, "Three of a Kind", ThreeOfAKind.String())
	assert.Equal(t, "Combination(BOGUS)", Combination("BOGUS").String())
}

func TestResult_JSON(t *testing.T) {
	r, err := RecognizeStack(stack(t, "Kc Kd Kh 2c 2d 2h 3s"))
	require.NoError(t, err)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"combination":"FULL_HOUSE","strength":7,"cards":["Kc","Kd","Kh","2c","2d"]}`, string(data))

	var back Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, r.Equal(back))

	assert.Error(t, json.Unmarshal([]byte(`{"combination":"NOPE","cards":[]}`), &back))
}

func TestResult_CardsAreCopies(t *testing.T) {
	r := NewResult(Pair, stack(t, "Ac Ad Kc Qd Js"))
	got := r.Cards()
	got[0] = got[1]

	assert.ElementsMatch(t, stack(t, "Ac Ad Kc Qd Js"), r.Cards())
	assert.Equal(t, "Pair: A♣ A♦ K♣ Q♦ J♠", r.String())
}
