package card

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/special-hands/internal/apperrors"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		suit     Suit
		rank     Rank
		hasError bool
	}{
		{name: "Ace of spades", suit: Spade, rank: RankA},
		{name: "King of diamonds", suit: Diamond, rank: RankK},
		{name: "Low joker", suit: Joker, rank: RankJokerLow},
		{name: "High joker", suit: Joker, rank: RankJokerHigh},
		{name: "Joker with numeric rank", suit: Joker, rank: Rank7, hasError: true},
		{name: "Heart with joker rank", suit: Heart, rank: RankJokerHigh, hasError: true},
		{name: "Unknown suit", suit: Suit(9), rank: Rank2, hasError: true},
		{name: "Zero rank", suit: Club, rank: Rank(0), hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := New(tt.suit, tt.rank)
			if tt.hasError {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidCombination)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.suit, c.Suit())
			assert.Equal(t, tt.rank, c.Rank())
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustNew(Joker, RankA) })
	assert.NotPanics(t, func() { MustNew(Spade, RankA) })
}

func TestCardValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, MustNew(Spade, RankA).Value())
	assert.Equal(t, 10, MustNew(Heart, Rank10).Value())
	assert.Equal(t, 11, MustNew(Club, RankJ).Value())
	assert.Equal(t, 13, MustNew(Diamond, RankK).Value())
	assert.Equal(t, 0, JokerLow().Value())
	assert.Equal(t, 0, JokerHigh().Value())
}

func TestCardColorAndString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Red, MustNew(Heart, Rank2).Color())
	assert.Equal(t, Red, MustNew(Diamond, Rank2).Color())
	assert.Equal(t, Black, MustNew(Club, Rank2).Color())
	assert.Equal(t, Black, JokerLow().Color())
	assert.Equal(t, Red, JokerHigh().Color())

	assert.Equal(t, "♠A", MustNew(Spade, RankA).String())
	assert.Equal(t, "♥10", MustNew(Heart, Rank10).String())
	assert.Equal(t, "大王", JokerHigh().String())
	assert.True(t, JokerLow().IsJoker())
	assert.False(t, MustNew(Spade, RankK).IsJoker())
}

func TestNewDeck(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	require.Len(t, deck, 54)

	seen := make(map[Card]bool, len(deck))
	jokers := 0
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
		if c.IsJoker() {
			jokers++
		}
	}
	assert.Equal(t, 2, jokers)
}

func TestDeckShuffle_SeededIsDeterministic(t *testing.T) {
	t.Parallel()

	a := NewDeck()
	b := NewDeck()
	a.Shuffle(rand.New(rand.NewPCG(7, 11)))
	b.Shuffle(rand.New(rand.NewPCG(7, 11)))
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, NewDeck(), a)
}

func TestDeckDeal(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	hand, rest, err := deck.Deal(5)
	require.NoError(t, err)
	assert.Len(t, hand, 5)
	assert.Len(t, rest, 49)
	assert.Equal(t, []Card(deck[:5]), hand)

	_, _, err = rest.Deal(50)
	assert.ErrorIs(t, err, apperrors.ErrDeckExhausted)
}
