package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternScores(t *testing.T) {
	t.Parallel()

	expected := map[PatternType]int{
		None:            0,
		RoyalFlush:      150,
		PerfectStraight: 135,
		StraightFlush:   120,
		FourOfAKind:     80,
		Flush:           60,
		Straight:        60,
		FullHouse:       55,
		ThreeOfAKind:    30,
		TwoPairs:        30,
		Pair:            15,
	}
	for p, score := range expected {
		assert.Equal(t, score, p.Score(), p.String())
	}
}

func TestPatternOrderIsDescending(t *testing.T) {
	t.Parallel()

	patterns := Patterns()
	assert.Len(t, patterns, 10)
	for i := 1; i < len(patterns); i++ {
		assert.GreaterOrEqual(t, patterns[i-1].Score(), patterns[i].Score())
	}

	// 返回副本，修改不影响检查顺序
	patterns[0] = Pair
	assert.Equal(t, RoyalFlush, Patterns()[0])
}

func TestPatternNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "四骑士", FourOfAKind.String())
	assert.Equal(t, "偶星：两张相同点数的牌", Pair.Description())
	assert.Equal(t, "无效", PatternType(42).String())
	assert.Equal(t, None.Description(), PatternType(42).Description())
	assert.Equal(t, 0, PatternType(42).Score())

	for _, p := range Patterns() {
		assert.NotEmpty(t, p.Description())
	}
}
