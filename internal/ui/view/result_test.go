package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/special-hands/internal/game/card"
	"github.com/palemoky/special-hands/internal/game/rule"
)

func TestRenderHand(t *testing.T) {
	t.Parallel()

	cards, err := card.ParseHand("10H KS RJ")
	require.NoError(t, err)

	result := RenderHand(cards)

	tests := []struct {
		name     string
		contains string
	}{
		{"ten rank", "10"},
		{"king rank", "K"},
		{"heart suit", "♥"},
		{"spade suit", "♠"},
		{"high joker", "大王"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, result, tt.contains)
		})
	}
}

func TestRenderHand_Empty(t *testing.T) {
	t.Parallel()

	assert.Contains(t, RenderHand(nil), "空手牌")
}

func TestRenderResult(t *testing.T) {
	t.Parallel()

	cards, err := card.ParseHand("7S 7H 2D BJ RJ")
	require.NoError(t, err)

	result := RenderResult(rule.Resolve(cards))
	assert.Contains(t, result, "四骑士")
	assert.Contains(t, result, "得分: 110")
	assert.Contains(t, result, "王牌 30")

	plain := RenderResult(rule.Classify(cards[:2]))
	assert.Contains(t, plain, "偶星")
	assert.NotContains(t, plain, "王牌")
}

func TestRenderAreaScore(t *testing.T) {
	t.Parallel()

	cards, err := card.ParseHand("3S 4S 5S 6S 7S")
	require.NoError(t, err)

	result := RenderAreaScore(rule.DefaultAreaRules().Score(cards))
	assert.Contains(t, result, "点数: +25")
	assert.Contains(t, result, "顺子: +30")
	assert.Contains(t, result, "同色: +20")
	assert.Contains(t, result, "合计: 75")
}

func TestRenderEvaluation(t *testing.T) {
	t.Parallel()

	cards, err := card.ParseHand("10C JC QC KC RJ")
	require.NoError(t, err)

	out := RenderEvaluation(cards, rule.Resolve(cards), rule.DefaultAreaRules().Score(cards))
	assert.Contains(t, out, "完美同色序列")
	assert.Contains(t, out, "得分: 165")
	assert.Contains(t, out, "合计")
}
