package rule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palemoky/special-hands/internal/game/card"
)

// hand 解析测试用手牌，空字符串返回空手牌
func hand(t *testing.T, input string) []card.Card {
	t.Helper()
	if input == "" {
		return []card.Card{}
	}
	cards, err := card.ParseHand(input)
	require.NoError(t, err)
	return cards
}
