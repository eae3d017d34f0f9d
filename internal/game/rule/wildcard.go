package rule

import (
	"slices"

	"github.com/palemoky/special-hands/internal/game/card"
)

// 王牌额外加分
const (
	bonusJokerLow  = 10 // 只有小王
	bonusJokerHigh = 15 // 只有大王
	bonusTwoJokers = 30 // 两张王牌
)

// splitJokers 分离王牌和普通牌
func splitJokers(hand []card.Card) (jokers, normal []card.Card) {
	for _, c := range hand {
		if c.IsJoker() {
			jokers = append(jokers, c)
		} else {
			normal = append(normal, c)
		}
	}
	return jokers, normal
}

// Resolve 判定任意一手牌（可含王牌）能组成的最高牌型。
// 无王牌时等同于 Classify；一张王牌时枚举其替代的全部 52 张牌；
// 两张王牌时使用近似判定。王牌加分只叠加在 Score 上，不改变 Type。
func Resolve(hand []card.Card) Result {
	jokers, normal := splitJokers(hand)

	if len(jokers) == 0 {
		result := Classify(normal)
		result.Cards = slices.Clone(hand)
		return result
	}

	var (
		pattern PatternType
		found   bool
	)
	switch len(jokers) {
	case 1:
		pattern, found = bestWithOneWild(normal)
	case 2:
		pattern, found = bestWithTwoWild(normal)
	}

	cards := append(sortByValue(normal), jokers...)
	if !found {
		// 找不到任何牌型时退回最低分牌型，不叠加王牌加分
		return newResult(Pair, cards)
	}

	result := newResult(pattern, cards)
	result.Score += wildcardBonus(jokers)
	return result
}

// wildcardBonus 根据王牌组合计算额外加分
func wildcardBonus(jokers []card.Card) int {
	switch len(jokers) {
	case 1:
		if jokers[0].Rank() == card.RankJokerHigh {
			return bonusJokerHigh
		}
		return bonusJokerLow
	case 2:
		return bonusTwoJokers
	default:
		return 0
	}
}

// bestWithOneWild 依次用每种花色、每种点数替代王牌并判定，保留得分最高且最先出现的牌型。
// 达到登记表最高分后不会再有更高的结果，提前结束。
func bestWithOneWild(normal []card.Card) (PatternType, bool) {
	best, found := None, false
	probe := make([]card.Card, len(normal)+1)
	copy(probe, normal)

	for _, s := range card.StandardSuits {
		for _, r := range card.StandardRanks {
			probe[len(normal)] = card.MustNew(s, r)
			p := classifyAnalysis(analyzeCards(probe))
			if p == None {
				continue
			}
			if !found || p.Score() > best.Score() {
				best, found = p, true
			}
			if best.Score() >= maxPatternScore {
				return best, true
			}
		}
	}
	return best, found
}

// wildChecker 两张王牌时的近似判定函数类型
type wildChecker func(HandAnalysis) bool

// twoWildCheckers 两张王牌时按分数从高到低的检查顺序
var twoWildCheckers = []struct {
	pattern PatternType
	check   wildChecker
}{
	{RoyalFlush, royalFlushWithTwoWild},
	{PerfectStraight, perfectStraightWithTwoWild},
	{StraightFlush, straightFlushWithTwoWild},
	{FourOfAKind, fourOfAKindWithTwoWild},
	{Flush, flushWithTwoWild},
	{Straight, straightWithTwoWild},
	{FullHouse, fullHouseWithTwoWild},
	{ThreeOfAKind, threeOfAKindWithTwoWild},
	{TwoPairs, twoPairsWithTwoWild},
	{Pair, pairWithTwoWild},
}

func bestWithTwoWild(normal []card.Card) (PatternType, bool) {
	analysis := analyzeCards(normal)
	for _, c := range twoWildCheckers {
		if c.check(analysis) {
			return c.pattern, true
		}
	}
	return None, false
}

// royalCount 点数属于 10-J-Q-K-A 的牌数（重复点数重复计数）
func (a HandAnalysis) royalCount() int {
	n := 0
	for _, v := range a.values {
		if slices.Contains(royalValues, v) {
			n++
		}
	}
	return n
}

// hasSuitWithAtLeast 是否有某种花色不少于 n 张
func (a HandAnalysis) hasSuitWithAtLeast(n int) bool {
	for _, count := range a.suitCounts {
		if count >= n {
			return true
		}
	}
	return false
}

// hasSpanWithin 升序点数中是否存在相邻三张，首尾差不超过 4（中间空缺可由两张王牌补齐）
func hasSpanWithin(values []int) bool {
	for i := 0; i+2 < len(values); i++ {
		if values[i+2]-values[i] <= 4 {
			return true
		}
	}
	return false
}

func royalFlushWithTwoWild(a HandAnalysis) bool {
	return a.hasSuitWithAtLeast(3) && a.royalCount() >= 3
}

func perfectStraightWithTwoWild(a HandAnalysis) bool {
	return a.royalCount() >= 3
}

func straightFlushWithTwoWild(a HandAnalysis) bool {
	for suit, count := range a.suitCounts {
		if count < 3 {
			continue
		}
		var values []int
		for _, c := range a.cards {
			if c.Suit() == suit {
				values = append(values, c.Value())
			}
		}
		if hasSpanWithin(values) {
			return true
		}
	}
	return false
}

func fourOfAKindWithTwoWild(a HandAnalysis) bool {
	return a.maxCount() >= 2
}

func flushWithTwoWild(a HandAnalysis) bool {
	return a.hasSuitWithAtLeast(3)
}

func straightWithTwoWild(a HandAnalysis) bool {
	return hasSpanWithin(slices.Compact(slices.Clone(a.values)))
}

func fullHouseWithTwoWild(a HandAnalysis) bool {
	return a.maxCount() >= 2
}

func threeOfAKindWithTwoWild(a HandAnalysis) bool {
	return a.maxCount() >= 1
}

// twoPairsWithTwoWild 与三贤者的判定相同，只要求有一张普通牌
func twoPairsWithTwoWild(a HandAnalysis) bool {
	return a.maxCount() >= 1
}

func pairWithTwoWild(a HandAnalysis) bool {
	return len(a.cards) > 0
}
