package rule

import (
	"cmp"
	"slices"

	"github.com/palemoky/special-hands/internal/game/card"
)

// HandAnalysis 对一手牌进行预分析
type HandAnalysis struct {
	cards      []card.Card       // 按点数升序排列
	values     []int             // 与 cards 对应的点数值
	counts     map[card.Rank]int // 每种点数牌的数量
	suitCounts map[card.Suit]int // 每种花色牌的数量
}

// sortByValue 返回按点数值升序排列的副本，点数相同保持原顺序
func sortByValue(cards []card.Card) []card.Card {
	sorted := make([]card.Card, len(cards))
	copy(sorted, cards)
	slices.SortStableFunc(sorted, func(a, b card.Card) int {
		return cmp.Compare(a.Value(), b.Value())
	})
	return sorted
}

// analyzeCards 分析手牌，返回一个包含所有统计信息的结构
func analyzeCards(cards []card.Card) HandAnalysis {
	sorted := sortByValue(cards)
	analysis := HandAnalysis{
		cards:      sorted,
		values:     make([]int, len(sorted)),
		counts:     make(map[card.Rank]int),
		suitCounts: make(map[card.Suit]int),
	}
	for i, c := range sorted {
		analysis.values[i] = c.Value()
		analysis.counts[c.Rank()]++
		analysis.suitCounts[c.Suit()]++
	}
	return analysis
}

// maxCount 出现次数最多的点数的张数
func (a HandAnalysis) maxCount() int {
	best := 0
	for _, n := range a.counts {
		best = max(best, n)
	}
	return best
}

// ranksWithAtLeast 张数不少于 n 的点数种类数
func (a HandAnalysis) ranksWithAtLeast(n int) int {
	total := 0
	for _, count := range a.counts {
		if count >= n {
			total++
		}
	}
	return total
}

// sameSuit 所有牌是否与第一张同花色
func (a HandAnalysis) sameSuit() bool {
	if len(a.cards) == 0 {
		return false
	}
	return a.suitCounts[a.cards[0].Suit()] == len(a.cards)
}

// royalValues 10-J-Q-K-A 的点数值
var royalValues = []int{1, 10, 11, 12, 13}

// lowStraightValues A-2-3-4-5 的点数值
var lowStraightValues = []int{1, 2, 3, 4, 5}

// isRoyalRanks 恰好五张且点数集合正好是 10-J-Q-K-A
func (a HandAnalysis) isRoyalRanks() bool {
	if len(a.cards) != len(royalValues) {
		return false
	}
	// values 已排序，A=1 在最前
	return slices.Equal(a.values, royalValues)
}

// patternChecker 牌型检查函数类型
type patternChecker func(HandAnalysis) bool

// patternCheckers 牌型检查函数映射表
var patternCheckers = map[PatternType]patternChecker{
	RoyalFlush:      isRoyalFlush,
	PerfectStraight: isPerfectStraight,
	StraightFlush:   isStraightFlush,
	FourOfAKind:     isFourOfAKind,
	Flush:           isFlush,
	Straight:        isStraight,
	FullHouse:       isFullHouse,
	ThreeOfAKind:    isThreeOfAKind,
	TwoPairs:        isTwoPairs,
	Pair:            isPair,
}

func isRoyalFlush(a HandAnalysis) bool {
	return a.sameSuit() && a.isRoyalRanks()
}

func isPerfectStraight(a HandAnalysis) bool {
	return a.isRoyalRanks()
}

func isStraightFlush(a HandAnalysis) bool {
	return a.sameSuit() && isStraight(a)
}

func isFourOfAKind(a HandAnalysis) bool {
	return a.maxCount() >= 4
}

func isFlush(a HandAnalysis) bool {
	return len(a.cards) >= 5 && a.sameSuit()
}

// isStraight 五张及以上点数逐一连续；含 A 时另外接受 A-2-3-4-5
func isStraight(a HandAnalysis) bool {
	if len(a.values) < 5 {
		return false
	}

	consecutive := true
	for i := 1; i < len(a.values); i++ {
		if a.values[i] != a.values[i-1]+1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return true
	}

	if a.counts[card.RankA] == 0 {
		return false
	}
	for _, v := range lowStraightValues {
		if !slices.Contains(a.values, v) {
			return false
		}
	}
	return true
}

// isFullHouse 某个点数达到三张，且另一个点数达到两张
func isFullHouse(a HandAnalysis) bool {
	var trio card.Rank
	hasTrio := false
	for r, count := range a.counts {
		if count >= 3 {
			trio, hasTrio = r, true
			break
		}
	}
	if !hasTrio {
		return false
	}
	for r, count := range a.counts {
		if r != trio && count >= 2 {
			return true
		}
	}
	return false
}

func isThreeOfAKind(a HandAnalysis) bool {
	return a.maxCount() >= 3
}

func isTwoPairs(a HandAnalysis) bool {
	return a.ranksWithAtLeast(2) >= 2
}

func isPair(a HandAnalysis) bool {
	return a.maxCount() >= 2
}

// Classify 判定一手不含王牌的牌组成的最高牌型。
// 按分数从高到低逐一检查，返回第一个满足的牌型；都不满足时返回 None。
func Classify(cards []card.Card) Result {
	analysis := analyzeCards(cards)
	return newResult(classifyAnalysis(analysis), analysis.cards)
}

func classifyAnalysis(a HandAnalysis) PatternType {
	for _, p := range patternOrder {
		if patternCheckers[p](a) {
			return p
		}
	}
	return None
}
