package rule

import "github.com/palemoky/special-hands/internal/game/card"

// 场地牌型加分
const (
	SequenceBonus  = 30
	SameColorBonus = 20
)

// AreaRules 场地牌型判定规则，场景效果可以放宽张数要求或允许跳点序列
type AreaRules struct {
	SequenceRequirement  int  // 序列最少张数
	SameColorRequirement int  // 同色最少张数
	SkipSequence         bool // 序列允许相隔 1 个点数
}

// DefaultAreaRules 未受场景效果影响时的规则
func DefaultAreaRules() AreaRules {
	return AreaRules{
		SequenceRequirement:  5,
		SameColorRequirement: 5,
	}
}

// IsSequence 排序后相邻两张的点数差不超过 1（允许跳点时为 2）
func (r AreaRules) IsSequence(cards []card.Card) bool {
	if len(cards) == 0 || len(cards) < r.SequenceRequirement {
		return false
	}
	maxGap := 1
	if r.SkipSequence {
		maxGap = 2
	}
	sorted := sortByValue(cards)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Value()-sorted[i-1].Value() > maxGap {
			return false
		}
	}
	return true
}

// IsSameColor 所有牌与第一张同花色
func (r AreaRules) IsSameColor(cards []card.Card) bool {
	if len(cards) == 0 || len(cards) < r.SameColorRequirement {
		return false
	}
	return analyzeCards(cards).sameSuit()
}

// HasValidType 是否组成序列或同色
func (r AreaRules) HasValidType(cards []card.Card) bool {
	return r.IsSequence(cards) || r.IsSameColor(cards)
}

// PointValue 点数之和，王牌不计点数
func PointValue(cards []card.Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value()
	}
	return total
}

// ScoreLine 一条计分明细
type ScoreLine struct {
	Reason string
	Points int
}

// AreaScore 场地计分结果
type AreaScore struct {
	Total int
	Lines []ScoreLine
}

func (s *AreaScore) add(reason string, points int) {
	s.Total += points
	s.Lines = append(s.Lines, ScoreLine{Reason: reason, Points: points})
}

// Score 计算一个场地的分数：点数之和，加上序列、同色加分
func (r AreaRules) Score(cards []card.Card) AreaScore {
	var score AreaScore
	score.add("点数", PointValue(cards))
	if r.IsSequence(cards) {
		score.add("顺子", SequenceBonus)
	}
	if r.IsSameColor(cards) {
		score.add("同色", SameColorBonus)
	}
	return score
}
