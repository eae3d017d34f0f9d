package rule

import "github.com/palemoky/special-hands/internal/game/card"

// PatternType 定义特殊牌型，数值越小分数越高（None 除外）
type PatternType int

const (
	None            PatternType = iota
	RoyalFlush                  // 完美同色序列
	PerfectStraight             // 完美序列
	StraightFlush               // 同色序列
	FourOfAKind                 // 四骑士
	Flush                       // 同色
	Straight                    // 序列
	FullHouse                   // 满座
	ThreeOfAKind                // 三贤者
	TwoPairs                    // 双偶星
	Pair                        // 偶星
)

// patternInfo 牌型的固定分数与描述
type patternInfo struct {
	score       int
	name        string
	description string
}

// patternTable 牌型登记表，初始化后只读
var patternTable = map[PatternType]patternInfo{
	None:            {0, "无牌型", "无牌型：未组成任何特殊牌型"},
	RoyalFlush:      {150, "完美同色序列", "完美同色序列：10-J-Q-K-A组成的同色序列"},
	PerfectStraight: {135, "完美序列", "完美序列：10-J-Q-K-A组成的序列"},
	StraightFlush:   {120, "同色序列", "同色序列：五张连续点数且同色的牌"},
	FourOfAKind:     {80, "四骑士", "四骑士：四张相同点数的牌"},
	Flush:           {60, "同色", "同色：五张相同花色的牌"},
	Straight:        {60, "序列", "序列：五张连续点数的牌"},
	FullHouse:       {55, "满座", "满座：三贤者加偶星"},
	ThreeOfAKind:    {30, "三贤者", "三贤者：三张相同点数的牌"},
	TwoPairs:        {30, "双偶星", "双偶星：两对不同点数的偶星"},
	Pair:            {15, "偶星", "偶星：两张相同点数的牌"},
}

// patternOrder 按分数从高到低的检查顺序
var patternOrder = [...]PatternType{
	RoyalFlush,
	PerfectStraight,
	StraightFlush,
	FourOfAKind,
	Flush,
	Straight,
	FullHouse,
	ThreeOfAKind,
	TwoPairs,
	Pair,
}

// Patterns 返回按分数从高到低排列的全部牌型
func Patterns() []PatternType {
	return append([]PatternType(nil), patternOrder[:]...)
}

// Score 牌型的基础分
func (p PatternType) Score() int {
	return patternTable[p].score
}

// Description 牌型描述
func (p PatternType) Description() string {
	if info, ok := patternTable[p]; ok {
		return info.description
	}
	return patternTable[None].description
}

func (p PatternType) String() string {
	if info, ok := patternTable[p]; ok {
		return info.name
	}
	return "无效"
}

// maxPatternScore 登记表中的最高分
var maxPatternScore = RoyalFlush.Score()

// Result 一次牌型判定的结果
type Result struct {
	Type        PatternType
	Score       int         // 基础分，王牌加分在判定后叠加
	Cards       []card.Card // 参与判定的整手牌
	Description string
}

func newResult(p PatternType, cards []card.Card) Result {
	return Result{
		Type:        p,
		Score:       p.Score(),
		Cards:       cards,
		Description: p.Description(),
	}
}

// IsEmpty 是否未组成任何牌型
func (r Result) IsEmpty() bool {
	return r.Type == None
}
