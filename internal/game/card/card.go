package card

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/palemoky/special-hands/internal/apperrors"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

// CardColor 定义牌的颜色
type CardColor int

const (
	Black CardColor = iota
	Red
)

const (
	Spade   Suit = iota // 黑桃
	Heart               // 红心
	Club                // 梅花
	Diamond             // 方块
	Joker               // 王牌
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Club:    "♣",
	Diamond: "♦",
	Joker:   "",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

const (
	RankA Rank = iota + 1 // Ace
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ         // Jack
	RankQ         // Queen
	RankK         // King
	RankJokerLow  // 小王
	RankJokerHigh // 大王
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	RankA:         "A",
	Rank2:         "2",
	Rank3:         "3",
	Rank4:         "4",
	Rank5:         "5",
	Rank6:         "6",
	Rank7:         "7",
	Rank8:         "8",
	Rank9:         "9",
	Rank10:        "10",
	RankJ:         "J",
	RankQ:         "Q",
	RankK:         "K",
	RankJokerLow:  "小王",
	RankJokerHigh: "大王",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// IsStandard 是否为 A~K 的普通点数
func (r Rank) IsStandard() bool {
	return r >= RankA && r <= RankK
}

// StandardSuits 可参与同色/序列判断的四种花色，按固定顺序排列
var StandardSuits = [...]Suit{Spade, Heart, Club, Diamond}

// StandardRanks A~K 十三种点数，按数值升序排列
var StandardRanks = [...]Rank{RankA, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10, RankJ, RankQ, RankK}

// Card 定义一张牌，构造后不可修改
type Card struct {
	suit Suit
	rank Rank
}

// New 创建一张牌。王牌只能搭配小王/大王点数，普通花色只能搭配 A~K。
func New(suit Suit, rank Rank) (Card, error) {
	switch {
	case suit == Joker:
		if rank != RankJokerLow && rank != RankJokerHigh {
			return Card{}, fmt.Errorf("%w: %s%s", apperrors.ErrInvalidCombination, "Joker", rank)
		}
	case suit >= Spade && suit <= Diamond:
		if !rank.IsStandard() {
			return Card{}, fmt.Errorf("%w: %s%s", apperrors.ErrInvalidCombination, suit, rank)
		}
	default:
		return Card{}, fmt.Errorf("%w: suit %d", apperrors.ErrInvalidCombination, int(suit))
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustNew 同 New，组合非法时 panic，仅用于常量牌和枚举生成的牌
func MustNew(suit Suit, rank Rank) Card {
	c, err := New(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// JokerLow 小王
func JokerLow() Card { return Card{suit: Joker, rank: RankJokerLow} }

// JokerHigh 大王
func JokerHigh() Card { return Card{suit: Joker, rank: RankJokerHigh} }

func (c Card) Suit() Suit { return c.suit }

func (c Card) Rank() Rank { return c.rank }

// IsJoker 是否为王牌
func (c Card) IsJoker() bool { return c.suit == Joker }

// Value 牌的点数值：A=1 ... K=13，王牌为 0
func (c Card) Value() int {
	if c.rank.IsStandard() {
		return int(c.rank)
	}
	return 0
}

// Color 牌的颜色，小王为黑，大王为红
func (c Card) Color() CardColor {
	switch {
	case c.suit == Heart || c.suit == Diamond:
		return Red
	case c.suit == Joker && c.rank == RankJokerHigh:
		return Red
	default:
		return Black
	}
}

func (c Card) String() string {
	if c.IsJoker() {
		return c.rank.String()
	}
	return c.suit.String() + c.rank.String()
}

// Deck 定义一副牌
type Deck []Card

// NewDeck 生成 52 张普通牌加小王、大王
func NewDeck() Deck {
	deck := make(Deck, 0, 54)
	for _, s := range StandardSuits {
		for _, r := range StandardRanks {
			deck = append(deck, Card{suit: s, rank: r})
		}
	}
	deck = append(deck, JokerLow(), JokerHigh())
	return deck
}

// Shuffle 洗牌，r 为 nil 时使用全局随机源
func (d Deck) Shuffle(r *rand.Rand) {
	swap := func(i, j int) {
		d[i], d[j] = d[j], d[i]
	}
	if r == nil {
		rand.Shuffle(len(d), swap)
		return
	}
	r.Shuffle(len(d), swap)
}

// Deal 从牌堆顶部发 n 张牌，返回发出的牌和剩余牌堆
func (d Deck) Deal(n int) ([]Card, Deck, error) {
	if n < 0 || n > len(d) {
		return nil, d, fmt.Errorf("%w: 需要 %d 张，剩余 %d 张", apperrors.ErrDeckExhausted, n, len(d))
	}
	hand := make([]Card, n)
	copy(hand, d[:n])
	return hand, d[n:], nil
}
