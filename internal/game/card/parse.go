package card

import (
	"fmt"
	"strings"

	"github.com/palemoky/special-hands/internal/apperrors"
)

// charToRank 用于快速查找字符对应的 Rank
var charToRank = map[rune]Rank{
	'A': RankA,
	'2': Rank2,
	'3': Rank3,
	'4': Rank4,
	'5': Rank5,
	'6': Rank6,
	'7': Rank7,
	'8': Rank8,
	'9': Rank9,
	'T': Rank10,
	'J': RankJ,
	'Q': RankQ,
	'K': RankK,
}

// charToSuit 同时接受字母和花色符号
var charToSuit = map[rune]Suit{
	'S': Spade,
	'H': Heart,
	'C': Club,
	'D': Diamond,
	'♠': Spade,
	'♥': Heart,
	'♣': Club,
	'♦': Diamond,
}

// jokerNames 王牌的文本写法
var jokerNames = map[string]Rank{
	"BJ":   RankJokerLow,
	"RJ":   RankJokerHigh,
	"小王":   RankJokerLow,
	"大王":   RankJokerHigh,
	"JOKER": RankJokerHigh,
}

func RankFromChar(char rune) (Rank, error) {
	if rank, ok := charToRank[char]; ok {
		return rank, nil
	}
	return -1, fmt.Errorf("%w: 无法识别的点数 %c", apperrors.ErrInvalidCard, char)
}

// Parse 解析单张牌，格式为 点数+花色，例如 "10H"、"qs"、"A♠"；王牌写作 "BJ"（小王）或 "RJ"（大王）
func Parse(s string) (Card, error) {
	text := strings.ToUpper(strings.TrimSpace(s))
	if rank, ok := jokerNames[text]; ok {
		return New(Joker, rank)
	}

	text = strings.ReplaceAll(text, "10", "T")
	runes := []rune(text)
	if len(runes) != 2 {
		return Card{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidCard, s)
	}

	rank, err := RankFromChar(runes[0])
	if err != nil {
		return Card{}, err
	}
	suit, ok := charToSuit[runes[1]]
	if !ok {
		return Card{}, fmt.Errorf("%w: 无法识别的花色 %c", apperrors.ErrInvalidCard, runes[1])
	}
	return New(suit, rank)
}

// ParseHand 解析以空白或逗号分隔的一手牌
func ParseHand(input string) ([]Card, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, apperrors.ErrEmptyHand
	}

	hand := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		hand = append(hand, c)
	}
	return hand, nil
}
