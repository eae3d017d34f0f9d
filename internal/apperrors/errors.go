package apperrors

// 错误码
const (
	ErrCodeInvalidCard        = 1001
	ErrCodeInvalidCombination = 1002
	ErrCodeEmptyHand          = 1003
	ErrCodeDeckExhausted      = 1004
)

// GameError 牌局错误
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrInvalidCard        = &GameError{Code: ErrCodeInvalidCard, Message: "无法识别的牌"}
	ErrInvalidCombination = &GameError{Code: ErrCodeInvalidCombination, Message: "花色与点数不匹配"}
	ErrEmptyHand          = &GameError{Code: ErrCodeEmptyHand, Message: "手牌为空"}
	ErrDeckExhausted      = &GameError{Code: ErrCodeDeckExhausted, Message: "牌堆剩余牌数不足"}
)
