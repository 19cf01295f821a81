// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// DeckSize 一副牌（不含大小王）的张数
const DeckSize = 52

// Rank 牌面点数（A=1 … K=13）
type Rank int

const (
	// RankUnknown 无效点数
	RankUnknown Rank = iota
	RankAce
	RankTwo
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
)

// Ranks 返回按 A..K 排列的全部点数
func Ranks() []Rank {
	return []Rank{
		RankAce, RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven,
		RankEight, RankNine, RankTen, RankJack, RankQueen, RankKing,
	}
}

// Valid 检查点数是否在 A..K 范围内
func (r Rank) Valid() bool {
	return r >= RankAce && r <= RankKing
}

// String 返回点数的短名称（"A", "2" … "10", "J", "Q", "K"）
func (r Rank) String() string {
	switch r {
	case RankAce:
		return "A"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	default:
		if r.Valid() {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Name 返回点数的英文全称，用于日志和 CLI 输出
func (r Rank) Name() string {
	names := [...]string{"Unknown", "Ace", "Two", "Three", "Four", "Five", "Six",
		"Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}
	if r.Valid() {
		return names[r]
	}
	return names[0]
}

// Suit 花色
type Suit int

const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitHearts
	SuitSpades
)

// Suits 返回全部花色
func Suits() []Suit {
	return []Suit{SuitClubs, SuitDiamonds, SuitHearts, SuitSpades}
}

// Valid 检查花色是否合法
func (s Suit) Valid() bool {
	return s >= SuitClubs && s <= SuitSpades
}

// IsRed 红色花色（方块、红桃）
func (s Suit) IsRed() bool {
	return s == SuitDiamonds || s == SuitHearts
}

// String 返回花色小写名称（与资源清单中的 key 一致）
func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "clubs"
	case SuitDiamonds:
		return "diamonds"
	case SuitHearts:
		return "hearts"
	case SuitSpades:
		return "spades"
	default:
		return "unknown"
	}
}

// Symbol 返回花色符号
func (s Suit) Symbol() string {
	switch s {
	case SuitClubs:
		return "♣"
	case SuitDiamonds:
		return "♦"
	case SuitHearts:
		return "♥"
	case SuitSpades:
		return "♠"
	default:
		return "?"
	}
}

// CardID 一张牌的身份（点数 × 花色）
type CardID struct {
	Rank Rank
	Suit Suit
}

// Valid 点数与花色都合法
func (c CardID) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// Key 返回资源清单使用的键，例如 "A-spades"、"10-hearts"
func (c CardID) Key() string {
	return c.Rank.String() + "-" + c.Suit.String()
}

// String 同 Key
func (c CardID) String() string {
	return c.Key()
}

// Name 返回可读名称，例如 "Ace of Spades"
func (c CardID) Name() string {
	suit := c.Suit.String()
	if suit != "" {
		suit = strings.ToUpper(suit[:1]) + suit[1:]
	}
	return c.Rank.Name() + " of " + suit
}

// FullDeck 返回按花色、点数排列的 52 张牌
func FullDeck() []CardID {
	deck := make([]CardID, 0, DeckSize)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			deck = append(deck, CardID{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// ParseCardID 解析牌的键（"A-spades"）或可读名称（"Ace of Spades"），大小写不敏感
func ParseCardID(s string) (CardID, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, id := range FullDeck() {
		if needle == strings.ToLower(id.Key()) || needle == strings.ToLower(id.Name()) {
			return id, nil
		}
	}
	return CardID{}, fmt.Errorf("unknown card %q", s)
}
