package game

import (
	"log"

	"github.com/decker502/pickup52/pkg/types"
	"github.com/google/uuid"
)

// Phase 游戏阶段
type Phase int

const (
	PhaseLoading Phase = iota // 正在初始化世界
	PhaseMenu                 // 显示欢迎菜单
	PhaseDeal                 // 正在发牌
	PhasePlay                 // 游戏进行中
	PhaseWin                  // 全部拾取完毕
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseMenu:
		return "Menu"
	case PhaseDeal:
		return "Deal"
	case PhasePlay:
		return "Play"
	case PhaseWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// GameState 存储一局游戏的全局状态
//
// 不是单例：由场景创建并显式传给需要它的系统。
type GameState struct {
	phase Phase

	// TotalCards 本局牌数（标准为 52）
	TotalCards int
	// CardsCollected 已完成拾取动画的牌数
	CardsCollected int
	// pickupsStarted 已触发拾取的牌数，用于分配牌堆槽位
	pickupsStarted int

	// SessionID 本局唯一标识，写入统计和日志
	SessionID uuid.UUID
	// Seed 本局发牌种子
	Seed uint64
	// ElapsedSeconds 本局进行时间（Play 阶段累计）
	ElapsedSeconds float64

	// onPhaseChange 阶段切换回调（可为 nil）
	onPhaseChange func(from, to Phase)
}

// NewGameState 创建处于 Loading 阶段的游戏状态
func NewGameState() *GameState {
	return &GameState{
		phase:      PhaseLoading,
		TotalCards: types.DeckSize,
	}
}

// Phase 返回当前阶段
func (gs *GameState) Phase() Phase {
	return gs.phase
}

// SetPhase 切换阶段，相同阶段忽略
func (gs *GameState) SetPhase(p Phase) {
	if gs.phase == p {
		return
	}
	from := gs.phase
	gs.phase = p
	log.Printf("[GameState] 阶段切换: %s -> %s", from, p)
	if gs.onPhaseChange != nil {
		gs.onPhaseChange(from, p)
	}
}

// OnPhaseChange 注册阶段切换回调
func (gs *GameState) OnPhaseChange(fn func(from, to Phase)) {
	gs.onPhaseChange = fn
}

// BeginRound 重置计数器，开始新的一局
func (gs *GameState) BeginRound(seed uint64, totalCards int) {
	gs.Seed = seed
	gs.TotalCards = totalCards
	gs.CardsCollected = 0
	gs.pickupsStarted = 0
	gs.ElapsedSeconds = 0
	gs.SessionID = uuid.New()
	log.Printf("[GameState] 新的一局: session=%s seed=%d cards=%d", gs.SessionID, seed, totalCards)
}

// ReserveSlot 为刚被点击的牌分配牌堆槽位
// 槽位按点击顺序递增，保证同时飞行的牌不会落到同一位置
func (gs *GameState) ReserveSlot() int {
	slot := gs.pickupsStarted
	gs.pickupsStarted++
	return slot
}

// PickupsStarted 返回已触发拾取的牌数
func (gs *GameState) PickupsStarted() int {
	return gs.pickupsStarted
}

// CollectCard 记录一张牌完成拾取
// 全部收齐时切换到 Win 阶段并返回 true
func (gs *GameState) CollectCard() bool {
	gs.CardsCollected++
	if gs.CardsCollected >= gs.TotalCards && gs.phase == PhasePlay {
		log.Printf("[GameState] 全部 %d 张牌已拾取，用时 %.1f 秒", gs.TotalCards, gs.ElapsedSeconds)
		gs.SetPhase(PhaseWin)
		return true
	}
	return false
}

// Tick 累计本局时间（只在 Play 阶段计时）
func (gs *GameState) Tick(deltaTime float64) {
	if gs.phase == PhasePlay {
		gs.ElapsedSeconds += deltaTime
	}
}
