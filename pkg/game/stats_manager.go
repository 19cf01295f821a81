package game

import (
	"fmt"
	"log"

	"github.com/decker502/pickup52/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName gdata 存储使用的应用名
const AppName = "pickup52"

// PlayerStats 玩家统计
type PlayerStats struct {
	RoundsStarted    int     `yaml:"roundsStarted"`    // 发过的局数
	RoundsWon        int     `yaml:"roundsWon"`        // 全部拾取完成的局数
	BestClearSeconds float64 `yaml:"bestClearSeconds"` // 最快完成用时，0 表示还没有完成过
	LastSessionID    string  `yaml:"lastSessionID"`    // 最近一局的 session id
	LastSeed         uint64  `yaml:"lastSeed"`         // 最近一局的发牌种子
}

// StatsManager 统计管理器
// 负责玩家统计的加载、保存和内存管理
type StatsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	stats        *PlayerStats   // 当前统计
}

// 存储路径常量
const (
	statsObject   = "stats"
	statsProperty = "player"
)

// OpenStorage 打开 gdata 存储
// 失败时返回 nil 和错误，调用方可以用 nil 进入降级模式
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(); err != nil {
		return nil, err
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return manager, nil
}

// NewStatsManager 创建新的统计管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存统计）
//
// 加载失败不是致命错误，使用空统计继续。
func NewStatsManager(gdataManager *gdata.Manager) *StatsManager {
	sm := &StatsManager{
		gdataManager: gdataManager,
		stats:        &PlayerStats{},
	}

	if err := sm.Load(); err != nil {
		log.Printf("[StatsManager] Warning: Failed to load stats: %v (starting fresh)", err)
	}

	return sm
}

// Load 从 gdata 加载统计
func (sm *StatsManager) Load() error {
	// 降级模式：无法持久化
	if sm.gdataManager == nil {
		sm.stats = &PlayerStats{}
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(statsObject, statsProperty) {
		sm.stats = &PlayerStats{}
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		sm.stats = &PlayerStats{}
		return fmt.Errorf("failed to load stats: %w", err)
	}

	var loaded PlayerStats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.stats = &PlayerStats{}
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	sm.stats = &loaded
	log.Printf("[StatsManager] Stats loaded: %d rounds, %d won", loaded.RoundsStarted, loaded.RoundsWon)
	return nil
}

// Save 保存统计到 gdata
// gdataManager 为 nil 时直接返回 nil（降级模式，不报错）
func (sm *StatsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// Stats 返回当前统计的副本
func (sm *StatsManager) Stats() PlayerStats {
	return *sm.stats
}

// RecordRoundStarted 记录开始新的一局
func (sm *StatsManager) RecordRoundStarted(gs *GameState) {
	sm.stats.RoundsStarted++
	sm.stats.LastSessionID = gs.SessionID.String()
	sm.stats.LastSeed = gs.Seed
	sm.saveQuietly()
}

// RecordRoundWon 记录完成一局，返回是否刷新了最快用时
func (sm *StatsManager) RecordRoundWon(gs *GameState) bool {
	sm.stats.RoundsWon++
	best := false
	if sm.stats.BestClearSeconds == 0 || gs.ElapsedSeconds < sm.stats.BestClearSeconds {
		sm.stats.BestClearSeconds = gs.ElapsedSeconds
		best = true
	}
	sm.saveQuietly()
	return best
}

// saveQuietly 保存失败只记录日志，不打断游戏
func (sm *StatsManager) saveQuietly() {
	if err := sm.Save(); err != nil {
		log.Printf("[StatsManager] Warning: %v", err)
	}
}

// Reset 清空统计并保存
func (sm *StatsManager) Reset() error {
	sm.stats = &PlayerStats{}
	return sm.Save()
}
