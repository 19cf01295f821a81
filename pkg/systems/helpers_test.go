package systems

import (
	"fmt"
	"testing"

	"github.com/decker502/pickup52/pkg/components"
	"github.com/decker502/pickup52/pkg/config"
	"github.com/decker502/pickup52/pkg/ecs"
	"github.com/decker502/pickup52/pkg/game"
	"github.com/decker502/pickup52/pkg/types"
	"github.com/decker502/pickup52/pkg/utils"
)

// stubAssets 测试用资源解析器，missing 中的牌解析失败
type stubAssets struct {
	missing map[types.CardID]bool
}

func (s stubAssets) Resolve(id types.CardID) (config.AssetHandle, error) {
	if s.missing[id] {
		return config.AssetHandle{}, fmt.Errorf("%w: %s", config.ErrMissingAsset, id.Name())
	}
	return config.AssetHandle{Key: id.Key(), Label: id.Name(), Color: "#000000"}, nil
}

// testTable 一张已发好牌、处于 Play 阶段的桌面
type testTable struct {
	em        *ecs.EntityManager
	gs        *game.GameState
	cfg       *config.GameConfig
	deal      *DealSystem
	pickup    *PickupSystem
	animation *PickupAnimationSystem
	cards     []ecs.EntityID
}

func newTestTable(t *testing.T, seed uint64) *testTable {
	t.Helper()
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	cfg := config.DefaultGameConfig()

	tt := &testTable{
		em:        em,
		gs:        gs,
		cfg:       cfg,
		deal:      NewDealSystem(em, stubAssets{}, cfg),
		pickup:    NewPickupSystem(em, gs, cfg),
		animation: NewPickupAnimationSystem(em, gs),
	}
	cards, err := tt.deal.Deal(utils.NewRoundRand(seed))
	if err != nil {
		t.Fatalf("Deal() error: %v", err)
	}
	tt.cards = cards
	gs.BeginRound(seed, len(cards))
	gs.SetPhase(game.PhasePlay)
	return tt
}

// find 按牌面查找实体
func (tt *testTable) find(t *testing.T, id types.CardID) ecs.EntityID {
	t.Helper()
	for _, e := range tt.cards {
		card, ok := ecs.GetComponent[*components.CardComponent](tt.em, e)
		if ok && card.ID == id {
			return e
		}
	}
	t.Fatalf("card %s not on the table", id.Name())
	return 0
}

// tick 以固定步长推进 n 帧
func (tt *testTable) tick(n int) {
	for i := 0; i < n; i++ {
		tt.animation.Update(1.0 / 60.0)
	}
}

func stateOf(em *ecs.EntityManager, id ecs.EntityID) components.PickupState {
	state, ok := ecs.GetComponent[*components.PickupStateComponent](em, id)
	if !ok {
		return -1
	}
	return state.State
}
