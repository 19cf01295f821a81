package systems

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/decker502/pickup52/pkg/components"
	"github.com/decker502/pickup52/pkg/config"
	"github.com/decker502/pickup52/pkg/ecs"
	"github.com/decker502/pickup52/pkg/entities"
	"github.com/decker502/pickup52/pkg/types"
	"github.com/decker502/pickup52/pkg/utils"
)

// AssetResolver 把牌的身份解析为资源句柄
// config.CardAssetCatalog 实现了该接口
type AssetResolver interface {
	Resolve(id types.CardID) (config.AssetHandle, error)
}

// DealSystem 负责发牌：洗牌、计算散布位置、生成 52 个牌实体
//
// 每局只在 Deal 阶段运行一次，不与游戏过程并发。
type DealSystem struct {
	entityManager *ecs.EntityManager
	assets        AssetResolver
	card          config.CardConfig
	region        utils.ScatterRegion
	params        utils.ScatterParams
}

// NewDealSystem 创建发牌系统
func NewDealSystem(em *ecs.EntityManager, assets AssetResolver, cfg *config.GameConfig) *DealSystem {
	return &DealSystem{
		entityManager: em,
		assets:        assets,
		card:          cfg.Card,
		region:        cfg.ScatterRegion(),
		params:        cfg.ScatterParams(),
	}
}

// SetRegion 覆盖散布区域（CLI 的 --region 参数使用）
func (s *DealSystem) SetRegion(region utils.ScatterRegion) {
	s.region = region
}

// Region 返回当前散布区域
func (s *DealSystem) Region() utils.ScatterRegion {
	return s.region
}

// Deal 清空桌面并发一副新牌
//
// 所有随机性来自 rng。任何一张牌找不到资源、或散布区域非法时返回错误，
// 此时桌面上不会留下任何新牌。
//
// 返回按发牌顺序排列的实体ID（后面的牌压在上面）。
func (s *DealSystem) Deal(rng *rand.Rand) ([]ecs.EntityID, error) {
	s.ClearTable()

	deck := types.FullDeck()
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	// 先解析全部资源，缺失时在生成任何实体之前失败
	handles := make([]config.AssetHandle, len(deck))
	for i, id := range deck {
		h, err := s.assets.Resolve(id)
		if err != nil {
			return nil, fmt.Errorf("deal aborted: %w", err)
		}
		handles[i] = h
	}

	transforms, err := utils.ScatterTransforms(rng, s.region, len(deck), s.params)
	if err != nil {
		return nil, fmt.Errorf("deal aborted: %w", err)
	}

	ids := make([]ecs.EntityID, 0, len(deck))
	for i, id := range deck {
		ids = append(ids, entities.NewCardEntity(s.entityManager, id, transforms[i], handles[i], s.card))
	}

	log.Printf("[DealSystem] 发牌完成: %d 张, 分布=%s", len(ids), s.params.Distribution)
	return ids, nil
}

// ClearTable 销毁桌面上所有的牌（上一局的牌）
func (s *DealSystem) ClearTable() {
	cards := ecs.GetEntitiesWith1[*components.CardComponent](s.entityManager)
	for _, id := range cards {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()
	if len(cards) > 0 {
		log.Printf("[DealSystem] 清理上一局的 %d 张牌", len(cards))
	}
}
