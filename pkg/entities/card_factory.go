package entities

import (
	"github.com/decker502/pickup52/pkg/components"
	"github.com/decker502/pickup52/pkg/config"
	"github.com/decker502/pickup52/pkg/ecs"
	"github.com/decker502/pickup52/pkg/types"
)

// NewCardEntity 创建一张牌实体
// 参数:
//   - manager: EntityManager 实例
//   - id: 牌的身份（点数 × 花色）
//   - transform: 初始散布变换
//   - asset: 资源清单中该牌的句柄
//   - card: 牌的尺寸，用于点击区域
//
// 返回: 创建的实体ID
func NewCardEntity(manager *ecs.EntityManager, id types.CardID, transform types.Transform,
	asset config.AssetHandle, card config.CardConfig) ecs.EntityID {
	entity := manager.CreateEntity()

	// 牌的身份，发牌时背面朝上
	ecs.AddComponent(manager, entity, &components.CardComponent{
		ID:     id,
		FaceUp: false,
	})

	// 散布位置
	ecs.AddComponent(manager, entity, &components.TransformComponent{
		Transform: transform,
	})

	// 牌面资源引用
	ecs.AddComponent(manager, entity, &components.CardAssetComponent{
		Key:   asset.Key,
		Image: asset.Image,
		Label: asset.Label,
		Color: asset.RGBA(),
	})

	// 初始状态：散落
	ecs.AddComponent(manager, entity, &components.PickupStateComponent{
		State: components.PickupScattered,
	})

	// 点击区域即牌的平面尺寸
	ecs.AddComponent(manager, entity, &components.ClickableComponent{
		Width:     card.Width,
		Depth:     card.Height,
		IsEnabled: true,
	})

	return entity
}
