package components

import (
	"image/color"

	"github.com/decker502/pickup52/pkg/types"
)

// CardComponent 标记实体为一张扑克牌，并记录身份
type CardComponent struct {
	ID     types.CardID // 点数 × 花色，整副牌中唯一
	FaceUp bool         // 是否已翻到正面（拾取动画过半时翻面）
}

// TransformComponent 实体的三维变换
// 发牌时写入散布位置，拾取动画期间每帧更新
type TransformComponent struct {
	types.Transform
}

// CardAssetComponent 牌面视觉资源引用
// 由资源清单解析得到，渲染系统据此向 ResourceManager 取图
type CardAssetComponent struct {
	Key   string     // 资源键，如 "A-spades"
	Image string     // 图片路径，为空表示程序化绘制
	Label string     // 程序化绘制时显示的文字
	Color color.RGBA // 程序化绘制时的文字颜色
}
