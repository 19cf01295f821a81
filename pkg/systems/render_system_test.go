package systems

import (
	"math"
	"testing"

	"github.com/decker502/pickup52/pkg/components"
	"github.com/decker502/pickup52/pkg/config"
	"github.com/decker502/pickup52/pkg/ecs"
	"github.com/decker502/pickup52/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

func TestDrawOrderByHeight(t *testing.T) {
	em := ecs.NewEntityManager()
	high := placeCard(em, types.CardID{Rank: types.RankAce, Suit: types.SuitClubs}, 0, 3, 0, 0)
	low := placeCard(em, types.CardID{Rank: types.RankTwo, Suit: types.SuitClubs}, 0, 1, 0, 0)
	mid := placeCard(em, types.CardID{Rank: types.RankThree, Suit: types.SuitClubs}, 0, 2, 0, 0)

	order := DrawOrder(em)
	want := []ecs.EntityID{low, mid, high}
	if len(order) != len(want) {
		t.Fatalf("DrawOrder() = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("DrawOrder() = %v, want %v", order, want)
		}
	}

	// 飞行中的牌抬高后排到最后
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, low)
	transform.Position[1] = 40
	if order := DrawOrder(em); order[len(order)-1] != low {
		t.Errorf("lifted card should draw last, got %v", order)
	}
}

func TestCardGeoM(t *testing.T) {
	card := config.CardConfig{Width: 84, Height: 120, Thickness: 0.1}
	const imgW, imgH = 168, 240 // 两倍分辨率

	tests := []struct {
		name   string
		t      types.Transform
		faceUp bool
		// 图片左上角应落到的屏幕坐标
		wantX, wantY float64
	}{
		{"平放", types.NewTransform(0, 0, 0, mgl64.QuatIdent()), false, 400 - 42, 300 - 60},
		{"平移", types.NewTransform(100, 0, 50, mgl64.QuatIdent()), false, 500 - 42, 250 - 60},
		{"正面朝上不倒置", types.NewTransform(0, 0, 0, mgl64.QuatRotate(math.Pi, mgl64.Vec3{1, 0, 0})), true, 400 - 42, 300 - 60},
		// 绕 Y 转 90°：牌的顶边（局部 +Z）转到世界 +X，图片左上角落在右上方
		{"旋转90度", types.NewTransform(0, 0, 0, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})), false, 400 + 60, 300 - 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := CardGeoM(tt.t, card, imgW, imgH, tt.faceUp, testProjection)
			x, y := g.Apply(0, 0)
			if math.Abs(x-tt.wantX) > 1e-6 || math.Abs(y-tt.wantY) > 1e-6 {
				t.Errorf("top-left = (%.3f, %.3f), want (%.3f, %.3f)", x, y, tt.wantX, tt.wantY)
			}
			// 中心总是对齐牌的位置
			cx, cy := g.Apply(imgW/2, imgH/2)
			wx, wy := testProjection.WorldToScreen(tt.t.Position.X(), tt.t.Position.Z())
			if math.Abs(cx-wx) > 1e-6 || math.Abs(cy-wy) > 1e-6 {
				t.Errorf("center = (%.3f, %.3f), want (%.3f, %.3f)", cx, cy, wx, wy)
			}
		})
	}
}

func TestCardGeoMLiftScales(t *testing.T) {
	card := config.CardConfig{Width: 84, Height: 120}
	flat := CardGeoM(types.NewTransform(0, 0, 0, mgl64.QuatIdent()), card, 84, 120, false, testProjection)
	lifted := CardGeoM(types.NewTransform(0, 100, 0, mgl64.QuatIdent()), card, 84, 120, false, testProjection)

	fx, _ := flat.Apply(84, 0)
	lx, _ := lifted.Apply(84, 0)
	if lx <= fx {
		t.Errorf("lifted card right edge %.2f should be wider than flat %.2f", lx, fx)
	}
}
