package systems

import (
	"image/color"
	"log"
	"sort"

	"github.com/decker502/pickup52/pkg/components"
	"github.com/decker502/pickup52/pkg/config"
	"github.com/decker502/pickup52/pkg/ecs"
	"github.com/decker502/pickup52/pkg/game"
	"github.com/decker502/pickup52/pkg/types"
	"github.com/decker502/pickup52/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cameraHeight 俯视摄像机离桌面的高度（世界单位）
// 用来把牌的高度换算成近大远小的缩放
const cameraHeight = 1200.0

var (
	feltColor   = color.RGBA{0x1e, 0x6b, 0x3a, 0xff}
	borderColor = color.RGBA{0x5a, 0x3a, 0x1e, 0xff}
	pileColor   = color.RGBA{0xff, 0xff, 0xff, 0x50}
)

// RenderSystem 绘制桌面和所有牌
//
// 俯视正交投影，牌按高度 Y 从低到高绘制，后画的压在上面。
// 背面朝上的牌用牌背图，悬停时换成高亮牌背。
type RenderSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	projection      utils.Projection
	board           config.BoardConfig
	card            config.CardConfig
	pileTarget      types.Transform
	failedFaces     map[string]bool // 只记录一次的绘制错误
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager, cfg *config.GameConfig, projection utils.Projection) *RenderSystem {
	return &RenderSystem{
		entityManager:   em,
		resourceManager: rm,
		projection:      projection,
		board:           cfg.Board,
		card:            cfg.Card,
		pileTarget:      cfg.PickupTarget(),
		failedFaces:     make(map[string]bool),
	}
}

// Draw 绘制桌面、牌堆位置和所有牌
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawTable(screen)

	for _, id := range DrawOrder(s.entityManager) {
		s.drawCard(screen, id)
	}
}

// DrawOrder 返回牌的绘制顺序：高度 Y 升序，相同时按实体ID
func DrawOrder(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.CardComponent, *components.TransformComponent](em)
	heights := make(map[ecs.EntityID]float64, len(ids))
	for _, id := range ids {
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		heights[id] = transform.Position.Y()
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return heights[ids[i]] < heights[ids[j]]
	})
	return ids
}

func (s *RenderSystem) drawTable(screen *ebiten.Image) {
	x0, y0 := s.projection.WorldToScreen(-s.board.HalfWidth, s.board.HalfDepth)
	x1, y1 := s.projection.WorldToScreen(s.board.HalfWidth, -s.board.HalfDepth)
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), feltColor, false)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 6, borderColor, false)

	// 牌堆位置轮廓
	ppu := s.projection.PixelsPerUnit
	cx, cy := s.projection.WorldToScreen(s.pileTarget.Position.X(), s.pileTarget.Position.Z())
	w, h := s.card.Width*ppu, s.card.Height*ppu
	vector.StrokeRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), 2, pileColor, true)
}

func (s *RenderSystem) drawCard(screen *ebiten.Image, id ecs.EntityID) {
	card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
	transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

	var img *ebiten.Image
	if card.FaceUp {
		asset, ok := ecs.GetComponent[*components.CardAssetComponent](s.entityManager, id)
		if ok {
			face, err := s.resourceManager.FaceImage(*asset)
			if err != nil {
				if !s.failedFaces[asset.Key] {
					log.Printf("[RenderSystem] 牌面 %s 加载失败: %v", asset.Key, err)
					s.failedFaces[asset.Key] = true
				}
			} else {
				img = face
			}
		}
	}
	if img == nil {
		hovered := false
		if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
			hovered = clickable.IsHovered
		}
		img = s.resourceManager.BackImage(hovered)
	}

	bounds := img.Bounds()
	geoM := CardGeoM(transform.Transform, s.card, bounds.Dx(), bounds.Dy(), card.FaceUp, s.projection)

	// 抬起的牌投下阴影
	if lift := transform.Position.Y(); lift > 1 {
		shadow := &ebiten.DrawImageOptions{GeoM: geoM}
		shadow.GeoM.Translate(lift*0.15*s.projection.PixelsPerUnit, lift*0.15*s.projection.PixelsPerUnit)
		shadow.ColorScale.Scale(0, 0, 0, 0.35)
		screen.DrawImage(img, shadow)
	}

	op := &ebiten.DrawImageOptions{GeoM: geoM}
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// CardGeoM 计算把 imgW×imgH 的牌图画到屏幕上的仿射变换
//
// 图片中心对齐牌的位置，图片 x 轴沿牌的局部 X，图片向下沿局部 -Z。
// 倾斜的牌在俯视下会被压扁；高度越高画得越大。
// faceUp 时看到的是牌的另一面，沿局部 X 镜像一次使文字方向正确。
func CardGeoM(t types.Transform, card config.CardConfig, imgW, imgH int, faceUp bool, p utils.Projection) ebiten.GeoM {
	ax := t.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
	az := t.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	if faceUp {
		az = az.Mul(-1)
	}

	scale := p.PixelsPerUnit
	if h := t.Position.Y(); h < cameraHeight {
		scale *= cameraHeight / (cameraHeight - h)
	}
	sx := scale * card.Width / float64(imgW)
	sz := scale * card.Height / float64(imgH)

	var g ebiten.GeoM
	g.Translate(-float64(imgW)/2, -float64(imgH)/2)

	var m ebiten.GeoM
	m.SetElement(0, 0, sx*ax.X())
	m.SetElement(0, 1, -sz*az.X())
	m.SetElement(1, 0, -sx*ax.Z())
	m.SetElement(1, 1, sz*az.Z())
	g.Concat(m)

	cx, cy := p.WorldToScreen(t.Position.X(), t.Position.Z())
	g.Translate(cx, cy)
	return g
}
