package scenes

import (
	"image/color"

	"github.com/decker502/pickup52/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	backgroundColor = color.RGBA{0x10, 0x3a, 0x22, 0xff}
	textColor       = color.RGBA{0xf5, 0xf0, 0xe1, 0xff}
	accentColor     = color.RGBA{0xf2, 0xc1, 0x4e, 0xff}
)

// isPointInRect 检查点是否在矩形内（含边界）
func isPointInRect(px, py, x, y, width, height float64) bool {
	return px >= x && px <= x+width && py >= y && py <= y+height
}

// drawCenteredText 以 (centerX, centerY) 为中心绘制一行文字
func drawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, centerX, centerY float64, clr color.Color) {
	w, h := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX-w/2, centerY-h/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawText 从左上角 (x, y) 绘制一行文字
func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawWrappedText 按 maxWidth 换行后逐行居中绘制，第一行中心在 (centerX, topY)
func drawWrappedText(screen *ebiten.Image, str string, face *text.GoTextFace, centerX, topY, maxWidth float64, clr color.Color) {
	lineHeight := face.Size * 1.3
	for i, line := range utils.WrapText(str, face, maxWidth) {
		drawCenteredText(screen, line, face, centerX, topY+float64(i)*lineHeight, clr)
	}
}
