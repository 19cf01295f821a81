package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"

	"github.com/decker502/pickup52/pkg/components"
	"github.com/decker502/pickup52/pkg/config"
	"github.com/decker502/pickup52/pkg/embedded"
	"github.com/decker502/pickup52/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ResourceManager is responsible for centralized management of card visuals.
// It resolves asset handles from the card catalog into ebiten images and caches
// them, so every face and back is built only once per run.
//
// Faces whose handle names an image path are decoded from the embedded assets
// (or the filesystem as a fallback); faces without an image are drawn
// procedurally from the handle's label and colour.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the Ebitengine
// game loop goroutine.
type ResourceManager struct {
	catalog    *config.CardAssetCatalog
	cardWidth  int
	cardHeight int

	imageCache map[string]*ebiten.Image // path -> decoded image
	faceCache  map[string]*ebiten.Image // asset key -> card face
	backCache  map[bool]*ebiten.Image   // hovered -> card back

	fontSource *text.GoTextFaceSource
}

// NewResourceManager creates a ResourceManager for the given catalog.
// cardWidth and cardHeight are the pixel size of generated card images.
func NewResourceManager(catalog *config.CardAssetCatalog, cardWidth, cardHeight int) *ResourceManager {
	return &ResourceManager{
		catalog:    catalog,
		cardWidth:  cardWidth,
		cardHeight: cardHeight,
		imageCache: make(map[string]*ebiten.Image),
		faceCache:  make(map[string]*ebiten.Image),
		backCache:  make(map[bool]*ebiten.Image),
	}
}

// Catalog returns the card asset catalog backing this manager.
func (rm *ResourceManager) Catalog() *config.CardAssetCatalog {
	return rm.catalog
}

// LoadImage loads an image and caches it for future use.
// Embedded resources are tried first, then the filesystem.
//
// Returns an error if the file cannot be found or decoded. It never panics.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache[path]; exists {
		return cached, nil
	}

	var reader io.Reader
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded image %s: %w", path, err)
		}
		reader = bytes.NewReader(data)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
		}
		defer file.Close()
		reader = file
	}

	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// Preload loads the card backs and builds every face image in the catalog.
// A back or face that names a missing or corrupt image is a fatal startup error.
func (rm *ResourceManager) Preload() error {
	for _, back := range []config.AssetHandle{rm.catalog.Back, rm.catalog.HoverBack} {
		if back.Image == "" {
			continue
		}
		if _, err := rm.LoadImage(back.Image); err != nil {
			return fmt.Errorf("card back %s: %w", back.Key, err)
		}
	}

	for _, id := range types.FullDeck() {
		handle, err := rm.catalog.Resolve(id)
		if err != nil {
			return err
		}
		if _, err := rm.FaceImage(components.CardAssetComponent{
			Key:   handle.Key,
			Image: handle.Image,
			Label: handle.Label,
			Color: handle.RGBA(),
		}); err != nil {
			return fmt.Errorf("card %s: %w", id.Name(), err)
		}
	}
	return nil
}

// FaceImage returns the face image for a card asset.
func (rm *ResourceManager) FaceImage(asset components.CardAssetComponent) (*ebiten.Image, error) {
	if cached, ok := rm.faceCache[asset.Key]; ok {
		return cached, nil
	}

	var img *ebiten.Image
	if asset.Image != "" {
		loaded, err := rm.LoadImage(asset.Image)
		if err != nil {
			return nil, err
		}
		img = loaded
	} else {
		img = rm.drawFace(asset.Label, asset.Color)
	}

	rm.faceCache[asset.Key] = img
	return img, nil
}

// BackImage returns the card back; hovered selects the highlight variant.
func (rm *ResourceManager) BackImage(hovered bool) *ebiten.Image {
	if cached, ok := rm.backCache[hovered]; ok {
		return cached
	}

	handle := rm.catalog.Back
	if hovered {
		handle = rm.catalog.HoverBack
	}

	var img *ebiten.Image
	if handle.Image != "" {
		if loaded, err := rm.LoadImage(handle.Image); err == nil {
			img = loaded
		}
	}
	if img == nil {
		img = rm.drawBack(handle.RGBA())
	}

	rm.backCache[hovered] = img
	return img
}

// Face returns a text face of the given size using the bundled font.
func (rm *ResourceManager) Face(size float64) *text.GoTextFace {
	if rm.fontSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
		if err != nil {
			// 字体随 ebiten 模块一起发布，解析失败说明依赖损坏
			panic(fmt.Sprintf("failed to load bundled font: %v", err))
		}
		rm.fontSource = src
	}
	return &text.GoTextFace{Source: rm.fontSource, Size: size}
}

func (rm *ResourceManager) drawFace(label string, ink color.RGBA) *ebiten.Image {
	w, h := float32(rm.cardWidth), float32(rm.cardHeight)
	img := ebiten.NewImage(rm.cardWidth, rm.cardHeight)

	vector.DrawFilledRect(img, 0, 0, w, h, color.RGBA{0xfa, 0xf7, 0xef, 0xff}, false)
	vector.StrokeRect(img, 1, 1, w-2, h-2, 2, color.RGBA{0x60, 0x60, 0x60, 0xff}, false)

	small := rm.Face(12)
	op := &text.DrawOptions{}
	op.GeoM.Translate(6, 4)
	op.ColorScale.ScaleWithColor(ink)
	text.Draw(img, label, small, op)

	// 中间放大号点数
	rank := label
	for i, r := range label {
		if r == ' ' {
			rank = label[:i]
			break
		}
	}
	big := rm.Face(36)
	bw, bh := text.Measure(rank, big, 0)
	op = &text.DrawOptions{}
	op.GeoM.Translate((float64(w)-bw)/2, (float64(h)-bh)/2)
	op.ColorScale.ScaleWithColor(ink)
	text.Draw(img, rank, big, op)

	return img
}

func (rm *ResourceManager) drawBack(fill color.RGBA) *ebiten.Image {
	w, h := float32(rm.cardWidth), float32(rm.cardHeight)
	img := ebiten.NewImage(rm.cardWidth, rm.cardHeight)

	vector.DrawFilledRect(img, 0, 0, w, h, color.RGBA{0xf0, 0xf0, 0xf0, 0xff}, false)
	vector.DrawFilledRect(img, 5, 5, w-10, h-10, fill, false)
	// 菱形花纹
	for y := float32(12); y < h-8; y += 12 {
		for x := float32(12); x < w-8; x += 12 {
			vector.DrawFilledRect(img, x-1.5, y-1.5, 3, 3, color.RGBA{0xff, 0xff, 0xff, 0x60}, false)
		}
	}
	return img
}
