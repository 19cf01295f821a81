package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/decker502/pickup52/pkg/embedded"
	"github.com/decker502/pickup52/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultCardAssetsPath 内嵌牌面资源清单路径
const DefaultCardAssetsPath = "data/cards.yaml"

// ErrMissingAsset 资源清单中找不到某张牌，启动期致命错误
var ErrMissingAsset = errors.New("missing card asset")

// AssetHandle 一张牌（或牌背）的视觉资源句柄
//
// Image 非空时从该路径加载图片；为空时由 ResourceManager 根据 Label 和 Color 程序化绘制。
type AssetHandle struct {
	Key   string `yaml:"key"`
	Image string `yaml:"image,omitempty"`
	Label string `yaml:"label,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// RGBA 解析 "#rrggbb" 颜色，解析失败返回黑色
func (h AssetHandle) RGBA() color.RGBA {
	c, err := parseHexColor(h.Color)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

// cardAssetManifest YAML 文件结构
type cardAssetManifest struct {
	Back      AssetHandle   `yaml:"back"`
	HoverBack AssetHandle   `yaml:"hoverBack"`
	Faces     []AssetHandle `yaml:"faces"`
}

// CardAssetCatalog rank+suit -> 资源句柄
type CardAssetCatalog struct {
	Back      AssetHandle
	HoverBack AssetHandle
	faces     map[types.CardID]AssetHandle
}

// LoadEmbeddedCardAssets 加载内嵌的 data/cards.yaml
func LoadEmbeddedCardAssets() (*CardAssetCatalog, error) {
	data, err := embedded.ReadFile(DefaultCardAssetsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read card asset manifest: %w", err)
	}
	return ParseCardAssets(data)
}

// ParseCardAssets 解析资源清单并校验完整性
//
// 清单必须恰好覆盖 52 张牌，每个 key 只出现一次，否则返回 ErrMissingAsset。
func ParseCardAssets(data []byte) (*CardAssetCatalog, error) {
	var manifest cardAssetManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse card asset manifest: %w", err)
	}

	catalog := &CardAssetCatalog{
		Back:      manifest.Back,
		HoverBack: manifest.HoverBack,
		faces:     make(map[types.CardID]AssetHandle, len(manifest.Faces)),
	}

	for _, face := range manifest.Faces {
		id, err := types.ParseCardID(face.Key)
		if err != nil {
			return nil, fmt.Errorf("card asset manifest: %w", err)
		}
		if _, dup := catalog.faces[id]; dup {
			return nil, fmt.Errorf("card asset manifest: duplicate entry %s", id)
		}
		if face.Color != "" {
			if _, err := parseHexColor(face.Color); err != nil {
				return nil, fmt.Errorf("card asset manifest: %s: %w", id, err)
			}
		}
		catalog.faces[id] = face
	}

	if err := catalog.Verify(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Resolve 查找一张牌的资源句柄
func (c *CardAssetCatalog) Resolve(id types.CardID) (AssetHandle, error) {
	h, ok := c.faces[id]
	if !ok {
		return AssetHandle{}, fmt.Errorf("%w: %s", ErrMissingAsset, id.Name())
	}
	return h, nil
}

// Verify 检查 52 张牌的资源是否齐全
func (c *CardAssetCatalog) Verify() error {
	for _, id := range types.FullDeck() {
		if _, err := c.Resolve(id); err != nil {
			return err
		}
	}
	return nil
}

// Len 返回已登记的牌面数量
func (c *CardAssetCatalog) Len() int {
	return len(c.faces)
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
