package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/decker502/pickup52/pkg/embedded"
	"github.com/decker502/pickup52/pkg/types"
	"github.com/decker502/pickup52/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 内嵌默认配置的路径
const DefaultGameConfigPath = "data/game.yaml"

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig 游戏配置
//
// 所有长度单位都是"世界单位"，默认一张牌宽 84、高 120，与牌面像素一致。
//
// 配置文件位置: data/game.yaml（内嵌），也可通过 --config 指定外部 YAML/TOML 文件
type GameConfig struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Board   BoardConfig   `yaml:"board" toml:"board"`
	Card    CardConfig    `yaml:"card" toml:"card"`
	Scatter ScatterConfig `yaml:"scatter" toml:"scatter"`
	Pickup  PickupConfig  `yaml:"pickup" toml:"pickup"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	// Width, Height 逻辑屏幕尺寸（像素）
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

// BoardConfig 桌面尺寸（以原点为中心）
type BoardConfig struct {
	HalfWidth float64 `yaml:"halfWidth" toml:"halfWidth"`
	HalfDepth float64 `yaml:"halfDepth" toml:"halfDepth"`
}

// CardConfig 牌的物理尺寸
type CardConfig struct {
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	Thickness float64 `yaml:"thickness" toml:"thickness"`
}

// ScatterConfig 发牌散布参数
type ScatterConfig struct {
	// Distribution "uniform" 或 "clustered"
	Distribution string `yaml:"distribution" toml:"distribution"`
	// Clusters 成堆分布的堆数
	Clusters int `yaml:"clusters" toml:"clusters"`
	// ClusterSpread 每堆标准差占桌面半宽的比例
	ClusterSpread float64 `yaml:"clusterSpread" toml:"clusterSpread"`
	// MaxTiltDegrees 牌没有贴平的最大倾斜角（度）
	MaxTiltDegrees float64 `yaml:"maxTiltDegrees" toml:"maxTiltDegrees"`
}

// PickupConfig 拾取动画参数
type PickupConfig struct {
	// DurationSeconds 单张牌动画时长（秒）
	DurationSeconds float64 `yaml:"durationSeconds" toml:"durationSeconds"`
	// Easing 缓动函数名称，见 utils.EasingByName
	Easing string `yaml:"easing" toml:"easing"`
	// LiftHeight 飞行途中抬起的最大高度
	LiftHeight float64 `yaml:"liftHeight" toml:"liftHeight"`
	// FlipAt 进度达到该值时牌翻到正面
	FlipAt float64 `yaml:"flipAt" toml:"flipAt"`
	// StackStep 牌堆中每张牌的高度增量，0 表示所有牌落在同一位置
	StackStep float64 `yaml:"stackStep" toml:"stackStep"`
	// Target 拾取牌堆的基准位置
	Target TargetConfig `yaml:"target" toml:"target"`
}

// TargetConfig 拾取目标变换
type TargetConfig struct {
	X          float64 `yaml:"x" toml:"x"`
	Y          float64 `yaml:"y" toml:"y"`
	Z          float64 `yaml:"z" toml:"z"`
	YawDegrees float64 `yaml:"yawDegrees" toml:"yawDegrees"`
	FaceUp     bool    `yaml:"faceUp" toml:"faceUp"`
}

// DefaultGameConfig 返回默认配置（与 data/game.yaml 保持一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{Width: 960, Height: 640, Title: "52 Card Pickup"},
		Board:  BoardConfig{HalfWidth: 354, HalfDepth: 270},
		Card:   CardConfig{Width: 84, Height: 120, Thickness: 0.1},
		Scatter: ScatterConfig{
			Distribution:   string(utils.ScatterUniform),
			Clusters:       4,
			ClusterSpread:  0.3,
			MaxTiltDegrees: 2,
		},
		Pickup: PickupConfig{
			DurationSeconds: 1.0,
			Easing:          "smoothstep",
			LiftHeight:      52,
			FlipAt:          0.5,
			StackStep:       0.1,
			Target:          TargetConfig{X: 396, Y: 0, Z: 210, FaceUp: true},
		},
	}
}

// LoadGameConfig 从磁盘加载配置，按扩展名选择 YAML 或 TOML 解码
//
// 参数:
//   - path: 配置文件路径（.yaml / .yml / .toml）
//
// 返回:
//   - *GameConfig: 校验通过的配置
//   - error: 读取、解析或校验失败
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
}

// LoadEmbeddedGameConfig 加载内嵌的默认配置（data/game.yaml）
func LoadEmbeddedGameConfig() (*GameConfig, error) {
	data, err := embedded.ReadFile(DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return ParseGameConfig(data, "yaml")
}

// ParseGameConfig 解析配置数据
// 未出现在数据中的字段保持默认值，因此配置文件只需写要覆盖的部分。
func ParseGameConfig(data []byte, format string) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	switch format {
	case "yaml", "yml", "":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse game config: %w", err)
		}
	case "toml":
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse game config: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse game config: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 桌面或牌尺寸非法会导致散布区域为空，这是启动期致命错误。
func (c *GameConfig) Validate() error {
	if err := c.checkFinite(); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Board.HalfWidth <= 0 || c.Board.HalfDepth <= 0 {
		return fmt.Errorf("%w: board half size (%.1f, %.1f) must be positive",
			ErrInvalidConfig, c.Board.HalfWidth, c.Board.HalfDepth)
	}
	if c.Card.Width <= 0 || c.Card.Height <= 0 || c.Card.Thickness < 0 {
		return fmt.Errorf("%w: card size %.1fx%.1fx%.2f", ErrInvalidConfig, c.Card.Width, c.Card.Height, c.Card.Thickness)
	}
	if err := c.ScatterRegion().Validate(); err != nil {
		return fmt.Errorf("%w: cards do not fit on the board: %v", ErrInvalidConfig, err)
	}

	switch utils.ScatterDistribution(c.Scatter.Distribution) {
	case utils.ScatterUniform, utils.ScatterClustered:
	default:
		return fmt.Errorf("%w: unknown scatter distribution %q", ErrInvalidConfig, c.Scatter.Distribution)
	}
	if c.Scatter.Clusters < 0 || c.Scatter.ClusterSpread < 0 {
		return fmt.Errorf("%w: negative cluster settings", ErrInvalidConfig)
	}
	if c.Scatter.MaxTiltDegrees < 0 || c.Scatter.MaxTiltDegrees > 45 {
		return fmt.Errorf("%w: maxTiltDegrees %.1f out of [0, 45]", ErrInvalidConfig, c.Scatter.MaxTiltDegrees)
	}

	if c.Pickup.DurationSeconds <= 0 {
		return fmt.Errorf("%w: pickup duration must be positive, got %.3f", ErrInvalidConfig, c.Pickup.DurationSeconds)
	}
	if _, ok := utils.EasingByName(c.Pickup.Easing); !ok {
		return fmt.Errorf("%w: unknown easing %q", ErrInvalidConfig, c.Pickup.Easing)
	}
	if c.Pickup.FlipAt < 0 || c.Pickup.FlipAt > 1 {
		return fmt.Errorf("%w: flipAt %.2f out of [0, 1]", ErrInvalidConfig, c.Pickup.FlipAt)
	}
	if c.Pickup.StackStep < 0 || c.Pickup.LiftHeight < 0 {
		return fmt.Errorf("%w: stackStep and liftHeight must not be negative", ErrInvalidConfig)
	}
	return nil
}

// checkFinite 拒绝 NaN 和 ±Inf：NaN 能绕过所有比较判断
func (c *GameConfig) checkFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"board.halfWidth", c.Board.HalfWidth},
		{"board.halfDepth", c.Board.HalfDepth},
		{"card.width", c.Card.Width},
		{"card.height", c.Card.Height},
		{"card.thickness", c.Card.Thickness},
		{"scatter.clusterSpread", c.Scatter.ClusterSpread},
		{"scatter.maxTiltDegrees", c.Scatter.MaxTiltDegrees},
		{"pickup.durationSeconds", c.Pickup.DurationSeconds},
		{"pickup.liftHeight", c.Pickup.LiftHeight},
		{"pickup.flipAt", c.Pickup.FlipAt},
		{"pickup.stackStep", c.Pickup.StackStep},
		{"pickup.target.x", c.Pickup.Target.X},
		{"pickup.target.y", c.Pickup.Target.Y},
		{"pickup.target.z", c.Pickup.Target.Z},
		{"pickup.target.yawDegrees", c.Pickup.Target.YawDegrees},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// ScatterRegion 牌中心的散布区域
// 水平方向为桌面减去半张牌，保证牌完整落在桌面上；
// 高度方向为整副牌叠起来的厚度。
func (c *GameConfig) ScatterRegion() utils.ScatterRegion {
	halfW := c.Board.HalfWidth - c.Card.Width/2
	halfD := c.Board.HalfDepth - c.Card.Height/2
	return utils.ScatterRegion{
		MinX: -halfW, MaxX: halfW,
		MinZ: -halfD, MaxZ: halfD,
		MinY: 0, MaxY: float64(types.DeckSize) * c.Card.Thickness,
	}
}

// ScatterParams 转换为散布算法参数
func (c *GameConfig) ScatterParams() utils.ScatterParams {
	return utils.ScatterParams{
		Distribution:  utils.ScatterDistribution(c.Scatter.Distribution),
		Clusters:      c.Scatter.Clusters,
		ClusterSpread: c.Scatter.ClusterSpread,
		MaxTilt:       mgl64.DegToRad(c.Scatter.MaxTiltDegrees),
	}
}

// PickupTarget 拾取牌堆的基准变换
func (c *GameConfig) PickupTarget() types.Transform {
	t := c.Pickup.Target
	rot := mgl64.QuatRotate(mgl64.DegToRad(t.YawDegrees), mgl64.Vec3{0, 1, 0})
	if t.FaceUp {
		rot = rot.Mul(mgl64.QuatRotate(math.Pi, mgl64.Vec3{1, 0, 0}))
	}
	return types.NewTransform(t.X, t.Y, t.Z, rot.Normalize())
}
