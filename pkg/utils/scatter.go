package utils

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/decker502/pickup52/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidRegion 散布区域配置非法（面积为零或高度范围颠倒）
var ErrInvalidRegion = errors.New("invalid scatter region")

// ScatterDistribution 散布分布策略
type ScatterDistribution string

const (
	// ScatterUniform 在区域内均匀分布
	ScatterUniform ScatterDistribution = "uniform"
	// ScatterClustered 围绕若干随机中心成堆分布
	ScatterClustered ScatterDistribution = "clustered"
)

// ScatterRegion 牌中心允许落点的包围盒（世界坐标）
type ScatterRegion struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
	MinY, MaxY float64
}

// RegionFromExtent 以原点为中心、宽 width 深 depth 的区域，高度范围 [minY, maxY]
func RegionFromExtent(width, depth, minY, maxY float64) ScatterRegion {
	return ScatterRegion{
		MinX: -width / 2, MaxX: width / 2,
		MinZ: -depth / 2, MaxZ: depth / 2,
		MinY: minY, MaxY: maxY,
	}
}

// Validate 检查区域是否可用
func (r ScatterRegion) Validate() error {
	for _, v := range []float64{r.MinX, r.MaxX, r.MinZ, r.MaxZ, r.MinY, r.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: bounds must be finite, got x[%v, %v] z[%v, %v] y[%v, %v]",
				ErrInvalidRegion, r.MinX, r.MaxX, r.MinZ, r.MaxZ, r.MinY, r.MaxY)
		}
	}
	if !(r.MaxX > r.MinX) {
		return fmt.Errorf("%w: x range [%.2f, %.2f] is empty", ErrInvalidRegion, r.MinX, r.MaxX)
	}
	if !(r.MaxZ > r.MinZ) {
		return fmt.Errorf("%w: z range [%.2f, %.2f] is empty", ErrInvalidRegion, r.MinZ, r.MaxZ)
	}
	if r.MaxY < r.MinY {
		return fmt.Errorf("%w: y range [%.2f, %.2f] is reversed", ErrInvalidRegion, r.MinY, r.MaxY)
	}
	return nil
}

// Contains 检查点是否落在区域内（含边界）
func (r ScatterRegion) Contains(p mgl64.Vec3) bool {
	return p.X() >= r.MinX && p.X() <= r.MaxX &&
		p.Z() >= r.MinZ && p.Z() <= r.MaxZ &&
		p.Y() >= r.MinY && p.Y() <= r.MaxY
}

// ScatterParams 散布参数
type ScatterParams struct {
	// Distribution 分布策略，空值等同于 ScatterUniform
	Distribution ScatterDistribution
	// Clusters 成堆分布的堆数
	Clusters int
	// ClusterSpread 每堆的标准差，占区域半宽的比例
	ClusterSpread float64
	// MaxTilt 绕 X/Z 轴的最大倾斜角（弧度），模拟牌没有完全贴平
	MaxTilt float64
}

// ScatterTransforms 为 count 张牌计算随机初始变换
//
// 位置在 region 内按 params.Distribution 分布；高度按发牌顺序分层，
// 后发的牌在上面；旋转为随机偏航加小幅倾斜。不保证牌之间不重叠。
// 随机性完全来自 rng，同一种子得到同一结果。
func ScatterTransforms(rng *rand.Rand, region ScatterRegion, count int, params ScatterParams) ([]types.Transform, error) {
	if rng == nil {
		return nil, errors.New("scatter: nil random source")
	}
	if count <= 0 {
		return nil, fmt.Errorf("scatter: card count must be positive, got %d", count)
	}
	if err := region.Validate(); err != nil {
		return nil, err
	}

	var place func() (float64, float64)
	switch params.Distribution {
	case ScatterUniform, "":
		place = func() (float64, float64) {
			return uniformIn(rng, region.MinX, region.MaxX), uniformIn(rng, region.MinZ, region.MaxZ)
		}
	case ScatterClustered:
		place = clusteredPlacer(rng, region, params)
	default:
		return nil, fmt.Errorf("scatter: unknown distribution %q", params.Distribution)
	}

	layer := (region.MaxY - region.MinY) / float64(count)
	transforms := make([]types.Transform, 0, count)
	for i := 0; i < count; i++ {
		x, z := place()
		y := region.MinY + (float64(i)+rng.Float64())*layer
		transforms = append(transforms, types.Transform{
			Position: mgl64.Vec3{x, y, z},
			Rotation: scatterRotation(rng, params.MaxTilt),
		})
	}
	return transforms, nil
}

// scatterRotation 随机偏航 [-π, π) 加上绕 X、Z 的小角度倾斜
func scatterRotation(rng *rand.Rand, maxTilt float64) mgl64.Quat {
	yaw := -math.Pi + rng.Float64()*2*math.Pi
	tiltX := (rng.Float64()*2 - 1) * maxTilt
	tiltZ := (rng.Float64()*2 - 1) * maxTilt

	rot := mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0})
	rot = rot.Mul(mgl64.QuatRotate(tiltX, mgl64.Vec3{1, 0, 0}))
	rot = rot.Mul(mgl64.QuatRotate(tiltZ, mgl64.Vec3{0, 0, 1}))
	return rot.Normalize()
}

// clusteredPlacer 先随机选出若干堆中心，再围绕中心做高斯偏移并钳制回区域内
func clusteredPlacer(rng *rand.Rand, region ScatterRegion, params ScatterParams) func() (float64, float64) {
	clusters := params.Clusters
	if clusters <= 0 {
		clusters = 1
	}
	spread := params.ClusterSpread
	if spread <= 0 {
		spread = 0.25
	}

	centers := make([][2]float64, clusters)
	for i := range centers {
		centers[i] = [2]float64{
			uniformIn(rng, region.MinX, region.MaxX),
			uniformIn(rng, region.MinZ, region.MaxZ),
		}
	}
	sigmaX := spread * (region.MaxX - region.MinX) / 2
	sigmaZ := spread * (region.MaxZ - region.MinZ) / 2

	return func() (float64, float64) {
		c := centers[rng.IntN(len(centers))]
		x := clamp(c[0]+rng.NormFloat64()*sigmaX, region.MinX, region.MaxX)
		z := clamp(c[1]+rng.NormFloat64()*sigmaZ, region.MinZ, region.MaxZ)
		return x, z
	}
}

func uniformIn(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NewRoundRand 用一局的种子创建随机源
// 游戏和 deal 子命令都通过它取随机源，同一种子发出同一桌牌
func NewRoundRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
