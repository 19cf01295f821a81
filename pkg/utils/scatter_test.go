package utils

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// TestScatterTenByTenRegion 10×10 区域内 52 张牌全部落在 [-5, 5]
func TestScatterTenByTenRegion(t *testing.T) {
	region := RegionFromExtent(10, 10, 0, 5.2)

	for _, dist := range []ScatterDistribution{ScatterUniform, ScatterClustered} {
		t.Run(string(dist), func(t *testing.T) {
			transforms, err := ScatterTransforms(newTestRand(7), region, 52, ScatterParams{
				Distribution:  dist,
				Clusters:      3,
				ClusterSpread: 0.4,
				MaxTilt:       0.05,
			})
			if err != nil {
				t.Fatalf("ScatterTransforms error: %v", err)
			}
			if len(transforms) != 52 {
				t.Fatalf("got %d transforms, want 52", len(transforms))
			}

			for i, tr := range transforms {
				x, y, z := tr.Position.X(), tr.Position.Y(), tr.Position.Z()
				if x < -5 || x > 5 || z < -5 || z > 5 {
					t.Errorf("card %d outside 10x10 region: x=%.3f z=%.3f", i, x, z)
				}
				if y < 0 || y > 5.2 {
					t.Errorf("card %d outside height range: y=%.3f", i, y)
				}
				if !region.Contains(tr.Position) {
					t.Errorf("card %d not contained in region: %v", i, tr.Position)
				}
			}
		})
	}
}

// TestScatterDeterministic 同一种子得到完全相同的散布
func TestScatterDeterministic(t *testing.T) {
	region := RegionFromExtent(20, 12, 0, 1)
	params := ScatterParams{MaxTilt: 0.1}

	a, err := ScatterTransforms(newTestRand(42), region, 52, params)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ScatterTransforms(newTestRand(42), region, 52, params)
	if err != nil {
		t.Fatal(err)
	}
	c, err := ScatterTransforms(newTestRand(43), region, 52, params)
	if err != nil {
		t.Fatal(err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("transform %d differs for identical seeds: %v vs %v", i, a[i], b[i])
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical scatter")
	}
}

// TestScatterLayering 后发的牌高度不低于先发的牌
func TestScatterLayering(t *testing.T) {
	transforms, err := ScatterTransforms(newTestRand(1), RegionFromExtent(4, 4, 0, 5.2), 52, ScatterParams{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(transforms); i++ {
		if transforms[i].Position.Y() < transforms[i-1].Position.Y() {
			t.Errorf("card %d lies below card %d", i, i-1)
		}
	}
}

// TestScatterRotation 偏航覆盖整圈，倾斜角受限
func TestScatterRotation(t *testing.T) {
	maxTilt := 0.08
	transforms, err := ScatterTransforms(newTestRand(3), RegionFromExtent(4, 4, 0, 1), 200, ScatterParams{MaxTilt: maxTilt})
	if err != nil {
		t.Fatal(err)
	}

	var minYaw, maxYaw float64
	for _, tr := range transforms {
		yaw := tr.Yaw()
		minYaw = math.Min(minYaw, yaw)
		maxYaw = math.Max(maxYaw, yaw)

		// 牌背法线与世界 Y 的夹角不超过两个轴倾斜之和
		up := tr.Up()
		if angle := math.Acos(math.Min(1, up.Y())); angle > 2*maxTilt+1e-9 {
			t.Errorf("tilt %.4f exceeds bound %.4f", angle, 2*maxTilt)
		}
		if tr.FaceUp() {
			t.Error("scattered cards must rest face down")
		}
	}
	if minYaw > -2 || maxYaw < 2 {
		t.Errorf("yaw range too narrow: [%.2f, %.2f]", minYaw, maxYaw)
	}
}

func TestScatterInvalidInput(t *testing.T) {
	rng := newTestRand(1)
	tests := []struct {
		name      string
		region    ScatterRegion
		count     int
		params    ScatterParams
		// regionErr 期望错误是否为 ErrInvalidRegion
		regionErr bool
	}{
		{"zero width", RegionFromExtent(0, 10, 0, 1), 52, ScatterParams{}, true},
		{"zero depth", RegionFromExtent(10, 0, 0, 1), 52, ScatterParams{}, true},
		{"negative width", ScatterRegion{MinX: 1, MaxX: -1, MinZ: -1, MaxZ: 1}, 52, ScatterParams{}, true},
		{"reversed height", RegionFromExtent(10, 10, 2, 1), 52, ScatterParams{}, true},
		{"infinite width", RegionFromExtent(math.Inf(1), 10, 0, 5.2), 52, ScatterParams{}, true},
		{"nan depth", RegionFromExtent(10, math.NaN(), 0, 5.2), 52, ScatterParams{}, true},
		{"infinite height", RegionFromExtent(10, 10, 0, math.Inf(1)), 52, ScatterParams{}, true},
		{"negative infinite floor", RegionFromExtent(10, 10, math.Inf(-1), 1), 52, ScatterParams{}, true},
		{"no cards", RegionFromExtent(10, 10, 0, 1), 0, ScatterParams{}, false},
		{"unknown distribution", RegionFromExtent(10, 10, 0, 1), 52, ScatterParams{Distribution: "spiral"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScatterTransforms(rng, tt.region, tt.count, tt.params)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidRegion); got != tt.regionErr {
				t.Errorf("errors.Is(err, ErrInvalidRegion) = %v, want %v (err=%v)", got, tt.regionErr, err)
			}
		})
	}

	if _, err := ScatterTransforms(nil, RegionFromExtent(1, 1, 0, 0), 1, ScatterParams{}); err == nil {
		t.Error("nil rng should be rejected")
	}
}
