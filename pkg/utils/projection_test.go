package utils

import (
	"math"
	"testing"
)

func TestProjectionRoundTrip(t *testing.T) {
	p := FitProjection(354, 270, 800, 600, 20)

	points := [][2]float64{{0, 0}, {354, 270}, {-354, -270}, {12.5, -80}}
	for _, pt := range points {
		sx, sy := p.WorldToScreen(pt[0], pt[1])
		x, z := p.ScreenToWorld(sx, sy)
		if math.Abs(x-pt[0]) > 1e-9 || math.Abs(z-pt[1]) > 1e-9 {
			t.Errorf("round trip %v -> (%v, %v) -> (%v, %v)", pt, sx, sy, x, z)
		}
	}
}

func TestFitProjectionKeepsBoardOnScreen(t *testing.T) {
	p := FitProjection(354, 270, 800, 600, 20)

	left, top := p.WorldToScreen(-354, 270)
	right, bottom := p.WorldToScreen(354, -270)

	if left < 20-1e-9 || top < 20-1e-9 || right > 780+1e-9 || bottom > 580+1e-9 {
		t.Errorf("board corners off screen: (%v, %v) (%v, %v)", left, top, right, bottom)
	}

	// +Z 在屏幕上方
	_, upper := p.WorldToScreen(0, 10)
	_, lower := p.WorldToScreen(0, -10)
	if upper >= lower {
		t.Error("world +Z should map to smaller screen Y")
	}
}

func TestPointInOrientedRect(t *testing.T) {
	tests := []struct {
		name   string
		px, pz float64
		yaw    float64
		want   bool
	}{
		{"center", 0, 0, 0, true},
		{"inside width", 1.9, 0, 0, true},
		{"outside width", 2.1, 0, 0, false},
		{"inside depth", 0, 2.9, 0, true},
		{"rotated quarter turn, depth now along x", 2.9, 0, math.Pi / 2, true},
		{"rotated quarter turn, width now along z", 0, 2.5, math.Pi / 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointInOrientedRect(tt.px, tt.pz, 0, 0, tt.yaw, 2, 3)
			if got != tt.want {
				t.Errorf("PointInOrientedRect(%v, %v, yaw=%v) = %v, want %v", tt.px, tt.pz, tt.yaw, got, tt.want)
			}
		})
	}
}
