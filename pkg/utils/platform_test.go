//go:build !mobile

package utils

import "testing"

func TestPointerVerb(t *testing.T) {
	tests := []struct {
		name    string
		emulate string
		mobile  bool
		verb    string
	}{
		{"桌面", "", false, "Click"},
		{"模拟触屏", "1", true, "Tap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PICKUP52_MOBILE_EMULATE", tt.emulate)
			if IsMobile() != tt.mobile {
				t.Errorf("IsMobile() = %v, want %v", IsMobile(), tt.mobile)
			}
			if got := PointerVerb(); got != tt.verb {
				t.Errorf("PointerVerb() = %q, want %q", got, tt.verb)
			}
		})
	}
}
