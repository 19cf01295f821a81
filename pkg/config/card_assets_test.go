package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/decker502/pickup52/pkg/embedded"
	"github.com/decker502/pickup52/pkg/types"
)

// buildManifest 生成包含给定牌的清单
func buildManifest(ids []types.CardID) string {
	var b strings.Builder
	b.WriteString("back: {key: back, color: \"#2850a0\"}\n")
	b.WriteString("hoverBack: {key: hover-back, color: \"#b03030\"}\n")
	b.WriteString("faces:\n")
	for _, id := range ids {
		fmt.Fprintf(&b, "  - {key: %s, label: \"%s\", color: \"#000000\"}\n", id.Key(), id.Rank)
	}
	return b.String()
}

func TestShippedCardAssetsComplete(t *testing.T) {
	embedded.Init(nil, os.DirFS("../.."))

	catalog, err := LoadEmbeddedCardAssets()
	if err != nil {
		t.Fatalf("LoadEmbeddedCardAssets() error: %v", err)
	}
	if catalog.Len() != types.DeckSize {
		t.Errorf("catalog size: got %d, want %d", catalog.Len(), types.DeckSize)
	}

	// 52 个句柄各不相同
	seen := make(map[string]bool)
	for _, id := range types.FullDeck() {
		h, err := catalog.Resolve(id)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", id, err)
		}
		if seen[h.Key] {
			t.Errorf("duplicate handle key %q", h.Key)
		}
		seen[h.Key] = true

		if id.Suit.IsRed() && h.RGBA().R < 0x80 {
			t.Errorf("%s should be drawn in red, got %v", id, h.RGBA())
		}
	}
}

func TestParseCardAssetsMissingCard(t *testing.T) {
	deck := types.FullDeck()
	// 去掉黑桃 A
	var partial []types.CardID
	for _, id := range deck {
		if id != (types.CardID{Rank: types.RankAce, Suit: types.SuitSpades}) {
			partial = append(partial, id)
		}
	}

	_, err := ParseCardAssets([]byte(buildManifest(partial)))
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("expected ErrMissingAsset, got %v", err)
	}
	if !strings.Contains(err.Error(), "Ace of Spades") {
		t.Errorf("error should name the missing card: %v", err)
	}
}

func TestParseCardAssetsRejectsBadEntries(t *testing.T) {
	deck := types.FullDeck()

	dup := append(append([]types.CardID{}, deck...), deck[0])
	if _, err := ParseCardAssets([]byte(buildManifest(dup))); err == nil {
		t.Error("duplicate entry should be rejected")
	}

	bad := buildManifest(deck) + "  - {key: Joker-red}\n"
	if _, err := ParseCardAssets([]byte(bad)); err == nil {
		t.Error("unknown card key should be rejected")
	}

	badColor := strings.Replace(buildManifest(deck), "#000000", "#zz0000", 1)
	if _, err := ParseCardAssets([]byte(badColor)); err == nil {
		t.Error("invalid color should be rejected")
	}
}

func TestAssetHandleRGBA(t *testing.T) {
	h := AssetHandle{Color: "#c0392b"}
	c := h.RGBA()
	if c.R != 0xc0 || c.G != 0x39 || c.B != 0x2b || c.A != 0xff {
		t.Errorf("RGBA: got %v", c)
	}

	if got := (AssetHandle{}).RGBA(); got.A != 0xff || got.R != 0 {
		t.Errorf("empty color should fall back to opaque black, got %v", got)
	}
}
