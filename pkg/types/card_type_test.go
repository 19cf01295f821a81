package types

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFullDeckUnique(t *testing.T) {
	deck := FullDeck()
	if len(deck) != DeckSize {
		t.Fatalf("FullDeck length: got %d, want %d", len(deck), DeckSize)
	}

	seen := make(map[CardID]bool)
	for _, id := range deck {
		if !id.Valid() {
			t.Errorf("invalid card in deck: %+v", id)
		}
		if seen[id] {
			t.Errorf("duplicate card: %s", id)
		}
		seen[id] = true
	}
}

func TestCardIDNames(t *testing.T) {
	tests := []struct {
		id   CardID
		key  string
		name string
	}{
		{CardID{RankAce, SuitSpades}, "A-spades", "Ace of Spades"},
		{CardID{RankTen, SuitHearts}, "10-hearts", "Ten of Hearts"},
		{CardID{RankQueen, SuitDiamonds}, "Q-diamonds", "Queen of Diamonds"},
		{CardID{RankTwo, SuitClubs}, "2-clubs", "Two of Clubs"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := tt.id.Key(); got != tt.key {
				t.Errorf("Key: got %q, want %q", got, tt.key)
			}
			if got := tt.id.Name(); got != tt.name {
				t.Errorf("Name: got %q, want %q", got, tt.name)
			}
		})
	}
}

func TestParseCardID(t *testing.T) {
	tests := []struct {
		input   string
		want    CardID
		wantErr bool
	}{
		{"Ace of Spades", CardID{RankAce, SuitSpades}, false},
		{"a-spades", CardID{RankAce, SuitSpades}, false},
		{"  K-hearts ", CardID{RankKing, SuitHearts}, false},
		{"Joker", CardID{}, true},
		{"", CardID{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCardID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCardID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCardID(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSuitColor(t *testing.T) {
	if SuitClubs.IsRed() || SuitSpades.IsRed() {
		t.Error("clubs and spades are black")
	}
	if !SuitHearts.IsRed() || !SuitDiamonds.IsRed() {
		t.Error("hearts and diamonds are red")
	}
}

func TestTransformYaw(t *testing.T) {
	for _, angle := range []float64{0, 0.5, -1.2, math.Pi / 2, 3} {
		tr := Transform{Rotation: mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0})}
		if got := tr.Yaw(); math.Abs(got-angle) > 1e-9 {
			t.Errorf("Yaw(%v): got %v", angle, got)
		}
	}
}

func TestTransformFaceUp(t *testing.T) {
	down := IdentityTransform()
	if down.FaceUp() {
		t.Error("identity transform should be face down")
	}

	up := Transform{Rotation: mgl64.QuatRotate(math.Pi, mgl64.Vec3{1, 0, 0})}
	if !up.FaceUp() {
		t.Error("card flipped about X should be face up")
	}
}

func TestTransformTranslated(t *testing.T) {
	base := NewTransform(1, 2, 3, mgl64.QuatIdent())
	moved := base.Translated(mgl64.Vec3{0, 0.5, 0})

	if moved.Position != (mgl64.Vec3{1, 2.5, 3}) {
		t.Errorf("Translated: got %v", moved.Position)
	}
	if base.Position != (mgl64.Vec3{1, 2, 3}) {
		t.Error("Translated should not modify the receiver")
	}
}
