package mahjong

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		id       string
		wantName string
		wantSuit Suit
		wantRed  bool
	}{
		{"M5", "Man 5", SuitMan, false},
		{"M5R", "Red Man 5", SuitMan, true},
		{"P1", "Pin 1", SuitPin, false},
		{"S9", "Sou 9", SuitSou, false},
		{"E", "East", SuitWind, false},
		{"S", "South", SuitWind, false},
		{"W", "West", SuitWind, false},
		{"w", "White Dragon", SuitDragon, false},
		{"r", "Red Dragon", SuitDragon, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tile, err := Resolve(tt.id)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.id, err)
			}
			if tile.Name != tt.wantName || tile.Suit != tt.wantSuit || tile.Red != tt.wantRed {
				t.Errorf("Resolve(%q) = %+v, want name %q suit %v red %v", tt.id, tile, tt.wantName, tt.wantSuit, tt.wantRed)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("M10")
	if err == nil {
		t.Fatal("expected error for unknown tile id")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Code != CodeInvalidTileReference {
		t.Errorf("code = %v, want invalid tile reference", verr.Code)
	}
	if verr.TileID != "M10" {
		t.Errorf("tile id = %q, want M10", verr.TileID)
	}
}

func TestCatalogSize(t *testing.T) {
	// 27 suited + 3 red fives + 4 winds + 3 dragons.
	if got := CatalogSize(); got != 37 {
		t.Errorf("CatalogSize() = %d, want 37", got)
	}
}

func TestTileClassification(t *testing.T) {
	tests := []struct {
		id         string
		simple     bool
		honor      bool
		termOrHonr bool
	}{
		{"M5", true, false, false},
		{"M5R", true, false, false},
		{"M2", true, false, false},
		{"M1", false, false, true},
		{"S9", false, false, true},
		{"E", false, true, true},
		{"g", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tile, err := Resolve(tt.id)
			if err != nil {
				t.Fatal(err)
			}
			if tile.IsSimple() != tt.simple {
				t.Errorf("IsSimple() = %v, want %v", tile.IsSimple(), tt.simple)
			}
			if tile.IsHonor() != tt.honor {
				t.Errorf("IsHonor() = %v, want %v", tile.IsHonor(), tt.honor)
			}
			if tile.IsTerminalOrHonor() != tt.termOrHonr {
				t.Errorf("IsTerminalOrHonor() = %v, want %v", tile.IsTerminalOrHonor(), tt.termOrHonr)
			}
		})
	}
}

func TestValidSeat(t *testing.T) {
	for _, code := range []string{"E", "S", "W", "N"} {
		if !ValidSeat(code) {
			t.Errorf("ValidSeat(%q) = false", code)
		}
	}
	for _, code := range []string{"", "X", "e", "w"} {
		if ValidSeat(code) {
			t.Errorf("ValidSeat(%q) = true", code)
		}
	}
}
