package converter

import (
	dto "club_backend/internal/api/dto/fu"
	"club_backend/internal/mahjong"
	"testing"
)

func TestCountOrZero(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"  ", 0},
		{"abc", 0},
		{"-2", 0},
		{"0", 0},
		{"3", 3},
		{" 3 ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := countOrZero(tt.raw); got != tt.want {
				t.Errorf("countOrZero(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestToFuInputEnums(t *testing.T) {
	waits := []struct {
		raw  string
		want mahjong.WaitKind
	}{
		{"open", mahjong.WaitOpen},
		{"closed", mahjong.WaitClosedGap},
		{"edge", mahjong.WaitEdge},
		{"pair", mahjong.WaitPair},
		{"", mahjong.WaitOpen},
		{"bogus", mahjong.WaitOpen},
	}
	for _, tt := range waits {
		if got := ToFuInput(dto.CalculateRequest{Wait: tt.raw}).Wait; got != tt.want {
			t.Errorf("wait %q mapped to %v, want %v", tt.raw, got, tt.want)
		}
	}

	pairs := []struct {
		raw  string
		want mahjong.PairKind
	}{
		{"none", mahjong.PairSimple},
		{"dragon", mahjong.PairDragon},
		{"seat", mahjong.PairSeatWind},
		{"round", mahjong.PairRoundWind},
		{"both", mahjong.PairDoubleWind},
		{"", mahjong.PairSimple},
	}
	for _, tt := range pairs {
		if got := ToFuInput(dto.CalculateRequest{Pair: tt.raw}).Pair; got != tt.want {
			t.Errorf("pair %q mapped to %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestToFuInputHalfFilledForm(t *testing.T) {
	req := dto.CalculateRequest{
		Tsumo:               true,
		ClosedHand:          true,
		Han:                 "2",
		OpenTripletSimple:   "1",
		ClosedTripletHonor:  "oops",
		ClosedKanHonor:      "-1",
		ClosedTripletSimple: "",
	}

	in := ToFuInput(req)
	if !in.Tsumo || !in.Closed {
		t.Error("boolean flags not carried over")
	}
	if in.Han != 2 {
		t.Errorf("han = %d, want 2", in.Han)
	}
	if in.Melds.OpenTripletSimple != 1 {
		t.Errorf("open triplet simple = %d, want 1", in.Melds.OpenTripletSimple)
	}
	if in.Melds.ClosedTripletHonor != 0 || in.Melds.ClosedKanHonor != 0 || in.Melds.ClosedTripletSimple != 0 {
		t.Error("malformed counts did not degrade to zero")
	}
}
