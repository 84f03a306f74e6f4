package mahjong

import (
	"errors"
	"testing"
)

func assertCode(t *testing.T, err error, want ErrorCode) {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Code != want {
		t.Errorf("code = %v, want %v", verr.Code, want)
	}
}

func TestValidateHandMultiplicity(t *testing.T) {
	t.Run("four copies of a regular tile are fine", func(t *testing.T) {
		if err := ValidateHandMultiplicity([]string{"P2", "P2", "P2", "P2"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("five copies exceed the limit", func(t *testing.T) {
		err := ValidateHandMultiplicity([]string{"P2", "P2", "P2", "P2", "P2"})
		assertCode(t, err, CodeMultiplicityExceeded)
	})

	t.Run("red five twice exceeds the limit", func(t *testing.T) {
		err := ValidateHandMultiplicity([]string{"M5R", "M5R"})
		assertCode(t, err, CodeMultiplicityExceeded)

		var verr *ValidationError
		errors.As(err, &verr)
		if verr.TileID != "M5R" {
			t.Errorf("tile id = %q, want M5R", verr.TileID)
		}
	})

	t.Run("one red five is fine", func(t *testing.T) {
		if err := ValidateHandMultiplicity([]string{"M5R", "M5", "M5", "M5", "M5"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unknown id is rejected", func(t *testing.T) {
		err := ValidateHandMultiplicity([]string{"M1", "XX"})
		assertCode(t, err, CodeInvalidTileReference)
	})
}

func TestValidateHandSize(t *testing.T) {
	hand := make([]string, DiscardHandSize)
	for i := range hand {
		hand[i] = "M1"
	}
	if err := ValidateHandSize(hand, DiscardHandSize); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := ValidateHandSize(hand[:13], DiscardHandSize)
	assertCode(t, err, CodeMalformedHandSize)
}

func TestValidateResponseKeys(t *testing.T) {
	hand := []string{"M1", "M2", "E", "E"}

	if err := ValidateResponseKeys([]string{"M1", "E"}, hand); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// P5 is a perfectly valid catalog id, but it is not in this hand.
	err := ValidateResponseKeys([]string{"P5"}, hand)
	assertCode(t, err, CodeOrphanResponseKey)
}

func TestValidateMeldSet(t *testing.T) {
	triplet := Meld{Kind: MeldTriplet, TileIDs: []string{"E", "E", "E"}}
	kan := Meld{Kind: MeldKan, TileIDs: []string{"P2", "P2", "P2", "P2"}}

	t.Run("four melds are fine", func(t *testing.T) {
		melds := []Meld{
			triplet,
			kan,
			{Kind: MeldSequence, TileIDs: []string{"M1", "M2", "M3"}},
			{Kind: MeldTriplet, TileIDs: []string{"S9", "S9", "S9"}},
		}
		if err := ValidateMeldSet(melds); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("five melds are too many", func(t *testing.T) {
		melds := []Meld{triplet, triplet, triplet, triplet, kan}
		assertCode(t, ValidateMeldSet(melds), CodeTooManyMelds)
	})

	t.Run("kan must have four tiles", func(t *testing.T) {
		bad := Meld{Kind: MeldKan, TileIDs: []string{"P2", "P2", "P2"}}
		assertCode(t, ValidateMeldSet([]Meld{bad}), CodeTooManyMelds)
	})

	t.Run("meld tiles must resolve", func(t *testing.T) {
		bad := Meld{Kind: MeldTriplet, TileIDs: []string{"E", "E", "ZZ"}}
		assertCode(t, ValidateMeldSet([]Meld{bad}), CodeInvalidTileReference)
	})
}

func TestValidateMeldCounts(t *testing.T) {
	if err := ValidateMeldCounts(MeldCounts{OpenTripletSimple: 2, ClosedKanHonor: 2}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := ValidateMeldCounts(MeldCounts{OpenTripletSimple: 3, ClosedKanHonor: 2})
	assertCode(t, err, CodeTooManyMelds)
}

func TestValidatePairing(t *testing.T) {
	good := Pairing{
		Round: 1,
		Table: 1,
		Seats: map[string]int{"E": 10, "S": 11, "W": 12, "N": 13},
	}

	t.Run("valid pairing with no siblings", func(t *testing.T) {
		if err := ValidatePairing(good, nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing seat", func(t *testing.T) {
		p := Pairing{Round: 1, Table: 1, Seats: map[string]int{"E": 10, "S": 11, "W": 12}}
		assertCode(t, ValidatePairing(p, nil), CodeDuplicatePairing)
	})

	t.Run("unknown seat code", func(t *testing.T) {
		p := Pairing{Round: 1, Table: 1, Seats: map[string]int{"E": 10, "S": 11, "W": 12, "X": 13}}
		assertCode(t, ValidatePairing(p, nil), CodeDuplicatePairing)
	})

	t.Run("player seated twice", func(t *testing.T) {
		p := Pairing{Round: 1, Table: 1, Seats: map[string]int{"E": 10, "S": 10, "W": 12, "N": 13}}
		assertCode(t, ValidatePairing(p, nil), CodeDuplicatePairing)
	})

	t.Run("table already used in round", func(t *testing.T) {
		sibling := Pairing{Round: 1, Table: 1, Seats: map[string]int{"E": 20, "S": 21, "W": 22, "N": 23}}
		assertCode(t, ValidatePairing(good, []Pairing{sibling}), CodeDuplicatePairing)
	})

	t.Run("player already paired in round", func(t *testing.T) {
		sibling := Pairing{Round: 1, Table: 2, Seats: map[string]int{"E": 10, "S": 21, "W": 22, "N": 23}}
		assertCode(t, ValidatePairing(good, []Pairing{sibling}), CodeDuplicatePairing)
	})

	t.Run("other rounds do not collide", func(t *testing.T) {
		sibling := Pairing{Round: 2, Table: 1, Seats: map[string]int{"E": 10, "S": 11, "W": 12, "N": 13}}
		if err := ValidatePairing(good, []Pairing{sibling}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
