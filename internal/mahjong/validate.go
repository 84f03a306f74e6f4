package mahjong

import "fmt"

const (
	// DiscardHandSize is 13 concealed tiles plus the draw.
	DiscardHandSize = 14

	maxTileCopies = 4
	maxRedCopies  = 1
	maxMelds      = 4
	pairingSeats  = 4
)

// MeldKind distinguishes the three meld shapes.
type MeldKind int

const (
	MeldSequence MeldKind = iota
	MeldTriplet
	MeldKan
)

func (k MeldKind) String() string {
	switch k {
	case MeldSequence:
		return "sequence"
	case MeldTriplet:
		return "triplet"
	case MeldKan:
		return "kan"
	default:
		return "unknown"
	}
}

// Meld is a claimed or self-drawn group of 3-4 tiles. Open melds record the
// seat the claimed tile came from and its index in that seat's discard order.
type Meld struct {
	Kind         MeldKind
	TileIDs      []string
	Open         bool
	FromSeat     string
	ClaimedIndex int
}

// Pairing assigns four players to the four seats of one table in a round.
type Pairing struct {
	Round int
	Table int
	Seats map[string]int // seat code -> player id
}

// ValidateHandMultiplicity resolves every tile id and checks occurrence
// counts: at most 4 copies of a regular tile, at most 1 of a red five.
func ValidateHandMultiplicity(tileIDs []string) error {
	counts := make(map[string]int, len(tileIDs))
	for _, id := range tileIDs {
		t, err := Resolve(id)
		if err != nil {
			return err
		}

		limit := maxTileCopies
		if t.Red {
			limit = maxRedCopies
		}

		counts[id]++
		if counts[id] > limit {
			return &ValidationError{
				Code:   CodeMultiplicityExceeded,
				TileID: id,
				Detail: fmt.Sprintf("more than %d copies", limit),
			}
		}
	}
	return nil
}

// ValidateHandSize checks the exact tile count for the scenario kind.
func ValidateHandSize(tileIDs []string, want int) error {
	if len(tileIDs) != want {
		return &ValidationError{
			Code:   CodeMalformedHandSize,
			Detail: fmt.Sprintf("expected %d tiles, got %d", want, len(tileIDs)),
		}
	}
	return nil
}

// ValidateResponseKeys checks that every response key is a tile actually held
// by the hand. A key may be a perfectly valid catalog id and still be orphan.
func ValidateResponseKeys(keys []string, handTileIDs []string) error {
	held := make(map[string]struct{}, len(handTileIDs))
	for _, id := range handTileIDs {
		held[id] = struct{}{}
	}
	for _, key := range keys {
		if _, ok := held[key]; !ok {
			return &ValidationError{
				Code:   CodeOrphanResponseKey,
				TileID: key,
				Detail: "response key not present in hand",
			}
		}
	}
	return nil
}

// ValidateMeldSet checks the shape of each meld and that the hand carries at
// most 4 melds in total.
func ValidateMeldSet(melds []Meld) error {
	if len(melds) > maxMelds {
		return &ValidationError{
			Code:   CodeTooManyMelds,
			Detail: fmt.Sprintf("%d melds, at most %d allowed", len(melds), maxMelds),
		}
	}
	for _, m := range melds {
		want := 3
		if m.Kind == MeldKan {
			want = 4
		}
		if len(m.TileIDs) != want {
			return &ValidationError{
				Code:   CodeTooManyMelds,
				Detail: fmt.Sprintf("%s meld must have %d tiles, got %d", m.Kind, want, len(m.TileIDs)),
			}
		}
		for _, id := range m.TileIDs {
			if _, err := Resolve(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateMeldCounts bounds the aggregate triplet/kan count of a fu input.
// The calculator itself never re-checks this.
func ValidateMeldCounts(c MeldCounts) error {
	if c.Total() > maxMelds {
		return &ValidationError{
			Code:   CodeTooManyMelds,
			Detail: fmt.Sprintf("%d melds, at most %d allowed", c.Total(), maxMelds),
		}
	}
	return nil
}

// ValidatePairing enforces the table-assignment invariants: exactly 4 unique
// seats and players, and a table number and player set disjoint from the
// sibling pairings of the same round.
func ValidatePairing(p Pairing, siblings []Pairing) error {
	if len(p.Seats) != pairingSeats {
		return &ValidationError{
			Code:   CodeDuplicatePairing,
			Detail: fmt.Sprintf("expected %d seats, got %d", pairingSeats, len(p.Seats)),
		}
	}

	players := make(map[int]struct{}, pairingSeats)
	for seat, player := range p.Seats {
		if !ValidSeat(seat) {
			return &ValidationError{
				Code:   CodeDuplicatePairing,
				Detail: "unknown seat code " + seat,
			}
		}
		if _, ok := players[player]; ok {
			return &ValidationError{
				Code:   CodeDuplicatePairing,
				Detail: fmt.Sprintf("player %d seated twice", player),
			}
		}
		players[player] = struct{}{}
	}

	for _, other := range siblings {
		if other.Round != p.Round {
			continue
		}
		if other.Table == p.Table {
			return &ValidationError{
				Code:   CodeDuplicatePairing,
				Detail: fmt.Sprintf("table %d already paired in round %d", p.Table, p.Round),
			}
		}
		for _, player := range other.Seats {
			if _, ok := players[player]; ok {
				return &ValidationError{
					Code:   CodeDuplicatePairing,
					Detail: fmt.Sprintf("player %d already paired in round %d", player, p.Round),
				}
			}
		}
	}
	return nil
}
