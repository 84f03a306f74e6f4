package mahjong

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// idHexLength is the truncated digest length used as the natural key.
const idHexLength = 16

// GenerateID returns the canonical identifier of a discard-quiz hand. Hands
// that are permutations of the same tile multiset under the same dora
// indicator, seat and round wind always hash to the same id. Computed once at
// creation time and immutable for the life of the record.
func GenerateID(handTileIDs []string, doraIndicator, seat, roundWind string) string {
	canonical := strings.Join(sortedCopy(handTileIDs), ",") +
		contextSuffix(doraIndicator, seat, roundWind)
	return digest(canonical)
}

// GenerateReadableID is the human-debuggable variant: grouped tile counts
// ("M1:2,M2:1") under the same canonical ordering and context suffix. Not
// hashed.
func GenerateReadableID(handTileIDs []string, doraIndicator, seat, roundWind string) string {
	sorted := sortedCopy(handTileIDs)
	var groups []string
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		groups = append(groups, sorted[i]+":"+strconv.Itoa(j-i))
		i = j
	}
	return strings.Join(groups, ",") + contextSuffix(doraIndicator, seat, roundWind)
}

// SeatState is the per-seat slice of a decision scenario that feeds the
// identifier: concealed hand (order-independent), melds and discard history
// (both order-preserving).
type SeatState struct {
	Seat        string
	HandTileIDs []string
	Melds       []Meld
	Discards    []string
}

// GenerateDecisionID identifies a four-player decision scenario. Seats are
// canonicalized into E/S/W/N order, dora indicators are sorted, the round
// wind closes the string; hashing matches GenerateID.
func GenerateDecisionID(seats []SeatState, doraIndicators []string, roundWind string) string {
	ordered := make([]SeatState, 0, len(seats))
	for _, code := range seatOrder {
		for _, s := range seats {
			if s.Seat == code {
				ordered = append(ordered, s)
			}
		}
	}

	var b strings.Builder
	for i, s := range ordered {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(s.Seat)
		b.WriteByte(':')
		b.WriteString(strings.Join(sortedCopy(s.HandTileIDs), ","))
		b.WriteByte('/')
		for j, m := range s.Melds {
			if j > 0 {
				b.WriteByte('+')
			}
			b.WriteString(encodeMeld(m))
		}
		b.WriteByte('/')
		b.WriteString(strings.Join(s.Discards, ","))
	}
	b.WriteString("|dora:")
	b.WriteString(strings.Join(sortedCopy(doraIndicators), ","))
	b.WriteString("|round:")
	b.WriteString(roundWind)

	return digest(b.String())
}

func encodeMeld(m Meld) string {
	open := "c"
	if m.Open {
		open = "o"
	}
	return fmt.Sprintf("%s%s(%s)", open, m.Kind, strings.Join(sortedCopy(m.TileIDs), ","))
}

func contextSuffix(doraIndicator, seat, roundWind string) string {
	return "|dora:" + doraIndicator + "|seat:" + seat + "|round:" + roundWind
}

func digest(canonical string) string {
	h := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(h[:])[:idHexLength]
}

func sortedCopy(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	return out
}
