package converter

import (
	dto "club_backend/internal/api/dto/fu"
	"club_backend/internal/mahjong"
	"strconv"
	"strings"
)

// ToFuInput maps the scoring-form DTO onto the calculator input. The form may
// be half-filled, so empty or malformed numeric fields become zero and
// unknown enum strings fall back to their no-fu variants.
func ToFuInput(req dto.CalculateRequest) mahjong.FuInput {
	return mahjong.FuInput{
		Tsumo:            req.Tsumo,
		Closed:           req.ClosedHand,
		SevenPairs:       req.SevenPairs,
		Pinfu:            req.Pinfu,
		OpenAllSequences: req.OpenAllSequences,
		Han:              countOrZero(req.Han),
		Wait:             toWaitKind(req.Wait),
		Pair:             toPairKind(req.Pair),
		Melds: mahjong.MeldCounts{
			OpenTripletSimple:   countOrZero(req.OpenTripletSimple),
			ClosedTripletSimple: countOrZero(req.ClosedTripletSimple),
			OpenTripletHonor:    countOrZero(req.OpenTripletHonor),
			ClosedTripletHonor:  countOrZero(req.ClosedTripletHonor),
			OpenKanSimple:       countOrZero(req.OpenKanSimple),
			ClosedKanSimple:     countOrZero(req.ClosedKanSimple),
			OpenKanHonor:        countOrZero(req.OpenKanHonor),
			ClosedKanHonor:      countOrZero(req.ClosedKanHonor),
		},
	}
}

func countOrZero(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func toWaitKind(raw string) mahjong.WaitKind {
	switch raw {
	case "closed":
		return mahjong.WaitClosedGap
	case "edge":
		return mahjong.WaitEdge
	case "pair":
		return mahjong.WaitPair
	default:
		return mahjong.WaitOpen
	}
}

func toPairKind(raw string) mahjong.PairKind {
	switch raw {
	case "dragon":
		return mahjong.PairDragon
	case "seat":
		return mahjong.PairSeatWind
	case "round":
		return mahjong.PairRoundWind
	case "both":
		return mahjong.PairDoubleWind
	default:
		return mahjong.PairSimple
	}
}
