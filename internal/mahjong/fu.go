package mahjong

// WaitKind categorizes the shape the winning tile completed.
type WaitKind int

const (
	WaitOpen      WaitKind = iota // two-sided or dual wait, no fu
	WaitClosedGap                 // kanchan
	WaitEdge                      // penchan
	WaitPair                      // tanki
)

// PairKind categorizes the pair for fu purposes.
type PairKind int

const (
	PairSimple     PairKind = iota
	PairDragon
	PairSeatWind
	PairRoundWind
	PairDoubleWind // seat wind and round wind at once
)

// MeldCounts holds the per-category triplet and kan counts of a hand.
// "Honor" categories cover terminals as well; the fu table treats them alike.
type MeldCounts struct {
	OpenTripletSimple   int
	ClosedTripletSimple int
	OpenTripletHonor    int
	ClosedTripletHonor  int
	OpenKanSimple       int
	ClosedKanSimple     int
	OpenKanHonor        int
	ClosedKanHonor      int
}

// Total is the aggregate meld count across all categories.
func (c MeldCounts) Total() int {
	return nonNegative(c.OpenTripletSimple) +
		nonNegative(c.ClosedTripletSimple) +
		nonNegative(c.OpenTripletHonor) +
		nonNegative(c.ClosedTripletHonor) +
		nonNegative(c.OpenKanSimple) +
		nonNegative(c.ClosedKanSimple) +
		nonNegative(c.OpenKanHonor) +
		nonNegative(c.ClosedKanHonor)
}

// FuInput is a transient description of a winning hand's composition. It is
// never persisted; it exists only for one calculation.
type FuInput struct {
	Tsumo            bool
	Closed           bool
	SevenPairs       bool
	Pinfu            bool
	OpenAllSequences bool
	Han              int // only consulted for the open-all-sequences case
	Wait             WaitKind
	Pair             PairKind
	Melds            MeldCounts
}

const (
	fuSevenPairs    = 25
	fuPinfuTsumo    = 20
	fuBaseOpen      = 20
	fuBaseClosedRon = 30
	fuTsumo         = 2
)

// ComputeFu maps a hand composition to its fu score. Total and deterministic:
// no input combination errors, the special shapes short-circuit in priority
// order, and the result is rounded up to the nearest 10.
func ComputeFu(in FuInput) int {
	if in.SevenPairs {
		return fuSevenPairs
	}
	if in.Pinfu && in.Tsumo {
		return fuPinfuTsumo
	}
	if in.OpenAllSequences {
		// Open pinfu-shaped hand: the yaku is lost, which moves the
		// minimum tier when it was the hand's only han.
		if in.Han == 1 {
			return 30
		}
		return 20
	}

	fu := fuBaseOpen
	if !in.Tsumo && in.Closed {
		fu = fuBaseClosedRon
	}

	switch in.Wait {
	case WaitClosedGap, WaitEdge, WaitPair:
		fu += 2
	}

	switch in.Pair {
	case PairDragon, PairSeatWind, PairRoundWind:
		fu += 2
	case PairDoubleWind:
		fu += 4
	}

	fu += meldFu(in.Melds)

	if in.Tsumo && !in.Pinfu {
		fu += fuTsumo
	}

	return roundUpToTen(fu)
}

// meldFu sums the per-category triplet/kan values: open/closed doubles,
// honor-or-terminal doubles, kan is four times the triplet.
func meldFu(c MeldCounts) int {
	return 2*nonNegative(c.OpenTripletSimple) +
		4*nonNegative(c.ClosedTripletSimple) +
		4*nonNegative(c.OpenTripletHonor) +
		8*nonNegative(c.ClosedTripletHonor) +
		8*nonNegative(c.OpenKanSimple) +
		16*nonNegative(c.ClosedKanSimple) +
		16*nonNegative(c.OpenKanHonor) +
		32*nonNegative(c.ClosedKanHonor)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func roundUpToTen(fu int) int {
	return (fu + 9) / 10 * 10
}
