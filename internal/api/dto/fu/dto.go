package fu

// CalculateRequest mirrors the live scoring form. Counts and han arrive as
// strings because the form may be half-filled; malformed values degrade to
// zero instead of erroring.
type CalculateRequest struct {
	Tsumo            bool   `json:"tsumo"`
	ClosedHand       bool   `json:"closed_hand"`
	SevenPairs       bool   `json:"seven_pairs"`
	Pinfu            bool   `json:"pinfu"`
	OpenAllSequences bool   `json:"open_all_sequences"`
	Han              string `json:"han"`
	Wait             string `json:"wait"` // open | closed | edge | pair
	Pair             string `json:"pair"` // none | dragon | seat | round | both

	OpenTripletSimple   string `json:"open_triplet_simple"`
	ClosedTripletSimple string `json:"closed_triplet_simple"`
	OpenTripletHonor    string `json:"open_triplet_honor"`
	ClosedTripletHonor  string `json:"closed_triplet_honor"`
	OpenKanSimple       string `json:"open_kan_simple"`
	ClosedKanSimple     string `json:"closed_kan_simple"`
	OpenKanHonor        string `json:"open_kan_honor"`
	ClosedKanHonor      string `json:"closed_kan_honor"`
}

type CalculateResponse struct {
	Fu int `json:"fu"`
}
