package quiz

import "time"

type MeldDTO struct {
	Kind         string   `json:"kind"` // sequence | triplet | kan
	Tiles        []string `json:"tiles"`
	Open         bool     `json:"open"`
	FromSeat     string   `json:"from_seat,omitempty"`
	ClaimedIndex int      `json:"claimed_index,omitempty"`
}

type CreateDiscardQuizRequest struct {
	Hand          []string `json:"hand"` // 14 tile ids
	DoraIndicator string   `json:"dora_indicator"`
	Seat          string   `json:"seat"`       // E | S | W | N
	RoundWind     string   `json:"round_wind"` // E | S | W | N
}

type PlayerScenarioDTO struct {
	Seat       string    `json:"seat"`
	Hand       []string  `json:"hand"`
	Melds      []MeldDTO `json:"melds,omitempty"`
	Discards   []string  `json:"discards,omitempty"`
	Score      int       `json:"score,omitempty"` // 0 means club default
	IsUser     bool      `json:"is_user"`
	RiichiTile string    `json:"riichi_tile,omitempty"`
}

type CreateDecisionQuizRequest struct {
	Players        []PlayerScenarioDTO `json:"players"`
	DoraIndicators []string            `json:"dora_indicators"`
	RoundWind      string              `json:"round_wind"`
}

type SubmitResponseRequest struct {
	TileID    string `json:"tile_id"`
	Rationale string `json:"rationale,omitempty"`
}

type ResponseDTO struct {
	UserID    int       `json:"user_id"`
	Rationale string    `json:"rationale,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ScenarioResponse struct {
	ID         string                   `json:"id"`
	ReadableID string                   `json:"readable_id"`
	Kind       string                   `json:"kind"`
	Discard    *CreateDiscardQuizRequest  `json:"discard,omitempty"`
	Decision   *CreateDecisionQuizRequest `json:"decision,omitempty"`
	Responses  map[string][]ResponseDTO `json:"responses"`
	VoteCounts map[string]int           `json:"vote_counts,omitempty"`
}

type ScenarioListResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
	Page      int                `json:"page"`
}
