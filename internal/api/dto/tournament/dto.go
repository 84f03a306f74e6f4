package tournament

type CreatePairingRequest struct {
	Round int            `json:"round"`
	Table int            `json:"table"`
	Seats map[string]int `json:"seats"` // seat code -> member id
}

type PairingDTO struct {
	Round int            `json:"round"`
	Table int            `json:"table"`
	Seats map[string]int `json:"seats"`
}

type RoundPairingsResponse struct {
	Round    int          `json:"round"`
	Pairings []PairingDTO `json:"pairings"`
}
