package converter

import (
	dto "club_backend/internal/api/dto/tournament"
	"club_backend/internal/mahjong"
)

func ToPairing(req dto.CreatePairingRequest) mahjong.Pairing {
	return mahjong.Pairing{
		Round: req.Round,
		Table: req.Table,
		Seats: req.Seats,
	}
}

func ToRoundPairingsResponse(round int, pairings []mahjong.Pairing) dto.RoundPairingsResponse {
	out := make([]dto.PairingDTO, len(pairings))
	for i, p := range pairings {
		out[i] = dto.PairingDTO{
			Round: p.Round,
			Table: p.Table,
			Seats: p.Seats,
		}
	}
	return dto.RoundPairingsResponse{
		Round:    round,
		Pairings: out,
	}
}
