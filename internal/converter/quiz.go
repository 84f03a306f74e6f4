package converter

import (
	dto "club_backend/internal/api/dto/quiz"
	"club_backend/internal/mahjong"
	"club_backend/internal/model"
	"fmt"
)

func ToDiscardQuiz(req dto.CreateDiscardQuizRequest) model.DiscardQuiz {
	return model.DiscardQuiz{
		Hand:          req.Hand,
		DoraIndicator: req.DoraIndicator,
		Seat:          req.Seat,
		RoundWind:     req.RoundWind,
	}
}

func ToDecisionQuiz(req dto.CreateDecisionQuizRequest) (model.DecisionQuiz, error) {
	players := make([]model.PlayerScenario, len(req.Players))
	for i, p := range req.Players {
		melds, err := toMelds(p.Melds)
		if err != nil {
			return model.DecisionQuiz{}, err
		}
		players[i] = model.PlayerScenario{
			Seat:       p.Seat,
			Hand:       p.Hand,
			Melds:      melds,
			Discards:   p.Discards,
			Score:      p.Score,
			IsUser:     p.IsUser,
			RiichiTile: p.RiichiTile,
		}
	}
	return model.DecisionQuiz{
		Players:        players,
		DoraIndicators: req.DoraIndicators,
		RoundWind:      req.RoundWind,
	}, nil
}

func toMelds(melds []dto.MeldDTO) ([]mahjong.Meld, error) {
	if len(melds) == 0 {
		return nil, nil
	}
	out := make([]mahjong.Meld, len(melds))
	for i, m := range melds {
		kind, err := toMeldKind(m.Kind)
		if err != nil {
			return nil, err
		}
		out[i] = mahjong.Meld{
			Kind:         kind,
			TileIDs:      m.Tiles,
			Open:         m.Open,
			FromSeat:     m.FromSeat,
			ClaimedIndex: m.ClaimedIndex,
		}
	}
	return out, nil
}

func toMeldKind(raw string) (mahjong.MeldKind, error) {
	switch raw {
	case "sequence":
		return mahjong.MeldSequence, nil
	case "triplet":
		return mahjong.MeldTriplet, nil
	case "kan":
		return mahjong.MeldKan, nil
	default:
		return 0, fmt.Errorf("unknown meld kind %q", raw)
	}
}

func ToScenarioResponse(s *model.QuizScenario, votes map[string]int) dto.ScenarioResponse {
	out := dto.ScenarioResponse{
		ID:         s.ID,
		ReadableID: s.ReadableID,
		Kind:       string(s.Kind),
		Responses:  toResponses(s.Responses),
		VoteCounts: votes,
	}
	if s.Discard != nil {
		out.Discard = &dto.CreateDiscardQuizRequest{
			Hand:          s.Discard.Hand,
			DoraIndicator: s.Discard.DoraIndicator,
			Seat:          s.Discard.Seat,
			RoundWind:     s.Discard.RoundWind,
		}
	}
	if s.Decision != nil {
		out.Decision = toDecisionDTO(s.Decision)
	}
	return out
}

func toDecisionDTO(d *model.DecisionQuiz) *dto.CreateDecisionQuizRequest {
	players := make([]dto.PlayerScenarioDTO, len(d.Players))
	for i, p := range d.Players {
		melds := make([]dto.MeldDTO, len(p.Melds))
		for j, m := range p.Melds {
			melds[j] = dto.MeldDTO{
				Kind:         m.Kind.String(),
				Tiles:        m.TileIDs,
				Open:         m.Open,
				FromSeat:     m.FromSeat,
				ClaimedIndex: m.ClaimedIndex,
			}
		}
		players[i] = dto.PlayerScenarioDTO{
			Seat:       p.Seat,
			Hand:       p.Hand,
			Melds:      melds,
			Discards:   p.Discards,
			Score:      p.Score,
			IsUser:     p.IsUser,
			RiichiTile: p.RiichiTile,
		}
	}
	return &dto.CreateDecisionQuizRequest{
		Players:        players,
		DoraIndicators: d.DoraIndicators,
		RoundWind:      d.RoundWind,
	}
}

func toResponses(responses map[string][]model.QuizResponse) map[string][]dto.ResponseDTO {
	out := make(map[string][]dto.ResponseDTO, len(responses))
	for tileID, list := range responses {
		converted := make([]dto.ResponseDTO, len(list))
		for i, r := range list {
			converted[i] = dto.ResponseDTO{
				UserID:    r.UserID,
				Rationale: r.Rationale,
				CreatedAt: r.CreatedAt,
			}
		}
		out[tileID] = converted
	}
	return out
}
