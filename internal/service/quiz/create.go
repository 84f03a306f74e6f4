package quiz

import (
	"club_backend/internal/mahjong"
	"club_backend/internal/model"
	"club_backend/internal/repository"
	"context"
	"errors"
	"fmt"
)

const decisionSeats = 4

// CreateDiscardQuiz validates a discard scenario definition, derives its
// canonical identifier and stores it. Re-creating an identical scenario is
// benign and returns the stored document.
func (s *serv) CreateDiscardQuiz(ctx context.Context, def model.DiscardQuiz) (*model.QuizScenario, error) {
	if err := mahjong.ValidateHandSize(def.Hand, mahjong.DiscardHandSize); err != nil {
		return nil, err
	}
	if err := mahjong.ValidateHandMultiplicity(def.Hand); err != nil {
		return nil, err
	}
	if _, err := mahjong.Resolve(def.DoraIndicator); err != nil {
		return nil, err
	}
	if err := validateWindCode(def.Seat); err != nil {
		return nil, err
	}
	if err := validateWindCode(def.RoundWind); err != nil {
		return nil, err
	}

	scenario := &model.QuizScenario{
		ID:         mahjong.GenerateID(def.Hand, def.DoraIndicator, def.Seat, def.RoundWind),
		ReadableID: mahjong.GenerateReadableID(def.Hand, def.DoraIndicator, def.Seat, def.RoundWind),
		Kind:       model.QuizDiscard,
		Discard:    &def,
		Responses:  map[string][]model.QuizResponse{},
	}

	return s.insert(ctx, scenario)
}

// CreateDecisionQuiz validates a four-player scenario definition and stores
// it under the table-wide canonical identifier.
func (s *serv) CreateDecisionQuiz(ctx context.Context, def model.DecisionQuiz) (*model.QuizScenario, error) {
	if len(def.Players) != decisionSeats {
		return nil, fmt.Errorf("decision quiz needs %d players, got %d", decisionSeats, len(def.Players))
	}
	if len(def.DoraIndicators) == 0 {
		return nil, errors.New("decision quiz needs at least one dora indicator")
	}
	for _, id := range def.DoraIndicators {
		if _, err := mahjong.Resolve(id); err != nil {
			return nil, err
		}
	}
	if err := validateWindCode(def.RoundWind); err != nil {
		return nil, err
	}

	seats := make(map[string]struct{}, decisionSeats)
	userSeats := 0
	var tableTiles []string

	for i := range def.Players {
		p := &def.Players[i]

		if err := validateWindCode(p.Seat); err != nil {
			return nil, err
		}
		if _, ok := seats[p.Seat]; ok {
			return nil, fmt.Errorf("seat %s assigned twice", p.Seat)
		}
		seats[p.Seat] = struct{}{}

		if p.IsUser {
			userSeats++
		}
		if p.Score == 0 {
			p.Score = s.cfg.StartingScore()
		}

		if err := mahjong.ValidateMeldSet(p.Melds); err != nil {
			return nil, err
		}
		if p.RiichiTile != "" && !contains(p.Discards, p.RiichiTile) {
			return nil, fmt.Errorf("riichi tile %s not in seat %s discards", p.RiichiTile, p.Seat)
		}

		tableTiles = append(tableTiles, p.Hand...)
		tableTiles = append(tableTiles, p.Discards...)
		for _, m := range p.Melds {
			tableTiles = append(tableTiles, m.TileIDs...)
		}
	}

	if userSeats != 1 {
		return nil, fmt.Errorf("decision quiz needs exactly one viewpoint player, got %d", userSeats)
	}

	// Multiplicity holds across the whole table: every copy of a tile in
	// any hand, meld or discard pile comes from the same physical set.
	if err := mahjong.ValidateHandMultiplicity(tableTiles); err != nil {
		return nil, err
	}

	states := make([]mahjong.SeatState, len(def.Players))
	for i, p := range def.Players {
		states[i] = mahjong.SeatState{
			Seat:        p.Seat,
			HandTileIDs: p.Hand,
			Melds:       p.Melds,
			Discards:    p.Discards,
		}
	}

	var user model.PlayerScenario
	for _, p := range def.Players {
		if p.IsUser {
			user = p
		}
	}

	scenario := &model.QuizScenario{
		ID:         mahjong.GenerateDecisionID(states, def.DoraIndicators, def.RoundWind),
		ReadableID: mahjong.GenerateReadableID(user.Hand, def.DoraIndicators[0], user.Seat, def.RoundWind),
		Kind:       model.QuizDecision,
		Decision:   &def,
		Responses:  map[string][]model.QuizResponse{},
	}

	return s.insert(ctx, scenario)
}

func (s *serv) insert(ctx context.Context, scenario *model.QuizScenario) (*model.QuizScenario, error) {
	err := s.repo.InsertScenario(ctx, scenario)
	if errors.Is(err, repository.ErrScenarioExists) {
		return s.repo.GetScenario(ctx, scenario.ID)
	}
	if err != nil {
		return nil, err
	}
	return scenario, nil
}

func validateWindCode(code string) error {
	if !mahjong.ValidSeat(code) {
		return fmt.Errorf("invalid wind code %q", code)
	}
	return nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
