package quiz

import (
	"club_backend/internal/mahjong"
	"club_backend/internal/middleware"
	"club_backend/internal/model"
	"context"
	"errors"
	"time"
)

// SubmitResponse merges one answer into a scenario's responses map. The key
// is checked against the viewpoint hand before the write; the merge itself is
// a single atomic statement in the repository.
func (s *serv) SubmitResponse(ctx context.Context, quizID, tileID, rationale string) error {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return errors.New("user id not found in context")
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		scenario, err := s.repo.GetScenario(txCtx, quizID)
		if err != nil {
			return err
		}

		if err := mahjong.ValidateResponseKeys([]string{tileID}, scenario.UserHand()); err != nil {
			return err
		}

		return s.repo.MergeResponse(txCtx, quizID, tileID, model.QuizResponse{
			UserID:    userID,
			Rationale: rationale,
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		return err
	}

	s.statsRepo.RecordResponse(quizID, tileID)

	return nil
}

// GetScenario returns one scenario with its in-process vote counters.
func (s *serv) GetScenario(ctx context.Context, id string) (*model.QuizScenario, map[string]int, error) {
	scenario, err := s.repo.GetScenario(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return scenario, s.statsRepo.VoteCounts(id), nil
}

// ListScenarios returns one page of scenarios of a kind; pages count from 1.
func (s *serv) ListScenarios(ctx context.Context, kind model.QuizKind, page int) ([]*model.QuizScenario, error) {
	if page < 1 {
		page = 1
	}
	size := s.cfg.PageSize()
	return s.repo.ListScenarios(ctx, kind, size, (page-1)*size)
}
