package repository

import (
	"club_backend/internal/mahjong"
	"club_backend/internal/model"
	"context"
	"errors"
)

var (
	// ErrScenarioExists means the canonical id collided with an identical
	// payload: the scenario is already stored, which is benign.
	ErrScenarioExists = errors.New("scenario already exists")
	// ErrScenarioConflict means the canonical id collided with a different
	// payload. Reported distinct from validation errors.
	ErrScenarioConflict = errors.New("scenario id conflict with different payload")

	ErrScenarioNotFound = errors.New("scenario not found")
)

type QuizRepository interface {
	InsertScenario(ctx context.Context, s *model.QuizScenario) error
	GetScenario(ctx context.Context, id string) (*model.QuizScenario, error)
	ListScenarios(ctx context.Context, kind model.QuizKind, limit, offset int) ([]*model.QuizScenario, error)
	// MergeResponse appends one response under a tile-id key in a single
	// statement; concurrent submissions merge instead of overwriting.
	MergeResponse(ctx context.Context, id, tileID string, r model.QuizResponse) error
}

// QuizStatsRepository keeps in-process vote counters per scenario.
type QuizStatsRepository interface {
	RecordResponse(scenarioID, tileID string)
	VoteCounts(scenarioID string) map[string]int
}

type TournamentRepository interface {
	CreatePairing(ctx context.Context, p mahjong.Pairing) error
	GetPairingsByRound(ctx context.Context, round int) ([]mahjong.Pairing, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetRating(ctx context.Context, id int) (int, error)
	UpdateRating(ctx context.Context, id int, rating int) error
}
