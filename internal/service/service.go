package service

import (
	"club_backend/internal/mahjong"
	"club_backend/internal/model"
	"context"
)

type QuizService interface {
	CreateDiscardQuiz(ctx context.Context, def model.DiscardQuiz) (*model.QuizScenario, error)
	CreateDecisionQuiz(ctx context.Context, def model.DecisionQuiz) (*model.QuizScenario, error)
	SubmitResponse(ctx context.Context, quizID, tileID, rationale string) error
	GetScenario(ctx context.Context, id string) (*model.QuizScenario, map[string]int, error)
	ListScenarios(ctx context.Context, kind model.QuizKind, page int) ([]*model.QuizScenario, error)
}

type TournamentService interface {
	CreatePairing(ctx context.Context, p mahjong.Pairing) error
	RoundPairings(ctx context.Context, round int) ([]mahjong.Pairing, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
