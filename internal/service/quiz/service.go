package quiz

import (
	"club_backend/internal/config"
	"club_backend/internal/repository"
	"club_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       config.QuizConfig
	repo      repository.QuizRepository
	statsRepo repository.QuizStatsRepository
	txManager trm.Manager
}

// NewQuizService creates the quiz document service.
func NewQuizService(
	cfg config.QuizConfig,
	repo repository.QuizRepository,
	statsRepo repository.QuizStatsRepository,
	txManager trm.Manager,
) service.QuizService {
	return &serv{
		cfg:       cfg,
		repo:      repo,
		statsRepo: statsRepo,
		txManager: txManager,
	}
}
