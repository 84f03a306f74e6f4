package tournament

import (
	"club_backend/internal/repository"
	"club_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	repo      repository.TournamentRepository
	txManager trm.Manager
}

// NewTournamentService creates the pairing service.
func NewTournamentService(repo repository.TournamentRepository, txManager trm.Manager) service.TournamentService {
	return &serv{
		repo:      repo,
		txManager: txManager,
	}
}
