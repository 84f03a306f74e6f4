package tournament

import (
	"club_backend/internal/mahjong"
	"context"
)

// CreatePairing checks the structural invariants against the sibling
// pairings of the round and inserts, all inside one transaction so two
// concurrent writes cannot both pass the uniqueness checks.
func (s *serv) CreatePairing(ctx context.Context, p mahjong.Pairing) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		siblings, err := s.repo.GetPairingsByRound(txCtx, p.Round)
		if err != nil {
			return err
		}

		if err := mahjong.ValidatePairing(p, siblings); err != nil {
			return err
		}

		return s.repo.CreatePairing(txCtx, p)
	})
}

// RoundPairings lists every table assignment of one round.
func (s *serv) RoundPairings(ctx context.Context, round int) ([]mahjong.Pairing, error) {
	return s.repo.GetPairingsByRound(ctx, round)
}
