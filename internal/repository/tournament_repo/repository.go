package tournament_repo

import (
	"club_backend/internal/mahjong"
	"club_backend/internal/repository"
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table      = "tournament_pairings"
	colRound   = "round"
	colTableNo = "table_no"
	colSeats   = "seats"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewTournamentRepository(dbc *pgxpool.Pool) repository.TournamentRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreatePairing stores one table assignment. Structural invariants are
// checked by the service before the write is attempted.
func (r *repo) CreatePairing(ctx context.Context, p mahjong.Pairing) error {
	seats, err := json.Marshal(p.Seats)
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(colRound, colTableNo, colSeats).
		Values(p.Round, p.Table, seats).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetPairingsByRound returns every pairing of one round.
func (r *repo) GetPairingsByRound(ctx context.Context, round int) ([]mahjong.Pairing, error) {
	query := sq.Select(colRound, colTableNo, colSeats).
		From(table).
		Where(sq.Eq{colRound: round}).
		OrderBy(colTableNo).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []mahjong.Pairing
	for rows.Next() {
		var (
			p     mahjong.Pairing
			seats []byte
		)
		if err := rows.Scan(&p.Round, &p.Table, &seats); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(seats, &p.Seats); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
