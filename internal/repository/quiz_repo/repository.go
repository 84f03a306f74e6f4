package quiz_repo

import (
	"bytes"
	"club_backend/internal/model"
	"club_backend/internal/repository"
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "quiz_scenarios"
	colID         = "id"
	colReadableID = "readable_id"
	colKind       = "kind"
	colPayload    = "payload"
	colResponses  = "responses"
)

// payload is the jsonb document form of a scenario definition. Responses are
// kept in their own column so they can be merged without rewriting the
// definition.
type payload struct {
	Discard  *model.DiscardQuiz  `json:"discard,omitempty"`
	Decision *model.DecisionQuiz `json:"decision,omitempty"`
}

type repo struct {
	dbc *pgxpool.Pool
}

func NewQuizRepository(dbc *pgxpool.Pool) repository.QuizRepository {
	return &repo{
		dbc: dbc,
	}
}

// InsertScenario stores a new scenario under its canonical id. A collision
// with an identical payload returns ErrScenarioExists; a collision with a
// different payload returns ErrScenarioConflict.
func (r *repo) InsertScenario(ctx context.Context, s *model.QuizScenario) error {
	body, err := json.Marshal(payload{Discard: s.Discard, Decision: s.Decision})
	if err != nil {
		return err
	}
	responses, err := json.Marshal(s.Responses)
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(colID, colReadableID, colKind, colPayload, colResponses).
		Values(s.ID, s.ReadableID, string(s.Kind), body, responses).
		Suffix("ON CONFLICT (" + colID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	// Conflict on the natural key: decide whether the stored document is
	// the same scenario or a genuine data problem.
	if res.RowsAffected() == 0 {
		existing, err := r.getPayload(ctx, s.ID)
		if err != nil {
			return err
		}
		if bytes.Equal(existing, body) {
			return repository.ErrScenarioExists
		}
		return repository.ErrScenarioConflict
	}

	return nil
}

func (r *repo) getPayload(ctx context.Context, id string) ([]byte, error) {
	query := sq.Select(colPayload).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var body []byte
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&body)
	if err != nil {
		return nil, err
	}

	return body, nil
}

// GetScenario loads one scenario by canonical id.
func (r *repo) GetScenario(ctx context.Context, id string) (*model.QuizScenario, error) {
	query := sq.Select(colID, colReadableID, colKind, colPayload, colResponses).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	s, err := scanScenario(r.dbc.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrScenarioNotFound
		}
		return nil, err
	}

	return s, nil
}

// ListScenarios returns a page of scenarios of one kind, newest first.
func (r *repo) ListScenarios(ctx context.Context, kind model.QuizKind, limit, offset int) ([]*model.QuizScenario, error) {
	query := sq.Select(colID, colReadableID, colKind, colPayload, colResponses).
		From(table).
		Where(sq.Eq{colKind: string(kind)}).
		OrderBy("ctid DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
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

	var out []*model.QuizScenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// MergeResponse appends one response into the responses map under the tile-id
// key in a single UPDATE, so concurrent submissions merge at the database
// rather than racing through read-modify-write in the application.
func (r *repo) MergeResponse(ctx context.Context, id, tileID string, resp model.QuizResponse) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	query := sq.Update(table).
		Set(colResponses, sq.Expr(
			"jsonb_set("+colResponses+", ARRAY[?], coalesce("+colResponses+" -> ?, '[]'::jsonb) || ?::jsonb)",
			tileID, tileID, body,
		)).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrScenarioNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (*model.QuizScenario, error) {
	var (
		s         model.QuizScenario
		kind      string
		body      []byte
		responses []byte
	)
	err := row.Scan(&s.ID, &s.ReadableID, &kind, &body, &responses)
	if err != nil {
		return nil, err
	}

	s.Kind = model.QuizKind(kind)

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	s.Discard = p.Discard
	s.Decision = p.Decision

	if err := json.Unmarshal(responses, &s.Responses); err != nil {
		return nil, err
	}
	if s.Responses == nil {
		s.Responses = map[string][]model.QuizResponse{}
	}

	return &s, nil
}
