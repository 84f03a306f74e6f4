package quiz

import (
	"club_backend/internal/mahjong"
	"club_backend/internal/middleware"
	"club_backend/internal/model"
	"club_backend/internal/repository"
	"club_backend/internal/service"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// fakeQuizRepo keeps scenarios in a map and mimics the conflict semantics of
// the real repository.
type fakeQuizRepo struct {
	scenarios map[string]*model.QuizScenario
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{scenarios: map[string]*model.QuizScenario{}}
}

func (r *fakeQuizRepo) InsertScenario(_ context.Context, s *model.QuizScenario) error {
	if existing, ok := r.scenarios[s.ID]; ok {
		if reflect.DeepEqual(existing.Discard, s.Discard) && reflect.DeepEqual(existing.Decision, s.Decision) {
			return repository.ErrScenarioExists
		}
		return repository.ErrScenarioConflict
	}
	r.scenarios[s.ID] = s
	return nil
}

func (r *fakeQuizRepo) GetScenario(_ context.Context, id string) (*model.QuizScenario, error) {
	s, ok := r.scenarios[id]
	if !ok {
		return nil, repository.ErrScenarioNotFound
	}
	return s, nil
}

func (r *fakeQuizRepo) ListScenarios(_ context.Context, kind model.QuizKind, limit, offset int) ([]*model.QuizScenario, error) {
	var out []*model.QuizScenario
	for _, s := range r.scenarios {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeQuizRepo) MergeResponse(_ context.Context, id, tileID string, resp model.QuizResponse) error {
	s, ok := r.scenarios[id]
	if !ok {
		return repository.ErrScenarioNotFound
	}
	s.Responses[tileID] = append(s.Responses[tileID], resp)
	return nil
}

type fakeStatsRepo struct {
	votes map[string]map[string]int
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{votes: map[string]map[string]int{}}
}

func (r *fakeStatsRepo) RecordResponse(scenarioID, tileID string) {
	if r.votes[scenarioID] == nil {
		r.votes[scenarioID] = map[string]int{}
	}
	r.votes[scenarioID][tileID]++
}

func (r *fakeStatsRepo) VoteCounts(scenarioID string) map[string]int {
	return r.votes[scenarioID]
}

// passthroughTx runs the transactional closure without a database.
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTx) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type staticQuizCfg struct{}

func (staticQuizCfg) PageSize() int      { return 20 }
func (staticQuizCfg) StartingScore() int { return 25000 }

func newTestService() (service.QuizService, *fakeQuizRepo, *fakeStatsRepo) {
	repo := newFakeQuizRepo()
	stats := newFakeStatsRepo()
	return NewQuizService(staticQuizCfg{}, repo, stats, passthroughTx{}), repo, stats
}

var testHand = []string{"M5R", "M7", "M8", "P4", "P5", "P5", "P6", "P7", "P7", "P7", "P8", "S", "S", "r"}

func testDiscardDef() model.DiscardQuiz {
	return model.DiscardQuiz{
		Hand:          testHand,
		DoraIndicator: "M4",
		Seat:          "E",
		RoundWind:     "E",
	}
}

func TestCreateDiscardQuiz(t *testing.T) {
	serv, _, _ := newTestService()
	ctx := context.Background()

	s, err := serv.CreateDiscardQuiz(ctx, testDiscardDef())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.ID) != 16 {
		t.Errorf("id length = %d, want 16", len(s.ID))
	}
	if s.Kind != model.QuizDiscard {
		t.Errorf("kind = %q, want discard", s.Kind)
	}

	// Re-creating the identical scenario is benign and yields the stored doc.
	again, err := serv.CreateDiscardQuiz(ctx, testDiscardDef())
	if err != nil {
		t.Fatalf("re-create errored: %v", err)
	}
	if again.ID != s.ID {
		t.Errorf("re-create id = %q, want %q", again.ID, s.ID)
	}
}

func TestCreateDiscardQuizValidation(t *testing.T) {
	serv, _, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(*model.DiscardQuiz)
		wantCode mahjong.ErrorCode
		plainErr bool
	}{
		{
			name:     "short hand",
			mutate:   func(d *model.DiscardQuiz) { d.Hand = d.Hand[:13] },
			wantCode: mahjong.CodeMalformedHandSize,
		},
		{
			name: "red five twice",
			mutate: func(d *model.DiscardQuiz) {
				hand := append([]string{}, d.Hand...)
				hand[1] = "M5R"
				d.Hand = hand
			},
			wantCode: mahjong.CodeMultiplicityExceeded,
		},
		{
			name:     "unknown dora indicator",
			mutate:   func(d *model.DiscardQuiz) { d.DoraIndicator = "Q7" },
			wantCode: mahjong.CodeInvalidTileReference,
		},
		{
			name:     "bad seat",
			mutate:   func(d *model.DiscardQuiz) { d.Seat = "X" },
			plainErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := testDiscardDef()
			tt.mutate(&def)

			_, err := serv.CreateDiscardQuiz(ctx, def)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.plainErr {
				return
			}

			var verr *mahjong.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tt.wantCode {
				t.Errorf("code = %v, want %v", verr.Code, tt.wantCode)
			}
		})
	}
}

func testDecisionDef() model.DecisionQuiz {
	return model.DecisionQuiz{
		Players: []model.PlayerScenario{
			{Seat: "E", Hand: []string{"M1", "M2", "M3", "P5"}, IsUser: true},
			{Seat: "S", Hand: []string{"P1", "P2"}, Discards: []string{"W", "g"}, RiichiTile: "g"},
			{Seat: "W", Hand: []string{"S1", "S2"}, Melds: []mahjong.Meld{
				{Kind: mahjong.MeldTriplet, TileIDs: []string{"r", "r", "r"}, Open: true, FromSeat: "E", ClaimedIndex: 0},
			}},
			{Seat: "N", Hand: []string{"S8", "S9"}},
		},
		DoraIndicators: []string{"M4"},
		RoundWind:      "E",
	}
}

func TestCreateDecisionQuiz(t *testing.T) {
	serv, _, _ := newTestService()
	ctx := context.Background()

	s, err := serv.CreateDecisionQuiz(ctx, testDecisionDef())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Kind != model.QuizDecision {
		t.Errorf("kind = %q, want decision", s.Kind)
	}

	// Zero scores pick up the club default.
	for _, p := range s.Decision.Players {
		if p.Score != 25000 {
			t.Errorf("seat %s score = %d, want 25000", p.Seat, p.Score)
		}
	}
}

func TestCreateDecisionQuizValidation(t *testing.T) {
	serv, _, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.DecisionQuiz)
	}{
		{"three players", func(d *model.DecisionQuiz) { d.Players = d.Players[:3] }},
		{"duplicate seat", func(d *model.DecisionQuiz) { d.Players[1].Seat = "E" }},
		{"no viewpoint player", func(d *model.DecisionQuiz) { d.Players[0].IsUser = false }},
		{"two viewpoint players", func(d *model.DecisionQuiz) { d.Players[1].IsUser = true }},
		{"riichi tile not discarded", func(d *model.DecisionQuiz) { d.Players[1].RiichiTile = "M9" }},
		{"no dora indicators", func(d *model.DecisionQuiz) { d.DoraIndicators = nil }},
		{"table-wide multiplicity", func(d *model.DecisionQuiz) {
			// A fifth r across hands and melds.
			d.Players[3].Hand = append(d.Players[3].Hand, "r", "r")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := testDecisionDef()
			tt.mutate(&def)
			if _, err := serv.CreateDecisionQuiz(ctx, def); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSubmitResponse(t *testing.T) {
	serv, repo, stats := newTestService()
	ctx := middleware.WithUserID(context.Background(), 7)

	s, err := serv.CreateDiscardQuiz(ctx, testDiscardDef())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := serv.SubmitResponse(ctx, s.ID, "P7", "safest shape"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	stored := repo.scenarios[s.ID]
	if len(stored.Responses["P7"]) != 1 {
		t.Fatalf("responses for P7 = %d, want 1", len(stored.Responses["P7"]))
	}
	if stored.Responses["P7"][0].UserID != 7 {
		t.Errorf("user id = %d, want 7", stored.Responses["P7"][0].UserID)
	}
	if stats.votes[s.ID]["P7"] != 1 {
		t.Errorf("vote count = %d, want 1", stats.votes[s.ID]["P7"])
	}
}

func TestSubmitResponseOrphanKey(t *testing.T) {
	serv, _, _ := newTestService()
	ctx := middleware.WithUserID(context.Background(), 7)

	s, err := serv.CreateDiscardQuiz(ctx, testDiscardDef())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// S5 is a valid tile, just not in this hand.
	err = serv.SubmitResponse(ctx, s.ID, "S5", "")
	var verr *mahjong.ValidationError
	if !errors.As(err, &verr) || verr.Code != mahjong.CodeOrphanResponseKey {
		t.Errorf("expected orphan response key error, got %v", err)
	}
}

func TestSubmitResponseRequiresUser(t *testing.T) {
	serv, _, _ := newTestService()

	if err := serv.SubmitResponse(context.Background(), "whatever", "M1", ""); err == nil {
		t.Error("expected error without user in context")
	}
}
