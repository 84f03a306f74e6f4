package model

import (
	"time"

	"club_backend/internal/mahjong"
)

// QuizKind distinguishes single-hand discard quizzes from four-player
// decision quizzes.
type QuizKind string

const (
	QuizDiscard  QuizKind = "discard"
	QuizDecision QuizKind = "decision"
)

// DiscardQuiz is a what-do-you-discard scenario: a full 14-tile hand plus
// the context that affects scoring.
type DiscardQuiz struct {
	Hand          []string
	DoraIndicator string
	Seat          string
	RoundWind     string
}

// PlayerScenario is one seat of a decision quiz. The concealed hand shrinks
// as melds are opened, so its length is variable.
type PlayerScenario struct {
	Seat       string
	Hand       []string
	Melds      []mahjong.Meld
	Discards   []string
	Score      int
	IsUser     bool
	RiichiTile string // discard that declared riichi, empty if none
}

type DecisionQuiz struct {
	Players        []PlayerScenario
	DoraIndicators []string
	RoundWind      string
}

// QuizResponse is one submitted answer for a candidate tile.
type QuizResponse struct {
	UserID    int       `json:"user_id"`
	Rationale string    `json:"rationale,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// QuizScenario is the persisted aggregate. ID is the canonical identifier,
// computed once at creation and never recomputed; after creation the only
// mutation is merging entries into Responses.
type QuizScenario struct {
	ID         string
	ReadableID string
	Kind       QuizKind
	Discard    *DiscardQuiz
	Decision   *DecisionQuiz
	Responses  map[string][]QuizResponse // tile id -> submitted answers
}

// UserHand returns the hand that response keys are validated against: the
// discard hand, or the viewpoint player's concealed hand for decision quizzes.
func (s *QuizScenario) UserHand() []string {
	switch s.Kind {
	case QuizDiscard:
		if s.Discard != nil {
			return s.Discard.Hand
		}
	case QuizDecision:
		if s.Decision != nil {
			for _, p := range s.Decision.Players {
				if p.IsUser {
					return p.Hand
				}
			}
		}
	}
	return nil
}
