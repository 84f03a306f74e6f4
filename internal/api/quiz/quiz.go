package quiz

import (
	dto "club_backend/internal/api/dto/quiz"
	"club_backend/internal/converter"
	"club_backend/internal/mahjong"
	"club_backend/internal/model"
	"club_backend/internal/repository"
	"club_backend/internal/service"
	"club_backend/pkg/req"
	"club_backend/pkg/resp"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.QuizService
}

type Handler struct {
	serv service.QuizService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// CreateDiscard stores a discard quiz; re-posting the same scenario returns
// the stored document rather than an error.
func (h *Handler) CreateDiscard(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateDiscardQuizRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	scenario, err := h.serv.CreateDiscardQuiz(r.Context(), converter.ToDiscardQuiz(payload))
	if err != nil {
		writeQuizError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToScenarioResponse(scenario, nil))
}

// CreateDecision stores a four-player decision quiz.
func (h *Handler) CreateDecision(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateDecisionQuizRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def, err := converter.ToDecisionQuiz(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	scenario, err := h.serv.CreateDecisionQuiz(r.Context(), def)
	if err != nil {
		writeQuizError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToScenarioResponse(scenario, nil))
}

// Get returns one scenario with vote counters.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	scenario, votes, err := h.serv.GetScenario(r.Context(), id)
	if err != nil {
		writeQuizError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToScenarioResponse(scenario, votes))
}

// List returns one page of scenarios of a kind.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	kind := model.QuizKind(r.URL.Query().Get("kind"))
	if kind != model.QuizDiscard && kind != model.QuizDecision {
		http.Error(w, "unknown quiz kind", http.StatusBadRequest)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	scenarios, err := h.serv.ListScenarios(r.Context(), kind, page)
	if err != nil {
		writeQuizError(w, err)
		return
	}

	out := dto.ScenarioListResponse{Page: page, Scenarios: make([]dto.ScenarioResponse, len(scenarios))}
	for i, s := range scenarios {
		out.Scenarios[i] = converter.ToScenarioResponse(s, nil)
	}

	resp.WriteJSONResponse(w, http.StatusOK, out)
}

// Respond merges one answer into a scenario.
func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payload, err := req.Decode[dto.SubmitResponseRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.serv.SubmitResponse(r.Context(), id, payload.TileID, payload.Rationale)
	if err != nil {
		writeQuizError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeQuizError maps domain errors onto status codes: invariant violations
// are the client's fault, id conflicts are reported as conflicts, everything
// else is internal.
func writeQuizError(w http.ResponseWriter, err error) {
	var verr *mahjong.ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrScenarioConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, repository.ErrScenarioNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Println("quiz handler error:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
