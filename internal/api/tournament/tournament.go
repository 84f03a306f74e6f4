package tournament

import (
	dto "club_backend/internal/api/dto/tournament"
	"club_backend/internal/converter"
	"club_backend/internal/mahjong"
	"club_backend/internal/service"
	"club_backend/pkg/req"
	"club_backend/pkg/resp"
	"errors"
	"log"
	"net/http"
	"strconv"
)

type HandlerDeps struct {
	Serv service.TournamentService
}

type Handler struct {
	serv service.TournamentService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// CreatePairing saves one table assignment after the structural guard.
func (h *Handler) CreatePairing(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreatePairingRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.serv.CreatePairing(r.Context(), converter.ToPairing(payload))
	if err != nil {
		var verr *mahjong.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusBadRequest)
			return
		}
		log.Println("create pairing error:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// RoundPairings lists the table assignments of one round.
func (h *Handler) RoundPairings(w http.ResponseWriter, r *http.Request) {
	round, err := strconv.Atoi(r.URL.Query().Get("round"))
	if err != nil || round < 1 {
		http.Error(w, "invalid round", http.StatusBadRequest)
		return
	}

	pairings, err := h.serv.RoundPairings(r.Context(), round)
	if err != nil {
		log.Println("round pairings error:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundPairingsResponse(round, pairings))
}
