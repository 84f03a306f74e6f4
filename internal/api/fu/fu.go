package fu

import (
	dto "club_backend/internal/api/dto/fu"
	"club_backend/internal/converter"
	"club_backend/internal/mahjong"
	"club_backend/pkg/req"
	"club_backend/pkg/resp"
	"net/http"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Calculate scores a hand composition. The calculator is pure and cheap, so
// the scoring form calls this on every input change; it never fails on
// half-filled input.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CalculateRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fu := mahjong.ComputeFu(converter.ToFuInput(payload))

	resp.WriteJSONResponse(w, http.StatusOK, dto.CalculateResponse{Fu: fu})
}
