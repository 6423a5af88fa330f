package handlers

import (
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/nba-stats-service/internal/app/analyst"
)

type askRequest struct {
	Season   string `json:"season"`
	Question string `json:"question"`
}

type askResponse struct {
	PlayerID int    `json:"playerId"`
	Season   string `json:"season"`
	Answer   string `json:"answer"`
}

// Ask answers a free-text question about one player season.
func (h *Handler) Ask(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := playerIDParam(r)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	var req askRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	answer, err := h.analyst.Ask(r.Context(), analyst.Query{
		PlayerID: id,
		Season:   strings.TrimSpace(req.Season),
		Question: req.Question,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, askResponse{PlayerID: id, Season: answer.Season, Answer: answer.Answer}, h.logger)
}
