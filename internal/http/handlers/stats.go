package handlers

import (
	nethttp "net/http"
	"strings"

	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
)

type seasonsResponse struct {
	PlayerID      int      `json:"playerId"`
	Seasons       []string `json:"seasons"`
	DefaultSeason string   `json:"defaultSeason"`
}

type statsResponse struct {
	PlayerID int                         `json:"playerId"`
	Season   string                      `json:"season"`
	Stats    domainstats.NormalizedStats `json:"stats"`
}

// Seasons lists the seasons a player has records for, newest first.
func (h *Handler) Seasons(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := playerIDParam(r)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	list, err := h.stats.Seasons(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	seasons := list.Seasons
	if seasons == nil {
		seasons = []string{}
	}
	writeJSON(w, nethttp.StatusOK, seasonsResponse{PlayerID: id, Seasons: seasons, DefaultSeason: list.Default}, h.logger)
}

// SeasonStats returns per-game figures for ?season=, or the default season when omitted.
func (h *Handler) SeasonStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := playerIDParam(r)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	season := strings.TrimSpace(r.URL.Query().Get("season"))
	s, err := h.stats.SeasonStats(r.Context(), id, season)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, statsResponse{PlayerID: id, Season: s.SeasonID, Stats: s}, h.logger)
}
