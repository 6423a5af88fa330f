package handlers

import (
	"fmt"
	nethttp "net/http"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
)

// toolEnvelope is the tool endpoints' reply. They always answer 200 and report
// the outcome here; a malformed body is the only 400.
type toolEnvelope struct {
	Success bool                         `json:"success"`
	Player  *players.Player              `json:"player,omitempty"`
	Stats   *domainstats.NormalizedStats `json:"stats,omitempty"`
	Message string                       `json:"message,omitempty"`
}

type toolSearchRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type toolStatsRequest struct {
	PlayerID int    `json:"player_id"`
	Season   string `json:"season"`
}

type toolSeasonsRequest struct {
	PlayerID int `json:"player_id"`
}

// ToolSearchPlayer resolves a player by exact first and last name.
func (h *Handler) ToolSearchPlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req toolSearchRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	player, err := h.players.Resolve(req.FirstName, req.LastName)
	if err != nil {
		writeJSON(w, nethttp.StatusOK, toolFailure(err), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, toolEnvelope{Success: true, Player: &player}, h.logger)
}

// ToolPlayerStats returns per-game figures for one season, the preferred season unless given.
func (h *Handler) ToolPlayerStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	req := toolStatsRequest{Season: domainstats.PreferredSeason}
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Season == "" {
		req.Season = domainstats.PreferredSeason
	}
	s, err := h.stats.SeasonStats(r.Context(), req.PlayerID, req.Season)
	if err != nil {
		writeJSON(w, nethttp.StatusOK, toolFailure(err), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, toolEnvelope{Success: true, Stats: &s}, h.logger)
}

// ToolAvailableSeasons lists every season a player has records for.
func (h *Handler) ToolAvailableSeasons(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req toolSeasonsRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	list, err := h.stats.Seasons(r.Context(), req.PlayerID)
	if err != nil {
		writeJSON(w, nethttp.StatusOK, toolFailure(err), h.logger)
		return
	}
	seasons := list.Seasons
	if seasons == nil {
		seasons = []string{}
	}
	writeJSON(w, nethttp.StatusOK, toolSeasonsEnvelope{Success: true, Seasons: seasons}, h.logger)
}

// toolSeasonsEnvelope keeps "seasons" present even when the list is empty.
type toolSeasonsEnvelope struct {
	Success bool     `json:"success"`
	Seasons []string `json:"seasons"`
}

func toolFailure(err error) toolEnvelope {
	if nf, ok := players.AsNotFoundError(err); ok {
		return toolEnvelope{Message: fmt.Sprintf("Player %s %s not found", nf.FirstName, nf.LastName)}
	}
	if snf, ok := domainstats.AsSeasonNotFoundError(err); ok {
		return toolEnvelope{Message: fmt.Sprintf("No stats found for season %s", snf.Season)}
	}
	return toolEnvelope{Message: err.Error()}
}
