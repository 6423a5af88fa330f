package handlers

import (
	nethttp "net/http"
	"strings"
)

// SearchPlayer resolves ?first_name=&last_name= to a roster entry.
func (h *Handler) SearchPlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	first := strings.TrimSpace(q.Get("first_name"))
	last := strings.TrimSpace(q.Get("last_name"))
	if first == "" || last == "" {
		writeError(w, r, nethttp.StatusBadRequest, "first_name and last_name are required", h.logger)
		return
	}

	player, err := h.players.Resolve(first, last)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}

// PlayerByID returns a specific roster entry if present.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := playerIDParam(r)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	player, found := h.players.PlayerByID(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}
