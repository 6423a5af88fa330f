package handlers

import (
	"context"
	"errors"
	"math"
	nethttp "net/http"
	"strconv"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/prompt"
	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/llm"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// statusForError maps service errors onto HTTP status codes and client-facing messages.
func statusForError(err error) (int, string) {
	if errors.Is(err, prompt.ErrEmptyQuestion) {
		return nethttp.StatusBadRequest, err.Error()
	}
	if nf, ok := players.AsNotFoundError(err); ok {
		return nethttp.StatusNotFound, nf.Error()
	}
	if snf, ok := domainstats.AsSeasonNotFoundError(err); ok {
		return nethttp.StatusNotFound, snf.Error()
	}
	if _, ok := providers.AsRateLimitError(err); ok {
		return nethttp.StatusTooManyRequests, "upstream rate limited"
	}
	if errors.Is(err, llm.ErrNotConfigured) {
		return nethttp.StatusServiceUnavailable, "question answering is not configured"
	}
	if errors.Is(err, llm.ErrUnavailable) {
		return nethttp.StatusServiceUnavailable, "question answering is temporarily unavailable"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return nethttp.StatusGatewayTimeout, "upstream timed out"
	}
	if se, ok := domainstats.AsSourceError(err); ok {
		return nethttp.StatusBadGateway, se.Error()
	}
	if _, ok := prompt.AsExtractionError(err); ok {
		return nethttp.StatusBadGateway, err.Error()
	}
	if ue, ok := llm.AsUpstreamError(err); ok {
		return nethttp.StatusBadGateway, ue.Error()
	}
	return nethttp.StatusInternalServerError, "internal error"
}

func (h *Handler) writeServiceError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	status, msg := statusForError(err)
	if rl, ok := providers.AsRateLimitError(err); ok && rl.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(rl.RetryAfter.Seconds()))))
	}
	logger := loggerFromContext(r, h.logger)
	if status >= nethttp.StatusInternalServerError {
		logging.Error(logger, "request failed", err, logging.FieldStatusCode, status)
	} else {
		logging.Info(logger, "request rejected", logging.FieldStatusCode, status, "reason", msg)
	}
	writeError(w, r, status, msg, h.logger)
}
