package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stats-service/internal/config"
	"github.com/preston-bernstein/nba-stats-service/internal/llm"
	"github.com/preston-bernstein/nba-stats-service/internal/llm/openai"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
)

func buildCompleter(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) llm.Completer {
	if !cfg.LLM.Enabled() {
		if logger != nil {
			logger.Info("question answering disabled: no api key configured")
		}
		return llm.Disabled{}
	}
	return openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger, recorder)
}
