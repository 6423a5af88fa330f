package prompt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
)

// SystemRole frames the model as an analyst of the supplied statistics.
const SystemRole = "You are a knowledgeable NBA analyst who can analyze player statistics and provide insights."

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ErrEmptyQuestion is returned when there is nothing to ask.
var ErrEmptyQuestion = errors.New("question must not be empty")

// Payload bundles everything the language model needs for one question.
type Payload struct {
	SystemRole      string `json:"systemRole"`
	Question        string `json:"question"`
	SerializedStats string `json:"serializedStats"`
}

// Message is a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the chat-completions request body.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Build renders stats as indented JSON and pairs it with the question.
func Build(question string, s stats.NormalizedStats) (Payload, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return Payload{}, ErrEmptyQuestion
	}
	rendered, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return Payload{}, fmt.Errorf("serialize stats: %w", err)
	}
	return Payload{
		SystemRole:      SystemRole,
		Question:        q,
		SerializedStats: string(rendered),
	}, nil
}

// UserContent is the user turn sent to the model.
func (p Payload) UserContent() string {
	return "Here are the NBA player statistics:\n" +
		p.SerializedStats +
		"\n\nQuestion: " + p.Question +
		"\n\nPlease analyze these statistics and answer the question."
}

// ChatRequest builds the provider request for the given model.
func (p Payload) ChatRequest(model string) ChatRequest {
	return ChatRequest{
		Model: model,
		Messages: []Message{
			{Role: RoleSystem, Content: p.SystemRole},
			{Role: RoleUser, Content: p.UserContent()},
		},
	}
}

// Stats parses SerializedStats back into NormalizedStats.
func (p Payload) Stats() (stats.NormalizedStats, error) {
	var s stats.NormalizedStats
	if err := json.Unmarshal([]byte(p.SerializedStats), &s); err != nil {
		return stats.NormalizedStats{}, err
	}
	return s, nil
}
