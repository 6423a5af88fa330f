package prompt

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ExtractionError reports a provider response that lacks the expected shape.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "unexpected completion response: " + e.Reason
}

// AsExtractionError attempts to unwrap an error into an ExtractionError.
func AsExtractionError(err error) (*ExtractionError, bool) {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

type responseEnvelope struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// ExtractAnswer returns the first choice's message content verbatim.
func ExtractAnswer(envelope []byte) (string, error) {
	var env responseEnvelope
	if err := json.Unmarshal(envelope, &env); err != nil {
		return "", &ExtractionError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if env.Error != nil && env.Error.Message != "" {
		return "", &ExtractionError{Reason: "provider error: " + env.Error.Message}
	}
	if len(env.Choices) == 0 {
		return "", &ExtractionError{Reason: "no choices in response"}
	}
	msg := env.Choices[0].Message
	if msg == nil {
		return "", &ExtractionError{Reason: "first choice has no message"}
	}
	if msg.Content == nil {
		return "", &ExtractionError{Reason: "first choice message has no content"}
	}
	return *msg.Content, nil
}
