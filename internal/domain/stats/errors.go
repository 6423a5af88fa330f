package stats

import (
	"errors"
	"fmt"
)

// SeasonNotFoundError reports that no record exists for the requested season.
type SeasonNotFoundError struct {
	Season string
}

func (e *SeasonNotFoundError) Error() string {
	return fmt.Sprintf("no stats found for season %s", e.Season)
}

// SourceError classifies a failure of the statistics source: the upstream call
// failed, or it returned a record that is missing fields or carries bad values.
type SourceError struct {
	Field  string
	Reason string
	Err    error
}

func (e *SourceError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "stats source failure"
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field=%s)", msg, e.Field)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *SourceError) Unwrap() error { return e.Err }

// NewSourceError wraps a collaborator failure. Existing SourceErrors pass through.
func NewSourceError(err error) error {
	if err == nil {
		return nil
	}
	if se, ok := AsSourceError(err); ok {
		return se
	}
	return &SourceError{Reason: "stats source failure", Err: err}
}

func missingField(field string) *SourceError {
	return &SourceError{Field: field, Reason: "missing required field"}
}

func invalidField(field string, value any) *SourceError {
	return &SourceError{Field: field, Reason: fmt.Sprintf("invalid value %v", value)}
}

// AsSeasonNotFoundError attempts to unwrap an error into a SeasonNotFoundError.
func AsSeasonNotFoundError(err error) (*SeasonNotFoundError, bool) {
	var snf *SeasonNotFoundError
	if errors.As(err, &snf) {
		return snf, true
	}
	return nil, false
}

// AsSourceError attempts to unwrap an error into a SourceError.
func AsSourceError(err error) (*SourceError, bool) {
	var se *SourceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
