package players

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError reports that no roster entry matched the queried names.
// It is an expected outcome rather than a fault.
type NotFoundError struct {
	FirstName string
	LastName  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("player %s %s not found", e.FirstName, e.LastName)
}

// AsNotFoundError attempts to unwrap an error into a NotFoundError.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// Resolve finds the player whose first and last names both equal the query,
// ignoring case. When several entries match, the first in roster order wins.
func Resolve(firstName, lastName string, roster []Player) (Player, error) {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)

	for _, p := range roster {
		if strings.EqualFold(p.FirstName, first) && strings.EqualFold(p.LastName, last) {
			return p, nil
		}
	}
	return Player{}, &NotFoundError{FirstName: first, LastName: last}
}
