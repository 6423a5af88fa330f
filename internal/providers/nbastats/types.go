package nbastats

const providerName = "nbastats"

type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// find returns the named result set.
func (r statsResponse) find(name string) (resultSet, bool) {
	for _, set := range r.ResultSets {
		if set.Name == name {
			return set, true
		}
	}
	return resultSet{}, false
}
