package cli

import (
	"fmt"
	"strings"

	"lifeos/internal/reward"
	"lifeos/internal/storage"
)

// Context carries the shared dependencies every command runs against.
type Context struct {
	Store       storage.Provider
	Recommender reward.Recommender
}

// MatchID resolves an id argument against a list of full ids. An exact match
// wins; otherwise a unique prefix is accepted.
func MatchID(ids []string, id string) (int, error) {
	match := -1
	for i, full := range ids {
		if full == id {
			return i, nil
		}
		if strings.HasPrefix(full, id) {
			if match != -1 {
				return -1, fmt.Errorf("ambiguous id: %s", id)
			}
			match = i
		}
	}
	if match == -1 {
		return -1, fmt.Errorf("not found: %s", id)
	}
	return match, nil
}
