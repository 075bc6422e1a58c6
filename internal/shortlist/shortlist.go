// Package shortlist persists named snapshots of search results.
package shortlist

import (
	"fmt"

	"github.com/spigell/hr-agent/internal/search"
	"github.com/spigell/hr-agent/internal/store"
)

// Save stores the candidates at the given 1-based positions of the session's
// latest search under name, replacing any list with the same name. It returns
// how many candidates were saved; positions outside the results are skipped.
func Save(s store.Store, session *search.Session, name string, indices []int) (int, error) {
	people, err := session.Resolve(indices)
	if err != nil {
		return 0, err
	}

	lists, err := store.LoadShortlists(s)
	if err != nil {
		return 0, fmt.Errorf("loading shortlists: %w", err)
	}

	lists[name] = people

	if err := store.SaveShortlists(s, lists); err != nil {
		return 0, fmt.Errorf("saving shortlist %q: %w", name, err)
	}

	return len(people), nil
}

// Get returns the named shortlist. An unknown name yields an empty list.
func Get(s store.Store, name string) ([]search.Candidate, error) {
	lists, err := store.LoadShortlists(s)
	if err != nil {
		return nil, fmt.Errorf("loading shortlists: %w", err)
	}

	return lists[name], nil
}
