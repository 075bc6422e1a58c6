package search

import (
	"errors"
	"time"
)

// ErrEmptyContext is returned when results are referenced by index before a
// search produced any.
var ErrEmptyContext = errors.New("no search results")

// Session holds the most recent ranked search of an interactive session.
// Indices used by later commands are 1-based positions into that list.
type Session struct {
	// Now is the clock used for availability checks. Defaults to time.Now.
	Now func() time.Time

	last []Result
}

// NewSession returns a session without search context.
func NewSession() *Session {
	return &Session{Now: time.Now}
}

// Search ranks the candidates and makes the ranking the current context.
func (s *Session) Search(candidates []Candidate, f Filter) []Result {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	s.last = Rank(candidates, f, now())
	return s.Results()
}

// Results returns a copy of the current context.
func (s *Session) Results() []Result {
	out := make([]Result, len(s.last))
	copy(out, s.last)
	return out
}

// Resolve maps 1-based indices to candidates of the current context. Indices
// outside the list are skipped; order and duplicates follow the input.
func (s *Session) Resolve(indices []int) ([]Candidate, error) {
	if len(s.last) == 0 {
		return nil, ErrEmptyContext
	}

	people := make([]Candidate, 0, len(indices))
	for _, idx := range indices {
		if idx < 1 || idx > len(s.last) {
			continue
		}
		people = append(people, s.last[idx-1].Candidate.Clone())
	}

	return people, nil
}
