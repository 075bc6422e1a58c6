package search

import (
	"fmt"
	"strings"
	"time"
)

const (
	skillPoints        = 2
	locationPoints     = 1
	experiencePoints   = 1
	availabilityPoints = 1

	// experienceSlack widens the requested range by one year on each side.
	experienceSlack = 1
)

// Result is a scored candidate.
type Result struct {
	Candidate Candidate `json:"person"`
	Score     int       `json:"score"`
	Reasons   []string  `json:"reasons"`
}

// Reason renders the reasons the way they are shown to the operator,
// e.g. "React (+2), 3y (+1) = 3 pts".
func (r Result) Reason() string {
	return fmt.Sprintf("%s = %d pts", strings.Join(r.Reasons, ", "), r.Score)
}

// Score rates a candidate against the filter. today is the calendar day the
// availability horizon is counted from.
func Score(c Candidate, f Filter, today time.Time) Result {
	r := Result{Candidate: c, Reasons: make([]string, 0, 4)}

	if len(f.Skills) > 0 {
		matched := make([]string, 0, len(f.Skills))
		for _, skill := range f.Skills {
			if c.HasSkill(skill) && !contains(matched, skill) {
				matched = append(matched, skill)
			}
		}
		if len(matched) > 0 {
			points := skillPoints * len(matched)
			r.Score += points
			r.Reasons = append(r.Reasons, fmt.Sprintf("%s (+%d)", strings.Join(matched, "+"), points))
		}
	}

	if f.Location != "" && c.Location == f.Location {
		r.Score += locationPoints
		r.Reasons = append(r.Reasons, fmt.Sprintf("%s (+%d)", c.Location, locationPoints))
	}

	if f.MinExp-experienceSlack <= c.ExperienceYears && c.ExperienceYears <= f.MaxExp+experienceSlack {
		r.Score += experiencePoints
		r.Reasons = append(r.Reasons, fmt.Sprintf("%dy (+%d)", c.ExperienceYears, experiencePoints))
	}

	horizon := NewDate(today).AddDays(f.Days)
	if !c.AvailabilityDate.After(horizon.Time) {
		r.Score += availabilityPoints
		r.Reasons = append(r.Reasons, fmt.Sprintf("Available (+%d)", availabilityPoints))
	}

	return r
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
