package search

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultMinExp = 0
	DefaultMaxExp = 10
	// DefaultDays is the availability horizon when nothing narrower is asked for.
	DefaultDays   = 45
	ThisMonthDays = 30

	thisMonthPhrase = "this month"
)

// Term is an entry of a fixed vocabulary: the lowercase pattern searched for in
// the query and the canonical form written into the filter.
type Term struct {
	Canonical string
	Pattern   string
}

// Skills is the closed skill vocabulary in output order.
var Skills = []Term{
	{Canonical: "React", Pattern: "react"},
	{Canonical: "Python", Pattern: "python"},
	{Canonical: "Javascript", Pattern: "javascript"},
	{Canonical: "Django", Pattern: "django"},
	{Canonical: "Node.Js", Pattern: "node.js"},
	{Canonical: "Html", Pattern: "html"},
	{Canonical: "Css", Pattern: "css"},
	{Canonical: "Sql", Pattern: "sql"},
	{Canonical: "Git", Pattern: "git"},
}

// Cities is the closed location vocabulary. Order decides which city wins when
// several are mentioned.
var Cities = []Term{
	{Canonical: "Casablanca", Pattern: "casablanca"},
	{Canonical: "Rabat", Pattern: "rabat"},
	{Canonical: "Marrakech", Pattern: "marrakech"},
	{Canonical: "Fes", Pattern: "fes"},
}

var experienceRange = regexp.MustCompile(`(\d+)\s*[-–]\s*(\d+)`)

// Filter is the structured form of a search command.
type Filter struct {
	Skills []string `json:"skills"`
	// Location is empty when the query names no known city.
	Location string `json:"location,omitempty"`
	MinExp   int    `json:"minExp"`
	MaxExp   int    `json:"maxExp"`
	Days     int    `json:"days"`
}

// ParseQuery turns a free-text command into a Filter. Matching is a plain
// substring test on the lowercased text, so a term inside a longer word counts.
func ParseQuery(text string) Filter {
	lower := strings.ToLower(text)

	f := Filter{
		Skills: make([]string, 0),
		MinExp: DefaultMinExp,
		MaxExp: DefaultMaxExp,
		Days:   DefaultDays,
	}

	for _, term := range Skills {
		if strings.Contains(lower, term.Pattern) {
			f.Skills = append(f.Skills, term.Canonical)
		}
	}

	for _, term := range Cities {
		if strings.Contains(lower, term.Pattern) {
			f.Location = term.Canonical
			break
		}
	}

	if m := experienceRange.FindStringSubmatch(lower); m != nil {
		minExp, minErr := strconv.Atoi(m[1])
		maxExp, maxErr := strconv.Atoi(m[2])
		// Atoi only fails on overflow here; keep the defaults in that case.
		if minErr == nil && maxErr == nil {
			f.MinExp = minExp
			f.MaxExp = maxExp
		}
	}

	if strings.Contains(lower, thisMonthPhrase) {
		f.Days = ThisMonthDays
	}

	return f
}
