package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Filter
	}{
		{
			name:  "skill city and range",
			input: "Find React interns in Casablanca, 0-2 years",
			want:  Filter{Skills: []string{"React"}, Location: "Casablanca", MinExp: 0, MaxExp: 2, Days: 45},
		},
		{
			name:  "defaults when nothing known is mentioned",
			input: "Find somebody nice",
			want:  Filter{Skills: []string{}, MinExp: 0, MaxExp: 10, Days: 45},
		},
		{
			name:  "skills keep vocabulary order",
			input: "search SQL, python and REACT people",
			want:  Filter{Skills: []string{"React", "Python", "Sql"}, MinExp: 0, MaxExp: 10, Days: 45},
		},
		{
			name:  "first city in vocabulary wins",
			input: "find devs in fes or rabat",
			want:  Filter{Skills: []string{}, Location: "Rabat", MinExp: 0, MaxExp: 10, Days: 45},
		},
		{
			name:  "en dash with spaces",
			input: "find django 3 – 5 years",
			want:  Filter{Skills: []string{"Django"}, MinExp: 3, MaxExp: 5, Days: 45},
		},
		{
			name:  "reversed range is passed through",
			input: "find 7-2",
			want:  Filter{Skills: []string{}, MinExp: 7, MaxExp: 2, Days: 45},
		},
		{
			name:  "this month narrows the horizon",
			input: "find node.js available this month",
			want:  Filter{Skills: []string{"Node.Js"}, MinExp: 0, MaxExp: 10, Days: 30},
		},
		{
			name:  "substring inside a longer word matches",
			input: "find people with scss and github",
			want:  Filter{Skills: []string{"Css", "Git"}, MinExp: 0, MaxExp: 10, Days: 45},
		},
		{
			name:  "javascript alone",
			input: "find JavaScript",
			want:  Filter{Skills: []string{"Javascript"}, MinExp: 0, MaxExp: 10, Days: 45},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseQuery(tt.input))
		})
	}
}

func TestParseQueryExperienceIgnoresOtherContent(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"4-9",
		"react python 4-9 in casablanca this month",
		"Find 4 - 9 years of HTML",
	} {
		f := ParseQuery(text)
		assert.Equal(t, 4, f.MinExp, text)
		assert.Equal(t, 9, f.MaxExp, text)
	}
}
