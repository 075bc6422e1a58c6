package agent

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spigell/hr-agent/internal/filtering"
	"github.com/spigell/hr-agent/internal/outreach"
	"github.com/spigell/hr-agent/internal/search"
	"github.com/spigell/hr-agent/internal/store"
)

const candidatesDoc = `[
  {"firstName": "Amina", "lastName": "Idrissi", "email": "amina@example.com", "skills": ["React", "Css"],
   "location": "Casablanca", "experienceYears": 1, "availabilityDate": "2025-03-20", "stage": "Sourced"},
  {"firstName": "Youssef", "lastName": "Benali", "email": "youssef@example.com", "skills": ["Python", "Django"],
   "location": "Rabat", "experienceYears": 4, "availabilityDate": "2025-05-01", "stage": "Interviewing"},
  {"firstName": "Salma", "lastName": "Tazi", "email": "salma@example.com", "skills": ["React", "Python"],
   "location": "Casablanca", "experienceYears": 2, "availabilityDate": "2025-03-12", "stage": "Hired"}
]`

const jobsDoc = `[{"title": "Frontend Intern", "location": "Casablanca", "jdSnippet": "Build the recruiter dashboard.", "skillsRequired": ["React", "Css"]}]`

func newAgent(t *testing.T, filters *filtering.Filtering) (*Agent, *bytes.Buffer) {
	t.Helper()

	st := store.NewFileStore(t.TempDir(), nil)
	require.NoError(t, st.Put(store.CandidatesDoc, []byte(candidatesDoc)))
	require.NoError(t, st.Put(store.JobsDoc, []byte(jobsDoc)))

	out := &bytes.Buffer{}
	a := New(Deps{Store: st, Filters: filters, Out: out, Logger: zap.NewNop()})
	a.Session().Now = func() time.Time { return time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC) }

	return a, out
}

func TestSearchPrintsRankedResults(t *testing.T) {
	a, out := newAgent(t, nil)

	require.NoError(t, a.Handle(context.Background(), "Find React interns in Casablanca, 0-2 years"))

	text := out.String()
	assert.Contains(t, text, "Searching...")
	assert.Contains(t, text, "#1: Amina Idrissi\n    amina@example.com\n    Casablanca | 1 years | React, Css\n    Available: 2025-03-20 | Stage: Sourced\n    Score: React (+2), Casablanca (+1), 1y (+1), Available (+1) = 5 pts\n")
	assert.Contains(t, text, "#2: Salma Tazi")
	assert.Contains(t, text, "#3: Youssef Benali")
	assert.Contains(t, text, "Score:  = 0 pts")
}

func TestSaveBeforeSearch(t *testing.T) {
	a, _ := newAgent(t, nil)

	err := a.Handle(context.Background(), `Save #1 as "Frontend"`)
	require.ErrorIs(t, err, search.ErrEmptyContext)
	assert.Contains(t, Message(err), "No search results")
}

func TestUsageErrors(t *testing.T) {
	a, _ := newAgent(t, nil)

	err := a.Handle(context.Background(), `Save as "Frontend"`)
	require.ErrorIs(t, err, ErrUsage)
	assert.Equal(t, "\n"+SaveUsage+"\n", Message(err))

	err = a.Handle(context.Background(), `Draft email`)
	require.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, Message(err), DraftUsage)
}

func TestSaveDraftEditFlow(t *testing.T) {
	a, out := newAgent(t, nil)
	ctx := context.Background()

	require.NoError(t, a.Handle(ctx, "Find React in Casablanca 0-2"))
	require.NoError(t, a.Handle(ctx, `Save #1 #9 as "Frontend"`))
	assert.Contains(t, out.String(), "Saved 1 candidates to 'Frontend'")

	out.Reset()
	require.NoError(t, a.Handle(ctx, `Draft email for "Frontend" using job "Frontend Intern"`))

	text := out.String()
	assert.Contains(t, text, "EMAIL PREVIEW (Plain Text)")
	assert.Contains(t, text, "To: Amina Idrissi\nSubject: Exciting Frontend Intern opportunity!")
	assert.Contains(t, text, "Hi Amina,")
	assert.Contains(t, text, "role in Casablanca.")
	assert.Contains(t, text, "Skills needed: React, Css.")
	assert.Contains(t, text, "HTML VERSION:")
	assert.Contains(t, text, "<h2>Exciting Frontend Intern opportunity!</h2>")

	out.Reset()
	require.NoError(t, a.Handle(ctx, `Change subject to "Quick chat?"`))
	assert.Contains(t, out.String(), "Subject updated to: Quick chat?")
	require.NotNil(t, a.Draft())
	assert.Equal(t, "Quick chat?", a.Draft().Subject)
}

func TestDraftUnknownShortlist(t *testing.T) {
	a, out := newAgent(t, nil)

	require.NoError(t, a.Handle(context.Background(), `Draft email for "Nobody"`))
	assert.Contains(t, out.String(), "Shortlist not found")
	assert.Nil(t, a.Draft())
}

func TestEditWithoutDraft(t *testing.T) {
	a, out := newAgent(t, nil)

	require.NoError(t, a.Handle(context.Background(), `Change subject to "x"`))
	assert.Contains(t, out.String(), "No email to edit")
}

func TestAnalyticsAndUnknown(t *testing.T) {
	a, out := newAgent(t, nil)
	ctx := context.Background()

	require.NoError(t, a.Handle(ctx, "Show analytics"))
	assert.Contains(t, out.String(), "Pipeline by stage:\n  Sourced: 1\n  Interviewing: 1\n  Hired: 1\n")
	assert.Contains(t, out.String(), "Top skills:\n  React: 2\n  Python: 2\n  Css: 1\n")

	out.Reset()
	require.NoError(t, a.Handle(ctx, "hello there"))
	assert.Contains(t, out.String(), "Unknown command")

	require.NoError(t, a.Handle(ctx, "   "))
	assert.ErrorIs(t, a.Handle(ctx, "quit"), ErrQuit)
}

func TestSearchAppliesPoolFilters(t *testing.T) {
	filters := filtering.New([]filtering.Filter{filtering.NewExcludedStages([]string{"Hired"})}, nil)
	a, out := newAgent(t, filters)

	require.NoError(t, a.Handle(context.Background(), "find react python"))
	assert.NotContains(t, out.String(), "Salma")
	assert.Len(t, a.Session().Results(), 2)
}

type failingGenerator struct{}

func (failingGenerator) GenerateContent(context.Context, string, string) (string, error) {
	return "", errors.New("unavailable")
}

func TestDraftKeepsTemplateWhenPolishFails(t *testing.T) {
	a, _ := newAgent(t, nil)
	a.deps.Polisher = outreach.NewPolisher(failingGenerator{}, 0, nil)
	ctx := context.Background()

	require.NoError(t, a.Handle(ctx, "find react"))
	require.NoError(t, a.Handle(ctx, `save #1 #2 as "Team"`))
	require.NoError(t, a.Handle(ctx, `draft email for "Team"`))

	require.NotNil(t, a.Draft())
	assert.True(t, len(a.Draft().Recipients) == 2)
	assert.Contains(t, a.Draft().Body, "Hi there,")
	assert.Contains(t, a.Draft().Body, "our a position role.")
}

func TestMessageGenericError(t *testing.T) {
	assert.Equal(t, "Error: boom\n", Message(errors.New("boom")))
}
