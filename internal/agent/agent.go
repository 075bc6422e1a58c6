// Package agent dispatches operator commands of an interactive session.
package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/hr-agent/internal/analytics"
	"github.com/spigell/hr-agent/internal/filtering"
	"github.com/spigell/hr-agent/internal/logger"
	"github.com/spigell/hr-agent/internal/outreach"
	"github.com/spigell/hr-agent/internal/search"
	"github.com/spigell/hr-agent/internal/shortlist"
	"github.com/spigell/hr-agent/internal/store"
)

// ErrQuit is returned by Handle when the operator ends the session.
var ErrQuit = errors.New("exit requested")

// Deps aggregates the collaborators of an Agent. Filters and Polisher are
// optional.
type Deps struct {
	Store    store.Store
	Filters  *filtering.Filtering
	Polisher *outreach.Polisher
	Logger   *zap.Logger
	Out      io.Writer
	// Backend is only used for log fields.
	Backend string
}

// Agent holds the state of one interactive session: the latest search and
// the email being drafted.
type Agent struct {
	deps    Deps
	session *search.Session
	draft   *outreach.Email
}

func New(deps Deps) *Agent {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}

	return &Agent{
		deps:    deps,
		session: search.NewSession(),
	}
}

// Session exposes the search context, mainly for tests and clock injection.
func (a *Agent) Session() *search.Session { return a.session }

// Draft returns the email being edited, or nil.
func (a *Agent) Draft() *outreach.Email { return a.draft }

// Handle runs one command line. Usage problems come back as *UsageError,
// search.ErrEmptyContext when results are referenced before a search, and
// ErrQuit when the session should end.
func (a *Agent) Handle(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	kind := Classify(line)
	a.commandLogger(kind).Debug("handling command", zap.String("line", line))

	switch kind {
	case KindQuit:
		return ErrQuit
	case KindSearch:
		return a.Search(ctx, line)
	case KindSave:
		return a.save(line)
	case KindDraft:
		return a.draftEmail(ctx, line)
	case KindEdit:
		return a.edit(line)
	case KindAnalytics:
		return a.Analytics()
	default:
		a.printf("Unknown command. See available commands above.\n\n")
		return nil
	}
}

// Search ranks the candidate pool against the query text, prints the results
// and makes them the context of later save commands.
func (a *Agent) Search(ctx context.Context, line string) error {
	log := a.commandLogger(KindSearch)
	a.printf("\nSearching...\n\n")

	candidates, err := store.LoadCandidates(a.deps.Store)
	if err != nil {
		return err
	}

	if a.deps.Filters != nil {
		candidates, err = a.deps.Filters.RunFilters(ctx, candidates)
		if err != nil {
			return fmt.Errorf("filtering candidates: %w", err)
		}
	}

	filter := search.ParseQuery(line)
	log.Debug("parsed query",
		zap.Strings("skills", filter.Skills),
		zap.String("location", filter.Location),
		zap.Int("min_exp", filter.MinExp),
		zap.Int("max_exp", filter.MaxExp),
		zap.Int("days", filter.Days),
	)

	results := a.session.Search(candidates, filter)
	if len(results) == 0 {
		a.printf("No candidates found.\n\n")
		return nil
	}

	for i, r := range results {
		p := r.Candidate
		a.printf("#%d: %s\n", i+1, p.FullName())
		a.printf("    %s\n", p.Email)
		a.printf("    %s | %d years | %s\n", p.Location, p.ExperienceYears, strings.Join(p.Skills, ", "))
		a.printf("    Available: %s | Stage: %s\n", p.AvailabilityDate, p.Stage)
		a.printf("    Score: %s\n\n", r.Reason())
	}

	return nil
}

func (a *Agent) save(line string) error {
	cmd, err := ParseSave(line)
	if err != nil {
		return err
	}

	n, err := shortlist.Save(a.deps.Store, a.session, cmd.Name, cmd.Indices)
	if err != nil {
		return err
	}

	a.printf("\nSaved %d candidates to '%s'\n\n", n, cmd.Name)
	return nil
}

func (a *Agent) draftEmail(ctx context.Context, line string) error {
	log := a.commandLogger(KindDraft)

	cmd, err := ParseDraft(line)
	if err != nil {
		return err
	}

	people, err := shortlist.Get(a.deps.Store, cmd.List)
	if err != nil {
		return err
	}
	if len(people) == 0 {
		a.printf("\nShortlist not found\n\n")
		return nil
	}

	jobs, err := store.LoadJobs(a.deps.Store)
	if err != nil {
		return err
	}

	email := outreach.Draft(people, cmd.Job, outreach.FindJob(jobs, cmd.Job))

	if a.deps.Polisher != nil {
		polished, err := a.deps.Polisher.Polish(ctx, email)
		if err != nil {
			log.Warn("keeping template body", zap.Error(err))
		}
		email = polished
	}

	a.draft = &email

	html, err := outreach.RenderHTML(email)
	if err != nil {
		return err
	}

	a.printf("\nEMAIL PREVIEW (Plain Text)\n\n")
	a.printf("%s\n", email.PlainText())
	a.printf("\nHTML VERSION:\n\n%s\n\n", html)
	a.printf("Type 'Change subject to \"new subject\"' to edit\n\n")

	return nil
}

func (a *Agent) edit(line string) error {
	if a.draft == nil {
		a.printf("\nNo email to edit\n\n")
		return nil
	}

	subject, err := ParseEdit(line)
	if err != nil {
		return err
	}

	a.draft.SetSubject(subject)
	a.printf("\nSubject updated to: %s\n\n", a.draft.Subject)
	a.printf("Subject: %s\n%s\n\n", a.draft.Subject, a.draft.Body)
	return nil
}

// Analytics prints the pipeline report.
func (a *Agent) Analytics() error {
	candidates, err := store.LoadCandidates(a.deps.Store)
	if err != nil {
		return err
	}

	PrintSummary(a.deps.Out, analytics.Summarize(candidates))
	return nil
}

// PrintSummary writes the analytics report.
func PrintSummary(w io.Writer, s analytics.Summary) {
	fmt.Fprintf(w, "\nANALYTICS\n\n")
	fmt.Fprintf(w, "Pipeline by stage:\n")
	for _, c := range s.Stages {
		fmt.Fprintf(w, "  %s: %d\n", c.Label, c.Count)
	}
	fmt.Fprintf(w, "\nTop skills:\n")
	for _, c := range s.Skills {
		fmt.Fprintf(w, "  %s: %d\n", c.Label, c.Count)
	}
	fmt.Fprintln(w)
}

// Message turns a Handle error into the text shown to the operator.
func Message(err error) string {
	var usage *UsageError
	switch {
	case errors.As(err, &usage):
		return "\n" + usage.Hint + "\n"
	case errors.Is(err, search.ErrEmptyContext):
		return "\nError: No search results. Run a search first.\n"
	default:
		return fmt.Sprintf("Error: %v\n", err)
	}
}

func (a *Agent) commandLogger(kind Kind) *zap.Logger {
	return logger.WithFields(a.deps.Logger, logger.CommandFields(string(kind), a.deps.Backend)...)
}

func (a *Agent) printf(format string, args ...any) {
	fmt.Fprintf(a.deps.Out, format, args...)
}
