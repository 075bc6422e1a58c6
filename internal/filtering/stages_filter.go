package filtering

import (
	"context"
	"strings"

	"github.com/spigell/hr-agent/internal/search"
)

type stagesFilter struct {
	stages   map[string]struct{}
	disabled bool
	reason   string
}

// NewExcludedStages creates a filter that removes candidates whose pipeline
// stage is listed. Stage names compare case-insensitively.
func NewExcludedStages(stages []string) Filter {
	set := make(map[string]struct{}, len(stages))
	for _, s := range stages {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			set[s] = struct{}{}
		}
	}

	f := &stagesFilter{stages: set}
	if len(set) == 0 {
		f.Disable("no stages configured")
	}
	return f
}

func (f *stagesFilter) Name() string { return "excluded_stages" }

func (f *stagesFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *stagesFilter) IsEnabled() bool { return !f.disabled }

func (f *stagesFilter) Validate() error { return nil }

func (f *stagesFilter) Apply(_ context.Context, candidates []search.Candidate) ([]search.Candidate, Step, error) {
	out, step := keep(candidates, func(c search.Candidate) bool {
		_, excluded := f.stages[strings.ToLower(strings.TrimSpace(c.Stage))]
		return !excluded
	})
	return out, step, nil
}

func (f *stagesFilter) Status() Status {
	names := make([]string, 0, len(f.stages))
	for s := range f.stages {
		names = append(names, s)
	}
	details := map[string]string{}
	if len(names) > 0 {
		details["stages"] = strings.Join(names, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
