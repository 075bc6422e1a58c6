package filtering

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spigell/hr-agent/internal/search"
)

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that removes candidates whose email is
// listed in a JSON array stored at path. An empty path disables the step.
func NewExcludeFile(path string) Filter {
	return &excludeFileFilter{path: strings.TrimSpace(path)}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) { f.path = "" }

func (f *excludeFileFilter) IsEnabled() bool { return f.path != "" }

func (f *excludeFileFilter) Validate() error {
	info, err := os.Stat(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", f.path)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, candidates []search.Candidate) ([]search.Candidate, Step, error) {
	emails, err := readExcludedEmails(f.path)
	if err != nil {
		return nil, Step{}, fmt.Errorf("getting excluded candidates from file: %w", err)
	}

	out, step := keep(candidates, func(c search.Candidate) bool {
		_, excluded := emails[strings.ToLower(strings.TrimSpace(c.Email))]
		return !excluded
	})
	return out, step, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Details: details}
}

// readExcludedEmails returns the lowercased emails of the file. A missing or
// empty file excludes nobody.
func readExcludedEmails(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]struct{}{}, nil
	}
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{})
	if len(strings.TrimSpace(string(data))) == 0 {
		return set, nil
	}

	var emails []string
	if err := json.Unmarshal(data, &emails); err != nil {
		return nil, err
	}

	for _, e := range emails {
		set[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return set, nil
}
