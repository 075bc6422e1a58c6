package agent

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/spigell/hr-agent/internal/outreach"
)

// Kind is the command recognised in an input line.
type Kind string

const (
	KindQuit      Kind = "quit"
	KindSearch    Kind = "search"
	KindSave      Kind = "save"
	KindDraft     Kind = "draft"
	KindEdit      Kind = "edit"
	KindAnalytics Kind = "analytics"
	KindUnknown   Kind = "unknown"
)

const (
	SaveUsage  = `Format: Save #1 #3 as "Name"`
	DraftUsage = `Format: Draft email for "List-Name" using job "Job-Name"`
	EditUsage  = `Format: Change subject to "New Subject"`
)

// ErrUsage matches every UsageError.
var ErrUsage = errors.New("invalid command format")

// UsageError reports a command whose required argument could not be extracted.
type UsageError struct {
	Hint string
}

func (e *UsageError) Error() string { return e.Hint }

func (e *UsageError) Is(target error) bool { return target == ErrUsage }

var (
	indexRe     = regexp.MustCompile(`#(\d+)`)
	saveNameRe  = regexp.MustCompile(`as\s+["']?([^"']+)["']?`)
	draftListRe = regexp.MustCompile(`for\s+["']([^"']+)["']`)
	draftJobRe  = regexp.MustCompile(`job\s+["']([^"']+)["']`)
	editToRe    = regexp.MustCompile(`to\s+["']([^"']+)["']`)
)

// Classify sniffs the command keyword. Earlier kinds win when a line holds
// several keywords.
func Classify(line string) Kind {
	lower := strings.ToLower(strings.TrimSpace(line))

	switch {
	case lower == "quit" || lower == "exit":
		return KindQuit
	case containsAny(lower, "find", "search"):
		return KindSearch
	case strings.Contains(lower, "save"):
		return KindSave
	case containsAny(lower, "draft", "email"):
		return KindDraft
	case containsAny(lower, "change", "edit"):
		return KindEdit
	case containsAny(lower, "analytics", "stats"):
		return KindAnalytics
	default:
		return KindUnknown
	}
}

// SaveCommand is `Save #1 #3 as "Name"`.
type SaveCommand struct {
	Name    string
	Indices []int
}

func ParseSave(line string) (SaveCommand, error) {
	var cmd SaveCommand

	for _, m := range indexRe.FindAllStringSubmatch(line, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		cmd.Indices = append(cmd.Indices, n)
	}

	if m := saveNameRe.FindStringSubmatch(line); m != nil {
		cmd.Name = strings.TrimSpace(m[1])
	}

	if len(cmd.Indices) == 0 || cmd.Name == "" {
		return SaveCommand{}, &UsageError{Hint: SaveUsage}
	}

	return cmd, nil
}

// DraftCommand is `Draft email for "List" using job "Job"`.
type DraftCommand struct {
	List string
	Job  string
}

func ParseDraft(line string) (DraftCommand, error) {
	m := draftListRe.FindStringSubmatch(line)
	if m == nil {
		return DraftCommand{}, &UsageError{Hint: DraftUsage}
	}

	cmd := DraftCommand{List: m[1], Job: outreach.DefaultJobName}
	if jm := draftJobRe.FindStringSubmatch(line); jm != nil {
		cmd.Job = jm[1]
	}

	return cmd, nil
}

// ParseEdit extracts the new subject of `Change subject to "New Subject"`.
func ParseEdit(line string) (string, error) {
	if !strings.Contains(strings.ToLower(line), "subject") {
		return "", &UsageError{Hint: EditUsage}
	}

	m := editToRe.FindStringSubmatch(line)
	if m == nil {
		return "", &UsageError{Hint: EditUsage}
	}

	return m[1], nil
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
