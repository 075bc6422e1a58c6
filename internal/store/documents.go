package store

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/spigell/hr-agent/internal/outreach"
	"github.com/spigell/hr-agent/internal/search"
)

const (
	CandidatesDoc = "candidates.json"
	JobsDoc       = "jobs.json"
	ShortlistsDoc = "shortlists.json"
)

var validate = validator.New()

var dateType = reflect.TypeOf(search.Date{})

// LoadCandidates reads and validates the candidate pool. Any malformed record
// fails the whole load.
func LoadCandidates(s Store) ([]search.Candidate, error) {
	var candidates []search.Candidate
	if err := loadList(s, CandidatesDoc, &candidates); err != nil {
		return nil, err
	}

	for i, c := range candidates {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("candidate #%d (%s): %w", i+1, c.FullName(), err)
		}
		if c.AvailabilityDate.IsZero() {
			return nil, fmt.Errorf("candidate #%d (%s): availabilityDate is required", i+1, c.FullName())
		}
	}

	return candidates, nil
}

// LoadJobs reads the job catalogue.
func LoadJobs(s Store) ([]outreach.Job, error) {
	var jobs []outreach.Job
	if err := loadList(s, JobsDoc, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// LoadShortlists reads every saved shortlist keyed by name.
func LoadShortlists(s Store) (map[string][]search.Candidate, error) {
	raw, err := readDocument(s, ShortlistsDoc)
	if err != nil {
		return nil, err
	}

	lists := make(map[string][]search.Candidate)
	if raw == nil {
		return lists, nil
	}

	if _, ok := raw.(map[string]any); !ok {
		return nil, fmt.Errorf("%s: expected an object, got %T", ShortlistsDoc, raw)
	}

	if err := decode(raw, &lists); err != nil {
		return nil, fmt.Errorf("%s: %w", ShortlistsDoc, err)
	}

	return lists, nil
}

// SaveShortlists replaces the shortlist document.
func SaveShortlists(s Store, lists map[string][]search.Candidate) error {
	doc, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal shortlists: %w", err)
	}
	return s.Put(ShortlistsDoc, doc)
}

// loadList decodes a list document. The empty document created on first
// access counts as an empty list.
func loadList(s Store, name string, out any) error {
	raw, err := readDocument(s, name)
	if err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		return nil
	case map[string]any:
		if len(v) == 0 {
			return nil
		}
		return fmt.Errorf("%s: expected a list, got an object", name)
	case []any:
		if err := decode(v, out); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	default:
		return fmt.Errorf("%s: expected a list, got %T", name, raw)
	}
}

func readDocument(s Store, name string) (any, error) {
	doc, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	return raw, nil
}

func decode(input, out any) error {
	cfg := &mapstructure.DecoderConfig{
		DecodeHook: stringToDateHook,
		Result:     out,
		TagName:    "json",
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

func stringToDateHook(from, to reflect.Type, data any) (any, error) {
	if to != dateType || from.Kind() != reflect.String {
		return data, nil
	}
	return search.ParseDate(data.(string))
}
