// Package analytics aggregates the candidate pool for the pipeline report.
package analytics

import (
	"slices"

	"github.com/spigell/hr-agent/internal/search"
)

// TopSkills is how many skills the report lists.
const TopSkills = 3

// Count is a label with the number of candidates carrying it.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary is the pipeline report.
type Summary struct {
	Stages []Count `json:"stages"`
	Skills []Count `json:"skills"`
}

// Summarize counts candidates per stage (first-seen order) and returns the
// most common skills. Skills with equal counts keep first-seen order.
func Summarize(candidates []search.Candidate) Summary {
	stages := newCounter()
	skills := newCounter()

	for _, c := range candidates {
		stages.add(c.Stage)
		for _, skill := range c.Skills {
			skills.add(skill)
		}
	}

	top := skills.counts()
	slices.SortStableFunc(top, func(a, b Count) int {
		return b.Count - a.Count
	})
	if len(top) > TopSkills {
		top = top[:TopSkills]
	}

	return Summary{Stages: stages.counts(), Skills: top}
}

type counter struct {
	index map[string]int
	items []Count
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(label string) {
	if i, ok := c.index[label]; ok {
		c.items[i].Count++
		return
	}
	c.index[label] = len(c.items)
	c.items = append(c.items, Count{Label: label, Count: 1})
}

func (c *counter) counts() []Count {
	out := make([]Count, len(c.items))
	copy(out, c.items)
	return out
}
