package search

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the text form of calendar dates in candidate documents.
const DateLayout = "2006-01-02"

// Date is a naive calendar date. The time part is always midnight UTC so two
// dates compare by day regardless of the process time zone.
type Date struct {
	time.Time
}

// NewDate returns the calendar day of t as seen in t's own location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in the 2006-01-02 form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Candidate is a single record of the candidate pool.
type Candidate struct {
	FirstName        string   `json:"firstName" validate:"required"`
	LastName         string   `json:"lastName" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Skills           []string `json:"skills"`
	Location         string   `json:"location"`
	ExperienceYears  int      `json:"experienceYears" validate:"gte=0"`
	AvailabilityDate Date     `json:"availabilityDate"`
	Stage            string   `json:"stage"`
}

// FullName returns "First Last".
func (c Candidate) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Clone returns a copy that shares no slices with c.
func (c Candidate) Clone() Candidate {
	c.Skills = append([]string(nil), c.Skills...)
	return c
}

// HasSkill reports whether the candidate lists the skill exactly.
func (c Candidate) HasSkill(skill string) bool {
	for _, s := range c.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
