package outreach

import (
	"fmt"
	"strings"

	"github.com/spigell/hr-agent/internal/search"
)

const (
	// DefaultJobName is used when the draft command names no job.
	DefaultJobName = "a position"
	Signature      = "Best regards,\nHR Team"
)

// Job is an entry of the job catalogue.
type Job struct {
	Title          string   `json:"title"`
	Location       string   `json:"location"`
	Snippet        string   `json:"jdSnippet"`
	SkillsRequired []string `json:"skillsRequired"`
}

// Email is an outreach draft.
type Email struct {
	Subject    string
	Body       string
	Recipients []search.Candidate
}

// FindJob returns the first job with exactly the given title.
func FindJob(jobs []Job, title string) *Job {
	for i := range jobs {
		if jobs[i].Title == title {
			return &jobs[i]
		}
	}
	return nil
}

// Draft builds the outreach email for people. job may be nil when the job
// is not in the catalogue.
func Draft(people []search.Candidate, jobName string, job *Job) Email {
	var b strings.Builder

	if len(people) == 1 {
		fmt.Fprintf(&b, "Hi %s,\n\n", people[0].FirstName)
	} else {
		b.WriteString("Hi there,\n\n")
	}

	fmt.Fprintf(&b, "We think you'd be a great fit for our %s role", jobName)

	if job != nil {
		fmt.Fprintf(&b, " in %s.\n\n%s\n\n", job.Location, job.Snippet)
		fmt.Fprintf(&b, "Skills needed: %s.\n\n", strings.Join(job.SkillsRequired, ", "))
	} else {
		b.WriteString(".\n\n")
	}

	b.WriteString("Would you like to chat this week?")

	return Email{
		Subject:    fmt.Sprintf("Exciting %s opportunity!", jobName),
		Body:       b.String(),
		Recipients: people,
	}
}

// SetSubject replaces the subject line.
func (e *Email) SetSubject(subject string) {
	e.Subject = subject
}

// RecipientNames lists recipients as "First Last, First Last".
func (e *Email) RecipientNames() string {
	names := make([]string, 0, len(e.Recipients))
	for _, p := range e.Recipients {
		names = append(names, p.FullName())
	}
	return strings.Join(names, ", ")
}

// PlainText renders the preview shown in the terminal.
func (e *Email) PlainText() string {
	return fmt.Sprintf("To: %s\nSubject: %s\n\n%s\n\n%s\n", e.RecipientNames(), e.Subject, e.Body, Signature)
}
