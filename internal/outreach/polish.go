package outreach

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/hr-agent/internal/utils"
)

const (
	polishSystemPrompt = `You are a recruiter writing short outreach emails.
Rewrite the email body you are given so it reads warm and professional.
Keep the greeting line, every fact, the job title, location and skills unchanged.
Do not add a subject line or a signature. Answer with the body text only.`

	defaultMaxLogLength = 200
)

// contentGenerator is implemented by gemini.Generator.
type contentGenerator interface {
	GenerateContent(ctx context.Context, systemPrompt, message string) (string, error)
}

// Polisher rewrites draft bodies with a language model.
type Polisher struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewPolisher(generator contentGenerator, maxLogLength int, logger *zap.Logger) *Polisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Polisher{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Polish returns a copy of e with a rewritten body. On failure the original
// draft is returned together with the error.
func (p *Polisher) Polish(ctx context.Context, e Email) (Email, error) {
	if p == nil || p.generator == nil {
		return e, fmt.Errorf("polisher is not configured")
	}

	p.logger.Debug("polish request",
		zap.Int("body_length", utf8.RuneCountInString(e.Body)),
		zap.String("body_preview", utils.TruncateForLog(e.Body, p.maxLogLen)),
	)

	raw, err := p.generator.GenerateContent(ctx, polishSystemPrompt, e.Body)
	if err != nil {
		return e, fmt.Errorf("polish email body: %w", err)
	}

	body := cleanBody(raw)
	if body == "" {
		return e, fmt.Errorf("polish email body: empty response")
	}

	p.logger.Debug("polish response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, p.maxLogLen)),
	)

	polished := e
	polished.Body = body
	return polished, nil
}

// cleanBody strips code fences and a trailing signature the model may add.
func cleanBody(raw string) string {
	body := strings.TrimSpace(raw)
	if strings.HasPrefix(body, "```") {
		body = strings.TrimPrefix(body, "```text")
		body = strings.TrimPrefix(body, "```")
		if idx := strings.LastIndex(body, "```"); idx != -1 {
			body = body[:idx]
		}
	}
	body = strings.TrimSpace(body)

	if idx := strings.LastIndex(body, "Best regards"); idx != -1 {
		body = strings.TrimSpace(body[:idx])
	}

	return body
}
