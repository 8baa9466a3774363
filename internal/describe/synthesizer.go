package describe

import (
	"context"
	"regexp"
	"strings"

	"github.com/readmegen/readmegen/internal/github"
	"github.com/readmegen/readmegen/internal/models"
	log "github.com/sirupsen/logrus"
)

// Synthesizer produces a project description: AI-primary when a generator is
// configured, deterministic template fallback otherwise. Synthesize never
// returns an empty string and never propagates an error.
type Synthesizer struct {
	gen Generator
}

// NewSynthesizer takes the generator explicitly; pass nil when no AI
// credential is configured.
func NewSynthesizer(gen Generator) *Synthesizer {
	return &Synthesizer{gen: gen}
}

const (
	minUsableLen = 30
	maxDescLen   = 200
)

var (
	labelPrefix   = regexp.MustCompile(`(?i)^(Description|Project Description|Summary):\s*`)
	leadingFiller = regexp.MustCompile(`(?i)^(This is |This project is |The project is )`)
)

func (s *Synthesizer) Synthesize(ctx context.Context, provider github.Provider, a *models.RepositoryAnalysis, projectType models.ProjectType) string {
	if s.gen != nil {
		if desc, ok := s.tryAI(ctx, provider, a, projectType); ok {
			return desc
		}
	}
	return Fallback(a, projectType)
}

// tryAI runs the generator path. Any failure or unusable response reports
// ok=false so the caller falls through to the template fallback.
func (s *Synthesizer) tryAI(ctx context.Context, provider github.Provider, a *models.RepositoryAnalysis, projectType models.ProjectType) (string, bool) {
	rc := GatherContext(ctx, provider, a, projectType)
	prompt := BuildPrompt(rc)

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.WithError(err).Warn("AI description generation failed, using fallback")
		return "", false
	}

	desc := Clean(raw)
	if len(desc) <= minUsableLen || strings.Contains(strings.ToLower(desc), "no description provided") {
		log.WithField("length", len(desc)).Debug("AI description rejected")
		return "", false
	}
	return desc, true
}

// Clean normalizes a raw model response: label prefixes and filler openings
// are stripped, wrapping quotes removed, whitespace collapsed, a trailing
// period enforced and the result hard-capped at 200 characters.
func Clean(raw string) string {
	desc := strings.TrimSpace(raw)
	desc = labelPrefix.ReplaceAllString(desc, "")
	desc = leadingFiller.ReplaceAllString(desc, "")
	desc = strings.Trim(desc, `"'`)

	desc = strings.Join(strings.Fields(desc), " ")

	if desc != "" && !strings.HasSuffix(desc, ".") {
		desc += "."
	}

	// Cap by characters, not bytes, so multi-byte runes are never split.
	if r := []rune(desc); len(r) > maxDescLen {
		desc = string(r[:maxDescLen-3]) + "..."
	}
	return desc
}
