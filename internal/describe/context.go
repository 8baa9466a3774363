package describe

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/readmegen/readmegen/internal/github"
	"github.com/readmegen/readmegen/internal/models"
	log "github.com/sirupsen/logrus"
)

// Sampling bounds: at most 3 main files, 2 setup files and 1 README-like
// file, each truncated to its first 1000 characters; anything over 50 KB is
// skipped outright.
const (
	maxMainSamples  = 3
	maxSetupSamples = 2
	maxSampleBytes  = 50000
	maxExcerptChars = 1000
)

var readmeNames = []string{"README.md", "README.rst", "README.txt", "readme.md"}

// GatherContext projects the analysis into a RepositoryContext and samples
// key file contents through the provider. Per-file fetch failures are
// skipped; the returned context is always usable.
func GatherContext(ctx context.Context, provider github.Provider, a *models.RepositoryAnalysis, projectType models.ProjectType) *models.RepositoryContext {
	rc := &models.RepositoryContext{
		Name:         a.Name,
		Language:     a.Language,
		ProjectType:  projectType,
		Languages:    a.Languages,
		Dependencies: a.Dependencies,
		Topics:       a.Topics,
		Structure:    a.Structure,
		MainFiles:    a.MainFiles,
		SetupFiles:   a.SetupFiles,
		ConfigFiles:  a.ConfigFiles,
		TestFiles:    a.TestFiles,
	}

	var targets []string
	targets = append(targets, capped(a.MainFiles, maxMainSamples)...)
	targets = append(targets, capped(a.SetupFiles, maxSetupSamples)...)
	for _, name := range readmeNames {
		if contains(a.Files, name) {
			targets = append(targets, name)
			break
		}
	}

	for _, name := range targets {
		content, err := provider.FileContent(ctx, name)
		if err != nil {
			log.WithError(err).WithField("file", name).Debug("skipping sample")
			continue
		}
		if len(content) > maxSampleBytes {
			continue
		}
		if r := []rune(content); len(r) > maxExcerptChars {
			content = string(r[:maxExcerptChars])
		}
		rc.Samples = append(rc.Samples, models.FileSample{Name: name, Excerpt: content})
	}

	return rc
}

// BuildPrompt assembles the natural-language instruction prompt for the
// generator out of the repository context.
func BuildPrompt(rc *models.RepositoryContext) string {
	var b strings.Builder

	b.WriteString("You are an expert software developer and technical writer. ")
	b.WriteString("I need you to analyze a GitHub repository and generate a concise, ")
	b.WriteString("professional project description (1-2 sentences, maximum 150 characters).\n\n")

	b.WriteString("REPOSITORY INFORMATION:\n")
	fmt.Fprintf(&b, "- Name: %s\n", rc.Name)
	fmt.Fprintf(&b, "- Primary Language: %s\n", rc.Language)
	fmt.Fprintf(&b, "- Project Type: %s\n", rc.ProjectType)
	fmt.Fprintf(&b, "- Languages Used: %s\n", formatLanguages(rc.Languages, 5))
	fmt.Fprintf(&b, "- Dependencies: %s\n", strings.Join(capped(rc.Dependencies, 10), ", "))
	fmt.Fprintf(&b, "- Topics/Tags: %s\n", strings.Join(rc.Topics, ", "))

	b.WriteString("\nREPOSITORY STRUCTURE:\n")
	b.WriteString(strings.Join(capped(rc.Structure, 20), "\n"))
	b.WriteString("\n")

	b.WriteString("\nKEY FILES FOUND:\n")
	fmt.Fprintf(&b, "- Main files: %s\n", strings.Join(rc.MainFiles, ", "))
	fmt.Fprintf(&b, "- Config files: %s\n", strings.Join(rc.ConfigFiles, ", "))
	fmt.Fprintf(&b, "- Setup files: %s\n", strings.Join(rc.SetupFiles, ", "))
	fmt.Fprintf(&b, "- Test files: %s\n", strings.Join(capped(rc.TestFiles, 5), ", "))

	b.WriteString("\nSAMPLE FILE CONTENTS:\n")
	for _, s := range rc.Samples {
		fmt.Fprintf(&b, "\n--- %s (first 1000 chars) ---\n%s\n", s.Name, s.Excerpt)
	}

	b.WriteString(`
TASK:
Based on the above repository analysis, generate a concise, professional description that explains what this project does. The description should:

1. Be 1-2 sentences maximum (under 150 characters total)
2. Clearly explain the project's purpose and main functionality
3. Be written in present tense (e.g., "A web application that manages..." not "This project is...")
4. Include the main technology stack if relevant
5. Sound professional and engaging
6. NEVER include phrases like "No description provided" or "Description not available"

Focus on understanding what the code actually does by analyzing the file structure, dependencies, and code samples. Infer the project's purpose from these technical details.

Generate only the description text, nothing else:`)

	return b.String()
}

// formatLanguages lists the top n languages by byte count.
func formatLanguages(langs map[string]int, n int) string {
	type kv struct {
		name  string
		bytes int
	}
	sorted := make([]kv, 0, len(langs))
	for name, bytes := range langs {
		sorted = append(sorted, kv{name, bytes})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].bytes != sorted[j].bytes {
			return sorted[i].bytes > sorted[j].bytes
		}
		return sorted[i].name < sorted[j].name
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	parts := make([]string, len(sorted))
	for i, l := range sorted {
		parts[i] = fmt.Sprintf("%s (%d bytes)", l.name, l.bytes)
	}
	return strings.Join(parts, ", ")
}

func capped(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
