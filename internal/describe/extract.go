package describe

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/readmegen/readmegen/internal/github"
	"github.com/readmegen/readmegen/internal/models"
)

// Description mining: pull candidate descriptions out of the repository's
// own files (README prose, manifest description fields, lead comments) and
// keep the longest usable one. Best-effort evidence gathering; every failure
// degrades to "no candidate".

const (
	maxReadmeBytes = 100000
	maxMinedLen    = 300
	minMinedLen    = 30
)

var (
	setupDescPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)description\s*=\s*["']([^"']+)["']`),
		regexp.MustCompile(`(?i)long_description\s*=\s*["']([^"']+)["']`),
	}
	tomlDescPattern = regexp.MustCompile(`(?i)description\s*=\s*["']([^"']+)["']`)
	docstringPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)"""([^"]{50,500})"""`),
		regexp.MustCompile(`(?s)'''([^']{50,500})'''`),
	}
	jsCommentPattern = regexp.MustCompile(`(?s)/\*\*?([^*]{50,300})\*/`)
)

// MineDescription scans repository contents for an existing description.
// Returns "" when nothing usable is found.
func MineDescription(ctx context.Context, provider github.Provider, a *models.RepositoryAnalysis) string {
	var candidates []string

	if d := fromReadme(ctx, provider, a); d != "" {
		candidates = append(candidates, d)
	}
	if d := fromPackageJSON(ctx, provider, a); d != "" {
		candidates = append(candidates, d)
	}
	if d := fromSetupPy(ctx, provider); d != "" {
		candidates = append(candidates, d)
	}
	if d := fromSourceComments(ctx, provider, a); d != "" {
		candidates = append(candidates, d)
	}
	if d := fromTOML(ctx, provider); d != "" {
		candidates = append(candidates, d)
	}

	best := ""
	for _, c := range candidates {
		if len(c) > len(best) {
			best = c
		}
	}
	if len(best) > minMinedLen {
		return best
	}
	return ""
}

// fromReadme takes the first prose block after the title, skipping badges,
// images and list/code markers.
func fromReadme(ctx context.Context, provider github.Provider, a *models.RepositoryAnalysis) string {
	for _, name := range readmeNames {
		if !contains(a.Files, name) {
			continue
		}
		content, err := provider.FileContent(ctx, name)
		if err != nil || len(content) > maxReadmeBytes {
			continue
		}

		titleFound := false
		var descLines []string
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "#") {
				titleFound = true
				continue
			}
			if strings.Contains(line, "![") || strings.HasPrefix(line, "[![") {
				continue
			}
			if strings.HasPrefix(line, "```") || strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "*") {
				break
			}
			if titleFound && len(line) > 20 {
				descLines = append(descLines, line)
				if len(strings.Join(descLines, " ")) > 150 {
					break
				}
			}
		}

		if len(descLines) > 0 {
			desc := strings.Join(descLines, " ")
			desc = strings.NewReplacer("**", "", "*", "", "`", "").Replace(desc)
			if r := []rune(desc); len(r) > maxMinedLen {
				desc = string(r[:maxMinedLen])
			}
			return strings.TrimSpace(desc)
		}
	}
	return ""
}

func fromPackageJSON(ctx context.Context, provider github.Provider, a *models.RepositoryAnalysis) string {
	content, err := provider.FileContent(ctx, "package.json")
	if err != nil {
		return ""
	}
	var pkg struct {
		Description string `json:"description"`
	}
	if jsonErr := json.Unmarshal([]byte(content), &pkg); jsonErr != nil {
		return ""
	}
	if len(pkg.Description) > 20 && pkg.Description != a.Name {
		return pkg.Description
	}
	return ""
}

func fromSetupPy(ctx context.Context, provider github.Provider) string {
	content, err := provider.FileContent(ctx, "setup.py")
	if err != nil {
		return ""
	}
	for _, p := range setupDescPatterns {
		if m := p.FindStringSubmatch(content); m != nil {
			desc := strings.TrimSpace(m[1])
			if len(desc) > 20 {
				return desc
			}
		}
	}
	return ""
}

func fromTOML(ctx context.Context, provider github.Provider) string {
	for _, name := range []string{"pyproject.toml", "Cargo.toml"} {
		content, err := provider.FileContent(ctx, name)
		if err != nil {
			continue
		}
		if m := tomlDescPattern.FindStringSubmatch(content); m != nil {
			desc := strings.TrimSpace(m[1])
			if len(desc) > 20 {
				return desc
			}
		}
	}
	return ""
}

func fromSourceComments(ctx context.Context, provider github.Provider, a *models.RepositoryAnalysis) string {
	for _, name := range capped(a.MainFiles, 3) {
		content, err := provider.FileContent(ctx, name)
		if err != nil || len(content) > maxSampleBytes {
			continue
		}

		var desc string
		switch {
		case strings.HasSuffix(name, ".py"):
			desc = pythonDocstring(content)
		case strings.HasSuffix(name, ".js"), strings.HasSuffix(name, ".ts"),
			strings.HasSuffix(name, ".jsx"), strings.HasSuffix(name, ".tsx"):
			desc = jsHeaderComment(content)
		default:
			desc = leadComments(content)
		}
		if desc != "" {
			return desc
		}
	}
	return ""
}

func pythonDocstring(content string) string {
	for _, p := range docstringPatterns {
		if m := p.FindStringSubmatch(content); m != nil {
			var clean []string
			for _, line := range strings.Split(m[1], "\n") {
				if line = strings.TrimSpace(line); line != "" {
					clean = append(clean, line)
				}
			}
			if len(clean) > 3 {
				clean = clean[:3]
			}
			if len(clean) > 0 {
				return strings.Join(clean, " ")
			}
		}
	}
	return ""
}

func jsHeaderComment(content string) string {
	if m := jsCommentPattern.FindStringSubmatch(content); m != nil {
		comment := strings.NewReplacer("*", "", "@", "").Replace(m[1])
		var clean []string
		for _, line := range strings.Split(comment, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				clean = append(clean, line)
			}
		}
		if len(clean) > 2 {
			clean = clean[:2]
		}
		if len(clean) > 0 {
			return strings.Join(clean, " ")
		}
	}
	return ""
}

func leadComments(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > 20 {
		lines = lines[:20]
	}

	var comments []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "//") {
			continue
		}
		comment := strings.TrimSpace(strings.TrimLeft(line, "#/"))
		lower := strings.ToLower(comment)
		if len(comment) > 20 &&
			!strings.Contains(lower, "todo") && !strings.Contains(lower, "fixme") &&
			!strings.Contains(lower, "import") && !strings.Contains(lower, "require") {
			comments = append(comments, comment)
		}
		if len(comments) == 2 {
			break
		}
	}
	if len(comments) > 0 {
		return strings.Join(comments, " ")
	}
	return ""
}
