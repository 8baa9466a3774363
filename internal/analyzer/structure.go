package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/readmegen/readmegen/internal/github"
	"github.com/readmegen/readmegen/internal/models"
)

// Resource bounds for the structure render. Deep or wide trees are cut off
// rather than fetched exhaustively.
const (
	maxStructureDepth = 4
	maxDirsPerLevel   = 10
	maxFilesPerLevel  = 15
)

// BuildStructure renders a bounded tree view of the repository, directories
// before files at each level, each line prefixed with an indent and a
// file-type icon. Fetch failures leave the affected subtree out of the
// listing; the render itself never fails.
func BuildStructure(ctx context.Context, provider github.Provider) []string {
	return buildStructure(ctx, provider, "", 0)
}

func buildStructure(ctx context.Context, provider github.Provider, path string, depth int) []string {
	if depth >= maxStructureDepth {
		return nil
	}

	entries, err := provider.ListDir(ctx, path)
	if err != nil {
		return nil
	}

	var dirs, files []models.Entry
	for _, e := range entries {
		if e.Type == models.EntryDir {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	if len(dirs) > maxDirsPerLevel {
		dirs = dirs[:maxDirsPerLevel]
	}
	if len(files) > maxFilesPerLevel {
		files = files[:maxFilesPerLevel]
	}

	indent := ""
	if depth > 0 {
		indent = strings.Repeat("│   ", depth) + "├── "
	}

	var lines []string
	for _, d := range dirs {
		lines = append(lines, fmt.Sprintf("%s📁 %s/", indent, d.Name))
		lines = append(lines, buildStructure(ctx, provider, d.Path, depth+1)...)
	}
	for _, f := range files {
		lines = append(lines, fmt.Sprintf("%s%s %s", indent, FileIcon(f.Name), f.Name))
	}
	return lines
}

// iconRule maps a set of filename suffixes to an icon.
type iconRule struct {
	suffixes []string
	icon     string
}

var iconRules = []iconRule{
	{[]string{".py", ".pyx"}, "🐍"},
	{[]string{".js", ".jsx", ".ts", ".tsx"}, "⚡"},
	{[]string{".html", ".htm"}, "🌐"},
	{[]string{".css", ".scss", ".sass"}, "🎨"},
	{[]string{".json", ".yaml", ".yml"}, "⚙️"},
	{[]string{".md", ".rst", ".txt"}, "📝"},
	{[]string{".jpg", ".jpeg", ".png", ".gif", ".svg"}, "🖼️"},
	{[]string{".mp4", ".avi", ".mov"}, "🎬"},
	{[]string{".mp3", ".wav", ".flac"}, "🎵"},
	{[]string{".zip", ".tar", ".gz"}, "📦"},
}

// FileIcon picks a display icon for a file name. Special names are checked
// after the extension table so "docker-compose.yml" keeps the config icon.
func FileIcon(name string) string {
	lower := strings.ToLower(name)

	for _, rule := range iconRules {
		for _, suffix := range rule.suffixes {
			if strings.HasSuffix(lower, suffix) {
				return rule.icon
			}
		}
	}

	switch {
	case lower == "dockerfile":
		return "🐳"
	case strings.HasSuffix(lower, ".env"):
		return "🔐"
	case strings.Contains(lower, "test"):
		return "🧪"
	case strings.HasSuffix(lower, ".sql") || strings.HasSuffix(lower, ".db"):
		return "🗄️"
	default:
		return "📄"
	}
}
