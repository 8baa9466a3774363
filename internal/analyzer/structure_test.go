package analyzer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/readmegen/readmegen/internal/models"
	testdoubles "github.com/readmegen/readmegen/test"
)

func TestBuildStructure(t *testing.T) {
	t.Parallel()

	t.Run("should list directories before files with indent and icons", func(t *testing.T) {
		t.Parallel()

		// given
		provider := &testdoubles.StubProvider{
			Listings: map[string][]models.Entry{
				"": {
					testdoubles.FileEntry("main.py", 100),
					testdoubles.DirEntry("src", "src"),
				},
				"src": {
					testdoubles.FileEntry("app.py", 50),
				},
			},
		}

		// when
		lines := BuildStructure(context.Background(), provider)

		// then
		assert.Equal(t, []string{
			"📁 src/",
			"│   ├── 🐍 app.py",
			"🐍 main.py",
		}, lines)
	})

	t.Run("should cap depth at 4 levels", func(t *testing.T) {
		t.Parallel()

		// given a chain of nested directories deeper than the bound
		listings := map[string][]models.Entry{}
		path := ""
		for i := 0; i < 8; i++ {
			child := fmt.Sprintf("d%d", i)
			childPath := strings.TrimPrefix(path+"/"+child, "/")
			listings[path] = []models.Entry{testdoubles.DirEntry(child, childPath)}
			path = childPath
		}
		listings[path] = []models.Entry{testdoubles.FileEntry("leaf.txt", 1)}
		provider := &testdoubles.StubProvider{Listings: listings}

		// when
		lines := BuildStructure(context.Background(), provider)

		// then only 4 directory levels are rendered
		assert.Len(t, lines, 4)
		for _, line := range lines {
			assert.Contains(t, line, "📁")
		}
	})

	t.Run("should cap entries at 10 directories and 15 files per level", func(t *testing.T) {
		t.Parallel()

		// given
		var entries []models.Entry
		for i := 0; i < 12; i++ {
			name := fmt.Sprintf("dir%02d", i)
			entries = append(entries, testdoubles.DirEntry(name, name))
		}
		for i := 0; i < 20; i++ {
			entries = append(entries, testdoubles.FileEntry(fmt.Sprintf("file%02d.txt", i), 1))
		}
		listings := map[string][]models.Entry{"": entries}
		for i := 0; i < 12; i++ {
			listings[fmt.Sprintf("dir%02d", i)] = []models.Entry{}
		}
		provider := &testdoubles.StubProvider{Listings: listings}

		// when
		lines := BuildStructure(context.Background(), provider)

		// then
		assert.Len(t, lines, 10+15)
	})

	t.Run("should drop a subtree whose listing fails", func(t *testing.T) {
		t.Parallel()

		// given
		provider := &testdoubles.StubProvider{
			Listings: map[string][]models.Entry{
				"": {
					testdoubles.DirEntry("broken", "broken"),
					testdoubles.FileEntry("ok.txt", 1),
				},
			},
			FailDirs: map[string]bool{"broken": true},
		}

		// when
		lines := BuildStructure(context.Background(), provider)

		// then the directory line survives but its children do not
		assert.Equal(t, []string{"📁 broken/", "📝 ok.txt"}, lines)
	})
}

func TestFileIcon(t *testing.T) {
	t.Parallel()

	cases := []struct {
		file string
		icon string
	}{
		{"script.py", "🐍"},
		{"app.tsx", "⚡"},
		{"index.html", "🌐"},
		{"style.scss", "🎨"},
		{"config.yaml", "⚙️"},
		{"notes.md", "📝"},
		{"logo.svg", "🖼️"},
		{"Dockerfile", "🐳"},
		{".env", "🔐"},
		{"conftest.py", "🐍"},
		{"test_runner.sh", "🧪"},
		{"schema.sql", "🗄️"},
		{"unknown.xyz", "📄"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.file, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.icon, FileIcon(tc.file))
		})
	}
}
