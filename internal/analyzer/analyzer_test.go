package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmegen/readmegen/internal/models"
	testdoubles "github.com/readmegen/readmegen/test"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("should populate categories, dependencies and flags", func(t *testing.T) {
		t.Parallel()

		// given
		provider := &testdoubles.StubProvider{
			Meta: &models.Metadata{
				Name:          "my-service",
				Owner:         "octocat",
				Description:   testdoubles.Str("A demo service"),
				Language:      testdoubles.Str("Python"),
				Stars:         42,
				DefaultBranch: "main",
				Topics:        []string{"demo"},
			},
			Langs: map[string]int{"Python": 1000},
			Listings: map[string][]models.Entry{
				"": {
					testdoubles.FileEntry("requirements.txt", 40),
					testdoubles.FileEntry("main.py", 120),
					testdoubles.FileEntry("Dockerfile", 80),
					testdoubles.FileEntry("test_app.py", 60),
					testdoubles.FileEntry("README.md", 30),
					testdoubles.FileEntry("LICENSE", 10),
					testdoubles.FileEntry("banner.png", 10),
				},
			},
			Contents: map[string]string{
				"requirements.txt": "flask==2.0.1\nrequests>=2.25\n",
			},
		}

		// when
		analysis, err := Analyze(context.Background(), provider)

		// then
		require.NoError(t, err)
		assert.Equal(t, "my-service", analysis.Name)
		assert.Equal(t, "octocat", analysis.Owner)
		assert.Equal(t, "A demo service", analysis.Description)
		assert.Equal(t, "Python", analysis.Language)
		assert.Equal(t, []string{"requirements.txt"}, analysis.SetupFiles)
		assert.Equal(t, []string{"Dockerfile"}, analysis.ConfigFiles)
		assert.Equal(t, []string{"test_app.py"}, analysis.TestFiles)
		assert.Equal(t, []string{"main.py"}, analysis.MainFiles)
		assert.Equal(t, []string{"README.md"}, analysis.DocFiles)
		assert.Equal(t, []string{"flask", "requests"}, analysis.Dependencies)
		assert.True(t, analysis.ReadmeExists)
		assert.True(t, analysis.LicenseExists)
		assert.NotEmpty(t, analysis.Structure)
	})

	t.Run("should count category directories as evidence", func(t *testing.T) {
		t.Parallel()

		// given a repo keeping its tests in a top-level directory
		provider := &testdoubles.StubProvider{
			Meta: &models.Metadata{Name: "svc", Owner: "octocat"},
			Listings: map[string][]models.Entry{
				"": {
					testdoubles.DirEntry("tests", "tests"),
					testdoubles.DirEntry("src", "src"),
					testdoubles.FileEntry("main.py", 120),
				},
				"tests": {},
				"src":   {},
			},
		}

		// when
		analysis, err := Analyze(context.Background(), provider)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"tests"}, analysis.TestFiles)
		assert.Equal(t, []string{"main.py"}, analysis.MainFiles)
	})

	t.Run("should degrade to metadata-only analysis when listing fails", func(t *testing.T) {
		t.Parallel()

		// given
		provider := &testdoubles.StubProvider{
			Meta: &models.Metadata{Name: "ghost", Owner: "octocat"},
			FailDirs: map[string]bool{
				"": true,
			},
			Listings: map[string][]models.Entry{},
		}

		// when
		analysis, err := Analyze(context.Background(), provider)

		// then
		require.NoError(t, err)
		assert.Empty(t, analysis.Files)
		assert.Empty(t, analysis.Dependencies)
		assert.Equal(t, "No description provided", analysis.Description)
		assert.Equal(t, "Unknown", analysis.Language)
	})

	t.Run("should skip dependency extraction when the manifest fetch fails", func(t *testing.T) {
		t.Parallel()

		// given
		provider := &testdoubles.StubProvider{
			Meta: &models.Metadata{Name: "repo", Owner: "o"},
			Listings: map[string][]models.Entry{
				"": {testdoubles.FileEntry("package.json", 100)},
			},
			FailFiles: map[string]bool{"package.json": true},
		}

		// when
		analysis, err := Analyze(context.Background(), provider)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"package.json"}, analysis.SetupFiles)
		assert.Empty(t, analysis.Dependencies)
	})

	t.Run("should propagate a metadata failure", func(t *testing.T) {
		t.Parallel()

		// given
		provider := &testdoubles.StubProvider{MetaErr: assert.AnError}

		// when
		_, err := Analyze(context.Background(), provider)

		// then
		require.Error(t, err)
	})
}
