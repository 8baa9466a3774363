package analyzer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDependencies_Requirements(t *testing.T) {
	t.Parallel()

	t.Run("should skip comments and split at version operators", func(t *testing.T) {
		t.Parallel()

		// given
		content := "flask==2.0.1\n# comment\nrequests>=2.25\n"

		// when
		deps := ExtractDependencies("requirements.txt", content)

		// then
		assert.Equal(t, []string{"flask", "requests"}, deps)
	})

	t.Run("should handle all comparison operators and blank lines", func(t *testing.T) {
		t.Parallel()

		// given
		content := "numpy<2\n\npandas!=1.0\nscipy=1.2\n"

		// when
		deps := ExtractDependencies("requirements.txt", content)

		// then
		assert.Equal(t, []string{"numpy", "pandas", "scipy"}, deps)
	})
}

func TestExtractDependencies_PackageJSON(t *testing.T) {
	t.Parallel()

	t.Run("should list direct dependencies before dev dependencies in key order", func(t *testing.T) {
		t.Parallel()

		// given
		content := `{
			"name": "demo",
			"dependencies": {"react": "^18.0.0", "express": "^4.18.0"},
			"devDependencies": {"jest": "^29.0.0"}
		}`

		// when
		deps := ExtractDependencies("package.json", content)

		// then
		assert.Equal(t, []string{"react", "express", "jest"}, deps)
	})

	t.Run("should truncate at 20 with direct dependencies prioritized", func(t *testing.T) {
		t.Parallel()

		// given
		var direct, dev []string
		for i := 0; i < 30; i++ {
			direct = append(direct, fmt.Sprintf("\"dep%02d\": \"1.0.0\"", i))
		}
		for i := 0; i < 10; i++ {
			dev = append(dev, fmt.Sprintf("\"devdep%02d\": \"1.0.0\"", i))
		}
		content := fmt.Sprintf(`{"dependencies": {%s}, "devDependencies": {%s}}`,
			strings.Join(direct, ","), strings.Join(dev, ","))

		// when
		deps := ExtractDependencies("package.json", content)

		// then
		require.Len(t, deps, 20)
		assert.Equal(t, "dep00", deps[0])
		assert.Equal(t, "dep19", deps[19])
		assert.NotContains(t, deps, "devdep00")
	})

	t.Run("should return empty on malformed JSON", func(t *testing.T) {
		t.Parallel()

		// when
		deps := ExtractDependencies("package.json", "{not json")

		// then
		assert.Empty(t, deps)
	})
}

func TestExtractDependencies_PomXML(t *testing.T) {
	t.Parallel()

	t.Run("should extract artifact ids in document order", func(t *testing.T) {
		t.Parallel()

		// given
		content := `<project>
			<dependencies>
				<dependency><artifactId>spring-core</artifactId></dependency>
				<dependency><artifactId>junit</artifactId></dependency>
			</dependencies>
		</project>`

		// when
		deps := ExtractDependencies("pom.xml", content)

		// then
		assert.Equal(t, []string{"spring-core", "junit"}, deps)
	})
}

func TestExtractDependencies_Unrecognized(t *testing.T) {
	t.Parallel()

	t.Run("should return empty for unknown manifests", func(t *testing.T) {
		t.Parallel()

		// when
		deps := ExtractDependencies("Cargo.toml", "[dependencies]\nserde = \"1\"")

		// then
		assert.Empty(t, deps)
	})
}
