package readme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/readmegen/readmegen/internal/models"
)

func webAppAnalysis() *models.RepositoryAnalysis {
	return &models.RepositoryAnalysis{
		Name:         "my-shop-app",
		Owner:        "octocat",
		Language:     "JavaScript",
		Languages:    map[string]int{"JavaScript": 7000, "CSS": 2000, "HTML": 1000},
		Files:        []string{"index.html", "package.json", "Dockerfile"},
		Dependencies: []string{"react", "express"},
		SetupFiles:   []string{"package.json"},
		ConfigFiles:  []string{"Dockerfile"},
		MainFiles:    []string{"index.html"},
		Structure:    []string{"📁 src/", "│   ├── ⚡ app.js", "🌐 index.html"},
	}
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	t.Run("should render every section and leave no placeholders", func(t *testing.T) {
		t.Parallel()

		// when
		doc := Assemble(webAppAnalysis(), models.WebApp, "An e-commerce platform for online shopping.")

		// then
		assert.NotContains(t, doc, "{{")
		assert.NotContains(t, doc, "}}")
		for _, heading := range []string{
			"## 📋 Table of Contents",
			"## ✨ Features",
			"## 🛠️ Technologies",
			"## 🚀 Quick Start",
			"## 📁 Project Structure",
			"## ⚙️ Installation",
			"## 🎯 Usage",
			"## 🔧 Configuration",
			"## 📖 API Documentation",
			"## 🧪 Testing",
			"## 🚢 Deployment",
			"## 🤝 Contributing",
			"## 📝 License",
			"## 💬 Support",
		} {
			assert.Contains(t, doc, heading)
		}
		assert.Contains(t, doc, "# 🌐 my-shop-app")
		assert.Contains(t, doc, "An e-commerce platform for online shopping.")
		assert.Contains(t, doc, "github.com/octocat/my-shop-app")
	})

	t.Run("should include a preview block only for web types", func(t *testing.T) {
		t.Parallel()

		// when
		webDoc := Assemble(webAppAnalysis(), models.WebApp, "Desc.")
		cliDoc := Assemble(webAppAnalysis(), models.CLI, "Desc.")

		// then
		assert.Contains(t, webDoc, "Project Preview")
		assert.NotContains(t, cliDoc, "Project Preview")
	})

	t.Run("should cap the structure block at 40 lines", func(t *testing.T) {
		t.Parallel()

		// given
		a := webAppAnalysis()
		a.Structure = nil
		for i := 0; i < 60; i++ {
			a.Structure = append(a.Structure, "📄 file.txt")
		}

		// when
		doc := Assemble(a, models.WebApp, "Desc.")

		// then
		assert.Equal(t, 40, strings.Count(doc, "📄 file.txt"))
	})
}

func TestSections(t *testing.T) {
	t.Parallel()

	t.Run("features should include type base features and detected extras", func(t *testing.T) {
		t.Parallel()

		// given
		a := webAppAnalysis()
		a.TestFiles = []string{"app.test.js"}

		// when
		got := featuresList(a, models.WebApp)

		// then
		assert.Contains(t, got, "🌐 Modern web interface")
		assert.Contains(t, got, "🧪 Comprehensive test suite")
	})

	t.Run("technologies should show language percentages and dependencies", func(t *testing.T) {
		t.Parallel()

		// when
		got := technologiesSection(webAppAnalysis())

		// then
		assert.Contains(t, got, "- **JavaScript** (70.0%)")
		assert.Contains(t, got, "- `react`")
		assert.Contains(t, got, "🐳 Docker")
	})

	t.Run("quick start should follow the manifest type", func(t *testing.T) {
		t.Parallel()

		// when
		got := quickStart(webAppAnalysis())

		// then
		assert.Contains(t, got, "npm install")
		assert.Contains(t, got, "git clone https://github.com/octocat/my-shop-app.git")
	})

	t.Run("testing should use the placeholder without test files", func(t *testing.T) {
		t.Parallel()

		// given
		a := webAppAnalysis()
		a.TestFiles = nil

		// when
		got := testingSection(a)

		// then
		assert.Contains(t, got, "No tests yet")
	})

	t.Run("testing should pick pytest for python repos with tests", func(t *testing.T) {
		t.Parallel()

		// given
		a := webAppAnalysis()
		a.Language = "Python"
		a.TestFiles = []string{"test_app.py"}

		// when
		got := testingSection(a)

		// then
		assert.Contains(t, got, "pytest")
	})

	t.Run("deployment should include docker for containerized repos", func(t *testing.T) {
		t.Parallel()

		// when
		got := deploymentSection(webAppAnalysis(), models.WebApp)

		// then
		assert.Contains(t, got, "docker build -t my-shop-app")
		assert.Contains(t, got, "Vercel")
	})

	t.Run("deployment should degrade to a placeholder without evidence", func(t *testing.T) {
		t.Parallel()

		// given
		a := webAppAnalysis()
		a.ConfigFiles = nil

		// when
		got := deploymentSection(a, models.Library)

		// then
		assert.Contains(t, got, "Deployment instructions will be added")
	})

	t.Run("configuration should degrade without config files", func(t *testing.T) {
		t.Parallel()

		// given
		a := webAppAnalysis()
		a.ConfigFiles = nil

		// when
		got := configurationSection(a)

		// then
		assert.Contains(t, got, "works out of the box")
	})

	t.Run("api docs should render the endpoint table only for api projects", func(t *testing.T) {
		t.Parallel()

		// then
		assert.Contains(t, apiDocsSection(models.API), "/api/health")
		assert.Equal(t, "Coming soon...", apiDocsSection(models.WebApp))
	})
}
