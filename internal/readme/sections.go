package readme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/readmegen/readmegen/internal/models"
)

// Every section generator here is total: given thin evidence it returns a
// generic placeholder instead of failing.

var typeFeatures = map[models.ProjectType][]string{
	models.WebApp:          {"🌐 Modern web interface", "📱 Responsive design", "⚡ Fast performance"},
	models.API:             {"🔌 RESTful API endpoints", "📚 Comprehensive documentation", "🔒 Secure authentication"},
	models.Mobile:          {"📱 Cross-platform compatibility", "🎨 Native UI components", "🔄 Offline functionality"},
	models.DataScience:     {"📊 Data visualization", "🔍 Statistical analysis", "📈 Interactive charts"},
	models.MachineLearning: {"🤖 AI-powered predictions", "📊 Model training", "🎯 High accuracy"},
	models.CLI:             {"⌨️ Command-line interface", "🔧 Configurable options", "📝 Detailed help system"},
}

const maxFeatures = 8

func featuresList(a *models.RepositoryAnalysis, projectType models.ProjectType) string {
	features := typeFeatures[projectType]
	if features == nil {
		features = []string{"🚀 Core functionality", "⚡ High performance"}
	}

	depsBlob := strings.ToLower(strings.Join(a.Dependencies, " "))
	if strings.Contains(depsBlob, "docker") {
		features = append(features, "🐳 Docker containerization")
	}
	if len(a.TestFiles) > 0 {
		features = append(features, "🧪 Comprehensive test suite")
	}
	if strings.Contains(strings.ToLower(a.Description), "api") {
		features = append(features, "🔌 RESTful API")
	}
	if strings.Contains(depsBlob, "database") {
		features = append(features, "🗄️ Database integration")
	}

	if len(features) > maxFeatures {
		features = features[:maxFeatures]
	}

	lines := make([]string, len(features))
	for i, f := range features {
		lines[i] = "- " + f
	}
	return strings.Join(lines, "\n")
}

func technologiesSection(a *models.RepositoryAnalysis) string {
	var sections []string

	if len(a.Languages) > 0 {
		total := 0
		for _, b := range a.Languages {
			total += b
		}

		type langShare struct {
			name  string
			bytes int
		}
		langs := make([]langShare, 0, len(a.Languages))
		for name, bytes := range a.Languages {
			langs = append(langs, langShare{name, bytes})
		}
		sort.Slice(langs, func(i, j int) bool {
			if langs[i].bytes != langs[j].bytes {
				return langs[i].bytes > langs[j].bytes
			}
			return langs[i].name < langs[j].name
		})
		if len(langs) > 5 {
			langs = langs[:5]
		}

		var b strings.Builder
		b.WriteString("### Programming Languages\n\n")
		for _, l := range langs {
			pct := float64(l.bytes) / float64(total) * 100
			fmt.Fprintf(&b, "- **%s** (%.1f%%)\n", l.name, pct)
		}
		sections = append(sections, b.String())
	}

	if len(a.Dependencies) > 0 {
		deps := a.Dependencies
		if len(deps) > 10 {
			deps = deps[:10]
		}
		var b strings.Builder
		b.WriteString("### Frameworks & Libraries\n\n")
		for _, d := range deps {
			fmt.Fprintf(&b, "- `%s`\n", d)
		}
		sections = append(sections, b.String())
	}

	var tools []string
	for _, f := range a.ConfigFiles {
		lower := strings.ToLower(f)
		if strings.Contains(lower, "docker") {
			tools = append(tools, "🐳 Docker")
		}
		if strings.Contains(lower, "makefile") {
			tools = append(tools, "🔨 Make")
		}
	}
	if len(tools) > 0 {
		lines := make([]string, len(tools))
		for i, t := range tools {
			lines[i] = "- " + t
		}
		sections = append(sections, "### Tools & Utilities\n\n"+strings.Join(lines, "\n"))
	}

	if len(sections) == 0 {
		return "Technology details will be documented as the project evolves."
	}
	return strings.Join(sections, "\n")
}

func quickStart(a *models.RepositoryAnalysis) string {
	var b strings.Builder
	b.WriteString("Get up and running in minutes:\n\n")
	b.WriteString("```bash\n")
	b.WriteString("# Clone the repository\n")
	fmt.Fprintf(&b, "git clone https://github.com/%s/%s.git\n", a.Owner, a.Name)
	fmt.Fprintf(&b, "cd %s\n\n", a.Name)

	switch {
	case contains(a.SetupFiles, "package.json"):
		b.WriteString("# Install dependencies\nnpm install\n\n# Start development server\nnpm start\n")
	case contains(a.SetupFiles, "requirements.txt"):
		b.WriteString("# Create virtual environment\npython -m venv venv\nsource venv/bin/activate  # On Windows: venv\\Scripts\\activate\n\n# Install dependencies\npip install -r requirements.txt\n\n# Run the application\npython main.py\n")
	case contains(a.SetupFiles, "Cargo.toml"), contains(a.SetupFiles, "cargo.toml"):
		b.WriteString("# Build and run\ncargo run\n")
	case contains(a.SetupFiles, "go.mod"):
		b.WriteString("# Run the application\ngo run main.go\n")
	default:
		b.WriteString("# Follow installation instructions below\n")
	}

	b.WriteString("```")
	return b.String()
}

func usageSection(a *models.RepositoryAnalysis, projectType models.ProjectType) string {
	switch projectType {
	case models.API:
		return "### Basic API Usage\n\n```bash\n# Example API calls\ncurl -X GET \"https://api.yourdomain.com/api/endpoint\"\ncurl -X POST \"https://api.yourdomain.com/api/data\" -H \"Content-Type: application/json\" -d '{\"key\": \"value\"}'\n```\n\n### Authentication\n\n```bash\n# Get authentication token\ncurl -X POST \"https://api.yourdomain.com/auth/login\" -d '{\"username\": \"user\", \"password\": \"pass\"}'\n```"
	case models.CLI:
		return fmt.Sprintf("### Command Line Usage\n\n```bash\n# Basic usage\n./%s --help\n\n# Common commands\n./%s command --option value\n./%s --config config.json\n```", a.Name, a.Name, a.Name)
	case models.WebApp:
		return "### Using the Application\n\n1. 🌐 Open your browser and navigate to `http://localhost:3000`\n2. 📝 Create an account or sign in\n3. 🚀 Start using the features!\n\n### Available Routes\n\n- `/` - Home page\n- `/dashboard` - User dashboard\n- `/settings` - Configuration"
	case models.Library:
		return fmt.Sprintf("### Installation\n\n```bash\npip install %s\n```\n\n### Basic Usage\n\n```python\nfrom %s import MainClass\n\n# Initialize\napp = MainClass()\n\n# Use the library\nresult = app.method()\n```", a.Name, a.Name)
	default:
		return "Detailed usage instructions coming soon..."
	}
}

func testingSection(a *models.RepositoryAnalysis) string {
	if len(a.TestFiles) == 0 {
		return "```bash\n# Tests will be added soon\necho \"No tests yet\"\n```"
	}

	lang := strings.ToLower(a.Language)
	switch {
	case strings.Contains(lang, "python"):
		return "```bash\n# Run all tests\npytest\n\n# Run with coverage\npytest --cov=src tests/\n\n# Run specific test file\npytest tests/test_specific.py\n```"
	case strings.Contains(lang, "javascript"), strings.Contains(lang, "typescript"):
		return "```bash\n# Run all tests\nnpm test\n\n# Run tests in watch mode\nnpm run test:watch\n\n# Generate coverage report\nnpm run test:coverage\n```"
	default:
		return "```bash\n# Run tests\nmake test\n\n# Or check the specific testing framework used in this project\n```"
	}
}

func installationSection(a *models.RepositoryAnalysis) string {
	var lines []string
	lines = append(lines, "### Prerequisites\n")

	if _, ok := a.Languages["Python"]; ok {
		lines = append(lines, "- Python 3.8+ installed")
	}
	_, js := a.Languages["JavaScript"]
	_, ts := a.Languages["TypeScript"]
	if js || ts {
		lines = append(lines, "- Node.js 16+ and npm")
	}
	if _, ok := a.Languages["Java"]; ok {
		lines = append(lines, "- Java 11+ and Maven/Gradle")
	}
	if _, ok := a.Languages["Go"]; ok {
		lines = append(lines, "- Go 1.19+")
	}
	if _, ok := a.Languages["Rust"]; ok {
		lines = append(lines, "- Rust 1.60+")
	}

	lines = append(lines, "\n### Installation Steps\n")
	lines = append(lines,
		"1. **Clone the repository**",
		"   ```bash",
		fmt.Sprintf("   git clone https://github.com/%s/%s.git", a.Owner, a.Name),
		fmt.Sprintf("   cd %s", a.Name),
		"   ```\n",
	)

	if _, ok := a.Languages["Python"]; ok {
		lines = append(lines,
			"2. **Set up Python environment**",
			"   ```bash",
			"   # Create virtual environment",
			"   python -m venv venv",
			"",
			"   # Activate virtual environment",
			"   # On Windows:",
			"   venv\\Scripts\\activate",
			"   # On macOS/Linux:",
			"   source venv/bin/activate",
			"",
			"   # Install dependencies",
		)
		if contains(a.SetupFiles, "requirements.txt") {
			lines = append(lines, "   pip install -r requirements.txt")
		} else if contains(a.SetupFiles, "setup.py") {
			lines = append(lines, "   pip install -e .")
		}
		lines = append(lines, "   ```\n")
	} else if js || ts {
		lines = append(lines, "2. **Install dependencies**", "   ```bash")
		if contains(a.SetupFiles, "package.json") {
			lines = append(lines, "   npm install", "   # or", "   yarn install")
		}
		lines = append(lines, "   ```\n")
	} else if _, ok := a.Languages["Java"]; ok {
		lines = append(lines, "2. **Build the project**", "   ```bash")
		if contains(a.SetupFiles, "pom.xml") {
			lines = append(lines, "   mvn clean install")
		} else {
			lines = append(lines, "   ./gradlew build")
		}
		lines = append(lines, "   ```\n")
	}

	for _, f := range a.ConfigFiles {
		if strings.Contains(f, ".env") {
			lines = append(lines,
				"3. **Configure environment**",
				"   ```bash",
				"   cp .env.example .env",
				"   # Edit .env with your configuration",
				"   ```\n",
			)
			break
		}
	}

	return strings.Join(lines, "\n")
}

func structureExplanation(a *models.RepositoryAnalysis) string {
	var lines []string

	if len(a.MainFiles) > 0 {
		lines = append(lines, "### 📁 Key Directories & Files\n")
		mains := a.MainFiles
		if len(mains) > 5 {
			mains = mains[:5]
		}
		for _, f := range mains {
			switch {
			case strings.HasSuffix(f, ".py"):
				lines = append(lines, fmt.Sprintf("- `%s` - Main Python application entry point", f))
			case strings.HasSuffix(f, ".js"), strings.HasSuffix(f, ".ts"):
				lines = append(lines, fmt.Sprintf("- `%s` - Main JavaScript/TypeScript application", f))
			case strings.HasSuffix(f, ".html"):
				lines = append(lines, fmt.Sprintf("- `%s` - Main HTML entry point", f))
			default:
				lines = append(lines, fmt.Sprintf("- `%s` - Core application file", f))
			}
		}
	}

	if len(a.TestFiles) > 0 {
		lines = append(lines, fmt.Sprintf("- `tests/` - Test suite with %d test files", len(a.TestFiles)))
	}
	if len(a.ConfigFiles) > 0 {
		lines = append(lines, "- `config/` - Configuration files and environment settings")
	}

	if len(lines) == 0 {
		return "Structure details available in the file tree above."
	}
	return strings.Join(lines, "\n")
}

func configurationSection(a *models.RepositoryAnalysis) string {
	if len(a.ConfigFiles) == 0 {
		return "No special configuration required - the application works out of the box!"
	}

	var b strings.Builder
	b.WriteString("### Environment Variables\n\n")
	b.WriteString("Create a `.env` file in the root directory:\n\n")
	b.WriteString("```env\n")
	b.WriteString("# Example configuration\n")
	b.WriteString("PORT=3000\n")
	b.WriteString("NODE_ENV=development\n")
	b.WriteString("DATABASE_URL=your_database_url\n")
	b.WriteString("API_KEY=your_api_key\n")
	b.WriteString("```\n\n")
	b.WriteString("### Available Configuration Files\n\n")

	files := a.ConfigFiles
	if len(files) > 5 {
		files = files[:5]
	}
	for _, f := range files {
		fmt.Fprintf(&b, "- `%s`\n", f)
	}
	return b.String()
}

func apiDocsSection(projectType models.ProjectType) string {
	if projectType != models.API {
		return "Coming soon..."
	}
	return "### Available Endpoints\n\n" +
		"| Method | Endpoint | Description |\n" +
		"|--------|----------|-------------|\n" +
		"| GET    | `/api/health` | Health check |\n" +
		"| GET    | `/api/users` | Get all users |\n" +
		"| POST   | `/api/users` | Create new user |\n" +
		"| GET    | `/api/users/:id` | Get user by ID |\n" +
		"| PUT    | `/api/users/:id` | Update user |\n" +
		"| DELETE | `/api/users/:id` | Delete user |\n\n" +
		"### Response Format\n\n```json\n{\n  \"success\": true,\n  \"data\": {},\n  \"message\": \"Operation successful\"\n}\n```\n\n" +
		"### Error Handling\n\n```json\n{\n  \"success\": false,\n  \"error\": \"Error message\",\n  \"code\": 400\n}\n```"
}

func deploymentSection(a *models.RepositoryAnalysis, projectType models.ProjectType) string {
	hasDocker := false
	for _, f := range a.ConfigFiles {
		if strings.Contains(strings.ToLower(f), "docker") {
			hasDocker = true
			break
		}
	}

	var b strings.Builder
	if hasDocker {
		fmt.Fprintf(&b, "### 🐳 Docker Deployment\n\n```bash\n# Build the image\ndocker build -t %s .\n\n# Run the container\ndocker run -p 3000:3000 %s\n```\n\n### 🐳 Docker Compose\n\n```bash\ndocker-compose up -d\n```\n\n", a.Name, a.Name)
	}

	switch projectType {
	case models.WebApp:
		b.WriteString("### 🌐 Web Deployment\n\n#### Vercel\n```bash\nnpm install -g vercel\nvercel --prod\n```\n\n#### Netlify\n```bash\nnpm run build\n# Upload dist/ folder to Netlify\n```\n\n#### Heroku\n```bash\ngit push heroku main\n```\n")
	case models.API:
		b.WriteString("### 🚀 API Deployment\n\n#### Railway\n```bash\nrailway login\nrailway init\nrailway up\n```\n\n#### DigitalOcean App Platform\n- Connect your GitHub repository\n- Set environment variables\n- Deploy automatically\n")
	}

	if b.Len() == 0 {
		return "Deployment instructions will be added based on your hosting preferences."
	}
	return b.String()
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
