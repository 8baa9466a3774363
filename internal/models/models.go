package models

import "time"

// EntryType distinguishes files from directories in a repository listing.
type EntryType string

const (
	EntryFile EntryType = "file"
	EntryDir  EntryType = "dir"
)

// Entry is one item of a repository directory listing.
type Entry struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Type EntryType `json:"type"`
	Size int       `json:"size"`
}

// Metadata is the repository-level information reported by the hosting
// platform, independent of any file content.
type Metadata struct {
	Name          string    `json:"name"`
	Owner         string    `json:"owner"`
	Description   *string   `json:"description"`
	Language      *string   `json:"language"`
	Size          int       `json:"size"`
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	Topics        []string  `json:"topics"`
	DefaultBranch string    `json:"default_branch"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RepositoryAnalysis is built incrementally by the analysis pipeline and
// finalized once the README has been rendered. One instance per request;
// nothing here is shared across requests.
type RepositoryAnalysis struct {
	Name          string    `json:"name"`
	Owner         string    `json:"owner"`
	Description   string    `json:"description"`
	Language      string    `json:"language"`
	Size          int       `json:"size"`
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	Topics        []string  `json:"topics"`
	DefaultBranch string    `json:"default_branch"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Files        []string       `json:"files"`
	Languages    map[string]int `json:"languages"`
	Dependencies []string       `json:"dependencies"`
	Structure    []string       `json:"structure"`

	MainFiles   []string `json:"main_files"`
	SetupFiles  []string `json:"setup_files"`
	ConfigFiles []string `json:"config_files"`
	TestFiles   []string `json:"test_files"`
	DocFiles    []string `json:"doc_files"`

	ReadmeExists  bool `json:"readme_exists"`
	LicenseExists bool `json:"license_exists"`
}

// ProjectType is one of the fixed classification tags.
type ProjectType string

const (
	WebApp          ProjectType = "web_app"
	API             ProjectType = "api"
	Mobile          ProjectType = "mobile"
	Desktop         ProjectType = "desktop"
	CLI             ProjectType = "cli"
	Library         ProjectType = "library"
	DataScience     ProjectType = "data_science"
	MachineLearning ProjectType = "machine_learning"
	Game            ProjectType = "game"
	Blockchain      ProjectType = "blockchain"
	Microservice    ProjectType = "microservice"
	Frontend        ProjectType = "frontend"
	Backend         ProjectType = "backend"
)

// ProjectTypes lists every tag in its canonical evaluation order. Scoring
// ties are broken by position in this slice, never by map iteration.
var ProjectTypes = []ProjectType{
	WebApp, API, Mobile, Desktop, CLI, Library, DataScience,
	MachineLearning, Game, Blockchain, Microservice, Frontend, Backend,
}

// Emoji returns the title-block emoji for a project type.
func (t ProjectType) Emoji() string {
	switch t {
	case WebApp:
		return "🌐"
	case API:
		return "🔌"
	case Mobile:
		return "📱"
	case Desktop:
		return "🖥️"
	case CLI:
		return "⌨️"
	case Library:
		return "📚"
	case DataScience:
		return "📊"
	case MachineLearning:
		return "🤖"
	case Game:
		return "🎮"
	case Blockchain:
		return "⛓️"
	case Microservice:
		return "🐳"
	case Frontend:
		return "💻"
	case Backend:
		return "⚙️"
	default:
		return "🚀"
	}
}

// FileSample is a truncated excerpt of one repository file, included in the
// AI prompt for context.
type FileSample struct {
	Name    string
	Excerpt string
}

// RepositoryContext is the projection of a RepositoryAnalysis handed to the
// description generator. Built once, never mutated afterwards.
type RepositoryContext struct {
	Name         string
	Language     string
	ProjectType  ProjectType
	Languages    map[string]int
	Dependencies []string
	Topics       []string
	Structure    []string
	MainFiles    []string
	SetupFiles   []string
	ConfigFiles  []string
	TestFiles    []string
	Samples      []FileSample
}
