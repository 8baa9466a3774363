package analyzer

import "strings"

// Bucket is the semantic category a repository file lands in. A file belongs
// to at most one bucket.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketSetup
	BucketConfig
	BucketTest
	BucketDoc
	BucketLicense
	BucketMain
)

var setupNames = map[string]bool{
	"package.json":     true,
	"requirements.txt": true,
	"pom.xml":          true,
	"cargo.toml":       true,
	"go.mod":           true,
	"composer.json":    true,
	"gemfile":          true,
	"setup.py":         true,
	"pyproject.toml":   true,
}

var configNames = map[string]bool{
	".env":               true,
	"config.json":        true,
	"settings.json":      true,
	".env.example":       true,
	"docker-compose.yml": true,
	"dockerfile":         true,
	"makefile":           true,
}

var docNames = map[string]bool{
	"readme.md":    true,
	"readme.rst":   true,
	"readme.txt":   true,
	"docs.md":      true,
	"changelog.md": true,
}

var licenseNames = map[string]bool{
	"license":     true,
	"license.md":  true,
	"license.txt": true,
	"mit":         true,
	"apache":      true,
}

var mainNames = map[string]bool{
	"main.py":    true,
	"app.py":     true,
	"index.js":   true,
	"index.html": true,
	"main.java":  true,
	"main.go":    true,
	"app.tsx":    true,
	"app.jsx":    true,
	"server.js":  true,
	"api.py":     true,
}

// bucketRule pairs a bucket with its membership predicate. Rules run in
// order and the first match wins, so a name is never double-counted.
type bucketRule struct {
	bucket Bucket
	match  func(name string) bool
}

var bucketRules = []bucketRule{
	{BucketSetup, func(n string) bool { return setupNames[n] }},
	{BucketConfig, func(n string) bool { return configNames[n] }},
	{BucketTest, func(n string) bool {
		return strings.Contains(n, "test") || strings.Contains(n, "spec") || strings.Contains(n, "__test__")
	}},
	{BucketDoc, func(n string) bool { return docNames[n] }},
	{BucketLicense, func(n string) bool { return licenseNames[n] }},
	{BucketMain, func(n string) bool { return mainNames[n] }},
}

// ClassifyFile returns the bucket for a file name, or BucketNone when no
// rule matches. Matching is case-insensitive.
func ClassifyFile(name string) Bucket {
	lower := strings.ToLower(name)
	for _, rule := range bucketRules {
		if rule.match(lower) {
			return rule.bucket
		}
	}
	return BucketNone
}
