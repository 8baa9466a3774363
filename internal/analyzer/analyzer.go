package analyzer

import (
	"context"
	"strings"

	"github.com/readmegen/readmegen/internal/github"
	"github.com/readmegen/readmegen/internal/models"
	log "github.com/sirupsen/logrus"
)

// maxManifestSize is the largest manifest the extractor will fetch.
const maxManifestSize = 50000

// Analyze builds a RepositoryAnalysis from the provider in sequential
// enrichment passes: metadata, language histogram, top-level listing with
// file categorization and dependency extraction, then the structure render.
// Only a metadata failure is an error; every later pass degrades to partial
// evidence.
func Analyze(ctx context.Context, provider github.Provider) (*models.RepositoryAnalysis, error) {
	meta, err := provider.Metadata(ctx)
	if err != nil {
		return nil, err
	}

	analysis := &models.RepositoryAnalysis{
		Name:          meta.Name,
		Owner:         meta.Owner,
		Description:   "No description provided",
		Language:      "Unknown",
		Size:          meta.Size,
		Stars:         meta.Stars,
		Forks:         meta.Forks,
		Topics:        meta.Topics,
		DefaultBranch: meta.DefaultBranch,
		CreatedAt:     meta.CreatedAt,
		UpdatedAt:     meta.UpdatedAt,
		Files:         []string{},
		Languages:     map[string]int{},
		Dependencies:  []string{},
		Structure:     []string{},
		MainFiles:     []string{},
		SetupFiles:    []string{},
		ConfigFiles:   []string{},
		TestFiles:     []string{},
		DocFiles:      []string{},
	}
	if meta.Description != nil && *meta.Description != "" {
		analysis.Description = *meta.Description
	}
	if meta.Language != nil && *meta.Language != "" {
		analysis.Language = *meta.Language
	}

	if langs, err := provider.Languages(ctx); err != nil {
		log.WithError(err).Warn("could not fetch language histogram")
	} else {
		analysis.Languages = langs
	}

	entries, err := provider.ListDir(ctx, "")
	if err != nil {
		log.WithError(err).Warn("could not list repository contents")
		return analysis, nil
	}

	for _, entry := range entries {
		analysis.Files = append(analysis.Files, entry.Name)
		categorize(ctx, provider, analysis, entry)
	}

	analysis.Structure = BuildStructure(ctx, provider)

	return analysis, nil
}

// categorize runs one top-level entry, directories included, through the
// bucket cascade. A tests/ directory is test evidence just like test_app.py;
// only the manifest content fetch is restricted to plain files.
func categorize(ctx context.Context, provider github.Provider, analysis *models.RepositoryAnalysis, entry models.Entry) {
	switch ClassifyFile(entry.Name) {
	case BucketSetup:
		analysis.SetupFiles = append(analysis.SetupFiles, entry.Name)
		if entry.Type == models.EntryFile && entry.Size < maxManifestSize {
			content, err := provider.FileContent(ctx, entry.Path)
			if err != nil {
				log.WithError(err).WithField("file", entry.Name).Debug("skipping manifest")
				return
			}
			analysis.Dependencies = append(analysis.Dependencies, ExtractDependencies(entry.Name, content)...)
		}
	case BucketConfig:
		analysis.ConfigFiles = append(analysis.ConfigFiles, entry.Name)
	case BucketTest:
		analysis.TestFiles = append(analysis.TestFiles, entry.Name)
	case BucketDoc:
		analysis.DocFiles = append(analysis.DocFiles, entry.Name)
		if strings.Contains(strings.ToLower(entry.Name), "readme") {
			analysis.ReadmeExists = true
		}
	case BucketLicense:
		analysis.LicenseExists = true
	case BucketMain:
		analysis.MainFiles = append(analysis.MainFiles, entry.Name)
	}
}
