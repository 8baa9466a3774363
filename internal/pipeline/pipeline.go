// Package pipeline orchestrates one analysis request: fetch → analyze →
// classify → describe → assemble.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/readmegen/readmegen/internal/analyzer"
	"github.com/readmegen/readmegen/internal/classifier"
	"github.com/readmegen/readmegen/internal/config"
	"github.com/readmegen/readmegen/internal/describe"
	"github.com/readmegen/readmegen/internal/github"
	"github.com/readmegen/readmegen/internal/models"
	"github.com/readmegen/readmegen/internal/readme"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Result is the document plus the structured companion record.
type Result struct {
	Repo        string
	README      string
	ProjectType models.ProjectType
	Analysis    *models.RepositoryAnalysis
}

// Deps holds the collaborators one run needs. ProviderFor lets tests and the
// batch runner inject per-repo providers; Generator may be nil (template-only
// synthesis).
type Deps struct {
	ProviderFor func(owner, repo string) github.Provider
	Generator   describe.Generator
}

// NewDeps wires the production collaborators from configuration.
func NewDeps(cfg *config.Config) Deps {
	deps := Deps{
		ProviderFor: func(owner, repo string) github.Provider {
			return github.NewClient(owner, repo, cfg.GitHubToken)
		},
	}
	if cfg.AIConfigured() {
		deps.Generator = describe.NewOpenAIGenerator(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Warn("no LLM credential configured, descriptions will be template-based")
	}
	return deps
}

// Run executes the pipeline for one repository. Only the initial metadata
// fetch can fail; everything downstream degrades instead of erroring.
func Run(ctx context.Context, deps Deps, owner, repo string) (*Result, error) {
	provider := deps.ProviderFor(owner, repo)

	analysis, err := analyzer.Analyze(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s/%s: %w", owner, repo, err)
	}

	// A repo without a platform description may still describe itself in
	// its own files; mined text feeds both classification and the prompt.
	if strings.EqualFold(analysis.Description, "No description provided") {
		if mined := describe.MineDescription(ctx, provider, analysis); mined != "" {
			analysis.Description = mined
		}
	}

	projectType := classifier.Detect(analysis)

	synth := describe.NewSynthesizer(deps.Generator)
	description := synth.Synthesize(ctx, provider, analysis, projectType)

	doc := readme.Assemble(analysis, projectType, description)

	return &Result{
		Repo:        owner + "/" + repo,
		README:      doc,
		ProjectType: projectType,
		Analysis:    analysis,
	}, nil
}

// RunBatch processes several repositories with bounded concurrency. Per-repo
// failures are logged and skipped; the slice holds the successes in input
// order.
func RunBatch(ctx context.Context, deps Deps, repos [][2]string, limit int) []*Result {
	if limit < 1 {
		limit = 1
	}

	results := make([]*Result, len(repos))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, pair := range repos {
		i, pair := i, pair
		g.Go(func() error {
			res, err := Run(gCtx, deps, pair[0], pair[1])
			if err != nil {
				log.WithError(err).WithField("repo", pair[0]+"/"+pair[1]).Warn("skipping repository")
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	out := make([]*Result, 0, len(repos))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
