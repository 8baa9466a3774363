// Package classifier scores weighted textual evidence to pick a project
// type for a repository.
package classifier

import (
	"strings"

	"github.com/readmegen/readmegen/internal/models"
)

// evidence is the corpus one classification call works from. The blob is a
// single lower-cased string searched for indicator substrings; the slices
// keep exact-name checks cheap.
type evidence struct {
	blob      string
	files     []string
	mainFiles []string
	config    []string
}

func buildEvidence(a *models.RepositoryAnalysis) evidence {
	lower := func(in []string) []string {
		out := make([]string, len(in))
		for i, s := range in {
			out[i] = strings.ToLower(s)
		}
		return out
	}

	files := lower(a.Files)
	mainFiles := lower(a.MainFiles)
	config := lower(a.ConfigFiles)

	var parts []string
	parts = append(parts, files...)
	parts = append(parts, lower(a.Dependencies)...)
	parts = append(parts, strings.ToLower(a.Description), strings.ToLower(a.Language))
	parts = append(parts, mainFiles...)
	parts = append(parts, config...)

	return evidence{
		blob:      strings.Join(parts, " "),
		files:     files,
		mainFiles: mainFiles,
		config:    config,
	}
}

// Per-indicator weights. Hand-tuned: specific signals (mobile frameworks,
// blockchain terms) weigh more than generic ones.
var (
	webIndicators = indicatorSet{3, []string{
		"index.html", "app.js", "main.js", "server.js", "package.json",
		"webpack", "vite", "react", "vue", "angular", "express", "flask",
		"django", "fastapi",
	}}
	apiIndicators = indicatorSet{2, []string{
		"api", "routes", "endpoints", "fastapi", "flask", "express", "rest",
		"graphql", "swagger",
	}}
	mobileIndicators = indicatorSet{4, []string{
		"android", "ios", "flutter", "react-native", "swift", "kotlin",
		"xamarin", "cordova",
	}}
	desktopIndicators = indicatorSet{3, []string{
		"electron", "tkinter", "qt", "wpf", "winforms", "javafx", "swing", "gtk",
	}}
	cliIndicators = indicatorSet{2, []string{
		"cli", "command", "argparse", "click", "commander", "bin/", "console",
	}}
	libraryIndicators = indicatorSet{2, []string{
		"lib", "library", "package", "module", "setup.py", "pyproject.toml",
		"cargo.toml",
	}}
	dataScienceIndicators = indicatorSet{3, []string{
		"jupyter", "notebook", "pandas", "numpy", "matplotlib", "seaborn",
		"plotly", "sklearn", "scipy",
	}}
	mlIndicators = indicatorSet{3, []string{
		"tensorflow", "pytorch", "keras", "model", "training", "neural",
		"deep", "learning", "ai", "ml",
	}}
	gameIndicators = indicatorSet{3, []string{
		"game", "unity", "pygame", "godot", "phaser", "sprite", "player", "level",
	}}
	blockchainIndicators = indicatorSet{4, []string{
		"smart contract", "solidity", "web3", "ethereum", "blockchain",
		"crypto", "defi", "nft",
	}}
	microserviceIndicators = indicatorSet{2, []string{
		"docker", "kubernetes", "microservice", "service", "container", "k8s",
	}}
	frontendIndicators = indicatorSet{2, []string{
		"html", "css", "javascript", "typescript", "scss", "sass", "webpack",
		"vite", "rollup",
	}}
	backendIndicators = indicatorSet{2, []string{
		"server", "backend", "database", "auth", "middleware", "controller",
		"route",
	}}
)

type indicatorSet struct {
	weight     int
	indicators []string
}

// score returns the weighted score and the raw hit count against the blob.
func (s indicatorSet) score(blob string) (int, int) {
	hits := 0
	for _, ind := range s.indicators {
		if strings.Contains(blob, ind) {
			hits++
		}
	}
	return hits * s.weight, hits
}

// minScore is the confidence floor: below it the language fallback chain
// decides instead.
const minScore = 2

// Detect returns exactly one project type for the analysis. It never fails;
// when no candidate clears the confidence floor the language-based fallback
// chain picks the tag.
func Detect(a *models.RepositoryAnalysis) models.ProjectType {
	ev := buildEvidence(a)

	webScore, _ := webIndicators.score(ev.blob)
	apiScore, _ := apiIndicators.score(ev.blob)
	mobileScore, _ := mobileIndicators.score(ev.blob)
	desktopScore, _ := desktopIndicators.score(ev.blob)

	cliScore, _ := cliIndicators.score(ev.blob)
	if containsAny(ev.mainFiles, "main.py", "cli.py", "command.py") {
		cliScore += 3
	}

	libScore, libHits := libraryIndicators.score(ev.blob)
	if containsAny(ev.files, "setup.py", "pyproject.toml", "cargo.toml") {
		libScore += 4
	}

	dsScore, _ := dataScienceIndicators.score(ev.blob)
	if hasNotebook(ev.files) {
		dsScore += 5
	}

	mlScore, _ := mlIndicators.score(ev.blob)
	gameScore, _ := gameIndicators.score(ev.blob)
	blockchainScore, _ := blockchainIndicators.score(ev.blob)

	microScore, _ := microserviceIndicators.score(ev.blob)
	if containsAny(ev.config, "dockerfile", "docker-compose.yml") {
		microScore += 3
	}

	frontendScore, _ := frontendIndicators.score(ev.blob)
	if containsAny(ev.files, "index.html", "app.tsx", "app.jsx", "main.tsx") {
		frontendScore += 4
	}

	backendScore, _ := backendIndicators.score(ev.blob)
	if containsAny(ev.mainFiles, "server.py", "app.py", "main.py", "server.js") {
		backendScore += 3
	}

	// Admission rules. The slice keeps the canonical candidate order so
	// tie-breaks are deterministic: earlier candidate wins.
	scores := make([]int, 0, len(models.ProjectTypes))
	admitted := make([]models.ProjectType, 0, len(models.ProjectTypes))
	admit := func(t models.ProjectType, score int, ok bool) {
		if ok {
			admitted = append(admitted, t)
			scores = append(scores, score)
		}
	}

	admit(models.WebApp, webScore, webScore > 0)
	// A clear "api" signal doubles the score so API-first projects beat the
	// generic web bucket.
	admit(models.API, apiScore*2, strings.Contains(ev.blob, "api") && apiScore > 2)
	admit(models.Mobile, mobileScore, mobileScore > 0)
	admit(models.Desktop, desktopScore, desktopScore > 0)
	admit(models.CLI, cliScore, cliScore > 0)
	admit(models.Library, libScore, libHits >= 2)
	admit(models.DataScience, dsScore, dsScore > 0)
	admit(models.MachineLearning, mlScore, mlScore > 0)
	admit(models.Game, gameScore, gameScore > 0)
	admit(models.Blockchain, blockchainScore, blockchainScore > 0)
	admit(models.Microservice, microScore, microScore > 0)
	// Frontend must dominate and the project must not be API-heavy.
	admit(models.Frontend, frontendScore, frontendScore > 5 && apiScore < 3)
	// Backend needs to strictly dominate frontend; on a tie neither side is
	// conclusive and the remaining candidates decide.
	admit(models.Backend, backendScore, backendScore > 0 && frontendScore < backendScore)

	best := models.ProjectType("")
	bestScore := -1
	for i, t := range admitted {
		if scores[i] > bestScore {
			best = t
			bestScore = scores[i]
		}
	}
	if bestScore >= minScore {
		return best
	}

	return languageFallback(a, ev)
}

// languageFallback maps the primary language to a default type when scoring
// is inconclusive.
func languageFallback(a *models.RepositoryAnalysis, ev evidence) models.ProjectType {
	lang := strings.ToLower(a.Language)
	switch {
	case strings.Contains(lang, "python"):
		if hasNotebook(ev.files) {
			return models.DataScience
		}
		for _, f := range ev.mainFiles {
			if strings.Contains(f, "app.py") || strings.Contains(f, "main.py") {
				return models.WebApp
			}
		}
		return models.Backend
	case strings.Contains(lang, "javascript"), strings.Contains(lang, "typescript"):
		if containsAny(ev.files, "index.html") {
			return models.Frontend
		}
		return models.WebApp
	case strings.Contains(lang, "java"),
		strings.Contains(lang, "c++"),
		strings.Contains(lang, "c#"),
		strings.Contains(lang, "rust"),
		strings.Contains(lang, "go"):
		return models.Backend
	default:
		return models.WebApp
	}
}

func containsAny(haystack []string, needles ...string) bool {
	for _, h := range haystack {
		for _, n := range needles {
			if h == n {
				return true
			}
		}
	}
	return false
}

func hasNotebook(files []string) bool {
	for _, f := range files {
		if strings.Contains(f, ".ipynb") {
			return true
		}
	}
	return false
}
