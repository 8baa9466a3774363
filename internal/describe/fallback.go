package describe

import (
	"fmt"
	"strings"

	"github.com/readmegen/readmegen/internal/models"
)

// Fallback produces a deterministic description for the project type when no
// AI result is available. Pure function, no I/O: the only inputs are the
// repository name, language and dependency list. Always returns a non-empty,
// period-terminated string.
func Fallback(a *models.RepositoryAnalysis, projectType models.ProjectType) string {
	name := a.Name
	language := a.Language
	deps := a.Dependencies

	var desc string
	switch projectType {
	case models.WebApp:
		desc = webAppDescription(name, deps, language)
	case models.API:
		desc = apiDescription(name, deps, language)
	case models.Mobile:
		desc = "A mobile application for " + inferPlatform(deps)
	case models.Desktop:
		desc = "A desktop application built with " + language
	case models.CLI:
		desc = "A command-line utility for " + inferCLIPurpose(name)
	case models.Library:
		desc = fmt.Sprintf("A %s library providing %s", language, inferLibraryPurpose(name))
	case models.DataScience:
		desc = "A data analysis project focused on " + inferDataPurpose(name)
	case models.MachineLearning:
		desc = "An AI/ML project for " + inferMLPurpose(name)
	case models.Game:
		desc = fmt.Sprintf("An interactive %s game", inferGameType(deps))
	case models.Blockchain:
		desc = "A blockchain application for " + inferBlockchainPurpose(name)
	case models.Microservice:
		desc = "A microservice handling " + inferServicePurpose(name)
	case models.Frontend:
		desc = fmt.Sprintf("A modern %s frontend application", inferFrontendType(deps))
	case models.Backend:
		desc = "A backend service providing " + inferBackendPurpose(name)
	default:
		desc = fmt.Sprintf("A %s project called %s", language, name)
	}

	if !strings.HasSuffix(desc, ".") {
		desc += "."
	}
	return desc
}

func webAppDescription(name string, deps []string, language string) string {
	switch {
	case hasDep(deps, "react"):
		return "A modern web application built with React"
	case hasDep(deps, "vue"):
		return "A modern web application built with Vue.js"
	case hasDep(deps, "angular"):
		return "A modern web application built with Angular"
	case hasDep(deps, "flask"):
		return "A modern web application built with Flask"
	case hasDep(deps, "django"):
		return "A modern web application built with Django"
	}

	switch {
	case nameHas(name, "blog", "news", "article"):
		return "A content management and blogging platform"
	case nameHas(name, "shop", "store", "cart", "ecommerce"):
		return "An e-commerce platform for online shopping"
	case nameHas(name, "chat", "message", "communication"):
		return "A real-time messaging and communication platform"
	case nameHas(name, "task", "todo", "project", "management"):
		return "A project and task management application"
	case nameHas(name, "social", "network", "community"):
		return "A social networking and community platform"
	default:
		return "A full-stack web application built with " + language
	}
}

func apiDescription(name string, deps []string, language string) string {
	framework := language
	switch {
	case hasDep(deps, "fastapi"):
		framework = "FastAPI"
	case hasDep(deps, "flask"):
		framework = "Flask"
	case hasDep(deps, "express"):
		framework = "Express.js"
	case hasDep(deps, "django"):
		framework = "Django REST"
	}

	switch {
	case nameHas(name, "auth", "login", "user"):
		return fmt.Sprintf("A %s authentication and user management API", framework)
	case nameHas(name, "payment", "billing", "transaction"):
		return fmt.Sprintf("A %s payment processing API", framework)
	case nameHas(name, "data", "analytics", "metrics"):
		return fmt.Sprintf("A %s data analytics and metrics API", framework)
	case nameHas(name, "notification", "email", "sms"):
		return fmt.Sprintf("A %s notification and messaging API", framework)
	default:
		return fmt.Sprintf("A RESTful API service built with %s", framework)
	}
}

func inferPlatform(deps []string) string {
	switch {
	case hasDep(deps, "react-native"):
		return "iOS and Android using React Native"
	case hasDep(deps, "flutter"):
		return "cross-platform mobile development with Flutter"
	case hasDep(deps, "swift"):
		return "iOS devices"
	case hasDep(deps, "kotlin"):
		return "Android devices"
	default:
		return "mobile platforms"
	}
}

func inferCLIPurpose(name string) string {
	switch {
	case nameHas(name, "deploy", "build", "ci", "cd"):
		return "deployment and build automation"
	case nameHas(name, "file", "directory", "folder"):
		return "file and directory management"
	case nameHas(name, "git", "version", "commit"):
		return "version control and Git operations"
	case nameHas(name, "config", "setup", "init"):
		return "configuration and project setup"
	default:
		return "command-line operations"
	}
}

func inferLibraryPurpose(name string) string {
	switch {
	case nameHas(name, "http", "request", "client"):
		return "HTTP client functionality"
	case nameHas(name, "parse", "parser", "syntax"):
		return "parsing and data processing utilities"
	case nameHas(name, "util", "helper", "common"):
		return "utility functions and helpers"
	case nameHas(name, "ui", "component", "widget"):
		return "UI components and interface elements"
	default:
		return "reusable functionality"
	}
}

func inferDataPurpose(name string) string {
	switch {
	case nameHas(name, "finance", "stock", "trading"):
		return "financial data analysis"
	case nameHas(name, "weather", "climate", "forecast"):
		return "weather and climate data analysis"
	case nameHas(name, "sales", "revenue", "business"):
		return "business intelligence and sales analytics"
	case nameHas(name, "covid", "health", "medical"):
		return "healthcare and medical data analysis"
	default:
		return "data exploration and visualization"
	}
}

func inferMLPurpose(name string) string {
	switch {
	case nameHas(name, "image", "vision", "photo"):
		return "computer vision and image processing"
	case nameHas(name, "text", "nlp", "language"):
		return "natural language processing"
	case nameHas(name, "predict", "forecast", "model"):
		return "predictive modeling and forecasting"
	case nameHas(name, "classify", "classification", "detect"):
		return "classification and detection tasks"
	default:
		return "machine learning applications"
	}
}

func inferGameType(deps []string) string {
	switch {
	case hasDep(deps, "pygame"):
		return "Python-based"
	case hasDep(deps, "unity"):
		return "Unity"
	case hasDep(deps, "phaser"):
		return "web-based"
	default:
		return "interactive"
	}
}

func inferBlockchainPurpose(name string) string {
	switch {
	case nameHas(name, "defi", "swap", "liquidity"):
		return "decentralized finance (DeFi)"
	case nameHas(name, "nft", "token", "collectible"):
		return "NFT and digital collectibles"
	case nameHas(name, "dao", "governance", "voting"):
		return "decentralized governance"
	default:
		return "blockchain operations"
	}
}

func inferServicePurpose(name string) string {
	switch {
	case nameHas(name, "auth", "login", "user"):
		return "authentication and user management"
	case nameHas(name, "payment", "billing"):
		return "payment processing"
	case nameHas(name, "notification", "email"):
		return "notification services"
	case nameHas(name, "file", "upload", "storage"):
		return "file storage and management"
	default:
		return "business logic operations"
	}
}

func inferFrontendType(deps []string) string {
	switch {
	case hasDep(deps, "react"):
		return "React-based"
	case hasDep(deps, "vue"):
		return "Vue.js"
	case hasDep(deps, "angular"):
		return "Angular"
	case hasDep(deps, "svelte"):
		return "Svelte"
	default:
		return "JavaScript"
	}
}

func inferBackendPurpose(name string) string {
	switch {
	case nameHas(name, "api", "rest", "graphql"):
		return "API endpoints and data services"
	case nameHas(name, "auth", "login"):
		return "authentication and authorization"
	case nameHas(name, "database", "data", "storage"):
		return "data management and storage"
	default:
		return "server-side functionality"
	}
}

func hasDep(deps []string, needle string) bool {
	for _, d := range deps {
		if strings.Contains(strings.ToLower(d), needle) {
			return true
		}
	}
	return false
}

func nameHas(name string, words ...string) bool {
	lower := strings.ToLower(name)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
