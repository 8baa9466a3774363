// Package readme renders the final project document from an analysis, a
// project type and a synthesized description.
package readme

import (
	"strings"

	"github.com/readmegen/readmegen/internal/models"
)

// maxStructureLines bounds the tree block in the rendered document.
const maxStructureLines = 40

// Assemble substitutes every generated section into the document skeleton.
// It is total: thin evidence produces placeholder sections, never an error.
func Assemble(a *models.RepositoryAnalysis, projectType models.ProjectType, description string) string {
	preview := ""
	if projectType == models.WebApp || projectType == models.Frontend {
		preview = webPreview
	}

	structure := a.Structure
	if len(structure) > maxStructureLines {
		structure = structure[:maxStructureLines]
	}

	r := strings.NewReplacer(
		"{{emoji}}", projectType.Emoji(),
		"{{repo_name}}", a.Name,
		"{{github_user}}", a.Owner,
		"{{description}}", description,
		"{{project_preview}}", preview,
		"{{features_list}}", featuresList(a, projectType),
		"{{technologies_section}}", technologiesSection(a),
		"{{quick_start_section}}", quickStart(a),
		"{{file_structure}}", strings.Join(structure, "\n"),
		"{{structure_explanation}}", structureExplanation(a),
		"{{installation_instructions}}", installationSection(a),
		"{{usage_section}}", usageSection(a, projectType),
		"{{configuration_section}}", configurationSection(a),
		"{{api_documentation}}", apiDocsSection(projectType),
		"{{testing_section}}", testingSection(a),
		"{{deployment_section}}", deploymentSection(a, projectType),
	)

	return r.Replace(skeleton)
}
