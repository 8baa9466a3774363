package analyzer

import (
	"encoding/json"
	"regexp"
	"strings"
)

// maxDependencies caps how many names a single manifest contributes.
const maxDependencies = 20

var (
	versionOpPattern = regexp.MustCompile(`[><=!]`)
	artifactPattern  = regexp.MustCompile(`<artifactId>(.*?)</artifactId>`)
)

// ExtractDependencies parses a recognized manifest into an ordered list of
// dependency names, truncated to 20. Unrecognized formats and parse failures
// yield an empty list; extraction is evidence gathering, never fatal.
func ExtractDependencies(filename, content string) []string {
	var deps []string

	switch strings.ToLower(filename) {
	case "package.json":
		deps = extractPackageJSON(content)
	case "requirements.txt":
		deps = extractRequirements(content)
	case "pom.xml":
		for _, m := range artifactPattern.FindAllStringSubmatch(content, -1) {
			deps = append(deps, m[1])
		}
	}

	if len(deps) > maxDependencies {
		deps = deps[:maxDependencies]
	}
	return deps
}

// extractPackageJSON returns the union of dependencies and devDependencies
// key sets, direct dependencies first. Key order is preserved by walking the
// decoder token stream instead of unmarshaling into a map.
func extractPackageJSON(content string) []string {
	var manifest struct {
		Dependencies    json.RawMessage `json:"dependencies"`
		DevDependencies json.RawMessage `json:"devDependencies"`
	}
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		return nil
	}

	var deps []string
	deps = append(deps, objectKeys(manifest.Dependencies)...)
	deps = append(deps, objectKeys(manifest.DevDependencies)...)
	return deps
}

// objectKeys lists the keys of a JSON object in document order.
func objectKeys(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(strings.NewReader(string(raw)))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := keyTok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)

		// Skip the value.
		var discard any
		if err := dec.Decode(&discard); err != nil {
			return keys
		}
	}
	return keys
}

func extractRequirements(content string) []string {
	var deps []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name := strings.TrimSpace(versionOpPattern.Split(line, 2)[0])
		if name != "" {
			deps = append(deps, name)
		}
	}
	return deps
}
