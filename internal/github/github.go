package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/readmegen/readmegen/internal/models"
)

const apiBase = "https://api.github.com"

// Provider is the content-fetching interface the analysis pipeline depends
// on. The GitHub REST client below is the production implementation; tests
// substitute an in-memory double.
type Provider interface {
	// Metadata returns repository-level information.
	Metadata(ctx context.Context) (*models.Metadata, error)
	// Languages returns the language → byte-count histogram.
	Languages(ctx context.Context) (map[string]int, error)
	// ListDir returns the entries at path ("" for the repository root).
	ListDir(ctx context.Context, path string) ([]models.Entry, error)
	// FileContent returns the decoded content of the file at path.
	FileContent(ctx context.Context, path string) (string, error)
}

// Client is a thin wrapper around the GitHub REST API, bound to one
// repository.
type Client struct {
	owner      string
	repo       string
	token      string
	httpClient *http.Client
}

func NewClient(owner, repo, token string) *Client {
	return &Client{
		owner:      owner,
		repo:       repo,
		token:      token,
		httpClient: http.DefaultClient,
	}
}

type repoResponse struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Language    *string  `json:"language"`
	Size        int      `json:"size"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
	Topics      []string `json:"topics"`
	Owner       struct {
		Login string `json:"login"`
	} `json:"owner"`
	DefaultBranch string    `json:"default_branch"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *Client) Metadata(ctx context.Context) (*models.Metadata, error) {
	var resp repoResponse
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s", c.owner, c.repo), &resp); err != nil {
		return nil, fmt.Errorf("fetching repository metadata: %w", err)
	}

	topics := resp.Topics
	if topics == nil {
		topics = []string{}
	}

	return &models.Metadata{
		Name:          resp.Name,
		Owner:         resp.Owner.Login,
		Description:   resp.Description,
		Language:      resp.Language,
		Size:          resp.Size,
		Stars:         resp.Stars,
		Forks:         resp.Forks,
		Topics:        topics,
		DefaultBranch: resp.DefaultBranch,
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.UpdatedAt,
	}, nil
}

func (c *Client) Languages(ctx context.Context) (map[string]int, error) {
	langs := map[string]int{}
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/languages", c.owner, c.repo), &langs); err != nil {
		return nil, fmt.Errorf("fetching languages: %w", err)
	}
	return langs, nil
}

type contentEntry struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Type     string `json:"type"`
	Size     int    `json:"size"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

func (c *Client) ListDir(ctx context.Context, path string) ([]models.Entry, error) {
	var raw []contentEntry
	if err := c.get(ctx, c.contentsPath(path), &raw); err != nil {
		return nil, fmt.Errorf("listing %q: %w", path, err)
	}

	entries := make([]models.Entry, 0, len(raw))
	for _, e := range raw {
		t := models.EntryFile
		if e.Type == "dir" {
			t = models.EntryDir
		}
		entries = append(entries, models.Entry{
			Name: e.Name,
			Path: e.Path,
			Type: t,
			Size: e.Size,
		})
	}
	return entries, nil
}

func (c *Client) FileContent(ctx context.Context, path string) (string, error) {
	var raw contentEntry
	if err := c.get(ctx, c.contentsPath(path), &raw); err != nil {
		return "", fmt.Errorf("fetching %q: %w", path, err)
	}

	if raw.Encoding == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(raw.Content, "\n", ""))
		if err != nil {
			return "", fmt.Errorf("decoding %q: %w", path, err)
		}
		return string(decoded), nil
	}
	return raw.Content, nil
}

func (c *Client) contentsPath(path string) string {
	p := fmt.Sprintf("/repos/%s/%s/contents", c.owner, c.repo)
	if path != "" {
		p += "/" + url.PathEscape(path)
		// Keep directory separators intact.
		p = strings.ReplaceAll(p, "%2F", "/")
	}
	return p
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}
