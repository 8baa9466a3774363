// Package test provides in-memory doubles shared by the package test suites.
package test

import (
	"context"
	"fmt"

	"github.com/readmegen/readmegen/internal/models"
)

// StubProvider is an in-memory content provider. Listings are keyed by
// directory path ("" is the root) and file contents by file path.
type StubProvider struct {
	Meta      *models.Metadata
	Langs     map[string]int
	Listings  map[string][]models.Entry
	Contents  map[string]string
	FailDirs  map[string]bool
	FailFiles map[string]bool

	MetaErr error
}

func (s *StubProvider) Metadata(ctx context.Context) (*models.Metadata, error) {
	if s.MetaErr != nil {
		return nil, s.MetaErr
	}
	if s.Meta == nil {
		return nil, fmt.Errorf("no metadata configured")
	}
	return s.Meta, nil
}

func (s *StubProvider) Languages(ctx context.Context) (map[string]int, error) {
	if s.Langs == nil {
		return map[string]int{}, nil
	}
	return s.Langs, nil
}

func (s *StubProvider) ListDir(ctx context.Context, path string) ([]models.Entry, error) {
	if s.FailDirs[path] {
		return nil, fmt.Errorf("listing %q failed", path)
	}
	entries, ok := s.Listings[path]
	if !ok {
		return nil, fmt.Errorf("no such directory %q", path)
	}
	return entries, nil
}

func (s *StubProvider) FileContent(ctx context.Context, path string) (string, error) {
	if s.FailFiles[path] {
		return "", fmt.Errorf("fetching %q failed", path)
	}
	content, ok := s.Contents[path]
	if !ok {
		return "", fmt.Errorf("no such file %q", path)
	}
	return content, nil
}

// StubGenerator returns a canned response or error for every prompt and
// records the last prompt it was given.
type StubGenerator struct {
	Response   string
	Err        error
	LastPrompt string
	Calls      int
}

func (s *StubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.Calls++
	s.LastPrompt = prompt
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

// FileEntry is a convenience constructor for a root-level file entry.
func FileEntry(name string, size int) models.Entry {
	return models.Entry{Name: name, Path: name, Type: models.EntryFile, Size: size}
}

// DirEntry is a convenience constructor for a directory entry.
func DirEntry(name, path string) models.Entry {
	return models.Entry{Name: name, Path: path, Type: models.EntryDir}
}

// Str returns a pointer to s, for optional metadata fields.
func Str(s string) *string {
	return &s
}
