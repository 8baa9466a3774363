package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/readmegen/readmegen/internal/config"
	"github.com/readmegen/readmegen/internal/pipeline"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "readmegen",
		Short: "Analyze a GitHub repository and generate its README",
	}

	root.AddCommand(generateCmd(), classifyCmd(), analyzeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var (
		outDir      string
		noAI        bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "generate owner/repo [owner/repo...]",
		Short: "Generate a README for one or more repositories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg := config.Load()

			deps := pipeline.NewDeps(cfg)
			if noAI {
				deps.Generator = nil
			}

			repos := make([][2]string, 0, len(args))
			for _, arg := range args {
				owner, repo, err := splitRepo(arg)
				if err != nil {
					return err
				}
				repos = append(repos, [2]string{owner, repo})
			}

			if len(repos) == 1 {
				res, err := pipeline.Run(ctx, deps, repos[0][0], repos[0][1])
				if err != nil {
					return err
				}
				return writeResult(res, outDir)
			}

			results := pipeline.RunBatch(ctx, deps, repos, concurrency)
			for _, res := range results {
				if err := writeResult(res, outDir); err != nil {
					return err
				}
			}
			fmt.Printf("Generated %d/%d READMEs\n", len(results), len(repos))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory to write README files to (default stdout)")
	cmd.Flags().BoolVar(&noAI, "no-ai", false, "Skip the AI call and use template descriptions")
	cmd.Flags().IntVar(&concurrency, "concurrency", 3, "Concurrent repositories in batch mode")
	return cmd
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify owner/repo",
		Short: "Print the detected project type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg := config.Load()

			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			deps := pipeline.NewDeps(cfg)
			deps.Generator = nil // classification needs no AI

			res, err := pipeline.Run(ctx, deps, owner, repo)
			if err != nil {
				return err
			}
			fmt.Println(res.ProjectType)
			return nil
		},
	}
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze owner/repo",
		Short: "Print the repository analysis record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg := config.Load()

			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			deps := pipeline.NewDeps(cfg)
			deps.Generator = nil

			res, err := pipeline.Run(ctx, deps, owner, repo)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(res.Analysis, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func splitRepo(arg string) (string, string, error) {
	parts := strings.SplitN(arg, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected owner/repo, got %q", arg)
	}
	return parts[0], parts[1], nil
}

func writeResult(res *pipeline.Result, outDir string) error {
	if outDir == "" {
		fmt.Println(res.README)
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	name := strings.ReplaceAll(res.Repo, "/", "-") + "-README.md"
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, []byte(res.README), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%s)\n", path, res.ProjectType)
	return nil
}
