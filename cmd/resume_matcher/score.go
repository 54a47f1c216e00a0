package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/docparse"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/match"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one or more resumes against a job description",
	Long:  "Score resume files (PDF, DOCX, HTML, or plain text) against a job description and print them ranked by match percentage.",
	RunE:  runScore,
}

var (
	scoreResumeFiles []string
	scoreJobFile     string
	scoreJobURL      string
	scoreJSONOutput  bool
	scorePersist     bool
)

func init() {
	scoreCmd.Flags().StringArrayVarP(&scoreResumeFiles, "resume", "r", nil, "Path to a resume file (repeatable)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to the job description file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch the job description from")
	scoreCmd.Flags().BoolVar(&scoreJSONOutput, "json", false, "Print full results as JSON")
	scoreCmd.Flags().BoolVar(&scorePersist, "persist", false, "Store the run in the database (requires DATABASE_URL)")
	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

// loadJobText resolves the job description from the configured source.
func loadJobText(ctx context.Context) (string, error) {
	switch {
	case scoreJobFile != "" && scoreJobURL != "":
		return "", fmt.Errorf("--job and --job-url are mutually exclusive")
	case scoreJobFile != "":
		return docparse.FromFile(scoreJobFile)
	case scoreJobURL != "":
		return fetch.JobPosting(ctx, scoreJobURL, nil)
	default:
		return "", fmt.Errorf("provide --job or --job-url")
	}
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	engine, cleanup, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	jobText, err := loadJobText(ctx)
	if err != nil {
		return err
	}

	resumes := make([]match.BatchResume, 0, len(scoreResumeFiles))
	for _, path := range scoreResumeFiles {
		text, err := docparse.FromFile(path)
		if err != nil {
			return err
		}
		resumes = append(resumes, match.BatchResume{Name: filepath.Base(path), Text: text})
	}

	ranked, err := engine.ScoreBatch(ctx, resumes, jobText)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if scorePersist {
		if err := persistRun(ctx, cfg.DatabaseURL, engine, jobText, ranked); err != nil {
			return err
		}
	}

	if scoreJSONOutput {
		out, err := json.MarshalIndent(ranked, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJobRecord(engine.ExtractJob(jobText))
		for _, entry := range ranked {
			printer.PrintResumeRecord(entry.Name, entry.Resume)
			printer.PrintMatchResult(entry.Name, entry.Result)
		}
	}

	for i, entry := range ranked {
		fmt.Printf("%2d. %-30s %-25s %6.2f%%\n",
			i+1, entry.Name, entry.Resume.Name.String(), entry.Result.TotalPercent)
	}
	return nil
}

// persistRun stores the job and every ranked result as one match run.
func persistRun(ctx context.Context, databaseURL string, engine *match.Engine, jobText string, ranked []match.RankedMatch) error {
	if databaseURL == "" {
		return fmt.Errorf("--persist requires DATABASE_URL (or database_url in config)")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := database.CreateMatchRun(ctx, engine.ExtractJob(jobText))
	if err != nil {
		return err
	}
	for _, entry := range ranked {
		if _, err := database.SaveMatchResult(ctx, runID, entry.Name, entry.Resume, entry.Result); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "Stored run %s (%d results)\n", runID, len(ranked))
	return nil
}
