package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/docparse"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured fields from a resume or job description",
	Long:  "Extract the structured record (name, contacts, skills, experience, education) from a document and print it as JSON. No scoring is performed, so no API key is needed.",
	RunE:  runExtract,
}

var (
	extractResumeFile string
	extractJobFile    string
)

func init() {
	extractCmd.Flags().StringVarP(&extractResumeFile, "resume", "r", "", "Path to a resume file")
	extractCmd.Flags().StringVarP(&extractJobFile, "job", "j", "", "Path to a job description file")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if (extractResumeFile == "") == (extractJobFile == "") {
		return fmt.Errorf("provide exactly one of --resume or --job")
	}

	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}
	extractor := buildExtractor(vocab)

	var record any
	if extractResumeFile != "" {
		text, err := docparse.FromFile(extractResumeFile)
		if err != nil {
			return err
		}
		record = extractor.Resume(text)
	} else {
		text, err := docparse.FromFile(extractJobFile)
		if err != nil {
			return err
		}
		record = extractor.Job(text)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
