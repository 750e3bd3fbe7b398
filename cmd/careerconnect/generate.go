package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/careerconnect/internal/ai"
)

var (
	genTitle   string
	genCompany string
	genSkills  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft content with the configured language model",
}

var generateDescriptionCmd = &cobra.Command{
	Use:   "description",
	Short: "Draft a Markdown job description",
	RunE:  runGenerateDescription,
}

var generateCoverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Draft a cover letter for a role",
	RunE:  runGenerateCoverLetter,
}

func init() {
	generateDescriptionCmd.Flags().StringVar(&genTitle, "title", "", "job title")
	generateDescriptionCmd.Flags().StringVar(&genSkills, "skills", "", "comma-separated required skills")
	_ = generateDescriptionCmd.MarkFlagRequired("title")

	generateCoverLetterCmd.Flags().StringVar(&genTitle, "title", "", "job title")
	generateCoverLetterCmd.Flags().StringVar(&genCompany, "company", "", "company name")
	generateCoverLetterCmd.Flags().StringVar(&genSkills, "skills", "", "candidate skills (default: React, TypeScript, Frontend Development)")
	_ = generateCoverLetterCmd.MarkFlagRequired("title")
	_ = generateCoverLetterCmd.MarkFlagRequired("company")

	rootCmd.AddCommand(generateCmd)
	generateCmd.AddCommand(generateDescriptionCmd, generateCoverLetterCmd)
}

func runGenerateDescription(cmd *cobra.Command, args []string) error {
	gen, err := newCLIGenerator(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), gen.JobDescription(cmd.Context(), genTitle, genSkills))
	return nil
}

func runGenerateCoverLetter(cmd *cobra.Command, args []string) error {
	gen, err := newCLIGenerator(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), gen.CoverLetter(cmd.Context(), genTitle, genCompany, genSkills))
	return nil
}

// newCLIGenerator builds the configured generator. Logs go to stderr so
// stdout carries only the generated text.
func newCLIGenerator(cmd *cobra.Command) (*ai.Generator, error) {
	logLevel := slog.LevelWarn
	if debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	return setupGenerator(cmd.Context(), cfg, logger)
}
