package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/careerconnect/internal/auth"
	"github.com/amishk599/careerconnect/internal/browse"
	"github.com/amishk599/careerconnect/internal/model"
)

var (
	browseEmail  string
	browseSkills string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse jobs interactively (TUI)",
	Long:  "Shows the job type picker, then a searchable listing with a detail view that can draft cover letters.",
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseEmail, "email", "john@example.com", "email recorded on applications")
	browseCmd.Flags().StringVar(&browseSkills, "skills", "", "candidate skills for cover letters (default: the demo profile's skills)")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal; any log output would corrupt the display.
	silentLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := setupStore(cfg, silentLogger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	generator, err := setupGenerator(cmd.Context(), cfg, silentLogger)
	if err != nil {
		return err
	}

	skills := browseSkills
	if skills == "" {
		skills = strings.Join(auth.DemoUser(model.RoleJobSeeker, browseEmail).Skills, ", ")
	}

	return browse.Run(cmd.Context(), browse.Options{
		Jobs:           st,
		Applications:   st,
		Generator:      generator,
		ApplicantEmail: browseEmail,
		Skills:         skills,
	})
}
