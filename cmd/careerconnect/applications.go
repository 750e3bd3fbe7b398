package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/careerconnect/internal/export"
	"github.com/amishk599/careerconnect/internal/model"
)

var applicationsCSV string

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List submitted applications",
	Long:  "Prints the application history, or writes it to a CSV file with --csv.",
	RunE:  runApplications,
}

func init() {
	applicationsCmd.Flags().StringVar(&applicationsCSV, "csv", "", "write applications to this CSV file instead of printing")
	rootCmd.AddCommand(applicationsCmd)
}

func runApplications(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	st, err := setupStore(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	apps, err := st.ListApplications(cmd.Context())
	if err != nil {
		return fmt.Errorf("list applications: %w", err)
	}

	if applicationsCSV != "" {
		if err := export.ApplicationsCSVFile(applicationsCSV, apps); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d applications to %s\n", len(apps), applicationsCSV)
		return nil
	}
	printApplications(cmd.OutOrStdout(), apps)
	return nil
}

func printApplications(w io.Writer, apps []model.Application) {
	if len(apps) == 0 {
		fmt.Fprintln(w, "No applications yet.")
		return
	}
	fmt.Fprintf(w, "%-30s %-22s %-10s %s\n", "Job", "Company", "Status", "Applied")
	fmt.Fprintln(w, strings.Repeat("─", 76))
	for _, a := range apps {
		fmt.Fprintf(w, "%-30s %-22s %-10s %s\n", truncate(a.JobTitle, 30), truncate(a.CompanyName, 22), a.Status, a.AppliedDate)
	}
}
