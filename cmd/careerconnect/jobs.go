package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/careerconnect/internal/filter"
	"github.com/amishk599/careerconnect/internal/model"
)

var (
	jobsQuery string
	jobsType  string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List job listings",
	Long:  "Prints the listings matching --query (title or company) and --type.",
	RunE:  runJobs,
}

func init() {
	jobsCmd.Flags().StringVarP(&jobsQuery, "query", "q", "", "case-insensitive match on title or company")
	jobsCmd.Flags().StringVarP(&jobsType, "type", "t", model.AllTypes, "job type, or All")
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	if jobsType != model.AllTypes {
		if _, err := model.ParseJobType(jobsType); err != nil {
			return err
		}
	}

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

	jobs, err := st.ListJobs(cmd.Context())
	if err != nil {
		return fmt.Errorf("list jobs: %w", err)
	}
	printJobs(cmd.OutOrStdout(), filter.FilterJobs(jobs, jobsQuery, jobsType))
	return nil
}

func printJobs(w io.Writer, jobs []model.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(w, "No jobs found matching your criteria.")
		return
	}

	fmt.Fprintf(w, "%-6s %-30s %-22s %-18s %-11s %s\n", "ID", "Title", "Company", "Location", "Type", "Salary")
	fmt.Fprintln(w, strings.Repeat("─", 104))
	for _, j := range jobs {
		fmt.Fprintf(w, "%-6s %-30s %-22s %-18s %-11s %s\n",
			truncate(j.ID, 6), truncate(j.Title, 30), truncate(j.Company, 22), truncate(j.Location, 18), j.Type, j.SalaryRange)
	}
	fmt.Fprintf(w, "\nTotal: %d jobs\n", len(jobs))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
