package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/careerconnect/internal/catalog"
	"github.com/amishk599/careerconnect/internal/model"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Show premium plans",
	Run: func(cmd *cobra.Command, args []string) {
		printPlans(cmd.OutOrStdout(), catalog.Plans())
	},
}

func init() {
	rootCmd.AddCommand(plansCmd)
}

func printPlans(w io.Writer, plans []model.Plan) {
	for _, p := range plans {
		name := p.Name
		if p.Highlighted {
			name += " ★ Most Popular"
		}
		fmt.Fprintf(w, "%s  $%d/month\n", name, p.PriceMonthly)
		fmt.Fprintln(w, strings.Repeat("─", 36))
		for _, f := range p.Features {
			fmt.Fprintf(w, "  ✓ %s\n", f)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "Payments are simulated; no plan is ever charged.")
}
