// Package main provides the taxcalc command line tool: a 2025 US tax
// breakdown (federal, NY state, NYC, Social Security, Medicare) printed as a
// summary table with take-home figures.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"tax-engine/internal/engine"
	"tax-engine/internal/model"
	"tax-engine/internal/report"
	"tax-engine/internal/schedule"
)

var (
	flagIncome            float64
	flagBase              float64
	flagBonus             float64
	flagContribution401K  float64
	flagStandardDeduction float64
	flagOtherDeduction    float64
	flagScheduleFile      string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxcalc",
		Short: "Calculate US federal, state (NY), and local (NYC) income taxes for 2025",
		Long: `Calculate US federal, state (NY), and local (NYC) income taxes for 2025,
along with Social Security and Medicare taxes.

Examples:
  taxcalc --income 60000
  taxcalc --income 60000 --other-deduction 5000
  taxcalc --base 50000 --bonus 10000 --contribution-401k 23500`,
		RunE: run,
	}
	cmd.Flags().Float64Var(&flagIncome, "income", 0, "Total gross income (alternative to --base/--bonus)")
	cmd.Flags().Float64Var(&flagBase, "base", 0, "Base salary")
	cmd.Flags().Float64Var(&flagBonus, "bonus", 0, "Bonus amount")
	cmd.Flags().Float64Var(&flagContribution401K, "contribution-401k", 0, "401(k) contribution (traditional, pre-tax)")
	cmd.Flags().Float64Var(&flagStandardDeduction, "standard-deduction", model.DefaultStandardDeduction, "Standard deduction amount")
	cmd.Flags().Float64Var(&flagOtherDeduction, "other-deduction", 0, "Other deductions")
	cmd.Flags().StringVar(&flagScheduleFile, "schedule-file", "", "TOML file overriding the built-in bracket schedules")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	income := flagBase + flagBonus
	if cmd.Flags().Changed("income") {
		income = flagIncome
	}
	if income <= 0 {
		return fmt.Errorf("income must be greater than 0")
	}

	// Total deduction: standard + 401k + other. A traditional 401(k)
	// contribution reduces taxable income.
	deduction := flagStandardDeduction + flagContribution401K + flagOtherDeduction

	set := schedule.Default()
	if flagScheduleFile != "" {
		var err error
		set, err = schedule.LoadFile(flagScheduleFile)
		if err != nil {
			return err
		}
	}

	summary, err := engine.Summarize(income, deduction, set)
	if err != nil {
		return err
	}

	totalTax := summary.Rows[engine.TotalLabel].Tax
	takeHomeRate := report.TakeHomeRate(income, flagContribution401K, float64(totalTax))

	sep := "\n" + sepStyle.Render(strings.Repeat("-", 72)) + "\n"
	out := cmd.OutOrStdout()

	fmt.Fprint(out, sep)
	fmt.Fprintf(out, "Income: %s, Tax: %s, 401K: %s\n",
		report.Dollars(income),
		report.Dollars(float64(totalTax)),
		report.Dollars(flagContribution401K))
	fmt.Fprint(out, sep)
	fmt.Fprintf(out, "Take-Home Rate: %s\n", report.Percent(takeHomeRate))
	if flagBase > 0 {
		fmt.Fprintf(out, "Monthly Post-Tax Base: %s\n",
			report.Dollars(report.MonthlyPostTax(flagBase, takeHomeRate)))
	}
	fmt.Fprintf(out, "Monthly Post-Tax Total: %s\n",
		report.Dollars(report.MonthlyPostTax(income, takeHomeRate)))
	fmt.Fprint(out, sep)
	fmt.Fprintln(out, renderSummary(summary))

	return nil
}

var (
	sepStyle    = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Width(10)
	cellStyle   = lipgloss.NewStyle().Width(14).Align(lipgloss.Right)
)

func renderSummary(summary engine.Summary) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(
		labelStyle.Render("Tax Type") +
			cellStyle.Render("Tax") +
			cellStyle.Render("Nominal") +
			cellStyle.Render("Marginal") +
			cellStyle.Render("Effective")))
	b.WriteByte('\n')

	for _, label := range summary.Labels {
		row := summary.Rows[label]
		line := labelStyle.Render(label) +
			cellStyle.Render(report.Dollars(float64(row.Tax))) +
			cellStyle.Render(report.Percent(row.NominalRate)) +
			cellStyle.Render(report.Percent(row.MarginalRate)) +
			cellStyle.Render(report.Percent(row.EffectiveRate))
		if label == engine.TotalLabel {
			line = headerStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}
