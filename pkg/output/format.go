// Package output provides utilities for formatting and displaying scenario reports.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/finlit/internal/scenario"
	"github.com/iwvelando/finlit/pkg/constants"
	"github.com/iwvelando/finlit/pkg/format"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Write renders reports to w in the named output format.
func Write(w io.Writer, outputFormat string, reports []scenario.Report) error {
	switch strings.ToLower(outputFormat) {
	case constants.OutputFormatPretty, "":
		PrettyFormat(w, reports)
		return nil
	case constants.OutputFormatCSV:
		return CsvFormat(w, reports)
	case constants.OutputFormatJSON:
		return JSONFormat(w, reports)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable summary.
func PrettyFormat(w io.Writer, reports []scenario.Report) {
	p := message.NewPrinter(language.English)
	title := cases.Title(language.English)

	for i, report := range reports {
		money := func(amount float64) string { return format.Currency(amount, report.Currency) }

		_, _ = fmt.Fprintf(w, "--- Results for scenario %s (%s) ---\n", report.Name, title.String(report.Country))
		_, _ = fmt.Fprintf(w, "Monthly income:   %s\n", money(report.MonthlyIncome))
		_, _ = fmt.Fprintf(w, "Monthly expenses: %s\n\n", money(report.MonthlyExpenses))

		_, _ = fmt.Fprintf(w, "Emergency fund: %d months (%s)\n", report.EmergencyFund.TargetMonths, money(report.EmergencyFund.TargetAmount))
		_, _ = fmt.Fprintf(w, "  %s\n", report.EmergencyFund.Explanation)

		split := report.Budget
		_, _ = fmt.Fprintf(w, "Budget (%s rule):\n", split.BudgetRule)
		_, _ = fmt.Fprintf(w, "  Needs   (%d%%): %s\n", split.Percentages.Needs, money(split.Needs))
		_, _ = fmt.Fprintf(w, "  Wants   (%d%%): %s\n", split.Percentages.Wants, money(split.Wants))
		_, _ = fmt.Fprintf(w, "  Savings (%d%%): %s\n", split.Percentages.Savings, money(split.Savings))

		if a := report.ExpenseAnalysis; a != nil {
			_, _ = fmt.Fprintf(w, "Spending:\n")
			_, _ = fmt.Fprintf(w, "  Essential:     %s (%s)\n", money(a.EssentialTotal), format.Percent(a.EssentialPct))
			_, _ = fmt.Fprintf(w, "  Discretionary: %s (%s)\n", money(a.DiscretionaryTotal), format.Percent(a.DiscretionaryPct))
			_, _ = fmt.Fprintf(w, "  Savings rate:  %s\n", format.Percent(a.SavingsRate))
		}

		for _, goal := range report.SavingsGoals {
			_, _ = fmt.Fprintf(w, "Savings goal %s (%s):\n", goal.Name, money(goal.Target))
			if goal.Error != "" {
				_, _ = fmt.Fprintf(w, "  Error: %s\n", goal.Error)
				continue
			}
			_, _ = p.Fprintf(w, "  Months needed: %d (%d adjusted for inflation)\n", goal.Result.MonthsNeeded, goal.Result.InflationAdjustedMonths)
			_, _ = p.Fprintf(w, "  Years needed:  %.1f\n", goal.Result.YearsNeeded)
		}

		for _, debt := range report.Debts {
			_, _ = fmt.Fprintf(w, "Debt %s (%s at %s):\n", debt.Name, money(debt.Balance), format.Percent(debt.InterestRate*constants.PercentageMultiplier))
			if debt.Error != "" {
				_, _ = fmt.Fprintf(w, "  Error: %s\n", debt.Error)
				continue
			}
			_, _ = p.Fprintf(w, "  Months to payoff: %d (%.1f years)\n", debt.Result.MonthsToPayoff, debt.Result.YearsToPayoff)
			_, _ = fmt.Fprintf(w, "  Total interest:   %s\n", money(debt.Result.TotalInterest))
			if debt.Result.Capped {
				_, _ = fmt.Fprintf(w, "  Still owed after %d months: %s\n", constants.MaxPayoffMonths, money(debt.Result.RemainingBalance))
			}
		}

		for _, investment := range report.Investments {
			_, _ = p.Fprintf(w, "Investment %s (%d years at %.1f%%):\n", investment.Name, investment.Years, investment.AnnualReturn*constants.PercentageMultiplier)
			if investment.Result == nil {
				_, _ = fmt.Fprintf(w, "  Error: %s\n", investment.Error)
				continue
			}
			_, _ = fmt.Fprintf(w, "  Future value:    %s\n", money(investment.Result.FutureValue))
			_, _ = fmt.Fprintf(w, "  Contributions:   %s\n", money(investment.Result.TotalContributions))
			_, _ = fmt.Fprintf(w, "  Interest earned: %s\n", money(investment.Result.InterestEarned))
			if investment.Error == "" {
				_, _ = p.Fprintf(w, "  Growth multiple: %.2fx\n", investment.Result.GrowthMultiple)
			}
		}

		if len(report.Lessons) > 0 {
			lesson := report.Lessons[0]
			_, _ = fmt.Fprintf(w, "Recommended first lesson: %s (%s)\n", lesson.Title, lesson.Duration)
			_, _ = fmt.Fprintf(w, "  Tip: %s\n", lesson.CountryTip)
		}

		if i < len(reports)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

// Dashboard outputs the short summary of one report: emergency fund, the
// first savings goal, the budget split and the first debt.
func Dashboard(w io.Writer, report scenario.Report) {
	money := func(amount float64) string { return format.Currency(amount, report.Currency) }

	_, _ = fmt.Fprintf(w, "%s dashboard\n", report.Name)
	_, _ = fmt.Fprintf(w, "  Emergency fund target: %s (%d months)\n", money(report.EmergencyFund.TargetAmount), report.EmergencyFund.TargetMonths)
	if len(report.SavingsGoals) > 0 && report.SavingsGoals[0].Result != nil {
		goal := report.SavingsGoals[0]
		_, _ = fmt.Fprintf(w, "  %s: %.1f years to go\n", goal.Name, goal.Result.YearsNeeded)
	}
	_, _ = fmt.Fprintf(w, "  Monthly budget: needs %s, wants %s, savings %s\n",
		money(report.Budget.Needs), money(report.Budget.Wants), money(report.Budget.Savings))
	if len(report.Debts) > 0 && report.Debts[0].Result != nil {
		debt := report.Debts[0]
		_, _ = fmt.Fprintf(w, "  %s: paid off in %d months\n", debt.Name, debt.Result.MonthsToPayoff)
	}
}

// CsvFormat outputs in comma-separated value format, one row per metric.
func CsvFormat(w io.Writer, reports []scenario.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"scenario", "section", "item", "metric", "value"}); err != nil {
		return err
	}

	for _, report := range reports {
		rows := [][]string{
			{"emergency_fund", "", "target_months", strconv.Itoa(report.EmergencyFund.TargetMonths)},
			{"emergency_fund", "", "target_amount", amount(report.EmergencyFund.TargetAmount)},
			{"budget", report.Budget.BudgetRule, "needs", amount(report.Budget.Needs)},
			{"budget", report.Budget.BudgetRule, "wants", amount(report.Budget.Wants)},
			{"budget", report.Budget.BudgetRule, "savings", amount(report.Budget.Savings)},
		}
		if a := report.ExpenseAnalysis; a != nil {
			rows = append(rows,
				[]string{"expenses", "", "total", amount(a.TotalExpenses)},
				[]string{"expenses", "", "essential", amount(a.EssentialTotal)},
				[]string{"expenses", "", "discretionary", amount(a.DiscretionaryTotal)},
				[]string{"expenses", "", "savings_rate", strconv.FormatFloat(a.SavingsRate, 'f', 1, 64)},
			)
		}
		for _, goal := range report.SavingsGoals {
			if goal.Result == nil {
				rows = append(rows, []string{"savings_goal", goal.Name, "error", goal.Error})
				continue
			}
			rows = append(rows,
				[]string{"savings_goal", goal.Name, "months_needed", strconv.Itoa(goal.Result.MonthsNeeded)},
				[]string{"savings_goal", goal.Name, "adjusted_months", strconv.Itoa(goal.Result.InflationAdjustedMonths)},
			)
		}
		for _, debt := range report.Debts {
			if debt.Result == nil {
				rows = append(rows, []string{"debt", debt.Name, "error", debt.Error})
				continue
			}
			rows = append(rows,
				[]string{"debt", debt.Name, "months_to_payoff", strconv.Itoa(debt.Result.MonthsToPayoff)},
				[]string{"debt", debt.Name, "total_interest", amount(debt.Result.TotalInterest)},
			)
		}
		for _, investment := range report.Investments {
			if investment.Result == nil {
				rows = append(rows, []string{"investment", investment.Name, "error", investment.Error})
				continue
			}
			rows = append(rows,
				[]string{"investment", investment.Name, "future_value", amount(investment.Result.FutureValue)},
				[]string{"investment", investment.Name, "interest_earned", amount(investment.Result.InterestEarned)},
			)
		}

		for _, row := range rows {
			if err := cw.Write(append([]string{report.Name}, row...)); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// CsvString returns the CSV rendering of reports as a string.
func CsvString(reports []scenario.Report) (string, error) {
	var sb strings.Builder
	if err := CsvFormat(&sb, reports); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// JSONFormat outputs the reports as an indented JSON array.
func JSONFormat(w io.Writer, reports []scenario.Report) error {
	if reports == nil {
		reports = []scenario.Report{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reports)
}

func amount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
