package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/iwvelando/finlit/pkg/constants"
	"github.com/iwvelando/finlit/pkg/rules"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var countriesCmd = &cobra.Command{
	Use:   "countries [key]",
	Short: "List the country rule table or show one entry",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCountries,
}

func init() {
	rootCmd.AddCommand(countriesCmd)
}

func runCountries(cmd *cobra.Command, args []string) error {
	conf, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	table, err := conf.RuleTable()
	if err != nil {
		return fmt.Errorf("failed to build country rule table: %w", err)
	}

	if len(args) == 1 {
		return printCountry(cmd.OutOrStdout(), table, args[0])
	}
	return printCountries(cmd.OutOrStdout(), table)
}

func printCountries(w io.Writer, table *rules.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "COUNTRY\tEMERGENCY\tINFLATION\tBUDGET\tFAMILY SUPPORT")
	for _, key := range table.Keys() {
		r := table.Lookup(key)
		_, _ = fmt.Fprintf(tw, "%s\t%d months\t%.1f%%\t%s\t%t\n",
			key, r.EmergencyMonths, r.InflationRate*constants.PercentageMultiplier, r.BudgetRule(), r.FamilySupport)
	}
	return tw.Flush()
}

func printCountry(w io.Writer, table *rules.Table, key string) error {
	r := table.Lookup(key)
	title := cases.Title(language.English)

	if !table.Has(key) {
		_, _ = fmt.Fprintf(w, "%s is not in the rule table, global rules apply\n", key)
	}
	_, _ = fmt.Fprintf(w, "%s\n", title.String(r.Name))
	_, _ = fmt.Fprintf(w, "  Emergency fund: %d months of expenses\n", r.EmergencyMonths)
	_, _ = fmt.Fprintf(w, "  Inflation:      %.1f%%\n", r.InflationRate*constants.PercentageMultiplier)
	_, _ = fmt.Fprintf(w, "  Budget rule:    %s (needs/wants/savings)\n", r.BudgetRule())
	if len(r.CommonInvestments) > 0 {
		_, _ = fmt.Fprintf(w, "  Investments:    %s\n", strings.Join(r.CommonInvestments, ", "))
	}
	for _, topic := range []string{constants.TopicBudgeting, constants.TopicEmergency, constants.TopicDebt, constants.TopicInvesting} {
		_, _ = fmt.Fprintf(w, "  %-15s %s\n", title.String(topic)+":", r.Tip(topic))
	}
	return nil
}
