package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/finlit/pkg/education"
	"github.com/iwvelando/finlit/pkg/rules"
	"github.com/spf13/cobra"
)

var flagCountry string

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Print the introductory lessons with country tips",
	Args:  cobra.NoArgs,
	RunE:  runLessons,
}

func init() {
	lessonsCmd.Flags().StringVar(&flagCountry, "country", "global", "country whose tips are shown")
	rootCmd.AddCommand(lessonsCmd)
}

func runLessons(cmd *cobra.Command, _ []string) error {
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
	printLessons(cmd.OutOrStdout(), table.Lookup(flagCountry))
	return nil
}

func printLessons(w io.Writer, r rules.CountryRules) {
	for _, lesson := range education.NewEducator(r).Lessons() {
		_, _ = fmt.Fprintf(w, "%d. %s (%s)\n", lesson.ID, lesson.Title, lesson.Duration)
		_, _ = fmt.Fprintf(w, "   %s\n", lesson.Description)
		_, _ = fmt.Fprintf(w, "   Topics: %s\n", strings.Join(lesson.Topics, ", "))
		_, _ = fmt.Fprintf(w, "   Tip: %s\n", lesson.CountryTip)
	}
}
