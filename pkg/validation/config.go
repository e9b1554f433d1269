package validation

import (
	"fmt"

	"github.com/iwvelando/finlit/pkg/constants"
)

// ScenarioConfig is the subset of a scenario needed for validation.
type ScenarioConfig struct {
	Name            string
	Active          bool
	Country         string
	KnownCountry    bool
	MonthlyIncome   float64
	MonthlyExpenses float64
	Expenses        []AmountConfig
	SavingsGoals    []GoalConfig
	Debts           []DebtConfig
	Investments     []InvestmentConfig
}

// AmountConfig is a named amount such as an expense category.
type AmountConfig struct {
	Name   string
	Amount float64
}

// GoalConfig is the subset of a savings goal needed for validation.
type GoalConfig struct {
	Name          string
	Target        float64
	MonthlySaving float64
}

// DebtConfig is the subset of a debt needed for validation.
type DebtConfig struct {
	Name           string
	Balance        float64
	MonthlyPayment float64
}

// InvestmentConfig is the subset of an investment needed for validation.
type InvestmentConfig struct {
	Name  string
	Years int
}

// ConfigValidator checks scenarios for values that will produce errors or
// surprising results.
type ConfigValidator struct {
	Scenarios []ScenarioConfig
}

// ValidateAll returns warnings for every active scenario.
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	active := 0
	seen := make(map[string]bool)
	for _, scenario := range cv.Scenarios {
		if !scenario.Active {
			continue
		}
		active++
		if seen[scenario.Name] {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' is defined more than once", scenario.Name))
		}
		seen[scenario.Name] = true
		warnings = append(warnings, ValidateScenario(scenario)...)
	}

	if active == 0 {
		warnings = append(warnings, "No active scenarios configured")
	}

	return warnings
}

// ValidateScenario returns warnings for a single scenario.
func ValidateScenario(scenario ScenarioConfig) []string {
	var warnings []string
	prefix := fmt.Sprintf("Scenario '%s'", scenario.Name)

	if scenario.Country != "" && !scenario.KnownCountry {
		warnings = append(warnings, fmt.Sprintf("%s country '%s' is not in the rule table - global rules apply",
			prefix, scenario.Country))
	}
	if scenario.MonthlyIncome < 0 {
		warnings = append(warnings, fmt.Sprintf("%s has negative monthly income (%.2f)", prefix, scenario.MonthlyIncome))
	}
	if scenario.MonthlyExpenses < 0 {
		warnings = append(warnings, fmt.Sprintf("%s has negative monthly expenses (%.2f)", prefix, scenario.MonthlyExpenses))
	}

	for _, expense := range scenario.Expenses {
		if expense.Name == "" {
			warnings = append(warnings, fmt.Sprintf("%s has an expense without a name", prefix))
		}
		if expense.Amount < 0 {
			warnings = append(warnings, fmt.Sprintf("%s expense '%s' is negative (%.2f)", prefix, expense.Name, expense.Amount))
		}
	}

	for _, goal := range scenario.SavingsGoals {
		if goal.MonthlySaving <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s savings goal '%s' has no positive monthly saving", prefix, goal.Name))
		}
	}

	for _, debt := range scenario.Debts {
		if debt.MonthlyPayment <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s debt '%s' has no positive monthly payment", prefix, debt.Name))
		}
		if debt.Balance < 0 {
			warnings = append(warnings, fmt.Sprintf("%s debt '%s' has a negative balance (%.2f)", prefix, debt.Name, debt.Balance))
		}
	}

	for _, investment := range scenario.Investments {
		if investment.Years < 0 {
			warnings = append(warnings, fmt.Sprintf("%s investment '%s' has negative years (%d)", prefix, investment.Name, investment.Years))
		}
		if investment.Years > constants.MaxInvestmentYears {
			warnings = append(warnings, fmt.Sprintf("%s investment '%s' runs for %d years, more than the %d allowed",
				prefix, investment.Name, investment.Years, constants.MaxInvestmentYears))
		}
	}

	return warnings
}
