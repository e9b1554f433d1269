package config

import "github.com/iwvelando/finlit/pkg/constants"

// DefaultConfiguration returns the built-in demonstration: a Pakistani family
// and an Italian student.
func DefaultConfiguration() *Configuration {
	italianReturn := 0.07

	return &Configuration{
		Output: OutputConfig{Format: constants.OutputFormatPretty},
		Export: ExportConfig{Path: constants.DefaultExportFile},
		Scenarios: []Scenario{
			{
				Name:            "Pakistani family",
				Active:          true,
				Country:         constants.CountryPakistan,
				Currency:        "PKR",
				MonthlyIncome:   80000,
				MonthlyExpenses: 60000,
				Expenses: []Expense{
					{Name: "Rent", Amount: 25000},
					{Name: "Food", Amount: 15000},
					{Name: "Utilities", Amount: 6000},
					{Name: "Transport", Amount: 5000},
					{Name: "Family support", Amount: 4000},
					{Name: "Entertainment", Amount: 5000},
				},
				SavingsGoals: []SavingsGoal{
					{Name: "House down payment", Target: 2000000, MonthlySaving: 20000, CurrentSavings: 150000},
				},
				Debts: []Debt{
					{Name: "Motorbike loan", Balance: 100000, MonthlyPayment: 5000},
				},
			},
			{
				Name:            "Italian student",
				Active:          true,
				Country:         constants.CountryItaly,
				Currency:        "EUR",
				MonthlyIncome:   800,
				MonthlyExpenses: 700,
				Expenses: []Expense{
					{Name: "Rent", Amount: 350},
					{Name: "Food", Amount: 150},
					{Name: "Utilities", Amount: 60},
					{Name: "Transport", Amount: 40},
					{Name: "Dining out", Amount: 50},
					{Name: "Entertainment", Amount: 50},
				},
				SavingsGoals: []SavingsGoal{
					{Name: "Master's degree", Target: 15000, MonthlySaving: 200, CurrentSavings: 3000},
				},
				Investments: []Investment{
					{Name: "Index fund", Principal: 1000, MonthlyContribution: 100, Years: 10, AnnualReturn: &italianReturn},
				},
			},
		},
	}
}
