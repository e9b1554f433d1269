// Package config defines the data structures related to configuration and
// includes functions for loading and validating it.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/finlit/pkg/budget"
	"github.com/iwvelando/finlit/pkg/constants"
	"github.com/iwvelando/finlit/pkg/rules"
	"github.com/iwvelando/finlit/pkg/validation"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. FINLIT_OUTPUT_FORMAT.
const EnvPrefix = "FINLIT"

// Configuration holds all configuration for finlit.
type Configuration struct {
	Logging        LoggingConfig        `yaml:"logging,omitempty"`
	Output         OutputConfig         `yaml:"output,omitempty"`
	Export         ExportConfig         `yaml:"export,omitempty"`
	Countries      map[string]Country   `yaml:"countries,omitempty"`
	Classification ClassificationConfig `yaml:"classification,omitempty"`
	Scenarios      []Scenario           `yaml:"scenarios"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// ExportConfig controls the export file written after a run.
type ExportConfig struct {
	Path     string `yaml:"path,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Country adds or overrides an entry of the country rule table.
type Country struct {
	EmergencyMonths   int               `yaml:"emergencyMonths"`
	InflationRate     float64           `yaml:"inflationRate"`
	NeedsPct          int               `yaml:"needsPct"`
	WantsPct          int               `yaml:"wantsPct"`
	SavingsPct        int               `yaml:"savingsPct"`
	CommonInvestments []string          `yaml:"commonInvestments,omitempty"`
	FamilySupport     bool              `yaml:"familySupport,omitempty"`
	Tips              map[string]string `yaml:"tips,omitempty"`
}

// ClassificationConfig replaces the built-in expense keyword rules when
// Rules is non-empty.
type ClassificationConfig struct {
	Fallback string               `yaml:"fallback,omitempty"`
	Rules    []ClassificationRule `yaml:"rules,omitempty"`
}

// ClassificationRule maps a keyword to an essential or discretionary bucket.
type ClassificationRule struct {
	Keyword string `yaml:"keyword"`
	Bucket  string `yaml:"bucket"`
}

// Scenario holds the figures of one demonstration.
type Scenario struct {
	Name            string        `yaml:"name"`
	Active          bool          `yaml:"active"`
	Country         string        `yaml:"country"`
	Currency        string        `yaml:"currency,omitempty"`
	MonthlyIncome   float64       `yaml:"monthlyIncome"`
	MonthlyExpenses float64       `yaml:"monthlyExpenses"`
	Expenses        []Expense     `yaml:"expenses,omitempty"`
	SavingsGoals    []SavingsGoal `yaml:"savingsGoals,omitempty"`
	Debts           []Debt        `yaml:"debts,omitempty"`
	Investments     []Investment  `yaml:"investments,omitempty"`
}

// Expense is one spending category with its monthly amount.
type Expense struct {
	Name   string  `yaml:"name"`
	Amount float64 `yaml:"amount"`
}

// SavingsGoal is a target amount saved towards monthly.
type SavingsGoal struct {
	Name           string  `yaml:"name"`
	Target         float64 `yaml:"target"`
	MonthlySaving  float64 `yaml:"monthlySaving"`
	CurrentSavings float64 `yaml:"currentSavings,omitempty"`
}

// Debt is a balance paid down with a fixed monthly payment. A nil
// InterestRate means constants.DefaultDebtInterestRate.
type Debt struct {
	Name           string   `yaml:"name"`
	Balance        float64  `yaml:"balance"`
	MonthlyPayment float64  `yaml:"monthlyPayment"`
	InterestRate   *float64 `yaml:"interestRate,omitempty"`
}

// Investment is a principal grown with monthly contributions. A nil
// AnnualReturn means constants.DefaultAnnualReturn.
type Investment struct {
	Name                string   `yaml:"name"`
	Principal           float64  `yaml:"principal"`
	MonthlyContribution float64  `yaml:"monthlyContribution"`
	Years               int      `yaml:"years"`
	AnnualReturn        *float64 `yaml:"annualReturn,omitempty"`
}

// Rate returns the configured interest rate or the default.
func (d Debt) Rate() float64 {
	if d.InterestRate == nil {
		return constants.DefaultDebtInterestRate
	}
	return *d.InterestRate
}

// Return returns the configured annual return or the default.
func (i Investment) Return() float64 {
	if i.AnnualReturn == nil {
		return constants.DefaultAnnualReturn
	}
	return *i.AnnualReturn
}

// ExpenseMap sums expenses by category name.
func (s Scenario) ExpenseMap() map[string]float64 {
	out := make(map[string]float64, len(s.Expenses))
	for _, expense := range s.Expenses {
		out[expense.Name] += expense.Amount
	}
	return out
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// RuleTable builds the country rule table from the built-in entries and the
// configured countries.
func (c *Configuration) RuleTable() (*rules.Table, error) {
	extra := make(map[string]rules.CountryRules, len(c.Countries))
	for key, country := range c.Countries {
		extra[key] = rules.CountryRules{
			Name:              strings.ToLower(key),
			EmergencyMonths:   country.EmergencyMonths,
			InflationRate:     country.InflationRate,
			NeedsPct:          country.NeedsPct,
			WantsPct:          country.WantsPct,
			SavingsPct:        country.SavingsPct,
			CommonInvestments: country.CommonInvestments,
			FamilySupport:     country.FamilySupport,
			Tips:              country.Tips,
		}
	}
	return rules.NewTable(extra)
}

// Classifier builds the expense classifier. Without configured rules the
// built-in keywords are used.
func (c *Configuration) Classifier() (*budget.Classifier, error) {
	fallback := budget.BucketDiscretionary
	if c.Classification.Fallback != "" {
		parsed, err := budget.ParseBucket(c.Classification.Fallback)
		if err != nil {
			return nil, fmt.Errorf("invalid classification fallback: %w", err)
		}
		fallback = parsed
	}

	if len(c.Classification.Rules) == 0 {
		return budget.NewClassifier(budget.DefaultClassificationRules(), fallback), nil
	}

	classificationRules := make([]budget.ClassificationRule, 0, len(c.Classification.Rules))
	for _, rule := range c.Classification.Rules {
		bucket, err := budget.ParseBucket(rule.Bucket)
		if err != nil {
			return nil, fmt.Errorf("invalid classification rule for keyword %q: %w", rule.Keyword, err)
		}
		classificationRules = append(classificationRules, budget.ClassificationRule{Keyword: rule.Keyword, Bucket: bucket})
	}
	return budget.NewClassifier(classificationRules, fallback), nil
}

// ExportPath returns the configured export path or the default.
func (c *Configuration) ExportPath() string {
	if c.Export.Path == "" {
		return constants.DefaultExportFile
	}
	return c.Export.Path
}

// ValidateConfiguration performs general validation of the configuration
// against the rule table and returns warnings.
func (c *Configuration) ValidateConfiguration(table *rules.Table) []string {
	var scenarios []validation.ScenarioConfig
	for _, scenario := range c.Scenarios {
		sc := validation.ScenarioConfig{
			Name:            scenario.Name,
			Active:          scenario.Active,
			Country:         scenario.Country,
			KnownCountry:    table != nil && table.Has(scenario.Country),
			MonthlyIncome:   scenario.MonthlyIncome,
			MonthlyExpenses: scenario.MonthlyExpenses,
		}
		for _, expense := range scenario.Expenses {
			sc.Expenses = append(sc.Expenses, validation.AmountConfig{Name: expense.Name, Amount: expense.Amount})
		}
		for _, goal := range scenario.SavingsGoals {
			sc.SavingsGoals = append(sc.SavingsGoals, validation.GoalConfig{
				Name: goal.Name, Target: goal.Target, MonthlySaving: goal.MonthlySaving,
			})
		}
		for _, debt := range scenario.Debts {
			sc.Debts = append(sc.Debts, validation.DebtConfig{
				Name: debt.Name, Balance: debt.Balance, MonthlyPayment: debt.MonthlyPayment,
			})
		}
		for _, investment := range scenario.Investments {
			sc.Investments = append(sc.Investments, validation.InvestmentConfig{Name: investment.Name, Years: investment.Years})
		}
		scenarios = append(scenarios, sc)
	}

	validator := validation.ConfigValidator{Scenarios: scenarios}
	return validator.ValidateAll()
}
