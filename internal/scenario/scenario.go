// Package scenario defines the data structures of a scenario report and
// includes functions for computing the reports.
package scenario

import (
	"errors"
	"fmt"

	"github.com/iwvelando/finlit/internal/config"
	"github.com/iwvelando/finlit/pkg/budget"
	"github.com/iwvelando/finlit/pkg/calculator"
	"github.com/iwvelando/finlit/pkg/education"
	"github.com/iwvelando/finlit/pkg/rules"
	"go.uber.org/zap"
)

// Report holds every result computed for one scenario.
type Report struct {
	Name            string                         `json:"name" yaml:"name"`
	Country         string                         `json:"country" yaml:"country"`
	Currency        string                         `json:"currency,omitempty" yaml:"currency,omitempty"`
	MonthlyIncome   float64                        `json:"monthly_income" yaml:"monthlyIncome"`
	MonthlyExpenses float64                        `json:"monthly_expenses" yaml:"monthlyExpenses"`
	EmergencyFund   calculator.EmergencyFundResult `json:"emergency_fund" yaml:"emergencyFund"`
	Budget          budget.Split                   `json:"budget" yaml:"budget"`
	ExpenseAnalysis *budget.ExpenseAnalysis        `json:"expense_analysis,omitempty" yaml:"expenseAnalysis,omitempty"`
	SavingsGoals    []GoalReport                   `json:"savings_goals,omitempty" yaml:"savingsGoals,omitempty"`
	Debts           []DebtReport                   `json:"debts,omitempty" yaml:"debts,omitempty"`
	Investments     []InvestmentReport             `json:"investments,omitempty" yaml:"investments,omitempty"`
	Lessons         []education.Lesson             `json:"lessons" yaml:"lessons"`
}

// GoalReport is the outcome of one savings goal. Error is set instead of
// Result when the inputs are rejected.
type GoalReport struct {
	Name           string                        `json:"name" yaml:"name"`
	Target         float64                       `json:"target" yaml:"target"`
	CurrentSavings float64                       `json:"current_savings" yaml:"currentSavings"`
	Result         *calculator.SavingsGoalResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error          string                        `json:"error,omitempty" yaml:"error,omitempty"`
}

// DebtReport is the outcome of one debt payoff.
type DebtReport struct {
	Name           string                       `json:"name" yaml:"name"`
	Balance        float64                      `json:"balance" yaml:"balance"`
	MonthlyPayment float64                      `json:"monthly_payment" yaml:"monthlyPayment"`
	InterestRate   float64                      `json:"interest_rate" yaml:"interestRate"`
	Result         *calculator.DebtPayoffResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error          string                       `json:"error,omitempty" yaml:"error,omitempty"`
}

// InvestmentReport is the outcome of one compound interest projection. The
// result is kept even when Error reports an undefined growth multiple.
type InvestmentReport struct {
	Name                string                             `json:"name" yaml:"name"`
	Principal           float64                            `json:"principal" yaml:"principal"`
	MonthlyContribution float64                            `json:"monthly_contribution" yaml:"monthlyContribution"`
	Years               int                                `json:"years" yaml:"years"`
	AnnualReturn        float64                            `json:"annual_return" yaml:"annualReturn"`
	Result              *calculator.CompoundInterestResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error               string                             `json:"error,omitempty" yaml:"error,omitempty"`
}

// Runner computes reports using a shared rule table and classifier.
type Runner struct {
	logger     *zap.Logger
	table      *rules.Table
	classifier *budget.Classifier
}

// NewRunner creates a runner. A nil classifier uses the built-in rules.
func NewRunner(logger *zap.Logger, table *rules.Table, classifier *budget.Classifier) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if table == nil {
		return nil, fmt.Errorf("rule table cannot be nil")
	}
	if classifier == nil {
		classifier = budget.NewDefaultClassifier()
	}
	return &Runner{logger: logger, table: table, classifier: classifier}, nil
}

// Run computes reports for every active scenario in order.
func (r *Runner) Run(scenarios []config.Scenario) []Report {
	var reports []Report
	for _, sc := range scenarios {
		if !sc.Active {
			r.logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", sc.Name),
				zap.String("op", "scenario.Run"),
			)
			continue
		}
		reports = append(reports, r.Report(sc))
	}
	return reports
}

// Report computes the report for a single scenario regardless of whether it
// is active.
func (r *Runner) Report(sc config.Scenario) Report {
	if sc.Country != "" && !r.table.Has(sc.Country) {
		r.logger.Debug(fmt.Sprintf("country %s not in rule table, using global rules", sc.Country),
			zap.String("op", "scenario.Report"),
			zap.String("scenario", sc.Name),
		)
	}
	countryRules := r.table.Lookup(sc.Country)

	calc := calculator.NewCalculator(r.logger, countryRules)
	planner := budget.NewPlanner(r.logger, countryRules, r.classifier)
	educator := education.NewEducator(countryRules)

	report := Report{
		Name:            sc.Name,
		Country:         countryRules.Name,
		Currency:        sc.Currency,
		MonthlyIncome:   sc.MonthlyIncome,
		MonthlyExpenses: sc.MonthlyExpenses,
		EmergencyFund:   calc.EmergencyFund(sc.MonthlyExpenses),
		Budget:          planner.CreateBudget(sc.MonthlyIncome),
		Lessons:         educator.Lessons(),
	}

	if len(sc.Expenses) > 0 {
		analysis := planner.AnalyzeExpenses(sc.MonthlyIncome, sc.ExpenseMap())
		report.ExpenseAnalysis = &analysis
	}

	for _, goal := range sc.SavingsGoals {
		goalReport := GoalReport{Name: goal.Name, Target: goal.Target, CurrentSavings: goal.CurrentSavings}
		result, err := calc.SavingsGoal(goal.Target, goal.MonthlySaving, goal.CurrentSavings)
		if err != nil {
			r.warn(sc.Name, goal.Name, err)
			goalReport.Error = err.Error()
		} else {
			goalReport.Result = &result
		}
		report.SavingsGoals = append(report.SavingsGoals, goalReport)
	}

	for _, debt := range sc.Debts {
		debtReport := DebtReport{
			Name:           debt.Name,
			Balance:        debt.Balance,
			MonthlyPayment: debt.MonthlyPayment,
			InterestRate:   debt.Rate(),
		}
		result, err := calc.DebtPayoff(debt.Balance, debt.MonthlyPayment, debt.Rate())
		if err != nil {
			r.warn(sc.Name, debt.Name, err)
			debtReport.Error = err.Error()
		} else {
			debtReport.Result = &result
		}
		report.Debts = append(report.Debts, debtReport)
	}

	for _, investment := range sc.Investments {
		investmentReport := InvestmentReport{
			Name:                investment.Name,
			Principal:           investment.Principal,
			MonthlyContribution: investment.MonthlyContribution,
			Years:               investment.Years,
			AnnualReturn:        investment.Return(),
		}
		result, err := calc.CompoundInterest(investment.Principal, investment.MonthlyContribution,
			investment.Years, investment.Return())
		if err != nil {
			r.warn(sc.Name, investment.Name, err)
			investmentReport.Error = err.Error()
		}
		if err == nil || errors.Is(err, calculator.ErrDivisionByZero) {
			investmentReport.Result = &result
		}
		report.Investments = append(report.Investments, investmentReport)
	}

	return report
}

func (r *Runner) warn(scenarioName, itemName string, err error) {
	r.logger.Warn(fmt.Sprintf("scenario %s: %s could not be computed", scenarioName, itemName),
		zap.String("op", "scenario.Report"),
		zap.Error(err),
	)
}

// GetReports builds the rule table and classifier from conf and computes the
// reports for all active scenarios.
func GetReports(logger *zap.Logger, conf config.Configuration) ([]Report, error) {
	table, err := conf.RuleTable()
	if err != nil {
		return nil, err
	}
	classifier, err := conf.Classifier()
	if err != nil {
		return nil, err
	}
	runner, err := NewRunner(logger, table, classifier)
	if err != nil {
		return nil, err
	}
	return runner.Run(conf.Scenarios), nil
}
