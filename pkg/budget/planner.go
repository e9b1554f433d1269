// Package budget splits income across needs, wants and savings and analyzes
// actual spending against it.
package budget

import (
	"fmt"
	"sort"

	"github.com/iwvelando/finlit/pkg/mathutil"
	"github.com/iwvelando/finlit/pkg/rules"
	"go.uber.org/zap"
)

// Percentages is the split applied by CreateBudget.
type Percentages struct {
	Needs   int `json:"needs_percentage" yaml:"needs"`
	Wants   int `json:"wants_percentage" yaml:"wants"`
	Savings int `json:"savings_percentage" yaml:"savings"`
}

// Split is the recommended allocation of one month's income.
type Split struct {
	MonthlyIncome float64     `json:"monthly_income" yaml:"monthlyIncome"`
	Needs         float64     `json:"needs" yaml:"needs"`
	Wants         float64     `json:"wants" yaml:"wants"`
	Savings       float64     `json:"savings" yaml:"savings"`
	Percentages   Percentages `json:"percentages" yaml:"percentages"`
	BudgetRule    string      `json:"budget_rule" yaml:"budgetRule"`
}

// ExpenseAnalysis summarizes actual spending.
type ExpenseAnalysis struct {
	Income             float64 `json:"income" yaml:"income"`
	TotalExpenses      float64 `json:"total_expenses" yaml:"totalExpenses"`
	Savings            float64 `json:"savings" yaml:"savings"`
	SavingsRate        float64 `json:"savings_rate" yaml:"savingsRate"`
	EssentialTotal     float64 `json:"essential_spending" yaml:"essentialSpending"`
	DiscretionaryTotal float64 `json:"discretionary_spending" yaml:"discretionarySpending"`
	EssentialPct       float64 `json:"essential_pct" yaml:"essentialPct"`
	DiscretionaryPct   float64 `json:"discretionary_pct" yaml:"discretionaryPct"`
}

// Planner applies a country's budget split and classifies expenses.
type Planner struct {
	logger     *zap.Logger
	rules      rules.CountryRules
	classifier *Classifier
}

// NewPlanner creates a planner. A nil classifier uses the built-in rules.
func NewPlanner(logger *zap.Logger, r rules.CountryRules, classifier *Classifier) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if classifier == nil {
		classifier = NewDefaultClassifier()
	}
	return &Planner{logger: logger, rules: r, classifier: classifier}
}

// CreateBudget splits monthlyIncome by the country percentages. Each amount
// is rounded on its own, so the three may not add up to the income exactly.
func (p *Planner) CreateBudget(monthlyIncome float64) Split {
	return Split{
		MonthlyIncome: monthlyIncome,
		Needs:         mathutil.Round(mathutil.ApplyPercentage(monthlyIncome, float64(p.rules.NeedsPct))),
		Wants:         mathutil.Round(mathutil.ApplyPercentage(monthlyIncome, float64(p.rules.WantsPct))),
		Savings:       mathutil.Round(mathutil.ApplyPercentage(monthlyIncome, float64(p.rules.SavingsPct))),
		Percentages: Percentages{
			Needs:   p.rules.NeedsPct,
			Wants:   p.rules.WantsPct,
			Savings: p.rules.SavingsPct,
		},
		BudgetRule: p.rules.BudgetRule(),
	}
}

// AnalyzeExpenses totals expenses by category and splits them into essential
// and discretionary spending.
func (p *Planner) AnalyzeExpenses(income float64, expenses map[string]float64) ExpenseAnalysis {
	categories := make([]string, 0, len(expenses))
	for category := range expenses {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var total, essential, discretionary float64
	for _, category := range categories {
		amount := expenses[category]
		total += amount

		bucket := p.classifier.Classify(category)
		p.logger.Debug(fmt.Sprintf("classified expense %s as %s", category, bucket),
			zap.String("op", "budget.AnalyzeExpenses"),
		)
		if bucket == BucketEssential {
			essential += amount
		} else {
			discretionary += amount
		}
	}

	savings := income - total
	savingsRate := 0.0
	if income > 0 {
		savingsRate = mathutil.CalculatePercentage(savings, income)
	}
	essentialPct, discretionaryPct := 0.0, 0.0
	if total > 0 {
		essentialPct = mathutil.CalculatePercentage(essential, total)
		discretionaryPct = mathutil.CalculatePercentage(discretionary, total)
	}

	return ExpenseAnalysis{
		Income:             income,
		TotalExpenses:      mathutil.Round(total),
		Savings:            mathutil.Round(savings),
		SavingsRate:        mathutil.RoundTo(savingsRate, 1),
		EssentialTotal:     mathutil.Round(essential),
		DiscretionaryTotal: mathutil.Round(discretionary),
		EssentialPct:       mathutil.RoundTo(essentialPct, 1),
		DiscretionaryPct:   mathutil.RoundTo(discretionaryPct, 1),
	}
}
