package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/iwvelando/finlit/pkg/constants"
	"github.com/iwvelando/finlit/pkg/mathutil"
	"github.com/iwvelando/finlit/pkg/rules"
	"go.uber.org/zap"
)

func newTestCalculator(t *testing.T, country string) *Calculator {
	t.Helper()
	table, err := rules.NewTable(nil)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return NewCalculator(zap.NewNop(), table.Lookup(country))
}

func TestNewCalculatorNilLogger(t *testing.T) {
	calc := NewCalculator(nil, rules.Defaults()["global"])
	if calc.logger == nil {
		t.Fatal("expected nil logger to be replaced with a no-op logger")
	}
	if calc.Rules().Name != "global" {
		t.Errorf("Rules().Name = %s, expected global", calc.Rules().Name)
	}
}

func TestEmergencyFund(t *testing.T) {
	tests := []struct {
		name            string
		country         string
		monthlyExpenses float64
		expectedMonths  int
		expectedAmount  float64
		explanation     string
	}{
		{"Pakistani family", "pakistan", 60000, 6, 360000.0, "In Pakistan, aim for 6 months of expenses saved"},
		{"Italian student", "italy", 700, 3, 2100.0, "In Italy, aim for 3 months of expenses saved"},
		{"Unknown country uses global", "germany", 1500.55, 3, 4501.65, "In Global, aim for 3 months of expenses saved"},
		{"Zero expenses", "pakistan", 0, 6, 0, "In Pakistan, aim for 6 months of expenses saved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestCalculator(t, tt.country).EmergencyFund(tt.monthlyExpenses)
			if result.TargetMonths != tt.expectedMonths {
				t.Errorf("TargetMonths = %d, expected %d", result.TargetMonths, tt.expectedMonths)
			}
			if math.Abs(result.TargetAmount-tt.expectedAmount) > 0.001 {
				t.Errorf("TargetAmount = %.2f, expected %.2f", result.TargetAmount, tt.expectedAmount)
			}
			if result.Explanation != tt.explanation {
				t.Errorf("Explanation = %q, expected %q", result.Explanation, tt.explanation)
			}
		})
	}
}

func TestEmergencyFundMatchesProduct(t *testing.T) {
	calc := newTestCalculator(t, "pakistan")
	for _, expenses := range []float64{0, 1, 99.99, 1234.5, 60000, 1e7} {
		result := calc.EmergencyFund(expenses)
		expected := mathutil.Round(expenses * float64(calc.Rules().EmergencyMonths))
		if result.TargetAmount != expected {
			t.Errorf("EmergencyFund(%v).TargetAmount = %v, expected %v", expenses, result.TargetAmount, expected)
		}
	}
}

func TestSavingsGoal(t *testing.T) {
	tests := []struct {
		name             string
		country          string
		target           float64
		monthlySaving    float64
		current          float64
		expectedMonths   int
		expectedYears    float64
		expectedAdjusted int
		expectedTotal    float64
	}{
		{
			name:             "Pakistani house down payment",
			country:          "pakistan",
			target:           2000000,
			monthlySaving:    20000,
			current:          150000,
			expectedMonths:   93,
			expectedYears:    7.7,
			expectedAdjusted: 111,
			expectedTotal:    2000000,
		},
		{
			name:             "Italian master's degree",
			country:          "italy",
			target:           15000,
			monthlySaving:    200,
			current:          3000,
			expectedMonths:   60,
			expectedYears:    5.0,
			expectedAdjusted: 62,
			expectedTotal:    15000,
		},
		{
			name:             "Goal already met is not clamped",
			country:          "global",
			target:           1000,
			monthlySaving:    100,
			current:          1700,
			expectedMonths:   -7,
			expectedYears:    -0.6,
			expectedAdjusted: -7,
			expectedTotal:    1000,
		},
		{
			name:             "Goal exactly met",
			country:          "global",
			target:           500,
			monthlySaving:    50,
			current:          500,
			expectedMonths:   0,
			expectedYears:    0,
			expectedAdjusted: 0,
			expectedTotal:    500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestCalculator(t, tt.country).SavingsGoal(tt.target, tt.monthlySaving, tt.current)
			if err != nil {
				t.Fatalf("SavingsGoal() error = %v", err)
			}
			if result.MonthsNeeded != tt.expectedMonths {
				t.Errorf("MonthsNeeded = %d, expected %d", result.MonthsNeeded, tt.expectedMonths)
			}
			if math.Abs(result.YearsNeeded-tt.expectedYears) > 1e-9 {
				t.Errorf("YearsNeeded = %v, expected %v", result.YearsNeeded, tt.expectedYears)
			}
			if result.InflationAdjustedMonths != tt.expectedAdjusted {
				t.Errorf("InflationAdjustedMonths = %d, expected %d", result.InflationAdjustedMonths, tt.expectedAdjusted)
			}
			if math.Abs(result.TotalSaved-tt.expectedTotal) > 0.001 {
				t.Errorf("TotalSaved = %.2f, expected %.2f", result.TotalSaved, tt.expectedTotal)
			}
			if result.MonthlySaving != tt.monthlySaving {
				t.Errorf("MonthlySaving = %v, expected %v", result.MonthlySaving, tt.monthlySaving)
			}
		})
	}
}

func TestSavingsGoalInvalidInput(t *testing.T) {
	calc := newTestCalculator(t, "pakistan")
	for _, saving := range []float64{0, -1, -20000, math.Inf(-1), math.NaN()} {
		_, err := calc.SavingsGoal(1000, saving, 0)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("SavingsGoal(monthlySaving=%v) error = %v, expected ErrInvalidInput", saving, err)
		}
	}
}

func TestSavingsGoalUnrepresentable(t *testing.T) {
	calc := newTestCalculator(t, "global")

	tests := []struct {
		name    string
		target  float64
		saving  float64
		current float64
	}{
		{"Overflowing months", 1e308, 1e-308, 0},
		{"Infinite target", math.Inf(1), 100, 0},
		{"NaN target", math.NaN(), 100, 0},
		{"Months beyond int range", 1e15, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.SavingsGoal(tt.target, tt.saving, tt.current)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("SavingsGoal() error = %v, expected ErrInvalidInput", err)
			}
		})
	}
}

func TestDebtPayoff(t *testing.T) {
	tests := []struct {
		name           string
		debt           float64
		payment        float64
		rate           float64
		expectedMonths int
		expectedYears  float64
		expectCapped   bool
	}{
		{"Interest free", 1000, 100, 0, 10, 0.8, false},
		{"Twelve percent", 1200, 100, 0.12, 13, 1.1, false},
		{"No debt", 0, 100, 0.12, 0, 0, false},
		{"Payment barely covers interest", 100000, 1000.01, 0.12, 600, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestCalculator(t, "global").DebtPayoff(tt.debt, tt.payment, tt.rate)
			if err != nil {
				t.Fatalf("DebtPayoff() error = %v", err)
			}
			if result.MonthsToPayoff != tt.expectedMonths {
				t.Errorf("MonthsToPayoff = %d, expected %d", result.MonthsToPayoff, tt.expectedMonths)
			}
			if math.Abs(result.YearsToPayoff-tt.expectedYears) > 1e-9 {
				t.Errorf("YearsToPayoff = %v, expected %v", result.YearsToPayoff, tt.expectedYears)
			}
			if result.Capped != tt.expectCapped {
				t.Errorf("Capped = %v, expected %v", result.Capped, tt.expectCapped)
			}
			if tt.expectCapped && result.RemainingBalance <= 0 {
				t.Errorf("expected a remaining balance when capped, got %.2f", result.RemainingBalance)
			}
			if !tt.expectCapped && result.RemainingBalance != 0 {
				t.Errorf("expected no remaining balance, got %.2f", result.RemainingBalance)
			}
			if math.Abs(result.TotalPaid-mathutil.Round(tt.debt+result.TotalInterest)) > 0.011 {
				t.Errorf("TotalPaid = %.2f, expected debt plus interest %.2f", result.TotalPaid, tt.debt+result.TotalInterest)
			}
		})
	}
}

func TestDebtPayoffInterestTotals(t *testing.T) {
	calc := newTestCalculator(t, "global")

	result, err := calc.DebtPayoff(1000, 100, 0)
	if err != nil {
		t.Fatalf("DebtPayoff() error = %v", err)
	}
	if result.TotalInterest != 0 || result.TotalPaid != 1000 {
		t.Errorf("expected no interest and 1000 paid, got interest %.2f paid %.2f", result.TotalInterest, result.TotalPaid)
	}

	result, err = calc.DebtPayoff(1200, 100, 0.12)
	if err != nil {
		t.Fatalf("DebtPayoff() error = %v", err)
	}
	// First month alone accrues 12.00; the full schedule stays well under one payment.
	if result.TotalInterest <= 12 || result.TotalInterest >= 100 {
		t.Errorf("TotalInterest = %.2f, expected between 12 and 100", result.TotalInterest)
	}
}

func TestDebtPayoffErrors(t *testing.T) {
	calc := newTestCalculator(t, "global")

	tests := []struct {
		name    string
		debt    float64
		payment float64
		rate    float64
		want    error
	}{
		{"Zero payment", 1000, 0, 0.12, ErrInvalidInput},
		{"Negative payment", 1000, -50, 0.12, ErrInvalidInput},
		{"Payment below first interest", 100000, 500, 0.12, ErrPaymentTooSmall},
		{"Payment equal to first interest", 100000, 1000, 0.12, ErrPaymentTooSmall},
		{"NaN payment", 1000, math.NaN(), 0.12, ErrInvalidInput},
		{"NaN rate", 1000, 100, math.NaN(), ErrPaymentTooSmall},
		{"NaN debt", math.NaN(), 100, 0.12, ErrInvalidInput},
		{"Infinite debt", math.Inf(1), 100, 0, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.DebtPayoff(tt.debt, tt.payment, tt.rate)
			if !errors.Is(err, tt.want) {
				t.Errorf("DebtPayoff() error = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestDebtPayoffTerminates(t *testing.T) {
	calc := newTestCalculator(t, "global")
	for _, debt := range []float64{1, 500, 25000, 1e6, 1e9} {
		for _, payment := range []float64{10, 1000, 12000000} {
			result, err := calc.DebtPayoff(debt, payment, 0.12)
			if err != nil {
				if !errors.Is(err, ErrPaymentTooSmall) {
					t.Errorf("DebtPayoff(%v, %v) unexpected error %v", debt, payment, err)
				}
				continue
			}
			if result.MonthsToPayoff > 600 {
				t.Errorf("DebtPayoff(%v, %v) ran %d months", debt, payment, result.MonthsToPayoff)
			}
		}
	}
}

func TestCompoundInterest(t *testing.T) {
	calc := newTestCalculator(t, "italy")

	result, err := calc.CompoundInterest(1000, 100, 10, 0.07)
	if err != nil {
		t.Fatalf("CompoundInterest() error = %v", err)
	}

	r := 0.07 / 12
	growth := math.Pow(1+r, 120)
	expected := 1000*growth + 100*(growth-1)/r
	if math.Abs(result.FutureValue-expected) > 0.011 {
		t.Errorf("FutureValue = %.2f, expected %.2f", result.FutureValue, expected)
	}
	if result.TotalContributions != 13000 {
		t.Errorf("TotalContributions = %.2f, expected 13000", result.TotalContributions)
	}
	if math.Abs(result.InterestEarned-(expected-13000)) > 0.011 {
		t.Errorf("InterestEarned = %.2f, expected %.2f", result.InterestEarned, expected-13000)
	}
	if result.GrowthMultiple != 1.49 {
		t.Errorf("GrowthMultiple = %.2f, expected 1.49", result.GrowthMultiple)
	}
}

func TestCompoundInterestZeroYears(t *testing.T) {
	result, err := newTestCalculator(t, "global").CompoundInterest(2500, 100, 0, 0.08)
	if err != nil {
		t.Fatalf("CompoundInterest() error = %v", err)
	}
	if result.FutureValue != 2500 || result.InterestEarned != 0 || result.GrowthMultiple != 1 {
		t.Errorf("unexpected result for zero years: %+v", result)
	}
}

func TestCompoundInterestNoContributions(t *testing.T) {
	calc := newTestCalculator(t, "global")
	for _, years := range []int{0, 1, 10, 40} {
		result, err := calc.CompoundInterest(0, 0, years, 0.08)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("CompoundInterest(0, 0, %d) error = %v, expected ErrDivisionByZero", years, err)
		}
		if result.FutureValue != 0 {
			t.Errorf("CompoundInterest(0, 0, %d).FutureValue = %v, expected 0", years, result.FutureValue)
		}
		if result.GrowthMultiple != 0 {
			t.Errorf("CompoundInterest(0, 0, %d).GrowthMultiple = %v, expected 0", years, result.GrowthMultiple)
		}
	}
}

func TestCompoundInterestNegativeYears(t *testing.T) {
	_, err := newTestCalculator(t, "global").CompoundInterest(1000, 100, -1, 0.08)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCompoundInterestTooManyYears(t *testing.T) {
	calc := newTestCalculator(t, "global")
	for _, years := range []int{constants.MaxInvestmentYears + 1, 10000, 768614336404564651} {
		if _, err := calc.CompoundInterest(1000, 100, years, 0.08); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("CompoundInterest(years=%d) error = %v, expected ErrInvalidInput", years, err)
		}
	}

	if _, err := calc.CompoundInterest(1000, 100, constants.MaxInvestmentYears, 0.08); err != nil {
		t.Errorf("CompoundInterest(years=%d) unexpected error = %v", constants.MaxInvestmentYears, err)
	}
}

func TestCompoundInterestNotFinite(t *testing.T) {
	calc := newTestCalculator(t, "global")

	tests := []struct {
		name         string
		principal    float64
		contribution float64
		annualReturn float64
	}{
		{"Overflowing growth", 1e308, 0, 0.08},
		{"NaN principal", math.NaN(), 100, 0.08},
		{"Infinite return", 1000, 100, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.CompoundInterest(tt.principal, tt.contribution, 10, tt.annualReturn)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("CompoundInterest() error = %v, expected ErrInvalidInput", err)
			}
		})
	}
}

func TestCalculatorIsIdempotent(t *testing.T) {
	calc := newTestCalculator(t, "pakistan")

	if calc.EmergencyFund(60000) != calc.EmergencyFund(60000) {
		t.Error("EmergencyFund differs between identical calls")
	}

	first, _ := calc.SavingsGoal(2000000, 20000, 150000)
	second, _ := calc.SavingsGoal(2000000, 20000, 150000)
	if first != second {
		t.Errorf("SavingsGoal differs between identical calls: %+v vs %+v", first, second)
	}

	debtA, _ := calc.DebtPayoff(250000, 12000, 0.24)
	debtB, _ := calc.DebtPayoff(250000, 12000, 0.24)
	if debtA != debtB {
		t.Errorf("DebtPayoff differs between identical calls: %+v vs %+v", debtA, debtB)
	}

	growthA, _ := calc.CompoundInterest(1000, 100, 10, 0.07)
	growthB, _ := calc.CompoundInterest(1000, 100, 10, 0.07)
	if growthA != growthB {
		t.Errorf("CompoundInterest differs between identical calls: %+v vs %+v", growthA, growthB)
	}
}
