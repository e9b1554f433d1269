package calculator

import (
	"fmt"

	"github.com/iwvelando/finlit/pkg/constants"
	"github.com/iwvelando/finlit/pkg/mathutil"
)

// CompoundInterestResult holds the projected growth of an investment.
type CompoundInterestResult struct {
	FutureValue        float64 `json:"future_value" yaml:"futureValue"`
	TotalContributions float64 `json:"total_contributions" yaml:"totalContributions"`
	InterestEarned     float64 `json:"interest_earned" yaml:"interestEarned"`
	GrowthMultiple     float64 `json:"growth_multiple" yaml:"growthMultiple"`
}

// CompoundInterest compounds principal monthly for years, adding
// monthlyContribution after each month's growth.
//
// When nothing is contributed the growth multiple is undefined; the result is
// still returned, with GrowthMultiple set to zero, alongside ErrDivisionByZero.
func (c *Calculator) CompoundInterest(principal, monthlyContribution float64, years int, annualReturn float64) (CompoundInterestResult, error) {
	if years < 0 || years > constants.MaxInvestmentYears {
		return CompoundInterestResult{}, fmt.Errorf("%w: years must be between 0 and %d, got %d",
			ErrInvalidInput, constants.MaxInvestmentYears, years)
	}

	monthlyRate := annualReturn / constants.MonthsPerYear
	months := years * constants.MonthsPerYear

	value := principal
	for month := 0; month < months; month++ {
		value = value*(1+monthlyRate) + monthlyContribution
	}

	totalContributions := principal + monthlyContribution*float64(months)
	if !finite(value, totalContributions, value-totalContributions) {
		return CompoundInterestResult{}, fmt.Errorf("%w: projection of %.2f over %d years is not a finite amount",
			ErrInvalidInput, principal, years)
	}

	result := CompoundInterestResult{
		FutureValue:        mathutil.Round(value),
		TotalContributions: mathutil.Round(totalContributions),
		InterestEarned:     mathutil.Round(value - totalContributions),
	}

	if totalContributions == 0 {
		return result, fmt.Errorf("%w: growth multiple needs non-zero contributions", ErrDivisionByZero)
	}
	multiple := value / totalContributions
	if !finite(multiple) {
		return CompoundInterestResult{}, fmt.Errorf("%w: growth multiple of %.2f over %.2f is not finite",
			ErrInvalidInput, value, totalContributions)
	}
	result.GrowthMultiple = mathutil.Round(multiple)

	return result, nil
}
