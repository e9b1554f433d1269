package calculator

import (
	"fmt"
	"math"

	"github.com/iwvelando/finlit/pkg/constants"
	"github.com/iwvelando/finlit/pkg/mathutil"
	"go.uber.org/zap"
)

// SavingsGoalResult describes how long a savings goal takes to reach.
type SavingsGoalResult struct {
	MonthsNeeded            int     `json:"months_needed" yaml:"monthsNeeded"`
	YearsNeeded             float64 `json:"years_needed" yaml:"yearsNeeded"`
	InflationAdjustedMonths int     `json:"adjusted_months" yaml:"adjustedMonths"`
	MonthlySaving           float64 `json:"monthly_saving" yaml:"monthlySaving"`
	TotalSaved              float64 `json:"total_saved" yaml:"totalSaved"`
}

// SavingsGoal projects the time needed to grow currentSavings to
// targetAmount by saving monthlySaving every month. A goal that is already
// met yields zero or negative months.
func (c *Calculator) SavingsGoal(targetAmount, monthlySaving, currentSavings float64) (SavingsGoalResult, error) {
	if !(monthlySaving > 0) {
		return SavingsGoalResult{}, fmt.Errorf("%w: monthly saving must be positive, got %.2f", ErrInvalidInput, monthlySaving)
	}

	remaining := targetAmount - currentSavings
	monthsRaw := remaining / monthlySaving
	adjustedRaw := monthsRaw * (1 + c.rules.InflationRate)
	if !finite(monthsRaw, adjustedRaw) || math.Abs(adjustedRaw) > math.MaxInt32 {
		return SavingsGoalResult{}, fmt.Errorf("%w: goal of %.2f at %.2f per month does not give a usable number of months",
			ErrInvalidInput, targetAmount, monthlySaving)
	}
	if monthsRaw <= 0 {
		c.logger.Debug(fmt.Sprintf("savings goal of %.2f already met with %.2f saved", targetAmount, currentSavings),
			zap.String("op", "calculator.SavingsGoal"),
		)
	}

	return SavingsGoalResult{
		MonthsNeeded:            int(math.Ceil(monthsRaw)),
		YearsNeeded:             mathutil.RoundTo(monthsRaw/constants.MonthsPerYear, 1),
		InflationAdjustedMonths: int(math.Ceil(adjustedRaw)),
		MonthlySaving:           monthlySaving,
		TotalSaved:              mathutil.Round(currentSavings + monthlySaving*monthsRaw),
	}, nil
}
