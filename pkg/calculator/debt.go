package calculator

import (
	"fmt"

	"github.com/iwvelando/finlit/pkg/constants"
	"github.com/iwvelando/finlit/pkg/mathutil"
	"go.uber.org/zap"
)

// DebtPayoffResult holds the outcome of amortizing a debt with a fixed
// monthly payment.
type DebtPayoffResult struct {
	MonthsToPayoff   int     `json:"months_to_payoff" yaml:"monthsToPayoff"`
	YearsToPayoff    float64 `json:"years_to_payoff" yaml:"yearsToPayoff"`
	TotalInterest    float64 `json:"total_interest" yaml:"totalInterest"`
	TotalPaid        float64 `json:"total_paid" yaml:"totalPaid"`
	RemainingBalance float64 `json:"remaining_balance" yaml:"remainingBalance"`
	// Capped is set when the simulation stopped at MaxPayoffMonths with a
	// balance still outstanding.
	Capped bool `json:"capped" yaml:"capped"`
}

// interestPayment calculates the interest accrued in one month on the
// remaining balance for a decimal annual rate.
func interestPayment(remaining, annualInterestRate float64) float64 {
	return remaining * (annualInterestRate / constants.MonthsPerYear)
}

// DebtPayoff simulates month-by-month amortization of debtAmount until the
// balance reaches zero or MaxPayoffMonths is hit. TotalPaid is the debt plus
// accrued interest; overpayment in the final month is not deducted.
func (c *Calculator) DebtPayoff(debtAmount, monthlyPayment, annualInterestRate float64) (DebtPayoffResult, error) {
	if !(monthlyPayment > 0) {
		return DebtPayoffResult{}, fmt.Errorf("%w: monthly payment must be positive, got %.2f", ErrInvalidInput, monthlyPayment)
	}

	months := 0
	remaining := debtAmount
	totalInterest := 0.0

	for remaining > 0 && months < constants.MaxPayoffMonths {
		interest := interestPayment(remaining, annualInterestRate)
		principal := monthlyPayment - interest
		if !(principal > 0) {
			return DebtPayoffResult{}, fmt.Errorf("%w: payment %.2f does not exceed interest %.2f in month %d",
				ErrPaymentTooSmall, monthlyPayment, interest, months+1)
		}

		remaining -= principal
		totalInterest += interest
		months++
	}

	if !finite(debtAmount, totalInterest, remaining, debtAmount+totalInterest) {
		return DebtPayoffResult{}, fmt.Errorf("%w: debt of %.2f at rate %.4f is not a finite amount",
			ErrInvalidInput, debtAmount, annualInterestRate)
	}

	result := DebtPayoffResult{
		MonthsToPayoff: months,
		YearsToPayoff:  mathutil.RoundTo(float64(months)/constants.MonthsPerYear, 1),
		TotalInterest:  mathutil.Round(totalInterest),
		TotalPaid:      mathutil.Round(debtAmount + totalInterest),
	}
	if remaining > 0 {
		result.Capped = true
		result.RemainingBalance = mathutil.Round(remaining)
		c.logger.Debug(fmt.Sprintf("debt of %.2f not paid off after %d months, %.2f remaining",
			debtAmount, months, remaining),
			zap.String("op", "calculator.DebtPayoff"),
		)
	}

	return result, nil
}
