// Package calculator provides the personal finance formulas: emergency fund
// sizing, savings goal timelines, debt payoff amortization and compound
// interest growth.
package calculator

import (
	"errors"
	"math"

	"github.com/iwvelando/finlit/pkg/rules"
	"go.uber.org/zap"
)

var (
	// ErrInvalidInput is returned when a required positive quantity is not positive.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPaymentTooSmall is returned when a debt payment does not cover the
	// interest accruing on the remaining balance.
	ErrPaymentTooSmall = errors.New("payment too small - not covering interest")

	// ErrDivisionByZero is returned when total contributions are zero so the
	// growth multiple is undefined.
	ErrDivisionByZero = errors.New("division by zero")
)

// Calculator applies the finance formulas using one country's rules. It holds
// no mutable state and is safe for concurrent use.
type Calculator struct {
	logger *zap.Logger
	rules  rules.CountryRules
}

// finite reports whether every value is neither infinite nor NaN.
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// NewCalculator creates a calculator bound to the given rules.
func NewCalculator(logger *zap.Logger, r rules.CountryRules) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger, rules: r}
}

// Rules returns the rules the calculator was built with.
func (c *Calculator) Rules() rules.CountryRules {
	return c.rules
}
