package calculator

import (
	"fmt"

	"github.com/iwvelando/finlit/pkg/mathutil"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EmergencyFundResult is the recommended cash buffer.
type EmergencyFundResult struct {
	TargetMonths int     `json:"target_months" yaml:"targetMonths"`
	TargetAmount float64 `json:"target_amount" yaml:"targetAmount"`
	Explanation  string  `json:"explanation" yaml:"explanation"`
}

// EmergencyFund sizes the emergency fund as monthly expenses times the
// country's emergency months.
func (c *Calculator) EmergencyFund(monthlyExpenses float64) EmergencyFundResult {
	months := c.rules.EmergencyMonths
	country := cases.Title(language.English).String(c.rules.Name)

	return EmergencyFundResult{
		TargetMonths: months,
		TargetAmount: mathutil.Round(monthlyExpenses * float64(months)),
		Explanation:  fmt.Sprintf("In %s, aim for %d months of expenses saved", country, months),
	}
}
