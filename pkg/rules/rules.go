// Package rules holds the country rule table that parameterizes the
// calculator, the budget planner and the educator.
package rules

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/iwvelando/finlit/pkg/constants"
)

// CountryRules holds the financial parameters for one country.
type CountryRules struct {
	Name              string            `json:"name" yaml:"name"`
	EmergencyMonths   int               `json:"emergency_months" yaml:"emergencyMonths"`
	InflationRate     float64           `json:"inflation_rate" yaml:"inflationRate"`
	NeedsPct          int               `json:"needs_pct" yaml:"needsPct"`
	WantsPct          int               `json:"wants_pct" yaml:"wantsPct"`
	SavingsPct        int               `json:"savings_pct" yaml:"savingsPct"`
	CommonInvestments []string          `json:"common_investments,omitempty" yaml:"commonInvestments,omitempty"`
	FamilySupport     bool              `json:"family_support" yaml:"familySupport"`
	Tips              map[string]string `json:"tips,omitempty" yaml:"tips,omitempty"`
}

// Validate checks the invariants of a rule entry.
func (r CountryRules) Validate() error {
	if r.EmergencyMonths <= 0 {
		return fmt.Errorf("emergency months must be positive, got %d", r.EmergencyMonths)
	}
	if r.InflationRate < 0 || r.InflationRate >= 1 {
		return fmt.Errorf("inflation rate must be in [0, 1), got %v", r.InflationRate)
	}
	if r.NeedsPct < 0 || r.WantsPct < 0 || r.SavingsPct < 0 {
		return fmt.Errorf("budget percentages must not be negative, got %d/%d/%d",
			r.NeedsPct, r.WantsPct, r.SavingsPct)
	}
	if sum := r.NeedsPct + r.WantsPct + r.SavingsPct; sum != 100 {
		return fmt.Errorf("budget percentages must sum to 100, got %d", sum)
	}
	return nil
}

// clone returns a copy that shares no map or slice with r.
func (r CountryRules) clone() CountryRules {
	r.Tips = maps.Clone(r.Tips)
	r.CommonInvestments = slices.Clone(r.CommonInvestments)
	return r
}

// Tip returns the tip for a topic, or the default tip when none is defined.
func (r CountryRules) Tip(topic string) string {
	if tip, ok := r.Tips[strings.ToLower(topic)]; ok && tip != "" {
		return tip
	}
	return constants.DefaultTip
}

// BudgetRule renders the split as "needs/wants/savings", e.g. "50/30/20".
func (r CountryRules) BudgetRule() string {
	return fmt.Sprintf("%d/%d/%d", r.NeedsPct, r.WantsPct, r.SavingsPct)
}

// Table maps lower-cased country keys to their rules. A Table is not
// modified after NewTable returns.
type Table struct {
	entries map[string]CountryRules
}

// Defaults returns the built-in pakistan, italy and global entries.
func Defaults() map[string]CountryRules {
	return map[string]CountryRules{
		constants.CountryPakistan: {
			Name:              constants.CountryPakistan,
			EmergencyMonths:   6,
			InflationRate:     0.20,
			NeedsPct:          50,
			WantsPct:          30,
			SavingsPct:        20,
			CommonInvestments: []string{"Gold", "Property", "National Savings"},
			FamilySupport:     true,
			Tips: map[string]string{
				constants.TopicBudgeting: "Include family obligations in your budget",
				constants.TopicEmergency: "Aim for 6 months due to job market volatility",
				constants.TopicDebt:      "Avoid high-interest informal loans",
				constants.TopicInvesting: "Start with National Savings Schemes for safety",
			},
		},
		constants.CountryItaly: {
			Name:              constants.CountryItaly,
			EmergencyMonths:   3,
			InflationRate:     0.03,
			NeedsPct:          40,
			WantsPct:          30,
			SavingsPct:        30,
			CommonInvestments: []string{"BTP Bonds", "ETFs", "Pension Funds"},
			Tips: map[string]string{
				constants.TopicBudgeting: "Factor in healthcare costs differently than in Pakistan",
				constants.TopicEmergency: "3 months is sufficient due to social safety nets",
				constants.TopicDebt:      "Student loans have special conditions in Italy",
				constants.TopicInvesting: "Consider BTP bonds for government-backed returns",
			},
		},
		constants.CountryGlobal: {
			Name:              constants.CountryGlobal,
			EmergencyMonths:   3,
			InflationRate:     0.05,
			NeedsPct:          50,
			WantsPct:          30,
			SavingsPct:        20,
			CommonInvestments: []string{"Savings Account", "Index Funds"},
		},
	}
}

// NewTable builds a table from the built-in entries plus extra, which may add
// countries or replace built-in ones. Every entry is validated.
func NewTable(extra map[string]CountryRules) (*Table, error) {
	entries := Defaults()
	for key, entry := range extra {
		normalized := normalizeKey(key)
		if normalized == "" {
			return nil, fmt.Errorf("country key must not be empty")
		}
		if entry.Name == "" {
			entry.Name = normalized
		}
		entries[normalized] = entry.clone()
	}

	for key, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("invalid rules for country %s: %w", key, err)
		}
	}

	return &Table{entries: entries}, nil
}

// Lookup returns the rules for a country key, ignoring case. Unknown keys
// resolve to the global entry.
func (t *Table) Lookup(country string) CountryRules {
	if entry, ok := t.entries[normalizeKey(country)]; ok {
		return entry.clone()
	}
	return t.entries[constants.CountryGlobal].clone()
}

// Has reports whether the table holds an entry for the key.
func (t *Table) Has(country string) bool {
	_, ok := t.entries[normalizeKey(country)]
	return ok
}

// Keys returns the sorted country keys.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for key := range t.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
