// Package education provides the introductory lessons shown alongside the
// calculations, each with a country-specific tip.
package education

import (
	"github.com/iwvelando/finlit/pkg/constants"
	"github.com/iwvelando/finlit/pkg/rules"
)

// Lesson is one short financial literacy lesson.
type Lesson struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Duration    string   `json:"duration" yaml:"duration"`
	Topics      []string `json:"topics" yaml:"topics"`
	CountryTip  string   `json:"country_tip" yaml:"countryTip"`
}

// Educator returns lessons localized with a country's tips.
type Educator struct {
	rules rules.CountryRules
}

// NewEducator creates an educator for the given rules.
func NewEducator(r rules.CountryRules) *Educator {
	return &Educator{rules: r}
}

// Tip returns the country tip for a topic.
func (e *Educator) Tip(topic string) string {
	return e.rules.Tip(topic)
}

// Lessons returns the four introductory lessons in order.
func (e *Educator) Lessons() []Lesson {
	return []Lesson{
		{
			ID:          1,
			Title:       "Budgeting Basics",
			Description: "Learn to create and stick to a budget",
			Duration:    "15 minutes",
			Topics:      []string{"Income vs Expenses", "50/30/20 Rule", "Tracking Spending"},
			CountryTip:  e.Tip(constants.TopicBudgeting),
		},
		{
			ID:          2,
			Title:       "Emergency Fund",
			Description: "Why you need savings for emergencies",
			Duration:    "10 minutes",
			Topics:      []string{"How much to save", "Where to keep it", "When to use it"},
			CountryTip:  e.Tip(constants.TopicEmergency),
		},
		{
			ID:          3,
			Title:       "Understanding Debt",
			Description: "Good debt vs bad debt and how to manage it",
			Duration:    "20 minutes",
			Topics:      []string{"Interest Rates", "Payoff Strategies", "Debt Snowball Method"},
			CountryTip:  e.Tip(constants.TopicDebt),
		},
		{
			ID:          4,
			Title:       "Simple Investing",
			Description: "Start investing with small amounts",
			Duration:    "25 minutes",
			Topics:      []string{"Compound Interest", "Risk vs Return", "Diversification"},
			CountryTip:  e.Tip(constants.TopicInvesting),
		},
	}
}
