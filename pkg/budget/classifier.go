package budget

import (
	"fmt"
	"strings"
)

// Bucket is the spending class an expense category falls into.
type Bucket string

// Spending buckets.
const (
	BucketEssential     Bucket = "essential"
	BucketDiscretionary Bucket = "discretionary"
)

// ParseBucket converts a configured bucket name into a Bucket.
func ParseBucket(name string) (Bucket, error) {
	switch Bucket(strings.ToLower(strings.TrimSpace(name))) {
	case BucketEssential:
		return BucketEssential, nil
	case BucketDiscretionary:
		return BucketDiscretionary, nil
	default:
		return "", fmt.Errorf("unknown bucket %q, expected %s or %s", name, BucketEssential, BucketDiscretionary)
	}
}

// ClassificationRule assigns categories containing Keyword to Bucket.
type ClassificationRule struct {
	Keyword string
	Bucket  Bucket
}

// Classifier assigns expense categories to buckets by keyword. Rules are
// checked in order and the first match wins; unmatched categories get the
// fallback bucket.
type Classifier struct {
	rules    []ClassificationRule
	fallback Bucket
}

// DefaultClassificationRules returns the built-in keyword rules, essential
// keywords first.
func DefaultClassificationRules() []ClassificationRule {
	var out []ClassificationRule
	for _, keyword := range []string{"rent", "food", "utilities", "transport", "health"} {
		out = append(out, ClassificationRule{Keyword: keyword, Bucket: BucketEssential})
	}
	for _, keyword := range []string{"entertainment", "dining", "shopping", "travel"} {
		out = append(out, ClassificationRule{Keyword: keyword, Bucket: BucketDiscretionary})
	}
	return out
}

// NewClassifier copies rules into a new classifier. Keywords are lower-cased
// and empty keywords are dropped. An empty fallback means discretionary.
func NewClassifier(rules []ClassificationRule, fallback Bucket) *Classifier {
	if fallback == "" {
		fallback = BucketDiscretionary
	}

	normalized := make([]ClassificationRule, 0, len(rules))
	for _, rule := range rules {
		keyword := strings.ToLower(strings.TrimSpace(rule.Keyword))
		if keyword == "" {
			continue
		}
		normalized = append(normalized, ClassificationRule{Keyword: keyword, Bucket: rule.Bucket})
	}

	return &Classifier{rules: normalized, fallback: fallback}
}

// NewDefaultClassifier returns a classifier using the built-in rules.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultClassificationRules(), BucketDiscretionary)
}

// Classify returns the bucket for a category name.
func (c *Classifier) Classify(category string) Bucket {
	lower := strings.ToLower(category)
	for _, rule := range c.rules {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Bucket
		}
	}
	return c.fallback
}

// Rules returns a copy of the classifier's rules.
func (c *Classifier) Rules() []ClassificationRule {
	return append([]ClassificationRule(nil), c.rules...)
}
