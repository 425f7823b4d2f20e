// Package rules evaluates user-editable merchant rules against transaction
// descriptions. Rules are a second opinion on top of the built-in classifier
// and override it when they match.
package rules

import (
	"context"

	"github.com/vesta-budget/vesta/internal/model"
)

// Matcher evaluates descriptions against the configured merchant rules.
type Matcher interface {
	// Match returns the classification of the highest-priority active rule
	// matching the description, or matched=false when no rule applies.
	Match(ctx context.Context, description string) (Classification, bool, error)
}

// Classification is the category/subcategory pair produced by a rule.
type Classification struct {
	Category    string
	Subcategory string
	RuleID      int
}

// Rule is an alias to the model.MerchantRule type for convenience.
type Rule = model.MerchantRule
