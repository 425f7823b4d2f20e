package rules

import (
	"fmt"
	"regexp"

	"github.com/vesta-budget/vesta/internal/model"
)

// ValidateRule checks a merchant rule before it is persisted.
func ValidateRule(rule *model.MerchantRule) error {
	if rule == nil {
		return fmt.Errorf("rule cannot be nil")
	}
	if rule.Pattern == "" {
		return fmt.Errorf("rule pattern cannot be empty")
	}
	if rule.Category == "" {
		return fmt.Errorf("rule category cannot be empty")
	}

	switch rule.Mode {
	case model.MatchContains, model.MatchStartsWith, model.MatchEndsWith:
	case model.MatchRegex:
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return fmt.Errorf("invalid regex pattern %q: %w", rule.Pattern, err)
		}
	default:
		return fmt.Errorf("unknown match mode %q", rule.Mode)
	}

	return nil
}
