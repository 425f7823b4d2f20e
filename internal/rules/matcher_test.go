package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesta-budget/vesta/internal/model"
)

func TestMatcher_Match(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		description string
		wantRuleID  int
		rules       []Rule
		wantMatch   bool
	}{
		{
			name: "contains match case insensitive",
			rules: []Rule{
				{ID: 1, Pattern: "gorzdrav", Mode: model.MatchContains, Category: "Health", Priority: 1, IsActive: true},
			},
			description: "RU/Voronezh/GORZDRAV_5620",
			wantMatch:   true,
			wantRuleID:  1,
		},
		{
			name: "starts with",
			rules: []Rule{
				{ID: 1, Pattern: "оплата", Mode: model.MatchStartsWith, Category: "Other", Priority: 1, IsActive: true},
			},
			description: "Оплата услуг связи",
			wantMatch:   true,
			wantRuleID:  1,
		},
		{
			name: "ends with",
			rules: []Rule{
				{ID: 1, Pattern: "moscow rus", Mode: model.MatchEndsWith, Category: "Other", Priority: 1, IsActive: true},
			},
			description: "PYATEROCHKA 1234 MOSCOW RUS",
			wantMatch:   true,
			wantRuleID:  1,
		},
		{
			name: "regex match",
			rules: []Rule{
				{ID: 1, Pattern: `azs[_ ]?\d+`, Mode: model.MatchRegex, Category: "Fuel", Priority: 1, IsActive: true},
			},
			description: "RU/Tver/AZS_17",
			wantMatch:   true,
			wantRuleID:  1,
		},
		{
			name: "higher priority wins",
			rules: []Rule{
				{ID: 1, Pattern: "magnit", Mode: model.MatchContains, Category: "Food", Priority: 1, IsActive: true},
				{ID: 2, Pattern: "magnit kosmetik", Mode: model.MatchContains, Category: "Beauty", Priority: 10, IsActive: true},
			},
			description: "MAGNIT KOSMETIK 42",
			wantMatch:   true,
			wantRuleID:  2,
		},
		{
			name: "inactive rule skipped",
			rules: []Rule{
				{ID: 1, Pattern: "magnit", Mode: model.MatchContains, Category: "Food", Priority: 1, IsActive: false},
			},
			description: "MAGNIT 42",
			wantMatch:   false,
		},
		{
			name: "invalid regex never matches",
			rules: []Rule{
				{ID: 1, Pattern: "([", Mode: model.MatchRegex, Category: "Other", Priority: 1, IsActive: true},
			},
			description: "([",
			wantMatch:   false,
		},
		{
			name:        "no rules",
			rules:       nil,
			description: "anything",
			wantMatch:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.rules)
			got, matched, err := m.Match(ctx, tt.description)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMatch, matched)
			if tt.wantMatch {
				assert.Equal(t, tt.wantRuleID, got.RuleID)
			}
		})
	}
}

func TestValidateRule(t *testing.T) {
	valid := &model.MerchantRule{Pattern: "magnit", Mode: model.MatchContains, Category: "Food"}
	assert.NoError(t, ValidateRule(valid))

	assert.Error(t, ValidateRule(nil))
	assert.Error(t, ValidateRule(&model.MerchantRule{Mode: model.MatchContains, Category: "Food"}))
	assert.Error(t, ValidateRule(&model.MerchantRule{Pattern: "x", Mode: model.MatchContains}))
	assert.Error(t, ValidateRule(&model.MerchantRule{Pattern: "([", Mode: model.MatchRegex, Category: "Food"}))
	assert.Error(t, ValidateRule(&model.MerchantRule{Pattern: "x", Mode: "fuzzy", Category: "Food"}))
}
