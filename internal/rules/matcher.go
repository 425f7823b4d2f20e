package rules

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/vesta-budget/vesta/internal/model"
)

// MatcherImpl implements Matcher over a fixed rule snapshot.
type MatcherImpl struct {
	compiledRegex map[int]*regexp.Regexp
	rules         []Rule
}

// NewMatcher creates a matcher for the given rules. Rules are evaluated in
// descending priority order; regex patterns are pre-compiled and rules whose
// pattern fails to compile never match.
func NewMatcher(ruleSet []Rule) *MatcherImpl {
	m := &MatcherImpl{
		rules:         make([]Rule, len(ruleSet)),
		compiledRegex: make(map[int]*regexp.Regexp),
	}
	copy(m.rules, ruleSet)

	sort.SliceStable(m.rules, func(i, j int) bool {
		return m.rules[i].Priority > m.rules[j].Priority
	})

	for _, rule := range m.rules {
		if rule.Mode == model.MatchRegex && rule.Pattern != "" {
			if re, err := regexp.Compile("(?i)" + rule.Pattern); err == nil {
				m.compiledRegex[rule.ID] = re
			}
		}
	}

	return m
}

// Match returns the first matching active rule's classification.
func (m *MatcherImpl) Match(_ context.Context, description string) (Classification, bool, error) {
	descLower := strings.ToLower(description)

	for _, rule := range m.rules {
		if !rule.IsActive {
			continue
		}
		if m.matches(descLower, description, rule) {
			return Classification{
				Category:    rule.Category,
				Subcategory: rule.Subcategory,
				RuleID:      rule.ID,
			}, true, nil
		}
	}

	return Classification{}, false, nil
}

func (m *MatcherImpl) matches(descLower, desc string, rule Rule) bool {
	if rule.Pattern == "" {
		return false
	}

	pattern := strings.ToLower(rule.Pattern)

	switch rule.Mode {
	case model.MatchContains:
		return strings.Contains(descLower, pattern)
	case model.MatchStartsWith:
		return strings.HasPrefix(descLower, pattern)
	case model.MatchEndsWith:
		return strings.HasSuffix(descLower, pattern)
	case model.MatchRegex:
		if re, ok := m.compiledRegex[rule.ID]; ok {
			return re.MatchString(desc)
		}
		return false
	default:
		return false
	}
}
