// Package classify maps raw transaction descriptions to categories,
// subcategories, transaction direction, and embedded contact phone numbers.
//
// The lookup tables (MCC codes, merchant keywords, brand aliases) are pure
// immutable data: they are built once in NewClassifier and never mutated
// afterwards. The user-editable merchant rules live in a separate layer
// (internal/rules) consulted by the orchestrator.
package classify

import (
	"regexp"
	"strings"
)

var mccMarkerRe = regexp.MustCompile(`mcc:\s*(\d{4})`)

// Classifier resolves categories from merchant-category codes and curated
// keyword tables. Construct once at startup and inject where needed.
type Classifier struct {
	mcc    map[string]string
	brands []brandAlias
}

// NewClassifier builds the static lookup tables.
func NewClassifier() *Classifier {
	return &Classifier{
		mcc:    buildMCCTable(),
		brands: brandAliases,
	}
}

// Classify maps a description and the bank's coarse category hint to a
// catalog category. Resolution order: MCC code, merchant keyword tables,
// peer-transfer markers, hint translation, "Other".
func (c *Classifier) Classify(description, hint string) string {
	descLower := strings.ToLower(description)

	if m := mccMarkerRe.FindStringSubmatch(descLower); m != nil {
		if category, ok := c.mcc[m[1]]; ok {
			return category
		}
	}

	if category := matchKeywordGroups(descLower, merchantKeywordGroups); category != "" {
		return category
	}

	// SBP peer transfers without merchant context are financial operations.
	if strings.Contains(descLower, "сбп") || strings.Contains(descLower, "sbp") {
		return "Financial"
	}

	if hint != "" {
		hintLower := strings.ToLower(hint)
		for _, tr := range hintTranslations {
			if strings.Contains(hintLower, tr.hint) {
				return tr.category
			}
		}
	}

	return "Other"
}

// ClassifyRaiffeisen categorizes a Raiffeisen payment-purpose text.
func (c *Classifier) ClassifyRaiffeisen(description string) string {
	if category := matchKeywordGroups(strings.ToLower(description), raiffeisenKeywordGroups); category != "" {
		return category
	}
	return "Other"
}

// ClassifySberbank categorizes a Sberbank statement line description.
func (c *Classifier) ClassifySberbank(description string) string {
	if category := matchKeywordGroups(strings.ToLower(description), sberbankKeywordGroups); category != "" {
		return category
	}
	return "Other"
}

func matchKeywordGroups(descLower string, groups []keywordGroup) string {
	for _, group := range groups {
		for _, keyword := range group.keywords {
			if strings.Contains(descLower, keyword) {
				return group.category
			}
		}
	}
	return ""
}
