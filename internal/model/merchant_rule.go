package model

import "time"

// MatchMode selects how a merchant rule pattern is applied to a description.
type MatchMode string

// Match mode constants.
const (
	MatchContains   MatchMode = "contains"
	MatchStartsWith MatchMode = "starts_with"
	MatchEndsWith   MatchMode = "ends_with"
	MatchRegex      MatchMode = "regex"
)

// MerchantRule is a user-editable classification rule. Rules are evaluated in
// descending priority order; the first matching active rule wins and
// overrides the built-in classifier.
type MerchantRule struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Pattern     string    `json:"pattern"`
	Mode        MatchMode `json:"mode"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	ID          int       `json:"id"`
	Priority    int       `json:"priority"`
	IsActive    bool      `json:"is_active"`
}
