package model

import "time"

// CategoryType mirrors TransactionType for the category catalog.
type CategoryType string

// Category type constants.
const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category is one entry of the externally managed category catalog.
type Category struct {
	CreatedAt time.Time    `json:"created_at"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	ID        int          `json:"id"`
	IsActive  bool         `json:"is_active"`
}
