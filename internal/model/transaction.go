// Package model defines the core data structures for the vesta application.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells whether a transaction adds to or subtracts from an account.
type TransactionType string

// Transaction type constants.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single normalized transaction parsed from a bank
// statement. Amount is always a non-negative magnitude; the direction lives
// in Type.
type Transaction struct {
	Date         time.Time
	Description  string
	Type         TransactionType
	Category     string
	Subcategory  string
	ContactPhone string
	Reference    string
	Amount       decimal.Decimal
}

// DedupKey returns the (date, amount, description) signature used for
// duplicate detection against already persisted transactions.
func (t *Transaction) DedupKey() string {
	return fmt.Sprintf("%s:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount.StringFixed(2),
		t.Description)
}

// SignedAmount returns the amount with its direction applied: positive for
// income, negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
