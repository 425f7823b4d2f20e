package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the bank account whose balance an import mutates on confirm.
type Account struct {
	CreatedAt time.Time       `json:"created_at"`
	Name      string          `json:"name"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	ID        int64           `json:"id"`
	IsActive  bool            `json:"is_active"`
}
