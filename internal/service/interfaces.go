// Package service defines the interfaces between the import pipeline and its
// collaborators.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vesta-budget/vesta/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Limit     int
}

// Storage is the persistence contract consumed by the import orchestrator
// and the CLI.
type Storage interface {
	// Transaction operations.
	//
	// TransactionExists answers the duplicate-detection query: does a
	// persisted transaction with this exact (date, amount, description)
	// signature already exist?
	TransactionExists(ctx context.Context, txn *model.Transaction) (bool, error)
	// ConfirmImport persists the given transactions against an account and
	// applies the signed balance delta in one atomic unit: either every row
	// and the balance update land together, or none do. Returns the applied
	// delta.
	ConfirmImport(ctx context.Context, accountID int64, transactions []model.Transaction) (decimal.Decimal, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)

	// Account operations.
	CreateAccount(ctx context.Context, name string) (*model.Account, error)
	GetAccount(ctx context.Context, id int64) (*model.Account, error)
	GetAccounts(ctx context.Context) ([]model.Account, error)

	// Category catalog operations.
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	// EnsureCategory looks the category up by name and creates it when
	// missing; imports reference categories that may not exist yet.
	EnsureCategory(ctx context.Context, name string, categoryType model.CategoryType) (*model.Category, error)

	// Merchant rule operations.
	CreateMerchantRule(ctx context.Context, rule *model.MerchantRule) error
	GetMerchantRules(ctx context.Context, activeOnly bool) ([]model.MerchantRule, error)
	UpdateMerchantRule(ctx context.Context, rule *model.MerchantRule) error
	DeleteMerchantRule(ctx context.Context, id int) error

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}
