package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vesta-budget/vesta/internal/common"
	"github.com/vesta-budget/vesta/internal/model"
	"github.com/vesta-budget/vesta/internal/service"
)

// dateFormat is how transaction dates are stored: lexicographically sortable
// and stable under string comparison for the dedup index.
const dateFormat = "2006-01-02"

// TransactionExists reports whether a transaction with the same
// (date, amount, description) signature is already persisted.
func (s *SQLiteStorage) TransactionExists(ctx context.Context, txn *model.Transaction) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateTransaction(txn); err != nil {
		return false, err
	}

	query := `SELECT EXISTS(
		SELECT 1 FROM transactions
		WHERE date = ? AND amount = ? AND description = ?
	)`

	var exists bool
	err := s.db.QueryRowContext(ctx, query,
		txn.Date.Format(dateFormat),
		txn.Amount.StringFixed(2),
		txn.Description,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check transaction existence: %w", err)
	}

	return exists, nil
}

// ConfirmImport persists the transactions against an account and applies the
// signed balance delta in one database transaction. Either every row, the
// balance update, and the audit log entry land together, or none do.
func (s *SQLiteStorage) ConfirmImport(ctx context.Context, accountID int64, transactions []model.Transaction) (decimal.Decimal, error) {
	if err := validateContext(ctx); err != nil {
		return decimal.Zero, err
	}
	if err := validateTransactions(transactions); err != nil {
		return decimal.Zero, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var balanceStr string
	err = tx.QueryRowContext(ctx,
		"SELECT balance FROM accounts WHERE id = ? AND is_active = 1",
		accountID,
	).Scan(&balanceStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("account %d: %w", accountID, common.ErrNotFound)
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("account %d has corrupt balance %q: %w", accountID, balanceStr, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO transactions
		(date, amount, description, transaction_type, category, subcategory, contact_phone, reference, account_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	delta := decimal.Zero
	for i := range transactions {
		txn := &transactions[i]
		_, err = stmt.ExecContext(ctx,
			txn.Date.Format(dateFormat),
			txn.Amount.StringFixed(2),
			txn.Description,
			string(txn.Type),
			txn.Category,
			txn.Subcategory,
			txn.ContactPhone,
			txn.Reference,
			accountID,
		)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to insert transaction %d: %w", i, err)
		}
		delta = delta.Add(txn.SignedAmount())
	}

	newBalance := balance.Add(delta)
	_, err = tx.ExecContext(ctx,
		"UPDATE accounts SET balance = ? WHERE id = ?",
		newBalance.StringFixed(2), accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to update account balance: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO import_log (account_id, transaction_count, balance_delta) VALUES (?, ?, ?)",
		accountID, len(transactions), delta.StringFixed(2))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, fmt.Errorf("failed to commit import: %w", err)
	}

	return delta, nil
}

// GetTransactions retrieves persisted transactions matching the filter,
// newest first.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT date, amount, description, transaction_type,
		COALESCE(category, ''), COALESCE(subcategory, ''),
		COALESCE(contact_phone, ''), COALESCE(reference, '')
		FROM transactions WHERE 1=1`
	args := []any{}

	if filter.StartDate != nil {
		query += " AND date >= ?"
		args = append(args, filter.StartDate.Format(dateFormat))
	}
	if filter.EndDate != nil {
		query += " AND date <= ?"
		args = append(args, filter.EndDate.Format(dateFormat))
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}

	query += " ORDER BY date DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var (
			txn       model.Transaction
			dateStr   string
			amountStr string
			typeStr   string
		)
		err := rows.Scan(&dateStr, &amountStr, &txn.Description, &typeStr,
			&txn.Category, &txn.Subcategory, &txn.ContactPhone, &txn.Reference)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		txn.Date, err = time.Parse(dateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored date %q: %w", dateStr, err)
		}
		txn.Amount, err = decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored amount %q: %w", amountStr, err)
		}
		txn.Type = model.TransactionType(typeStr)

		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}
