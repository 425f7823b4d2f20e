package storage

import (
	"context"
	"fmt"

	"github.com/vesta-budget/vesta/internal/common"
	"github.com/vesta-budget/vesta/internal/model"
)

// CreateMerchantRule persists a new merchant rule and fills in its ID and
// timestamps.
func (s *SQLiteStorage) CreateMerchantRule(ctx context.Context, rule *model.MerchantRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateMerchantRule(rule); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `INSERT INTO merchant_rules
		(pattern, match_mode, category, subcategory, priority, is_active)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rule.Pattern, string(rule.Mode), rule.Category, rule.Subcategory,
		rule.Priority, rule.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create merchant rule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get merchant rule id: %w", err)
	}
	rule.ID = int(id)

	return nil
}

// GetMerchantRules retrieves merchant rules in descending priority order.
// When activeOnly is true, inactive rules are filtered out.
func (s *SQLiteStorage) GetMerchantRules(ctx context.Context, activeOnly bool) ([]model.MerchantRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, pattern, match_mode, category, COALESCE(subcategory, ''),
		priority, is_active, created_at, updated_at
		FROM merchant_rules`
	if activeOnly {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY priority DESC, id"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query merchant rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.MerchantRule
	for rows.Next() {
		var (
			rule    model.MerchantRule
			modeStr string
		)
		err := rows.Scan(&rule.ID, &rule.Pattern, &modeStr, &rule.Category,
			&rule.Subcategory, &rule.Priority, &rule.IsActive,
			&rule.CreatedAt, &rule.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan merchant rule: %w", err)
		}
		rule.Mode = model.MatchMode(modeStr)
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate merchant rules: %w", err)
	}

	return rules, nil
}

// UpdateMerchantRule updates an existing merchant rule.
func (s *SQLiteStorage) UpdateMerchantRule(ctx context.Context, rule *model.MerchantRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateMerchantRule(rule); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `UPDATE merchant_rules
		SET pattern = ?, match_mode = ?, category = ?, subcategory = ?,
			priority = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		rule.Pattern, string(rule.Mode), rule.Category, rule.Subcategory,
		rule.Priority, rule.IsActive, rule.ID)
	if err != nil {
		return fmt.Errorf("failed to update merchant rule %d: %w", rule.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("merchant rule %d: %w", rule.ID, common.ErrNotFound)
	}

	return nil
}

// DeleteMerchantRule removes a merchant rule by ID.
func (s *SQLiteStorage) DeleteMerchantRule(ctx context.Context, id int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM merchant_rules WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete merchant rule %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("merchant rule %d: %w", id, common.ErrNotFound)
	}

	return nil
}
