package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vesta-budget/vesta/internal/common"
	"github.com/vesta-budget/vesta/internal/model"
)

// GetCategories retrieves all active categories ordered by name.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, name, category_type, is_active, created_at
		FROM categories WHERE is_active = 1 ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var (
			cat     model.Category
			typeStr string
		)
		if err := rows.Scan(&cat.ID, &cat.Name, &typeStr, &cat.IsActive, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.Type = model.CategoryType(typeStr)
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// GetCategoryByName retrieves a category by its exact name.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	query := `SELECT id, name, category_type, is_active, created_at
		FROM categories WHERE name = ?`

	var (
		cat     model.Category
		typeStr string
	)
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&cat.ID, &cat.Name, &typeStr, &cat.IsActive, &cat.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %q: %w", name, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category %q: %w", name, err)
	}
	cat.Type = model.CategoryType(typeStr)

	return &cat, nil
}

// EnsureCategory looks the category up by name, creating it when missing.
// Imports reference categories produced by the classifier that may not exist
// in the catalog yet.
func (s *SQLiteStorage) EnsureCategory(ctx context.Context, name string, categoryType model.CategoryType) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}
	if categoryType != model.CategoryTypeIncome && categoryType != model.CategoryTypeExpense {
		return nil, fmt.Errorf("%w: unknown category type %q", common.ErrInvalidConfig, categoryType)
	}

	existing, err := s.GetCategoryByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO categories (name, category_type) VALUES (?, ?)",
		name, string(categoryType))
	if err != nil {
		return nil, fmt.Errorf("failed to create category %q: %w", name, err)
	}

	return s.GetCategoryByName(ctx, name)
}
