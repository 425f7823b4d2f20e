package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/vesta-budget/vesta/internal/classify"
	"github.com/vesta-budget/vesta/internal/model"
	"github.com/vesta-budget/vesta/internal/normalize"
)

// Alpha Bank XLSX layout: an untitled grid where transaction rows begin at a
// fixed offset, with fixed columns for date, operation code, bank category
// and merchant detail. The magnitude lands in a different column depending on
// the transaction kind, so a fixed priority list of candidate columns is
// scanned and the first non-zero parse wins. The column order is part of the
// format contract; do not reorder it.
const alphaFirstDataRow = 19

var alphaAmountColumns = []int{5, 12, 13, 14}

const (
	alphaColDate     = 0
	alphaColCode     = 3
	alphaColCategory = 4
	alphaColDetail   = 11
)

// AlphaBankParser parses Alpha Bank XLSX statements.
type AlphaBankParser struct {
	classifier *classify.Classifier
}

// NewAlphaBankParser creates a parser for Alpha Bank spreadsheet exports.
func NewAlphaBankParser(classifier *classify.Classifier) *AlphaBankParser {
	return &AlphaBankParser{classifier: classifier}
}

// Bank identifies the statement source.
func (p *AlphaBankParser) Bank() Bank {
	return Bank{Name: "Alpha Bank", Code: CodeAlpha, Extension: "xlsx"}
}

// Parse reads the spreadsheet grid and emits one transaction per valid row.
func (p *AlphaBankParser) Parse(ctx context.Context, r io.Reader) ([]model.Transaction, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, parseFailed(p.Bank(), err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, parseFailed(p.Bank(), fmt.Errorf("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, parseFailed(p.Bank(), err)
	}

	var transactions []model.Transaction
	skipped := 0

	for i := alphaFirstDataRow; i < len(rows); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		txn, ok := p.parseRow(rows[i])
		if !ok {
			skipped++
			continue
		}
		transactions = append(transactions, txn)
	}

	slog.Debug("parsed Alpha Bank statement",
		"transactions", len(transactions),
		"skipped_rows", skipped)

	return transactions, nil
}

// parseRow converts one grid row. ok is false for footer rows, blank
// separators, and rows whose date or amount cannot be parsed.
func (p *AlphaBankParser) parseRow(row []string) (model.Transaction, bool) {
	dateCell := cell(row, alphaColDate)
	if dateCell == "" {
		return model.Transaction{}, false
	}

	date, err := normalize.Date(dateCell)
	if err != nil {
		return model.Transaction{}, false
	}

	code := cell(row, alphaColCode)
	hint := cell(row, alphaColCategory)
	detail := cell(row, alphaColDetail)

	amount, negative, found := scanAmountColumns(row, alphaAmountColumns)
	if !found {
		return model.Transaction{}, false
	}

	description := hint
	if detail != "" {
		description = fmt.Sprintf("%s - %s", hint, detail)
	}

	txn := model.Transaction{
		Date:        date,
		Amount:      amount,
		Description: description,
		Type:        classify.ResolveType(description, hint, negative),
		Category:    p.classifier.Classify(description, hint),
		Subcategory: p.classifier.Subcategory(detail),
		Reference:   code,
	}

	if strings.Contains(strings.ToLower(description), "сбп") {
		txn.ContactPhone = classify.ExtractPhone(detail)
	}

	return txn, true
}

// scanAmountColumns tries the candidate columns in priority order and takes
// the first that parses to a non-zero magnitude. Spreadsheet rows may repeat
// the amount in verification columns, which is why a single fixed column is
// not enough.
func scanAmountColumns(row []string, columns []int) (decimal.Decimal, bool, bool) {
	for _, col := range columns {
		value, negative, ok := normalize.Amount(cell(row, col))
		if ok && !value.IsZero() {
			return value, negative, true
		}
	}
	return decimal.Zero, false, false
}

// cell returns the trimmed cell text, tolerating short rows.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
