package parser

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"

	"github.com/vesta-budget/vesta/internal/classify"
	"github.com/vesta-budget/vesta/internal/model"
	"github.com/vesta-budget/vesta/internal/normalize"
)

// Raiffeisen CSV column headers. The export uses a semicolon delimiter and
// splits the magnitude into separate credit and debit columns.
const (
	raifColDate      = "Дата операции"
	raifColCredit    = "Сумма в валюте операции (поступления)"
	raifColDebit     = "Сумма в валюте операции (расходы)"
	raifColPurpose   = "Детали операции (назначение платежа)"
	raifColReference = "Номер документа"
)

// encodingSampleSize bounds how many raw bytes feed the charset detector.
const encodingSampleSize = 4096

// RaiffeisenParser parses Raiffeisen Bank CSV statements.
type RaiffeisenParser struct {
	classifier *classify.Classifier
}

// NewRaiffeisenParser creates a parser for Raiffeisen delimited-text exports.
func NewRaiffeisenParser(classifier *classify.Classifier) *RaiffeisenParser {
	return &RaiffeisenParser{classifier: classifier}
}

// Bank identifies the statement source.
func (p *RaiffeisenParser) Bank() Bank {
	return Bank{Name: "Raiffeisen Bank", Code: CodeRaiffeisen, Extension: "csv"}
}

// Parse decodes the file's charset, then reads the semicolon-delimited rows.
func (p *RaiffeisenParser) Parse(ctx context.Context, r io.Reader) ([]model.Transaction, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, parseFailed(p.Bank(), err)
	}

	text, err := decodeStatement(raw)
	if err != nil {
		return nil, parseFailed(p.Bank(), err)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, parseFailed(p.Bank(), fmt.Errorf("reading header: %w", err))
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	if _, ok := columns[raifColDate]; !ok {
		return nil, parseFailed(p.Bank(), fmt.Errorf("missing column %q", raifColDate))
	}

	var transactions []model.Transaction
	skipped := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		txn, ok := p.parseRecord(record, columns)
		if !ok {
			skipped++
			continue
		}
		transactions = append(transactions, txn)
	}

	slog.Debug("parsed Raiffeisen statement",
		"transactions", len(transactions),
		"skipped_rows", skipped)

	return transactions, nil
}

func (p *RaiffeisenParser) parseRecord(record []string, columns map[string]int) (model.Transaction, bool) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	date, err := normalize.Date(field(raifColDate))
	if err != nil {
		return model.Transaction{}, false
	}

	credit, _, creditOK := normalize.Amount(field(raifColCredit))
	debit, _, debitOK := normalize.Amount(field(raifColDebit))

	var txn model.Transaction
	switch {
	case creditOK && credit.IsPositive():
		txn.Amount = credit
		txn.Type = model.TypeIncome
	case debitOK && debit.IsPositive():
		txn.Amount = debit
		txn.Type = model.TypeExpense
	default:
		// Both credit and debit empty or zero.
		return model.Transaction{}, false
	}

	txn.Date = date
	txn.Description = field(raifColPurpose)
	txn.Category = p.classifier.ClassifyRaiffeisen(txn.Description)
	txn.Reference = field(raifColReference)

	return txn, true
}

// decodeStatement converts raw statement bytes to UTF-8. Valid UTF-8 input
// passes through; otherwise the charset is detected from a byte sample, with
// windows-1251 as the default for this bank's legacy exports.
func decodeStatement(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(bytes.TrimPrefix(raw, []byte{0xef, 0xbb, 0xbf})), nil
	}

	sample := raw
	if len(sample) > encodingSampleSize {
		sample = sample[:encodingSampleSize]
	}

	cm := charmap.Windows1251
	if result, err := chardet.NewTextDetector().DetectBest(sample); err == nil {
		if strings.Contains(strings.ToLower(result.Charset), "koi8") {
			cm = charmap.KOI8R
		}
	}

	decoded, err := cm.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", cm.String(), err)
	}
	return string(decoded), nil
}
