package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/vesta-budget/vesta/internal/classify"
	"github.com/vesta-budget/vesta/internal/model"
	"github.com/vesta-budget/vesta/internal/normalize"
)

var (
	sberDateRe   = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)
	sberAmountRe = regexp.MustCompile(`[+-]?\d+[,.]?\d*`)
)

// TextExtractor pulls plain text out of a PDF document. Extraction fidelity
// is the extractor's responsibility, not the parser's.
type TextExtractor interface {
	Extract(ctx context.Context, r io.Reader) (string, error)
}

// SberbankParser parses Sberbank PDF statements: the extracted text is
// scanned line by line, and a line containing a date substring is treated as
// a transaction candidate. The last number-like substring on the line is
// taken as the amount; statements that print a running balance after the
// amount on the same line will misparse. That limitation is inherent to the
// format and deliberately not worked around.
type SberbankParser struct {
	classifier *classify.Classifier
	extractor  TextExtractor
}

// NewSberbankParser creates a parser for Sberbank PDF statements.
func NewSberbankParser(classifier *classify.Classifier, extractor TextExtractor) *SberbankParser {
	return &SberbankParser{classifier: classifier, extractor: extractor}
}

// Bank identifies the statement source.
func (p *SberbankParser) Bank() Bank {
	return Bank{Name: "Sberbank", Code: CodeSberbank, Extension: "pdf"}
}

// Parse extracts the document text and scans it for transaction lines.
func (p *SberbankParser) Parse(ctx context.Context, r io.Reader) ([]model.Transaction, error) {
	text, err := p.extractor.Extract(ctx, r)
	if err != nil {
		return nil, parseFailed(p.Bank(), fmt.Errorf("extracting text: %w", err))
	}

	var transactions []model.Transaction
	skipped := 0

	for _, line := range strings.Split(text, "\n") {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line = strings.TrimSpace(line)
		if line == "" || isSberHeaderLine(line) {
			continue
		}

		dateLoc := sberDateRe.FindStringIndex(line)
		if dateLoc == nil {
			continue
		}

		txn, ok := p.parseLine(line, dateLoc)
		if !ok {
			skipped++
			continue
		}
		transactions = append(transactions, txn)
	}

	slog.Debug("parsed Sberbank statement",
		"transactions", len(transactions),
		"skipped_lines", skipped)

	return transactions, nil
}

func (p *SberbankParser) parseLine(line string, dateLoc []int) (model.Transaction, bool) {
	date, err := normalize.Date(line[dateLoc[0]:dateLoc[1]])
	if err != nil {
		return model.Transaction{}, false
	}

	// The trailing amount terminates a transaction line.
	amountLocs := sberAmountRe.FindAllStringIndex(line, -1)
	if len(amountLocs) == 0 {
		return model.Transaction{}, false
	}
	lastLoc := amountLocs[len(amountLocs)-1]
	if lastLoc[0] <= dateLoc[1] {
		return model.Transaction{}, false
	}

	amount, negative, ok := normalize.Amount(line[lastLoc[0]:lastLoc[1]])
	if !ok || amount.IsZero() {
		return model.Transaction{}, false
	}

	// Lines without a memo between date and amount are noise, e.g. running
	// balance lines.
	description := strings.TrimSpace(line[dateLoc[1]:lastLoc[0]])
	if description == "" {
		return model.Transaction{}, false
	}

	txType := model.TypeIncome
	if negative {
		txType = model.TypeExpense
	}

	return model.Transaction{
		Date:        date,
		Amount:      amount,
		Description: description,
		Type:        txType,
		Category:    p.classifier.ClassifySberbank(description),
	}, true
}

func isSberHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "выписка") || strings.Contains(lower, "сбербанк")
}
