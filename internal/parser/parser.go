// Package parser turns raw bank statement files into normalized transactions.
//
// Each supported bank has its own export format and layout; a parser locates
// the transaction records inside the raw document and hands the cell text to
// the normalize and classify packages. Malformed individual rows are skipped
// and counted, never fatal: bank exports routinely interleave footer and
// header noise with data rows. Only a document that cannot be read at all
// produces an error.
package parser

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vesta-budget/vesta/internal/common"
	"github.com/vesta-budget/vesta/internal/model"
)

// Bank describes one supported statement source.
type Bank struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	Extension string `json:"extension"`
}

// Supported bank codes.
const (
	CodeAlpha      = "alpha"
	CodeRaiffeisen = "raiffeisen"
	CodeSberbank   = "sberbank"
)

// StatementParser converts one bank's statement document into transactions.
type StatementParser interface {
	// Parse reads the whole document in a single pass. Individual bad rows
	// are skipped; a structurally unreadable document returns an error
	// wrapping common.ErrParseFailed.
	Parse(ctx context.Context, r io.Reader) ([]model.Transaction, error)
	// Bank identifies the statement source this parser understands.
	Bank() Bank
}

// Registry holds the parser for each supported bank.
type Registry struct {
	parsers map[string]StatementParser
	order   []string
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]StatementParser)}
}

// Register adds a parser. Panics on duplicate bank code.
func (r *Registry) Register(p StatementParser) {
	code := strings.ToLower(p.Bank().Code)
	if _, ok := r.parsers[code]; ok {
		panic("duplicate parser for bank: " + code)
	}
	r.parsers[code] = p
	r.order = append(r.order, code)
}

// Get returns the parser registered for a bank code.
func (r *Registry) Get(code string) (StatementParser, error) {
	p, ok := r.parsers[strings.ToLower(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedBank, code)
	}
	return p, nil
}

// Detect picks the bank from the file extension when the caller did not name
// one explicitly. An unknown extension is a distinct failure from a parse
// error: it signals the caller to prompt for an explicit bank selection.
func (r *Registry) Detect(filename string) (StatementParser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, code := range r.order {
		p := r.parsers[code]
		if "."+p.Bank().Extension == ext {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: cannot detect bank from filename %q", common.ErrUnsupportedBank, filename)
}

// Banks lists the supported-bank descriptors in registration order.
func (r *Registry) Banks() []Bank {
	banks := make([]Bank, 0, len(r.order))
	for _, code := range r.order {
		banks = append(banks, r.parsers[code].Bank())
	}
	return banks
}

// parseFailed wraps a document-level failure, naming the bank.
func parseFailed(bank Bank, err error) error {
	return fmt.Errorf("%s statement: %w: %v", bank.Name, common.ErrParseFailed, err)
}
