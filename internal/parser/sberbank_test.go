package parser

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesta-budget/vesta/internal/classify"
	"github.com/vesta-budget/vesta/internal/common"
	"github.com/vesta-budget/vesta/internal/model"
)

// staticExtractor returns canned text instead of running a PDF tool.
type staticExtractor struct {
	text string
	err  error
}

func (s *staticExtractor) Extract(_ context.Context, _ io.Reader) (string, error) {
	return s.text, s.err
}

func TestSberbankParser_Parse(t *testing.T) {
	ctx := context.Background()

	text := strings.Join([]string{
		"СБЕРБАНК",
		"Выписка по счёту за март 2024",
		"",
		"15.03.2024 Покупка SUPERMARKET MOSCOW -1234,56",
		"16.03.2024 Перевод на карту +2500,00",
		// Running balance line without a memo: noise.
		"16.03.2024 5000,00",
		"строка без даты и смысла",
		"17.03.2024 АПТЕКА ГОРЗДРАВ -320,00",
	}, "\n")

	p := NewSberbankParser(classify.NewClassifier(), &staticExtractor{text: text})

	transactions, err := p.Parse(ctx, strings.NewReader("%PDF-"))
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	purchase := transactions[0]
	assert.Equal(t, "2024-03-15", purchase.Date.Format("2006-01-02"))
	assert.Equal(t, "1234.56", purchase.Amount.StringFixed(2))
	assert.Equal(t, model.TypeExpense, purchase.Type)
	assert.Equal(t, "Покупка SUPERMARKET MOSCOW", purchase.Description)
	assert.Equal(t, "Food", purchase.Category)

	transfer := transactions[1]
	assert.Equal(t, "2500.00", transfer.Amount.StringFixed(2))
	assert.Equal(t, model.TypeIncome, transfer.Type)
	assert.Equal(t, "Financial", transfer.Category)

	pharmacy := transactions[2]
	assert.Equal(t, model.TypeExpense, pharmacy.Type)
	assert.Equal(t, "Health", pharmacy.Category)
}

func TestSberbankParser_NoTransactionLines(t *testing.T) {
	ctx := context.Background()
	p := NewSberbankParser(classify.NewClassifier(), &staticExtractor{text: "Выписка\nничего полезного\n"})

	transactions, err := p.Parse(ctx, strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestSberbankParser_ExtractionFailure(t *testing.T) {
	ctx := context.Background()
	p := NewSberbankParser(classify.NewClassifier(), &staticExtractor{err: errors.New("broken pdf")})

	_, err := p.Parse(ctx, strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrParseFailed)
	assert.ErrorContains(t, err, "Sberbank")
}
