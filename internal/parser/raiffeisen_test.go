package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/vesta-budget/vesta/internal/classify"
	"github.com/vesta-budget/vesta/internal/common"
	"github.com/vesta-budget/vesta/internal/model"
)

const raiffeisenHeader = "Дата операции;Тип;Сумма в валюте операции (поступления);Сумма в валюте операции (расходы);Детали операции (назначение платежа);Номер документа"

func TestRaiffeisenParser_Parse(t *testing.T) {
	ctx := context.Background()
	p := NewRaiffeisenParser(classify.NewClassifier())

	doc := strings.Join([]string{
		raiffeisenHeader,
		"01.03.2024;;1500,00;;Зарплата за февраль;DOC123",
		"02.03.2024;;;340,50;Оплата в супермаркете ЛЕНТА;DOC124",
		// Both credit and debit empty: skipped.
		"03.03.2024;;;;Справочная строка;DOC125",
		// Unparseable date: skipped.
		"вчера;;100,00;;Что-то;DOC126",
		"не строка данных",
	}, "\n")

	transactions, err := p.Parse(ctx, strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	salary := transactions[0]
	assert.Equal(t, "2024-03-01", salary.Date.Format("2006-01-02"))
	assert.Equal(t, "1500.00", salary.Amount.StringFixed(2))
	assert.Equal(t, model.TypeIncome, salary.Type)
	assert.Equal(t, "Зарплата за февраль", salary.Description)
	assert.Equal(t, "Salary", salary.Category)
	assert.Equal(t, "DOC123", salary.Reference)

	grocery := transactions[1]
	assert.Equal(t, "340.50", grocery.Amount.StringFixed(2))
	assert.Equal(t, model.TypeExpense, grocery.Type)
	assert.Equal(t, "Food", grocery.Category)
}

func TestRaiffeisenParser_Windows1251(t *testing.T) {
	ctx := context.Background()
	p := NewRaiffeisenParser(classify.NewClassifier())

	doc := strings.Join([]string{
		raiffeisenHeader,
		"05.03.2024;;;220,00;Оплата проезда метро и автобус, городской транспорт;DOC200",
	}, "\r\n")

	encoded, err := charmap.Windows1251.NewEncoder().String(doc)
	require.NoError(t, err)

	transactions, err := p.Parse(ctx, strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, model.TypeExpense, transactions[0].Type)
	assert.Equal(t, "Transport", transactions[0].Category)
	assert.Equal(t, "DOC200", transactions[0].Reference)
}

func TestRaiffeisenParser_EmptyBody(t *testing.T) {
	ctx := context.Background()
	p := NewRaiffeisenParser(classify.NewClassifier())

	transactions, err := p.Parse(ctx, strings.NewReader(raiffeisenHeader+"\n"))
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestRaiffeisenParser_WrongStructure(t *testing.T) {
	ctx := context.Background()
	p := NewRaiffeisenParser(classify.NewClassifier())

	_, err := p.Parse(ctx, strings.NewReader("a,b,c\n1,2,3\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrParseFailed)
	assert.ErrorContains(t, err, "Raiffeisen")
}
