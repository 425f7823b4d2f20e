package importer

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesta-budget/vesta/internal/common"
	"github.com/vesta-budget/vesta/internal/model"
	"github.com/vesta-budget/vesta/internal/parser"
	"github.com/vesta-budget/vesta/internal/service"
)

// stubParser returns canned transactions regardless of input.
type stubParser struct {
	bank         parser.Bank
	transactions []model.Transaction
	err          error
}

func (p *stubParser) Parse(_ context.Context, _ io.Reader) ([]model.Transaction, error) {
	return p.transactions, p.err
}

func (p *stubParser) Bank() parser.Bank { return p.bank }

// fakeStorage implements the subset of service.Storage the pipeline touches.
type fakeStorage struct {
	service.Storage

	existing  map[string]bool
	rules     []model.MerchantRule
	confirmed []model.Transaction
	accountID int64
}

func (f *fakeStorage) TransactionExists(_ context.Context, txn *model.Transaction) (bool, error) {
	return f.existing[txn.DedupKey()], nil
}

func (f *fakeStorage) GetMerchantRules(_ context.Context, _ bool) ([]model.MerchantRule, error) {
	return f.rules, nil
}

func (f *fakeStorage) ConfirmImport(_ context.Context, accountID int64, transactions []model.Transaction) (decimal.Decimal, error) {
	f.accountID = accountID
	f.confirmed = append(f.confirmed, transactions...)

	delta := decimal.Zero
	for i := range transactions {
		delta = delta.Add(transactions[i].SignedAmount())
	}
	return delta, nil
}

func testTxn(day int, amount string, description string, txType model.TransactionType) model.Transaction {
	return model.Transaction{
		Date:        time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		Description: description,
		Type:        txType,
		Category:    "Other",
		Amount:      decimal.RequireFromString(amount),
	}
}

func newTestService(t *testing.T, transactions []model.Transaction, storage *fakeStorage) (*Service, *SessionStore) {
	t.Helper()

	registry := parser.NewRegistry()
	registry.Register(&stubParser{
		bank:         parser.Bank{Name: "Alpha Bank", Code: parser.CodeAlpha, Extension: "xlsx"},
		transactions: transactions,
	})

	if storage.existing == nil {
		storage.existing = make(map[string]bool)
	}

	sessions := NewSessionStore(DefaultSessionTTL)
	return NewService(registry, storage, sessions), sessions
}

func TestImportBuildsPreview(t *testing.T) {
	fresh := testTxn(1, "350.50", "ПЯТЕРОЧКА 1234", model.TypeExpense)
	dup := testTxn(2, "1500.00", "Зарплата за февраль", model.TypeIncome)

	storage := &fakeStorage{existing: map[string]bool{dup.DedupKey(): true}}
	svc, _ := newTestService(t, []model.Transaction{fresh, dup}, storage)

	result, err := svc.Import(context.Background(), ImportRequest{
		FileName:  "statement.xlsx",
		Data:      strings.NewReader(""),
		AccountID: 1,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, parser.CodeAlpha, result.Bank.Code)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Duplicates)

	require.Len(t, result.Records, 2)
	assert.Equal(t, model.StatusSelected, result.Records[0].Status)
	assert.False(t, result.Records[0].IsDuplicate)
	assert.Equal(t, model.StatusExcluded, result.Records[1].Status)
	assert.True(t, result.Records[1].IsDuplicate)
}

func TestImportMerchantRuleOverride(t *testing.T) {
	txn := testTxn(1, "200.00", "Кофейня Дабл Би", model.TypeExpense)
	storage := &fakeStorage{
		rules: []model.MerchantRule{{
			Pattern:     "кофейня",
			Mode:        model.MatchContains,
			Category:    "Restaurants",
			Subcategory: "Coffee",
			Priority:    5,
			IsActive:    true,
		}},
	}
	svc, _ := newTestService(t, []model.Transaction{txn}, storage)

	result, err := svc.Import(context.Background(), ImportRequest{FileName: "s.xlsx", AccountID: 1})
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Restaurants", result.Records[0].Transaction.Category)
	assert.Equal(t, "Coffee", result.Records[0].Transaction.Subcategory)
}

func TestImportEmptyStatement(t *testing.T) {
	storage := &fakeStorage{}
	svc, sessions := newTestService(t, nil, storage)

	result, err := svc.Import(context.Background(), ImportRequest{FileName: "s.xlsx", AccountID: 1})
	require.NoError(t, err)
	assert.Empty(t, result.SessionID)
	assert.Empty(t, result.Records)
	assert.Zero(t, sessions.Len())
}

func TestImportUnknownBank(t *testing.T) {
	storage := &fakeStorage{}
	svc, _ := newTestService(t, nil, storage)

	_, err := svc.Import(context.Background(), ImportRequest{FileName: "statement.docx"})
	assert.ErrorIs(t, err, common.ErrUnsupportedBank)

	_, err = svc.Import(context.Background(), ImportRequest{FileName: "s.xlsx", BankCode: "tinkoff"})
	assert.ErrorIs(t, err, common.ErrUnsupportedBank)
}

func TestToggle(t *testing.T) {
	fresh := testTxn(1, "100.00", "fresh", model.TypeExpense)
	dup := testTxn(2, "200.00", "dup", model.TypeExpense)

	storage := &fakeStorage{existing: map[string]bool{dup.DedupKey(): true}}
	svc, _ := newTestService(t, []model.Transaction{fresh, dup}, storage)

	result, err := svc.Import(context.Background(), ImportRequest{FileName: "s.xlsx", AccountID: 1})
	require.NoError(t, err)

	err = svc.Toggle(result.SessionID, 0)
	require.NoError(t, err)
	records, err := svc.Preview(result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusExcluded, records[0].Status)

	err = svc.Toggle(result.SessionID, 0)
	require.NoError(t, err)
	records, err = svc.Preview(result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSelected, records[0].Status)

	// Duplicates stay excluded.
	err = svc.Toggle(result.SessionID, 1)
	assert.ErrorIs(t, err, ErrRecordPinned)

	err = svc.Toggle(result.SessionID, 5)
	assert.Error(t, err)
}

func TestConfirmSelectedSubset(t *testing.T) {
	keep := testTxn(1, "1500.00", "Зарплата за февраль", model.TypeIncome)
	drop := testTxn(2, "350.50", "ПЯТЕРОЧКА 1234", model.TypeExpense)

	storage := &fakeStorage{}
	svc, sessions := newTestService(t, []model.Transaction{keep, drop}, storage)

	result, err := svc.Import(context.Background(), ImportRequest{FileName: "s.xlsx", AccountID: 7})
	require.NoError(t, err)

	err = svc.Toggle(result.SessionID, 1)
	require.NoError(t, err)

	confirm, err := svc.Confirm(context.Background(), result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, confirm.Imported)
	assert.True(t, confirm.BalanceDelta.Equal(decimal.RequireFromString("1500.00")))

	assert.Equal(t, int64(7), storage.accountID)
	require.Len(t, storage.confirmed, 1)
	assert.Equal(t, "Зарплата за февраль", storage.confirmed[0].Description)

	// Session is consumed.
	_, err = svc.Confirm(context.Background(), result.SessionID)
	assert.ErrorIs(t, err, common.ErrSessionNotFound)
	assert.Zero(t, sessions.Len())
}

func TestConfirmExpiredSession(t *testing.T) {
	txn := testTxn(1, "100.00", "test", model.TypeExpense)
	storage := &fakeStorage{}
	svc, sessions := newTestService(t, []model.Transaction{txn}, storage)

	now := time.Now()
	sessions.now = func() time.Time { return now }

	result, err := svc.Import(context.Background(), ImportRequest{FileName: "s.xlsx", AccountID: 1})
	require.NoError(t, err)

	sessions.now = func() time.Time { return now.Add(DefaultSessionTTL + time.Second) }

	_, err = svc.Confirm(context.Background(), result.SessionID)
	assert.ErrorIs(t, err, common.ErrSessionExpired)
	assert.Empty(t, storage.confirmed, "expired confirm must write nothing")
}

func TestCancel(t *testing.T) {
	txn := testTxn(1, "100.00", "test", model.TypeExpense)
	storage := &fakeStorage{}
	svc, sessions := newTestService(t, []model.Transaction{txn}, storage)

	result, err := svc.Import(context.Background(), ImportRequest{FileName: "s.xlsx", AccountID: 1})
	require.NoError(t, err)
	require.Equal(t, 1, sessions.Len())

	svc.Cancel(result.SessionID)
	assert.Zero(t, sessions.Len())

	_, err = svc.Preview(result.SessionID)
	assert.ErrorIs(t, err, common.ErrSessionNotFound)
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	bank := parser.Bank{Name: "Alpha Bank", Code: parser.CodeAlpha, Extension: "xlsx"}
	session := store.Create(bank, 1, nil)

	_, err := store.Get(session.ID)
	require.NoError(t, err)

	store.now = func() time.Time { return now.Add(2 * time.Minute) }

	_, err = store.Get(session.ID)
	assert.ErrorIs(t, err, common.ErrSessionExpired)

	// A second lookup sees the removed session as unknown.
	_, err = store.Get(session.ID)
	assert.ErrorIs(t, err, common.ErrSessionNotFound)
}

func TestSessionStoreCollectExpired(t *testing.T) {
	store := NewSessionStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	bank := parser.Bank{Name: "Alpha Bank", Code: parser.CodeAlpha, Extension: "xlsx"}
	stale := store.Create(bank, 1, nil)

	store.now = func() time.Time { return now.Add(2 * time.Minute) }
	live := store.Create(bank, 1, nil)

	removed := store.collectExpired()
	assert.Equal(t, 1, removed)

	_, err := store.Get(live.ID)
	assert.NoError(t, err)
	_, err = store.Get(stale.ID)
	assert.ErrorIs(t, err, common.ErrSessionNotFound)
}
