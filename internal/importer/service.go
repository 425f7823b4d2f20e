package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/vesta-budget/vesta/internal/model"
	"github.com/vesta-budget/vesta/internal/parser"
	"github.com/vesta-budget/vesta/internal/rules"
	"github.com/vesta-budget/vesta/internal/service"
)

// ImportRequest describes one statement file to run through the pipeline.
type ImportRequest struct {
	// FileName is used for bank detection when BankCode is empty.
	FileName string
	Data     io.Reader
	// BankCode overrides extension-based detection when set.
	BankCode  string
	AccountID int64
}

// ImportResult is the outcome of parsing and previewing a statement. When the
// file contained no transactions, SessionID is empty and Records is nil.
type ImportResult struct {
	SessionID  string
	Bank       parser.Bank
	Records    []model.PreviewRecord
	Total      int
	Duplicates int
}

// ConfirmResult reports what a confirmed import committed.
type ConfirmResult struct {
	Imported     int
	BalanceDelta decimal.Decimal
}

// Service wires the parser registry, merchant rules, and storage into the
// import pipeline.
type Service struct {
	registry *parser.Registry
	storage  service.Storage
	sessions *SessionStore
}

// NewService creates an import service.
func NewService(registry *parser.Registry, storage service.Storage, sessions *SessionStore) *Service {
	return &Service{
		registry: registry,
		storage:  storage,
		sessions: sessions,
	}
}

// Import parses a statement, applies merchant rule overrides, marks
// duplicates, and opens a preview session. A document that parses cleanly but
// yields no transactions produces a result with no session and no error.
func (s *Service) Import(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	stmtParser, err := s.resolveParser(req)
	if err != nil {
		return nil, err
	}
	bank := stmtParser.Bank()

	transactions, err := stmtParser.Parse(ctx, req.Data)
	if err != nil {
		return nil, err
	}

	if len(transactions) == 0 {
		slog.Warn("Statement contained no transactions",
			"bank", bank.Code,
			"file", req.FileName)
		return &ImportResult{Bank: bank}, nil
	}

	matcher, err := s.loadMatcher(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]model.PreviewRecord, 0, len(transactions))
	duplicates := 0
	for i := range transactions {
		txn := transactions[i]

		if classification, ok, matchErr := matcher.Match(ctx, txn.Description); matchErr != nil {
			return nil, matchErr
		} else if ok {
			txn.Category = classification.Category
			if classification.Subcategory != "" {
				txn.Subcategory = classification.Subcategory
			}
		}

		exists, err := s.storage.TransactionExists(ctx, &txn)
		if err != nil {
			return nil, fmt.Errorf("duplicate check: %w", err)
		}

		record := model.PreviewRecord{
			Status:      model.StatusSelected,
			Transaction: txn,
			IsDuplicate: exists,
		}
		if exists {
			record.Status = model.StatusExcluded
			duplicates++
		}
		records = append(records, record)
	}

	session := s.sessions.Create(bank, req.AccountID, records)
	slog.Info("Statement parsed",
		"bank", bank.Code,
		"transactions", len(records),
		"duplicates", duplicates,
		"session_id", session.ID)

	return &ImportResult{
		SessionID:  session.ID,
		Bank:       bank,
		Records:    records,
		Total:      len(records),
		Duplicates: duplicates,
	}, nil
}

// Preview returns the current state of a session's records.
func (s *Service) Preview(sessionID string) ([]model.PreviewRecord, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	records := make([]model.PreviewRecord, len(session.Records))
	copy(records, session.Records)
	return records, nil
}

// Toggle flips the selection of one preview record.
func (s *Service) Toggle(sessionID string, index int) error {
	_, err := s.sessions.Toggle(sessionID, index)
	return err
}

// Confirm commits the selected subset of a session atomically and consumes
// the session. Nothing is written when the session has expired.
func (s *Service) Confirm(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	session, err := s.sessions.Take(sessionID)
	if err != nil {
		return nil, err
	}

	var selected []model.Transaction
	for i := range session.Records {
		if session.Records[i].Status == model.StatusSelected {
			selected = append(selected, session.Records[i].Transaction)
		}
	}

	if len(selected) == 0 {
		slog.Info("Import confirmed with nothing selected", "session_id", sessionID)
		return &ConfirmResult{BalanceDelta: decimal.Zero}, nil
	}

	delta, err := s.storage.ConfirmImport(ctx, session.AccountID, selected)
	if err != nil {
		return nil, fmt.Errorf("confirm import: %w", err)
	}

	slog.Info("Import confirmed",
		"session_id", sessionID,
		"imported", len(selected),
		"balance_delta", delta.StringFixed(2))

	return &ConfirmResult{
		Imported:     len(selected),
		BalanceDelta: delta,
	}, nil
}

// Cancel discards a session without writing anything.
func (s *Service) Cancel(sessionID string) {
	s.sessions.Delete(sessionID)
}

func (s *Service) resolveParser(req ImportRequest) (parser.StatementParser, error) {
	if req.BankCode != "" {
		return s.registry.Get(req.BankCode)
	}
	return s.registry.Detect(req.FileName)
}

// loadMatcher builds a rule matcher from the active merchant rules. Rules
// are reloaded per import so edits apply without a restart.
func (s *Service) loadMatcher(ctx context.Context) (rules.Matcher, error) {
	ruleSet, err := s.storage.GetMerchantRules(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("load merchant rules: %w", err)
	}
	return rules.NewMatcher(ruleSet), nil
}
