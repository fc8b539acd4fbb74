package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/banking-demo/internal/storage"
	"github.com/carson-networks/banking-demo/internal/storage/ledger"
)

// TransactionService validates, creates, matures and undoes transactions for the selected account.
type TransactionService struct {
	ledger    *ledger.Store
	selection *Selection
	drafts    *DraftService
	limits    Limits
	clock     clock
	log       logrus.FieldLogger

	mu       sync.Mutex
	undoable *uuid.UUID
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, selection *Selection, drafts *DraftService, limits Limits, c clock, log logrus.FieldLogger) *TransactionService {
	return &TransactionService{
		ledger:    store.Ledger,
		selection: selection,
		drafts:    drafts,
		limits:    limits,
		clock:     c,
		log:       log,
	}
}

// Validate runs the business rules for req against the selected account.
func (s *TransactionService) Validate(req TransactionRequest) []ValidationError {
	return Validate(req, s.selection.CurrentAccount(), s.transactions(), s.clock.today(), s.limits)
}

// CreateTransaction validates req and, when it passes, appends the new record to the ledger.
// Rule failures come back in the result; the error is reserved for storage failures.
func (s *TransactionService) CreateTransaction(ctx context.Context, req TransactionRequest) (*CreateResult, error) {
	account := s.selection.CurrentAccount()
	today := s.clock.today()

	if errs := Validate(req, account, s.transactions(), today, s.limits); len(errs) > 0 {
		s.log.WithFields(logrus.Fields{
			"errorCount": len(errs),
			"firstCode":  errs[0].Code,
		}).Info("TransactionService.CreateTransaction.rejected")
		return &CreateResult{Success: false, Errors: errs}, nil
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	status := StatusCompleted
	if req.Date.After(today) {
		status = StatusScheduled
	}

	tx := Transaction{
		ID:          id,
		AccountID:   account.ID,
		Direction:   req.Direction,
		Category:    req.Category,
		Amount:      req.Amount,
		Currency:    account.Currency,
		Description: req.Description,
		Date:        req.Date,
		Status:      status,
		CreatedAt:   now,
		Reference:   referenceCode(req.Direction, now.UnixMilli()),
	}
	if err := s.ledger.Append(transactionToStorage(tx)); err != nil {
		return nil, fmt.Errorf("append transaction: %w", err)
	}

	s.mu.Lock()
	if status == StatusCompleted {
		s.undoable = &tx.ID
	} else {
		s.undoable = nil
	}
	s.mu.Unlock()

	if err := s.drafts.ClearDraft(ctx); err != nil {
		s.log.WithError(err).Warn("TransactionService.CreateTransaction.clearDraft")
	}

	s.log.WithFields(logrus.Fields{
		"transactionID": tx.ID.String(),
		"status":        tx.Status,
		"reference":     tx.Reference,
	}).Info("TransactionService.CreateTransaction.created")

	return &CreateResult{Success: true, Transaction: &tx}, nil
}

// CanUndo reports whether a transaction is waiting in the undo slot.
func (s *TransactionService) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.undoable != nil
}

// UndoLastTransaction removes the most recently created completed transaction, once.
// It returns false when there is nothing to undo.
func (s *TransactionService) UndoLastTransaction() bool {
	s.mu.Lock()
	id := s.undoable
	s.undoable = nil
	s.mu.Unlock()

	if id == nil {
		return false
	}
	if err := s.ledger.Remove(*id); err != nil {
		s.log.WithError(err).WithField("transactionID", id.String()).Warn("TransactionService.UndoLastTransaction.remove")
		return false
	}

	s.log.WithField("transactionID", id.String()).Info("TransactionService.UndoLastTransaction.undone")
	return true
}

// ProcessScheduledTransactions completes every scheduled transaction of the selected account whose
// date has arrived and returns how many changed. Rules are not re-run at maturation.
func (s *TransactionService) ProcessScheduledTransactions() int {
	account := s.selection.CurrentAccount()
	if account == nil {
		return 0
	}
	today := s.clock.today()

	processed := 0
	for _, tx := range s.transactions() {
		if tx.AccountID != account.ID || tx.Status != StatusScheduled || tx.Date.After(today) {
			continue
		}
		err := s.ledger.Update(tx.ID, ledger.TransactionUpdate{Status: omit.From(ledger.StatusCompleted)})
		if err != nil {
			s.log.WithError(err).WithField("transactionID", tx.ID.String()).Warn("TransactionService.ProcessScheduledTransactions.update")
			continue
		}
		processed++
	}

	if processed > 0 {
		s.log.WithField("processed", processed).Info("TransactionService.ProcessScheduledTransactions.matured")
	}
	return processed
}

// ListTransactions returns every transaction of accountID, newest first.
func (s *TransactionService) ListTransactions(accountID uuid.UUID) []Transaction {
	var out []Transaction
	for _, tx := range s.transactions() {
		if tx.AccountID == accountID {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ListTransactionsPage pages through ListTransactions. Without a cursor it starts at the newest
// record and locks MaxCreationTime to now, so later creations do not shift subsequent pages.
func (s *TransactionService) ListTransactionsPage(accountID uuid.UUID, cursor *TransactionCursor) ([]Transaction, *TransactionCursor) {
	if cursor == nil {
		cursor = &TransactionCursor{MaxCreationTime: s.clock.now()}
	}
	limit := cursor.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	var visible []Transaction
	for _, tx := range s.ListTransactions(accountID) {
		if !tx.CreatedAt.After(cursor.MaxCreationTime) {
			visible = append(visible, tx)
		}
	}

	start := min(cursor.Position, len(visible))
	end := min(start+limit, len(visible))
	page := visible[start:end]

	if end >= len(visible) {
		return page, nil
	}
	return page, &TransactionCursor{
		Position:        end,
		Limit:           limit,
		MaxCreationTime: cursor.MaxCreationTime,
	}
}

// DailyUsage reports today's completed activity for the selected account.
func (s *TransactionService) DailyUsage() (DailyUsage, bool) {
	account := s.selection.CurrentAccount()
	if account == nil {
		return DailyUsage{}, false
	}
	return dailyUsage(*account, s.transactions(), s.clock.today(), s.limits), true
}

func (s *TransactionService) transactions() []Transaction {
	return transactionsFromStorage(s.ledger.List())
}

// referenceCode builds CR/DR followed by the last eight digits of the creation time in milliseconds.
func referenceCode(direction Direction, unixMilli int64) string {
	prefix := "CR"
	if direction == DirectionDebit {
		prefix = "DR"
	}
	return fmt.Sprintf("%s%08d", prefix, unixMilli%100_000_000)
}
