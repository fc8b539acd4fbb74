package service

import (
	"slices"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/storage"
	"github.com/carson-networks/banking-demo/internal/storage/account"
	"github.com/carson-networks/banking-demo/internal/storage/ledger"
)

// AnalyticsService reports spending figures for the selected customer across all of their accounts.
type AnalyticsService struct {
	ledger     *ledger.Store
	accounts   *account.Directory
	selection  *Selection
	clock      clock
	multiplier decimal.Decimal

	mu     sync.Mutex
	memo   *AnalyticsSummary
	memoOn analyticsKey
}

type analyticsKey struct {
	version  uint64
	customer uuid.UUID
	today    string
}

func NewAnalyticsService(store *storage.Storage, selection *Selection, c clock, multiplier decimal.Decimal) *AnalyticsService {
	return &AnalyticsService{
		ledger:     store.Ledger,
		accounts:   store.Accounts,
		selection:  selection,
		clock:      c,
		multiplier: multiplier,
	}
}

// Summary computes every figure at once. The result is reused until the ledger changes,
// another customer is selected or the day rolls over.
func (s *AnalyticsService) Summary() AnalyticsSummary {
	customer := s.selection.CurrentCustomer()
	today := s.clock.today()
	key := analyticsKey{version: s.ledger.Version(), customer: customer, today: today.String()}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.memo == nil || s.memoOn != key {
		summary := ComputeAnalytics(s.customerTransactions(customer), today, s.multiplier)
		s.memo = &summary
		s.memoOn = key
	}
	return s.memo.clone()
}

func (s *AnalyticsService) SpendingTrend() []MonthlySpending {
	return s.Summary().Trend
}

func (s *AnalyticsService) AverageTransactionSize() decimal.Decimal {
	return s.Summary().AverageTransactionSize
}

func (s *AnalyticsService) AverageSpending() decimal.Decimal {
	return s.Summary().AverageSpending
}

func (s *AnalyticsService) TotalSpending() decimal.Decimal {
	return s.Summary().TotalSpending
}

func (s *AnalyticsService) TotalCredits() decimal.Decimal {
	return s.Summary().TotalCredits
}

func (s *AnalyticsService) AbnormalSpending() AbnormalSpending {
	return s.Summary().Abnormal
}

func (s *AnalyticsService) SpendingByCategory() []CategorySpending {
	return s.Summary().ByCategory
}

func (s *AnalyticsService) MonthOverMonth() MonthOverMonth {
	return s.Summary().MonthOverMonth
}

func (s *AnalyticsService) customerTransactions(customer uuid.UUID) []Transaction {
	if customer == uuid.Nil {
		return nil
	}
	owned := map[uuid.UUID]bool{}
	for _, a := range s.accounts.List(&account.AccountFilter{CustomerID: &customer}) {
		owned[a.ID] = true
	}

	var out []Transaction
	for _, row := range s.ledger.List() {
		if owned[row.AccountID] {
			out = append(out, transactionFromStorage(row))
		}
	}
	return out
}

// clone copies every slice so callers cannot write through to the memo.
func (a AnalyticsSummary) clone() AnalyticsSummary {
	a.Trend = slices.Clone(a.Trend)
	a.ByCategory = slices.Clone(a.ByCategory)
	a.Abnormal.Transactions = slices.Clone(a.Abnormal.Transactions)
	return a
}
