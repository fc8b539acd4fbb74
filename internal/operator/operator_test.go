package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/banking-demo/internal/calendar"
	"github.com/carson-networks/banking-demo/internal/operator/actions"
	"github.com/carson-networks/banking-demo/internal/service"
	"github.com/carson-networks/banking-demo/internal/storage"
)

type failingAction struct{}

func (failingAction) Perform(context.Context, *service.Service) error {
	return errors.New("nope")
}

type panickingAction struct{}

func (panickingAction) Perform(context.Context, *service.Service) error {
	panic("bad state")
}

func newTestDelegator(t *testing.T, now *time.Time) (*OperatorDelegator, *service.Service) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	svc := service.NewService(storage.NewMemoryStorage(), service.Options{
		Now:    func() time.Time { return *now },
		Logger: logger,
	})
	d := NewOperatorDelegator(svc, 1)
	d.Start()
	t.Cleanup(d.Stop)
	return d, svc
}

func openAccount(t *testing.T, d *OperatorDelegator, opening calendar.Date) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	create := &actions.CreateAccount{Account: service.Account{
		CustomerID:     uuid.Must(uuid.NewV4()),
		Name:           "Everyday",
		Currency:       service.CurrencyUSD,
		OpeningDate:    opening,
		OpeningBalance: decimal.RequireFromString("100"),
	}}
	require.NoError(t, d.Process(ctx, create))
	require.NoError(t, d.Process(ctx, &actions.SelectSession{AccountID: create.CreatedID}))
	return create.CreatedID
}

// -- OperatorDelegator tests --

func TestProcess_ActionResults(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	d, svc := newTestDelegator(t, &now)
	ctx := context.Background()
	accountID := openAccount(t, d, calendar.NewDate(2025, time.June, 1))

	create := &actions.CreateTransaction{Request: service.TransactionRequest{
		Direction: service.DirectionCredit,
		Category:  service.CategoryDeposit,
		Amount:    decimal.RequireFromString("50"),
		Date:      calendar.NewDate(2025, time.June, 15),
	}}
	require.NoError(t, d.Process(ctx, create))
	require.NotNil(t, create.Result)
	assert.True(t, create.Result.Success)

	balance, err := svc.Account.Balance(accountID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("150").Equal(balance))

	undo := &actions.UndoLastTransaction{}
	require.NoError(t, d.Process(ctx, undo))
	assert.True(t, undo.Undone)

	undo = &actions.UndoLastTransaction{}
	require.NoError(t, d.Process(ctx, undo))
	assert.False(t, undo.Undone)
}

func TestProcess_StatusAndDraft(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	d, svc := newTestDelegator(t, &now)
	ctx := context.Background()
	accountID := openAccount(t, d, calendar.NewDate(2025, time.June, 1))

	require.NoError(t, d.Process(ctx, &actions.UpdateAccountStatus{AccountID: accountID, Status: service.AccountStatusFrozen}))
	a, err := svc.Account.GetAccount(accountID)
	require.NoError(t, err)
	assert.Equal(t, service.AccountStatusFrozen, a.Status)

	description := "later"
	save := &actions.SaveDraft{Draft: service.DraftTransaction{Description: &description}}
	require.NoError(t, d.Process(ctx, save))
	assert.Equal(t, now, save.Saved.SavedAt)
	assert.True(t, svc.Draft.HasDraft())

	require.NoError(t, d.Process(ctx, &actions.ClearDraft{}))
	assert.False(t, svc.Draft.HasDraft())
}

func TestProcess_Errors(t *testing.T) {
	now := time.Now()
	d, _ := newTestDelegator(t, &now)
	ctx := context.Background()

	assert.EqualError(t, d.Process(ctx, failingAction{}), "nope")
	assert.ErrorContains(t, d.Process(ctx, panickingAction{}), "bad state")
	// The worker survives the panic.
	assert.EqualError(t, d.Process(ctx, failingAction{}), "nope")
}

func TestProcess_CancelledContext(t *testing.T) {
	now := time.Now()
	d, _ := newTestDelegator(t, &now)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, d.Process(ctx, &actions.ProcessScheduled{}), context.Canceled)
}

func TestProcess_AfterStop(t *testing.T) {
	now := time.Now()
	d, _ := newTestDelegator(t, &now)
	d.Stop()

	assert.ErrorIs(t, d.Process(context.Background(), &actions.ProcessScheduled{}), ErrStopped)
}

func TestProcess_SerializesConcurrentCreates(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	d, svc := newTestDelegator(t, &now)
	accountID := openAccount(t, d, calendar.NewDate(2025, time.June, 1))

	var wg sync.WaitGroup
	results := make([]*actions.CreateTransaction, 20)
	for i := range results {
		results[i] = &actions.CreateTransaction{Request: service.TransactionRequest{
			Direction: service.DirectionCredit,
			Category:  service.CategoryIncome,
			Amount:    decimal.RequireFromString("1"),
			Date:      calendar.NewDate(2025, time.June, 15),
		}}
		wg.Add(1)
		go func(action *actions.CreateTransaction) {
			defer wg.Done()
			assert.NoError(t, d.Process(context.Background(), action))
		}(results[i])
	}
	wg.Wait()

	accepted := 0
	for _, r := range results {
		if r.Result.Success {
			accepted++
		}
	}
	// The per-day cap holds because every create sees the previous one.
	assert.Equal(t, 10, accepted)
	assert.Len(t, svc.Transaction.ListTransactions(accountID), 10)
}

// -- MaturationScheduler tests --

func TestMaturationScheduler_Run(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	d, svc := newTestDelegator(t, &now)
	accountID := openAccount(t, d, calendar.NewDate(2025, time.June, 1))

	create := &actions.CreateTransaction{Request: service.TransactionRequest{
		Direction: service.DirectionCredit,
		Category:  service.CategoryDeposit,
		Amount:    decimal.RequireFromString("25"),
		Date:      calendar.NewDate(2025, time.June, 16),
	}}
	require.NoError(t, d.Process(context.Background(), create))
	require.Equal(t, service.StatusScheduled, create.Result.Transaction.Status)

	// Handed to the worker through the queue, so the write is visible to it.
	now = now.AddDate(0, 0, 1)

	logger, hook := test.NewNullLogger()
	scheduler := NewMaturationScheduler(d, 10*time.Millisecond, logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- scheduler.Run(ctx) }()

	assert.Eventually(t, func() bool {
		txs := svc.Transaction.ListTransactions(accountID)
		return len(txs) == 1 && txs[0].Status == service.StatusCompleted
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	var matured bool
	for _, entry := range hook.AllEntries() {
		matured = matured || entry.Message == "MaturationScheduler.tick.matured"
	}
	assert.True(t, matured)
}
