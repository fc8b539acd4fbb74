// Package handlertest wires a real in-memory engine behind a humatest API for handler tests.
package handlertest

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/banking-demo/internal/calendar"
	"github.com/carson-networks/banking-demo/internal/operator"
	"github.com/carson-networks/banking-demo/internal/operator/actions"
	"github.com/carson-networks/banking-demo/internal/service"
	"github.com/carson-networks/banking-demo/internal/storage"
)

// Now is the fixed instant every Env starts at.
var Now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// Today is the calendar date of Now.
var Today = calendar.NewDate(2025, time.June, 15)

type Env struct {
	API      humatest.TestAPI
	Service  *service.Service
	Storage  *storage.Storage
	Operator *operator.OperatorDelegator

	now *time.Time
}

// New starts a single-worker delegator over a fresh in-memory engine and stops it when t ends.
func New(t *testing.T) *Env {
	t.Helper()
	now := Now
	logger, _ := test.NewNullLogger()

	store := storage.NewMemoryStorage()
	svc := service.NewService(store, service.Options{
		Now:    func() time.Time { return now },
		Logger: logger,
	})
	op := operator.NewOperatorDelegator(svc, 1)
	op.Start()
	t.Cleanup(op.Stop)

	_, api := humatest.New(t)
	return &Env{API: api, Service: svc, Storage: store, Operator: op, now: &now}
}

// SetNow moves the engine clock. Call it only between requests.
func (e *Env) SetNow(t time.Time) {
	*e.now = t
}

// OpenAccount creates an account for a new customer and selects it.
func (e *Env) OpenAccount(t *testing.T, opening calendar.Date, balance string) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	create := &actions.CreateAccount{Account: service.Account{
		CustomerID:     uuid.Must(uuid.NewV4()),
		Name:           "Everyday",
		Currency:       service.CurrencyUSD,
		OpeningDate:    opening,
		OpeningBalance: decimal.RequireFromString(balance),
	}}
	require.NoError(t, e.Operator.Process(ctx, create))
	require.NoError(t, e.Operator.Process(ctx, &actions.SelectSession{AccountID: create.CreatedID}))
	return create.CreatedID
}

// Create submits a transaction through the operator and fails the test if it is rejected.
func (e *Env) Create(t *testing.T, direction service.Direction, category service.Category, amount string, date calendar.Date) service.Transaction {
	t.Helper()
	action := &actions.CreateTransaction{Request: service.TransactionRequest{
		Direction: direction,
		Category:  category,
		Amount:    decimal.RequireFromString(amount),
		Date:      date,
	}}
	require.NoError(t, e.Operator.Process(context.Background(), action))
	require.True(t, action.Result.Success, "unexpected errors: %v", action.Result.Errors)
	return *action.Result.Transaction
}
