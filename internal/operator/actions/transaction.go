package actions

import (
	"context"

	"github.com/carson-networks/banking-demo/internal/service"
)

type CreateTransaction struct {
	Request service.TransactionRequest

	Result *service.CreateResult
}

func (t *CreateTransaction) Perform(ctx context.Context, svc *service.Service) error {
	result, err := svc.Transaction.CreateTransaction(ctx, t.Request)
	if err != nil {
		return err
	}
	t.Result = result
	return nil
}

type UndoLastTransaction struct {
	Undone bool
}

func (u *UndoLastTransaction) Perform(_ context.Context, svc *service.Service) error {
	u.Undone = svc.Transaction.UndoLastTransaction()
	return nil
}

type ProcessScheduled struct {
	Processed int
}

func (p *ProcessScheduled) Perform(_ context.Context, svc *service.Service) error {
	p.Processed = svc.Transaction.ProcessScheduledTransactions()
	return nil
}
