package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/banking-demo/internal/service"
)

type CreateAccount struct {
	Account service.Account

	CreatedID uuid.UUID
}

func (c *CreateAccount) Perform(_ context.Context, svc *service.Service) error {
	id, err := svc.Account.CreateAccount(c.Account)
	if err != nil {
		return err
	}
	c.CreatedID = id
	return nil
}

type UpdateAccountStatus struct {
	AccountID uuid.UUID
	Status    service.AccountStatus
}

func (u *UpdateAccountStatus) Perform(_ context.Context, svc *service.Service) error {
	return svc.Account.UpdateStatus(u.AccountID, u.Status)
}

// SelectSession switches the active customer and, when AccountID is set, the active account.
type SelectSession struct {
	CustomerID uuid.UUID
	AccountID  uuid.UUID
}

func (s *SelectSession) Perform(_ context.Context, svc *service.Service) error {
	if s.AccountID == uuid.Nil {
		svc.Selection.SelectCustomer(s.CustomerID)
		return nil
	}
	return svc.Selection.SelectAccount(s.AccountID)
}
