package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/operator/actions"
	"github.com/carson-networks/banking-demo/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID             string `json:"id" doc:"Account UUID"`
	CustomerID     string `json:"customerID" doc:"Owning customer UUID"`
	Name           string `json:"name" doc:"Account name"`
	Currency       string `json:"currency" doc:"ISO currency code"`
	Status         string `json:"status" doc:"active, frozen or inactive"`
	OpeningDate    string `json:"openingDate" doc:"Opening date, YYYY-MM-DD"`
	OpeningBalance string `json:"openingBalance" doc:"Decimal balance on the opening date"`
	Balance        string `json:"balance,omitempty" doc:"Decimal balance derived from completed transactions"`
	CreatedAt      string `json:"createdAt" doc:"RFC3339 creation time"`
}

func accountFromService(a service.Account) Account {
	return Account{
		ID:             a.ID.String(),
		CustomerID:     a.CustomerID.String(),
		Name:           a.Name,
		Currency:       string(a.Currency),
		Status:         string(a.Status),
		OpeningDate:    a.OpeningDate.String(),
		OpeningBalance: a.OpeningBalance.StringFixed(2),
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}

// actionProcessor queues engine mutations.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// accountReader is the read side of the account service.
type accountReader interface {
	GetAccount(id uuid.UUID) (*service.Account, error)
	ListAccounts(customerID uuid.UUID) []service.Account
	Balance(id uuid.UUID) (decimal.Decimal, error)
}
