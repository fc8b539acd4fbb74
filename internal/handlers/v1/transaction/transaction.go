package transaction

import (
	"context"
	"time"

	"github.com/carson-networks/banking-demo/internal/operator/actions"
	"github.com/carson-networks/banking-demo/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	AccountID   string `json:"accountID" doc:"Account UUID"`
	Direction   string `json:"direction" doc:"credit or debit"`
	Category    string `json:"category" doc:"Transaction category"`
	Amount      string `json:"amount" doc:"Decimal amount, always positive"`
	Currency    string `json:"currency" doc:"Currency inherited from the account"`
	Description string `json:"description" doc:"Free text description"`
	Date        string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	Status      string `json:"status" doc:"completed or scheduled"`
	Reference   string `json:"reference" doc:"Display reference, CR or DR followed by eight digits"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func transactionFromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		AccountID:   tx.AccountID.String(),
		Direction:   string(tx.Direction),
		Category:    string(tx.Category),
		Amount:      tx.Amount.StringFixed(2),
		Currency:    string(tx.Currency),
		Description: tx.Description,
		Date:        tx.Date.String(),
		Status:      string(tx.Status),
		Reference:   tx.Reference,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339Nano),
	}
}

// actionProcessor queues engine mutations.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
