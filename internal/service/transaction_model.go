package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/calendar"
	"github.com/carson-networks/banking-demo/internal/storage/ledger"
)

type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

func (d Direction) IsValid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// Status is the lifecycle state of a transaction. StatusDraft and StatusReversed are
// reserved: no engine flow produces them.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusScheduled Status = "scheduled"
	StatusDraft     Status = "draft"
	StatusReversed  Status = "reversed"
)

type Category string

const (
	CategorySalary     Category = "salary"
	CategoryTransfer   Category = "transfer"
	CategoryOther      Category = "other"
	CategoryIncome     Category = "income"
	CategoryRefund     Category = "refund"
	CategoryDeposit    Category = "deposit"
	CategoryFees       Category = "fees"
	CategoryWithdrawal Category = "withdrawal"
	CategoryPayment    Category = "payment"
)

var categories = []Category{
	CategorySalary, CategoryTransfer, CategoryOther,
	CategoryIncome, CategoryRefund, CategoryDeposit,
	CategoryFees, CategoryWithdrawal, CategoryPayment,
}

var (
	creditOnlyCategories = map[Category]bool{CategoryIncome: true, CategoryRefund: true, CategoryDeposit: true}
	debitOnlyCategories  = map[Category]bool{CategoryFees: true, CategoryWithdrawal: true, CategoryPayment: true}
)

// Categories lists every known category.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) CreditOnly() bool { return creditOnlyCategories[c] }

func (c Category) DebitOnly() bool { return debitOnlyCategories[c] }

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Direction   Direction
	Category    Category
	Amount      decimal.Decimal
	Currency    Currency
	Description string
	Date        calendar.Date
	Status      Status
	CreatedAt   time.Time
	Reference   string
}

// Signed returns the amount as it applies to a balance: positive for credits, negative for debits
// and zero for anything else.
func (t Transaction) Signed() decimal.Decimal {
	switch t.Direction {
	case DirectionCredit:
		return t.Amount
	case DirectionDebit:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// TransactionRequest is the input for validating and creating a transaction.
type TransactionRequest struct {
	Direction   Direction
	Category    Category
	Amount      decimal.Decimal
	Description string
	Date        calendar.Date
}

// CreateResult reports the outcome of CreateTransaction. Errors is set only when Success is false.
type CreateResult struct {
	Success     bool
	Transaction *Transaction
	Errors      []ValidationError
}

const defaultPageSize = 20

// TransactionCursor marks a position in a newest-first listing.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// DailyUsage aggregates an account's completed activity for one day.
type DailyUsage struct {
	Date                  calendar.Date
	DebitTotal            decimal.Decimal
	Count                 int
	RemainingDebit        decimal.Decimal
	RemainingTransactions int
}

func transactionFromStorage(row ledger.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Direction:   Direction(row.Direction),
		Category:    Category(row.Category),
		Amount:      row.Amount,
		Currency:    Currency(row.Currency),
		Description: row.Description,
		Date:        row.Date,
		Status:      Status(row.Status),
		CreatedAt:   row.CreatedAt,
		Reference:   row.Reference,
	}
}

func transactionToStorage(tx Transaction) ledger.Transaction {
	return ledger.Transaction{
		ID:          tx.ID,
		AccountID:   tx.AccountID,
		Direction:   ledger.Direction(tx.Direction),
		Category:    string(tx.Category),
		Amount:      tx.Amount,
		Currency:    string(tx.Currency),
		Description: tx.Description,
		Date:        tx.Date,
		Status:      ledger.Status(tx.Status),
		CreatedAt:   tx.CreatedAt,
		Reference:   tx.Reference,
	}
}

func transactionsFromStorage(rows []ledger.Transaction) []Transaction {
	out := make([]Transaction, len(rows))
	for i, row := range rows {
		out[i] = transactionFromStorage(row)
	}
	return out
}
