package account

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/calendar"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusFrozen   Status = "frozen"
	StatusInactive Status = "inactive"
)

// Account represents an account record. Balance is not stored.
type Account struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	Name           string
	Currency       string
	Status         Status
	OpeningDate    calendar.Date
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	CustomerID     uuid.UUID
	Name           string
	Currency       string
	Status         Status
	OpeningDate    calendar.Date
	OpeningBalance decimal.Decimal
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	CustomerID *uuid.UUID
}
