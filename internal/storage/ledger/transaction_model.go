package ledger

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/calendar"
)

type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusScheduled Status = "scheduled"
	StatusDraft     Status = "draft"
	StatusReversed  Status = "reversed"
)

// Transaction represents a ledger record.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Direction   Direction
	Category    string
	Amount      decimal.Decimal
	Currency    string
	Description string
	Date        calendar.Date
	Status      Status
	CreatedAt   time.Time
	Reference   string
}

// TransactionUpdate carries the fields to change on an existing record. Unset fields are left alone.
type TransactionUpdate struct {
	Status      omit.Val[Status]
	Description omit.Val[string]
}

// EventKind names the mutation that produced an Event.
type EventKind string

const (
	EventAppended EventKind = "appended"
	EventUpdated  EventKind = "updated"
	EventRemoved  EventKind = "removed"
)

// Event is delivered to subscribers after every mutation.
type Event struct {
	Kind        EventKind
	Transaction Transaction
	Version     uint64
}
