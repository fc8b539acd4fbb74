package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/calendar"
)

// DraftTransaction is a partially filled transaction. Every field is optional.
type DraftTransaction struct {
	Direction   *Direction       `json:"direction,omitempty"`
	Category    *Category        `json:"category,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *calendar.Date   `json:"date,omitempty"`
	SavedAt     time.Time        `json:"savedAt"`
}
