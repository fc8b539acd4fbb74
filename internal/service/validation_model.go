package service

import (
	"github.com/shopspring/decimal"
)

// ValidationCode identifies which business rule rejected a transaction.
type ValidationCode string

const (
	CodeNoAccount               ValidationCode = "NO_ACCOUNT"
	CodeAccountInactive         ValidationCode = "ACCOUNT_INACTIVE"
	CodeAccountFrozen           ValidationCode = "ACCOUNT_FROZEN"
	CodeInvalidAmount           ValidationCode = "INVALID_AMOUNT"
	CodeDateBeforeOpening       ValidationCode = "DATE_BEFORE_OPENING"
	CodeInvalidCategory         ValidationCode = "INVALID_CATEGORY"
	CodeDailyLimitExceeded      ValidationCode = "DAILY_LIMIT_EXCEEDED"
	CodeMaxTransactionsExceeded ValidationCode = "MAX_TRANSACTIONS_EXCEEDED"
)

// ValidationError is a rule failure with a display-ready message. Field names the input at
// fault, when there is one.
type ValidationError struct {
	Code    ValidationCode `json:"code"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// Limits are the configurable thresholds used by validation and analytics.
type Limits struct {
	DailyDebitLimit       decimal.Decimal
	MaxTransactionsPerDay int
	AbnormalMultiplier    decimal.Decimal
}

// DefaultLimits returns 20000 per day of debits, 10 transactions per day and a 1.5x abnormal multiplier.
func DefaultLimits() Limits {
	return Limits{
		DailyDebitLimit:       decimal.NewFromInt(20000),
		MaxTransactionsPerDay: 10,
		AbnormalMultiplier:    decimal.RequireFromString("1.5"),
	}
}
