package service

import (
	"github.com/shopspring/decimal"
)

// MonthlySpending is the debit activity of one calendar month.
type MonthlySpending struct {
	Month string
	Year  int
	Total decimal.Decimal
	Count int
}

type CategorySpending struct {
	Category Category
	Total    decimal.Decimal
	Count    int
}

// AbnormalSpending lists debits above Threshold. Message is empty when there were too few debits to judge.
type AbnormalSpending struct {
	Detected     bool
	Transactions []Transaction
	Average      decimal.Decimal
	Threshold    decimal.Decimal
	Message      string
}

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// MonthOverMonth compares the two most recent months of the spending trend.
type MonthOverMonth struct {
	Current   decimal.Decimal
	Previous  decimal.Decimal
	Change    decimal.Decimal
	Percent   decimal.Decimal
	Direction TrendDirection
}

// AnalyticsSummary is every analytics figure for one customer on one day.
type AnalyticsSummary struct {
	Trend                  []MonthlySpending
	AverageTransactionSize decimal.Decimal
	AverageSpending        decimal.Decimal
	TotalSpending          decimal.Decimal
	TotalCredits           decimal.Decimal
	Abnormal               AbnormalSpending
	ByCategory             []CategorySpending
	MonthOverMonth         MonthOverMonth
}
