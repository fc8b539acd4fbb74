package service

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/calendar"
)

const trendMonths = 3

// minAbnormalSample is the fewest debits the abnormal-spending check will judge.
const minAbnormalSample = 3

// ComputeAnalytics derives every figure from the completed transactions in txs. Other statuses are ignored.
func ComputeAnalytics(txs []Transaction, today calendar.Date, multiplier decimal.Decimal) AnalyticsSummary {
	var completed, debits []Transaction
	for _, tx := range txs {
		if tx.Status != StatusCompleted {
			continue
		}
		completed = append(completed, tx)
		if tx.Direction == DirectionDebit {
			debits = append(debits, tx)
		}
	}

	summary := AnalyticsSummary{
		Trend:                  spendingTrend(debits, today),
		AverageTransactionSize: mean(completed),
		AverageSpending:        mean(debits),
		TotalSpending:          total(debits),
		TotalCredits:           decimal.Zero,
		ByCategory:             spendingByCategory(debits),
	}
	for _, tx := range completed {
		if tx.Direction == DirectionCredit {
			summary.TotalCredits = summary.TotalCredits.Add(tx.Amount)
		}
	}
	summary.Abnormal = abnormalSpending(debits, summary.AverageSpending, multiplier)
	summary.MonthOverMonth = monthOverMonth(summary.Trend)
	return summary
}

func spendingTrend(debits []Transaction, today calendar.Date) []MonthlySpending {
	trend := make([]MonthlySpending, 0, trendMonths)
	for offset := -(trendMonths - 1); offset <= 0; offset++ {
		start := today.StartOfMonth(offset)
		entry := MonthlySpending{
			Month: start.Month().String()[:3],
			Year:  start.Year(),
			Total: decimal.Zero,
		}
		for _, tx := range debits {
			if tx.Date.SameMonth(start) {
				entry.Total = entry.Total.Add(tx.Amount)
				entry.Count++
			}
		}
		trend = append(trend, entry)
	}
	return trend
}

func spendingByCategory(debits []Transaction) []CategorySpending {
	index := map[Category]int{}
	var out []CategorySpending
	for _, tx := range debits {
		i, ok := index[tx.Category]
		if !ok {
			i = len(out)
			index[tx.Category] = i
			out = append(out, CategorySpending{Category: tx.Category, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(tx.Amount)
		out[i].Count++
	}
	// Stable so equal totals keep first-seen order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

func abnormalSpending(debits []Transaction, average, multiplier decimal.Decimal) AbnormalSpending {
	result := AbnormalSpending{Average: average, Threshold: decimal.Zero}
	if len(debits) < minAbnormalSample || !average.IsPositive() {
		return result
	}

	result.Threshold = average.Mul(multiplier)
	for _, tx := range debits {
		if tx.Amount.GreaterThan(result.Threshold) {
			result.Transactions = append(result.Transactions, tx)
		}
	}

	if len(result.Transactions) == 0 {
		result.Message = "No unusual spending detected"
		return result
	}
	result.Detected = true
	result.Message = fmt.Sprintf("%d unusual transaction(s) detected above %s",
		len(result.Transactions), result.Threshold.StringFixed(2))
	return result
}

func monthOverMonth(trend []MonthlySpending) MonthOverMonth {
	mom := MonthOverMonth{
		Current:   decimal.Zero,
		Previous:  decimal.Zero,
		Change:    decimal.Zero,
		Percent:   decimal.Zero,
		Direction: TrendStable,
	}
	if len(trend) < 2 {
		return mom
	}

	mom.Current = trend[len(trend)-1].Total
	mom.Previous = trend[len(trend)-2].Total
	mom.Change = mom.Current.Sub(mom.Previous)
	if !mom.Previous.IsZero() {
		mom.Percent = mom.Change.Div(mom.Previous).Mul(decimal.NewFromInt(100)).Round(2)
	}

	switch mom.Change.Sign() {
	case 1:
		mom.Direction = TrendUp
	case -1:
		mom.Direction = TrendDown
	}
	return mom
}

func mean(txs []Transaction) decimal.Decimal {
	if len(txs) == 0 {
		return decimal.Zero
	}
	return total(txs).Div(decimal.NewFromInt(int64(len(txs))))
}

func total(txs []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Amount)
	}
	return sum
}
