package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/banking-demo/internal/service"
)

type MonthlySpending struct {
	Month string `json:"month" doc:"Three letter month name"`
	Year  int    `json:"year"`
	Total string `json:"total" doc:"Completed debits in the month"`
	Count int    `json:"count"`
}

type CategorySpending struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
}

// FlaggedTransaction is a debit above the abnormal spending threshold.
type FlaggedTransaction struct {
	ID        string `json:"id"`
	AccountID string `json:"accountID"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
	Reference string `json:"reference"`
}

type AbnormalSpending struct {
	Detected     bool                 `json:"detected"`
	Transactions []FlaggedTransaction `json:"transactions"`
	Average      string               `json:"average"`
	Threshold    string               `json:"threshold"`
	Message      string               `json:"message" doc:"Empty when there are fewer than three debits"`
}

type MonthOverMonth struct {
	Current   string `json:"current"`
	Previous  string `json:"previous"`
	Change    string `json:"change"`
	Percent   string `json:"percent" doc:"Change relative to the previous month, 0 when there was no prior spend"`
	Direction string `json:"direction" enum:"up,down,stable"`
}

type Summary struct {
	Trend                  []MonthlySpending  `json:"trend" doc:"Debit totals for the last three calendar months, oldest first"`
	AverageTransactionSize string             `json:"averageTransactionSize"`
	AverageSpending        string             `json:"averageSpending"`
	TotalSpending          string             `json:"totalSpending"`
	TotalCredits           string             `json:"totalCredits"`
	Abnormal               AbnormalSpending   `json:"abnormal"`
	ByCategory             []CategorySpending `json:"byCategory" doc:"Debit totals per category, largest first"`
	MonthOverMonth         MonthOverMonth     `json:"monthOverMonth"`
}

func summaryFromService(s service.AnalyticsSummary) Summary {
	out := Summary{
		Trend:                  make([]MonthlySpending, 0, len(s.Trend)),
		AverageTransactionSize: s.AverageTransactionSize.StringFixed(2),
		AverageSpending:        s.AverageSpending.StringFixed(2),
		TotalSpending:          s.TotalSpending.StringFixed(2),
		TotalCredits:           s.TotalCredits.StringFixed(2),
		Abnormal: AbnormalSpending{
			Detected:     s.Abnormal.Detected,
			Transactions: make([]FlaggedTransaction, 0, len(s.Abnormal.Transactions)),
			Average:      s.Abnormal.Average.StringFixed(2),
			Threshold:    s.Abnormal.Threshold.StringFixed(2),
			Message:      s.Abnormal.Message,
		},
		ByCategory: make([]CategorySpending, 0, len(s.ByCategory)),
		MonthOverMonth: MonthOverMonth{
			Current:   s.MonthOverMonth.Current.StringFixed(2),
			Previous:  s.MonthOverMonth.Previous.StringFixed(2),
			Change:    s.MonthOverMonth.Change.StringFixed(2),
			Percent:   s.MonthOverMonth.Percent.StringFixed(2),
			Direction: string(s.MonthOverMonth.Direction),
		},
	}
	for _, m := range s.Trend {
		out.Trend = append(out.Trend, MonthlySpending{Month: m.Month, Year: m.Year, Total: m.Total.StringFixed(2), Count: m.Count})
	}
	for _, tx := range s.Abnormal.Transactions {
		out.Abnormal.Transactions = append(out.Abnormal.Transactions, FlaggedTransaction{
			ID:        tx.ID.String(),
			AccountID: tx.AccountID.String(),
			Category:  string(tx.Category),
			Amount:    tx.Amount.StringFixed(2),
			Date:      tx.Date.String(),
			Reference: tx.Reference,
		})
	}
	for _, c := range s.ByCategory {
		out.ByCategory = append(out.ByCategory, CategorySpending{Category: string(c.Category), Total: c.Total.StringFixed(2), Count: c.Count})
	}
	return out
}

type summaryReader interface {
	Summary() service.AnalyticsSummary
}

type SummaryOutput struct {
	Body Summary
}

// Handler serves GET /v1/analytics for the selected customer.
type Handler struct {
	Analytics summaryReader
}

func NewHandler(analytics summaryReader) *Handler {
	return &Handler{Analytics: analytics}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-analytics",
		Method:      http.MethodGet,
		Path:        "/v1/analytics",
		Summary:     "Spending analytics",
		Description: "Trend, averages, abnormal spending, category breakdown and month-over-month change across all accounts of the selected customer. Only completed transactions count.",
		Tags:        []string{"Analytics"},
	}, h.get)
}

func (h *Handler) get(_ context.Context, _ *struct{}) (*SummaryOutput, error) {
	return &SummaryOutput{Body: summaryFromService(h.Analytics.Summary())}, nil
}
