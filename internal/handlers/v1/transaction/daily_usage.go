package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/banking-demo/internal/service"
)

type DailyUsageOutput struct {
	Body struct {
		Date                  string `json:"date" doc:"Today, YYYY-MM-DD"`
		DebitTotal            string `json:"debitTotal" doc:"Completed debits dated today"`
		Count                 int    `json:"count" doc:"Completed transactions dated today"`
		RemainingDebit        string `json:"remainingDebit" doc:"Debit allowance left today"`
		RemainingTransactions int    `json:"remainingTransactions" doc:"Transactions left today"`
	}
}

type usageReader interface {
	DailyUsage() (service.DailyUsage, bool)
}

// DailyUsageHandler handles GET /v1/transaction/daily-usage.
type DailyUsageHandler struct {
	TransactionService usageReader
}

func NewDailyUsageHandler(svc usageReader) *DailyUsageHandler {
	return &DailyUsageHandler{TransactionService: svc}
}

func (h *DailyUsageHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-daily-usage",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/daily-usage",
		Summary:     "Today's limits",
		Description: "Reports how much of the daily debit limit and transaction count the selected account has used.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DailyUsageHandler) handle(_ context.Context, _ *struct{}) (*DailyUsageOutput, error) {
	usage, ok := h.TransactionService.DailyUsage()
	if !ok {
		return nil, huma.Error409Conflict("no account selected")
	}

	out := &DailyUsageOutput{}
	out.Body.Date = usage.Date.String()
	out.Body.DebitTotal = usage.DebitTotal.StringFixed(2)
	out.Body.Count = usage.Count
	out.Body.RemainingDebit = usage.RemainingDebit.StringFixed(2)
	out.Body.RemainingTransactions = usage.RemainingTransactions
	return out, nil
}
