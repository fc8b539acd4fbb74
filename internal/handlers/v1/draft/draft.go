package draft

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/calendar"
	"github.com/carson-networks/banking-demo/internal/operator/actions"
	"github.com/carson-networks/banking-demo/internal/service"
)

// Draft is a partially filled transaction form. Every field is optional.
type Draft struct {
	Direction   string `json:"direction,omitempty" enum:"credit,debit" doc:"credit or debit"`
	Category    string `json:"category,omitempty" doc:"Transaction category"`
	Amount      string `json:"amount,omitempty" doc:"Decimal amount as typed so far"`
	Description string `json:"description,omitempty" doc:"Free text description"`
	Date        string `json:"date,omitempty" format:"date" doc:"Transaction date, YYYY-MM-DD"`
	SavedAt     string `json:"savedAt,omitempty" readOnly:"true" doc:"RFC3339 time the draft was saved"`
}

func draftToService(d Draft) (service.DraftTransaction, error) {
	var out service.DraftTransaction
	if d.Direction != "" {
		direction := service.Direction(d.Direction)
		out.Direction = &direction
	}
	if d.Category != "" {
		category := service.Category(d.Category)
		out.Category = &category
	}
	if d.Amount != "" {
		amount, err := decimal.NewFromString(d.Amount)
		if err != nil {
			return out, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		out.Amount = &amount
	}
	if d.Description != "" {
		description := d.Description
		out.Description = &description
	}
	if d.Date != "" {
		date, err := calendar.Parse(d.Date)
		if err != nil {
			return out, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		out.Date = &date
	}
	return out, nil
}

func draftFromService(d service.DraftTransaction) Draft {
	var out Draft
	if d.Direction != nil {
		out.Direction = string(*d.Direction)
	}
	if d.Category != nil {
		out.Category = string(*d.Category)
	}
	if d.Amount != nil {
		out.Amount = d.Amount.String()
	}
	if d.Description != nil {
		out.Description = *d.Description
	}
	if d.Date != nil {
		out.Date = d.Date.String()
	}
	out.SavedAt = d.SavedAt.Format(time.RFC3339)
	return out
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

type draftReader interface {
	GetDraft(ctx context.Context) (*service.DraftTransaction, error)
}

type DraftInput struct {
	Body Draft
}

type DraftOutput struct {
	Body Draft
}

// Handler serves GET, PUT and DELETE /v1/draft.
type Handler struct {
	Operator actionProcessor
	Drafts   draftReader
}

func NewHandler(op actionProcessor, drafts draftReader) *Handler {
	return &Handler{Operator: op, Drafts: drafts}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-draft",
		Method:      http.MethodGet,
		Path:        "/v1/draft",
		Summary:     "Get the saved draft",
		Tags:        []string{"Drafts"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "save-draft",
		Method:      http.MethodPut,
		Path:        "/v1/draft",
		Summary:     "Save the draft",
		Description: "Replaces the single saved draft. Submitting a transaction clears it.",
		Tags:        []string{"Drafts"},
	}, h.save)

	huma.Register(api, huma.Operation{
		OperationID:   "clear-draft",
		Method:        http.MethodDelete,
		Path:          "/v1/draft",
		Summary:       "Discard the draft",
		Tags:          []string{"Drafts"},
		DefaultStatus: http.StatusNoContent,
	}, h.clear)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*DraftOutput, error) {
	d, err := h.Drafts.GetDraft(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read draft", err)
	}
	if d == nil {
		return nil, huma.Error404NotFound("no draft saved")
	}
	return &DraftOutput{Body: draftFromService(*d)}, nil
}

func (h *Handler) save(ctx context.Context, input *DraftInput) (*DraftOutput, error) {
	d, err := draftToService(input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.SaveDraft{Draft: d}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to save draft", err)
	}
	return &DraftOutput{Body: draftFromService(action.Saved)}, nil
}

func (h *Handler) clear(ctx context.Context, _ *struct{}) (*struct{}, error) {
	if err := h.Operator.Process(ctx, &actions.ClearDraft{}); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to clear draft", err)
	}
	return nil, nil
}
