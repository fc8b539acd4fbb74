package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/banking-demo/internal/logging"
)

type engineState interface {
	CanUndo() bool
}

type draftState interface {
	HasDraft() bool
}

type statusResponse struct {
	Status   string `json:"status"`
	CanUndo  bool   `json:"canUndo"`
	HasDraft bool   `json:"hasDraft"`
}

type Handler struct {
	Engine engineState
	Drafts draftState
}

func NewHandler(engine engineState, drafts draftState) Handler {
	return Handler{Engine: engine, Drafts: drafts}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	resp := statusResponse{
		Status:   "ok",
		CanUndo:  h.Engine.CanUndo(),
		HasDraft: h.Drafts.HasDraft(),
	}
	logData.AddData("canUndo", resp.CanUndo)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp)
}
