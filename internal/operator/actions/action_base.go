package actions

import (
	"context"

	"github.com/carson-networks/banking-demo/internal/service"
)

// IAction is one engine mutation. Results are written back onto the action itself and are
// safe to read once OperatorDelegator.Process returns.
type IAction interface {
	Perform(ctx context.Context, svc *service.Service) error
}
