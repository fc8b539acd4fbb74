package actions

import (
	"context"

	"github.com/carson-networks/banking-demo/internal/service"
)

type SaveDraft struct {
	Draft service.DraftTransaction

	Saved service.DraftTransaction
}

func (s *SaveDraft) Perform(ctx context.Context, svc *service.Service) error {
	saved, err := svc.Draft.SaveDraft(ctx, s.Draft)
	if err != nil {
		return err
	}
	s.Saved = saved
	return nil
}

type ClearDraft struct{}

func (c *ClearDraft) Perform(ctx context.Context, svc *service.Service) error {
	return svc.Draft.ClearDraft(ctx)
}
