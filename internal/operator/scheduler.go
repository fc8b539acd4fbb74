package operator

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/banking-demo/internal/operator/actions"
)

// MaturationScheduler periodically completes scheduled transactions whose date has arrived.
type MaturationScheduler struct {
	delegator *OperatorDelegator
	interval  time.Duration
	log       logrus.FieldLogger
}

func NewMaturationScheduler(delegator *OperatorDelegator, interval time.Duration, log logrus.FieldLogger) *MaturationScheduler {
	return &MaturationScheduler{
		delegator: delegator,
		interval:  interval,
		log:       log,
	}
}

// Run ticks until ctx is cancelled. It processes once immediately so a restart catches up.
func (s *MaturationScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.tick(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *MaturationScheduler) tick(ctx context.Context) {
	action := &actions.ProcessScheduled{}
	if err := s.delegator.Process(ctx, action); err != nil {
		if ctx.Err() == nil {
			s.log.WithError(err).Error("MaturationScheduler.tick.process")
		}
		return
	}
	if action.Processed > 0 {
		s.log.WithField("processed", action.Processed).Info("MaturationScheduler.tick.matured")
	}
}
