package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/banking-demo/internal/calendar"
	"github.com/carson-networks/banking-demo/internal/storage"
)

// Options tunes the engine. Zero values fall back to DefaultLimits, UTC, time.Now and the standard logger.
type Options struct {
	Limits   Limits
	Location *time.Location
	Now      func() time.Time
	Logger   logrus.FieldLogger
}

// Service holds all business logic services.
type Service struct {
	Selection   *Selection
	Account     *AccountService
	Transaction *TransactionService
	Draft       *DraftService
	Analytics   *AnalyticsService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, opts Options) *Service {
	if opts.Limits == (Limits{}) {
		opts.Limits = DefaultLimits()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	c := clock{now: opts.Now, loc: opts.Location}

	selection := NewSelection(store.Accounts)
	drafts := NewDraftService(store.KV, c)
	return &Service{
		Selection:   selection,
		Account:     NewAccountService(store),
		Transaction: NewTransactionService(store, selection, drafts, opts.Limits, c, opts.Logger),
		Draft:       drafts,
		Analytics:   NewAnalyticsService(store, selection, c, opts.Limits.AbnormalMultiplier),
	}
}

// Today is the current date in the engine's time zone.
func (s *Service) Today() calendar.Date {
	return s.Transaction.clock.today()
}
