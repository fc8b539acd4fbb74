package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/carson-networks/banking-demo/internal/storage/kv"
)

// DraftKey is the fixed key the single draft is stored under.
const DraftKey = "transaction_draft"

// DraftService keeps at most one unsubmitted transaction in the key-value store.
type DraftService struct {
	store kv.IStore
	clock clock

	mu       sync.RWMutex
	hasDraft bool
}

func NewDraftService(store kv.IStore, c clock) *DraftService {
	return &DraftService{store: store, clock: c}
}

// Init syncs the has-draft flag with whatever the store already holds.
func (s *DraftService) Init(ctx context.Context) error {
	_, ok, err := s.store.Get(ctx, DraftKey)
	if err != nil {
		return fmt.Errorf("read draft: %w", err)
	}
	s.setHasDraft(ok)
	return nil
}

// SaveDraft stamps the save time and replaces any existing draft.
func (s *DraftService) SaveDraft(ctx context.Context, draft DraftTransaction) (DraftTransaction, error) {
	draft.SavedAt = s.clock.now()
	raw, err := json.Marshal(draft)
	if err != nil {
		return DraftTransaction{}, fmt.Errorf("encode draft: %w", err)
	}
	if err := s.store.Set(ctx, DraftKey, raw); err != nil {
		return DraftTransaction{}, fmt.Errorf("save draft: %w", err)
	}
	s.setHasDraft(true)
	return draft, nil
}

// GetDraft returns nil when no draft is stored.
func (s *DraftService) GetDraft(ctx context.Context) (*DraftTransaction, error) {
	raw, ok, err := s.store.Get(ctx, DraftKey)
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var draft DraftTransaction
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &draft, nil
}

func (s *DraftService) ClearDraft(ctx context.Context) error {
	if err := s.store.Remove(ctx, DraftKey); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	s.setHasDraft(false)
	return nil
}

func (s *DraftService) HasDraft() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasDraft
}

func (s *DraftService) setHasDraft(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasDraft = v
}
