// Package ledger holds the in-memory, observable collection of transaction records.
// It performs no validation of its own.
package ledger

import (
	"errors"
	"sync"

	"github.com/gofrs/uuid/v5"
)

var (
	ErrNotFound    = errors.New("transaction not found")
	ErrDuplicateID = errors.New("transaction id already exists")
)

// Store is the ledger. Records keep insertion order.
type Store struct {
	mu          sync.RWMutex
	records     []Transaction
	version     uint64
	subscribers map[int]func(Event)
	nextSubID   int
}

// NewStore creates an empty ledger.
func NewStore() *Store {
	return &Store{subscribers: make(map[int]func(Event))}
}

// List returns a copy of every record in insertion order.
func (s *Store) List() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Transaction, len(s.records))
	copy(out, s.records)
	return out
}

// Version increases by one on every mutation.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) Append(tx Transaction) error {
	s.mu.Lock()
	if s.indexOf(tx.ID) >= 0 {
		s.mu.Unlock()
		return ErrDuplicateID
	}
	s.records = append(s.records, tx)
	event := s.bump(EventAppended, tx)
	s.mu.Unlock()

	s.notify(event)
	return nil
}

func (s *Store) Update(id uuid.UUID, update TransactionUpdate) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	if status, ok := update.Status.Get(); ok {
		s.records[i].Status = status
	}
	if description, ok := update.Description.Get(); ok {
		s.records[i].Description = description
	}
	event := s.bump(EventUpdated, s.records[i])
	s.mu.Unlock()

	s.notify(event)
	return nil
}

func (s *Store) Remove(id uuid.UUID) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	removed := s.records[i]
	s.records = append(s.records[:i], s.records[i+1:]...)
	event := s.bump(EventRemoved, removed)
	s.mu.Unlock()

	s.notify(event)
	return nil
}

// Subscribe registers fn to receive every subsequent mutation. The returned func unregisters it.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) indexOf(id uuid.UUID) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

// bump must be called with mu held.
func (s *Store) bump(kind EventKind, tx Transaction) Event {
	s.version++
	return Event{Kind: kind, Transaction: tx, Version: s.version}
}

func (s *Store) notify(event Event) {
	s.mu.RLock()
	fns := make([]func(Event), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(event)
	}
}
