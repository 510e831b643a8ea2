// Package journal stores the append-only record of executed plans, keyed
// by single-use undo token.
package journal

import (
	"fmt"
	"sync"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
)

// Store is the journal store contract. FindByToken returns nil (no error)
// when the token is unknown; the executor maps that to the terminal
// not-found case.
type Store interface {
	Append(entry models.JournalEntry) error
	FindByToken(token string) (*models.JournalEntry, error)
	DeleteByToken(token string) error
}

// Memory is a mutex-guarded in-memory journal keyed by undo token.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]models.JournalEntry
}

// NewMemory returns an empty journal.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]models.JournalEntry)}
}

// Append stores one entry. A duplicate token is rejected: tokens are never
// reused across executions.
func (m *Memory) Append(entry models.JournalEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[entry.UndoToken]; exists {
		return fmt.Errorf("journal token %q already exists", entry.UndoToken)
	}
	m.entries[entry.UndoToken] = entry
	return nil
}

// FindByToken looks an entry up by token.
func (m *Memory) FindByToken(token string) (*models.JournalEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[token]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// DeleteByToken removes an entry; deleting an absent token is a no-op.
func (m *Memory) DeleteByToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, token)
	return nil
}

// Len reports the number of live entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
