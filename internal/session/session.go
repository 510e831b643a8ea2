// Package session persists per-conversation dialog state between turns.
// The state must round-trip through plain data: the in-memory store keeps
// JSON bytes rather than live structs so no reference ever leaks across
// turns.
package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
)

// Store is the session store contract. Get on an unknown session returns
// the Init defaults; partial or unknown stored shapes are tolerated, with
// defaults filling missing fields.
type Store interface {
	Get(sessionID string) (models.DialogState, error)
	Put(sessionID string, state models.DialogState) error
}

// Memory is a mutex-guarded JSON-backed store.
type Memory struct {
	mu     sync.RWMutex
	states map[string][]byte
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{states: make(map[string][]byte)}
}

// Get loads and decodes a session's state.
func (m *Memory) Get(sessionID string) (models.DialogState, error) {
	m.mu.RLock()
	raw, ok := m.states[sessionID]
	m.mu.RUnlock()
	if !ok {
		return models.NewDialogState(), nil
	}
	var st models.DialogState
	if err := json.Unmarshal(raw, &st); err != nil {
		return models.NewDialogState(), fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return st.Normalize(), nil
}

// Put encodes and stores a session's state.
func (m *Memory) Put(sessionID string, state models.DialogState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sessionID, err)
	}
	m.mu.Lock()
	m.states[sessionID] = raw
	m.mu.Unlock()
	return nil
}
