package store

import (
	"context"
	"errors"
	"sync"
)

// Memory stores records in a map protected by a mutex.
type Memory struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string // insertion order for List
}

func NewMemory() *Memory {
	return &Memory{records: make(map[string]*Record)}
}

func (m *Memory) Save(_ context.Context, r *Record) error {
	if r == nil || r.ID == "" {
		return errors.New("record without id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[r.ID]; !exists {
		m.order = append(m.order, r.ID)
	}
	cp := *r
	m.records[r.ID] = &cp
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *Memory) List(_ context.Context) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Record, 0, len(m.order))
	for _, id := range m.order {
		cp := *m.records[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	delete(m.records, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
