package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
)

type memStore struct {
	mu   sync.Mutex
	docs map[string][]byte
	fail error
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string][]byte)}
}

func (s *memStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, port.ErrNotFound
	}
	return append([]byte{}, doc...), nil
}

func (s *memStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.docs[key] = append([]byte{}, value...)
	return nil
}

func (s *memStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}

func (s *memStore) get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[key]
	return doc, ok
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []port.ChangeEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event port.ChangeEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) count(topic string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Topic() == topic {
			n++
		}
	}
	return n
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestContainer(t *testing.T, store port.DocumentStore) (*Container, *recordingPublisher) {
	t.Helper()
	publisher := &recordingPublisher{}
	clock := fixedClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	c := NewContainer(store, publisher, clock, time.Minute)
	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(c.Close)
	return c, publisher
}
