package web

import (
	"context"
	"slices"
	"sync"

	"github.com/ItsNotGoodName/webdesk/internal/bus"
	"github.com/ItsNotGoodName/webdesk/internal/desktop"
)

// Sessions indexes the running desktop loops by session id.
type Sessions struct {
	mu    sync.RWMutex
	loops map[string]*desktop.Loop
}

func NewSessions() *Sessions {
	return &Sessions{
		loops: make(map[string]*desktop.Loop),
	}
}

// Register keeps the index in sync with loops as they open and close.
func (s *Sessions) Register() *Sessions {
	bus.Subscribe("web.Sessions", func(ctx context.Context, event desktop.EventSessionOpened) error {
		s.mu.Lock()
		s.loops[event.ID] = event.Loop
		s.mu.Unlock()
		return nil
	})
	bus.Subscribe("web.Sessions", func(ctx context.Context, event desktop.EventSessionClosed) error {
		s.mu.Lock()
		delete(s.loops, event.ID)
		s.mu.Unlock()
		return nil
	})
	return s
}

func (s *Sessions) Get(id string) (*desktop.Loop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loop, ok := s.loops[id]
	return loop, ok
}

// IDs returns the session ids in sorted order.
func (s *Sessions) IDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.loops))
	for id := range s.loops {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	slices.Sort(ids)
	return ids
}
