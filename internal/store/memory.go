package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps everything in maps. Used by tests and by runs that
// don't want a database file on disk.
type MemoryStore struct {
	mu           sync.Mutex
	completions  map[string]Completion
	achievements map[string]Achievement
	progress     map[string]Progress
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		completions:  make(map[string]Completion),
		achievements: make(map[string]Achievement),
		progress:     make(map[string]Progress),
	}
}

func (s *MemoryStore) PutCompletion(_ context.Context, c Completion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completions[c.Date] = c
	return nil
}

func (s *MemoryStore) GetCompletion(_ context.Context, date string) (Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.completions[date]
	if !ok {
		return Completion{}, ErrNotFound
	}
	return c, nil
}

func (s *MemoryStore) ListCompletions(_ context.Context) ([]Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Completion, 0, len(s.completions))
	for _, c := range s.completions {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *MemoryStore) ListUnsynced(ctx context.Context) ([]Completion, error) {
	all, _ := s.ListCompletions(ctx)
	var out []Completion
	for _, c := range all {
		if !c.Synced {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryStore) MarkSynced(_ context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.completions[date]; ok {
		c.Synced = true
		s.completions[date] = c
	}
	return nil
}

func (s *MemoryStore) PutAchievement(_ context.Context, a Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.achievements[a.ID]; !ok {
		s.achievements[a.ID] = a
	}
	return nil
}

func (s *MemoryStore) ListAchievements(_ context.Context) ([]Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Achievement, 0, len(s.achievements))
	for _, a := range s.achievements {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnlockedAt < out[j].UnlockedAt })
	return out, nil
}

func (s *MemoryStore) PutProgress(_ context.Context, p Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[p.Date] = p
	return nil
}

func (s *MemoryStore) GetProgress(_ context.Context, date string) (Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.progress[date]
	if !ok {
		return Progress{}, ErrNotFound
	}
	return p, nil
}
