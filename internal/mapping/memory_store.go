package mapping

import (
	"sync"
	"time"
)

// MemoryStore keeps mappings in insertion order behind a single lock. Ids come
// from a counter that starts at 1 and is never rewound.
type MemoryStore struct {
	mu     sync.RWMutex
	lastID int
	items  []Mapping
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: defaultClock}
}

// NewMemoryStoreWithClock is NewMemoryStore with an injected time source.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{now: now}
}

func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (s *MemoryStore) Create(in NewMapping) (*Mapping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	m := in.record(s.lastID, s.now())
	s.items = append(s.items, m)

	out := m.clone()
	return &out, nil
}

func (s *MemoryStore) Get(id int) (*Mapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	out := s.items[i].clone()
	return &out, nil
}

func (s *MemoryStore) Update(id int, patch Patch) (*Mapping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	m := s.items[i].clone()
	patch.apply(&m)
	m.ID = id
	m.CreatedAt = s.items[i].CreatedAt
	m.UpdatedAt = nextTimestamp(s.now(), s.items[i].UpdatedAt)
	s.items[i] = m

	out := m.clone()
	return &out, nil
}

func (s *MemoryStore) Delete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true, nil
}

func (s *MemoryStore) List() ([]Mapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Mapping, len(s.items))
	for i, m := range s.items {
		out[i] = m.clone()
	}
	return out, nil
}

// indexOf expects s.mu to be held.
func (s *MemoryStore) indexOf(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
