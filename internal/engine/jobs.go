package engine

import "sync"

// jobStore keeps recent search results in memory for the async API,
// bounded by evicting the oldest run when the limit is reached.
type jobStore struct {
	mu    sync.RWMutex
	byID  map[string]*SearchResult
	order []string // insertion order for eviction
	limit int
}

func newJobStore(limit int) *jobStore {
	return &jobStore{
		byID:  make(map[string]*SearchResult),
		limit: limit,
	}
}

// put inserts or replaces the result for its run id. A pending marker
// never replaces a finished result: the run is over, the marker is stale.
func (s *jobStore) put(res *SearchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, exists := s.byID[res.RunID]; exists {
		if res.Status == StatusPending && cur.Status == StatusComplete {
			return
		}
	} else {
		s.order = append(s.order, res.RunID)
		for len(s.order) > s.limit {
			delete(s.byID, s.order[0])
			s.order = s.order[1:]
		}
	}
	s.byID[res.RunID] = res
}

// remove drops a run id and frees its eviction slot.
func (s *jobStore) remove(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[runID]; !ok {
		return
	}
	delete(s.byID, runID)
	for i, id := range s.order {
		if id == runID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// get returns the stored result for a run id.
func (s *jobStore) get(runID string) (*SearchResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.byID[runID]
	return res, ok
}
