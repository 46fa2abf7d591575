package analysis

// orderedSet accumulates items keyed by a string, preserving first-seen order
// and rejecting duplicates. Once limit items are held, further adds are
// dropped.
type orderedSet[T any] struct {
	limit int
	seen  map[string]struct{}
	items []T
}

func newOrderedSet[T any](limit int) *orderedSet[T] {
	return &orderedSet[T]{
		limit: limit,
		seen:  make(map[string]struct{}),
	}
}

// add inserts item under key. It reports whether the item was kept: false
// means the key was already present or the set is full.
func (s *orderedSet[T]) add(key string, item T) bool {
	if _, dup := s.seen[key]; dup {
		return false
	}
	if len(s.items) >= s.limit {
		return false
	}
	s.seen[key] = struct{}{}
	s.items = append(s.items, item)
	return true
}

func (s *orderedSet[T]) values() []T {
	return s.items
}
