package archive

// selection is an insertion-ordered set.
type selection[T comparable] struct {
	order []T
	index map[T]struct{}
}

func (s *selection[T]) has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// toggle adds v when absent and removes it when present.
func (s *selection[T]) toggle(v T) {
	if s.index == nil {
		s.index = map[T]struct{}{}
	}
	if _, ok := s.index[v]; ok {
		delete(s.index, v)
		for i, cur := range s.order {
			if cur == v {
				s.order = append(s.order[:i:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *selection[T]) clear() {
	s.order = nil
	s.index = nil
}

func (s *selection[T]) len() int { return len(s.order) }

func (s *selection[T]) values() []T {
	return append([]T{}, s.order...)
}

func contains[T comparable](items []T, v T) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}

func intersects[T comparable](a, b []T) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}
