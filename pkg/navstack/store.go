package navstack

// store is the arena of live entries addressed by id, plus the display order
// as a slice of ids. Index 0 is the bottom of the stack.
//
// store does no launch-mode logic. Callers keep order and byID consistent:
// every id in order has a byID mapping and every mapping is in order once a
// mutation is complete.
type store struct {
	byID  map[ID]*Entry
	order []ID
}

func newStore() *store {
	return &store{
		byID:  make(map[ID]*Entry),
		order: make([]ID, 0),
	}
}

func (s *store) insert(e *Entry) {
	s.byID[e.ID] = e
}

func (s *store) removeByID(id ID) {
	delete(s.byID, id)
}

func (s *store) get(id ID) *Entry {
	return s.byID[id]
}

func (s *store) len() int {
	return len(s.order)
}

func (s *store) at(index int) *Entry {
	if index < 0 || index >= len(s.order) {
		return nil
	}
	return s.byID[s.order[index]]
}

// findByName returns the index of the first entry named name, scanning from
// the bottom, or -1.
func (s *store) findByName(name string) int {
	for i, id := range s.order {
		if e := s.byID[id]; e != nil && e.Name == name {
			return i
		}
	}
	return -1
}

func (s *store) append(id ID) {
	s.order = append(s.order, id)
}

// cut removes order[index] and returns its id.
func (s *store) cut(index int) ID {
	id := s.order[index]
	s.order = append(s.order[:index], s.order[index+1:]...)
	return id
}

// truncate shortens order to n ids and returns the removed ids, bottom first.
func (s *store) truncate(n int) []ID {
	removed := make([]ID, len(s.order)-n)
	copy(removed, s.order[n:])
	s.order = s.order[:n]
	return removed
}

// moveToTop relocates order[index] to the end.
func (s *store) moveToTop(index int) {
	id := s.cut(index)
	s.order = append(s.order, id)
}
