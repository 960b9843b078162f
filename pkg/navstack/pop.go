package navstack

// Pop removes the top entry and returns it, or nil if the stack is empty.
// A nil result means no result was supplied, in which case OnPop is not called.
func (s *Stack) Pop(result any) *Entry {
	n := s.store.len()
	if n == 0 {
		return nil
	}
	return s.release(s.store.truncate(n - 1)[0], result)
}

// PopToIndex removes every entry above index. The entry that was on top gets
// OnPop with result; all removed entries lose their mapping.
// It reports false when index is out of range or nothing was above it.
func (s *Stack) PopToIndex(index int, result any) bool {
	if index < 0 || index >= s.store.len() {
		return false
	}
	removed := s.store.truncate(index + 1)
	if len(removed) == 0 {
		return false
	}

	last := len(removed) - 1
	s.forget(removed[:last])
	s.release(removed[last], result)
	return true
}

// PopToName pops to the first entry named name and returns its index,
// or -1 if there is no such entry.
func (s *Stack) PopToName(name string, result any) int {
	index := s.store.findByName(normalizeName(name))
	if index < 0 {
		return -1
	}
	s.PopToIndex(index, result)
	return index
}

// release drops the mapping of an id already cut from the order and
// delivers result to the entry's OnPop when both are present. The mapping
// goes even if OnPop panics.
func (s *Stack) release(id ID, result any) *Entry {
	e := s.store.get(id)
	if e == nil {
		return nil
	}
	defer s.store.removeByID(id)

	if result != nil && e.OnPop != nil {
		e.OnPop(PopInfo{Entry: e, Result: result})
	}
	return e
}

// RemoveByIndexes removes the entries at the given indexes without calling
// OnPop. Out-of-range and repeated indexes are ignored. It returns the number
// of entries removed.
func (s *Stack) RemoveByIndexes(indexes []int) int {
	drop := make(map[int]struct{}, len(indexes))
	for _, i := range indexes {
		if i >= 0 && i < s.store.len() {
			drop[i] = struct{}{}
		}
	}
	return s.removeWhere(func(i int, _ *Entry) bool {
		_, ok := drop[i]
		return ok
	})
}

// RemoveByName removes every entry named name without calling OnPop and
// returns the number removed.
func (s *Stack) RemoveByName(name string) int {
	name = normalizeName(name)
	return s.removeWhere(func(_ int, e *Entry) bool {
		return e.Name == name
	})
}

// RemoveByDestinationID removes the entry with the given destination id.
func (s *Stack) RemoveByDestinationID(destinationID string) bool {
	return s.removeWhere(func(_ int, e *Entry) bool {
		return e.DestinationID == destinationID
	}) > 0
}

func (s *Stack) removeWhere(match func(index int, e *Entry) bool) int {
	kept := s.store.order[:0]
	removed := 0
	for i, id := range s.store.order {
		if match(i, s.store.get(id)) {
			s.store.removeByID(id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.store.order = kept
	return removed
}
