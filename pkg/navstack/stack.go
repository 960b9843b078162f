package navstack

// Stack is the logical navigation history. It knows nothing about the native
// peer; Navigation mirrors it to one.
//
// Stack is not safe for concurrent use. All mutation is expected to happen on
// the single UI event thread.
type Stack struct {
	store *store
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{store: newStore()}
}

// Push places e on the stack according to opts.LaunchMode.
//
// An e that already carries an id (it was placed on a stack before) is never
// modified; a copy of it is pushed instead.
//
// Standard and NewInstance pushes attach a fresh id to e and append it.
// The singleton modes look for the first entry (from the bottom) with e's
// name; when found, that entry takes e's fields but keeps its id, and e.ID is
// set to it. When not found, the push is dropped: nothing is allocated and nil
// is returned.
//
// Push returns the live entry now on top of the stack, or nil when the
// request was dropped.
func (s *Stack) Push(e *Entry, opts NavigationOptions) *Entry {
	return s.push(e, opts.LaunchMode, false)
}

// Replace is Push that also drops the current top entry. The dropped entry's
// OnPop is not called.
func (s *Stack) Replace(e *Entry, opts NavigationOptions) *Entry {
	return s.push(e, opts.LaunchMode, true)
}

func (s *Stack) push(e *Entry, mode LaunchMode, replace bool) *Entry {
	if e == nil {
		return nil
	}
	if e.ID != 0 {
		clone := *e
		e = &clone
	}
	e.Name = normalizeName(e.Name)

	switch mode {
	case LaunchModeStandard, LaunchModeNewInstance:
		return s.pushNew(e, replace)
	case LaunchModeMoveToTopSingleton:
		return s.moveToTopSingleton(e, replace)
	case LaunchModePopToSingleton:
		return s.popToSingleton(e, replace)
	default:
		// Values outside the declared set behave like LaunchModeStandard.
		return s.pushNew(e, replace)
	}
}

func (s *Stack) pushNew(e *Entry, replace bool) *Entry {
	if replace && s.store.len() > 0 {
		s.store.removeByID(s.store.cut(s.store.len() - 1))
	}

	identify(e)
	s.store.insert(e)
	s.store.append(e.ID)
	return e
}

func (s *Stack) moveToTopSingleton(e *Entry, replace bool) *Entry {
	index := s.store.findByName(e.Name)
	if index < 0 {
		return nil
	}
	existing := s.store.at(index)

	if top := s.store.len() - 1; replace && top != index {
		s.store.removeByID(s.store.cut(top))
	}

	adopt(existing, e)
	s.store.moveToTop(index)
	return existing
}

func (s *Stack) popToSingleton(e *Entry, replace bool) *Entry {
	index := s.store.findByName(e.Name)
	if index < 0 {
		return nil
	}
	existing := s.store.at(index)
	adopt(existing, e)

	if replace {
		s.store.cut(index)
		s.forget(s.store.truncate(index))
		s.store.append(existing.ID)
		return existing
	}

	s.forget(s.store.truncate(index + 1))
	return existing
}

// adopt overwrites existing with the fields of incoming and reports the
// surviving identity back through incoming.
func adopt(existing, incoming *Entry) {
	existing.assign(incoming)
	incoming.ID = existing.ID
	incoming.DestinationID = existing.DestinationID
}

// forget drops the mappings of entries already cut from the order.
func (s *Stack) forget(removed []ID) {
	for _, id := range removed {
		s.store.removeByID(id)
	}
}

// MoveToTop moves the first entry named name to the top and returns the
// index it was at, or -1 if no entry has that name.
func (s *Stack) MoveToTop(name string) int {
	index := s.store.findByName(normalizeName(name))
	if index < 0 {
		return -1
	}
	s.store.moveToTop(index)
	return index
}

// MoveIndexToTop moves the entry at index to the top.
// It reports false for an out-of-range index.
func (s *Stack) MoveIndexToTop(index int) bool {
	if index < 0 || index >= s.store.len() {
		return false
	}
	s.store.moveToTop(index)
	return true
}

// Clear removes every entry without calling OnPop and returns how many were removed.
func (s *Stack) Clear() int {
	removed := s.store.truncate(0)
	s.forget(removed)
	return len(removed)
}

// SetEntries replaces the whole path. Entries that are already live on this
// stack keep their ids; all others get new ones. Entries that carry an id
// from elsewhere, and repeats of one pointer, are copied first. Entries that
// are not in entries any more are dropped without calling OnPop.
func (s *Stack) SetEntries(entries []*Entry) {
	byID := make(map[ID]*Entry, len(entries))
	order := make([]ID, 0, len(entries))

	for _, e := range entries {
		if e == nil {
			continue
		}
		if _, seen := byID[e.ID]; e.ID == 0 || seen || s.store.get(e.ID) != e {
			if e.ID != 0 {
				clone := *e
				e = &clone
			}
			identify(e)
		}
		e.Name = normalizeName(e.Name)
		byID[e.ID] = e
		order = append(order, e.ID)
	}

	s.store.byID = byID
	s.store.order = order
}
