package navstack

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return s.store.len()
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return s.store.len() == 0
}

// Top returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Top() *Entry {
	return s.store.at(s.store.len() - 1)
}

// At returns the entry at index, or nil.
func (s *Stack) At(index int) *Entry {
	return s.store.at(index)
}

// Get returns the live entry with the given id, or nil.
func (s *Stack) Get(id ID) *Entry {
	return s.store.get(id)
}

// Entries returns the live entries, bottom first.
func (s *Stack) Entries() []*Entry {
	entries := make([]*Entry, 0, s.store.len())
	for _, id := range s.store.order {
		entries = append(entries, s.store.get(id))
	}
	return entries
}

// Names returns the destination names, bottom first.
func (s *Stack) Names() []string {
	names := make([]string, 0, s.store.len())
	for _, id := range s.store.order {
		names = append(names, s.store.get(id).Name)
	}
	return names
}

// Path returns what the native peer is allowed to know about the stack.
func (s *Stack) Path() []PathItem {
	path := make([]PathItem, 0, s.store.len())
	for _, id := range s.store.order {
		path = append(path, PathItem{ID: id, Name: s.store.get(id).Name})
	}
	return path
}

// ParamByIndex returns the param of the entry at index.
func (s *Stack) ParamByIndex(index int) (any, bool) {
	e := s.store.at(index)
	if e == nil {
		return nil, false
	}
	return e.Param, true
}

// ParamsByName returns the params of every entry named name, bottom first.
func (s *Stack) ParamsByName(name string) []any {
	name = normalizeName(name)
	var params []any
	for _, id := range s.store.order {
		if e := s.store.get(id); e.Name == name {
			params = append(params, e.Param)
		}
	}
	return params
}

// IndexesByName returns the positions of every entry named name, bottom first.
func (s *Stack) IndexesByName(name string) []int {
	name = normalizeName(name)
	var indexes []int
	for i, id := range s.store.order {
		if s.store.get(id).Name == name {
			indexes = append(indexes, i)
		}
	}
	return indexes
}
