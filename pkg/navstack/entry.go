package navstack

import "golang.org/x/text/unicode/norm"

// ID identifies an Entry for its whole lifetime.
// The zero value means the entry has not been placed on a stack yet.
type ID int64

// Entry is one logical navigation destination.
//
// Param never crosses the native boundary; the native side only sees the ID,
// so the stack is the only place Param can be read back from.
type Entry struct {
	ID            ID
	Name          string
	Param         any
	OnPop         func(PopInfo) // Called once when the entry is popped with a result
	IsEntry       bool          // Marks an application's root destination
	DestinationID string        // Assigned together with ID
}

// PopInfo is delivered to Entry.OnPop.
type PopInfo struct {
	Entry  *Entry
	Result any
}

// PathItem is the part of an Entry that is shared with the native peer.
type PathItem struct {
	ID   ID
	Name string
}

// assign copies the caller-controlled fields of src into e, keeping e's identity.
func (e *Entry) assign(src *Entry) {
	e.Name = src.Name
	e.Param = src.Param
	e.OnPop = src.OnPop
	e.IsEntry = src.IsEntry
}

func normalizeName(name string) string {
	return norm.NFC.String(name)
}
