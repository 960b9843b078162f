package navstack

// Node is an opaque handle to a UI subtree built for one destination.
// The native peer owns realized nodes; this package only passes them along.
type Node any

// DestinationBuilder builds a detached UI subtree for a destination.
// It is called by the sync pass, only for positions the peer reports as
// lacking a subtree.
type DestinationBuilder func(name string, param any) (Node, error)

// Peer is the native side of a navigation stack. It owns the realized
// subtrees and the positional truth about which positions already have one.
//
// Calls are synchronous. Errors are propagated to the caller untouched apart
// from being wrapped in a PeerError; there is no retry.
type Peer interface {
	// SetPath mirrors the logical order after a mutation.
	SetPath(path []PathItem, animated bool) error

	// CheckNeedCreate reports whether the position has no realized subtree.
	CheckNeedCreate(index int) (bool, error)

	// SetDestinationNode binds a freshly built subtree to a position.
	SetDestinationNode(index int, node Node) error

	// SyncStack commits the final order and visibility. Called once per pass.
	SyncStack() error

	// PopToName resolves name to the index a pop-to-name should stop at,
	// or -1 when no position has that name.
	PopToName(name string, animated bool) (int, error)

	IDByIndex(index int) (ID, bool)
	IDsByName(name string) []ID

	// SetUpdateStackCallback registers the function the native side calls
	// whenever it wants a sync pass.
	SetUpdateStackCallback(fn func() error)
}
