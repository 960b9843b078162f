package navstack

import (
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
)

// Options configures a Navigation.
type Options struct {
	SyncOnMutation   bool                         // Run a sync pass right after every mutation
	DisableAnimation bool                         // Mirror every change to the peer as not animated
	Routes           map[string]NavigationOptions // Options used by Navigate, keyed by destination name
	Logger           *slog.Logger                 // Defaults to the internal navstack logger
}

// ShowCallback observes a committed change of the visible destination.
// from is the top entry at the previous sync pass and to the current one;
// either may be nil.
type ShowCallback func(from, to *Entry, op Operation, animated bool)

// Interception holds optional callbacks around the commit of a sync pass.
type Interception struct {
	WillShow ShowCallback // Before SyncStack
	DidShow  ShowCallback // After SyncStack succeeded
}

// Navigation ties a Stack to its native peer.
// Mutations update the Stack, mirror the new path to the peer and mark the
// navigation dirty. The peer later calls back into Sync, which builds
// subtrees only for positions that do not have one yet.
//
// Navigation is not safe for concurrent use and must not share a peer with
// another Navigation.
type Navigation struct {
	stack    *Stack
	peer     Peer
	builders map[string]DestinationBuilder
	fallback DestinationBuilder
	routes   map[string]NavigationOptions
	logger   *slog.Logger

	syncOnMutation    bool
	animationDisabled bool
	interception      Interception

	dirty        atomic.Bool
	lastOp       Operation
	lastAnimated bool
	shown        *Entry
}

// New creates a Navigation bound to peer and registers its sync callback
// with the peer.
func New(peer Peer, opts Options) (*Navigation, error) {
	if peer == nil {
		return nil, ErrNilPeer
	}

	n := &Navigation{
		stack:             NewStack(),
		peer:              peer,
		builders:          make(map[string]DestinationBuilder),
		routes:            make(map[string]NavigationOptions, len(opts.Routes)),
		logger:            opts.Logger,
		syncOnMutation:    opts.SyncOnMutation,
		animationDisabled: opts.DisableAnimation,
	}
	if n.logger == nil {
		n.logger = internal.GetInternalLogger()
	}
	for name, route := range opts.Routes {
		n.routes[normalizeName(name)] = route
	}

	peer.SetUpdateStackCallback(n.Sync)
	return n, nil
}

// Register adds a builder for one destination name.
func (n *Navigation) Register(name string, fn DestinationBuilder) error {
	name = normalizeName(strings.TrimSpace(name))
	if name == "" {
		return ErrEmptyName
	}
	n.builders[name] = fn
	return nil
}

// SetDefaultBuilder sets the builder used for names without a registered one.
func (n *Navigation) SetDefaultBuilder(fn DestinationBuilder) {
	n.fallback = fn
}

// SetInterception replaces the show callbacks.
func (n *Navigation) SetInterception(interception Interception) {
	n.interception = interception
}

// DisableAnimation turns animation off (or back on) for every later change.
func (n *Navigation) DisableAnimation(disabled bool) {
	n.animationDisabled = disabled
}

// Stack returns the underlying stack for queries. Mutating it directly
// bypasses the peer and the dirty flag.
func (n *Navigation) Stack() *Stack {
	return n.stack
}

// IsDirty reports whether a sync pass has work to do.
func (n *Navigation) IsDirty() bool {
	return n.dirty.Load()
}

// Push places e on the stack. See Stack.Push for launch-mode behavior.
// A dropped singleton push returns a nil entry and changes nothing.
func (n *Navigation) Push(e *Entry, opts NavigationOptions) (*Entry, error) {
	top := n.stack.Push(e, opts)
	if top == nil {
		n.logger.Debug("push dropped", "launchMode", opts.LaunchMode.String())
		return nil, nil
	}
	return top, n.commit(OperationPush, opts.Animated)
}

// Replace is Push that drops the current top entry first.
func (n *Navigation) Replace(e *Entry, opts NavigationOptions) (*Entry, error) {
	top := n.stack.Replace(e, opts)
	if top == nil {
		n.logger.Debug("replace dropped", "launchMode", opts.LaunchMode.String())
		return nil, nil
	}
	return top, n.commit(OperationReplace, opts.Animated)
}

// PushPath pushes e with the standard launch mode.
func (n *Navigation) PushPath(e *Entry, animated bool) error {
	_, err := n.Push(e, NavigationOptions{LaunchMode: LaunchModeStandard, Animated: animated})
	return err
}

// PushPathByName pushes a new entry built from its parts.
func (n *Navigation) PushPathByName(name string, param any, onPop func(PopInfo), animated bool) error {
	return n.PushPath(&Entry{Name: name, Param: param, OnPop: onPop}, animated)
}

// ReplacePathByName replaces the top entry with a new one built from its parts.
func (n *Navigation) ReplacePathByName(name string, param any, animated bool) error {
	_, err := n.Replace(&Entry{Name: name, Param: param}, NavigationOptions{Animated: animated})
	return err
}

// Navigate pushes name using its configured route options, or a standard
// animated push when the name has no route.
func (n *Navigation) Navigate(name string, param any, onPop func(PopInfo)) (*Entry, error) {
	return n.Push(&Entry{Name: name, Param: param, OnPop: onPop}, n.RouteOptions(name))
}

// RouteOptions returns the options Navigate uses for name.
func (n *Navigation) RouteOptions(name string) NavigationOptions {
	if opts, ok := n.routes[normalizeName(name)]; ok {
		return opts
	}
	return DefaultNavigationOptions()
}

// Pop removes the top entry. A non-nil result is delivered to its OnPop.
func (n *Navigation) Pop(result any, animated bool) (*Entry, error) {
	e := n.stack.Pop(result)
	if e == nil {
		return nil, nil
	}
	return e, n.commit(OperationPop, animated)
}

// PopToIndex removes every entry above index. Invalid indexes are ignored.
func (n *Navigation) PopToIndex(index int, result any, animated bool) error {
	if !n.stack.PopToIndex(index, result) {
		return nil
	}
	return n.commit(OperationPop, animated)
}

// PopToName asks the peer where name is and pops to it.
// It returns the index popped to, or -1 when the peer does not know the name.
func (n *Navigation) PopToName(name string, result any, animated bool) (int, error) {
	index, err := n.peer.PopToName(normalizeName(name), n.animated(animated))
	if err != nil {
		return -1, NewPeerError("pop_to_name", err)
	}
	if index < 0 {
		return -1, nil
	}
	return index, n.PopToIndex(index, result, animated)
}

// MoveToTop moves the first entry named name to the top and returns its
// former index, or -1.
func (n *Navigation) MoveToTop(name string, animated bool) (int, error) {
	index := n.stack.MoveToTop(name)
	if index < 0 {
		return -1, nil
	}
	return index, n.commit(OperationPush, animated)
}

// MoveIndexToTop moves the entry at index to the top. Invalid indexes are ignored.
func (n *Navigation) MoveIndexToTop(index int, animated bool) error {
	if !n.stack.MoveIndexToTop(index) {
		return nil
	}
	return n.commit(OperationPush, animated)
}

// Clear removes every entry without calling OnPop.
func (n *Navigation) Clear(animated bool) error {
	if n.stack.Clear() == 0 {
		return nil
	}
	return n.commit(OperationPop, animated)
}

// RemoveByIndexes removes the entries at indexes and returns how many went.
func (n *Navigation) RemoveByIndexes(indexes []int) (int, error) {
	return n.removed(n.stack.RemoveByIndexes(indexes))
}

// RemoveByName removes every entry named name and returns how many went.
func (n *Navigation) RemoveByName(name string) (int, error) {
	return n.removed(n.stack.RemoveByName(name))
}

// RemoveByDestinationID removes the entry with the given destination id.
func (n *Navigation) RemoveByDestinationID(destinationID string) (bool, error) {
	if !n.stack.RemoveByDestinationID(destinationID) {
		return false, nil
	}
	_, err := n.removed(1)
	return true, err
}

// SetPathStack replaces the whole path. See Stack.SetEntries.
func (n *Navigation) SetPathStack(entries []*Entry, animated bool) error {
	n.stack.SetEntries(entries)
	return n.commit(OperationReplace, animated)
}

func (n *Navigation) removed(count int) (int, error) {
	if count == 0 {
		return 0, nil
	}
	return count, n.commit(OperationPop, false)
}

func (n *Navigation) animated(animated bool) bool {
	return animated && !n.animationDisabled
}

// commit mirrors the path to the peer and only then marks the navigation
// dirty, so a pass already running does not observe a half-applied change.
func (n *Navigation) commit(op Operation, animated bool) error {
	animated = n.animated(animated)
	if err := n.peer.SetPath(n.stack.Path(), animated); err != nil {
		return NewPeerError("set_path", err)
	}

	n.lastOp = op
	n.lastAnimated = animated
	n.dirty.Store(true)

	if n.syncOnMutation {
		return n.Sync()
	}
	return nil
}

func (n *Navigation) builderFor(name string) (DestinationBuilder, error) {
	if fn, ok := n.builders[name]; ok {
		return fn, nil
	}
	if n.fallback != nil {
		return n.fallback, nil
	}
	return nil, fmt.Errorf("%w for %q", ErrNoBuilder, name)
}
