// Package peertest provides an in-memory navstack.Peer that records every
// bridge call. It stands in for the native side in tests and in the replay CLI.
package peertest

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
)

var _ navstack.Peer = (*Peer)(nil)

// Call is one recorded bridge call.
type Call struct {
	Op    string
	Index int
}

func (c Call) String() string {
	if c.Index < 0 {
		return c.Op
	}
	return fmt.Sprintf("%s(%d)", c.Op, c.Index)
}

// Peer keeps a realized node per entry id, the way a native stack keeps
// navigation destinations alive across reorders.
//
// Realized nodes for ids that leave the path are destroyed on SyncStack.
type Peer struct {
	path     []navstack.PathItem
	animated bool
	realized map[navstack.ID]navstack.Node
	callback func() error

	calls     []Call
	destroyed []navstack.Node

	// Fail makes the named bridge call (e.g. "sync_stack") return the error.
	Fail map[string]error
}

// New creates an empty Peer.
func New() *Peer {
	return &Peer{
		realized: make(map[navstack.ID]navstack.Node),
		Fail:     make(map[string]error),
	}
}

func (p *Peer) record(op string, index int) error {
	p.calls = append(p.calls, Call{Op: op, Index: index})
	return p.Fail[op]
}

func (p *Peer) SetPath(path []navstack.PathItem, animated bool) error {
	if err := p.record("set_path", -1); err != nil {
		return err
	}
	p.path = append(p.path[:0:0], path...)
	p.animated = animated
	return nil
}

func (p *Peer) CheckNeedCreate(index int) (bool, error) {
	if err := p.record("check_need_create", index); err != nil {
		return false, err
	}
	if index < 0 || index >= len(p.path) {
		return false, fmt.Errorf("peertest: index %d out of range", index)
	}
	_, ok := p.realized[p.path[index].ID]
	return !ok, nil
}

func (p *Peer) SetDestinationNode(index int, node navstack.Node) error {
	if err := p.record("set_destination_node", index); err != nil {
		return err
	}
	if index < 0 || index >= len(p.path) {
		return fmt.Errorf("peertest: index %d out of range", index)
	}
	p.realized[p.path[index].ID] = node
	return nil
}

func (p *Peer) SyncStack() error {
	if err := p.record("sync_stack", -1); err != nil {
		return err
	}
	live := make(map[navstack.ID]struct{}, len(p.path))
	for _, item := range p.path {
		live[item.ID] = struct{}{}
	}
	for id, node := range p.realized {
		if _, ok := live[id]; !ok {
			p.destroyed = append(p.destroyed, node)
			delete(p.realized, id)
		}
	}
	return nil
}

func (p *Peer) PopToName(name string, animated bool) (int, error) {
	if err := p.record("pop_to_name", -1); err != nil {
		return -1, err
	}
	for i, item := range p.path {
		if item.Name == name {
			return i, nil
		}
	}
	return -1, nil
}

func (p *Peer) IDByIndex(index int) (navstack.ID, bool) {
	if index < 0 || index >= len(p.path) {
		return 0, false
	}
	return p.path[index].ID, true
}

func (p *Peer) IDsByName(name string) []navstack.ID {
	var ids []navstack.ID
	for _, item := range p.path {
		if item.Name == name {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

func (p *Peer) SetUpdateStackCallback(fn func() error) {
	p.callback = fn
}

// RequestSync plays the native side asking for a sync pass, as it would on
// the next frame after SetPath.
func (p *Peer) RequestSync() error {
	if p.callback == nil {
		return nil
	}
	return p.callback()
}

// Calls returns the recorded calls.
func (p *Peer) Calls() []Call {
	return append([]Call(nil), p.calls...)
}

// Count returns how many times op was called.
func (p *Peer) Count(op string) int {
	n := 0
	for _, c := range p.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls and destroyed nodes. Realized nodes stay.
func (p *Peer) Reset() {
	p.calls = nil
	p.destroyed = nil
}

// Node returns the realized node at a position.
func (p *Peer) Node(index int) (navstack.Node, bool) {
	if index < 0 || index >= len(p.path) {
		return nil, false
	}
	node, ok := p.realized[p.path[index].ID]
	return node, ok
}

// Destroyed returns the nodes dropped by SyncStack since the last Reset.
func (p *Peer) Destroyed() []navstack.Node {
	return append([]navstack.Node(nil), p.destroyed...)
}

// Path returns the last mirrored path.
func (p *Peer) Path() []navstack.PathItem {
	return append([]navstack.PathItem(nil), p.path...)
}

// Animated reports the animated flag of the last SetPath.
func (p *Peer) Animated() bool {
	return p.animated
}

// Summary renders the recorded calls on one line.
func (p *Peer) Summary() string {
	parts := make([]string, 0, len(p.calls))
	for _, c := range p.calls {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
