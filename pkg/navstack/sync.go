package navstack

import "fmt"

// Sync is the callback registered with the peer. When the navigation is
// clean it returns immediately without touching the peer, so any number of
// native requests between two mutations cost at most one pass.
//
// When dirty, the flag is cleared before any work is done: a mutation made
// by a builder during the pass marks the navigation dirty again and gets its
// own pass. Positions the peer already holds a subtree for are left alone.
//
// A failing builder or peer call aborts the pass and is returned as is; the
// dirty flag is not restored.
func (n *Navigation) Sync() error {
	if !n.dirty.CompareAndSwap(true, false) {
		return nil
	}

	size := n.stack.Len()
	n.logger.Debug("sync navigation stack", "size", size)

	for index := 0; index < size; index++ {
		need, err := n.peer.CheckNeedCreate(index)
		if err != nil {
			return NewPeerError("check_need_create", err)
		}
		if !need {
			continue
		}

		e, err := n.entryAt(index)
		if err != nil {
			return err
		}
		build, err := n.builderFor(e.Name)
		if err != nil {
			return err
		}

		n.logger.Debug("create new node", "index", index, "name", e.Name, "id", int64(e.ID))
		node, err := build(e.Name, e.Param)
		if err != nil {
			return fmt.Errorf("navstack: build %q: %w", e.Name, err)
		}
		if err := n.peer.SetDestinationNode(index, node); err != nil {
			return NewPeerError("set_destination_node", err)
		}
	}

	from, to := n.shown, n.stack.Top()
	if n.interception.WillShow != nil {
		n.interception.WillShow(from, to, n.lastOp, n.lastAnimated)
	}
	if err := n.peer.SyncStack(); err != nil {
		return NewPeerError("sync_stack", err)
	}
	n.shown = to
	if n.interception.DidShow != nil {
		n.interception.DidShow(from, to, n.lastOp, n.lastAnimated)
	}
	return nil
}

// entryAt resolves a native position to a live entry through the id the
// peer holds for it; params never cross the bridge.
func (n *Navigation) entryAt(index int) (*Entry, error) {
	id, ok := n.peer.IDByIndex(index)
	if !ok {
		return nil, fmt.Errorf("%w: index %d", ErrStaleIndex, index)
	}
	e := n.stack.Get(id)
	if e == nil {
		return nil, fmt.Errorf("%w: index %d, id %d", ErrStaleIndex, index, id)
	}
	return e, nil
}

// ParamByIndex returns the param at a native position, resolved through the
// peer's id for that position.
func (n *Navigation) ParamByIndex(index int) (any, bool) {
	e, err := n.entryAt(index)
	if err != nil {
		return nil, false
	}
	return e.Param, true
}

// ParamsByName returns the params of every native position named name.
func (n *Navigation) ParamsByName(name string) []any {
	var params []any
	for _, id := range n.peer.IDsByName(normalizeName(name)) {
		if e := n.stack.Get(id); e != nil {
			params = append(params, e.Param)
		}
	}
	return params
}
