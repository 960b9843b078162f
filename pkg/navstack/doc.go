// Package navstack keeps an ordered navigation stack of named destinations
// and drives a native stack peer from it.
//
// Stack holds the entries and applies launch modes. Navigation wraps a Stack,
// mirrors every change to a Peer and rebuilds destination subtrees lazily when
// the peer asks for a sync pass.
//
// # Basic Usage
//
//	nav, err := navstack.New(peer, navstack.Options{})
//	if err != nil {
//	    return err
//	}
//
//	nav.Register("list", func(name string, param any) (navstack.Node, error) {
//	    return listScreen(param.([]Item)), nil
//	})
//
//	nav.Register("detail", func(name string, param any) (navstack.Node, error) {
//	    return detailScreen(param.(Item)), nil
//	})
//
//	nav.PushPathByName("list", items, nil, false)
//	nav.PushPathByName("detail", items[0], func(info navstack.PopInfo) {
//	    // info.Result is whatever the detail screen popped with
//	}, true)
//
// # Launch Modes
//
// LaunchModeMoveToTopSingleton and LaunchModePopToSingleton collapse a push
// onto the first entry with the same name, counting from the bottom. When no
// such entry exists the push is dropped and nothing changes.
//
// # Results
//
// Pop, PopToIndex and PopToName take a result for the OnPop callback of the
// entry that was on top. Other entries removed by the same call are dropped
// without a callback. A nil result means no result; OnPop is not called.
//
// # Sync
//
// The peer calls the function it received through SetUpdateStackCallback,
// which is Navigation.Sync. A pass that finds the navigation clean does
// nothing. Entries keep their id when reordered, so a peer that keys nodes by
// id never rebuilds a destination that only moved.
package navstack
