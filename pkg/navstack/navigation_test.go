package navstack_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/peertest"
)

// builds counts builder invocations per destination name.
type builds map[string]int

func (b builds) builder() navstack.DestinationBuilder {
	return func(name string, param any) (navstack.Node, error) {
		b[name]++
		return fmt.Sprintf("%s#%d", name, b[name]), nil
	}
}

func newNavigation(t *testing.T, opts navstack.Options) (*navstack.Navigation, *peertest.Peer, builds) {
	t.Helper()
	peer := peertest.New()
	nav, err := navstack.New(peer, opts)
	require.NoError(t, err)
	b := builds{}
	nav.SetDefaultBuilder(b.builder())
	return nav, peer, b
}

func TestNew_NilPeer(t *testing.T) {
	_, err := navstack.New(nil, navstack.Options{})
	require.ErrorIs(t, err, navstack.ErrNilPeer)
}

func TestNavigation_MutationMirrorsAndDirties(t *testing.T) {
	nav, peer, _ := newNavigation(t, navstack.Options{})
	assert.False(t, nav.IsDirty())

	require.NoError(t, nav.PushPathByName("home", nil, nil, true))
	assert.True(t, nav.IsDirty())
	assert.Equal(t, []string{"set_path"}, callOps(peer))
	require.Len(t, peer.Path(), 1)
	assert.Equal(t, "home", peer.Path()[0].Name)
	assert.True(t, peer.Animated())
}

func TestNavigation_DroppedPushDoesNotDirty(t *testing.T) {
	nav, peer, _ := newNavigation(t, navstack.Options{})

	top, err := nav.Push(&navstack.Entry{Name: "ghost"}, navstack.NavigationOptions{LaunchMode: navstack.LaunchModeMoveToTopSingleton})
	require.NoError(t, err)
	assert.Nil(t, top)
	assert.False(t, nav.IsDirty())
	assert.Empty(t, peer.Calls())
}

func TestNavigation_PopToNameResolvesThroughPeer(t *testing.T) {
	nav, peer, _ := newNavigation(t, navstack.Options{})
	var info navstack.PopInfo
	require.NoError(t, nav.PushPathByName("a", nil, nil, false))
	require.NoError(t, nav.PushPathByName("b", nil, nil, false))
	require.NoError(t, nav.PushPathByName("c", nil, func(p navstack.PopInfo) { info = p }, false))
	peer.Reset()

	index, err := nav.PopToName("a", "done", true)
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.Equal(t, []string{"a"}, nav.Stack().Names())
	assert.Equal(t, "c", info.Entry.Name)
	assert.Equal(t, "done", info.Result)
	assert.Equal(t, []string{"pop_to_name", "set_path"}, callOps(peer))

	peer.Reset()
	index, err = nav.PopToName("zzz", nil, true)
	require.NoError(t, err)
	assert.Equal(t, -1, index)
	assert.Equal(t, []string{"pop_to_name"}, callOps(peer))
}

func TestNavigation_PeerFailuresPropagate(t *testing.T) {
	boom := errors.New("boom")

	nav, peer, _ := newNavigation(t, navstack.Options{})
	peer.Fail["set_path"] = boom
	err := nav.PushPathByName("a", nil, nil, true)
	require.ErrorIs(t, err, boom)
	assert.True(t, navstack.IsPeerError(err))
	assert.False(t, nav.IsDirty())

	nav, peer, _ = newNavigation(t, navstack.Options{})
	peer.Fail["pop_to_name"] = boom
	require.NoError(t, nav.PushPathByName("a", nil, nil, true))
	_, err = nav.PopToName("a", nil, true)
	require.ErrorIs(t, err, boom)

	var peerErr *navstack.PeerError
	require.ErrorAs(t, err, &peerErr)
	assert.Equal(t, "pop_to_name", peerErr.Op)
}

func TestNavigation_DisableAnimation(t *testing.T) {
	nav, peer, _ := newNavigation(t, navstack.Options{DisableAnimation: true})
	require.NoError(t, nav.PushPathByName("a", nil, nil, true))
	assert.False(t, peer.Animated())

	nav.DisableAnimation(false)
	require.NoError(t, nav.PushPathByName("b", nil, nil, true))
	assert.True(t, peer.Animated())
}

func TestNavigation_Navigate(t *testing.T) {
	nav, peer, _ := newNavigation(t, navstack.Options{Routes: map[string]navstack.NavigationOptions{
		"home": {LaunchMode: navstack.LaunchModeMoveToTopSingleton, Animated: false},
	}})

	require.NoError(t, nav.PushPathByName("home", 1, nil, true))
	_, err := nav.Navigate("detail", nil, nil)
	require.NoError(t, err)
	assert.True(t, peer.Animated(), "unrouted names push animated")

	top, err := nav.Navigate("home", 2, nil)
	require.NoError(t, err)
	require.NotNil(t, top)
	assert.Equal(t, 2, top.Param)
	assert.False(t, peer.Animated())
	assert.Equal(t, []string{"detail", "home"}, nav.Stack().Names())
}

func TestNavigation_RouteOptions(t *testing.T) {
	nav, _, _ := newNavigation(t, navstack.Options{Routes: map[string]navstack.NavigationOptions{
		"caf\u00e9": {LaunchMode: navstack.LaunchModePopToSingleton},
	}})

	assert.Equal(t, navstack.LaunchModePopToSingleton, nav.RouteOptions("cafe\u0301").LaunchMode)
	assert.Equal(t, navstack.DefaultNavigationOptions(), nav.RouteOptions("other"))
}

func TestNavigation_ReplacePathByName(t *testing.T) {
	nav, _, _ := newNavigation(t, navstack.Options{})
	require.NoError(t, nav.PushPathByName("a", nil, nil, true))
	require.NoError(t, nav.PushPathByName("b", nil, nil, true))
	require.NoError(t, nav.ReplacePathByName("c", "p", true))

	assert.Equal(t, []string{"a", "c"}, nav.Stack().Names())
	p, ok := nav.ParamByIndex(1)
	require.True(t, ok)
	assert.Equal(t, "p", p)
}

func TestNavigation_MovesAndRemovals(t *testing.T) {
	nav, peer, _ := newNavigation(t, navstack.Options{})
	for _, name := range []string{"a", "b", "c", "b"} {
		require.NoError(t, nav.PushPathByName(name, name+"-param", nil, true))
	}

	index, err := nav.MoveToTop("a", true)
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	require.NoError(t, nav.MoveIndexToTop(0, true))
	assert.Equal(t, []string{"c", "b", "a", "b"}, nav.Stack().Names())
	assert.Equal(t, []any{"b-param", "b-param"}, nav.ParamsByName("b"))

	peer.Reset()
	index, err = nav.MoveToTop("zzz", true)
	require.NoError(t, err)
	assert.Equal(t, -1, index)
	require.NoError(t, nav.MoveIndexToTop(10, true))
	require.NoError(t, nav.PopToIndex(10, nil, true))
	assert.Empty(t, peer.Calls(), "no-ops do not reach the peer")

	count, err := nav.RemoveByName("b")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.False(t, peer.Animated(), "removals are not animated")

	peer.Reset()
	ok, err := nav.RemoveByDestinationID("no-such-destination")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, peer.Calls())

	top := nav.Stack().Top()
	ok, err = nav.RemoveByDestinationID(top.DestinationID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"set_path"}, callOps(peer))

	count, err = nav.RemoveByIndexes([]int{0})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, nav.Stack().IsEmpty())

	peer.Reset()
	require.NoError(t, nav.Clear(true))
	assert.Empty(t, peer.Calls(), "clearing an empty stack is a no-op")
}

func TestNavigation_SetPathStack(t *testing.T) {
	nav, peer, b := newNavigation(t, navstack.Options{})
	require.NoError(t, nav.PushPathByName("a", nil, nil, true))
	require.NoError(t, peer.RequestSync())
	a := nav.Stack().Top()

	require.NoError(t, nav.SetPathStack([]*navstack.Entry{{Name: "z"}, a}, false))
	require.NoError(t, peer.RequestSync())

	assert.Equal(t, []string{"z", "a"}, nav.Stack().Names())
	assert.Equal(t, builds{"a": 1, "z": 1}, b, "a keeps its subtree")
}

func TestNavigation_Register(t *testing.T) {
	peer := peertest.New()
	nav, err := navstack.New(peer, navstack.Options{})
	require.NoError(t, err)

	require.ErrorIs(t, nav.Register("  ", nil), navstack.ErrEmptyName)

	var used []string
	require.NoError(t, nav.Register("home", func(name string, _ any) (navstack.Node, error) {
		used = append(used, "home-builder")
		return "home", nil
	}))
	nav.SetDefaultBuilder(func(name string, _ any) (navstack.Node, error) {
		used = append(used, "default:"+name)
		return name, nil
	})

	require.NoError(t, nav.PushPathByName("home", nil, nil, true))
	require.NoError(t, nav.PushPathByName("other", nil, nil, true))
	require.NoError(t, peer.RequestSync())

	assert.Equal(t, []string{"home-builder", "default:other"}, used)
	node, ok := peer.Node(0)
	require.True(t, ok)
	assert.Equal(t, "home", node)
}

func callOps(p *peertest.Peer) []string {
	calls := p.Calls()
	ops := make([]string, 0, len(calls))
	for _, c := range calls {
		ops = append(ops, c.Op)
	}
	return ops
}
