package script

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/peertest"
)

// TraceLine records the outcome of one step.
type TraceLine struct {
	Step   int      `json:"step"`
	Op     Op       `json:"op"`
	Detail string   `json:"detail,omitempty"`
	Names  []string `json:"names"`
	Calls  []string `json:"calls"`
}

// Run replays s against a fresh Navigation. Every destination is built as
// a string node "<name>#<n>". The trace is returned up to and including the
// step that failed, if any.
func Run(s *Script, opts navstack.Options) ([]TraceLine, error) {
	peer := peertest.New()
	nav, err := navstack.New(peer, opts)
	if err != nil {
		return nil, err
	}

	built := 0
	nav.SetDefaultBuilder(func(name string, _ any) (navstack.Node, error) {
		built++
		return fmt.Sprintf("%s#%d", name, built), nil
	})

	var popped []string
	onPop := func(info navstack.PopInfo) {
		popped = append(popped, fmt.Sprintf("on_pop(%s,%v)", info.Entry.Name, info.Result))
	}

	trace := make([]TraceLine, 0, len(s.Steps))
	for i, step := range s.Steps {
		peer.Reset()
		popped = popped[:0]

		detail, err := apply(nav, peer, step, onPop)

		if len(popped) > 0 {
			detail = strings.TrimSpace(detail + " " + strings.Join(popped, " "))
		}
		calls := make([]string, 0, len(peer.Calls()))
		for _, c := range peer.Calls() {
			calls = append(calls, c.String())
		}
		trace = append(trace, TraceLine{
			Step:   i + 1,
			Op:     step.Op,
			Detail: detail,
			Names:  nav.Stack().Names(),
			Calls:  calls,
		})

		if err != nil {
			return trace, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}

	return trace, nil
}

func apply(nav *navstack.Navigation, peer *peertest.Peer, step Step, onPop func(navstack.PopInfo)) (string, error) {
	switch step.Op {
	case OpPush, OpReplace:
		opts, err := step.options()
		if err != nil {
			return "", err
		}
		e := &navstack.Entry{Name: step.Name, Param: step.Param, OnPop: onPop}
		var top *navstack.Entry
		if step.Op == OpPush {
			top, err = nav.Push(e, opts)
		} else {
			top, err = nav.Replace(e, opts)
		}
		return describePush(step.Name, opts.LaunchMode, top == nil), err

	case OpNavigate:
		top, err := nav.Navigate(step.Name, step.Param, onPop)
		return describePush(step.Name, nav.RouteOptions(step.Name).LaunchMode, top == nil), err

	case OpPop:
		e, err := nav.Pop(step.Result, step.animated())
		if e == nil {
			return "empty", err
		}
		return "popped " + e.Name, err

	case OpPopToIndex:
		return fmt.Sprintf("index=%d", step.Index), nav.PopToIndex(step.Index, step.Result, step.animated())

	case OpPopToName:
		index, err := nav.PopToName(step.Name, step.Result, step.animated())
		return fmt.Sprintf("%s index=%d", step.Name, index), err

	case OpMoveToTop:
		index, err := nav.MoveToTop(step.Name, step.animated())
		return fmt.Sprintf("%s index=%d", step.Name, index), err

	case OpMoveIndexToTop:
		return fmt.Sprintf("index=%d", step.Index), nav.MoveIndexToTop(step.Index, step.animated())

	case OpRemoveByName:
		count, err := nav.RemoveByName(step.Name)
		return fmt.Sprintf("%s removed=%d", step.Name, count), err

	case OpClear:
		return "", nav.Clear(step.animated())

	case OpSync:
		return "", peer.RequestSync()

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
}

func describePush(name string, mode navstack.LaunchMode, dropped bool) string {
	detail := name
	if mode != navstack.LaunchModeStandard {
		detail += " " + mode.String()
	}
	if dropped {
		detail += " dropped"
	}
	return detail
}

// Format renders a trace as text, one line per step.
func Format(trace []TraceLine) string {
	var b strings.Builder
	for _, l := range trace {
		fmt.Fprintf(&b, "%02d %s", l.Step, l.Op)
		if l.Detail != "" {
			fmt.Fprintf(&b, " %s", l.Detail)
		}
		fmt.Fprintf(&b, " names=[%s] calls=[%s]\n", strings.Join(l.Names, " "), strings.Join(l.Calls, " "))
	}
	return b.String()
}
