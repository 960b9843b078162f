package navstack

import (
	"fmt"
	"strings"
)

// LaunchMode decides whether a push creates a new entry or collapses onto an
// existing entry with the same name.
type LaunchMode int

const (
	LaunchModeStandard           LaunchMode = iota // Always append a new entry
	LaunchModeMoveToTopSingleton                   // Move the first same-named entry to the top
	LaunchModePopToSingleton                       // Pop everything above the first same-named entry
	LaunchModeNewInstance                          // Same as Standard
)

func (m LaunchMode) String() string {
	switch m {
	case LaunchModeStandard:
		return "STANDARD"
	case LaunchModeMoveToTopSingleton:
		return "MOVE_TO_TOP_SINGLETON"
	case LaunchModePopToSingleton:
		return "POP_TO_SINGLETON"
	case LaunchModeNewInstance:
		return "NEW_INSTANCE"
	default:
		return fmt.Sprintf("LaunchMode(%d)", int(m))
	}
}

// ParseLaunchMode accepts the names returned by LaunchMode.String, in any case.
// An empty string parses as LaunchModeStandard.
func ParseLaunchMode(raw string) (LaunchMode, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "STANDARD":
		return LaunchModeStandard, nil
	case "MOVE_TO_TOP_SINGLETON":
		return LaunchModeMoveToTopSingleton, nil
	case "POP_TO_SINGLETON":
		return LaunchModePopToSingleton, nil
	case "NEW_INSTANCE":
		return LaunchModeNewInstance, nil
	default:
		return LaunchModeStandard, fmt.Errorf("%w: %q", ErrUnknownLaunchMode, raw)
	}
}

// NavigationOptions configures a push or replace.
type NavigationOptions struct {
	LaunchMode LaunchMode
	Animated   bool
}

// DefaultNavigationOptions is a standard, animated push.
func DefaultNavigationOptions() NavigationOptions {
	return NavigationOptions{LaunchMode: LaunchModeStandard, Animated: true}
}

// Operation is the kind of the last mutation applied to a stack.
type Operation int

const (
	OperationNone    Operation = iota // Nothing has changed yet
	OperationPush                     // An entry was pushed or moved to the top
	OperationPop                      // Entries were popped or removed
	OperationReplace                  // The top entry was replaced
)

func (o Operation) String() string {
	switch o {
	case OperationNone:
		return "none"
	case OperationPush:
		return "push"
	case OperationPop:
		return "pop"
	case OperationReplace:
		return "replace"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}
