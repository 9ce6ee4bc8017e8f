package visit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cavepaths/core"
)

// ErrUnknownPolicy is returned by ParsePolicy for an unrecognized name.
var ErrUnknownPolicy = errors.New("visit: unknown policy")

// DefaultStart is the node that anchors every path and is never re-entered.
const DefaultStart = "start"

// Policy selects a revisit rule for small nodes.
type Policy uint8

const (
	// SingleVisit allows every small node at most once per path.
	SingleVisit Policy = iota
	// OneSmallTwice allows one small node twice per path, others once.
	OneSmallTwice
)

// Policies lists every policy in declaration order.
func Policies() []Policy {
	return []Policy{SingleVisit, OneSmallTwice}
}

// String returns the canonical policy name.
func (p Policy) String() string {
	switch p {
	case SingleVisit:
		return "single-visit"
	case OneSmallTwice:
		return "one-small-twice"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy accepts the canonical names and the short forms "single" and "twice".
// Matching is case-insensitive.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "single-visit":
		return SingleVisit, nil
	case "twice", "one-small-twice":
		return OneSmallTwice, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Allows reports whether candidate may be entered after h, with
// DefaultStart as the never-revisited start node.
func (p Policy) Allows(candidate string, h History) bool {
	return p.AllowsFrom(DefaultStart, candidate, h)
}

// AllowsFrom is Allows with an explicit start node name.
//
// Rules:
//   - candidate == start: never.
//   - candidate large: always.
//   - SingleVisit: candidate not yet on the path.
//   - OneSmallTwice: candidate not yet on the path, or on it exactly once
//     while no small node has been doubled.
//
// Unknown policies allow nothing.
func (p Policy) AllowsFrom(start, candidate string, h History) bool {
	if candidate == start {
		return false
	}
	if !core.IsSmall(candidate) {
		return true
	}

	seen := h.Count(candidate)
	switch p {
	case SingleVisit:
		return seen == 0
	case OneSmallTwice:
		return seen == 0 || (seen == 1 && !h.Doubled())
	default:
		return false
	}
}
