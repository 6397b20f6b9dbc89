package render

import (
	"fmt"

	"github.com/anirudhraja/protodump/wire"
)

// GroupMode selects how StartGroup/EndGroup markers are rendered.
type GroupMode uint8

const (
	// GroupSkip prints nothing for group markers; the fields between them
	// appear at the level of the enclosing message.
	GroupSkip GroupMode = iota
	// GroupNest pairs each StartGroup with the next EndGroup of the same
	// field number and prints the fields in between one level deeper.
	GroupNest
)

func (m GroupMode) String() string {
	switch m {
	case GroupSkip:
		return "skip"
	case GroupNest:
		return "nest"
	default:
		return fmt.Sprintf("GroupMode(%d)", uint8(m))
	}
}

// ParseGroupMode parses "skip" or "nest".
func ParseGroupMode(s string) (GroupMode, error) {
	switch s {
	case "", "skip":
		return GroupSkip, nil
	case "nest":
		return GroupNest, nil
	default:
		return GroupSkip, fmt.Errorf("unknown group mode %q", s)
	}
}

// Options controls rendering
type Options struct {
	Groups GroupMode
	// MaxDepth stops sub-message detection below this nesting level.
	// Zero means unlimited.
	MaxDepth int
	// Wire is passed to the decoder when payloads are tried as messages.
	Wire wire.Options
	// Strategies overrides DefaultStrategies when non-empty.
	Strategies []Strategy
}
