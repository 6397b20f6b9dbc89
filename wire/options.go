package wire

import "fmt"

// VarintPolicy selects what happens to varints wider than 64 bits.
type VarintPolicy uint8

const (
	// VarintWrap keeps reading continuation bytes and discards every bit
	// past bit 63, so oversized values wrap modulo 2^64.
	VarintWrap VarintPolicy = iota
	// VarintReject fails with ErrVarintOverflow as soon as a group would
	// carry bits past bit 63.
	VarintReject
)

func (p VarintPolicy) String() string {
	switch p {
	case VarintWrap:
		return "wrap"
	case VarintReject:
		return "reject"
	default:
		return fmt.Sprintf("VarintPolicy(%d)", uint8(p))
	}
}

// ParseVarintPolicy parses "wrap" or "reject".
func ParseVarintPolicy(s string) (VarintPolicy, error) {
	switch s {
	case "", "wrap":
		return VarintWrap, nil
	case "reject", "strict":
		return VarintReject, nil
	default:
		return VarintWrap, fmt.Errorf("unknown varint policy %q", s)
	}
}

// Options controls decoder behavior. The zero value matches the
// behavior of the classic protoc --decode_raw style dumpers.
type Options struct {
	Varint VarintPolicy
}
