package wire

import "fmt"

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType uint8

const (
	WireVarint     WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64    WireType = 1 // fixed64, sfixed64, double
	WireBytes      WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireStartGroup WireType = 3 // deprecated group start marker
	WireEndGroup   WireType = 4 // deprecated group end marker
	WireFixed32    WireType = 5 // fixed32, sfixed32, float
)

// Valid reports whether t is one of the six wire types defined by protobuf.
func (t WireType) Valid() bool {
	return t <= WireFixed32
}

func (t WireType) String() string {
	switch t {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "bytes"
	case WireStartGroup:
		return "start_group"
	case WireEndGroup:
		return "end_group"
	case WireFixed32:
		return "fixed32"
	default:
		return fmt.Sprintf("wiretype(%d)", uint8(t))
	}
}

// FieldNumber represents a protobuf field number
type FieldNumber uint64

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType&0x7))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}

// Value is a decoded wire value. Type selects which payload is meaningful:
// Varint holds both varint and fixed64 values, Fixed32 holds fixed32 values
// and Bytes holds length-prefixed payloads. Group markers carry nothing.
type Value struct {
	Type    WireType
	Varint  uint64
	Fixed32 uint32
	Bytes   []byte // view into the decoded buffer, not a copy
}

// VarintValue builds a varint Value
func VarintValue(v uint64) Value { return Value{Type: WireVarint, Varint: v} }

// Fixed64Value builds a fixed64 Value
func Fixed64Value(v uint64) Value { return Value{Type: WireFixed64, Varint: v} }

// Fixed32Value builds a fixed32 Value
func Fixed32Value(v uint32) Value { return Value{Type: WireFixed32, Fixed32: v} }

// BytesValue builds a length-prefixed Value
func BytesValue(b []byte) Value { return Value{Type: WireBytes, Bytes: b} }

// StartGroupValue builds a group start marker
func StartGroupValue() Value { return Value{Type: WireStartGroup} }

// EndGroupValue builds a group end marker
func EndGroupValue() Value { return Value{Type: WireEndGroup} }

// Uint64 returns the numeric payload of varint, fixed64 and fixed32 values.
// ok is false for bytes and group markers.
func (v Value) Uint64() (n uint64, ok bool) {
	switch v.Type {
	case WireVarint, WireFixed64:
		return v.Varint, true
	case WireFixed32:
		return uint64(v.Fixed32), true
	default:
		return 0, false
	}
}

// Field is a single decoded field: its number and wire value.
type Field struct {
	Number FieldNumber
	Value  Value
}

// Message is the ordered list of fields found in a buffer. Repeated field
// numbers are kept in the order they appear.
type Message []Field
