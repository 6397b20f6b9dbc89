package wire

import "google.golang.org/protobuf/encoding/protowire"

// Encoder handles low-level protobuf wire format encoding
type Encoder struct {
	buf []byte
}

// NewEncoder creates a new wire format encoder
func NewEncoder() *Encoder {
	return &Encoder{
		buf: make([]byte, 0),
	}
}

// Bytes returns the encoded bytes
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Reset clears the encoder buffer
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Encode re-encodes a decoded message. Varints are written in their
// shortest form, so the output matches the input whenever the input used
// canonical varints.
func Encode(msg Message) []byte {
	e := &Encoder{buf: make([]byte, 0, Size(msg))}
	for _, f := range msg {
		e.EncodeField(f)
	}
	return e.Bytes()
}

// Size returns the encoded size of msg
func Size(msg Message) int {
	n := 0
	for _, f := range msg {
		n += VarintSize(uint64(MakeTag(f.Number, f.Value.Type)))
		switch f.Value.Type {
		case WireVarint:
			n += VarintSize(f.Value.Varint)
		case WireFixed64:
			n += 8
		case WireFixed32:
			n += 4
		case WireBytes:
			n += BytesSize(f.Value.Bytes)
		}
	}
	return n
}

// EncodeField encodes a tag and its value
func (e *Encoder) EncodeField(f Field) {
	e.EncodeTag(f.Number, f.Value.Type)
	switch f.Value.Type {
	case WireVarint:
		e.EncodeVarint(f.Value.Varint)
	case WireFixed64:
		e.EncodeFixed64(f.Value.Varint)
	case WireFixed32:
		e.EncodeFixed32(f.Value.Fixed32)
	case WireBytes:
		e.EncodeBytes(f.Value.Bytes)
	}
}

// EncodeTag encodes a field tag
func (e *Encoder) EncodeTag(num FieldNumber, wireType WireType) {
	e.EncodeVarint(uint64(MakeTag(num, wireType)))
}

// EncodeVarint encodes a uint64 as varint
func (e *Encoder) EncodeVarint(v uint64) {
	e.buf = protowire.AppendVarint(e.buf, v)
}

// EncodeFixed32 encodes a 32-bit little-endian value
func (e *Encoder) EncodeFixed32(v uint32) {
	e.buf = protowire.AppendFixed32(e.buf, v)
}

// EncodeFixed64 encodes a 64-bit little-endian value
func (e *Encoder) EncodeFixed64(v uint64) {
	e.buf = protowire.AppendFixed64(e.buf, v)
}

// EncodeBytes encodes a length-prefixed payload
func (e *Encoder) EncodeBytes(data []byte) {
	e.buf = protowire.AppendBytes(e.buf, data)
}

// EncodeString encodes a string as a length-prefixed payload
func (e *Encoder) EncodeString(s string) {
	e.buf = protowire.AppendString(e.buf, s)
}
