package wire

import (
	"errors"
	"fmt"
)

// Decoder handles low-level protobuf wire format decoding
type Decoder struct {
	buf  []byte
	pos  int
	opts Options
}

// NewDecoder creates a new wire format decoder
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
		pos: 0,
	}
}

// NewDecoderWithOptions creates a decoder with non-default options
func NewDecoderWithOptions(data []byte, opts Options) *Decoder {
	return &Decoder{
		buf:  data,
		pos:  0,
		opts: opts,
	}
}

// Pos returns the cursor position
func (d *Decoder) Pos() int { return d.pos }

// Remaining returns the number of unread bytes
func (d *Decoder) Remaining() int { return len(d.buf) - d.pos }

// Done reports whether the whole buffer has been consumed
func (d *Decoder) Done() bool { return d.pos >= len(d.buf) }

// Decode decodes a complete buffer into a Message with default options.
func Decode(data []byte) (Message, error) {
	return NewDecoder(data).DecodeAll()
}

// DecodeWithOptions decodes a complete buffer into a Message.
func DecodeWithOptions(data []byte, opts Options) (Message, error) {
	return NewDecoderWithOptions(data, opts).DecodeAll()
}

// DecodeAll decodes fields until the buffer is exhausted and requires that
// every byte belongs to a field. Any failure discards the fields decoded so
// far: a schema-less decoder cannot tell trailing garbage from a misread
// earlier field, so the error is reported as ErrTrailingBytes wrapping the
// cause.
func (d *Decoder) DecodeAll() (Message, error) {
	md := NewMessageDecoder(d)
	msg, err := md.DecodeMessage()
	if err != nil {
		offset := d.pos
		var de *DecodeError
		if errors.As(err, &de) {
			offset = de.Offset
		}
		return nil, fmt.Errorf("%w: %d of %d bytes unconsumed: %w", ErrTrailingBytes, len(d.buf)-offset, len(d.buf), err)
	}
	return msg, nil
}
