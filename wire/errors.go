package wire

import (
	"errors"
	"fmt"
)

// Decoding errors
var (
	ErrUnexpectedEnd   = errors.New("unexpected end of buffer")
	ErrInvalidWireType = errors.New("invalid wire type")
	ErrTrailingBytes   = errors.New("trailing bytes after last field")
	ErrVarintOverflow  = errors.New("varint overflows 64 bits")
)

// DecodeError represents a decoding error with the position it occurred at.
type DecodeError struct {
	Offset int         // byte offset of the field being decoded
	Field  FieldNumber // field number, 0 if the tag itself failed
	Err    error       // underlying error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Field == 0 {
		return fmt.Sprintf("decode error at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("decode error at offset %d (field %d): %v", e.Offset, e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// wrapAt wraps an error with the offset and field it belongs to
func wrapAt(err error, offset int, field FieldNumber) error {
	if err == nil {
		return nil
	}

	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}

	return &DecodeError{
		Offset: offset,
		Field:  field,
		Err:    err,
	}
}
