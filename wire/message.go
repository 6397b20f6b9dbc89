package wire

import "fmt"

// MessageDecoder handles field stream decoding operations
type MessageDecoder struct {
	decoder *Decoder
}

// NewMessageDecoder creates a new message decoder
func NewMessageDecoder(d *Decoder) *MessageDecoder {
	return &MessageDecoder{decoder: d}
}

// DECODER METHODS

// DecodeField decodes a tag and the value that follows it
func (md *MessageDecoder) DecodeField() (Field, error) {
	d := md.decoder
	start := d.pos

	tag, err := d.DecodeVarint()
	if err != nil {
		return Field{}, wrapAt(err, start, 0)
	}

	fieldNumber, wireType := ParseTag(Tag(tag))

	var value Value
	switch wireType {
	case WireVarint:
		v, err := d.DecodeVarint()
		if err != nil {
			return Field{}, wrapAt(err, start, fieldNumber)
		}
		value = VarintValue(v)
	case WireFixed64:
		v, err := d.DecodeFixed64()
		if err != nil {
			return Field{}, wrapAt(err, start, fieldNumber)
		}
		value = Fixed64Value(v)
	case WireBytes:
		b, err := d.DecodeLengthPrefixed()
		if err != nil {
			return Field{}, wrapAt(err, start, fieldNumber)
		}
		value = BytesValue(b)
	case WireStartGroup:
		value = StartGroupValue()
	case WireEndGroup:
		value = EndGroupValue()
	case WireFixed32:
		v, err := d.DecodeFixed32()
		if err != nil {
			return Field{}, wrapAt(err, start, fieldNumber)
		}
		value = Fixed32Value(v)
	default:
		return Field{}, wrapAt(fmt.Errorf("%w: %d", ErrInvalidWireType, uint8(wireType)), start, fieldNumber)
	}

	return Field{Number: fieldNumber, Value: value}, nil
}

// DecodeMessage decodes fields until the end of the buffer
func (md *MessageDecoder) DecodeMessage() (Message, error) {
	var msg Message
	for !md.decoder.Done() {
		field, err := md.DecodeField()
		if err != nil {
			return nil, err
		}
		msg = append(msg, field)
	}
	if msg == nil {
		msg = Message{}
	}
	return msg, nil
}

// DecodeField - convenience method for main decoder
func (d *Decoder) DecodeField() (Field, error) {
	md := NewMessageDecoder(d)
	return md.DecodeField()
}
