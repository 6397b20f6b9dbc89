package wire

// BytesDecoder handles length-prefixed decoding operations
type BytesDecoder struct {
	decoder *Decoder
}

// NewBytesDecoder creates a new bytes decoder
func NewBytesDecoder(d *Decoder) *BytesDecoder {
	return &BytesDecoder{decoder: d}
}

// DECODER METHODS

// DecodeLengthPrefixed decodes a varint length followed by exactly that many
// bytes. The returned slice shares the decoder's buffer.
func (bd *BytesDecoder) DecodeLengthPrefixed() ([]byte, error) {
	vd := NewVarintDecoder(bd.decoder)
	length, err := vd.DecodeVarint()
	if err != nil {
		return nil, err
	}

	d := bd.decoder
	if length > uint64(len(d.buf)-d.pos) {
		return nil, ErrUnexpectedEnd
	}

	end := d.pos + int(length)
	data := d.buf[d.pos:end:end]
	d.pos = end

	return data, nil
}

// UTILITY FUNCTIONS

// BytesSize returns the size needed to encode the given bytes
func BytesSize(data []byte) int {
	return VarintSize(uint64(len(data))) + len(data)
}

// Convenience methods for direct access

// DecodeLengthPrefixed - convenience method for main decoder
func (d *Decoder) DecodeLengthPrefixed() ([]byte, error) {
	bd := NewBytesDecoder(d)
	return bd.DecodeLengthPrefixed()
}
