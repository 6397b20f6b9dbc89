package wire

// VarintDecoder handles varint decoding operations
type VarintDecoder struct {
	decoder *Decoder
}

// NewVarintDecoder creates a new varint decoder
func NewVarintDecoder(d *Decoder) *VarintDecoder {
	return &VarintDecoder{decoder: d}
}

// DECODER METHODS

// DecodeVarint decodes an unsigned LEB128 varint from the current position.
// The first byte carries the least significant 7 bits. There is no limit on
// the number of continuation bytes; how bits past 63 are treated depends on
// the decoder's VarintPolicy.
func (vd *VarintDecoder) DecodeVarint() (uint64, error) {
	d := vd.decoder
	strict := d.opts.Varint == VarintReject

	var result uint64
	var shift uint

	for i := 0; ; i++ {
		if d.pos >= len(d.buf) {
			return 0, ErrUnexpectedEnd
		}

		b := d.buf[d.pos]
		d.pos++
		group := uint64(b & 0x7F)

		if strict && (i >= 10 || (shift == 63 && group > 1)) {
			return 0, ErrVarintOverflow
		}

		if shift < 64 {
			result |= group << shift
		}

		// If MSB is not set, we're done
		if b&0x80 == 0 {
			return result, nil
		}

		shift += 7
	}
}

// UTILITY FUNCTIONS

// VarintSize returns the number of bytes needed to encode the given varint
func VarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// Convenience methods for direct access

// DecodeVarint - convenience method for main decoder
func (d *Decoder) DecodeVarint() (uint64, error) {
	vd := NewVarintDecoder(d)
	return vd.DecodeVarint()
}
