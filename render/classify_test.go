package render

import (
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/anirudhraja/protodump/wire"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		kind    Kind
	}{
		{"empty payload", []byte{}, KindSubMessage},
		{"message that is also utf8", []byte{0x08, 0x01}, KindSubMessage},
		{"plain text", []byte("abc"), KindText},
		{"multibyte text", []byte("héllo wörld"), KindText},
		{"binary", []byte{0xff, 0x00}, KindRawBytes},
		{"truncated message, invalid utf8", []byte{0x12, 0x05, 0xc3}, KindRawBytes},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			node := Classify(test.payload, wire.Options{})
			if node.Kind != test.kind {
				t.Fatalf("expected %s, got %s", test.kind, node.Kind)
			}
			switch node.Kind {
			case KindText:
				if node.Text != string(test.payload) {
					t.Errorf("expected text %q, got %q", test.payload, node.Text)
				}
			case KindRawBytes:
				if string(node.Raw) != string(test.payload) {
					t.Errorf("expected raw %x, got %x", test.payload, node.Raw)
				}
			}
		})
	}
}

func TestClassify_Totality(t *testing.T) {
	check := func(payload []byte) bool {
		node := Classify(payload, wire.Options{})
		_, err := wire.Decode(payload)
		switch node.Kind {
		case KindSubMessage:
			return err == nil
		case KindText:
			return err != nil && utf8.Valid(payload)
		case KindRawBytes:
			return err != nil && !utf8.Valid(payload)
		default:
			return false
		}
	}
	if err := quick.Check(check, &quick.Config{MaxCount: 2000}); err != nil {
		t.Error(err)
	}
}

func TestClassify_CustomStrategies(t *testing.T) {
	r := New(Options{Strategies: []Strategy{Text, RawBytes}}, zerolog.Nop())
	got := r.Lines(mustDecode(t, []byte{0x0a, 0x02, 0x08, 0x01}))
	if len(got) != 1 || got[0] != "1: \x08\x01" {
		t.Errorf("expected text rendering without sub-message strategy, got %q", got)
	}

	// A strategy list that rejects everything still falls back to raw bytes.
	node := classify([]byte{0x01}, wire.Options{}, nil, false)
	if node.Kind != KindRawBytes {
		t.Errorf("expected raw bytes fallback, got %s", node.Kind)
	}
}
