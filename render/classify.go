// Package render turns a decoded wire.Message into an indented text tree.
//
// Length-prefixed payloads are ambiguous on the wire: the same bytes may be
// an embedded message, a string, or opaque data. Each payload is offered to
// an ordered list of strategies and the first one that accepts it wins.
package render

import (
	"unicode/utf8"

	"github.com/anirudhraja/protodump/wire"
)

// Kind is the classification of a length-prefixed payload
type Kind uint8

const (
	KindSubMessage Kind = iota
	KindText
	KindRawBytes
)

func (k Kind) String() string {
	switch k {
	case KindSubMessage:
		return "submessage"
	case KindText:
		return "text"
	default:
		return "bytes"
	}
}

// Node is the interpretation chosen for a payload. Only the member matching
// Kind is set.
type Node struct {
	Kind    Kind
	Message wire.Message
	Text    string
	Raw     []byte
}

// Strategy attempts one interpretation of a payload. Try returns false when
// the payload does not fit; that is an expected outcome, not an error.
type Strategy struct {
	Kind Kind
	Try  func(payload []byte, opts wire.Options) (Node, bool)
}

var (
	// SubMessage accepts payloads that decode as a field stream with no
	// bytes left over.
	SubMessage = Strategy{
		Kind: KindSubMessage,
		Try: func(payload []byte, opts wire.Options) (Node, bool) {
			msg, err := wire.DecodeWithOptions(payload, opts)
			if err != nil {
				return Node{}, false
			}
			return Node{Kind: KindSubMessage, Message: msg}, true
		},
	}

	// Text accepts payloads that are entirely valid UTF-8.
	Text = Strategy{
		Kind: KindText,
		Try: func(payload []byte, _ wire.Options) (Node, bool) {
			if !utf8.Valid(payload) {
				return Node{}, false
			}
			return Node{Kind: KindText, Text: string(payload)}, true
		},
	}

	// RawBytes accepts anything.
	RawBytes = Strategy{
		Kind: KindRawBytes,
		Try: func(payload []byte, _ wire.Options) (Node, bool) {
			return Node{Kind: KindRawBytes, Raw: payload}, true
		},
	}
)

// DefaultStrategies is the priority order used unless overridden: the
// strictest interpretation first.
var DefaultStrategies = []Strategy{SubMessage, Text, RawBytes}

// Classify runs the default strategies over payload. It never fails.
func Classify(payload []byte, opts wire.Options) Node {
	return classify(payload, opts, DefaultStrategies, false)
}

func classify(payload []byte, opts wire.Options, strategies []Strategy, flat bool) Node {
	for _, s := range strategies {
		if flat && s.Kind == KindSubMessage {
			continue
		}
		if node, ok := s.Try(payload, opts); ok {
			return node
		}
	}
	return Node{Kind: KindRawBytes, Raw: payload}
}
