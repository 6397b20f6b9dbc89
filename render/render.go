package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/anirudhraja/protodump/wire"
)

const indentUnit = "  "

// Renderer prints decoded messages as an indented tree:
//
//	1: 150
//	2: {
//	  1: abc
//	}
type Renderer struct {
	opts   Options
	logger zerolog.Logger
}

// New creates a Renderer
func New(opts Options, logger zerolog.Logger) *Renderer {
	if len(opts.Strategies) == 0 {
		opts.Strategies = DefaultStrategies
	}
	return &Renderer{opts: opts, logger: logger}
}

// Lines renders msg with default options
func Lines(msg wire.Message) []string {
	return New(Options{}, zerolog.Nop()).Lines(msg)
}

// Lines renders msg into one string per output line
func (r *Renderer) Lines(msg wire.Message) []string {
	var lines []string
	r.walk(msg, 0, func(line string) {
		lines = append(lines, line)
	})
	return lines
}

// Write renders msg to w, one newline-terminated line at a time
func (r *Renderer) Write(w io.Writer, msg wire.Message) error {
	bw := bufio.NewWriter(w)
	var err error
	r.walk(msg, 0, func(line string) {
		if err != nil {
			return
		}
		if _, err = bw.WriteString(line); err == nil {
			err = bw.WriteByte('\n')
		}
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

func (r *Renderer) walk(msg wire.Message, depth int, emit func(string)) {
	var open []wire.FieldNumber

	for _, f := range msg {
		level := depth + len(open)
		prefix := strings.Repeat(indentUnit, level) + strconv.FormatUint(uint64(f.Number), 10) + ": "

		switch f.Value.Type {
		case wire.WireVarint, wire.WireFixed64, wire.WireFixed32:
			n, _ := f.Value.Uint64()
			emit(prefix + strconv.FormatUint(n, 10))

		case wire.WireBytes:
			node := classify(f.Value.Bytes, r.opts.Wire, r.opts.Strategies, r.tooDeep(level))
			r.logger.Debug().
				Uint64("field", uint64(f.Number)).
				Int("len", len(f.Value.Bytes)).
				Stringer("kind", node.Kind).
				Msg("classified payload")

			switch node.Kind {
			case KindSubMessage:
				emit(prefix + "{")
				r.walk(node.Message, level+1, emit)
				emit(strings.Repeat(indentUnit, level) + "}")
			case KindText:
				emit(prefix + node.Text)
			default:
				emit(prefix + FormatBytes(node.Raw))
			}

		case wire.WireStartGroup:
			if r.opts.Groups != GroupNest {
				continue
			}
			emit(prefix + "{")
			open = append(open, f.Number)

		case wire.WireEndGroup:
			if r.opts.Groups != GroupNest {
				continue
			}
			if len(open) == 0 || open[len(open)-1] != f.Number {
				r.logger.Debug().Uint64("field", uint64(f.Number)).Msg("ignoring unmatched end group")
				continue
			}
			open = open[:len(open)-1]
			emit(strings.Repeat(indentUnit, depth+len(open)) + "}")
		}
	}

	for len(open) > 0 {
		r.logger.Debug().Uint64("field", uint64(open[len(open)-1])).Msg("closing unterminated group")
		open = open[:len(open)-1]
		emit(strings.Repeat(indentUnit, depth+len(open)) + "}")
	}
}

// tooDeep reports whether a payload found at level may no longer be
// tried as a sub-message.
func (r *Renderer) tooDeep(level int) bool {
	return r.opts.MaxDepth > 0 && level >= r.opts.MaxDepth
}

// FormatBytes renders b as a bracketed list of two-digit hex pairs,
// e.g. [0a, ff, 01].
func FormatBytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b)*4 + 2)
	sb.WriteByte('[')
	for i, c := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%02x", c)
	}
	sb.WriteByte(']')
	return sb.String()
}
