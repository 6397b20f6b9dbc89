// Package protodump decodes protobuf wire-format data without a schema and
// prints it as an indented tree.
package protodump

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/anirudhraja/protodump/config"
	"github.com/anirudhraja/protodump/render"
	"github.com/anirudhraja/protodump/wire"
)

// ===== SCHEMA-LESS API =====

// Decode parses a complete buffer into its fields. The whole buffer must be
// consumed; there is no partial result.
func Decode(data []byte) (wire.Message, error) {
	return wire.Decode(data)
}

// Render prints msg with the default heuristics, one string per line
func Render(msg wire.Message) []string {
	return render.Lines(msg)
}

// Dumper decodes and renders buffers with a fixed configuration
type Dumper struct {
	cfg      config.Config
	renderer *render.Renderer
	logger   zerolog.Logger
}

// New creates a Dumper. cfg is expected to be validated.
func New(cfg config.Config, logger zerolog.Logger) *Dumper {
	return &Dumper{
		cfg:      cfg,
		renderer: render.New(cfg.RenderOptions(), logger),
		logger:   logger,
	}
}

// Decode parses data using the configured varint policy
func (d *Dumper) Decode(data []byte) (wire.Message, error) {
	msg, err := wire.DecodeWithOptions(data, d.cfg.WireOptions())
	if err != nil {
		return nil, err
	}
	d.logger.Debug().Int("bytes", len(data)).Int("fields", len(msg)).Msg("decoded buffer")
	return msg, nil
}

// Render prints msg using the configured options
func (d *Dumper) Render(msg wire.Message) []string {
	return d.renderer.Lines(msg)
}

// Dump decodes data and writes the tree to w. Nothing is written when
// decoding fails.
func (d *Dumper) Dump(w io.Writer, data []byte) error {
	msg, err := d.Decode(data)
	if err != nil {
		return err
	}
	return d.renderer.Write(w, msg)
}
