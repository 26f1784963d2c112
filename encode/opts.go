package encode

import "github.com/signadot/qtree/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeWire selects the compact single line form of the format.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
