package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/qtree/format"
	"github.com/signadot/qtree/ir"

	"github.com/goccy/go-yaml"
)

var ErrEncode = errors.New("encode error")

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the format selected by opts (JSON by
// default), followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.QueryFormat:
		if err := encodeQuery(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	default:
		return fmt.Errorf("%w: %w: %d", ErrEncode, format.ErrBadFormat, es.format)
	}
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, es.color(ir.NullType, ValueColor, "null"))
	case ir.StringType:
		s, err := jsonString(node.String)
		if err != nil {
			return err
		}
		return writeString(w, es.color(ir.StringType, ValueColor, s))
	case ir.ObjectType, ir.ArrayType:
		return encodeJSONContainer(node, w, es)
	default:
		return fmt.Errorf("%w: unknown type %s", ErrEncode, node.Type)
	}
}

func encodeJSONContainer(node *ir.Node, w io.Writer, es *EncState) error {
	open, close := "[", "]"
	if node.Type == ir.ObjectType {
		open, close = "{", "}"
	}
	if err := writeString(w, es.color(node.Type, SepColor, open)); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeString(w, es.color(node.Type, SepColor, close))
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, es.color(node.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if node.Type == ir.ObjectType {
			f, err := jsonString(node.Fields[i].String)
			if err != nil {
				return err
			}
			sep := ":"
			if !es.wire {
				sep = ": "
			}
			if err := writeString(w, es.color(ir.ObjectType, FieldColor, f)+es.color(ir.ObjectType, SepColor, sep)); err != nil {
				return err
			}
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(node.Type, SepColor, close))
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func jsonString(s string) (string, error) {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	yOpts := []yaml.EncodeOption{yaml.Indent(es.indent)}
	if es.wire {
		yOpts = append(yOpts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(ir.ToMapSlice(node), yOpts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
