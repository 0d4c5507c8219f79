package output

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/amazon-ion/ion-go/ion"
	"go.uber.org/zap"

	"lensconv/content"
	"lensconv/document"
)

// ionGenerator writes Ion text stream: one "document" value with id and
// views followed by every node annotated with its type.
type ionGenerator struct {
	log *zap.Logger
}

type ionHeader struct {
	ID    string               `json:"id"`
	Views []document.GraphView `json:"views"`
}

func (g *ionGenerator) Generate(ctx context.Context, c *content.Content, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	graph := c.Document.Export()
	g.log.Debug("Writing graph", zap.String("file", outputPath), zap.Int("nodes", len(graph.Nodes)))

	return writeFile(outputPath, func(bw *bufio.Writer) error {
		w := ion.NewTextWriter(bw)
		if err := writeIonValue(w, "document", ionHeader{ID: graph.ID, Views: graph.Views}); err != nil {
			return fmt.Errorf("document header: %w", err)
		}
		for _, n := range graph.Nodes {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := writeIonValue(w, string(n.NodeType()), n); err != nil {
				return fmt.Errorf("node %s: %w", n.NodeID(), err)
			}
		}
		for _, a := range graph.Annotations {
			if err := writeIonValue(w, string(a.NodeType()), a); err != nil {
				return fmt.Errorf("annotation %s: %w", a.NodeID(), err)
			}
		}
		return w.Finish()
	})
}

// writeIonValue takes field names and layout from JSON encoding of the value.
func writeIonValue(w ion.Writer, annotation string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := w.Annotations(ion.NewSymbolTokenFromString(annotation)); err != nil {
		return err
	}
	return transcode(dec, w)
}

func transcode(dec *json.Decoder, w ion.Writer) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			if err := w.BeginStruct(); err != nil {
				return err
			}
			for dec.More() {
				key, err := dec.Token()
				if err != nil {
					return err
				}
				name, ok := key.(string)
				if !ok {
					return fmt.Errorf("unexpected field name %v", key)
				}
				if err := w.FieldName(ion.NewSymbolTokenFromString(name)); err != nil {
					return err
				}
				if err := transcode(dec, w); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
			return w.EndStruct()
		case '[':
			if err := w.BeginList(); err != nil {
				return err
			}
			for dec.More() {
				if err := transcode(dec, w); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
			return w.EndList()
		}
		return fmt.Errorf("unexpected delimiter %v", v)
	case string:
		return w.WriteString(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return w.WriteInt(i)
		}
		f, err := v.Float64()
		if err != nil {
			return err
		}
		return w.WriteFloat(f)
	case bool:
		return w.WriteBool(v)
	case nil:
		return w.WriteNull()
	}
	return fmt.Errorf("unexpected token %T", tok)
}
