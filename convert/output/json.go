package output

import (
	"bufio"
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"lensconv/content"
)

type jsonGenerator struct {
	log *zap.Logger
}

func (g *jsonGenerator) Generate(ctx context.Context, c *content.Content, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	graph := c.Document.Export()
	g.log.Debug("Writing graph", zap.String("file", outputPath), zap.Int("nodes", len(graph.Nodes)))

	return writeFile(outputPath, func(w *bufio.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(graph)
	})
}
