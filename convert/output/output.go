// Package output writes converted article graph in one of supported formats.
package output

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"lensconv/config"
	"lensconv/content"
)

// Generator writes converted article to the file at outputPath. Output file
// must not exist.
type Generator interface {
	Generate(ctx context.Context, c *content.Content, outputPath string) error
}

// New returns generator for requested format.
func New(format config.OutputFmt, log *zap.Logger) (Generator, error) {
	switch format {
	case config.OutputFmtJson:
		return &jsonGenerator{log: log.Named("json")}, nil
	case config.OutputFmtIon:
		return &ionGenerator{log: log.Named("ion")}, nil
	case config.OutputFmtSqlite:
		return &sqliteGenerator{log: log.Named("sqlite")}, nil
	case config.OutputFmtText:
		return &textGenerator{}, nil
	}
	return nil, fmt.Errorf("unsupported output format %s", format)
}

// writeFile creates file and hands buffered writer to fill. Both write and
// close errors are reported.
func writeFile(path string, fill func(w *bufio.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	w := bufio.NewWriter(f)
	if err := fill(w); err != nil {
		return err
	}
	return w.Flush()
}

type textGenerator struct{}

func (g *textGenerator) Generate(ctx context.Context, c *content.Content, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeFile(outputPath, func(w *bufio.Writer) error {
		_, err := w.WriteString(c.String())
		return err
	})
}
