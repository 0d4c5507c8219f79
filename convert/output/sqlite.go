package output

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"lensconv/content"
	"lensconv/document"
)

const schema = `
CREATE TABLE document (
	id        TEXT PRIMARY KEY,
	title     TEXT NOT NULL,
	doi       TEXT,
	created   TEXT,
	publisher TEXT,
	language  TEXT,
	source    TEXT NOT NULL
);
CREATE TABLE nodes (
	seq       INTEGER NOT NULL UNIQUE,
	id        TEXT PRIMARY KEY,
	type      TEXT NOT NULL,
	source_id TEXT,
	data      TEXT NOT NULL
);
CREATE TABLE views (
	view     TEXT NOT NULL,
	position INTEGER NOT NULL,
	node_id  TEXT NOT NULL REFERENCES nodes(id),
	PRIMARY KEY (view, position)
);
CREATE TABLE annotations (
	id      TEXT PRIMARY KEY,
	type    TEXT NOT NULL,
	node_id TEXT NOT NULL REFERENCES nodes(id),
	field   TEXT NOT NULL,
	range_start INTEGER NOT NULL,
	range_end   INTEGER NOT NULL,
	target  TEXT,
	url     TEXT
);
CREATE INDEX annotations_node ON annotations(node_id, field);
CREATE TABLE gaps (
	element TEXT NOT NULL,
	path    TEXT NOT NULL,
	message TEXT NOT NULL
);
`

// sqliteGenerator stores article graph in a fresh SQLite database. Nodes keep
// their JSON form, annotations and views are normalized for querying.
type sqliteGenerator struct {
	log *zap.Logger
}

func (g *sqliteGenerator) Generate(ctx context.Context, c *content.Content, outputPath string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := sqlite.OpenConn(outputPath, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close database: %w", cerr)
		}
	}()
	conn.SetInterrupt(ctx.Done())

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return g.store(conn, c)
}

func (g *sqliteGenerator) store(conn *sqlite.Conn, c *content.Content) (err error) {
	defer sqlitex.Save(conn)(&err)

	graph := c.Document.Export()
	root := c.Document.Root()
	if err := sqlitex.Execute(conn,
		`INSERT INTO document (id, title, doi, created, publisher, language, source) VALUES (?, ?, ?, ?, ?, ?, ?);`,
		&sqlitex.ExecOptions{Args: []any{graph.ID, root.Title, root.DOI, root.Created, root.Publisher, root.Language, c.SrcName}}); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	for i, n := range graph.Nodes {
		data, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("encode node %s: %w", n.NodeID(), err)
		}
		if err := sqlitex.Execute(conn,
			`INSERT INTO nodes (seq, id, type, source_id, data) VALUES (?, ?, ?, ?, ?);`,
			&sqlitex.ExecOptions{Args: []any{i, n.NodeID(), string(n.NodeType()), n.SourceID(), string(data)}}); err != nil {
			return fmt.Errorf("insert node %s: %w", n.NodeID(), err)
		}
	}

	for _, v := range graph.Views {
		for pos, id := range v.Nodes {
			if err := sqlitex.Execute(conn,
				`INSERT INTO views (view, position, node_id) VALUES (?, ?, ?);`,
				&sqlitex.ExecOptions{Args: []any{v.Name, pos, id}}); err != nil {
				return fmt.Errorf("insert view %s: %w", v.Name, err)
			}
		}
	}

	for _, a := range graph.Annotations {
		if err := g.storeAnnotation(conn, a); err != nil {
			return err
		}
	}

	if c.Result != nil {
		for _, gap := range c.Result.Gaps {
			if err := sqlitex.Execute(conn,
				`INSERT INTO gaps (element, path, message) VALUES (?, ?, ?);`,
				&sqlitex.ExecOptions{Args: []any{gap.Element, gap.Path, gap.Message}}); err != nil {
				return fmt.Errorf("insert gap: %w", err)
			}
		}
	}

	g.log.Debug("Graph stored",
		zap.Int("nodes", len(graph.Nodes)), zap.Int("annotations", len(graph.Annotations)), zap.Int("views", len(graph.Views)))
	return nil
}

func (g *sqliteGenerator) storeAnnotation(conn *sqlite.Conn, a *document.Annotation) error {
	if err := sqlitex.Execute(conn,
		`INSERT INTO annotations (id, type, node_id, field, range_start, range_end, target, url) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		&sqlitex.ExecOptions{Args: []any{a.ID, string(a.Kind), a.Path.Node, a.Path.Field, a.Range.Start, a.Range.End, a.Target, a.URL}}); err != nil {
		return fmt.Errorf("insert annotation %s: %w", a.ID, err)
	}
	return nil
}
