package content

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/charmap"

	"lensconv/config"
	"lensconv/document"
	"lensconv/jats"
	"lensconv/state"
)

const testArticle = `<?xml version="1.0" encoding="UTF-8"?>
<article xmlns:xlink="http://www.w3.org/1999/xlink">
<front>
	<journal-meta><publisher><publisher-name>Public Library of Science</publisher-name></publisher></journal-meta>
	<article-meta>
		<article-id pub-id-type="doi">10.1371/journal.pone.0000001</article-id>
		<title-group><article-title>Cats &amp; dogs</article-title></title-group>
	</article-meta>
</front>
<body>
	<p>Hello <bold>world</bold>.</p>
	<fig id="f1"><graphic xlink:href="g1.tif"/><object-id pub-id-type="doi">10.1371/journal.pone.0000001.g001</object-id></fig>
	<def-list/>
</body>
</article>`

func setupTestEnv(t *testing.T) (context.Context, *zap.Logger) {
	t.Helper()

	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, logger
}

func TestPrepare(t *testing.T) {
	ctx, log := setupTestEnv(t)

	c, err := Prepare(ctx, strings.NewReader(testArticle), "article.xml", log)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if c.SrcName != "article.xml" || c.Doc == nil || c.Document == nil || c.Result == nil {
		t.Fatalf("incomplete content %+v", c)
	}
	if c.WorkDir != "" {
		t.Fatalf("work directory must not be created without report")
	}

	if c.Document.ID() != "10.1371/journal.pone.0000001" {
		t.Fatalf("document id = %q", c.Document.ID())
	}
	if c.Document.Root().Title != "Cats & dogs" {
		t.Fatalf("title = %q", c.Document.Root().Title)
	}
	if c.Result.Strategy != "plos" {
		t.Fatalf("strategy = %q", c.Result.Strategy)
	}
	fig, ok := c.Document.Get("figure_1").(*document.Figure)
	if !ok {
		t.Fatalf("figure missing")
	}
	if !strings.HasPrefix(fig.URL, "https://journals.plos.org/") {
		t.Fatalf("figure url = %q", fig.URL)
	}
	if len(c.Result.Gaps) != 1 || c.Result.Gaps[0].Element != "def-list" {
		t.Fatalf("unexpected gaps %v", c.Result.Gaps)
	}
}

func TestPrepareForcedPublisher(t *testing.T) {
	ctx, log := setupTestEnv(t)
	env := state.EnvFromContext(ctx)
	env.Publisher = config.PublisherDefault
	env.PublisherForced = true

	c, err := Prepare(ctx, strings.NewReader(testArticle), "article.xml", log)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if c.Result.Strategy != "default" {
		t.Fatalf("strategy = %q", c.Result.Strategy)
	}
	if fig := c.Document.Get("figure_1").(*document.Figure); fig.URL != "g1.tif" {
		t.Fatalf("figure url = %q", fig.URL)
	}
}

func TestPrepareEntities(t *testing.T) {
	ctx, log := setupTestEnv(t)

	src := `<article><front><article-meta><title-group><article-title>A&nbsp;&mdash;&alpha;</article-title></title-group></article-meta></front></article>`
	c, err := Prepare(ctx, strings.NewReader(src), "a.xml", log)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if got := c.Document.Root().Title; got != "A\u00a0\u2014\u03b1" {
		t.Fatalf("title = %q", got)
	}
}

func TestPrepareCharset(t *testing.T) {
	ctx, log := setupTestEnv(t)

	src := `<?xml version="1.0" encoding="windows-1252"?><article><front><article-meta>` +
		`<title-group><article-title>Café</article-title></title-group></article-meta></front></article>`
	data, err := charmap.Windows1252.NewEncoder().String(src)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	c, err := Prepare(ctx, bytes.NewReader([]byte(data)), "a.xml", log)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if got := c.Document.Root().Title; got != "Café" {
		t.Fatalf("title = %q", got)
	}
}

func TestPrepareErrors(t *testing.T) {
	ctx, log := setupTestEnv(t)

	if _, err := Prepare(ctx, strings.NewReader(`<article><front>`), "bad.xml", log); err == nil {
		t.Fatalf("expected error for malformed xml")
	}

	_, err := Prepare(ctx, strings.NewReader(`<article><body/></article>`), "nofront.xml", log)
	if !errors.Is(err, jats.ErrStructure) {
		t.Fatalf("expected structure error, got %v", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := Prepare(canceled, strings.NewReader(testArticle), "a.xml", log); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestPrepareWithReport(t *testing.T) {
	ctx, log := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	rpt, err := (&config.ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	env.Rpt = rpt
	t.Cleanup(func() { _ = rpt.Close() })

	c, err := Prepare(ctx, strings.NewReader(testArticle), "dir/article.xml", log)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if c.WorkDir == "" {
		t.Fatalf("expected work directory")
	}
	t.Cleanup(func() { _ = os.RemoveAll(c.WorkDir) })

	if _, err := os.Stat(filepath.Join(c.WorkDir, "article.xml")); err != nil {
		t.Fatalf("source copy missing: %v", err)
	}
	dump, err := os.ReadFile(filepath.Join(c.WorkDir, "article.xml_converted"))
	if err != nil {
		t.Fatalf("converted dump missing: %v", err)
	}
	for _, want := range []string{`Source: "dir/article.xml"`, "Gaps: 1", "paragraph: 1", "strong: 1", "figure_1"} {
		if !strings.Contains(string(dump), want) {
			t.Fatalf("dump does not contain %q:\n%s", want, dump)
		}
	}
}

func TestContentStringNil(t *testing.T) {
	var c *Content
	if c.String() != "<nil Content>" {
		t.Fatalf("unexpected nil dump")
	}
}
