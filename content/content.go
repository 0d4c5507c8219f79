// Package content reads single article and converts it into document graph.
package content

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"lensconv/document"
	"lensconv/jats"
	"lensconv/misc"
	"lensconv/publisher"
	"lensconv/state"
)

// Content keeps both the source XML tree and the document graph converted
// from it.
type Content struct {
	SrcName  string
	Doc      *etree.Document
	Document *document.Document
	Result   *jats.Result
	WorkDir  string
}

// Prepare reads, parses and converts article.
func Prepare(ctx context.Context, r io.Reader, srcName string, log *zap.Logger) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	// Articles prepared for the web sometimes carry HTML named character
	// references without DTD declaring them
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charsetReader,
		Entity:        htmlEntities(),
		ValidateInput: false,
		Permissive:    true,
	}

	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read article: %w", err)
	}

	pubs := &env.Cfg.Document.Publishers
	d := document.New()
	res, err := jats.Convert(doc, d, jats.Options{
		Select: publisher.Selector(pubs, env.Publisher, env.PublisherForced),
		Log:    log,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to convert article: %w", err)
	}

	log.Info("Article converted",
		zap.String("id", res.DocumentID),
		zap.String("publisher", res.Publisher),
		zap.String("enhancements", res.Strategy),
		zap.Int("nodes", res.Nodes),
		zap.Int("annotations", res.Annotations),
		zap.Int("gaps", len(res.Gaps)))

	c := &Content{
		SrcName:  srcName,
		Doc:      doc,
		Document: d,
		Result:   res,
	}

	// Save parsed and converted document for debugging
	if env.Rpt != nil {
		tmpDir, err := os.MkdirTemp("", misc.GetAppName()+"-")
		if err != nil {
			return nil, fmt.Errorf("unable to create temporary directory: %w", err)
		}
		c.WorkDir = tmpDir

		baseSrcName := filepath.Base(srcName)
		for name, write := range map[string]func(string) error{
			baseSrcName: doc.WriteToFile,
			baseSrcName + "_converted": func(path string) error {
				return os.WriteFile(path, []byte(c.String()), 0644)
			},
		} {
			path := filepath.Join(tmpDir, name)
			if err := write(path); err != nil {
				return nil, fmt.Errorf("unable to write %s for debugging: %w", name, err)
			}
			env.Rpt.Store(filepath.Base(tmpDir)+"/"+name, path)
		}
	}
	return c, nil
}

// charsetReader skips declared Unicode encodings: input carrying byte order
// mark is decoded to UTF-8 before it reaches the parser.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	l := strings.ToLower(strings.ReplaceAll(label, "-", ""))
	if strings.HasPrefix(l, "utf16") || strings.HasPrefix(l, "utf32") || l == "ucs2" || l == "ucs4" {
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}

// entityNames lists HTML named character references found in the wild in
// article sources.
var entityNames = []string{
	"nbsp", "ensp", "emsp", "thinsp", "zwnj", "zwj", "shy",
	"ndash", "mdash", "minus", "hellip", "bull", "middot",
	"lsquo", "rsquo", "sbquo", "ldquo", "rdquo", "bdquo", "laquo", "raquo",
	"prime", "Prime", "dagger", "Dagger", "sect", "para", "copy", "reg", "trade",
	"deg", "micro", "plusmn", "times", "divide", "le", "ge", "ne", "asymp", "infin",
	"sup1", "sup2", "sup3", "frac12", "frac14", "frac34", "permil",
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta", "iota", "kappa",
	"lambda", "mu", "nu", "xi", "omicron", "pi", "rho", "sigma", "tau", "upsilon",
	"phi", "chi", "psi", "omega",
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta", "Iota", "Kappa",
	"Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi", "Rho", "Sigma", "Tau", "Upsilon",
	"Phi", "Chi", "Psi", "Omega",
	"larr", "rarr", "uarr", "darr", "harr", "rArr", "lArr", "hArr",
	"auml", "ouml", "uuml", "Auml", "Ouml", "Uuml", "szlig", "eacute", "egrave", "aacute",
	"agrave", "iacute", "oacute", "uacute", "ntilde", "ccedil", "aring", "oslash",
}

func htmlEntities() map[string]string {
	entities := make(map[string]string, len(entityNames))
	for _, name := range entityNames {
		ref := "&" + name + ";"
		if v := html.UnescapeString(ref); v != ref {
			entities[name] = v
		}
	}
	return entities
}
