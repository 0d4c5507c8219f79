package convert

import (
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"lensconv/config"
	"lensconv/content"
	"lensconv/document"
	"lensconv/jats"
	"lensconv/state"
)

func setupTestEnvForOutputPath(t *testing.T, noDirs bool, transliterate bool, template string) *state.LocalEnv {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Document.FileNameTransliterate = transliterate
	cfg.Document.OutputNameTemplate = template

	env := &state.LocalEnv{
		Log:    logger,
		Cfg:    cfg,
		NoDirs: noDirs,
	}
	return env
}

// setupTestContent converts article built from front matter fragment.
func setupTestContent(t *testing.T, meta, srcName string) *content.Content {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(`<article><front>` + meta + `</front></article>`); err != nil {
		t.Fatalf("read xml: %v", err)
	}
	d := document.New()
	res, err := jats.Convert(doc, d, jats.Options{Log: zaptest.NewLogger(t)})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	return &content.Content{
		SrcName:  srcName,
		Doc:      doc,
		Document: d,
		Result:   res,
	}
}

const testMeta = `<journal-meta><publisher><publisher-name>Landes Bioscience</publisher-name></publisher></journal-meta>
<article-meta>
	<article-id pub-id-type="publisher-id">cc-11-42</article-id>
	<article-id pub-id-type="doi">10.4161/cc.11.42</article-id>
	<title-group><article-title>Cell cycle: a review</article-title></title-group>
	<contrib-group>
		<contrib contrib-type="author"><name><surname>Doe</surname><given-names>John</given-names></name></contrib>
		<contrib contrib-type="author"><name><surname>Roe</surname><given-names>Jane</given-names></name></contrib>
	</contrib-group>
	<pub-date pub-type="epub"><day>3</day><month>5</month><year>2012</year></pub-date>
</article-meta>`

func TestBuildOutputPath(t *testing.T) {
	tests := []struct {
		name          string
		src           string
		noDirs        bool
		transliterate bool
		template      string
		format        config.OutputFmt
		want          string
	}{
		{"no dirs", "articles/journal/article.xml", true, false, "", config.OutputFmtJson,
			filepath.Join("/output", "article.json")},
		{"mirror dirs", "articles/journal/article.xml", false, false, "", config.OutputFmtJson,
			filepath.Join("/output", "articles", "journal", "article.json")},
		{"ion", "article.nxml", true, false, "", config.OutputFmtIon, filepath.Join("/output", "article.ion")},
		{"sqlite", "article.nxml", true, false, "", config.OutputFmtSqlite, filepath.Join("/output", "article.sqlite")},
		{"text", "article.nxml", true, false, "", config.OutputFmtText, filepath.Join("/output", "article.txt")},
		{"template", "in/article.xml", false, true, `{{ .Year }}/{{ (index .Authors 0) }} - {{ .Title }}`, config.OutputFmtSqlite,
			filepath.Join("/output", "in", "2012", "john-doe-cell-cycle-a-review.sqlite")},
		{"template with doi", "article.xml", true, false, `{{ .DOI | replace "/" "_" }}`, config.OutputFmtJson,
			filepath.Join("/output", "10.4161_cc.11.42.json")},
		{"bad template", "article.xml", true, false, `{{ .NoSuchField }}`, config.OutputFmtJson,
			filepath.Join("/output", "article.json")},
		{"template of separators", "article.xml", true, false, `/{{ "/" }}/`, config.OutputFmtJson,
			filepath.Join("/output", "article.json")},
		{"template escaping destination", "article.xml", true, false, `../../{{ .ArticleID }}`, config.OutputFmtJson,
			filepath.Join("/output", "cc-11-42.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setupTestContent(t, testMeta, tt.src)
			env := setupTestEnvForOutputPath(t, tt.noDirs, tt.transliterate, tt.template)

			if got := buildOutputPath(c, tt.src, "/output", tt.format, env); got != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetermineOutputDir(t *testing.T) {
	tests := []struct {
		name     string
		noDirs   bool
		expected string
	}{
		{"no dirs", true, "/output"},
		{"with dirs", false, filepath.Join("/output", "articles", "journal")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, tt.noDirs, false, "")
			if result := determineOutputDir("articles/journal/article.xml", "/output", env); result != tt.expected {
				t.Errorf("determineOutputDir() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestBuildDefaultFileName(t *testing.T) {
	tests := []struct {
		name          string
		src           string
		transliterate bool
		format        config.OutputFmt
		expected      string
	}{
		{"simple json", "article.xml", false, config.OutputFmtJson, "article.json"},
		{"with path", "path/to/article.nxml", false, config.OutputFmtJson, "article.json"},
		{"ion format", "article.xml", false, config.OutputFmtIon, "article.ion"},
		{"sqlite format", "article.xml", false, config.OutputFmtSqlite, "article.sqlite"},
		{"transliterate", "Статья.xml", true, config.OutputFmtJson, "stat-ia.json"},
		{"special chars", "a:b.xml", false, config.OutputFmtText, "ab.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, "")

			result := buildDefaultFileName(tt.src, tt.format, env)
			if result != tt.expected {
				t.Errorf("buildDefaultFileName() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestSplitAndCleanPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{"simple path", "journal/article", []string{"journal", "article"}},
		{"single segment", "article", []string{"article"}},
		{"with trailing slash", "journal/article/", []string{"journal", "article"}},
		{"three levels", "publisher/journal/article", []string{"publisher", "journal", "article"}},
		{"empty path", "", []string{}},
		{"parent references", "../journal/./article", []string{"journal", "article"}},
		{"doubled separators", "journal//article", []string{"journal", "article"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndCleanPath(filepath.FromSlash(tt.path))
			if len(result) != len(tt.expected) {
				t.Errorf("splitAndCleanPath() length = %d, want %d", len(result), len(tt.expected))
				return
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndCleanPath()[%d] = %q, want %q", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCleanPathSegment(t *testing.T) {
	tests := []struct {
		name          string
		segment       string
		transliterate bool
		expected      string
	}{
		{"simple segment", "journal", false, "journal"},
		{"with spaces", "My Article", false, "My Article"},
		{"transliterate cyrillic", "Журнал", true, "zhurnal"},
		{"special chars", "article:name", false, "articlename"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, "")

			result := cleanPathSegment(tt.segment, env)
			if result != tt.expected {
				t.Errorf("cleanPathSegment() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestAssemblePathWithSubdirs(t *testing.T) {
	tests := []struct {
		name          string
		expandedName  string
		transliterate bool
		format        config.OutputFmt
		expected      string
	}{
		{"simple template", "journal/article", false, config.OutputFmtJson, filepath.Join("/output", "journal", "article.json")},
		{"single level", "article", false, config.OutputFmtJson, filepath.Join("/output", "article.json")},
		{"with transliterate", "Журнал/Статья", true, config.OutputFmtJson, filepath.Join("/output", "zhurnal", "stat-ia.json")},
		{"sqlite format", "journal/article", false, config.OutputFmtSqlite, filepath.Join("/output", "journal", "article.sqlite")},
		{"empty", "", false, config.OutputFmtJson, "/output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, "")

			result := assemblePathWithSubdirs("/output", filepath.FromSlash(tt.expandedName), tt.format, env)
			if result != tt.expected {
				t.Errorf("assemblePathWithSubdirs() = %q, want %q", result, tt.expected)
			}
		})
	}
}
