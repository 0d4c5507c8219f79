package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

const detectArticle = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE article PUBLIC "-//NLM//DTD Journal Archiving and Interchange DTD v3.0 20080202//EN" "archivearticle3.dtd">
<article article-type="research-article"><front><article-meta>
<title-group><article-title>Detected</article-title></title-group>
</article-meta></front></article>`

func encodeString(t *testing.T, enc encoding.Encoding, s string) []byte {
	t.Helper()

	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return out
}

func TestArticleMatcher(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want bool
	}{
		{"plain", []byte(detectArticle), true},
		{"bare root", []byte(`<article>`), true},
		{"self closing", []byte(`<article/>`), true},
		{"attributes on next line", []byte("<article\n dtd-version=\"1.1\">"), true},
		{"cut after name", []byte(`<?xml version="1.0"?><article`), true},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, detectArticle...), true},
		{"utf-16le", encodeString(t, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), detectArticle), true},
		{"utf-16be", encodeString(t, unicode.UTF16(unicode.BigEndian, unicode.UseBOM), detectArticle), true},
		{"utf-32le", encodeString(t, utf32.UTF32(utf32.LittleEndian, utf32.UseBOM), detectArticle), true},
		{"other root", []byte(`<?xml version="1.0"?><articles><article-set/></articles>`), false},
		{"fiction book", []byte(`<FictionBook><body/></FictionBook>`), false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filetype.IsType(tt.buf, articleType); got != tt.want {
				t.Fatalf("IsType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeHeaderOddLength(t *testing.T) {
	buf := encodeString(t, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), "<article>")
	// last code unit is split
	got := decodeHeader(buf[:len(buf)-1])
	if string(got) != "<article" {
		t.Fatalf("decodeHeader() = %q", got)
	}
}

func TestDetectUTF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want srcEncoding
	}{
		{"utf-8", []byte{0xEF, 0xBB, 0xBF, '<'}, encUTF8},
		{"utf-16be", []byte{0xFE, 0xFF, 0x00, '<'}, encUTF16BigEndian},
		{"utf-16le", []byte{0xFF, 0xFE, '<', 0x00}, encUTF16LittleEndian},
		{"utf-32be", []byte{0x00, 0x00, 0xFE, 0xFF}, encUTF32BigEndian},
		{"utf-32le", []byte{0xFF, 0xFE, 0x00, 0x00}, encUTF32LittleEndian},
		{"no bom", []byte("<?xml"), encUnknown},
		{"short", []byte{0xEF, 0xBB}, encUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectUTF(tt.buf); got != tt.want {
				t.Fatalf("detectUTF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectReader(t *testing.T) {
	const text = "<article>Ünïcode</article>"

	tests := []struct {
		name string
		enc  srcEncoding
		data []byte
	}{
		{"unknown", encUnknown, []byte(text)},
		{"utf-8", encUTF8, append([]byte{0xEF, 0xBB, 0xBF}, text...)},
		{"utf-16be", encUTF16BigEndian, encodeString(t, unicode.UTF16(unicode.BigEndian, unicode.UseBOM), text)},
		{"utf-16le", encUTF16LittleEndian, encodeString(t, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), text)},
		{"utf-32be", encUTF32BigEndian, encodeString(t, utf32.UTF32(utf32.BigEndian, utf32.UseBOM), text)},
		{"utf-32le", encUTF32LittleEndian, encodeString(t, utf32.UTF32(utf32.LittleEndian, utf32.UseBOM), text)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(selectReader(bytes.NewReader(tt.data), tt.enc))
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if string(got) != text {
				t.Fatalf("decoded %q, want %q", got, text)
			}
		})
	}

	t.Run("invalid", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic for unknown encoding")
			}
		}()
		selectReader(bytes.NewReader(nil), srcEncoding(99))
	})
}

func TestIsArticleFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		data    []byte
		want    bool
		wantEnc srcEncoding
	}{
		{"xml", "a.xml", []byte(detectArticle), true, encUnknown},
		{"nxml", "a.nxml", []byte(detectArticle), true, encUnknown},
		{"uppercase extension", "b.XML", []byte(detectArticle), true, encUnknown},
		{"utf-8 bom", "bom.xml", append([]byte{0xEF, 0xBB, 0xBF}, detectArticle...), true, encUTF8},
		{"utf-16", "wide.xml", encodeString(t, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), detectArticle), true, encUTF16LittleEndian},
		{"wrong extension", "a.txt", []byte(detectArticle), false, encUnknown},
		{"not an article", "other.xml", []byte(`<?xml version="1.0"?><rss/>`), false, encUnknown},
		{"empty", "empty.xml", nil, false, encUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, tt.data, 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, enc, err := isArticleFile(path)
			if err != nil {
				t.Fatalf("isArticleFile: %v", err)
			}
			if got != tt.want || enc != tt.wantEnc {
				t.Fatalf("isArticleFile() = %v, %v, want %v, %v", got, enc, tt.want, tt.wantEnc)
			}
		})
	}

	if _, _, err := isArticleFile(filepath.Join(dir, "missing.xml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestIsArticleInArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.zip")
	writeZip(t, path,
		zipEntry{name: "set/"},
		zipEntry{name: "set/a.xml", data: []byte(detectArticle)},
		zipEntry{name: "set/b.nxml", data: append([]byte{0xEF, 0xBB, 0xBF}, detectArticle...)},
		zipEntry{name: "set/readme.txt", data: []byte(detectArticle)},
		zipEntry{name: "set/feed.xml", data: []byte(`<feed/>`)},
	)

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()

	want := map[string]struct {
		ok  bool
		enc srcEncoding
	}{
		"set/":           {false, encUnknown},
		"set/a.xml":      {true, encUnknown},
		"set/b.nxml":     {true, encUTF8},
		"set/readme.txt": {false, encUnknown},
		"set/feed.xml":   {false, encUnknown},
	}
	if len(zr.File) != len(want) {
		t.Fatalf("archive has %d entries", len(zr.File))
	}
	for _, f := range zr.File {
		ok, enc, err := isArticleInArchive(f)
		if err != nil {
			t.Fatalf("%s: %v", f.Name, err)
		}
		if w := want[f.Name]; ok != w.ok || enc != w.enc {
			t.Fatalf("%s: got %v, %v, want %v, %v", f.Name, ok, enc, w.ok, w.enc)
		}
	}
}

func TestIsArchiveFile(t *testing.T) {
	dir := t.TempDir()

	realZip := filepath.Join(dir, "real.zip")
	writeZip(t, realZip, zipEntry{name: "a.xml", data: []byte(detectArticle)})

	renamed := filepath.Join(dir, "real.bin")
	data, err := os.ReadFile(realZip)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := os.WriteFile(renamed, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fake := filepath.Join(dir, "fake.zip")
	if err := os.WriteFile(fake, []byte("not an archive"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{realZip, true},
		{renamed, false},
		{fake, false},
	}
	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			got, err := isArchiveFile(tt.path)
			if err != nil {
				t.Fatalf("isArchiveFile: %v", err)
			}
			if got != tt.want {
				t.Fatalf("isArchiveFile() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := isArchiveFile(filepath.Join(dir, "missing.zip")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
