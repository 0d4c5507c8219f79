package convert

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

// headerSize is enough to get past XML declaration, DOCTYPE with public and
// system identifiers and a comment or two.
const headerSize = 4096

var articleType = filetype.NewType("nxml", "application/jats+xml")

func init() {
	filetype.AddMatcher(articleType, articleMatcher)
}

// articleMatcher looks for article root element in the beginning of the
// (possibly not UTF-8) XML stream.
func articleMatcher(buf []byte) bool {
	text := decodeHeader(buf)
	for i := 0; ; {
		j := bytes.Index(text[i:], []byte("<article"))
		if j < 0 {
			return false
		}
		i += j + len("<article")
		if i == len(text) {
			// header cut right after the name
			return true
		}
		switch text[i] {
		case ' ', '\t', '\r', '\n', '>', '/':
			return true
		}
	}
}

func decodeHeader(buf []byte) []byte {
	var enc encoding.Encoding
	size := 1
	switch detectUTF(buf) {
	case encUTF8:
		return buf[3:]
	case encUTF16BigEndian:
		enc, size = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), 2
	case encUTF16LittleEndian:
		enc, size = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), 2
	case encUTF32BigEndian:
		enc, size = utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM), 4
	case encUTF32LittleEndian:
		enc, size = utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM), 4
	default:
		return buf
	}
	// header may end in the middle of code unit
	buf = buf[:len(buf)-len(buf)%size]
	out, err := enc.NewDecoder().Bytes(buf)
	if err != nil {
		return nil
	}
	return out
}

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

// detectUTF checks byte order mark. UTF-32 LE has to be checked before UTF-16
// LE as they share first two bytes.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

// selectReader wraps reader with decoder for detected encoding. Reader for
// unknown encoding is returned as is, XML parser will use declaration to
// decide.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUnknown:
		return r
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder())
	}
	panic(fmt.Sprintf("unknown source encoding %d", enc))
}

func readHeader(r io.Reader) ([]byte, error) {
	buf := make([]byte, headerSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

func readFileHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readHeader(f)
}

func isArchiveFile(path string) (bool, error) {
	header, err := readFileHeader(path)
	if err != nil {
		return false, err
	}
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	return filetype.Is(header, "zip"), nil
}

func hasArticleExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xml", ".nxml":
		return true
	}
	return false
}

func isArticleFile(path string) (bool, srcEncoding, error) {
	header, err := readFileHeader(path)
	if err != nil {
		return false, encUnknown, err
	}
	if !hasArticleExt(path) {
		return false, encUnknown, nil
	}
	if !filetype.IsType(header, articleType) {
		return false, encUnknown, nil
	}
	return true, detectUTF(header), nil
}

func isArticleInArchive(f *zip.File) (bool, srcEncoding, error) {
	if f.FileInfo().IsDir() || !hasArticleExt(f.Name) {
		return false, encUnknown, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	header, err := readHeader(r)
	if err != nil {
		return false, encUnknown, err
	}
	if !filetype.IsType(header, articleType) {
		return false, encUnknown, nil
	}
	return true, detectUTF(header), nil
}
