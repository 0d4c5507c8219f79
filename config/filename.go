package config

import (
	"strings"
	"unicode"
)

const badFileName = "_bad_file_name_"

// CleanFileName drops characters which cannot be used in a file name on this
// platform. Article titles often carry separators and control characters.
func CleanFileName(in string) string {
	out := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(reservedNameChars, r) {
			return -1
		}
		return r
	}, in)
	if out = trimFileName(out); out == "" {
		return badFileName
	}
	return out
}
