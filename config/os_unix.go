//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const reservedNameChars = "/:"

// leading dot would make result hidden
func trimFileName(name string) string {
	return strings.TrimLeft(name, ".")
}

func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
