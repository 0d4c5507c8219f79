package jats

import (
	"errors"
	"fmt"
)

// ErrStructure is returned (wrapped in StructureError) when article could not
// be converted at all: required element is missing or unsupported markup is
// found where it could not be skipped.
var ErrStructure = errors.New("unsupported article structure")

type StructureError struct {
	Element string
	Path    string
	Msg     string
}

func (e *StructureError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Msg, e.Element)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Msg, e.Element, e.Path)
}

func (e *StructureError) Unwrap() error {
	return ErrStructure
}

// Gap is coverage gap: element which was recognized as not supported (or
// not recognized at all) and skipped. Conversion continues after a gap.
type Gap struct {
	Element string
	Path    string
	Message string
}

func (g Gap) Error() string {
	if g.Path == "" {
		return fmt.Sprintf("%s: %s", g.Message, g.Element)
	}
	return fmt.Sprintf("%s: %s (%s)", g.Message, g.Element, g.Path)
}
