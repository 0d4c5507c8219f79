package jats

import "strconv"

// IDGenerator issues "<type>_<n>" identifiers, n starts at 1 and grows by one
// per call for each type name. One generator serves exactly one conversion.
type IDGenerator struct {
	counters map[string]int
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{counters: make(map[string]int)}
}

func (g *IDGenerator) Next(typeName string) string {
	g.counters[typeName]++
	return typeName + "_" + strconv.Itoa(g.counters[typeName])
}

