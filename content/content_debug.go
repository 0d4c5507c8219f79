package content

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// String returns readable dump of conversion result followed by the
// document tree. It exists solely for manual inspection during debugging.
func (c *Content) String() string {
	if c == nil {
		return "<nil Content>"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Source: %q\n", c.SrcName)
	if res := c.Result; res != nil {
		fmt.Fprintf(&sb, "Article: %q publisher[%q] enhancements[%s]\n", res.DocumentID, res.Publisher, res.Strategy)
		fmt.Fprintf(&sb, "Nodes: %d annotations: %d\n", res.Nodes, res.Annotations)
		if len(res.Gaps) > 0 {
			fmt.Fprintf(&sb, "Gaps: %d\n", len(res.Gaps))
			for _, g := range res.Gaps {
				fmt.Fprintf(&sb, "  %s\n", g.Error())
			}
		}
	}

	if c.Document == nil {
		return sb.String()
	}

	counts := make(map[string]int)
	for _, n := range c.Document.Nodes() {
		counts[string(n.NodeType())]++
	}
	for _, a := range c.Document.Annotations() {
		counts[string(a.Kind)]++
	}
	keys := slices.Collect(maps.Keys(counts))
	sort.Sort(natural.StringSlice(keys))
	sb.WriteString("Node types:\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %s: %d\n", k, counts[k])
	}

	sb.WriteString(c.Document.String())
	return sb.String()
}
