package itemset

import (
	"fmt"
	"io"
	"strings"
)

import (
	"github.com/timtadh/apriori/lattice"
)

// Formatter writes a frequent itemset as its items then its support:
//
//	1 2 3: 4
type Formatter struct{}

func (f Formatter) FileExt() string {
	return ".items"
}

func (f Formatter) PatternName(n *lattice.Node) string {
	items := ToInts(n.Items)
	cols := make([]string, 0, len(items))
	for _, item := range items {
		cols = append(cols, fmt.Sprint(item))
	}
	return strings.Join(cols, " ")
}

func (f Formatter) FormatLevel(w io.Writer, k int) error {
	_, err := fmt.Fprintf(w, "--- level %d\n", k)
	return err
}

func (f Formatter) FormatPattern(w io.Writer, n *lattice.Node) error {
	_, err := fmt.Fprintf(w, "%v: %d\n", f.PatternName(n), n.Support)
	return err
}
