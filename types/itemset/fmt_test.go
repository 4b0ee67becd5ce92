package itemset

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"bytes"
)

import (
	"github.com/timtadh/apriori/lattice"
)

func TestFormatter(x *testing.T) {
	t := assert.New(x)
	var buf bytes.Buffer
	f := Formatter{}
	t.Equal(".items", f.FileExt())
	t.Nil(f.FormatLevel(&buf, 2))
	t.Nil(f.FormatPattern(&buf, lattice.NewNode(FromInts(3, 1), 7)))
	t.Equal("--- level 2\n1 3: 7\n", buf.String())
}
