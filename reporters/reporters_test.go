package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/lattice"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/types/itemset"
)

func nodes() []*lattice.Node {
	return []*lattice.Node{
		lattice.NewNode(itemset.FromInts(1), 4),
		lattice.NewNode(itemset.FromInts(2), 4),
		lattice.NewNode(itemset.FromInts(1, 2), 3),
	}
}

func report(t *assert.Assertions, r miners.Reporter) {
	for _, n := range nodes() {
		t.Nil(r.Report(n))
	}
	t.Nil(r.Close())
}

func outputDir(t *assert.Assertions) (*config.Config, func()) {
	dir, err := ioutil.TempDir("", "reporters-test")
	t.Nil(err)
	return &config.Config{Output: dir}, func() { os.RemoveAll(dir) }
}

func TestFile(x *testing.T) {
	t := assert.New(x)
	conf, cleanup := outputDir(t)
	defer cleanup()
	r, err := NewFile(conf, itemset.Formatter{}, "patterns")
	t.Nil(err)
	report(t, r)
	bytes, err := ioutil.ReadFile(filepath.Join(conf.Output, "patterns.items"))
	t.Nil(err)
	t.Equal("--- level 1\n1: 4\n2: 4\n--- level 2\n1 2: 3\n", string(bytes))
}

func TestFileEmpty(x *testing.T) {
	t := assert.New(x)
	conf, cleanup := outputDir(t)
	defer cleanup()
	r, err := NewFile(conf, itemset.Formatter{}, "patterns")
	t.Nil(err)
	t.Nil(r.Close())
	bytes, err := ioutil.ReadFile(filepath.Join(conf.Output, "patterns.items"))
	t.Nil(err)
	t.Equal("", string(bytes))
}

func TestCount(x *testing.T) {
	t := assert.New(x)
	conf, cleanup := outputDir(t)
	defer cleanup()
	r, err := NewCount(conf, "count")
	t.Nil(err)
	report(t, r)
	bytes, err := ioutil.ReadFile(filepath.Join(conf.Output, "count"))
	t.Nil(err)
	t.Equal("3\n1: 2\n2: 1\n", string(bytes))
}

func TestChain(x *testing.T) {
	t := assert.New(x)
	a := &Collector{}
	b := &Collector{}
	report(t, NewChain(a, b, NewLog(itemset.Formatter{}, "DEBUG", "test")))
	t.Equal(3, len(a.Nodes))
	t.Equal(3, len(b.Nodes))
	t.True(a.Nodes[2].Equals(b.Nodes[2]))
}

func TestUnique(x *testing.T) {
	t := assert.New(x)
	c := &Collector{}
	r := NewUnique(c)
	for _, n := range nodes() {
		t.Nil(r.Report(n))
	}
	t.Nil(r.Report(lattice.NewNode(itemset.FromInts(2, 1), 3)))
	t.Nil(r.Report(lattice.NewNode(itemset.FromInts(1), 4)))
	t.Nil(r.Close())
	t.Equal(3, len(c.Nodes))
	t.Equal(2, r.dups)
	for i, n := range nodes() {
		t.True(n.Equals(c.Nodes[i]))
	}
}
