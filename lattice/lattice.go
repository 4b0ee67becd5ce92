package lattice

import (
	"fmt"
	"io"
)

import (
	"github.com/timtadh/data-structures/set"
)

// Input opens the dataset. The closer releases whatever the reader holds.
type Input func() (reader io.Reader, closer func())

// A Node is one frequent itemset: the items and the number of transactions
// which contain all of them.
type Node struct {
	Items   *set.SortedSet
	Support int
}

func NewNode(items *set.SortedSet, support int) *Node {
	return &Node{
		Items:   items,
		Support: support,
	}
}

// Level is the cardinality of the itemset.
func (n *Node) Level() int {
	return n.Items.Size()
}

func (n *Node) Equals(o *Node) bool {
	return n.Support == o.Support && n.Items.Equals(o.Items)
}

func (n *Node) String() string {
	return fmt.Sprintf("<Node %v %v>", n.Items, n.Support)
}

// A Level holds the frequent itemsets of one size in the order the miner
// produced them.
type Level struct {
	K     int
	Nodes []*Node
}

func (l *Level) Len() int {
	return len(l.Nodes)
}

// ItemSets strips the support counts. The miner joins these to form the
// candidates of the next level.
func (l *Level) ItemSets() []*set.SortedSet {
	sets := make([]*set.SortedSet, 0, len(l.Nodes))
	for _, n := range l.Nodes {
		sets = append(sets, n.Items)
	}
	return sets
}

// Group splits a level ordered stream of nodes back into levels.
func Group(nodes []*Node) []*Level {
	levels := make([]*Level, 0, 5)
	for _, n := range nodes {
		if len(levels) == 0 || levels[len(levels)-1].K != n.Level() {
			levels = append(levels, &Level{K: n.Level()})
		}
		cur := levels[len(levels)-1]
		cur.Nodes = append(cur.Nodes, n)
	}
	return levels
}

type Formatter interface {
	FileExt() string
	PatternName(*Node) string
	FormatLevel(w io.Writer, k int) error
	FormatPattern(w io.Writer, n *Node) error
}
