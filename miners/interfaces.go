package miners

import (
	"github.com/timtadh/apriori/lattice"
	"github.com/timtadh/apriori/types/itemset"
)

// Note: the miner's Close function should close the reporter that was passed
// into it.
type Miner interface {
	Mine(*itemset.Transactions, Reporter) error
	Close() error
}

// A Reporter receives the frequent itemsets one level at a time: every node
// of level k arrives before any node of level k+1.
type Reporter interface {
	Report(*lattice.Node) error
	Close() error
}
