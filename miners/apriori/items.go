package apriori

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/apriori/lattice"
	"github.com/timtadh/apriori/types/itemset"
)

// FrequentItems is level 1. Items are counted in an array indexed by item, so
// the nodes come out in ascending item order. Items which never occur are not
// reported whatever the degree.
func FrequentItems(txs *itemset.Transactions, degree int) []*lattice.Node {
	max := txs.MaxItem()
	if max < 0 {
		return []*lattice.Node{}
	}
	counts := make([]int, int(max)+1)
	txs.Do(func(_ int32, items *set.SortedSet) error {
		for i, next := items.Items()(); next != nil; i, next = next() {
			counts[int32(i.(types.Int32))]++
		}
		return nil
	})
	nodes := make([]*lattice.Node, 0, 10)
	for item, count := range counts {
		if count > 0 && count >= degree {
			nodes = append(nodes, lattice.NewNode(itemset.FromInts(int32(item)), count))
		}
	}
	return nodes
}
