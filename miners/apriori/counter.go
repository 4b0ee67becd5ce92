package apriori

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/lattice"
	"github.com/timtadh/apriori/stores/intint"
	"github.com/timtadh/apriori/types/itemset"
)

// A Counter finds the frequent items (level 1) and computes, for each
// candidate in order, the number of transactions which contain it.
type Counter interface {
	Items(degree int) ([]*lattice.Node, error)
	Count(candidates []*set.SortedSet) ([]int, error)
	Close() error
}

// ScanCounter tests every candidate against every transaction.
type ScanCounter struct {
	txs *itemset.Transactions
}

func NewScanCounter(txs *itemset.Transactions) *ScanCounter {
	return &ScanCounter{txs: txs}
}

func (c *ScanCounter) Items(degree int) ([]*lattice.Node, error) {
	return FrequentItems(c.txs, degree), nil
}

func (c *ScanCounter) Count(candidates []*set.SortedSet) ([]int, error) {
	counts := make([]int, len(candidates))
	err := c.txs.Do(func(_ int32, items *set.SortedSet) error {
		for i, candidate := range candidates {
			if itemset.Subset(candidate, items) {
				counts[i]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *ScanCounter) Close() error {
	return nil
}

// IndexCounter keeps an inverted index (item -> transactions) in an fs2
// B+tree. The support of a candidate is the size of the intersection of the
// transaction lists of its items. Lists are cached once read.
type IndexCounter struct {
	index intint.MultiMap
	tids  map[int32]*set.SortedSet
}

func NewIndexCounter(conf *config.Config, txs *itemset.Transactions) (*IndexCounter, error) {
	index, err := conf.InvertedIndex("apriori-inverted")
	if err != nil {
		return nil, errors.Errorf("could not open the inverted index: %v", err)
	}
	err = txs.Do(func(tx int32, items *set.SortedSet) error {
		for i, next := items.Items()(); next != nil; i, next = next() {
			if err := index.Add(int32(i.(types.Int32)), tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		index.Delete()
		return nil, errors.Errorf("could not build the inverted index: %v", err)
	}
	errors.Logf("DEBUG", "inverted index has %d entries", index.Size())
	c := &IndexCounter{
		index: index,
		tids:  make(map[int32]*set.SortedSet),
	}
	return c, nil
}

// Items walks the keys of the index in ascending order. The support of an
// item is the number of entries under its key.
func (c *IndexCounter) Items(degree int) ([]*lattice.Node, error) {
	nodes := make([]*lattice.Node, 0, 10)
	prev := int32(-1)
	err := intint.DoKey(c.index.Keys, func(item int32) error {
		if item == prev {
			return nil
		}
		prev = item
		count, err := c.index.Count(item)
		if err != nil {
			return err
		}
		if count > 0 && count >= degree {
			nodes = append(nodes, lattice.NewNode(itemset.FromInts(item), count))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

func (c *IndexCounter) tidList(item int32) (*set.SortedSet, error) {
	if tids, has := c.tids[item]; has {
		return tids, nil
	}
	tids := set.NewSortedSet(10)
	err := c.index.DoFind(item, func(_, tx int32) error {
		tids.Add(types.Int32(tx))
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.tids[item] = tids
	return tids, nil
}

func (c *IndexCounter) support(items *set.SortedSet) (int, error) {
	var txs types.Set
	for i, next := items.Items()(); next != nil; i, next = next() {
		tids, err := c.tidList(int32(i.(types.Int32)))
		if err != nil {
			return 0, err
		}
		if txs == nil {
			txs = tids
		} else {
			txs, err = txs.Intersect(tids)
			if err != nil {
				return 0, err
			}
		}
		if txs.Size() == 0 {
			return 0, nil
		}
	}
	if txs == nil {
		return 0, nil
	}
	return txs.Size(), nil
}

func (c *IndexCounter) Count(candidates []*set.SortedSet) ([]int, error) {
	counts := make([]int, 0, len(candidates))
	for _, candidate := range candidates {
		count, err := c.support(candidate)
		if err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}
	return counts, nil
}

// Close removes the index.
func (c *IndexCounter) Close() error {
	return c.index.Delete()
}
