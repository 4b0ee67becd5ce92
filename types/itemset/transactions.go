package itemset

import (
	"math"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// Transactions is the read-only transaction store. It is built once and may
// be shared by any number of sequential mining runs.
type Transactions struct {
	txs     []*set.SortedSet
	maxItem int32
}

// NewTransactions copies rows into a store. Repeated items in a row collapse
// into one. A negative item is a *DataFormatError.
func NewTransactions(rows [][]int) (*Transactions, error) {
	t := newTransactions(len(rows))
	for i, row := range rows {
		items := set.NewSortedSet(len(row))
		for _, item := range row {
			if item < 0 || item > math.MaxInt32 {
				return nil, &DataFormatError{
					Line:   i + 1,
					Reason: "has an item outside [0, 2^31)",
				}
			}
			items.Add(types.Int32(item))
		}
		t.add(items)
	}
	return t, nil
}

func newTransactions(capacity int) *Transactions {
	return &Transactions{
		txs:     make([]*set.SortedSet, 0, capacity),
		maxItem: -1,
	}
}

func (t *Transactions) add(items *set.SortedSet) {
	for i, next := items.Items()(); next != nil; i, next = next() {
		if item := int32(i.(types.Int32)); item > t.maxItem {
			t.maxItem = item
		}
	}
	t.txs = append(t.txs, items)
}

func (t *Transactions) Len() int {
	return len(t.txs)
}

// MaxItem is the largest item in any transaction or -1 if there are no items.
func (t *Transactions) MaxItem() int32 {
	return t.maxItem
}

// Tx returns the i'th transaction. Callers must not modify it.
func (t *Transactions) Tx(i int) *set.SortedSet {
	return t.txs[i]
}

// Do calls do for every transaction in load order and stops at the first
// error.
func (t *Transactions) Do(do func(tx int32, items *set.SortedSet) error) error {
	for tx, items := range t.txs {
		if err := do(int32(tx), items); err != nil {
			return err
		}
	}
	return nil
}

// Support counts the transactions containing items by scanning the whole
// store.
func (t *Transactions) Support(items *set.SortedSet) int {
	count := 0
	for _, tx := range t.txs {
		if Subset(items, tx) {
			count++
		}
	}
	return count
}
