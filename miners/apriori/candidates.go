package apriori

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/timtadh/apriori/types/itemset"
)

// Candidates joins every pair of (k-1)-itemsets. A union is a candidate when
// it has exactly k items and has not been produced by an earlier pair. The
// candidates are in pair order: (0,1), (0,2), ..., (1,2), ...
func Candidates(parents []*set.SortedSet, k int) ([]*set.SortedSet, error) {
	seen := hashtable.NewLinearHash()
	candidates := make([]*set.SortedSet, 0, len(parents))
	for i := 0; i < len(parents); i++ {
		for j := i + 1; j < len(parents); j++ {
			u := itemset.Union(parents[i], parents[j])
			if u.Size() != k || seen.Has(u) {
				continue
			}
			if err := seen.Put(u, nil); err != nil {
				return nil, err
			}
			candidates = append(candidates, u)
		}
	}
	return candidates, nil
}

// Prune keeps the candidates whose (k-1)-subsets are all in parents. Support
// only shrinks as itemsets grow so a dropped candidate could not have been
// frequent.
func Prune(candidates, parents []*set.SortedSet) ([]*set.SortedSet, error) {
	frequent := hashtable.NewLinearHash()
	for _, p := range parents {
		if err := frequent.Put(p, nil); err != nil {
			return nil, err
		}
	}
	kept := make([]*set.SortedSet, 0, len(candidates))
outer:
	for _, c := range candidates {
		for _, p := range itemset.Parents(c) {
			if !frequent.Has(p) {
				continue outer
			}
		}
		kept = append(kept, c)
	}
	return kept, nil
}
