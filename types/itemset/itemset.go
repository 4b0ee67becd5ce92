package itemset

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// An itemset is a *set.SortedSet of types.Int32. The helpers here keep the
// conversions in one place.

func FromInts(items ...int32) *set.SortedSet {
	s := set.NewSortedSet(len(items))
	for _, item := range items {
		s.Add(types.Int32(item))
	}
	return s
}

func ToInts(s *set.SortedSet) []int32 {
	items := make([]int32, 0, s.Size())
	for i, next := s.Items()(); next != nil; i, next = next() {
		items = append(items, int32(i.(types.Int32)))
	}
	return items
}

// Union returns a new set. Neither argument is modified.
func Union(a, b *set.SortedSet) *set.SortedSet {
	u := a.Copy()
	for i, next := b.Items()(); next != nil; i, next = next() {
		u.Add(i)
	}
	return u
}

// Subset reports whether every item of sub is in super.
func Subset(sub, super *set.SortedSet) bool {
	if sub.Size() > super.Size() {
		return false
	}
	for i, next := sub.Items()(); next != nil; i, next = next() {
		if !super.Has(i) {
			return false
		}
	}
	return true
}

// Parents returns the subsets of s with exactly one item removed.
func Parents(s *set.SortedSet) []*set.SortedSet {
	parents := make([]*set.SortedSet, 0, s.Size())
	for item, next := s.Items()(); next != nil; item, next = next() {
		parent := s.Copy()
		parent.Delete(item)
		parents = append(parents, parent)
	}
	return parents
}
