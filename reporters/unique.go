package reporters

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
)

import (
	"github.com/timtadh/apriori/lattice"
	"github.com/timtadh/apriori/miners"
)

// Unique passes on the first report of each itemset and drops the rest.
type Unique struct {
	Seen     *hashtable.LinearHash
	Reporter miners.Reporter
	dups     int
}

func NewUnique(reporter miners.Reporter) *Unique {
	return &Unique{
		Seen:     hashtable.NewLinearHash(),
		Reporter: reporter,
	}
}

func (r *Unique) Report(n *lattice.Node) error {
	if r.Seen.Has(n.Items) {
		r.dups++
		return nil
	}
	if err := r.Seen.Put(n.Items, n.Support); err != nil {
		return err
	}
	return r.Reporter.Report(n)
}

func (r *Unique) Close() error {
	if r.dups > 0 {
		errors.Logf("WARN", "dropped %d duplicate itemsets", r.dups)
	}
	return r.Reporter.Close()
}
