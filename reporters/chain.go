package reporters

import (
	"github.com/timtadh/apriori/lattice"
	"github.com/timtadh/apriori/miners"
)

type Chain struct {
	Reporters []miners.Reporter
}

func NewChain(rptrs ...miners.Reporter) *Chain {
	return &Chain{Reporters: rptrs}
}

func (r *Chain) Report(n *lattice.Node) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(n)
		if err != nil {
			return err
		}
	}
	return nil
}

// Close closes every reporter even if one fails and returns the first error.
func (r *Chain) Close() error {
	var first error
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}
