package reporters

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/lattice"
)

// Count writes the number of frequent itemsets, total and per level, when it
// is closed.
type Count struct {
	config   *config.Config
	count    int
	levels   []int
	filename string
}

func NewCount(c *config.Config, filename string) (*Count, error) {
	r := &Count{
		config:   c,
		filename: filename,
	}
	return r, nil
}

func (r *Count) Report(n *lattice.Node) error {
	r.count++
	for len(r.levels) < n.Level() {
		r.levels = append(r.levels, 0)
	}
	r.levels[n.Level()-1]++
	return nil
}

func (r *Count) Close() error {
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	_, perr := fmt.Fprintf(f, "%v\n", r.count)
	for k, count := range r.levels {
		if perr == nil && count > 0 {
			_, perr = fmt.Fprintf(f, "%v: %v\n", k+1, count)
		}
	}
	err = f.Close()
	if perr != nil {
		return perr
	}
	if err != nil {
		return err
	}
	return nil
}
