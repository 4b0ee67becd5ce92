package reporters

import (
	"bufio"
	"os"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/lattice"
)

// File writes the frequent itemsets to <output>/<filename><ext>, one line per
// itemset, with a header line before the first itemset of each level.
type File struct {
	config   *config.Config
	fmt      lattice.Formatter
	file     *os.File
	patterns *bufio.Writer
	level    int
}

func NewFile(c *config.Config, fmt lattice.Formatter, filename string) (*File, error) {
	file, err := os.Create(c.OutputFile(filename + fmt.FileExt()))
	if err != nil {
		return nil, err
	}
	r := &File{
		config:   c,
		fmt:      fmt,
		file:     file,
		patterns: bufio.NewWriter(file),
	}
	return r, nil
}

func (r *File) Report(n *lattice.Node) error {
	if n.Level() != r.level {
		r.level = n.Level()
		if err := r.fmt.FormatLevel(r.patterns, r.level); err != nil {
			return err
		}
	}
	return r.fmt.FormatPattern(r.patterns, n)
}

func (r *File) Close() error {
	ferr := r.patterns.Flush()
	err := r.file.Close()
	if ferr != nil {
		return ferr
	}
	return err
}
