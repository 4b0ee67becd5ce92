package itemset

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/apriori/lattice"
)

// IntLoader reads one transaction per line. Items are non-negative integers
// separated by spaces. Empty tokens (doubled spaces, the trailing space
// before a line break) are skipped, so a blank line is an empty transaction.
type IntLoader struct{}

func NewIntLoader() *IntLoader {
	return &IntLoader{}
}

func (l *IntLoader) Load(input lattice.Input) (*Transactions, error) {
	reader, closer := input()
	defer closer()
	return l.LoadReader(reader)
}

func (l *IntLoader) LoadReader(input io.Reader) (*Transactions, error) {
	txs := newTransactions(1000)
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line += 1
		items, err := parseLine(line, scanner.Text())
		if err != nil {
			return nil, err
		}
		txs.add(items)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("could not read transactions after line %d: %v", line, err)
	}
	errors.Logf("DEBUG", "loaded %d transactions, max item %d", txs.Len(), txs.MaxItem())
	return txs, nil
}

func parseLine(line int, text string) (*set.SortedSet, error) {
	items := set.NewSortedSet(10)
	for _, col := range strings.Split(strings.TrimRight(text, "\r"), " ") {
		if col == "" {
			continue
		}
		item, err := strconv.ParseInt(col, 10, 32)
		if err != nil {
			return nil, &DataFormatError{Line: line, Token: col, Reason: "is not a 32 bit integer"}
		} else if item < 0 {
			return nil, &DataFormatError{Line: line, Token: col, Reason: "is negative"}
		}
		items.Add(types.Int32(item))
	}
	return items, nil
}
