package apriori

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"fmt"
	"math/rand"
	"strings"
)

import (
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/lattice"
	"github.com/timtadh/apriori/reporters"
	"github.com/timtadh/apriori/types/itemset"
)

var scenarioA = [][]int{
	{1, 2, 3},
	{1, 2},
	{1, 3},
	{2, 3},
	{1, 2, 3, 4},
}

var items = [][]int{
	{0},
	{1, 2, 3},
	{1, 2, 3},
	{1, 2, 3},
	{2, 3, 4},
	{2, 3, 4},
	{2, 3, 4},
	{7, 8, 9, 10},
	{7, 8, 9, 11},
	{7, 8, 9, 12},
	{1, 12},
	{1, 11},
	{1, 10},
	{1, 8, 10},
	{1, 9, 11},
	{1, 4, 12},
	{1, 12, 7},
	{1, 11, 8},
	{1, 10, 12},
}

func transactions(t *assert.Assertions, rows [][]int) *itemset.Transactions {
	txs, err := itemset.NewTransactions(rows)
	t.Nil(err)
	return txs
}

// configs covers every combination of counter and pruning.
func configs(support int, rate float64) []*config.Config {
	confs := make([]*config.Config, 0, 4)
	for _, index := range []bool{false, true} {
		for _, prune := range []bool{false, true} {
			confs = append(confs, &config.Config{
				Support: support,
				Rate:    rate,
				Index:   index,
				Prune:   prune,
			})
		}
	}
	return confs
}

func label(n *lattice.Node) string {
	return itemset.Formatter{}.PatternName(n)
}

func flatten(levels []*lattice.Level) map[string]int {
	found := make(map[string]int)
	for _, l := range levels {
		for _, n := range l.Nodes {
			found[label(n)] = n.Support
		}
	}
	return found
}

// bruteForce enumerates every itemset over the items 0..n-1.
func bruteForce(txs *itemset.Transactions, n int, degree int) map[string]int {
	expected := make(map[string]int)
	for mask := 1; mask < 1<<uint(n); mask++ {
		s := set.NewSortedSet(n)
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				s = itemset.Union(s, itemset.FromInts(int32(i)))
			}
		}
		if sup := txs.Support(s); sup >= degree && sup > 0 {
			expected[label(lattice.NewNode(s, sup))] = sup
		}
	}
	return expected
}

func checkLevels(t *assert.Assertions, txs *itemset.Transactions, degree int, levels []*lattice.Level) {
	for i, l := range levels {
		t.Equal(i+1, l.K)
		t.True(l.Len() > 0, "level %d is empty", l.K)
		seen := set.NewSortedSet(l.Len())
		for _, n := range l.Nodes {
			t.Equal(l.K, n.Level(), "%v in level %d", n, l.K)
			t.True(n.Support >= degree, "%v below %d", n, degree)
			t.Equal(txs.Support(n.Items), n.Support, "%v", n)
			t.False(seen.Has(n.Items), "%v repeated", n)
			seen.Add(n.Items)
		}
		if l.Len() <= 1 {
			t.Equal(len(levels)-1, i, "level %d followed a level of %d", i+2, l.Len())
		}
	}
}

func TestScenarioA(x *testing.T) {
	t := assert.New(x)
	txs := transactions(t, scenarioA)
	for _, conf := range configs(0, 0.6) {
		levels, err := Levels(conf, txs)
		t.Nil(err)
		t.Equal(2, len(levels))
		t.Equal([]string{"1", "2", "3"}, labels(levels[0]))
		t.Equal([]int{4, 4, 4}, supports(levels[0]))
		t.Equal([]string{"1 2", "1 3", "2 3"}, labels(levels[1]))
		t.Equal([]int{3, 3, 3}, supports(levels[1]))
		checkLevels(t, txs, 3, levels)
	}
}

func TestScenarioB(x *testing.T) {
	t := assert.New(x)
	txs := transactions(t, [][]int{{5}})
	for _, conf := range configs(1, 0) {
		levels, err := Levels(conf, txs)
		t.Nil(err)
		t.Equal(1, len(levels))
		t.Equal([]string{"5"}, labels(levels[0]))
		t.Equal([]int{1}, supports(levels[0]))
	}
}

func TestScenarioC(x *testing.T) {
	t := assert.New(x)
	txs := transactions(t, scenarioA)
	for _, conf := range configs(len(scenarioA)+1, 0) {
		levels, err := Levels(conf, txs)
		t.Nil(err)
		t.Equal(0, len(levels))
	}
}

func TestScenarioD(x *testing.T) {
	t := assert.New(x)
	_, err := itemset.NewIntLoader().LoadReader(strings.NewReader("1 2\n1 two\n"))
	_, ok := err.(*itemset.DataFormatError)
	t.True(ok, "%T is not a *DataFormatError", err)
}

func TestOneFrequentPairStops(x *testing.T) {
	t := assert.New(x)
	// only {1,2} survives level 2 so level 3 is never attempted
	txs := transactions(t, [][]int{{1, 2}, {1, 2}, {3}, {3}, {1, 3}})
	levels, err := Levels(&config.Config{Support: 2}, txs)
	t.Nil(err)
	t.Equal(2, len(levels))
	t.Equal([]string{"1 2"}, labels(levels[1]))
}

func TestEmptyDataset(x *testing.T) {
	t := assert.New(x)
	txs := transactions(t, nil)
	_, err := Levels(&config.Config{Support: 1}, txs)
	_, ok := err.(*itemset.EmptyDatasetError)
	t.True(ok, "%T is not a *EmptyDatasetError", err)
}

func TestAllEmptyTransactions(x *testing.T) {
	t := assert.New(x)
	txs := transactions(t, [][]int{{}, {}, {}})
	levels, err := Levels(&config.Config{Rate: 0.5}, txs)
	t.Nil(err)
	t.Equal(0, len(levels))
}

func TestInvalidThreshold(x *testing.T) {
	t := assert.New(x)
	txs := transactions(t, scenarioA)
	_, err := Levels(&config.Config{Rate: 1.5}, txs)
	_, ok := err.(*config.InvalidThresholdError)
	t.True(ok, "%T is not a *InvalidThresholdError", err)
}

func TestMaxLevel(x *testing.T) {
	t := assert.New(x)
	txs := transactions(t, items)
	levels, err := Levels(&config.Config{Support: 3, MaxLevel: 1}, txs)
	t.Nil(err)
	t.Equal(1, len(levels))
}

func TestAgainstBruteForce(x *testing.T) {
	t := assert.New(x)
	txs := transactions(t, items)
	expected := bruteForce(txs, 13, 3)
	t.Equal(3, expected["1 2 3"])
	for _, conf := range configs(3, 0) {
		levels, err := Levels(conf, txs)
		t.Nil(err)
		checkLevels(t, txs, 3, levels)
		t.Equal(expected, flatten(levels))
	}
}

func TestRandomAgainstBruteForce(x *testing.T) {
	t := assert.New(x)
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 3 + r.Intn(8)
		rows := make([][]int, 5+r.Intn(40))
		for i := range rows {
			for item := 0; item < n; item++ {
				if r.Float64() < .45 {
					rows[i] = append(rows[i], item)
				}
			}
		}
		txs := transactions(t, rows)
		rate := .05 + r.Float64()*.5
		degree, err := (&config.Config{Rate: rate}).Degree(txs.Len())
		t.Nil(err)
		expected := bruteForce(txs, n, degree)
		var first []*lattice.Level
		for _, conf := range configs(0, rate) {
			levels, err := Levels(conf, txs)
			t.Nil(err)
			checkLevels(t, txs, degree, levels)
			t.Equal(expected, flatten(levels), "trial %d", trial)
			if first == nil {
				first = levels
			} else {
				t.Equal(flatten(first), flatten(levels))
			}
		}
	}
}

func TestIdempotent(x *testing.T) {
	t := assert.New(x)
	txs := transactions(t, items)
	conf := &config.Config{Support: 2}
	a, err := Levels(conf, txs)
	t.Nil(err)
	b, err := Levels(conf, txs)
	t.Nil(err)
	t.Equal(len(a), len(b))
	for i := range a {
		t.Equal(labels(a[i]), labels(b[i]))
		t.Equal(supports(a[i]), supports(b[i]))
	}
}

func TestMinerCloseClosesReporter(x *testing.T) {
	t := assert.New(x)
	txs := transactions(t, scenarioA)
	closed := &closeCheck{}
	m := NewMiner(&config.Config{Support: 3})
	t.Nil(m.Mine(txs, reporters.NewChain(closed)))
	t.Equal(3, m.Degree)
	t.Nil(m.Close())
	t.True(closed.closed)
	t.Equal(6, closed.count)
}

func TestMineReportsCounterCloseError(x *testing.T) {
	t := assert.New(x)
	txs := transactions(t, scenarioA)
	c := &reporters.Collector{}
	m := NewMiner(&config.Config{Support: 3})
	m.Degree = 3
	m.rptr = c
	err := m.mine(&closeFails{NewScanCounter(txs)})
	t.NotNil(err)
	t.Equal("index file is gone", err.Error())
	t.Equal(6, len(c.Nodes), "every itemset is still reported")
}

func TestMineRecordsElapsed(x *testing.T) {
	t := assert.New(x)
	txs := transactions(t, items)
	for _, conf := range configs(2, 0) {
		m := NewMiner(conf)
		t.Nil(m.Mine(txs, &reporters.Collector{}))
		t.True(m.Elapsed > 0, "%v", conf)
	}
}

type closeFails struct {
	*ScanCounter
}

func (c *closeFails) Close() error {
	return fmt.Errorf("index file is gone")
}

type closeCheck struct {
	count  int
	closed bool
}

func (c *closeCheck) Report(n *lattice.Node) error {
	c.count++
	return nil
}

func (c *closeCheck) Close() error {
	c.closed = true
	return nil
}

func labels(l *lattice.Level) []string {
	names := make([]string, 0, l.Len())
	for _, n := range l.Nodes {
		names = append(names, label(n))
	}
	return names
}

func supports(l *lattice.Level) []int {
	sups := make([]int, 0, l.Len())
	for _, n := range l.Nodes {
		sups = append(sups, n.Support)
	}
	return sups
}
