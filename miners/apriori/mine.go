package apriori

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/lattice"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/reporters"
	"github.com/timtadh/apriori/types/itemset"
)

// Miner finds every frequent itemset level by level. Level k+1 is only
// attempted when level k has at least two frequent itemsets, and mining stops
// at the first level with none.
type Miner struct {
	Config  *config.Config
	Degree  int
	Elapsed time.Duration
	rptr    miners.Reporter
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{
		Config: conf,
	}
}

// Mine runs to completion and hands each frequent itemset to rptr. The
// transactions are only read.
func (m *Miner) Mine(txs *itemset.Transactions, rptr miners.Reporter) error {
	m.rptr = rptr
	if txs.Len() == 0 {
		return &itemset.EmptyDatasetError{}
	}
	degree, err := m.Config.Degree(txs.Len())
	if err != nil {
		return err
	}
	m.Degree = degree
	counter, err := m.counter(txs)
	if err != nil {
		return err
	}
	errors.Logf("INFO", "mining %d transactions, minimum support %d", txs.Len(), degree)
	return m.mine(counter)
}

// mine owns counter and closes it. Elapsed excludes the reporters.
func (m *Miner) mine(counter Counter) (err error) {
	defer func() {
		if e := counter.Close(); e != nil {
			errors.Logf("WARN", "could not close the support counter: %v", e)
			if err == nil {
				err = e
			}
		}
	}()
	m.Elapsed = 0
	start := time.Now()
	nodes, err := counter.Items(m.Degree)
	if err != nil {
		return err
	}
	level := &lattice.Level{K: 1, Nodes: nodes}
	for level.Len() > 0 {
		m.Elapsed += time.Since(start)
		errors.Logf("INFO", "level %d: %d frequent itemsets (%v)", level.K, level.Len(), m.Elapsed)
		for _, n := range level.Nodes {
			if err := m.rptr.Report(n); err != nil {
				return err
			}
		}
		if level.Len() == 1 || (m.Config.MaxLevel > 0 && level.K >= m.Config.MaxLevel) {
			break
		}
		start = time.Now()
		level, err = m.next(level, counter)
		if err != nil {
			return err
		}
	}
	if level.Len() == 0 {
		m.Elapsed += time.Since(start)
	}
	return nil
}

func (m *Miner) counter(txs *itemset.Transactions) (Counter, error) {
	if m.Config.Index {
		return NewIndexCounter(m.Config, txs)
	}
	return NewScanCounter(txs), nil
}

func (m *Miner) next(level *lattice.Level, counter Counter) (*lattice.Level, error) {
	k := level.K + 1
	parents := level.ItemSets()
	candidates, err := Candidates(parents, k)
	if err != nil {
		return nil, err
	}
	if m.Config.Prune {
		before := len(candidates)
		candidates, err = Prune(candidates, parents)
		if err != nil {
			return nil, err
		}
		errors.Logf("DEBUG", "level %d: pruned %d of %d candidates", k, before-len(candidates), before)
	}
	counts, err := counter.Count(candidates)
	if err != nil {
		return nil, err
	}
	next := &lattice.Level{
		K:     k,
		Nodes: make([]*lattice.Node, 0, len(candidates)),
	}
	for i, candidate := range candidates {
		if counts[i] >= m.Degree {
			next.Nodes = append(next.Nodes, lattice.NewNode(candidate, counts[i]))
		}
	}
	return next, nil
}

func (m *Miner) Close() error {
	if m.rptr == nil {
		return nil
	}
	return m.rptr.Close()
}

// Levels mines into memory.
func Levels(conf *config.Config, txs *itemset.Transactions) ([]*lattice.Level, error) {
	collector := &reporters.Collector{}
	m := NewMiner(conf)
	if err := m.Mine(txs, collector); err != nil {
		return nil, err
	}
	if err := m.Close(); err != nil {
		return nil, err
	}
	return lattice.Group(collector.Nodes), nil
}
