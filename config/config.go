package config

import (
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
)

import (
	"github.com/timtadh/apriori/stores/intint"
)

type Config struct {
	Cache  string
	Output string
	// Support is an explicit minimum support degree. When it is > 0 Rate is
	// ignored.
	Support int
	// Rate is a fraction of the transactions in (0, 1].
	Rate float64
	// Index counts support with an inverted index instead of scanning.
	Index bool
	// Prune drops candidates which have an infrequent parent before counting.
	Prune bool
	// MaxLevel stops the miner after itemsets of this size. 0 is unbounded.
	MaxLevel int
}

func (c *Config) Copy() *Config {
	return &Config{
		Cache:    c.Cache,
		Output:   c.Output,
		Support:  c.Support,
		Rate:     c.Rate,
		Index:    c.Index,
		Prune:    c.Prune,
		MaxLevel: c.MaxLevel,
	}
}

// InvalidThresholdError is returned when there is no explicit support and the
// rate is outside (0, 1].
type InvalidThresholdError struct {
	Rate float64
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("minimum support rate %v is not in (0, 1]", e.Rate)
}

// rates such as 0.7 are not exact in binary. Anything within eps of an
// integer is treated as that integer before taking the ceiling.
const eps = 1e-9

// Degree computes the minimum support degree for a dataset of n transactions.
func (c *Config) Degree(n int) (int, error) {
	if c.Support > 0 {
		return c.Support, nil
	}
	if math.IsNaN(c.Rate) || c.Rate <= 0 || c.Rate > 1 {
		return 0, &InvalidThresholdError{Rate: c.Rate}
	}
	return int(math.Ceil(c.Rate*float64(n) - eps)), nil
}

// Name identifies the threshold in output file names.
func (c *Config) Name() string {
	if c.Support > 0 {
		return fmt.Sprintf("support-%d", c.Support)
	}
	return fmt.Sprintf("rate-%v", c.Rate)
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

// InvertedIndex opens an empty item -> transaction multimap. Without a cache
// directory it lives in anonymous memory.
func (c *Config) InvertedIndex(name string) (intint.MultiMap, error) {
	if c.Cache == "" {
		return intint.AnonBpTree()
	} else {
		return intint.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
