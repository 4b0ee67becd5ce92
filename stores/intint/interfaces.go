package intint

// MultiMap maps an int32 key to any number of int32 values. The apriori
// inverted index uses it as item -> transaction.
type MultiMap interface {
	Keys() (KeyIterator, error)
	Find(key int32) (Iterator, error)
	DoFind(key int32, do func(key, value int32) error) error
	Count(key int32) (int, error)
	Add(key, value int32) error
	Size() int
	Close() error
	Delete() error
}

type Iterator func() (int32, int32, error, Iterator)
type KeyIterator func() (int32, error, KeyIterator)

func Do(run func() (Iterator, error), do func(key, value int32) error) error {
	kvi, err := run()
	if err != nil {
		return err
	}
	var key, value int32
	for key, value, err, kvi = kvi(); kvi != nil; key, value, err, kvi = kvi() {
		e := do(key, value)
		if e != nil {
			return e
		}
	}
	return err
}

func DoKey(run func() (KeyIterator, error), do func(int32) error) error {
	it, err := run()
	if err != nil {
		return err
	}
	var key int32
	for key, err, it = it(); it != nil; key, err, it = it() {
		e := do(key)
		if e != nil {
			return e
		}
	}
	return err
}
