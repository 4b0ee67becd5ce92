package itemset

import (
	"fmt"
)

// DataFormatError means the dataset cannot be turned into transactions of
// non-negative integer items. Nothing is mined from such a dataset.
type DataFormatError struct {
	Line   int
	Token  string
	Reason string
}

func (e *DataFormatError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("bad dataset at transaction %d: %v", e.Line, e.Reason)
	}
	return fmt.Sprintf("bad dataset at line %d: token '%v' %v", e.Line, e.Token, e.Reason)
}

type EmptyDatasetError struct{}

func (e *EmptyDatasetError) Error() string {
	return "the dataset has no transactions"
}
