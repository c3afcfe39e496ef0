// Package csv maps rows of delimiter-separated data into typed Material,
// Product and Demand records.
//
// Columns are configured once, when a source is constructed, and reused for
// every row of a run. A column addresses its value either by header name or
// by zero-based position; the two modes are never mixed within one source.
package csv

import (
	"fmt"
	"strconv"
)

// Key addresses a value within a row, by header name or by zero-based
// position. Use Name or Index to construct one.
type Key struct {
	name    string
	index   int
	byIndex bool
}

// Name addresses a column by its header name.
func Name(name string) Key {
	return Key{name: name}
}

// Index addresses a column by zero-based position, for sources without a
// header line.
func Index(i int) Key {
	return Key{index: i, byIndex: true}
}

// String renders the key the way it appears in configuration.
func (k Key) String() string {
	if k.byIndex {
		return strconv.Itoa(k.index)
	}
	return k.name
}

func (k Key) validate() error {
	if k.byIndex {
		if k.index < 0 {
			return fmt.Errorf("column index must be equal or more than 0")
		}
		return nil
	}
	if k.name == "" {
		return fmt.Errorf("column name can not be empty string")
	}
	return nil
}

// Row is one parsed input line: a mapping from column key to raw cell value.
// A key that is absent from the map is a different condition from a key that
// maps to the empty string.
type Row map[Key]string

// Column locates a single value in a row.
type Column struct {
	key Key
}

// NewColumn validates the key and builds a column descriptor.
func NewColumn(key Key) (Column, error) {
	if err := key.validate(); err != nil {
		return Column{}, err
	}
	return Column{key: key}, nil
}

// Key returns the column's row key.
func (c Column) Key() Key { return c.key }

// lookup fetches the raw cell value, failing when the key is absent.
func (c Column) lookup(row Row) (string, error) {
	value, ok := row[c.key]
	if !ok {
		return "", &MissingColumnError{Column: c.key}
	}
	return value, nil
}
