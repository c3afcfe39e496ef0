package csv

import (
	"context"
	"errors"
	"io"
)

// run tracks the state of one pass over a source. Sources are single-pass:
// once a run ends, by drain or by failure, every later Next reports the same
// terminal condition. A fresh pass requires a fresh source instance.
type run struct {
	rows *rowReader
	err  error
}

// next drives one iteration step: open the stream on first use, fetch a row,
// fold it into a record. The row stream is released deterministically at
// end-of-iteration and on every failure.
func next[T any](ctx context.Context, r *run, open func() (*rowReader, error), build func(Row) (*T, error)) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.rows == nil {
		rows, err := open()
		if err != nil {
			r.err = err
			return nil, err
		}
		r.rows = rows
	}
	row, err := r.rows.Next()
	if err != nil {
		r.err = err
		if closeErr := r.rows.Close(); closeErr != nil && errors.Is(err, io.EOF) {
			r.err = closeErr
			return nil, closeErr
		}
		return nil, r.err
	}
	record, err := build(row)
	if err != nil {
		r.err = err
		_ = r.rows.Close()
		return nil, err
	}
	return record, nil
}

func (r *run) close() error {
	if r.rows == nil {
		return nil
	}
	return r.rows.Close()
}
