package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// sourceInput identifies where the bytes of a run come from: a file path or
// an in-memory stream. Exactly one must be set.
type sourceInput struct {
	path   string
	reader io.Reader
}

func (in sourceInput) validate() error {
	if in.path == "" && in.reader == nil {
		return fmt.Errorf("either a path or a reader must be provided")
	}
	if in.path != "" && in.reader != nil {
		return fmt.Errorf("a path and a reader are mutually exclusive")
	}
	return nil
}

// rowReader produces rows lazily from a delimiter-separated byte stream. It
// is single-pass and forward-only; a fresh run constructs a new reader.
//
// With a header line, rows are keyed by header name. Without one, rows are
// keyed by position, with the key space sized by the widest of the first data
// line and the highest configured column index. This lets a configuration
// address trailing columns the first line happens to omit.
type rowReader struct {
	reader *stdcsv.Reader
	closer io.Closer

	header  []string
	keys    []Key
	pending []string
	done    bool
}

// openRows opens the underlying stream and reads the header (or sizes the
// positional key space). Path problems surface here, at first iteration,
// rather than at configuration time.
func openRows(in sourceInput, delimiter rune, noHeader bool, configured []Key) (*rowReader, error) {
	var (
		source io.Reader
		closer io.Closer
	)
	if in.path != "" {
		info, err := os.Stat(in.path)
		if errors.Is(err, os.ErrNotExist) {
			return nil, &SourceNotFoundError{Path: in.path}
		}
		if err != nil {
			return nil, fmt.Errorf("stat source: %w", err)
		}
		if !info.Mode().IsRegular() {
			return nil, &NotAFileError{Path: in.path}
		}
		file, err := os.Open(in.path)
		if err != nil {
			return nil, fmt.Errorf("open source: %w", err)
		}
		source = file
		closer = file
	} else {
		source = in.reader
		if c, ok := in.reader.(io.Closer); ok {
			closer = c
		}
	}

	if delimiter == 0 {
		delimiter = ','
	}
	reader := stdcsv.NewReader(source)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	rows := &rowReader{reader: reader, closer: closer}

	if noHeader {
		first, err := reader.Read()
		if errors.Is(err, io.EOF) {
			rows.done = true
			return rows, nil
		}
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("parse source: %w", err)
		}
		width := len(first)
		for _, key := range configured {
			if key.byIndex && key.index+1 > width {
				width = key.index + 1
			}
		}
		rows.keys = make([]Key, width)
		for i := range rows.keys {
			rows.keys[i] = Index(i)
		}
		rows.pending = first
		return rows, nil
	}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		rows.done = true
		return rows, nil
	}
	if err != nil {
		rows.Close()
		return nil, fmt.Errorf("parse source header: %w", err)
	}
	rows.header = header
	return rows, nil
}

// Next returns the next row, or io.EOF once the stream is drained. Malformed
// quoting is fatal: the underlying parse error is returned as-is.
func (r *rowReader) Next() (Row, error) {
	if r.done {
		return nil, io.EOF
	}

	var fields []string
	if r.pending != nil {
		fields = r.pending
		r.pending = nil
	} else {
		record, err := r.reader.Read()
		if errors.Is(err, io.EOF) {
			r.done = true
			return nil, io.EOF
		}
		if err != nil {
			r.done = true
			return nil, fmt.Errorf("parse source: %w", err)
		}
		fields = record
	}

	if r.header != nil {
		row := make(Row, len(r.header))
		for i, name := range r.header {
			if i >= len(fields) {
				break
			}
			row[Name(name)] = fields[i]
		}
		return row, nil
	}

	row := make(Row, len(fields))
	for i := range r.keys {
		if i >= len(fields) {
			break
		}
		row[r.keys[i]] = fields[i]
	}
	return row, nil
}

// Close releases the underlying stream. It is safe to call more than once.
func (r *rowReader) Close() error {
	r.done = true
	if r.closer == nil {
		return nil
	}
	closer := r.closer
	r.closer = nil
	return closer.Close()
}
