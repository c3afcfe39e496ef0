package csv

import (
	"context"
	"io"

	"github.com/volur-ai/sdk-go/types"
)

// BufferedMaterialsSource reads the whole input into memory on first use and
// then yields records from the buffer. It honors the same row and coercion
// contract as MaterialsSource but holds every row at once, so it only suits
// small files. The streaming MaterialsSource is the authoritative variant.
type BufferedMaterialsSource struct {
	config MaterialsConfig
	rows   []Row
	pos    int
	loaded bool
	err    error
}

// NewBufferedMaterialsSource validates the configuration.
func NewBufferedMaterialsSource(cfg MaterialsConfig) (*BufferedMaterialsSource, error) {
	streaming, err := NewMaterialsSource(cfg)
	if err != nil {
		return nil, err
	}
	return &BufferedMaterialsSource{config: streaming.config}, nil
}

// Next returns the next material, or io.EOF when the buffer is drained.
func (s *BufferedMaterialsSource) Next(ctx context.Context) (*types.Material, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	if !s.loaded {
		if err := s.load(); err != nil {
			s.err = err
			return nil, err
		}
	}
	if s.pos >= len(s.rows) {
		s.err = io.EOF
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	streaming := MaterialsSource{config: s.config}
	material, err := streaming.build(row)
	if err != nil {
		s.err = err
		return nil, err
	}
	return material, nil
}

func (s *BufferedMaterialsSource) load() error {
	in := sourceInput{path: s.config.Path, reader: s.config.Reader}
	rows, err := openRows(in, s.config.Delimiter, s.config.NoHeader, s.config.columns())
	if err != nil {
		return err
	}
	defer rows.Close()
	for {
		row, err := rows.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		s.rows = append(s.rows, row)
	}
	s.loaded = true
	return nil
}
