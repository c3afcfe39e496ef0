package csv

import (
	"context"
	"io"

	"github.com/volur-ai/sdk-go/types"
)

// MaterialsConfig configures a CSV source of material records.
type MaterialsConfig struct {
	// Path points at the CSV file to read. Mutually exclusive with Reader.
	Path string
	// Reader supplies the CSV bytes from memory. Mutually exclusive with
	// Path; a reader-backed source can not be re-run.
	Reader io.Reader
	// Delimiter separates fields; comma when unset.
	Delimiter rune
	// NoHeader switches the source to positional addressing: column keys
	// are zero-based indexes instead of header names.
	NoHeader bool

	// MaterialID locates the identity of each material. Required; a row
	// with an empty identity fails the run.
	MaterialID Column
	// Plant optionally locates the production plant reference.
	Plant *Column
	// Quantity optionally locates the material quantity.
	Quantity *QuantityColumn
	// Characteristics are coerced in order; the output list preserves this
	// configuration order.
	Characteristics []CharacteristicColumn
}

func (cfg MaterialsConfig) columns() []Key {
	keys := []Key{cfg.MaterialID.key}
	if cfg.Plant != nil {
		keys = append(keys, cfg.Plant.key)
	}
	if cfg.Quantity != nil {
		keys = append(keys, cfg.Quantity.key)
	}
	for _, column := range cfg.Characteristics {
		keys = append(keys, column.key)
	}
	return keys
}

// MaterialsSource produces a lazy sequence of material records from a CSV
// input. The sequence is finite, forward-only and not restartable; construct
// a new source to run the same configuration again.
type MaterialsSource struct {
	config MaterialsConfig
	run    run
}

// NewMaterialsSource validates the configuration. Problems with the input
// itself (missing file, malformed data) surface at first iteration instead.
func NewMaterialsSource(cfg MaterialsConfig) (*MaterialsSource, error) {
	if err := (sourceInput{path: cfg.Path, reader: cfg.Reader}).validate(); err != nil {
		return nil, err
	}
	if err := cfg.MaterialID.key.validate(); err != nil {
		return nil, err
	}
	return &MaterialsSource{config: cfg}, nil
}

// Next returns the next material. It returns io.EOF when the source is
// exhausted and a coercion or source error when a row can not be folded into
// a record.
func (s *MaterialsSource) Next(ctx context.Context) (*types.Material, error) {
	return next(ctx, &s.run, s.open, s.build)
}

// Close releases the underlying stream early, for callers abandoning the
// sequence mid-run.
func (s *MaterialsSource) Close() error { return s.run.close() }

func (s *MaterialsSource) open() (*rowReader, error) {
	in := sourceInput{path: s.config.Path, reader: s.config.Reader}
	return openRows(in, s.config.Delimiter, s.config.NoHeader, s.config.columns())
}

func (s *MaterialsSource) build(row Row) (*types.Material, error) {
	material := &types.Material{}
	id, err := s.config.MaterialID.lookup(row)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, &IdentityRequiredError{Column: s.config.MaterialID.key}
	}
	material.MaterialID = id
	if s.config.Plant != nil {
		plant, err := s.config.Plant.lookup(row)
		if err != nil {
			return nil, err
		}
		material.Plant = plant
	}
	if s.config.Quantity != nil {
		quantity, err := s.config.Quantity.Value(row)
		if err != nil {
			return nil, err
		}
		material.Quantity = &quantity
	}
	for _, column := range s.config.Characteristics {
		characteristic, err := column.Value(row)
		if err != nil {
			return nil, err
		}
		material.Characteristics = append(material.Characteristics, characteristic)
	}
	return material, nil
}
