package csv

import (
	"context"
	"io"

	"github.com/volur-ai/sdk-go/types"
)

// ProductsConfig configures a CSV source of product records.
type ProductsConfig struct {
	// Path points at the CSV file to read. Mutually exclusive with Reader.
	Path string
	// Reader supplies the CSV bytes from memory. Mutually exclusive with
	// Path.
	Reader io.Reader
	// Delimiter separates fields; comma when unset.
	Delimiter rune
	// NoHeader switches the source to positional addressing.
	NoHeader bool

	// ProductID locates the identity of each product. Required.
	ProductID Column
	// Characteristics are coerced in configuration order.
	Characteristics []CharacteristicColumn
}

func (cfg ProductsConfig) columns() []Key {
	keys := []Key{cfg.ProductID.key}
	for _, column := range cfg.Characteristics {
		keys = append(keys, column.key)
	}
	return keys
}

// ProductsSource produces a lazy sequence of product records from a CSV
// input.
type ProductsSource struct {
	config ProductsConfig
	run    run
}

// NewProductsSource validates the configuration.
func NewProductsSource(cfg ProductsConfig) (*ProductsSource, error) {
	if err := (sourceInput{path: cfg.Path, reader: cfg.Reader}).validate(); err != nil {
		return nil, err
	}
	if err := cfg.ProductID.key.validate(); err != nil {
		return nil, err
	}
	return &ProductsSource{config: cfg}, nil
}

// Next returns the next product, or io.EOF when the source is exhausted.
func (s *ProductsSource) Next(ctx context.Context) (*types.Product, error) {
	return next(ctx, &s.run, s.open, s.build)
}

// Close releases the underlying stream early.
func (s *ProductsSource) Close() error { return s.run.close() }

func (s *ProductsSource) open() (*rowReader, error) {
	in := sourceInput{path: s.config.Path, reader: s.config.Reader}
	return openRows(in, s.config.Delimiter, s.config.NoHeader, s.config.columns())
}

func (s *ProductsSource) build(row Row) (*types.Product, error) {
	product := &types.Product{}
	id, err := s.config.ProductID.lookup(row)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, &IdentityRequiredError{Column: s.config.ProductID.key}
	}
	product.ProductID = id
	for _, column := range s.config.Characteristics {
		characteristic, err := column.Value(row)
		if err != nil {
			return nil, err
		}
		product.Characteristics = append(product.Characteristics, characteristic)
	}
	return product, nil
}
