package csv

import (
	"context"
	"io"

	"github.com/volur-ai/sdk-go/types"
)

// DemandConfig configures a CSV source of demand records.
type DemandConfig struct {
	// Path points at the CSV file to read. Mutually exclusive with Reader.
	Path string
	// Reader supplies the CSV bytes from memory. Mutually exclusive with
	// Path.
	Reader io.Reader
	// Delimiter separates fields; comma when unset.
	Delimiter rune
	// NoHeader switches the source to positional addressing.
	NoHeader bool

	// ProductID locates the product a demand refers to. Required.
	ProductID Column
	// Plant optionally locates the production plant reference.
	Plant *Column
	// CustomerID optionally locates the ordering customer reference.
	CustomerID *Column
	// Quantity optionally locates the demanded quantity.
	Quantity *QuantityColumn
	// Characteristics are coerced in configuration order.
	Characteristics []CharacteristicColumn
}

func (cfg DemandConfig) columns() []Key {
	keys := []Key{cfg.ProductID.key}
	if cfg.Plant != nil {
		keys = append(keys, cfg.Plant.key)
	}
	if cfg.CustomerID != nil {
		keys = append(keys, cfg.CustomerID.key)
	}
	if cfg.Quantity != nil {
		keys = append(keys, cfg.Quantity.key)
	}
	for _, column := range cfg.Characteristics {
		keys = append(keys, column.key)
	}
	return keys
}

// DemandSource produces a lazy sequence of demand records from a CSV input.
type DemandSource struct {
	config DemandConfig
	run    run
}

// NewDemandSource validates the configuration.
func NewDemandSource(cfg DemandConfig) (*DemandSource, error) {
	if err := (sourceInput{path: cfg.Path, reader: cfg.Reader}).validate(); err != nil {
		return nil, err
	}
	if err := cfg.ProductID.key.validate(); err != nil {
		return nil, err
	}
	return &DemandSource{config: cfg}, nil
}

// Next returns the next demand, or io.EOF when the source is exhausted.
func (s *DemandSource) Next(ctx context.Context) (*types.Demand, error) {
	return next(ctx, &s.run, s.open, s.build)
}

// Close releases the underlying stream early.
func (s *DemandSource) Close() error { return s.run.close() }

func (s *DemandSource) open() (*rowReader, error) {
	in := sourceInput{path: s.config.Path, reader: s.config.Reader}
	return openRows(in, s.config.Delimiter, s.config.NoHeader, s.config.columns())
}

func (s *DemandSource) build(row Row) (*types.Demand, error) {
	demand := &types.Demand{}
	id, err := s.config.ProductID.lookup(row)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, &IdentityRequiredError{Column: s.config.ProductID.key}
	}
	demand.Product = &types.Product{ProductID: id}
	if s.config.Plant != nil {
		plant, err := s.config.Plant.lookup(row)
		if err != nil {
			return nil, err
		}
		demand.Plant = plant
	}
	if s.config.CustomerID != nil {
		customer, err := s.config.CustomerID.lookup(row)
		if err != nil {
			return nil, err
		}
		demand.CustomerID = customer
	}
	if s.config.Quantity != nil {
		quantity, err := s.config.Quantity.Value(row)
		if err != nil {
			return nil, err
		}
		demand.Quantity = &quantity
	}
	for _, column := range s.config.Characteristics {
		characteristic, err := column.Value(row)
		if err != nil {
			return nil, err
		}
		demand.Characteristics = append(demand.Characteristics, characteristic)
	}
	return demand, nil
}
