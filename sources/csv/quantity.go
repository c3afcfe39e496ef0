package csv

import (
	"strconv"

	"github.com/volur-ai/sdk-go/types"
)

// QuantityColumn converts a cell into a quantity in a fixed unit. Kilogram
// and pound values parse as floating point, box and piece counts as base-10
// integers.
type QuantityColumn struct {
	Column
	unit types.Unit
}

// NewQuantityColumn validates the key and unit and builds the descriptor.
func NewQuantityColumn(key Key, unit types.Unit) (QuantityColumn, error) {
	column, err := NewColumn(key)
	if err != nil {
		return QuantityColumn{}, err
	}
	parsed, err := types.ParseUnit(string(unit))
	if err != nil {
		return QuantityColumn{}, err
	}
	return QuantityColumn{Column: column, unit: parsed}, nil
}

// Unit returns the configured unit.
func (c QuantityColumn) Unit() types.Unit { return c.unit }

// Value coerces the addressed cell into a quantity. An empty cell yields the
// empty marker: a quantity with no populated unit field.
func (c QuantityColumn) Value(row Row) (types.Quantity, error) {
	raw, err := c.lookup(row)
	if err != nil {
		return types.Quantity{}, err
	}
	if raw == "" {
		return types.Quantity{}, nil
	}
	var value types.QuantityValue
	switch c.unit {
	case types.UnitKilogram, types.UnitPound:
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return types.Quantity{}, &ValueCoercionError{Column: c.key, Value: raw, Target: string(c.unit)}
		}
		if c.unit == types.UnitKilogram {
			value.Kilogram = &amount
		} else {
			value.Pound = &amount
		}
	case types.UnitBox, types.UnitPiece:
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return types.Quantity{}, &ValueCoercionError{Column: c.key, Value: raw, Target: string(c.unit)}
		}
		if c.unit == types.UnitBox {
			value.Box = &count
		} else {
			value.Piece = &count
		}
	}
	return types.Quantity{Value: value}, nil
}
