// Package types defines the domain and wire types shared across the SDK.
package types

import "fmt"

// Unit enumerates the quantity units accepted by the platform.
type Unit string

const (
	UnitKilogram Unit = "kilogram"
	UnitPound    Unit = "pound"
	UnitBox      Unit = "box"
	UnitPiece    Unit = "piece"
)

// ParseUnit validates a raw unit name.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitKilogram, UnitPound, UnitBox, UnitPiece:
		return Unit(s), nil
	case "":
		return "", fmt.Errorf("unit can not be empty")
	default:
		return "", fmt.Errorf("unknown quantity unit %q", s)
	}
}

// Integral reports whether the unit carries a whole-number amount.
// Kilogram and pound amounts are fractional, box and piece counts are not.
func (u Unit) Integral() bool {
	return u == UnitBox || u == UnitPiece
}

// QuantityValue holds an amount in exactly one unit. The zero value is the
// empty marker: a quantity that is present but has no known amount.
type QuantityValue struct {
	Kilogram *float64 `json:"kilogram,omitempty"`
	Pound    *float64 `json:"pound,omitempty"`
	Box      *int64   `json:"box,omitempty"`
	Piece    *int64   `json:"piece,omitempty"`
}

// IsEmpty reports whether no unit field is populated.
func (v QuantityValue) IsEmpty() bool {
	return v.Kilogram == nil && v.Pound == nil && v.Box == nil && v.Piece == nil
}

// Quantity is a numeric amount tagged with a unit.
type Quantity struct {
	Value QuantityValue `json:"value"`
}

// Date is a calendar date without a time component.
type Date struct {
	Year  int32 `json:"year"`
	Month int32 `json:"month"`
	Day   int32 `json:"day"`
}

// Datetime is a calendar date with a wall-clock time.
type Datetime struct {
	Year    int32 `json:"year"`
	Month   int32 `json:"month"`
	Day     int32 `json:"day"`
	Hours   int32 `json:"hours"`
	Minutes int32 `json:"minutes"`
	Seconds int32 `json:"seconds"`
}

// CharacteristicValue holds at most one typed value. The zero value is the
// empty marker: the characteristic exists but its value is unknown, which is
// distinct from the characteristic being absent from a record.
type CharacteristicValue struct {
	StringValue   *string   `json:"value_string,omitempty"`
	IntegerValue  *int64    `json:"value_integer,omitempty"`
	FloatValue    *float64  `json:"value_float,omitempty"`
	BoolValue     *bool     `json:"value_bool,omitempty"`
	DateValue     *Date     `json:"value_date,omitempty"`
	DatetimeValue *Datetime `json:"value_datetime,omitempty"`
}

// IsEmpty reports whether no typed field is populated.
func (v CharacteristicValue) IsEmpty() bool {
	return v.StringValue == nil &&
		v.IntegerValue == nil &&
		v.FloatValue == nil &&
		v.BoolValue == nil &&
		v.DateValue == nil &&
		v.DatetimeValue == nil
}

// Characteristic is a named, typed, arbitrary attribute attached to a record.
type Characteristic struct {
	Name  string              `json:"name"`
	Value CharacteristicValue `json:"value"`
}

// Status is the per-response status reported by the platform, mirroring the
// standard (code, message) RPC status shape.
type Status struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// UploadResult is the terminal outcome of one streaming upload session.
// Code 0 means the stream drained without a session-level failure; any other
// code carries the transport's status code and message verbatim.
type UploadResult struct {
	Code    int32
	Message string
}

// Ok reports whether the session completed successfully.
func (r UploadResult) Ok() bool { return r.Code == 0 }
