package csv

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/volur-ai/sdk-go/types"
)

// Coercion target names used in error messages.
const (
	targetString   = "string characteristic"
	targetInteger  = "integer characteristic"
	targetFloat    = "float characteristic"
	targetBool     = "bool characteristic"
	targetDate     = "date"
	targetDatetime = "datetime"
)

// defaultDateFormats are tried in order; caller-supplied extras are appended.
var defaultDateFormats = []string{
	"02-01-2006",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
}

// defaultDatetimeFormats are tried in order. Parsing tolerates a fractional
// seconds suffix on any of them.
var defaultDatetimeFormats = []string{
	"02-01-2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"02/01/2006 03:04:05 PM",
	"02/01/2006 15:04:05",
}

type characteristicKind int

const (
	kindString characteristicKind = iota
	kindInteger
	kindFloat
	kindBool
	kindDate
	kindDatetime
)

// CharacteristicColumn converts a cell into a named, typed characteristic.
// The coercion behavior is fixed by the constructor used: string, integer,
// float, bool, date or datetime. An empty cell always yields the empty
// marker, a characteristic carrying no typed value.
type CharacteristicColumn struct {
	Column
	characteristic string
	kind           characteristicKind

	trueValues  map[string]struct{}
	falseValues map[string]struct{}
	formats     []string
}

// CharacteristicName returns the output field name of the characteristic.
func (c CharacteristicColumn) CharacteristicName() string { return c.characteristic }

func newCharacteristicColumn(key Key, characteristic string, kind characteristicKind) (CharacteristicColumn, error) {
	column, err := NewColumn(key)
	if err != nil {
		return CharacteristicColumn{}, err
	}
	if characteristic == "" {
		return CharacteristicColumn{}, fmt.Errorf("characteristic name can not be empty")
	}
	return CharacteristicColumn{Column: column, characteristic: characteristic, kind: kind}, nil
}

// NewStringColumn builds a characteristic column that passes values through
// unchanged.
func NewStringColumn(key Key, characteristic string) (CharacteristicColumn, error) {
	return newCharacteristicColumn(key, characteristic, kindString)
}

// NewIntegerColumn builds a characteristic column parsing base-10 integers.
func NewIntegerColumn(key Key, characteristic string) (CharacteristicColumn, error) {
	return newCharacteristicColumn(key, characteristic, kindInteger)
}

// NewFloatColumn builds a characteristic column parsing floating point
// values.
func NewFloatColumn(key Key, characteristic string) (CharacteristicColumn, error) {
	return newCharacteristicColumn(key, characteristic, kindFloat)
}

// NewBoolColumn builds a characteristic column matching values
// case-insensitively against true and false token sets. The defaults are
// "true" and "false"; extras extend them. The true set is checked before the
// false set, so a token listed in both resolves to true.
func NewBoolColumn(key Key, characteristic string, extraTrue, extraFalse []string) (CharacteristicColumn, error) {
	column, err := newCharacteristicColumn(key, characteristic, kindBool)
	if err != nil {
		return CharacteristicColumn{}, err
	}
	column.trueValues = tokenSet("true", extraTrue)
	column.falseValues = tokenSet("false", extraFalse)
	return column, nil
}

func tokenSet(def string, extras []string) map[string]struct{} {
	set := map[string]struct{}{def: {}}
	for _, extra := range extras {
		set[strings.ToLower(extra)] = struct{}{}
	}
	return set
}

// NewDateColumn builds a characteristic column parsing calendar dates. The
// default formats are tried first, then the extras, in order; the first
// matching format wins.
func NewDateColumn(key Key, characteristic string, extraFormats ...string) (CharacteristicColumn, error) {
	column, err := newCharacteristicColumn(key, characteristic, kindDate)
	if err != nil {
		return CharacteristicColumn{}, err
	}
	column.formats = append(append([]string{}, defaultDateFormats...), extraFormats...)
	return column, nil
}

// NewDatetimeColumn builds a characteristic column parsing dates with a
// wall-clock time component.
func NewDatetimeColumn(key Key, characteristic string, extraFormats ...string) (CharacteristicColumn, error) {
	column, err := newCharacteristicColumn(key, characteristic, kindDatetime)
	if err != nil {
		return CharacteristicColumn{}, err
	}
	column.formats = append(append([]string{}, defaultDatetimeFormats...), extraFormats...)
	return column, nil
}

// Value coerces the addressed cell into a characteristic. An absent column
// key fails; a present but empty value yields the empty marker.
func (c CharacteristicColumn) Value(row Row) (types.Characteristic, error) {
	characteristic := types.Characteristic{Name: c.characteristic}
	raw, err := c.lookup(row)
	if err != nil {
		return types.Characteristic{}, err
	}
	if raw == "" {
		return characteristic, nil
	}
	switch c.kind {
	case kindString:
		characteristic.Value.StringValue = &raw
	case kindInteger:
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return types.Characteristic{}, &ValueCoercionError{Column: c.key, Value: raw, Target: targetInteger}
		}
		characteristic.Value.IntegerValue = &value
	case kindFloat:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return types.Characteristic{}, &ValueCoercionError{Column: c.key, Value: raw, Target: targetFloat}
		}
		characteristic.Value.FloatValue = &value
	case kindBool:
		token := strings.ToLower(raw)
		if _, ok := c.trueValues[token]; ok {
			value := true
			characteristic.Value.BoolValue = &value
			break
		}
		if _, ok := c.falseValues[token]; ok {
			value := false
			characteristic.Value.BoolValue = &value
			break
		}
		return types.Characteristic{}, &ValueCoercionError{Column: c.key, Value: raw, Target: targetBool}
	case kindDate:
		parsed, ok := c.parseFormats(raw)
		if !ok {
			return types.Characteristic{}, &ValueCoercionError{Column: c.key, Value: raw, Target: targetDate}
		}
		characteristic.Value.DateValue = &types.Date{
			Year:  int32(parsed.Year()),
			Month: int32(parsed.Month()),
			Day:   int32(parsed.Day()),
		}
	case kindDatetime:
		parsed, ok := c.parseFormats(raw)
		if !ok {
			return types.Characteristic{}, &ValueCoercionError{Column: c.key, Value: raw, Target: targetDatetime}
		}
		characteristic.Value.DatetimeValue = &types.Datetime{
			Year:    int32(parsed.Year()),
			Month:   int32(parsed.Month()),
			Day:     int32(parsed.Day()),
			Hours:   int32(parsed.Hour()),
			Minutes: int32(parsed.Minute()),
			Seconds: int32(parsed.Second()),
		}
	}
	return characteristic, nil
}

func (c CharacteristicColumn) parseFormats(raw string) (time.Time, bool) {
	for _, format := range c.formats {
		if parsed, err := time.Parse(format, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
