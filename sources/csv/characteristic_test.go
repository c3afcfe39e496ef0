package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volur-ai/sdk-go/types"
)

func TestCharacteristicColumnConstructors(t *testing.T) {
	t.Run("rejects an empty characteristic name", func(t *testing.T) {
		_, err := NewStringColumn(Name("column"), "")
		require.EqualError(t, err, "characteristic name can not be empty")
	})

	t.Run("rejects an invalid key", func(t *testing.T) {
		_, err := NewIntegerColumn(Name(""), "characteristic")
		require.Error(t, err)
	})
}

// Every coercer must keep "column absent" and "value empty" apart: the first
// fails, the second yields the empty marker.
func TestEmptyVersusMissing(t *testing.T) {
	columns := map[string]CharacteristicColumn{}

	stringColumn, err := NewStringColumn(Name("column"), "characteristic")
	require.NoError(t, err)
	columns["string"] = stringColumn

	integerColumn, err := NewIntegerColumn(Name("column"), "characteristic")
	require.NoError(t, err)
	columns["integer"] = integerColumn

	floatColumn, err := NewFloatColumn(Name("column"), "characteristic")
	require.NoError(t, err)
	columns["float"] = floatColumn

	boolColumn, err := NewBoolColumn(Name("column"), "characteristic", nil, nil)
	require.NoError(t, err)
	columns["bool"] = boolColumn

	dateColumn, err := NewDateColumn(Name("column"), "characteristic")
	require.NoError(t, err)
	columns["date"] = dateColumn

	datetimeColumn, err := NewDatetimeColumn(Name("column"), "characteristic")
	require.NoError(t, err)
	columns["datetime"] = datetimeColumn

	for name, column := range columns {
		t.Run(name+" empty value yields the empty marker", func(t *testing.T) {
			characteristic, err := column.Value(Row{Name("column"): ""})
			require.NoError(t, err)
			assert.Equal(t, "characteristic", characteristic.Name)
			assert.True(t, characteristic.Value.IsEmpty())
		})

		t.Run(name+" missing column fails", func(t *testing.T) {
			_, err := column.Value(Row{Name("other"): "1"})
			var missing *MissingColumnError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, "column", missing.Column.String())
		})
	}
}

func TestStringColumn(t *testing.T) {
	column, err := NewStringColumn(Name("column"), "quality_category")
	require.NoError(t, err)

	characteristic, err := column.Value(Row{Name("column"): "premium"})
	require.NoError(t, err)
	require.NotNil(t, characteristic.Value.StringValue)
	assert.Equal(t, "premium", *characteristic.Value.StringValue)
}

func TestIntegerColumn(t *testing.T) {
	column, err := NewIntegerColumn(Name("column"), "count")
	require.NoError(t, err)

	t.Run("parses base-10", func(t *testing.T) {
		characteristic, err := column.Value(Row{Name("column"): "-42"})
		require.NoError(t, err)
		require.NotNil(t, characteristic.Value.IntegerValue)
		assert.Equal(t, int64(-42), *characteristic.Value.IntegerValue)
	})

	t.Run("reports the offending value", func(t *testing.T) {
		_, err := column.Value(Row{Name("column"): "4.2"})
		var coercion *ValueCoercionError
		require.ErrorAs(t, err, &coercion)
		assert.Equal(t, "4.2", coercion.Value)
		assert.EqualError(t, err, `provided value "4.2" in column column can not be interpreted as integer characteristic`)
	})
}

func TestFloatColumn(t *testing.T) {
	column, err := NewFloatColumn(Name("column"), "lean_percentage")
	require.NoError(t, err)

	characteristic, err := column.Value(Row{Name("column"): "17.5"})
	require.NoError(t, err)
	require.NotNil(t, characteristic.Value.FloatValue)
	assert.Equal(t, 17.5, *characteristic.Value.FloatValue)

	_, err = column.Value(Row{Name("column"): "seventeen"})
	var coercion *ValueCoercionError
	require.ErrorAs(t, err, &coercion)
}

func TestBoolColumnTokenSets(t *testing.T) {
	column, err := NewBoolColumn(Name("column"), "is_frozen", []string{"Yes"}, []string{"No"})
	require.NoError(t, err)

	expectBool := func(t *testing.T, raw string, expected bool) {
		t.Helper()
		characteristic, err := column.Value(Row{Name("column"): raw})
		require.NoError(t, err)
		require.NotNil(t, characteristic.Value.BoolValue)
		assert.Equal(t, expected, *characteristic.Value.BoolValue)
	}

	t.Run("extra tokens extend the defaults", func(t *testing.T) {
		expectBool(t, "yes", true)
		expectBool(t, "no", false)
		expectBool(t, "true", true)
		expectBool(t, "false", false)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		expectBool(t, "YES", true)
		expectBool(t, "TRUE", true)
		expectBool(t, "nO", false)
	})

	t.Run("unrecognized token fails", func(t *testing.T) {
		_, err := column.Value(Row{Name("column"): "maybe"})
		var coercion *ValueCoercionError
		require.ErrorAs(t, err, &coercion)
	})
}

// A token listed in both extra sets resolves to true because the true set is
// checked first. The precedence is observable behavior and must hold.
func TestBoolColumnAmbiguousTokenResolvesTrue(t *testing.T) {
	column, err := NewBoolColumn(Name("column"), "flag", []string{"both"}, []string{"both"})
	require.NoError(t, err)

	characteristic, err := column.Value(Row{Name("column"): "both"})
	require.NoError(t, err)
	require.NotNil(t, characteristic.Value.BoolValue)
	assert.True(t, *characteristic.Value.BoolValue)
}

func TestDateColumnFormatFallback(t *testing.T) {
	column, err := NewDateColumn(Name("column"), "produced_at")
	require.NoError(t, err)

	t.Run("day-first with dashes", func(t *testing.T) {
		characteristic, err := column.Value(Row{Name("column"): "15-06-2021"})
		require.NoError(t, err)
		assert.Equal(t, &types.Date{Year: 2021, Month: 6, Day: 15}, characteristic.Value.DateValue)
	})

	t.Run("day-first with slashes", func(t *testing.T) {
		characteristic, err := column.Value(Row{Name("column"): "10/06/2018"})
		require.NoError(t, err)
		assert.Equal(t, &types.Date{Year: 2018, Month: 6, Day: 10}, characteristic.Value.DateValue)
	})

	t.Run("iso", func(t *testing.T) {
		characteristic, err := column.Value(Row{Name("column"): "2021-06-15"})
		require.NoError(t, err)
		assert.Equal(t, &types.Date{Year: 2021, Month: 6, Day: 15}, characteristic.Value.DateValue)
	})

	t.Run("exhausting every format fails", func(t *testing.T) {
		_, err := column.Value(Row{Name("column"): "01-01-202"})
		var coercion *ValueCoercionError
		require.ErrorAs(t, err, &coercion)
		assert.EqualError(t, err, `provided value "01-01-202" in column column has invalid date format`)
	})
}

func TestDateColumnExtraFormats(t *testing.T) {
	column, err := NewDateColumn(Name("column"), "produced_at", "2006.01.02")
	require.NoError(t, err)

	characteristic, err := column.Value(Row{Name("column"): "2021.06.15"})
	require.NoError(t, err)
	assert.Equal(t, &types.Date{Year: 2021, Month: 6, Day: 15}, characteristic.Value.DateValue)
}

func TestDatetimeColumn(t *testing.T) {
	column, err := NewDatetimeColumn(Name("column"), "arrived_at")
	require.NoError(t, err)

	t.Run("24-hour clock", func(t *testing.T) {
		characteristic, err := column.Value(Row{Name("column"): "15-06-2021 15:30:34"})
		require.NoError(t, err)
		assert.Equal(t,
			&types.Datetime{Year: 2021, Month: 6, Day: 15, Hours: 15, Minutes: 30, Seconds: 34},
			characteristic.Value.DatetimeValue)
	})

	t.Run("12-hour clock", func(t *testing.T) {
		characteristic, err := column.Value(Row{Name("column"): "10/06/2018 03:30:15 PM"})
		require.NoError(t, err)
		assert.Equal(t,
			&types.Datetime{Year: 2018, Month: 6, Day: 10, Hours: 15, Minutes: 30, Seconds: 15},
			characteristic.Value.DatetimeValue)
	})

	t.Run("fractional seconds are tolerated and truncated", func(t *testing.T) {
		characteristic, err := column.Value(Row{Name("column"): "10/06/2018 03:10:34.45"})
		require.NoError(t, err)
		assert.Equal(t,
			&types.Datetime{Year: 2018, Month: 6, Day: 10, Hours: 3, Minutes: 10, Seconds: 34},
			characteristic.Value.DatetimeValue)
	})

	t.Run("exhausting every format fails", func(t *testing.T) {
		_, err := column.Value(Row{Name("column"): "01-01-202"})
		var coercion *ValueCoercionError
		require.ErrorAs(t, err, &coercion)
		assert.EqualError(t, err, `provided value "01-01-202" in column column has invalid datetime format`)
	})
}
