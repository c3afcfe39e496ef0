package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	for _, name := range []string{"kilogram", "pound", "box", "piece"} {
		unit, err := ParseUnit(name)
		require.NoError(t, err)
		assert.Equal(t, Unit(name), unit)
	}

	_, err := ParseUnit("")
	assert.EqualError(t, err, "unit can not be empty")

	_, err = ParseUnit("stone")
	assert.EqualError(t, err, `unknown quantity unit "stone"`)
}

func TestUnitIntegral(t *testing.T) {
	assert.False(t, UnitKilogram.Integral())
	assert.False(t, UnitPound.Integral())
	assert.True(t, UnitBox.Integral())
	assert.True(t, UnitPiece.Integral())
}

func TestEmptyMarkers(t *testing.T) {
	assert.True(t, QuantityValue{}.IsEmpty())
	assert.True(t, CharacteristicValue{}.IsEmpty())

	amount := 12.5
	assert.False(t, QuantityValue{Kilogram: &amount}.IsEmpty())

	flag := true
	assert.False(t, CharacteristicValue{BoolValue: &flag}.IsEmpty())
}

func TestUploadResultOk(t *testing.T) {
	assert.True(t, UploadResult{}.Ok())
	assert.False(t, UploadResult{Code: 16, Message: "invalid token"}.Ok())
}
