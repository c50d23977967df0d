package segy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseScalingFactorCascade(t *testing.T) {
	// Small magnitudes keep scaling comfortably above every threshold, so
	// every branch fires and the largest-threshold branch wins.
	assert.Equal(t, -10000, chooseScalingFactor(1))
	// A very large magnitude drives scaling below 0.0001, so no branch
	// fires and the factor stays at its zero default.
	assert.Equal(t, 0, chooseScalingFactor(1e14))
}

func TestReadCoordinateTable(t *testing.T) {
	data := "1 1 1 100.0 200.0 0.0 meters\n2 1 2 -50.5 75.25 0.0 feet\n"
	table, err := ReadCoordinateTable(strings.NewReader(data))
	require.NoError(t, err)

	row, ok := table.Lookup(1, 1, 1)
	require.True(t, ok)
	assert.Equal(t, UnitFeetOrMeters, row.Unit)

	_, ok = table.Lookup(99, 99, 99)
	assert.False(t, ok)
}

func TestReadCoordinateTableMalformedRow(t *testing.T) {
	_, err := ReadCoordinateTable(strings.NewReader("not enough fields\n"))
	assert.ErrorIs(t, err, ErrCoordinateFileSyntax)
}

func TestEncodeCoordinateScalar(t *testing.T) {
	assert.Equal(t, int16(100), EncodeCoordinateScalar(100))
	assert.Equal(t, int16(-100), EncodeCoordinateScalar(-100))
}
