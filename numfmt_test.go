// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCoord(t *testing.T) {
	testCases := []struct {
		name      string
		input     float64
		precision int
		expected  string
	}{
		{"Zero", 0, 6, "0"},
		{"NegativeZero", math.Copysign(0, -1), 6, "0"},
		{"Integer", 120, 6, "120"},
		{"IntegerValued", 10.0, 6, "10"},
		{"NegativeInteger", -52, 6, "-52"},
		{"Fraction", -124.005, 6, "-124.005"},
		{"Short", 0.5, 6, "0.5"},
		{"CappedRounding", 0.123456789, 6, "0.123457"},
		{"CappedTrimmed", 1.5000001, 6, "1.5"},
		{"PrecisionZero", 1.75, 0, "2"},
		{"PrecisionZeroInteger", 120, 0, "120"},
		{"Tiny", 0.0000004, 6, "0"},
		{"TinyNegative", -0.0000004, 6, "0"},
		{"Large", 1e21, 6, "1000000000000000000000"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual, err := formatCoord(testCase.input, testCase.precision)

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestFormatCoord_NonFinite(t *testing.T) {
	testCases := []struct {
		name  string
		input float64
	}{
		{"NaN", math.NaN()},
		{"PosInf", math.Inf(1)},
		{"NegInf", math.Inf(-1)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := formatCoord(testCase.input, 6)

			var wktErr *WktError
			require.ErrorAs(t, err, &wktErr)
		})
	}
}

func TestWKTPrecision(t *testing.T) {
	t.Cleanup(func() { SetWKTPrecision(DefaultWKTPrecision) })

	assert.Equal(t, DefaultWKTPrecision, WKTPrecision())

	SetWKTPrecision(2)
	assert.Equal(t, 2, WKTPrecision())

	s, err := formatCoord(0.123456789, WKTPrecision())
	require.NoError(t, err)
	assert.Equal(t, "0.12", s)

	SetWKTPrecision(-1)
	assert.Equal(t, 0, WKTPrecision())
}
