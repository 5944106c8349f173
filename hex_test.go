// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	t.Run("Lower", func(t *testing.T) {
		b, err := ParseHex("01ff")

		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0xff}, b)
	})

	t.Run("Upper", func(t *testing.T) {
		b, err := ParseHex("01FF")

		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0xff}, b)
	})

	t.Run("Empty", func(t *testing.T) {
		b, err := ParseHex("")

		require.NoError(t, err)
		assert.Empty(t, b)
	})

	t.Run("OddLength", func(t *testing.T) {
		_, err := ParseHex("01f")

		var wkbErr *WkbError
		require.ErrorAs(t, err, &wkbErr)
	})

	t.Run("NonHex", func(t *testing.T) {
		_, err := ParseHex("01fg")

		var wkbErr *WkbError
		require.ErrorAs(t, err, &wkbErr)
	})
}

func TestEncodeHex(t *testing.T) {
	assert.Equal(t, "01ff", EncodeHex([]byte{0x01, 0xff}))
}

func TestIsHex(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty", "", false},
		{"Digits", "0123", true},
		{"Lower", "abcdef", true},
		{"Upper", "ABCDEF", true},
		{"Wkt", "POINT (0 0)", false},
		{"Mixed", "01g0", false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := isHex(testCase.input)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}
