// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_ReadOrder(t *testing.T) {
	t.Run("Big", func(t *testing.T) {
		c := newCursor([]byte{0x00}, 0)

		require.NoError(t, c.readOrder())
		assert.Equal(t, binary.ByteOrder(binary.BigEndian), c.order)
	})

	t.Run("Little", func(t *testing.T) {
		c := newCursor([]byte{0x01}, 0)

		require.NoError(t, c.readOrder())
		assert.Equal(t, binary.ByteOrder(binary.LittleEndian), c.order)
	})

	t.Run("Invalid", func(t *testing.T) {
		c := newCursor([]byte{0x02}, 0)

		err := c.readOrder()

		var wkbErr *WkbError
		require.ErrorAs(t, err, &wkbErr)
	})

	t.Run("Empty", func(t *testing.T) {
		c := newCursor(nil, 0)

		err := c.readOrder()

		var wkbErr *WkbError
		require.ErrorAs(t, err, &wkbErr)
	})
}

func TestCursor_ReadUint32(t *testing.T) {
	t.Run("Little", func(t *testing.T) {
		c := newCursor([]byte{0x01, 0x00, 0x00, 0x20}, 0)
		c.order = binary.LittleEndian

		v, err := c.readUint32()

		require.NoError(t, err)
		assert.Equal(t, uint32(0x20000001), v)
	})

	t.Run("Big", func(t *testing.T) {
		c := newCursor([]byte{0x20, 0x00, 0x00, 0x01}, 0)
		c.order = binary.BigEndian

		v, err := c.readUint32()

		require.NoError(t, err)
		assert.Equal(t, uint32(0x20000001), v)
	})

	t.Run("Short", func(t *testing.T) {
		c := newCursor([]byte{0x01, 0x00}, 0)
		c.order = binary.LittleEndian

		_, err := c.readUint32()

		var wkbErr *WkbError
		require.ErrorAs(t, err, &wkbErr)
		assert.Equal(t, 0, wkbErr.Offset)
	})
}

func TestCursor_ReadFloat64(t *testing.T) {
	t.Run("Value", func(t *testing.T) {
		c := newCursor([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f}, 0)
		c.order = binary.LittleEndian

		v, err := c.readFloat64()

		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	})

	t.Run("Short", func(t *testing.T) {
		c := newCursor([]byte{0x00, 0x00}, 4)
		c.order = binary.LittleEndian

		_, err := c.readFloat64()

		var wkbErr *WkbError
		require.ErrorAs(t, err, &wkbErr)
		assert.Equal(t, 4, wkbErr.Offset)
	})
}

func TestWkbBuffer(t *testing.T) {
	w := &wkbBuffer{}
	w.writeOrder()
	w.writeUint32(0x20000001)
	w.writeFloat64(1.0)

	expected := []byte{
		0x01,
		0x01, 0x00, 0x00, 0x20,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f,
	}
	assert.Equal(t, expected, w.bytes())
}
