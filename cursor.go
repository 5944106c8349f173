// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

import (
	"encoding/binary"
	"math"
)

// A cursor is a bounds-checked reader over a byte slice. Reads consume
// bytes at the current position using the cursor's byte order and
// advance it. A failed read reports the absolute byte offset, counted
// from the start of the original buffer, so that errors from nested
// geometries point into the outermost input.
type cursor struct {
	data  []byte
	pos   int
	base  int
	order binary.ByteOrder
}

// newCursor creates a cursor over data whose first byte sits at
// absolute offset base within the original input.
func newCursor(data []byte, base int) *cursor {
	return &cursor{data: data, base: base}
}

// offset returns the cursor's absolute position within the original
// input buffer.
func (c *cursor) offset() int {
	return c.base + c.pos
}

// rem returns the unread remainder of the buffer.
func (c *cursor) rem() []byte {
	return c.data[c.pos:]
}

func (c *cursor) need(n int) error {
	if len(c.data)-c.pos < n {
		return wkbErr(c.offset(), "unexpected end of input: need %d bytes, have %d", n, len(c.data)-c.pos)
	}
	return nil
}

// readOrder consumes the endian byte which starts every WKB geometry
// record and sets the cursor's byte order from it: 0 selects big
// endian, 1 little endian.
func (c *cursor) readOrder() error {
	if err := c.need(1); err != nil {
		return err
	}
	b := c.data[c.pos]
	switch b {
	case 0:
		c.order = binary.BigEndian
	case 1:
		c.order = binary.LittleEndian
	default:
		return wkbErr(c.offset(), "invalid endian byte 0x%02x", b)
	}
	c.pos++
	return nil
}

func (c *cursor) readUint32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := c.order.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *cursor) readInt32() (int32, error) {
	v, err := c.readUint32()
	return int32(v), err
}

func (c *cursor) readFloat64() (float64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := math.Float64frombits(c.order.Uint64(c.data[c.pos:]))
	c.pos += 8
	return v, nil
}

// A wkbBuffer accumulates an encoded geometry. Output is always little
// endian, matching what PostGIS itself emits.
type wkbBuffer struct {
	buf []byte
}

func (w *wkbBuffer) writeOrder() {
	w.buf = append(w.buf, 1)
}

func (w *wkbBuffer) writeUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *wkbBuffer) writeInt32(v int32) {
	w.writeUint32(uint32(v))
}

func (w *wkbBuffer) writeFloat64(v float64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, math.Float64bits(v))
}

func (w *wkbBuffer) bytes() []byte {
	return w.buf
}
