// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

// ParseWKB creates a geometry from WKB or EWKB bytes. Both
// endiannesses are accepted, selected per nested geometry by its
// leading endian byte.
//
// Only the header is decoded immediately: the endian byte, the type
// word, and the SRID when the type word carries the SRID flag, at most
// nine bytes in total. The input is copied and retained; children are
// materialized by the first structural read.
func ParseWKB(data []byte) (Geometry, error) {
	if len(data) == 0 {
		return nil, wkbErr(-1, "no (E)WKB provided")
	}
	buf := append([]byte(nil), data...)
	c := newCursor(buf, 0)
	if err := c.readOrder(); err != nil {
		return nil, err
	}
	wordOffset := c.offset()
	word, err := c.readUint32()
	if err != nil {
		return nil, err
	}
	t, dimz, dimm, hasSrid, err := decodeTypeWord(word, wordOffset)
	if err != nil {
		return nil, err
	}
	var srid int32
	if hasSrid {
		if srid, err = c.readInt32(); err != nil {
			return nil, err
		}
	}
	g := emptyVariant(t)
	h := g.hdr()
	h.srid, h.dimz, h.dimm = srid, dimz, dimm
	h.wkb = buf
	h.lazy = &lazyBody{payload: c.rem(), base: c.offset(), order: c.order}
	return g, nil
}

// ParseHexWKB creates a geometry from the hexadecimal form of WKB or
// EWKB, the representation PostGIS exchanges with its clients.
func ParseHexWKB(s string) (Geometry, error) {
	b, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	return ParseWKB(b)
}

// emptyVariant returns a zero geometry of the given class, ready to
// receive header state and a pending payload.
func emptyVariant(t GeomType) Geometry {
	switch t {
	case TypePoint:
		return &Point{}
	case TypeLineString:
		return &LineString{}
	case TypePolygon:
		return &Polygon{}
	case TypeMultiPoint:
		mp := &MultiPoint{}
		mp.containerType = TypeMultiPoint
		mp.childType = TypePoint
		return mp
	case TypeMultiLineString:
		ml := &MultiLineString{}
		ml.containerType = TypeMultiLineString
		ml.childType = TypeLineString
		return ml
	case TypeMultiPolygon:
		mp := &MultiPolygon{}
		mp.containerType = TypeMultiPolygon
		mp.childType = TypePolygon
		return mp
	default:
		gc := &GeometryCollection{}
		gc.containerType = TypeGeometryCollection
		return gc
	}
}

// readPointCoords decodes the coordinate payload of a point into p.
// The double count is determined by the container's dimensionality.
func readPointCoords(c *cursor, dimz, dimm bool, p *Point) error {
	var err error
	if p.x, err = c.readFloat64(); err != nil {
		return err
	}
	if p.y, err = c.readFloat64(); err != nil {
		return err
	}
	if dimz {
		if p.z, err = c.readFloat64(); err != nil {
			return err
		}
	}
	if dimm {
		if p.m, err = c.readFloat64(); err != nil {
			return err
		}
	}
	return nil
}

// readCount decodes a 4-byte element count and guards it against the
// remaining input so that a corrupted or hostile count cannot force a
// huge allocation. Each counted element occupies at least minSize
// bytes.
func readCount(c *cursor, minSize int) (int, error) {
	countOffset := c.offset()
	n, err := c.readUint32()
	if err != nil {
		return 0, err
	}
	if int64(n)*int64(minSize) > int64(len(c.rem())) {
		return 0, wkbErr(countOffset, "element count %d exceeds remaining input", n)
	}
	return int(n), nil
}

func readLineStringBody(c *cursor, dimz, dimm bool) ([]*Point, error) {
	pointSize := 8 * 2
	if dimz {
		pointSize += 8
	}
	if dimm {
		pointSize += 8
	}
	n, err := readCount(c, pointSize)
	if err != nil {
		return nil, err
	}
	vertices := make([]*Point, n)
	for i := range vertices {
		p := &Point{}
		p.dimz, p.dimm = dimz, dimm
		if err := readPointCoords(c, dimz, dimm, p); err != nil {
			return nil, err
		}
		vertices[i] = p
	}
	return vertices, nil
}

func readPolygonBody(c *cursor, dimz, dimm bool) ([]*LineString, error) {
	n, err := readCount(c, 4)
	if err != nil {
		return nil, err
	}
	rings := make([]*LineString, n)
	for i := range rings {
		vertices, err := readLineStringBody(c, dimz, dimm)
		if err != nil {
			return nil, err
		}
		ls := &LineString{vertices: vertices}
		ls.dimz, ls.dimm = dimz, dimm
		rings[i] = ls
	}
	return rings, nil
}

// readMultiBody decodes the members of a multi geometry or collection.
// Every member is a full geometry record with its own endian byte and
// type word. A member must not carry the SRID flag, its Z and M flags
// must equal the container's, and its class must be admissible.
func readMultiBody(c *cursor, container, member GeomType, dimz, dimm bool) ([]Geometry, error) {
	n, err := readCount(c, 5)
	if err != nil {
		return nil, err
	}
	geoms := make([]Geometry, n)
	for i := range geoms {
		g, err := readMember(c, container, member, dimz, dimm)
		if err != nil {
			return nil, err
		}
		geoms[i] = g
	}
	return geoms, nil
}

func readMember(c *cursor, container, member GeomType, dimz, dimm bool) (Geometry, error) {
	// A member declares its own endianness; the container's is
	// restored afterwards for any subsequent sibling counts.
	outer := c.order
	defer func() { c.order = outer }()
	if err := c.readOrder(); err != nil {
		return nil, err
	}
	wordOffset := c.offset()
	word, err := c.readUint32()
	if err != nil {
		return nil, err
	}
	t, mdimz, mdimm, hasSrid, err := decodeTypeWord(word, wordOffset)
	if err != nil {
		return nil, err
	}
	if hasSrid {
		return nil, wkbErr(wordOffset, "SRID flag on a geometry nested in a %s", container)
	}
	if mdimz != dimz || mdimm != dimm {
		return nil, wkbErr(wordOffset, "dimensionality of nested %s does not match its %s container", t, container)
	}
	if member != 0 && t != member {
		return nil, wkbErr(wordOffset, "unexpected %s in %s", t, container)
	}
	return readGeometryBody(c, t, dimz, dimm)
}

// readGeometryBody decodes the payload of a fully materialized
// geometry of a known class and dimensionality.
func readGeometryBody(c *cursor, t GeomType, dimz, dimm bool) (Geometry, error) {
	g := emptyVariant(t)
	g.hdr().dimz, g.hdr().dimm = dimz, dimm
	switch v := g.(type) {
	case *Point:
		if err := readPointCoords(c, dimz, dimm, v); err != nil {
			return nil, err
		}
	case *LineString:
		vertices, err := readLineStringBody(c, dimz, dimm)
		if err != nil {
			return nil, err
		}
		v.vertices = vertices
	case *Polygon:
		rings, err := readPolygonBody(c, dimz, dimm)
		if err != nil {
			return nil, err
		}
		v.rings = rings
	case *MultiPoint:
		if err := readMultiInto(c, &v.multiCore, dimz, dimm); err != nil {
			return nil, err
		}
	case *MultiLineString:
		if err := readMultiInto(c, &v.multiCore, dimz, dimm); err != nil {
			return nil, err
		}
	case *MultiPolygon:
		if err := readMultiInto(c, &v.multiCore, dimz, dimm); err != nil {
			return nil, err
		}
	case *GeometryCollection:
		if err := readMultiInto(c, &v.multiCore, dimz, dimm); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func readMultiInto(c *cursor, m *multiCore, dimz, dimm bool) error {
	geoms, err := readMultiBody(c, m.containerType, m.childType, dimz, dimm)
	if err != nil {
		return err
	}
	m.geoms = geoms
	return nil
}
