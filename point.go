// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

// A Point is a single position with X and Y coordinates and optional Z
// and M coordinates.
//
// The WithZ and WithM options direct how the third value of a
// three-value coordinate is interpreted; without either, it is taken
// as Z. A declared dimension that is absent from the input coordinates
// is stored as 0.
type Point struct {
	header
	x, y, z, m float64
}

// NewPoint creates a Point from two to four coordinate values.
func NewPoint(coords []float64, opts ...Option) (*Point, error) {
	o := applyOptions(opts)
	p, err := pointFromCoords(coords, o.dimz, o.dimm)
	if err != nil {
		return nil, err
	}
	p.srid = o.srid
	return p, nil
}

// pointFromCoords builds a Point from raw coordinate values, deciding
// dimensionality from the value count and the dimz/dimm directives the
// way the coordinate constructors document.
func pointFromCoords(coords []float64, dimz, dimm bool) (*Point, error) {
	switch n := len(coords); {
	case n > 4:
		return nil, dimensionalityErr("maximum dimensionality supported for coordinates is 4, got %d", n)
	case n < 2:
		return nil, coordinateErr("a point requires at least an X and a Y coordinate, got %d value(s)", n)
	}
	p := &Point{x: coords[0], y: coords[1]}
	switch len(coords) {
	case 2:
		p.dimz = dimz
		p.dimm = dimm
	case 3:
		// The third value is Z unless M alone was requested.
		switch {
		case dimz && dimm:
			p.z = coords[2]
			p.dimz, p.dimm = true, true
		case dimm:
			p.m = coords[2]
			p.dimm = true
		default:
			p.z = coords[2]
			p.dimz = true
			p.dimm = dimm
		}
	case 4:
		p.z = coords[2]
		p.m = coords[3]
		p.dimz, p.dimm = true, true
	}
	return p, nil
}

// Type returns TypePoint.
func (p *Point) Type() GeomType { return TypePoint }

// X returns the X coordinate.
func (p *Point) X() (float64, error) {
	if err := p.materialize(); err != nil {
		return 0, err
	}
	return p.x, nil
}

// SetX replaces the X coordinate, invalidating any retained source
// bytes.
func (p *Point) SetX(v float64) error {
	if err := p.materialize(); err != nil {
		return err
	}
	p.x = v
	p.invalidate()
	return nil
}

// Y returns the Y coordinate.
func (p *Point) Y() (float64, error) {
	if err := p.materialize(); err != nil {
		return 0, err
	}
	return p.y, nil
}

// SetY replaces the Y coordinate, invalidating any retained source
// bytes.
func (p *Point) SetY(v float64) error {
	if err := p.materialize(); err != nil {
		return err
	}
	p.y = v
	p.invalidate()
	return nil
}

// Z returns the Z coordinate, or 0 when the point has no Z dimension.
// Querying an absent dimension does not materialize the point.
func (p *Point) Z() (float64, error) {
	if !p.dimz {
		return 0, nil
	}
	if err := p.materialize(); err != nil {
		return 0, err
	}
	return p.z, nil
}

// SetZ replaces the Z coordinate, adding the Z dimension if the point
// lacked one.
func (p *Point) SetZ(v float64) error {
	if err := p.materialize(); err != nil {
		return err
	}
	p.z = v
	p.dimz = true
	p.invalidate()
	return nil
}

// M returns the M coordinate, or 0 when the point has no M dimension.
// Querying an absent dimension does not materialize the point.
func (p *Point) M() (float64, error) {
	if !p.dimm {
		return 0, nil
	}
	if err := p.materialize(); err != nil {
		return 0, err
	}
	return p.m, nil
}

// SetM replaces the M coordinate, adding the M dimension if the point
// lacked one.
func (p *Point) SetM(v float64) error {
	if err := p.materialize(); err != nil {
		return err
	}
	p.m = v
	p.dimm = true
	p.invalidate()
	return nil
}

// SetDimZ adds the Z dimension, storing 0 if no Z coordinate was
// present. Removing a declared dimension returns a
// DimensionalityError.
func (p *Point) SetDimZ(dimz bool) error {
	if dimz == p.dimz {
		return nil
	}
	if !dimz {
		return dimensionalityErr("cannot remove the Z dimension from a %s", p.Type())
	}
	if err := p.materialize(); err != nil {
		return err
	}
	p.dimz = true
	p.invalidate()
	return nil
}

// SetDimM adds the M dimension, storing 0 if no M coordinate was
// present. Removing a declared dimension returns a
// DimensionalityError.
func (p *Point) SetDimM(dimm bool) error {
	if dimm == p.dimm {
		return nil
	}
	if !dimm {
		return dimensionalityErr("cannot remove the M dimension from a %s", p.Type())
	}
	if err := p.materialize(); err != nil {
		return err
	}
	p.dimm = true
	p.invalidate()
	return nil
}

func (p *Point) materialize() error {
	l := p.lazy
	if l == nil {
		return nil
	}
	c := l.bodyCursor()
	if err := readPointCoords(c, p.dimz, p.dimm, p); err != nil {
		return err
	}
	p.lazy = nil
	p.invalidate()
	return nil
}

func (p *Point) writeBody(w *wkbBuffer, dimz, dimm bool) error {
	if err := p.materialize(); err != nil {
		return err
	}
	w.writeFloat64(p.x)
	w.writeFloat64(p.y)
	if dimz {
		w.writeFloat64(p.z)
	}
	if dimm {
		w.writeFloat64(p.m)
	}
	return nil
}

func (p *Point) geojsonValue(dimz bool) (map[string]interface{}, error) {
	if err := p.materialize(); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"type":        p.Type().String(),
		"coordinates": p.geojsonPosition(dimz),
	}, nil
}

// geojsonPosition returns the point as a GeoJSON position array. M is
// always dropped.
func (p *Point) geojsonPosition(dimz bool) []interface{} {
	if dimz {
		return []interface{}{p.x, p.y, p.z}
	}
	return []interface{}{p.x, p.y}
}

func (p *Point) equalBody(other Geometry) bool {
	o, ok := other.(*Point)
	if !ok {
		return false
	}
	if p.materialize() != nil || o.materialize() != nil {
		return false
	}
	if p.x != o.x || p.y != o.y {
		return false
	}
	if p.dimz && p.z != o.z {
		return false
	}
	if p.dimm && p.m != o.m {
		return false
	}
	return true
}

func (p *Point) boundsInto(b *Box) error {
	if err := p.materialize(); err != nil {
		return err
	}
	b.ExpandXY(p.x, p.y)
	return nil
}

func (p *Point) cloneGeometry() Geometry {
	c := &Point{x: p.x, y: p.y, z: p.z, m: p.m}
	c.header = p.cloneHeader()
	return c
}

// Bounds returns the degenerate box covering the point.
func (p *Point) Bounds() (Box, error) { return bounds(p) }

// PostGISType returns the PostGIS type signature, for example
// "geometry(PointZ,4326)".
func (p *Point) PostGISType() string { return postgisType(p) }

// Equal reports structural equality with another geometry.
func (p *Point) Equal(other Geometry) bool { return equalGeometry(p, other) }

// Clone returns a deep copy of the point.
func (p *Point) Clone() Geometry { return p.cloneGeometry() }

// WKB encodes the point as little-endian WKB without an SRID.
func (p *Point) WKB() ([]byte, error) { return toWKB(p) }

// EWKB encodes the point as little-endian EWKB.
func (p *Point) EWKB() ([]byte, error) { return toEWKB(p) }

// Hex returns the lowercase hex form of EWKB.
func (p *Point) Hex() (string, error) { return toHex(p) }

// WKT renders the point as Well-Known Text.
func (p *Point) WKT() (string, error) { return wktString(p, false) }

// EWKT renders the point as WKT with an "SRID=n;" prefix when an SRID
// is set.
func (p *Point) EWKT() (string, error) { return wktString(p, true) }

// GeoJSON returns the point as an RFC 7946 object tree.
func (p *Point) GeoJSON() (map[string]interface{}, error) { return geojsonObject(p) }

// GeoInterface implements GeoShaper. It returns nil if the point
// cannot be materialized.
func (p *Point) GeoInterface() map[string]interface{} {
	m, err := p.GeoJSON()
	if err != nil {
		return nil
	}
	return m
}

// String returns the lowercase hex EWKB of the point.
func (p *Point) String() string { return hexString(p) }
