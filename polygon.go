// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

// A Polygon is an ordered sequence of linear rings. The first ring is
// the exterior boundary by convention; ring closure and orientation
// are not validated.
type Polygon struct {
	header
	rings []*LineString
}

// NewPolygon creates a Polygon from ring coordinate lists: one list of
// coordinate value lists per ring, exterior ring first.
func NewPolygon(rings [][][]float64, opts ...Option) (*Polygon, error) {
	o := applyOptions(opts)
	rs := make([]*LineString, len(rings))
	for i, ring := range rings {
		vertices, err := pointsFromCoords(ring, o.dimz, o.dimm)
		if err != nil {
			return nil, err
		}
		ls, err := newLineString(vertices)
		if err != nil {
			return nil, err
		}
		rs[i] = ls
	}
	p, err := newPolygon(rs)
	if err != nil {
		return nil, err
	}
	p.srid = o.srid
	return p, nil
}

// newPolygon wraps an owned ring list, deriving dimensionality from
// the rings and requiring it to be uniform.
func newPolygon(rings []*LineString) (*Polygon, error) {
	p := &Polygon{rings: rings}
	geoms := make([]Geometry, len(rings))
	for i, r := range rings {
		geoms[i] = r
	}
	dimz, dimm, err := uniformDims(geoms, TypePolygon)
	if err != nil {
		return nil, err
	}
	p.dimz, p.dimm = dimz, dimm
	return p, nil
}

// Type returns TypePolygon.
func (p *Polygon) Type() GeomType { return TypePolygon }

// Rings returns the linear rings that comprise the polygon. The
// returned rings remain owned by the polygon.
func (p *Polygon) Rings() ([]*LineString, error) {
	if err := p.materialize(); err != nil {
		return nil, err
	}
	return p.rings, nil
}

// Exterior returns the first ring, the exterior boundary by
// convention.
func (p *Polygon) Exterior() (*LineString, error) {
	rings, err := p.Rings()
	if err != nil {
		return nil, err
	}
	if len(rings) == 0 {
		return nil, coordinateErr("polygon has no rings")
	}
	return rings[0], nil
}

// Interior returns the rings after the first, the interior boundaries
// by convention.
func (p *Polygon) Interior() ([]*LineString, error) {
	rings, err := p.Rings()
	if err != nil {
		return nil, err
	}
	if len(rings) == 0 {
		return nil, coordinateErr("polygon has no rings")
	}
	return rings[1:], nil
}

// SetDimZ adds the Z dimension to the polygon and all its rings,
// storing 0 where no Z coordinate was present. Removing a declared
// dimension returns a DimensionalityError.
func (p *Polygon) SetDimZ(dimz bool) error {
	if dimz == p.dimz {
		return nil
	}
	if !dimz {
		return dimensionalityErr("cannot remove the Z dimension from a %s", p.Type())
	}
	if err := p.materialize(); err != nil {
		return err
	}
	for _, r := range p.rings {
		if err := r.SetDimZ(true); err != nil {
			return err
		}
	}
	p.dimz = true
	p.invalidate()
	return nil
}

// SetDimM adds the M dimension to the polygon and all its rings,
// storing 0 where no M coordinate was present. Removing a declared
// dimension returns a DimensionalityError.
func (p *Polygon) SetDimM(dimm bool) error {
	if dimm == p.dimm {
		return nil
	}
	if !dimm {
		return dimensionalityErr("cannot remove the M dimension from a %s", p.Type())
	}
	if err := p.materialize(); err != nil {
		return err
	}
	for _, r := range p.rings {
		if err := r.SetDimM(true); err != nil {
			return err
		}
	}
	p.dimm = true
	p.invalidate()
	return nil
}

func (p *Polygon) materialize() error {
	l := p.lazy
	if l == nil {
		return nil
	}
	c := l.bodyCursor()
	rings, err := readPolygonBody(c, p.dimz, p.dimm)
	if err != nil {
		return err
	}
	p.rings = rings
	p.lazy = nil
	p.invalidate()
	return nil
}

func (p *Polygon) writeBody(w *wkbBuffer, dimz, dimm bool) error {
	if err := p.materialize(); err != nil {
		return err
	}
	w.writeUint32(uint32(len(p.rings)))
	for _, r := range p.rings {
		if err := r.writeBody(w, dimz, dimm); err != nil {
			return err
		}
	}
	return nil
}

func (p *Polygon) geojsonValue(dimz bool) (map[string]interface{}, error) {
	if err := p.materialize(); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"type":        p.Type().String(),
		"coordinates": p.geojsonPositions(dimz),
	}, nil
}

func (p *Polygon) geojsonPositions(dimz bool) []interface{} {
	rings := make([]interface{}, len(p.rings))
	for i, r := range p.rings {
		rings[i] = r.geojsonPositions(dimz)
	}
	return rings
}

func (p *Polygon) equalBody(other Geometry) bool {
	o, ok := other.(*Polygon)
	if !ok {
		return false
	}
	if p.materialize() != nil || o.materialize() != nil {
		return false
	}
	if len(p.rings) != len(o.rings) {
		return false
	}
	for i, r := range p.rings {
		if !r.equalBody(o.rings[i]) {
			return false
		}
	}
	return true
}

func (p *Polygon) boundsInto(b *Box) error {
	if err := p.materialize(); err != nil {
		return err
	}
	// The exterior ring determines the extent.
	if len(p.rings) == 0 {
		return nil
	}
	return p.rings[0].boundsInto(b)
}

func (p *Polygon) cloneGeometry() Geometry {
	c := &Polygon{}
	c.header = p.cloneHeader()
	if p.rings != nil {
		c.rings = make([]*LineString, len(p.rings))
		for i, r := range p.rings {
			c.rings[i] = r.cloneGeometry().(*LineString)
		}
	}
	return c
}

// Bounds returns the extent of the exterior ring.
func (p *Polygon) Bounds() (Box, error) { return bounds(p) }

// PostGISType returns the PostGIS type signature of the polygon.
func (p *Polygon) PostGISType() string { return postgisType(p) }

// Equal reports structural equality with another geometry.
func (p *Polygon) Equal(other Geometry) bool { return equalGeometry(p, other) }

// Clone returns a deep copy of the polygon.
func (p *Polygon) Clone() Geometry { return p.cloneGeometry() }

// WKB encodes the polygon as little-endian WKB without an SRID.
func (p *Polygon) WKB() ([]byte, error) { return toWKB(p) }

// EWKB encodes the polygon as little-endian EWKB.
func (p *Polygon) EWKB() ([]byte, error) { return toEWKB(p) }

// Hex returns the lowercase hex form of EWKB.
func (p *Polygon) Hex() (string, error) { return toHex(p) }

// WKT renders the polygon as Well-Known Text.
func (p *Polygon) WKT() (string, error) { return wktString(p, false) }

// EWKT renders the polygon as WKT with an "SRID=n;" prefix when an
// SRID is set.
func (p *Polygon) EWKT() (string, error) { return wktString(p, true) }

// GeoJSON returns the polygon as an RFC 7946 object tree.
func (p *Polygon) GeoJSON() (map[string]interface{}, error) { return geojsonObject(p) }

// GeoInterface implements GeoShaper. It returns nil if the polygon
// cannot be materialized.
func (p *Polygon) GeoInterface() map[string]interface{} {
	m, err := p.GeoJSON()
	if err != nil {
		return nil
	}
	return m
}

// String returns the lowercase hex EWKB of the polygon.
func (p *Polygon) String() string { return hexString(p) }
