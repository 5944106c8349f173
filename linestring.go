// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

// A LineString is an ordered sequence of points. All vertices share
// the line's dimensionality; the SRID of individual vertices is not
// authoritative.
type LineString struct {
	header
	vertices []*Point
}

// NewLineString creates a LineString from a sequence of coordinate
// value lists, one per vertex.
func NewLineString(coords [][]float64, opts ...Option) (*LineString, error) {
	o := applyOptions(opts)
	vertices, err := pointsFromCoords(coords, o.dimz, o.dimm)
	if err != nil {
		return nil, err
	}
	ls, err := newLineString(vertices)
	if err != nil {
		return nil, err
	}
	ls.srid = o.srid
	return ls, nil
}

// pointsFromCoords builds the vertex list for a LineString or a linear
// ring.
func pointsFromCoords(coords [][]float64, dimz, dimm bool) ([]*Point, error) {
	vertices := make([]*Point, len(coords))
	for i, c := range coords {
		p, err := pointFromCoords(c, dimz, dimm)
		if err != nil {
			return nil, err
		}
		vertices[i] = p
	}
	return vertices, nil
}

// newLineString wraps an owned vertex list, deriving dimensionality
// from the vertices and requiring it to be uniform.
func newLineString(vertices []*Point) (*LineString, error) {
	ls := &LineString{vertices: vertices}
	dimz, dimm, err := uniformDims(pointsAsGeometries(vertices), TypeLineString)
	if err != nil {
		return nil, err
	}
	ls.dimz, ls.dimm = dimz, dimm
	return ls, nil
}

// uniformDims derives the dimension flags shared by the members of a
// composite geometry, failing with a DimensionalityError when they
// disagree.
func uniformDims(geoms []Geometry, container GeomType) (dimz, dimm bool, err error) {
	for i, g := range geoms {
		if i == 0 {
			dimz, dimm = g.DimZ(), g.DimM()
			continue
		}
		if g.DimZ() != dimz || g.DimM() != dimm {
			return false, false, dimensionalityErr("mixed dimensionality in %s", container)
		}
	}
	return dimz, dimm, nil
}

func pointsAsGeometries(points []*Point) []Geometry {
	geoms := make([]Geometry, len(points))
	for i, p := range points {
		geoms[i] = p
	}
	return geoms
}

// Type returns TypeLineString.
func (ls *LineString) Type() GeomType { return TypeLineString }

// Vertices returns the points that comprise the line. The returned
// points remain owned by the line.
func (ls *LineString) Vertices() ([]*Point, error) {
	if err := ls.materialize(); err != nil {
		return nil, err
	}
	return ls.vertices, nil
}

// NumVertices returns the vertex count.
func (ls *LineString) NumVertices() (int, error) {
	if err := ls.materialize(); err != nil {
		return 0, err
	}
	return len(ls.vertices), nil
}

// SetDimZ adds the Z dimension to the line and all its vertices,
// storing 0 where no Z coordinate was present. Removing a declared
// dimension returns a DimensionalityError.
func (ls *LineString) SetDimZ(dimz bool) error {
	if dimz == ls.dimz {
		return nil
	}
	if !dimz {
		return dimensionalityErr("cannot remove the Z dimension from a %s", ls.Type())
	}
	if err := ls.materialize(); err != nil {
		return err
	}
	for _, v := range ls.vertices {
		if err := v.SetDimZ(true); err != nil {
			return err
		}
	}
	ls.dimz = true
	ls.invalidate()
	return nil
}

// SetDimM adds the M dimension to the line and all its vertices,
// storing 0 where no M coordinate was present. Removing a declared
// dimension returns a DimensionalityError.
func (ls *LineString) SetDimM(dimm bool) error {
	if dimm == ls.dimm {
		return nil
	}
	if !dimm {
		return dimensionalityErr("cannot remove the M dimension from a %s", ls.Type())
	}
	if err := ls.materialize(); err != nil {
		return err
	}
	for _, v := range ls.vertices {
		if err := v.SetDimM(true); err != nil {
			return err
		}
	}
	ls.dimm = true
	ls.invalidate()
	return nil
}

func (ls *LineString) materialize() error {
	l := ls.lazy
	if l == nil {
		return nil
	}
	c := l.bodyCursor()
	vertices, err := readLineStringBody(c, ls.dimz, ls.dimm)
	if err != nil {
		return err
	}
	ls.vertices = vertices
	ls.lazy = nil
	ls.invalidate()
	return nil
}

func (ls *LineString) writeBody(w *wkbBuffer, dimz, dimm bool) error {
	if err := ls.materialize(); err != nil {
		return err
	}
	w.writeUint32(uint32(len(ls.vertices)))
	for _, v := range ls.vertices {
		if err := v.writeBody(w, dimz, dimm); err != nil {
			return err
		}
	}
	return nil
}

func (ls *LineString) geojsonValue(dimz bool) (map[string]interface{}, error) {
	if err := ls.materialize(); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"type":        ls.Type().String(),
		"coordinates": ls.geojsonPositions(dimz),
	}, nil
}

func (ls *LineString) geojsonPositions(dimz bool) []interface{} {
	positions := make([]interface{}, len(ls.vertices))
	for i, v := range ls.vertices {
		positions[i] = v.geojsonPosition(dimz)
	}
	return positions
}

func (ls *LineString) equalBody(other Geometry) bool {
	o, ok := other.(*LineString)
	if !ok {
		return false
	}
	if ls.materialize() != nil || o.materialize() != nil {
		return false
	}
	if len(ls.vertices) != len(o.vertices) {
		return false
	}
	for i, v := range ls.vertices {
		if !v.equalBody(o.vertices[i]) {
			return false
		}
	}
	return true
}

func (ls *LineString) boundsInto(b *Box) error {
	if err := ls.materialize(); err != nil {
		return err
	}
	for _, v := range ls.vertices {
		if err := v.boundsInto(b); err != nil {
			return err
		}
	}
	return nil
}

func (ls *LineString) cloneGeometry() Geometry {
	c := &LineString{}
	c.header = ls.cloneHeader()
	if ls.vertices != nil {
		c.vertices = make([]*Point, len(ls.vertices))
		for i, v := range ls.vertices {
			c.vertices[i] = v.cloneGeometry().(*Point)
		}
	}
	return c
}

// Bounds returns the minimum and maximum extents of the line.
func (ls *LineString) Bounds() (Box, error) { return bounds(ls) }

// PostGISType returns the PostGIS type signature of the line.
func (ls *LineString) PostGISType() string { return postgisType(ls) }

// Equal reports structural equality with another geometry.
func (ls *LineString) Equal(other Geometry) bool { return equalGeometry(ls, other) }

// Clone returns a deep copy of the line.
func (ls *LineString) Clone() Geometry { return ls.cloneGeometry() }

// WKB encodes the line as little-endian WKB without an SRID.
func (ls *LineString) WKB() ([]byte, error) { return toWKB(ls) }

// EWKB encodes the line as little-endian EWKB.
func (ls *LineString) EWKB() ([]byte, error) { return toEWKB(ls) }

// Hex returns the lowercase hex form of EWKB.
func (ls *LineString) Hex() (string, error) { return toHex(ls) }

// WKT renders the line as Well-Known Text.
func (ls *LineString) WKT() (string, error) { return wktString(ls, false) }

// EWKT renders the line as WKT with an "SRID=n;" prefix when an SRID
// is set.
func (ls *LineString) EWKT() (string, error) { return wktString(ls, true) }

// GeoJSON returns the line as an RFC 7946 object tree.
func (ls *LineString) GeoJSON() (map[string]interface{}, error) { return geojsonObject(ls) }

// GeoInterface implements GeoShaper. It returns nil if the line cannot
// be materialized.
func (ls *LineString) GeoInterface() map[string]interface{} {
	m, err := ls.GeoJSON()
	if err != nil {
		return nil
	}
	return m
}

// String returns the lowercase hex EWKB of the line.
func (ls *LineString) String() string { return hexString(ls) }
