// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

// multiCore carries the state and behavior shared by the three typed
// multi geometries and by GeometryCollection: the member list, the
// container and permitted member classes, and the member operators.
//
// Members are exclusively owned: insertion deep-copies, and the SRID
// and dimensionality invariants are enforced against direct members
// only. A grandchild is never re-validated.
type multiCore struct {
	header
	containerType GeomType
	// childType restricts the member class; 0 admits any geometry.
	childType GeomType
	geoms     []Geometry
}

// initMembers deep-copies the member list into the container and
// derives and validates dimensionality and SRID.
//
// The permitted member SRID states are: no SRID, or an SRID equal to
// the container's. A member SRID met while the container has none is
// adopted. Any other combination is an SridError.
func (m *multiCore) initMembers(geoms []Geometry, o options) error {
	if len(geoms) == 0 {
		return collectionErr("a %s requires at least one member", m.containerType)
	}
	owned := make([]Geometry, len(geoms))
	for i, g := range geoms {
		if m.childType != 0 && g.Type() != m.childType {
			return collectionErr("cannot place a %s in a %s", g.Type(), m.containerType)
		}
		owned[i] = g.cloneGeometry()
	}
	dimz, dimm, err := uniformDims(owned, m.containerType)
	if err != nil {
		return err
	}
	m.dimz, m.dimm = dimz, dimm
	m.srid = o.srid
	for _, g := range owned {
		if s := g.SRID(); s != 0 {
			if m.srid == 0 {
				m.srid = s
			} else if s != m.srid {
				return sridErr("mixed SRIDs in %s", m.containerType)
			}
		}
	}
	m.geoms = owned
	return nil
}

// Type returns the container geometry class.
func (m *multiCore) Type() GeomType { return m.containerType }

// Geometries returns the member geometries. The returned members
// remain owned by the container.
func (m *multiCore) Geometries() ([]Geometry, error) {
	if err := m.materialize(); err != nil {
		return nil, err
	}
	return m.geoms, nil
}

// NumGeometries returns the member count.
func (m *multiCore) NumGeometries() (int, error) {
	if err := m.materialize(); err != nil {
		return 0, err
	}
	return len(m.geoms), nil
}

// GeometryN returns the member at index i. The member remains owned by
// the container.
func (m *multiCore) GeometryN(i int) (Geometry, error) {
	if err := m.materialize(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(m.geoms) {
		return nil, collectionErr("index %d out of range in %s of %d member(s)", i, m.containerType, len(m.geoms))
	}
	return m.geoms[i], nil
}

// Append validates and deep-copies a geometry into the container. The
// member class must be admissible, its dimensionality must equal the
// container's, and its SRID must be absent or equal to the
// container's; a member SRID met while the container has none is
// adopted. Appending invalidates any retained source bytes.
func (m *multiCore) Append(g Geometry) error {
	if m.childType != 0 && g.Type() != m.childType {
		return collectionErr("cannot place a %s in a %s", g.Type(), m.containerType)
	}
	if err := m.materialize(); err != nil {
		return err
	}
	if g.DimZ() != m.dimz || g.DimM() != m.dimm {
		return dimensionalityErr("mixed dimensionality in %s", m.containerType)
	}
	if s := g.SRID(); s != 0 {
		if m.srid == 0 {
			m.srid = s
		} else if s != m.srid {
			return sridErr("mixed SRIDs in %s", m.containerType)
		}
	}
	m.geoms = append(m.geoms, g.cloneGeometry())
	m.invalidate()
	return nil
}

// Pop removes and returns the last member. Popping invalidates any
// retained source bytes.
func (m *multiCore) Pop() (Geometry, error) {
	if err := m.materialize(); err != nil {
		return nil, err
	}
	return m.PopAt(len(m.geoms) - 1)
}

// PopAt removes and returns the member at index i. Popping invalidates
// any retained source bytes.
func (m *multiCore) PopAt(i int) (Geometry, error) {
	if err := m.materialize(); err != nil {
		return nil, err
	}
	if len(m.geoms) == 0 {
		return nil, collectionErr("pop from an empty %s", m.containerType)
	}
	if i < 0 || i >= len(m.geoms) {
		return nil, collectionErr("index %d out of range in %s of %d member(s)", i, m.containerType, len(m.geoms))
	}
	g := m.geoms[i]
	m.geoms = append(m.geoms[:i], m.geoms[i+1:]...)
	m.invalidate()
	return g, nil
}

// SetDimZ adds the Z dimension to the container and every member,
// storing 0 where no Z coordinate was present. Removing a declared
// dimension returns a DimensionalityError.
func (m *multiCore) SetDimZ(dimz bool) error {
	if dimz == m.dimz {
		return nil
	}
	if !dimz {
		return dimensionalityErr("cannot remove the Z dimension from a %s", m.containerType)
	}
	if err := m.materialize(); err != nil {
		return err
	}
	for _, g := range m.geoms {
		if err := g.SetDimZ(true); err != nil {
			return err
		}
	}
	m.dimz = true
	m.invalidate()
	return nil
}

// SetDimM adds the M dimension to the container and every member,
// storing 0 where no M coordinate was present. Removing a declared
// dimension returns a DimensionalityError.
func (m *multiCore) SetDimM(dimm bool) error {
	if dimm == m.dimm {
		return nil
	}
	if !dimm {
		return dimensionalityErr("cannot remove the M dimension from a %s", m.containerType)
	}
	if err := m.materialize(); err != nil {
		return err
	}
	for _, g := range m.geoms {
		if err := g.SetDimM(true); err != nil {
			return err
		}
	}
	m.dimm = true
	m.invalidate()
	return nil
}

func (m *multiCore) materialize() error {
	l := m.lazy
	if l == nil {
		return nil
	}
	c := l.bodyCursor()
	geoms, err := readMultiBody(c, m.containerType, m.childType, m.dimz, m.dimm)
	if err != nil {
		return err
	}
	m.geoms = geoms
	m.lazy = nil
	m.invalidate()
	return nil
}

func (m *multiCore) writeBody(w *wkbBuffer, dimz, dimm bool) error {
	if err := m.materialize(); err != nil {
		return err
	}
	w.writeUint32(uint32(len(m.geoms)))
	for _, g := range m.geoms {
		// Each member is a self-sufficient record with its own endian
		// byte and type word, but never an SRID.
		w.writeOrder()
		w.writeUint32(encodeTypeWord(g.Type(), dimz, dimm, false))
		if err := g.writeBody(w, dimz, dimm); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiCore) geojsonValue(dimz bool) (map[string]interface{}, error) {
	if err := m.materialize(); err != nil {
		return nil, err
	}
	coordinates := make([]interface{}, len(m.geoms))
	for i, g := range m.geoms {
		if err := g.materialize(); err != nil {
			return nil, err
		}
		switch leaf := g.(type) {
		case *Point:
			coordinates[i] = leaf.geojsonPosition(dimz)
		case *LineString:
			coordinates[i] = leaf.geojsonPositions(dimz)
		case *Polygon:
			coordinates[i] = leaf.geojsonPositions(dimz)
		}
	}
	return map[string]interface{}{
		"type":        m.containerType.String(),
		"coordinates": coordinates,
	}, nil
}

func (m *multiCore) equalCore(o *multiCore) bool {
	if m.materialize() != nil || o.materialize() != nil {
		return false
	}
	if len(m.geoms) != len(o.geoms) {
		return false
	}
	for i, g := range m.geoms {
		if !equalShape(g, o.geoms[i]) {
			return false
		}
	}
	return true
}

func (m *multiCore) boundsInto(b *Box) error {
	if err := m.materialize(); err != nil {
		return err
	}
	for _, g := range m.geoms {
		if err := g.boundsInto(b); err != nil {
			return err
		}
	}
	return nil
}

// cloneCore copies the container state and deep-copies the members.
func (m *multiCore) cloneCore() multiCore {
	c := multiCore{
		containerType: m.containerType,
		childType:     m.childType,
	}
	c.header = m.cloneHeader()
	if m.geoms != nil {
		c.geoms = make([]Geometry, len(m.geoms))
		for i, g := range m.geoms {
			c.geoms[i] = g.cloneGeometry()
		}
	}
	return c
}

// A MultiPoint is an ordered sequence of points sharing the
// container's dimensionality and SRID.
type MultiPoint struct {
	multiCore
}

// NewMultiPoint creates a MultiPoint from a list of points. The points
// are deep-copied; their dimensionality must be uniform and their
// SRIDs must be absent or agree.
func NewMultiPoint(points []*Point, opts ...Option) (*MultiPoint, error) {
	o := applyOptions(opts)
	mp := &MultiPoint{}
	mp.containerType = TypeMultiPoint
	mp.childType = TypePoint
	if err := mp.initMembers(pointsAsGeometries(points), o); err != nil {
		return nil, err
	}
	return mp, nil
}

// Points returns the member points. The returned points remain owned
// by the container.
func (mp *MultiPoint) Points() ([]*Point, error) {
	geoms, err := mp.Geometries()
	if err != nil {
		return nil, err
	}
	points := make([]*Point, len(geoms))
	for i, g := range geoms {
		points[i] = g.(*Point)
	}
	return points, nil
}

func (mp *MultiPoint) equalBody(other Geometry) bool {
	o, ok := other.(*MultiPoint)
	if !ok {
		return false
	}
	return mp.equalCore(&o.multiCore)
}

func (mp *MultiPoint) cloneGeometry() Geometry {
	return &MultiPoint{multiCore: mp.cloneCore()}
}

// Bounds returns the extent of all member points.
func (mp *MultiPoint) Bounds() (Box, error) { return bounds(mp) }

// PostGISType returns the PostGIS type signature of the container.
func (mp *MultiPoint) PostGISType() string { return postgisType(mp) }

// Equal reports structural equality with another geometry.
func (mp *MultiPoint) Equal(other Geometry) bool { return equalGeometry(mp, other) }

// Clone returns a deep copy of the container.
func (mp *MultiPoint) Clone() Geometry { return mp.cloneGeometry() }

// WKB encodes the container as little-endian WKB without an SRID.
func (mp *MultiPoint) WKB() ([]byte, error) { return toWKB(mp) }

// EWKB encodes the container as little-endian EWKB.
func (mp *MultiPoint) EWKB() ([]byte, error) { return toEWKB(mp) }

// Hex returns the lowercase hex form of EWKB.
func (mp *MultiPoint) Hex() (string, error) { return toHex(mp) }

// WKT renders the container as Well-Known Text.
func (mp *MultiPoint) WKT() (string, error) { return wktString(mp, false) }

// EWKT renders the container as WKT with an "SRID=n;" prefix when an
// SRID is set.
func (mp *MultiPoint) EWKT() (string, error) { return wktString(mp, true) }

// GeoJSON returns the container as an RFC 7946 object tree.
func (mp *MultiPoint) GeoJSON() (map[string]interface{}, error) { return geojsonObject(mp) }

// GeoInterface implements GeoShaper. It returns nil if the container
// cannot be materialized.
func (mp *MultiPoint) GeoInterface() map[string]interface{} {
	m, err := mp.GeoJSON()
	if err != nil {
		return nil
	}
	return m
}

// String returns the lowercase hex EWKB of the container.
func (mp *MultiPoint) String() string { return hexString(mp) }

// A MultiLineString is an ordered sequence of lines sharing the
// container's dimensionality and SRID.
type MultiLineString struct {
	multiCore
}

// NewMultiLineString creates a MultiLineString from a list of lines.
// The lines are deep-copied; their dimensionality must be uniform and
// their SRIDs must be absent or agree.
func NewMultiLineString(lines []*LineString, opts ...Option) (*MultiLineString, error) {
	o := applyOptions(opts)
	ml := &MultiLineString{}
	ml.containerType = TypeMultiLineString
	ml.childType = TypeLineString
	geoms := make([]Geometry, len(lines))
	for i, ls := range lines {
		geoms[i] = ls
	}
	if err := ml.initMembers(geoms, o); err != nil {
		return nil, err
	}
	return ml, nil
}

// LineStrings returns the member lines. The returned lines remain
// owned by the container.
func (ml *MultiLineString) LineStrings() ([]*LineString, error) {
	geoms, err := ml.Geometries()
	if err != nil {
		return nil, err
	}
	lines := make([]*LineString, len(geoms))
	for i, g := range geoms {
		lines[i] = g.(*LineString)
	}
	return lines, nil
}

func (ml *MultiLineString) equalBody(other Geometry) bool {
	o, ok := other.(*MultiLineString)
	if !ok {
		return false
	}
	return ml.equalCore(&o.multiCore)
}

func (ml *MultiLineString) cloneGeometry() Geometry {
	return &MultiLineString{multiCore: ml.cloneCore()}
}

// Bounds returns the extent of all member lines.
func (ml *MultiLineString) Bounds() (Box, error) { return bounds(ml) }

// PostGISType returns the PostGIS type signature of the container.
func (ml *MultiLineString) PostGISType() string { return postgisType(ml) }

// Equal reports structural equality with another geometry.
func (ml *MultiLineString) Equal(other Geometry) bool { return equalGeometry(ml, other) }

// Clone returns a deep copy of the container.
func (ml *MultiLineString) Clone() Geometry { return ml.cloneGeometry() }

// WKB encodes the container as little-endian WKB without an SRID.
func (ml *MultiLineString) WKB() ([]byte, error) { return toWKB(ml) }

// EWKB encodes the container as little-endian EWKB.
func (ml *MultiLineString) EWKB() ([]byte, error) { return toEWKB(ml) }

// Hex returns the lowercase hex form of EWKB.
func (ml *MultiLineString) Hex() (string, error) { return toHex(ml) }

// WKT renders the container as Well-Known Text.
func (ml *MultiLineString) WKT() (string, error) { return wktString(ml, false) }

// EWKT renders the container as WKT with an "SRID=n;" prefix when an
// SRID is set.
func (ml *MultiLineString) EWKT() (string, error) { return wktString(ml, true) }

// GeoJSON returns the container as an RFC 7946 object tree.
func (ml *MultiLineString) GeoJSON() (map[string]interface{}, error) { return geojsonObject(ml) }

// GeoInterface implements GeoShaper. It returns nil if the container
// cannot be materialized.
func (ml *MultiLineString) GeoInterface() map[string]interface{} {
	m, err := ml.GeoJSON()
	if err != nil {
		return nil
	}
	return m
}

// String returns the lowercase hex EWKB of the container.
func (ml *MultiLineString) String() string { return hexString(ml) }

// A MultiPolygon is an ordered sequence of polygons sharing the
// container's dimensionality and SRID.
type MultiPolygon struct {
	multiCore
}

// NewMultiPolygon creates a MultiPolygon from a list of polygons. The
// polygons are deep-copied; their dimensionality must be uniform and
// their SRIDs must be absent or agree.
func NewMultiPolygon(polygons []*Polygon, opts ...Option) (*MultiPolygon, error) {
	o := applyOptions(opts)
	mp := &MultiPolygon{}
	mp.containerType = TypeMultiPolygon
	mp.childType = TypePolygon
	geoms := make([]Geometry, len(polygons))
	for i, p := range polygons {
		geoms[i] = p
	}
	if err := mp.initMembers(geoms, o); err != nil {
		return nil, err
	}
	return mp, nil
}

// Polygons returns the member polygons. The returned polygons remain
// owned by the container.
func (mp *MultiPolygon) Polygons() ([]*Polygon, error) {
	geoms, err := mp.Geometries()
	if err != nil {
		return nil, err
	}
	polygons := make([]*Polygon, len(geoms))
	for i, g := range geoms {
		polygons[i] = g.(*Polygon)
	}
	return polygons, nil
}

func (mp *MultiPolygon) equalBody(other Geometry) bool {
	o, ok := other.(*MultiPolygon)
	if !ok {
		return false
	}
	return mp.equalCore(&o.multiCore)
}

func (mp *MultiPolygon) cloneGeometry() Geometry {
	return &MultiPolygon{multiCore: mp.cloneCore()}
}

// Bounds returns the extent of all member polygons.
func (mp *MultiPolygon) Bounds() (Box, error) { return bounds(mp) }

// PostGISType returns the PostGIS type signature of the container.
func (mp *MultiPolygon) PostGISType() string { return postgisType(mp) }

// Equal reports structural equality with another geometry.
func (mp *MultiPolygon) Equal(other Geometry) bool { return equalGeometry(mp, other) }

// Clone returns a deep copy of the container.
func (mp *MultiPolygon) Clone() Geometry { return mp.cloneGeometry() }

// WKB encodes the container as little-endian WKB without an SRID.
func (mp *MultiPolygon) WKB() ([]byte, error) { return toWKB(mp) }

// EWKB encodes the container as little-endian EWKB.
func (mp *MultiPolygon) EWKB() ([]byte, error) { return toEWKB(mp) }

// Hex returns the lowercase hex form of EWKB.
func (mp *MultiPolygon) Hex() (string, error) { return toHex(mp) }

// WKT renders the container as Well-Known Text.
func (mp *MultiPolygon) WKT() (string, error) { return wktString(mp, false) }

// EWKT renders the container as WKT with an "SRID=n;" prefix when an
// SRID is set.
func (mp *MultiPolygon) EWKT() (string, error) { return wktString(mp, true) }

// GeoJSON returns the container as an RFC 7946 object tree.
func (mp *MultiPolygon) GeoJSON() (map[string]interface{}, error) { return geojsonObject(mp) }

// GeoInterface implements GeoShaper. It returns nil if the container
// cannot be materialized.
func (mp *MultiPolygon) GeoInterface() map[string]interface{} {
	m, err := mp.GeoJSON()
	if err != nil {
		return nil
	}
	return m
}

// String returns the lowercase hex EWKB of the container.
func (mp *MultiPolygon) String() string { return hexString(mp) }
