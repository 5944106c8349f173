// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

// A GeometryCollection is an ordered sequence of geometries of any
// class, including nested collections. Members share the container's
// dimensionality, and their SRIDs must be absent or agree with the
// container's.
type GeometryCollection struct {
	multiCore
}

// NewGeometryCollection creates a GeometryCollection from a list of
// geometries. The members are deep-copied; their dimensionality must
// be uniform and their SRIDs must be absent or agree.
func NewGeometryCollection(geoms []Geometry, opts ...Option) (*GeometryCollection, error) {
	o := applyOptions(opts)
	gc := &GeometryCollection{}
	gc.containerType = TypeGeometryCollection
	if err := gc.initMembers(geoms, o); err != nil {
		return nil, err
	}
	return gc, nil
}

func (gc *GeometryCollection) geojsonValue(dimz bool) (map[string]interface{}, error) {
	if err := gc.materialize(); err != nil {
		return nil, err
	}
	geometries := make([]interface{}, len(gc.geoms))
	for i, g := range gc.geoms {
		child, err := g.geojsonValue(dimz)
		if err != nil {
			return nil, err
		}
		geometries[i] = child
	}
	return map[string]interface{}{
		"type":       gc.containerType.String(),
		"geometries": geometries,
	}, nil
}

func (gc *GeometryCollection) equalBody(other Geometry) bool {
	o, ok := other.(*GeometryCollection)
	if !ok {
		return false
	}
	return gc.equalCore(&o.multiCore)
}

func (gc *GeometryCollection) cloneGeometry() Geometry {
	return &GeometryCollection{multiCore: gc.cloneCore()}
}

// Bounds returns the extent of all member geometries.
func (gc *GeometryCollection) Bounds() (Box, error) { return bounds(gc) }

// PostGISType returns the PostGIS type signature of the collection.
func (gc *GeometryCollection) PostGISType() string { return postgisType(gc) }

// Equal reports structural equality with another geometry.
func (gc *GeometryCollection) Equal(other Geometry) bool { return equalGeometry(gc, other) }

// Clone returns a deep copy of the collection.
func (gc *GeometryCollection) Clone() Geometry { return gc.cloneGeometry() }

// WKB encodes the collection as little-endian WKB without an SRID.
func (gc *GeometryCollection) WKB() ([]byte, error) { return toWKB(gc) }

// EWKB encodes the collection as little-endian EWKB.
func (gc *GeometryCollection) EWKB() ([]byte, error) { return toEWKB(gc) }

// Hex returns the lowercase hex form of EWKB.
func (gc *GeometryCollection) Hex() (string, error) { return toHex(gc) }

// WKT renders the collection as Well-Known Text.
func (gc *GeometryCollection) WKT() (string, error) { return wktString(gc, false) }

// EWKT renders the collection as WKT with an "SRID=n;" prefix when an
// SRID is set.
func (gc *GeometryCollection) EWKT() (string, error) { return wktString(gc, true) }

// GeoJSON returns the collection as an RFC 7946 object tree using the
// "geometries" member.
func (gc *GeometryCollection) GeoJSON() (map[string]interface{}, error) { return geojsonObject(gc) }

// GeoInterface implements GeoShaper. It returns nil if the collection
// cannot be materialized.
func (gc *GeometryCollection) GeoInterface() map[string]interface{} {
	m, err := gc.GeoJSON()
	if err != nil {
		return nil
	}
	return m
}

// String returns the lowercase hex EWKB of the collection.
func (gc *GeometryCollection) String() string { return hexString(gc) }
