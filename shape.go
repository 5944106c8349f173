// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

// A GeoShaper exposes a geometry as a GeoJSON-shaped tree: a map with
// a "type" key and either a "coordinates" or a "geometries" key. It is
// the Go spelling of the __geo_interface__ protocol shared by
// geospatial libraries, and every geometry in this package implements
// it.
type GeoShaper interface {
	// GeoInterface returns the GeoJSON-shaped tree of the shape, or
	// nil if the shape cannot produce one.
	GeoInterface() map[string]interface{}
}

// FromShape creates a geometry from any foreign shape implementing
// GeoShaper. The shape is only borrowed; the geometry owns no part of
// it afterwards. A shape whose GeoInterface returns nil fails with a
// DependencyError.
func FromShape(s GeoShaper, opts ...Option) (Geometry, error) {
	if s == nil {
		return nil, &DependencyError{Msg: "no foreign shape provided"}
	}
	tree := s.GeoInterface()
	if tree == nil {
		return nil, &DependencyError{Msg: "foreign shape does not provide a geo interface"}
	}
	return FromGeoJSON(tree, opts...)
}
