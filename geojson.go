// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

import (
	"encoding/json"
	"strings"
)

// FromGeoJSON creates a geometry from an RFC 7946 object tree of the
// kind produced by decoding GeoJSON text into nested maps and slices.
//
// A GeoJSON document without a crs member implies WGS-84, but the
// geometry is created without an SRID unless WithSRID overrides it
// explicitly. Positions must have two or three values; the third is Z.
// M does not exist in GeoJSON. Mixed arities within one geometry are
// a GeojsonError.
func FromGeoJSON(tree map[string]interface{}, opts ...Option) (Geometry, error) {
	o := applyOptions(opts)
	g, err := geometryFromGeojson(tree)
	if err != nil {
		return nil, err
	}
	if o.hasSrid {
		g.hdr().srid = o.srid
	}
	return g, nil
}

// MarshalGeoJSON returns the RFC 7946 JSON text of a geometry.
func MarshalGeoJSON(g Geometry) ([]byte, error) {
	tree, err := g.GeoJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}

// UnmarshalGeoJSON creates a geometry from RFC 7946 JSON text.
func UnmarshalGeoJSON(data []byte, opts ...Option) (Geometry, error) {
	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, geojsonErr("invalid JSON: %v", err)
	}
	return FromGeoJSON(tree, opts...)
}

// MarshalJSON implements json.Marshaler using the GeoJSON form.
func (p *Point) MarshalJSON() ([]byte, error) { return MarshalGeoJSON(p) }

// MarshalJSON implements json.Marshaler using the GeoJSON form.
func (ls *LineString) MarshalJSON() ([]byte, error) { return MarshalGeoJSON(ls) }

// MarshalJSON implements json.Marshaler using the GeoJSON form.
func (p *Polygon) MarshalJSON() ([]byte, error) { return MarshalGeoJSON(p) }

// MarshalJSON implements json.Marshaler using the GeoJSON form.
func (mp *MultiPoint) MarshalJSON() ([]byte, error) { return MarshalGeoJSON(mp) }

// MarshalJSON implements json.Marshaler using the GeoJSON form.
func (ml *MultiLineString) MarshalJSON() ([]byte, error) { return MarshalGeoJSON(ml) }

// MarshalJSON implements json.Marshaler using the GeoJSON form.
func (mp *MultiPolygon) MarshalJSON() ([]byte, error) { return MarshalGeoJSON(mp) }

// MarshalJSON implements json.Marshaler using the GeoJSON form.
func (gc *GeometryCollection) MarshalJSON() ([]byte, error) { return MarshalGeoJSON(gc) }

// geojsonArity enforces the position arity rules of one geometry: two
// or three values, uniform throughout.
type geojsonArity struct {
	resolved bool
	n        int
}

func (a *geojsonArity) check(n int) error {
	if n < 2 || n > 3 {
		return geojsonErr("a position requires 2 or 3 values, got %d", n)
	}
	if !a.resolved {
		a.resolved = true
		a.n = n
		return nil
	}
	if n != a.n {
		return geojsonErr("mixed coordinate arities within one geometry")
	}
	return nil
}

func geometryFromGeojson(tree map[string]interface{}) (Geometry, error) {
	tv, ok := tree["type"]
	if !ok {
		return nil, geojsonErr(`missing "type" member`)
	}
	name, ok := tv.(string)
	if !ok {
		return nil, geojsonErr(`"type" member is not a string`)
	}
	if strings.EqualFold(name, "GeometryCollection") {
		return collectionFromGeojson(tree)
	}
	coords, ok := tree["coordinates"]
	if !ok {
		return nil, geojsonErr(`missing "coordinates" member`)
	}
	var arity geojsonArity
	switch strings.ToLower(name) {
	case "point":
		pos, err := geojsonPosition(coords, &arity)
		if err != nil {
			return nil, err
		}
		return NewPoint(pos)
	case "linestring":
		positions, err := geojsonPositionList(coords, &arity)
		if err != nil {
			return nil, err
		}
		return NewLineString(positions)
	case "polygon":
		rings, err := geojsonRingList(coords, &arity)
		if err != nil {
			return nil, err
		}
		return NewPolygon(rings)
	case "multipoint":
		positions, err := geojsonPositionList(coords, &arity)
		if err != nil {
			return nil, err
		}
		points := make([]*Point, len(positions))
		for i, pos := range positions {
			p, err := NewPoint(pos)
			if err != nil {
				return nil, err
			}
			points[i] = p
		}
		return NewMultiPoint(points)
	case "multilinestring":
		ringish, err := geojsonRingList(coords, &arity)
		if err != nil {
			return nil, err
		}
		lines := make([]*LineString, len(ringish))
		for i, positions := range ringish {
			ls, err := NewLineString(positions)
			if err != nil {
				return nil, err
			}
			lines[i] = ls
		}
		return NewMultiLineString(lines)
	case "multipolygon":
		list, ok := coords.([]interface{})
		if !ok {
			return nil, geojsonErr(`"coordinates" member is not an array`)
		}
		polygons := make([]*Polygon, len(list))
		for i, member := range list {
			rings, err := geojsonRingList(member, &arity)
			if err != nil {
				return nil, err
			}
			poly, err := NewPolygon(rings)
			if err != nil {
				return nil, err
			}
			polygons[i] = poly
		}
		return NewMultiPolygon(polygons)
	default:
		return nil, geojsonErr("unsupported type %q", name)
	}
}

func collectionFromGeojson(tree map[string]interface{}) (Geometry, error) {
	gv, ok := tree["geometries"]
	if !ok {
		return nil, geojsonErr(`missing "geometries" member`)
	}
	list, ok := gv.([]interface{})
	if !ok {
		return nil, geojsonErr(`"geometries" member is not an array`)
	}
	members := make([]Geometry, len(list))
	for i, member := range list {
		childTree, ok := member.(map[string]interface{})
		if !ok {
			return nil, geojsonErr("geometry %d is not an object", i)
		}
		child, err := geometryFromGeojson(childTree)
		if err != nil {
			return nil, err
		}
		members[i] = child
	}
	return NewGeometryCollection(members)
}

// geojsonPosition coerces one GeoJSON position into coordinate
// values.
func geojsonPosition(v interface{}, arity *geojsonArity) ([]float64, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, geojsonErr("a position must be an array of numbers")
	}
	if err := arity.check(len(list)); err != nil {
		return nil, err
	}
	pos := make([]float64, len(list))
	for i, n := range list {
		f, ok := geojsonNumber(n)
		if !ok {
			return nil, geojsonErr("position value %d is not a number", i)
		}
		pos[i] = f
	}
	return pos, nil
}

func geojsonPositionList(v interface{}, arity *geojsonArity) ([][]float64, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, geojsonErr(`"coordinates" member is not an array`)
	}
	positions := make([][]float64, len(list))
	for i, member := range list {
		pos, err := geojsonPosition(member, arity)
		if err != nil {
			return nil, err
		}
		positions[i] = pos
	}
	return positions, nil
}

func geojsonRingList(v interface{}, arity *geojsonArity) ([][][]float64, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, geojsonErr(`"coordinates" member is not an array`)
	}
	rings := make([][][]float64, len(list))
	for i, member := range list {
		positions, err := geojsonPositionList(member, arity)
		if err != nil {
			return nil, err
		}
		rings[i] = positions
	}
	return rings, nil
}

// geojsonNumber accepts the numeric encodings a decoded JSON tree can
// contain.
func geojsonNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
