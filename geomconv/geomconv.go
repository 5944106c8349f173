// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geomconv converts geometries between this library's model
// and the github.com/twpayne/go-geom model, the geometry library most
// of the Go geospatial ecosystem computes with. Both directions
// preserve the geometry class, the SRID, and the Z and M dimensions.
package geomconv

import (
	"github.com/twpayne/go-geom"

	"github.com/gogama/postgis"
)

// ToGeom converts a geometry to its go-geom counterpart. The input is
// materialized but not otherwise modified.
func ToGeom(g postgis.Geometry) (geom.T, error) {
	layout := layoutOf(g)
	srid := int(g.SRID())
	switch v := g.(type) {
	case *postgis.Point:
		flat, err := pointFlat(v, layout)
		if err != nil {
			return nil, err
		}
		return geom.NewPointFlat(layout, flat).SetSRID(srid), nil
	case *postgis.LineString:
		flat, err := lineFlat(v, layout)
		if err != nil {
			return nil, err
		}
		return geom.NewLineStringFlat(layout, flat).SetSRID(srid), nil
	case *postgis.Polygon:
		flat, ends, err := polygonFlat(v, layout, nil, nil)
		if err != nil {
			return nil, err
		}
		return geom.NewPolygonFlat(layout, flat, ends).SetSRID(srid), nil
	case *postgis.MultiPoint:
		points, err := v.Points()
		if err != nil {
			return nil, err
		}
		var flat []float64
		for _, p := range points {
			flat, err = appendPointFlat(flat, p, layout)
			if err != nil {
				return nil, err
			}
		}
		return geom.NewMultiPointFlat(layout, flat).SetSRID(srid), nil
	case *postgis.MultiLineString:
		lines, err := v.LineStrings()
		if err != nil {
			return nil, err
		}
		var flat []float64
		var ends []int
		for _, ls := range lines {
			part, err := lineFlat(ls, layout)
			if err != nil {
				return nil, err
			}
			flat = append(flat, part...)
			ends = append(ends, len(flat))
		}
		return geom.NewMultiLineStringFlat(layout, flat, ends).SetSRID(srid), nil
	case *postgis.MultiPolygon:
		polygons, err := v.Polygons()
		if err != nil {
			return nil, err
		}
		var flat []float64
		var endss [][]int
		for _, poly := range polygons {
			var ends []int
			flat, ends, err = polygonFlat(poly, layout, flat, nil)
			if err != nil {
				return nil, err
			}
			endss = append(endss, ends)
		}
		return geom.NewMultiPolygonFlat(layout, flat, endss).SetSRID(srid), nil
	case *postgis.GeometryCollection:
		members, err := v.Geometries()
		if err != nil {
			return nil, err
		}
		gc := geom.NewGeometryCollection()
		for _, member := range members {
			child, err := ToGeom(member)
			if err != nil {
				return nil, err
			}
			if err := gc.Push(child); err != nil {
				return nil, wrapErr("cannot push collection member", err)
			}
		}
		return gc.SetSRID(srid), nil
	default:
		return nil, fmtErr("unsupported geometry %T", g)
	}
}

// FromGeom converts a go-geom geometry to this library's model. The
// input is only borrowed.
func FromGeom(t geom.T) (postgis.Geometry, error) {
	// A collection takes its dimensionality from its members, so it
	// never consults the layout directly.
	if gc, ok := t.(*geom.GeometryCollection); ok {
		geoms := gc.Geoms()
		members := make([]postgis.Geometry, len(geoms))
		for i, child := range geoms {
			member, err := FromGeom(child)
			if err != nil {
				return nil, err
			}
			members[i] = member
		}
		var opts []postgis.Option
		if srid := gc.SRID(); srid != 0 {
			opts = append(opts, postgis.WithSRID(int32(srid)))
		}
		return postgis.NewGeometryCollection(members, opts...)
	}
	opts, err := modelOpts(t)
	if err != nil {
		return nil, err
	}
	switch v := t.(type) {
	case *geom.Point:
		return postgis.NewPoint(coordValues(v.Coords()), opts...)
	case *geom.LineString:
		return postgis.NewLineString(coordList(v.Coords()), opts...)
	case *geom.Polygon:
		return postgis.NewPolygon(ringList(v.Coords()), opts...)
	case *geom.MultiPoint:
		coords := v.Coords()
		points := make([]*postgis.Point, len(coords))
		for i, c := range coords {
			p, err := postgis.NewPoint(coordValues(c), opts...)
			if err != nil {
				return nil, err
			}
			points[i] = p
		}
		return postgis.NewMultiPoint(points, opts...)
	case *geom.MultiLineString:
		coords := v.Coords()
		lines := make([]*postgis.LineString, len(coords))
		for i, c := range coords {
			ls, err := postgis.NewLineString(coordList(c), opts...)
			if err != nil {
				return nil, err
			}
			lines[i] = ls
		}
		return postgis.NewMultiLineString(lines, opts...)
	case *geom.MultiPolygon:
		coords := v.Coords()
		polygons := make([]*postgis.Polygon, len(coords))
		for i, c := range coords {
			poly, err := postgis.NewPolygon(ringList(c), opts...)
			if err != nil {
				return nil, err
			}
			polygons[i] = poly
		}
		return postgis.NewMultiPolygon(polygons, opts...)
	default:
		return nil, fmtErr("unsupported go-geom geometry %T", t)
	}
}

// layoutOf maps the dimension flags to the go-geom coordinate layout.
func layoutOf(g postgis.Geometry) geom.Layout {
	switch {
	case g.DimZ() && g.DimM():
		return geom.XYZM
	case g.DimZ():
		return geom.XYZ
	case g.DimM():
		return geom.XYM
	default:
		return geom.XY
	}
}

// modelOpts maps a go-geom layout and SRID to construction options.
func modelOpts(t geom.T) ([]postgis.Option, error) {
	var opts []postgis.Option
	switch t.Layout() {
	case geom.XY:
	case geom.XYZ:
		opts = append(opts, postgis.WithZ())
	case geom.XYM:
		opts = append(opts, postgis.WithM())
	case geom.XYZM:
		opts = append(opts, postgis.WithZ(), postgis.WithM())
	default:
		return nil, fmtErr("unsupported go-geom layout %s", t.Layout())
	}
	if srid := t.SRID(); srid != 0 {
		opts = append(opts, postgis.WithSRID(int32(srid)))
	}
	return opts, nil
}

func pointFlat(p *postgis.Point, layout geom.Layout) ([]float64, error) {
	return appendPointFlat(make([]float64, 0, layout.Stride()), p, layout)
}

// appendPointFlat appends a point's values in the order the layout
// stores them: X, Y, then Z and M as present.
func appendPointFlat(flat []float64, p *postgis.Point, layout geom.Layout) ([]float64, error) {
	x, err := p.X()
	if err != nil {
		return nil, err
	}
	y, err := p.Y()
	if err != nil {
		return nil, err
	}
	flat = append(flat, x, y)
	if layout == geom.XYZ || layout == geom.XYZM {
		z, err := p.Z()
		if err != nil {
			return nil, err
		}
		flat = append(flat, z)
	}
	if layout == geom.XYM || layout == geom.XYZM {
		m, err := p.M()
		if err != nil {
			return nil, err
		}
		flat = append(flat, m)
	}
	return flat, nil
}

func lineFlat(ls *postgis.LineString, layout geom.Layout) ([]float64, error) {
	vertices, err := ls.Vertices()
	if err != nil {
		return nil, err
	}
	var flat []float64
	for _, v := range vertices {
		if flat, err = appendPointFlat(flat, v, layout); err != nil {
			return nil, err
		}
	}
	return flat, nil
}

// polygonFlat appends a polygon's rings to flat, returning the ring
// end offsets relative to the whole flat slice as go-geom expects.
func polygonFlat(p *postgis.Polygon, layout geom.Layout, flat []float64, ends []int) ([]float64, []int, error) {
	rings, err := p.Rings()
	if err != nil {
		return nil, nil, err
	}
	for _, r := range rings {
		part, err := lineFlat(r, layout)
		if err != nil {
			return nil, nil, err
		}
		flat = append(flat, part...)
		ends = append(ends, len(flat))
	}
	return flat, ends, nil
}

func coordValues(c geom.Coord) []float64 {
	return append([]float64(nil), c...)
}

func coordList(coords []geom.Coord) [][]float64 {
	list := make([][]float64, len(coords))
	for i, c := range coords {
		list[i] = coordValues(c)
	}
	return list
}

func ringList(rings [][]geom.Coord) [][][]float64 {
	list := make([][][]float64, len(rings))
	for i, r := range rings {
		list[i] = coordList(r)
	}
	return list
}
