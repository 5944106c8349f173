// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

import "strings"

// writeWktGeometry renders one geometry, recursively for collections.
// The Z/M/ZM modifier is always emitted on the outermost geometry. The
// members of a collection state their dimensionality through their
// coordinate arity, which is how it is re-inferred on parsing, except
// that an M-only member also carries its M modifier: a three-value
// coordinate without a modifier is read back as Z.
func writeWktGeometry(sb *strings.Builder, g Geometry, precision int, outermost bool) error {
	if err := g.materialize(); err != nil {
		return err
	}
	sb.WriteString(g.Type().wkt())
	if outermost || (g.DimM() && !g.DimZ()) {
		switch {
		case g.DimZ() && g.DimM():
			sb.WriteString(" ZM")
		case g.DimZ():
			sb.WriteString(" Z")
		case g.DimM():
			sb.WriteString(" M")
		}
	}
	sb.WriteByte(' ')
	switch v := g.(type) {
	case *Point:
		sb.WriteByte('(')
		if err := writeWktCoordinate(sb, v, precision); err != nil {
			return err
		}
		sb.WriteByte(')')
	case *LineString:
		return writeWktCoordList(sb, v.vertices, precision)
	case *Polygon:
		return writeWktRings(sb, v.rings, precision)
	case *MultiPoint:
		sb.WriteByte('(')
		for i, g := range v.geoms {
			if i > 0 {
				sb.WriteString(", ")
			}
			pt := g.(*Point)
			if err := pt.materialize(); err != nil {
				return err
			}
			if err := writeWktCoordinate(sb, pt, precision); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
	case *MultiLineString:
		sb.WriteByte('(')
		for i, g := range v.geoms {
			if i > 0 {
				sb.WriteString(", ")
			}
			ls := g.(*LineString)
			if err := ls.materialize(); err != nil {
				return err
			}
			if err := writeWktCoordList(sb, ls.vertices, precision); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
	case *MultiPolygon:
		sb.WriteByte('(')
		for i, g := range v.geoms {
			if i > 0 {
				sb.WriteString(", ")
			}
			poly := g.(*Polygon)
			if err := poly.materialize(); err != nil {
				return err
			}
			if err := writeWktRings(sb, poly.rings, precision); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
	case *GeometryCollection:
		sb.WriteByte('(')
		for i, g := range v.geoms {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err := writeWktGeometry(sb, g, precision, false); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
	}
	return nil
}

// writeWktCoordinate renders the space-separated values of one vertex.
func writeWktCoordinate(sb *strings.Builder, p *Point, precision int) error {
	if err := p.materialize(); err != nil {
		return err
	}
	values := []float64{p.x, p.y}
	if p.dimz {
		values = append(values, p.z)
	}
	if p.dimm {
		values = append(values, p.m)
	}
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		s, err := formatCoord(v, precision)
		if err != nil {
			return err
		}
		sb.WriteString(s)
	}
	return nil
}

func writeWktCoordList(sb *strings.Builder, vertices []*Point, precision int) error {
	sb.WriteByte('(')
	for i, v := range vertices {
		if i > 0 {
			sb.WriteString(", ")
		}
		if err := writeWktCoordinate(sb, v, precision); err != nil {
			return err
		}
	}
	sb.WriteByte(')')
	return nil
}

func writeWktRings(sb *strings.Builder, rings []*LineString, precision int) error {
	sb.WriteByte('(')
	for i, r := range rings {
		if i > 0 {
			sb.WriteString(", ")
		}
		if err := r.materialize(); err != nil {
			return err
		}
		if err := writeWktCoordList(sb, r.vertices, precision); err != nil {
			return err
		}
	}
	sb.WriteByte(')')
	return nil
}
