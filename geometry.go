// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package postgis converts geometry values between the external
// representations used by PostGIS: hex-encoded EWKB, raw WKB, WKT and
// EWKT, and the GeoJSON object model. Geometry type, SRID and the
// optional Z and M dimensions survive every round trip whose target
// representation admits them.
//
// A geometry constructed from (E)WKB bytes retains the source buffer
// and decodes only the leading type word and SRID. Reading the type,
// SRID or dimension flags is served from that header; the first
// structural read (a coordinate, the bounds, a child geometry, or a
// conversion) materializes the full structure, and any mutation
// invalidates the retained bytes so the next WKB request re-encodes
// from the model.
package postgis

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// A Geometry is one of the seven supported OGC simple feature
// variants: Point, LineString, Polygon, MultiPoint, MultiLineString,
// MultiPolygon or GeometryCollection.
//
// A Geometry is not safe for concurrent mutation and reading. Distinct
// geometries are independent.
type Geometry interface {
	GeoShaper
	fmt.Stringer

	// Type returns the geometry class.
	Type() GeomType
	// SRID returns the spatial reference identifier, or 0 when the
	// geometry has none.
	SRID() int32
	// SetSRID changes the spatial reference identifier. Setting 0
	// removes it. Changing the SRID invalidates any retained source
	// bytes.
	SetSRID(srid int32)
	// DimZ reports whether the geometry has a Z dimension.
	DimZ() bool
	// DimM reports whether the geometry has an M dimension.
	DimM() bool
	// SetDimZ adds the Z dimension to the geometry and, for composite
	// geometries, to every reachable point, initializing missing Z
	// values to 0. Removing a declared Z dimension is not permitted
	// and returns a DimensionalityError.
	SetDimZ(dimz bool) error
	// SetDimM is the M-dimension counterpart of SetDimZ.
	SetDimM(dimm bool) error
	// PostGISType returns the PostGIS type signature of the geometry,
	// for example "geometry(MultiPointZM,4326)".
	PostGISType() string
	// Bounds returns the minimum and maximum extents of the geometry
	// in the XY plane.
	Bounds() (Box, error)
	// Equal reports whether the other geometry has identical
	// structure: same class, same dimensionality, same coordinates,
	// and the same top-level SRID. The SRID of nested members is not
	// authoritative and does not participate.
	Equal(other Geometry) bool
	// Clone returns a deep copy sharing no state with the receiver.
	Clone() Geometry
	// WKB encodes the geometry as little-endian WKB without an SRID.
	WKB() ([]byte, error)
	// EWKB encodes the geometry as little-endian EWKB, carrying the
	// SRID when one is set. If the geometry was constructed from
	// (E)WKB bytes and has not been mutated or structurally read, the
	// retained source bytes are returned verbatim.
	EWKB() ([]byte, error)
	// Hex returns the lowercase hexadecimal form of EWKB.
	Hex() (string, error)
	// WKT renders the geometry as Well-Known Text at the process-wide
	// precision.
	WKT() (string, error)
	// EWKT renders the geometry as WKT with a leading "SRID=n;" when
	// an SRID is set.
	EWKT() (string, error)
	// GeoJSON returns the geometry as an RFC 7946 object tree. The M
	// dimension is dropped; Z is carried as a third position element.
	GeoJSON() (map[string]interface{}, error)

	hdr() *header
	materialize() error
	writeBody(w *wkbBuffer, dimz, dimm bool) error
	geojsonValue(dimz bool) (map[string]interface{}, error)
	equalBody(other Geometry) bool
	boundsInto(b *Box) error
	cloneGeometry() Geometry
}

// header carries the state shared by every geometry variant: the SRID,
// the dimension flags, the retained source bytes, and the pending
// payload of a geometry whose children have not been materialized yet.
type header struct {
	srid int32
	dimz bool
	dimm bool
	// wkb is the retained (E)WKB source buffer. It is non-nil only
	// when the geometry was constructed from bytes and neither a
	// mutation nor a structural read has occurred since.
	wkb []byte
	// lazy is the undecoded remainder of the source buffer. It is
	// consumed by materialize and is nil afterwards.
	lazy *lazyBody
}

type lazyBody struct {
	payload []byte
	base    int
	order   binary.ByteOrder
}

func (h *header) hdr() *header { return h }

func (h *header) SRID() int32 { return h.srid }

func (h *header) SetSRID(srid int32) {
	if srid == h.srid {
		return
	}
	h.srid = srid
	h.wkb = nil
}

func (h *header) DimZ() bool { return h.dimz }

func (h *header) DimM() bool { return h.dimm }

// invalidate discards the retained source bytes after a mutation or a
// structural read.
func (h *header) invalidate() { h.wkb = nil }

// cloneHeader copies the header, duplicating the owned buffers.
func (h *header) cloneHeader() header {
	c := header{srid: h.srid, dimz: h.dimz, dimm: h.dimm}
	if h.wkb != nil {
		c.wkb = append([]byte(nil), h.wkb...)
	}
	if h.lazy != nil {
		c.lazy = &lazyBody{
			payload: append([]byte(nil), h.lazy.payload...),
			base:    h.lazy.base,
			order:   h.lazy.order,
		}
	}
	return c
}

// bodyCursor returns a cursor over the pending payload of a lazily
// constructed geometry.
func (l *lazyBody) bodyCursor() *cursor {
	c := newCursor(l.payload, l.base)
	c.order = l.order
	return c
}

// Option configures geometry construction and parsing.
type Option func(*options)

type options struct {
	srid    int32
	hasSrid bool
	dimz    bool
	dimm    bool
}

// WithSRID sets the spatial reference identifier of the constructed
// geometry. When parsing, an explicit SRID wins over any SRID implied
// by the input representation.
func WithSRID(srid int32) Option {
	return func(o *options) {
		o.srid = srid
		o.hasSrid = true
	}
}

// WithZ declares that the third value of each input coordinate is a Z
// coordinate, or that points lacking one receive Z = 0.
func WithZ() Option {
	return func(o *options) { o.dimz = true }
}

// WithM declares an M dimension. The fourth value of a four-value
// coordinate is M, and so is the third value of a three-value
// coordinate unless WithZ is also given, in which case that value is Z.
// Points lacking an M value receive M = 0.
func WithM() Option {
	return func(o *options) { o.dimm = true }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func postgisType(g Geometry) string {
	var dims string
	if g.DimZ() {
		dims += "Z"
	}
	if g.DimM() {
		dims += "M"
	}
	if srid := g.SRID(); srid != 0 {
		return fmt.Sprintf("geometry(%s%s,%d)", g.Type(), dims, srid)
	}
	return fmt.Sprintf("geometry(%s%s)", g.Type(), dims)
}

// equalShape compares two geometries ignoring SRID at every level.
func equalShape(a, b Geometry) bool {
	if a.Type() != b.Type() || a.DimZ() != b.DimZ() || a.DimM() != b.DimM() {
		return false
	}
	return a.equalBody(b)
}

// equalGeometry is the shared implementation behind every variant's
// Equal method. Materialization failure on either side compares as
// unequal.
func equalGeometry(a, b Geometry) bool {
	if b == nil {
		return false
	}
	if a.SRID() != b.SRID() {
		return false
	}
	return equalShape(a, b)
}

// bounds computes the XY extent of a geometry by expanding an empty
// box through every reachable vertex.
func bounds(g Geometry) (Box, error) {
	b := EmptyBox
	if err := g.boundsInto(&b); err != nil {
		return Box{}, err
	}
	return b, nil
}

// hexString renders a geometry the way plain PostGIS output does: the
// lowercase hex EWKB. It backs every variant's String method; an
// unreadable geometry renders as an error note instead.
func hexString(g Geometry) string {
	s, err := g.Hex()
	if err != nil {
		return "error: " + err.Error()
	}
	return s
}

// Concat combines two geometries into a multi geometry. Two members of
// the same family produce the corresponding multi class: a Polygon and
// a MultiPolygon combine into a MultiPolygon holding the union of
// their polygons. Members of unrelated families combine into a
// GeometryCollection, and any operand that is itself a
// GeometryCollection splices its members into a GeometryCollection
// result.
//
// The operands must have equal dimensionality, and their SRIDs must
// match or be absent on one side; the survivor becomes the SRID of the
// result. The operands are deep-copied and remain usable.
func Concat(a, b Geometry) (Geometry, error) {
	srid, err := concatSrid(a, b)
	if err != nil {
		return nil, err
	}
	opts := []Option{}
	if srid != 0 {
		opts = append(opts, WithSRID(srid))
	}
	if a.Type() == TypeGeometryCollection || b.Type() == TypeGeometryCollection {
		members, err := collectionMembers(a, b)
		if err != nil {
			return nil, err
		}
		return NewGeometryCollection(members, opts...)
	}
	fa, fb := family(a.Type()), family(b.Type())
	if fa != fb {
		return NewGeometryCollection([]Geometry{a, b}, opts...)
	}
	leaves, err := familyLeaves(a, b)
	if err != nil {
		return nil, err
	}
	switch fa {
	case TypePoint:
		points := make([]*Point, len(leaves))
		for i, l := range leaves {
			points[i] = l.(*Point)
		}
		return NewMultiPoint(points, opts...)
	case TypeLineString:
		lines := make([]*LineString, len(leaves))
		for i, l := range leaves {
			lines[i] = l.(*LineString)
		}
		return NewMultiLineString(lines, opts...)
	default:
		polygons := make([]*Polygon, len(leaves))
		for i, l := range leaves {
			polygons[i] = l.(*Polygon)
		}
		return NewMultiPolygon(polygons, opts...)
	}
}

// concatSrid reconciles the SRIDs of two concatenation operands.
func concatSrid(a, b Geometry) (int32, error) {
	sa, sb := a.SRID(), b.SRID()
	switch {
	case sa == sb:
		return sa, nil
	case sa == 0:
		return sb, nil
	case sb == 0:
		return sa, nil
	default:
		return 0, sridErr("mixed SRIDs %d and %d in concatenation", sa, sb)
	}
}

// family maps a geometry class to its leaf class: MultiPoint to Point,
// MultiPolygon to Polygon, and so on. Leaf classes map to themselves.
func family(t GeomType) GeomType {
	switch t {
	case TypeMultiPoint:
		return TypePoint
	case TypeMultiLineString:
		return TypeLineString
	case TypeMultiPolygon:
		return TypePolygon
	default:
		return t
	}
}

// collectionMembers flattens concatenation operands for a
// GeometryCollection result: collections contribute their members,
// everything else contributes itself.
func collectionMembers(gs ...Geometry) ([]Geometry, error) {
	var members []Geometry
	for _, g := range gs {
		if gc, ok := g.(*GeometryCollection); ok {
			children, err := gc.Geometries()
			if err != nil {
				return nil, err
			}
			members = append(members, children...)
			continue
		}
		members = append(members, g)
	}
	return members, nil
}

// familyLeaves flattens same-family concatenation operands: multi
// geometries contribute their members, leaves contribute themselves.
func familyLeaves(gs ...Geometry) ([]Geometry, error) {
	var leaves []Geometry
	for _, g := range gs {
		m, ok := g.(interface {
			Geometries() ([]Geometry, error)
		})
		if !ok {
			leaves = append(leaves, g)
			continue
		}
		children, err := m.Geometries()
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, children...)
	}
	return leaves, nil
}

// wktString renders a geometry as WKT, with the "SRID=n;" prefix when
// ewkt is requested and an SRID is set. Rendering reads coordinates
// and therefore materializes the geometry.
func wktString(g Geometry, ewkt bool) (string, error) {
	precision := WKTPrecision()
	var sb strings.Builder
	if ewkt && g.SRID() != 0 {
		fmt.Fprintf(&sb, "SRID=%d;", g.SRID())
	}
	if err := writeWktGeometry(&sb, g, precision, true); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// geojsonObject renders a geometry as its RFC 7946 tree.
func geojsonObject(g Geometry) (map[string]interface{}, error) {
	return g.geojsonValue(g.DimZ())
}
