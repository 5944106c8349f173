// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, coords []float64, opts ...Option) *Point {
	t.Helper()
	p, err := NewPoint(coords, opts...)
	require.NoError(t, err)
	return p
}

func TestNewPoint(t *testing.T) {
	t.Run("TwoValues", func(t *testing.T) {
		p := mustPoint(t, []float64{1, 2})

		assert.False(t, p.DimZ())
		assert.False(t, p.DimM())
	})

	t.Run("ThreeValuesDefaultZ", func(t *testing.T) {
		p := mustPoint(t, []float64{1, 2, 3})

		assert.True(t, p.DimZ())
		assert.False(t, p.DimM())
		z, err := p.Z()
		require.NoError(t, err)
		assert.Equal(t, 3.0, z)
	})

	t.Run("ThreeValuesM", func(t *testing.T) {
		p := mustPoint(t, []float64{0, -52, 5}, WithM())

		assert.False(t, p.DimZ())
		assert.True(t, p.DimM())
		m, err := p.M()
		require.NoError(t, err)
		assert.Equal(t, 5.0, m)
	})

	t.Run("TwoValuesDeclaredZM", func(t *testing.T) {
		p := mustPoint(t, []float64{1, 2}, WithZ(), WithM())

		assert.True(t, p.DimZ())
		assert.True(t, p.DimM())
		z, err := p.Z()
		require.NoError(t, err)
		assert.Equal(t, 0.0, z)
		m, err := p.M()
		require.NoError(t, err)
		assert.Equal(t, 0.0, m)
	})

	t.Run("FourValues", func(t *testing.T) {
		p := mustPoint(t, []float64{1, 2, 3, 4})

		assert.True(t, p.DimZ())
		assert.True(t, p.DimM())
	})

	t.Run("TooFew", func(t *testing.T) {
		_, err := NewPoint([]float64{1})

		var coordErr *CoordinateError
		require.ErrorAs(t, err, &coordErr)
	})

	t.Run("TooMany", func(t *testing.T) {
		_, err := NewPoint([]float64{1, 2, 3, 4, 5})

		var dimErr *DimensionalityError
		require.ErrorAs(t, err, &dimErr)
	})
}

func TestNewLineString_MixedDimensionality(t *testing.T) {
	_, err := NewLineString([][]float64{{0, 0}, {1, 1, 1}})

	var dimErr *DimensionalityError
	require.ErrorAs(t, err, &dimErr)
}

func TestNewMultiPoint_SridRules(t *testing.T) {
	t.Run("MismatchedMembers", func(t *testing.T) {
		p1 := mustPoint(t, []float64{0, 0}, WithSRID(4326))
		p2 := mustPoint(t, []float64{1, 1}, WithSRID(3857))

		_, err := NewMultiPoint([]*Point{p1, p2})

		var sridError *SridError
		require.ErrorAs(t, err, &sridError)
	})

	t.Run("AdoptsMemberSrid", func(t *testing.T) {
		p1 := mustPoint(t, []float64{0, 0}, WithSRID(4326))
		p2 := mustPoint(t, []float64{1, 1})

		mp, err := NewMultiPoint([]*Point{p1, p2})
		require.NoError(t, err)
		assert.Equal(t, int32(4326), mp.SRID())
	})

	t.Run("ContainerConflictsWithMember", func(t *testing.T) {
		p1 := mustPoint(t, []float64{0, 0}, WithSRID(4326))

		_, err := NewMultiPoint([]*Point{p1}, WithSRID(3857))

		var sridError *SridError
		require.ErrorAs(t, err, &sridError)
	})

	t.Run("MembersAgree", func(t *testing.T) {
		p1 := mustPoint(t, []float64{0, 0}, WithSRID(4326))
		p2 := mustPoint(t, []float64{1, 1}, WithSRID(4326))

		mp, err := NewMultiPoint([]*Point{p1, p2}, WithSRID(4326))
		require.NoError(t, err)
		assert.Equal(t, int32(4326), mp.SRID())
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := NewMultiPoint(nil)

		var collErr *CollectionError
		require.ErrorAs(t, err, &collErr)
	})
}

func TestNewMultiPoint_MixedDimensionality(t *testing.T) {
	p1 := mustPoint(t, []float64{0, 0, 0})
	p2 := mustPoint(t, []float64{1, 1})

	_, err := NewMultiPoint([]*Point{p1, p2})

	var dimErr *DimensionalityError
	require.ErrorAs(t, err, &dimErr)
}

func TestMultiPoint_DimensionalityLift(t *testing.T) {
	mp, err := NewMultiPoint([]*Point{
		mustPoint(t, []float64{0, 0}),
		mustPoint(t, []float64{1, 1}),
	})
	require.NoError(t, err)

	require.NoError(t, mp.SetDimZ(true))

	assert.True(t, mp.DimZ())
	points, err := mp.Points()
	require.NoError(t, err)
	for _, p := range points {
		assert.True(t, p.DimZ())
		z, err := p.Z()
		require.NoError(t, err)
		assert.Equal(t, 0.0, z)
	}

	wkt, err := mp.WKT()
	require.NoError(t, err)
	assert.Equal(t, "MULTIPOINT Z (0 0 0, 1 1 0)", wkt)

	// Removing a declared dimension is forbidden.
	err = mp.SetDimZ(false)
	var dimErr *DimensionalityError
	require.ErrorAs(t, err, &dimErr)
}

func TestPoint_SetZTogglesDimension(t *testing.T) {
	p := mustPoint(t, []float64{1, 2})
	require.False(t, p.DimZ())

	require.NoError(t, p.SetZ(9))

	assert.True(t, p.DimZ())
	z, err := p.Z()
	require.NoError(t, err)
	assert.Equal(t, 9.0, z)
}

func TestMultiCore_AppendPop(t *testing.T) {
	mp, err := NewMultiPoint([]*Point{mustPoint(t, []float64{0, 0})})
	require.NoError(t, err)

	t.Run("AppendWrongClass", func(t *testing.T) {
		ls, err := NewLineString([][]float64{{0, 0}, {1, 1}})
		require.NoError(t, err)

		err = mp.Append(ls)

		var collErr *CollectionError
		require.ErrorAs(t, err, &collErr)
	})

	t.Run("AppendWrongDims", func(t *testing.T) {
		err := mp.Append(mustPoint(t, []float64{1, 1, 1}))

		var dimErr *DimensionalityError
		require.ErrorAs(t, err, &dimErr)
	})

	t.Run("AppendDeepCopies", func(t *testing.T) {
		p := mustPoint(t, []float64{5, 5})
		require.NoError(t, mp.Append(p))

		// Mutating the original does not reach into the container.
		require.NoError(t, p.SetX(99))
		last, err := mp.GeometryN(1)
		require.NoError(t, err)
		x, err := last.(*Point).X()
		require.NoError(t, err)
		assert.Equal(t, 5.0, x)
	})

	t.Run("Pop", func(t *testing.T) {
		n, err := mp.NumGeometries()
		require.NoError(t, err)

		g, err := mp.Pop()
		require.NoError(t, err)
		assert.Equal(t, TypePoint, g.Type())

		rem, err := mp.NumGeometries()
		require.NoError(t, err)
		assert.Equal(t, n-1, rem)
	})

	t.Run("PopEmpty", func(t *testing.T) {
		_, err := mp.Pop()
		require.NoError(t, err)

		_, err = mp.Pop()

		var collErr *CollectionError
		require.ErrorAs(t, err, &collErr)
	})
}

func TestCollection_AdmitsAnyClass(t *testing.T) {
	p := mustPoint(t, []float64{1, 2})
	ls, err := NewLineString([][]float64{{0, 0}, {1, 1}})
	require.NoError(t, err)

	gc, err := NewGeometryCollection([]Geometry{p, ls})
	require.NoError(t, err)

	require.NoError(t, gc.Append(mustPoint(t, []float64{3, 4})))
	n, err := gc.NumGeometries()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestConcat(t *testing.T) {
	point := func() *Point { return mustPoint(t, []float64{1, 2}) }
	line := func() *LineString {
		ls, err := NewLineString([][]float64{{0, 0}, {1, 1}})
		require.NoError(t, err)
		return ls
	}
	polygon := func() *Polygon {
		p, err := NewPolygon([][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
		require.NoError(t, err)
		return p
	}

	t.Run("PointPoint", func(t *testing.T) {
		g, err := Concat(point(), point())
		require.NoError(t, err)
		assert.Equal(t, TypeMultiPoint, g.Type())
	})

	t.Run("PolygonMultiPolygon", func(t *testing.T) {
		mp, err := NewMultiPolygon([]*Polygon{polygon()})
		require.NoError(t, err)

		g, err := Concat(polygon(), mp)
		require.NoError(t, err)
		assert.Equal(t, TypeMultiPolygon, g.Type())

		n, err := g.(*MultiPolygon).NumGeometries()
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("UnrelatedClasses", func(t *testing.T) {
		g, err := Concat(point(), line())
		require.NoError(t, err)
		assert.Equal(t, TypeGeometryCollection, g.Type())
	})

	t.Run("CollectionSplices", func(t *testing.T) {
		gc, err := NewGeometryCollection([]Geometry{point(), line()})
		require.NoError(t, err)

		g, err := Concat(gc, point())
		require.NoError(t, err)
		assert.Equal(t, TypeGeometryCollection, g.Type())

		n, err := g.(*GeometryCollection).NumGeometries()
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("SridMismatch", func(t *testing.T) {
		a := mustPoint(t, []float64{0, 0}, WithSRID(4326))
		b := mustPoint(t, []float64{1, 1}, WithSRID(3857))

		_, err := Concat(a, b)

		var sridError *SridError
		require.ErrorAs(t, err, &sridError)
	})

	t.Run("SridSurvives", func(t *testing.T) {
		a := mustPoint(t, []float64{0, 0}, WithSRID(4326))
		b := mustPoint(t, []float64{1, 1})

		g, err := Concat(a, b)
		require.NoError(t, err)
		assert.Equal(t, int32(4326), g.SRID())
	})
}

func TestGeometry_Equal(t *testing.T) {
	t.Run("Identical", func(t *testing.T) {
		a := mustPoint(t, []float64{1, 2, 3}, WithSRID(4326))
		b := mustPoint(t, []float64{1, 2, 3}, WithSRID(4326))

		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))
	})

	t.Run("DifferentSrid", func(t *testing.T) {
		a := mustPoint(t, []float64{1, 2})
		b := mustPoint(t, []float64{1, 2}, WithSRID(4326))

		assert.False(t, a.Equal(b))
	})

	t.Run("DifferentDims", func(t *testing.T) {
		a := mustPoint(t, []float64{1, 2})
		b := mustPoint(t, []float64{1, 2}, WithZ())

		assert.False(t, a.Equal(b))
	})

	t.Run("DifferentClass", func(t *testing.T) {
		a := mustPoint(t, []float64{1, 2})
		ls, err := NewLineString([][]float64{{1, 2}, {3, 4}})
		require.NoError(t, err)

		assert.False(t, a.Equal(ls))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.False(t, mustPoint(t, []float64{1, 2}).Equal(nil))
	})
}

func TestGeometry_Clone(t *testing.T) {
	mp, err := NewMultiPoint([]*Point{mustPoint(t, []float64{1, 2})}, WithSRID(4326))
	require.NoError(t, err)

	c := mp.Clone()
	require.True(t, c.Equal(mp))

	// Mutating the clone leaves the original untouched.
	points, err := c.(*MultiPoint).Points()
	require.NoError(t, err)
	require.NoError(t, points[0].SetX(99))

	orig, err := mp.Points()
	require.NoError(t, err)
	x, err := orig[0].X()
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
}

func TestGeometry_Bounds(t *testing.T) {
	t.Run("Point", func(t *testing.T) {
		b, err := mustPoint(t, []float64{1, 2}).Bounds()
		require.NoError(t, err)
		assert.Equal(t, Box{1, 2, 1, 2}, b)
	})

	t.Run("LineString", func(t *testing.T) {
		ls, err := NewLineString([][]float64{{0, 4}, {3, -1}})
		require.NoError(t, err)

		b, err := ls.Bounds()
		require.NoError(t, err)
		assert.Equal(t, Box{0, -1, 3, 4}, b)
	})

	t.Run("PolygonUsesExterior", func(t *testing.T) {
		p, err := NewPolygon([][][]float64{
			{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
			{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}},
		})
		require.NoError(t, err)

		b, err := p.Bounds()
		require.NoError(t, err)
		assert.Equal(t, Box{0, 0, 10, 10}, b)
	})

	t.Run("Collection", func(t *testing.T) {
		gc, err := NewGeometryCollection([]Geometry{
			mustPoint(t, []float64{-5, 0}),
			mustPoint(t, []float64{5, 2}),
		})
		require.NoError(t, err)

		b, err := gc.Bounds()
		require.NoError(t, err)
		assert.Equal(t, Box{-5, 0, 5, 2}, b)
	})
}

func TestGeometry_PostGISType(t *testing.T) {
	testCases := []struct {
		name     string
		wkt      string
		expected string
	}{
		{"Point", "POINT (0 0)", "geometry(Point)"},
		{"PointZSrid", "SRID=4326;POINT Z (0 0 0)", "geometry(PointZ,4326)"},
		{"MultiPointZM", "MULTIPOINT ZM (0 0 0 0)", "geometry(MultiPointZM)"},
		{"Collection", "GEOMETRYCOLLECTION (POINT (0 0))", "geometry(GeometryCollection)"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			g, err := ParseWKT(testCase.wkt)
			require.NoError(t, err)

			assert.Equal(t, testCase.expected, g.PostGISType())
		})
	}
}
