// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis_test

import (
	"fmt"

	"github.com/gogama/postgis"
)

func ExampleParse() {
	// The hex form of a WKB point, as a PostGIS query would return it.
	g, err := postgis.Parse("01010000000000000000004ac00000000000000000")
	if err != nil {
		panic(err)
	}

	fmt.Println(g.PostGISType())

	wkt, err := g.WKT()
	if err != nil {
		panic(err)
	}
	fmt.Println(wkt)

	// Output: geometry(Point)
	// POINT (-52 0)
}

func ExampleNewPoint() {
	p, err := postgis.NewPoint([]float64{-124.005, 49.005, 1}, postgis.WithSRID(4326))
	if err != nil {
		panic(err)
	}

	ewkt, err := p.EWKT()
	if err != nil {
		panic(err)
	}
	fmt.Println(ewkt)

	hex, err := p.Hex()
	if err != nil {
		panic(err)
	}
	fmt.Println(hex)

	// Output: SRID=4326;POINT Z (-124.005 49.005 1)
	// 01010000a0e6100000b81e85eb51005fc0713d0ad7a3804840000000000000f03f
}

func ExampleConcat() {
	a, err := postgis.NewPoint([]float64{0, 0})
	if err != nil {
		panic(err)
	}
	b, err := postgis.NewPoint([]float64{1, 1})
	if err != nil {
		panic(err)
	}

	g, err := postgis.Concat(a, b)
	if err != nil {
		panic(err)
	}

	wkt, err := g.WKT()
	if err != nil {
		panic(err)
	}
	fmt.Println(wkt)

	// Output: MULTIPOINT (0 0, 1 1)
}
