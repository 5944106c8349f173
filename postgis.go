// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

// Parse creates a geometry from any supported input representation,
// dispatching on the dynamic type and content of v:
//
//   - []byte: raw WKB or EWKB.
//   - string of hexadecimal digits: hex-encoded WKB or EWKB, the form
//     PostGIS exchanges with its clients.
//   - any other string: WKT or EWKT.
//   - map[string]interface{}: a GeoJSON object tree.
//   - GeoShaper: a foreign shape exposing a GeoJSON-shaped tree.
//
// The WithSRID option overrides any SRID implied by the input
// representation; the override wins without error. Anything else
// fails with a WkbError.
func Parse(v interface{}, opts ...Option) (Geometry, error) {
	o := applyOptions(opts)
	var g Geometry
	var err error
	switch x := v.(type) {
	case []byte:
		g, err = ParseWKB(x)
	case string:
		if isHex(x) {
			g, err = ParseHexWKB(x)
		} else {
			g, err = ParseWKT(x)
		}
	case map[string]interface{}:
		g, err = FromGeoJSON(x)
	case GeoShaper:
		g, err = FromShape(x)
	case nil:
		return nil, wkbErr(-1, "no geometry provided")
	default:
		return nil, wkbErr(-1, "cannot create a geometry from %T", v)
	}
	if err != nil {
		return nil, err
	}
	if o.hasSrid {
		g.SetSRID(o.srid)
	}
	return g, nil
}
