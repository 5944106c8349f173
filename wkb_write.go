// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

import "encoding/binary"

// emitWKB encodes a geometry as little-endian (E)WKB. When useSrid is
// set and the geometry carries an SRID, the outermost type word bears
// the SRID flag and the SRID follows it; nested geometries never carry
// an SRID of their own.
func emitWKB(g Geometry, useSrid bool) ([]byte, error) {
	w := &wkbBuffer{}
	srid := g.SRID()
	w.writeOrder()
	w.writeUint32(encodeTypeWord(g.Type(), g.DimZ(), g.DimM(), useSrid && srid != 0))
	if useSrid && srid != 0 {
		w.writeInt32(srid)
	}
	if err := g.writeBody(w, g.DimZ(), g.DimM()); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

// toEWKB backs every variant's EWKB method. The retained source bytes
// are returned verbatim when present; otherwise the geometry is
// re-encoded with its SRID.
func toEWKB(g Geometry) ([]byte, error) {
	if h := g.hdr(); h.wkb != nil {
		return append([]byte(nil), h.wkb...), nil
	}
	return emitWKB(g, true)
}

// toWKB backs every variant's WKB method. The retained source bytes
// are reused only when they carry no SRID, since plain WKB output
// must omit it.
func toWKB(g Geometry) ([]byte, error) {
	if h := g.hdr(); h.wkb != nil && len(h.wkb) >= 5 {
		var order binary.ByteOrder = binary.LittleEndian
		if h.wkb[0] == 0 {
			order = binary.BigEndian
		}
		if order.Uint32(h.wkb[1:5])&wkbSridFlag == 0 {
			return append([]byte(nil), h.wkb...), nil
		}
	}
	return emitWKB(g, false)
}

// toHex backs every variant's Hex method.
func toHex(g Geometry) (string, error) {
	b, err := toEWKB(g)
	if err != nil {
		return "", err
	}
	return EncodeHex(b), nil
}
