// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package pgxgeom integrates this library's geometries with the
// github.com/jackc/pgx/v5 PostgreSQL driver. Registering the codec on
// a connection lets queries scan PostGIS geometry columns directly
// into a postgis.Geometry and pass geometries as query arguments.
//
// PostGIS exchanges geometries as EWKB: raw bytes in the binary
// protocol and hex text in the text protocol. The codec speaks both.
package pgxgeom

import (
	"context"
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gogama/postgis"
)

// A codec implements pgtype.Codec for postgis.Geometry values.
type codec struct{}

// A binaryEncodePlan encodes a geometry as raw EWKB.
type binaryEncodePlan struct{}

// A textEncodePlan encodes a geometry as hex EWKB.
type textEncodePlan struct{}

// A binaryScanPlan decodes raw EWKB into a geometry.
type binaryScanPlan struct{}

// A textScanPlan decodes hex EWKB into a geometry.
type textScanPlan struct{}

// FormatSupported implements pgtype.Codec.
func (c codec) FormatSupported(format int16) bool {
	return format == pgtype.BinaryFormatCode || format == pgtype.TextFormatCode
}

// PreferredFormat implements pgtype.Codec.
func (c codec) PreferredFormat() int16 {
	return pgtype.BinaryFormatCode
}

// PlanEncode implements pgtype.Codec.
func (c codec) PlanEncode(m *pgtype.Map, oid uint32, format int16, value interface{}) pgtype.EncodePlan {
	if _, ok := value.(postgis.Geometry); !ok {
		return nil
	}
	switch format {
	case pgtype.BinaryFormatCode:
		return binaryEncodePlan{}
	case pgtype.TextFormatCode:
		return textEncodePlan{}
	default:
		return nil
	}
}

// PlanScan implements pgtype.Codec.
func (c codec) PlanScan(m *pgtype.Map, oid uint32, format int16, target interface{}) pgtype.ScanPlan {
	if _, ok := target.(*postgis.Geometry); !ok {
		return nil
	}
	switch format {
	case pgx.BinaryFormatCode:
		return binaryScanPlan{}
	case pgx.TextFormatCode:
		return textScanPlan{}
	default:
		return nil
	}
}

// DecodeDatabaseSQLValue implements pgtype.Codec.
func (c codec) DecodeDatabaseSQLValue(m *pgtype.Map, oid uint32, format int16, src []byte) (driver.Value, error) {
	g, err := c.DecodeValue(m, oid, format, src)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	return g.(postgis.Geometry).Hex()
}

// DecodeValue implements pgtype.Codec.
func (c codec) DecodeValue(m *pgtype.Map, oid uint32, format int16, src []byte) (interface{}, error) {
	if src == nil {
		return nil, nil
	}
	switch format {
	case pgtype.BinaryFormatCode:
		return postgis.ParseWKB(src)
	case pgtype.TextFormatCode:
		return postgis.ParseHexWKB(string(src))
	default:
		return nil, errors.ErrUnsupported
	}
}

// Encode implements pgtype.EncodePlan.
func (p binaryEncodePlan) Encode(value interface{}, buf []byte) ([]byte, error) {
	g, ok := value.(postgis.Geometry)
	if !ok {
		return buf, errors.ErrUnsupported
	}
	data, err := g.EWKB()
	if err != nil {
		return buf, err
	}
	return append(buf, data...), nil
}

// Encode implements pgtype.EncodePlan.
func (p textEncodePlan) Encode(value interface{}, buf []byte) ([]byte, error) {
	g, ok := value.(postgis.Geometry)
	if !ok {
		return buf, errors.ErrUnsupported
	}
	s, err := g.Hex()
	if err != nil {
		return buf, err
	}
	return append(buf, s...), nil
}

// Scan implements pgtype.ScanPlan.
func (p binaryScanPlan) Scan(src []byte, target interface{}) error {
	pg, ok := target.(*postgis.Geometry)
	if !ok {
		return errors.ErrUnsupported
	}
	if len(src) == 0 {
		*pg = nil
		return nil
	}
	g, err := postgis.ParseWKB(src)
	if err != nil {
		return err
	}
	*pg = g
	return nil
}

// Scan implements pgtype.ScanPlan.
func (p textScanPlan) Scan(src []byte, target interface{}) error {
	pg, ok := target.(*postgis.Geometry)
	if !ok {
		return errors.ErrUnsupported
	}
	if len(src) == 0 {
		*pg = nil
		return nil
	}
	g, err := postgis.ParseHexWKB(string(src))
	if err != nil {
		return err
	}
	*pg = g
	return nil
}

// Register registers the geometry codec on a connection, resolving the
// OID of the PostGIS geometry type from the catalog.
func Register(ctx context.Context, conn *pgx.Conn) error {
	var oid uint32
	err := conn.QueryRow(ctx, "select 'geometry'::text::regtype::oid").Scan(&oid)
	if err != nil {
		return err
	}
	conn.TypeMap().RegisterType(&pgtype.Type{
		Codec: codec{},
		Name:  "geometry",
		OID:   oid,
	})
	return nil
}
