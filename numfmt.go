// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

import (
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// DefaultWKTPrecision is the maximum number of fractional digits
// emitted for a coordinate in WKT output unless overridden with
// SetWKTPrecision.
const DefaultWKTPrecision = 6

var wktPrecision = func() *atomic.Int32 {
	var p atomic.Int32
	p.Store(DefaultWKTPrecision)
	return &p
}()

// WKTPrecision returns the process-wide maximum number of fractional
// digits used when emitting WKT. The setting affects WKT output only:
// WKB and GeoJSON always carry the full double.
func WKTPrecision() int {
	return int(wktPrecision.Load())
}

// SetWKTPrecision changes the process-wide WKT fractional-digit
// budget. A negative precision is treated as zero. The setting is read
// at emission time, so concurrent changes may interleave precisions
// across outputs but cause no memory hazard.
func SetWKTPrecision(digits int) {
	if digits < 0 {
		digits = 0
	}
	wktPrecision.Store(int32(digits))
}

// formatCoord renders a coordinate as the shortest decimal string that
// parses back to the same double, capped at the given fractional-digit
// budget. Exponent notation is never used, integer-valued doubles have
// no decimal point, and negative zero normalizes to "0". Trimming of
// trailing zeros stops at the decimal point, so values such as 120
// keep all their integer digits. Non-finite values are rejected with a
// WktError.
func formatCoord(v float64, precision int) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", wktErr(-1, "cannot emit non-finite number %v", v)
	}
	if v == 0 {
		// Covers negative zero too.
		return "0", nil
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > precision {
		s = strconv.FormatFloat(v, 'f', precision, 64)
		if strings.IndexByte(s, '.') >= 0 {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
		if s == "-0" {
			s = "0"
		}
	}
	return s, nil
}
