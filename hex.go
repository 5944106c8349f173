// Copyright 2023 The postgis (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package postgis

import "encoding/hex"

// ParseHex decodes the hexadecimal representation of a WKB or EWKB
// value, as emitted by PostGIS, into raw bytes. Upper and lower case
// digits are both accepted. Odd-length input and non-hexadecimal
// characters are rejected with a WkbError.
func ParseHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, wkbErr(len(s), "odd-length hex string")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		if inv, ok := err.(hex.InvalidByteError); ok {
			return nil, wkbErr(-1, "invalid hex character %q", byte(inv))
		}
		return nil, wkbErr(-1, "invalid hex string")
	}
	return b, nil
}

// EncodeHex encodes raw WKB or EWKB bytes as the lowercase hexadecimal
// form PostGIS exchanges with its clients.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// isHex reports whether s consists solely of hexadecimal digits. An
// empty string is not hex.
func isHex(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
