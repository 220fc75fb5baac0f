package id3

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Encoding is the value of a frame body's leading encoding-selector
// byte.
type Encoding byte

const (
	// EncodingISO88591 is Latin-1. The canonical ID3 value is 0; one
	// of the source files this package is grounded on used 1 for its
	// v2.2 constant, which spec.md's Open Questions section calls out
	// explicitly as wrong. This package uses 0, per the canonical ID3
	// spec, for every version.
	EncodingISO88591 Encoding = 0
	// EncodingUTF16 is UTF-16 with a leading byte-order mark. Absent
	// a BOM, the bytes are treated as little-endian.
	EncodingUTF16 Encoding = 1
	// EncodingUTF16BE is UTF-16 big-endian with no BOM.
	EncodingUTF16BE Encoding = 2
	EncodingUTF8    Encoding = 3
)

// decodeText maps an encoding selector to a codec and decodes b.
// Empty input always decodes to the empty string.
func decodeText(b []byte, enc Encoding) (string, error) {
	if len(b) == 0 {
		return "", nil
	}

	switch enc {
	case EncodingISO88591:
		return string(iso88591ToUTF8(b)), nil
	case EncodingUTF16:
		return utf16ToUTF8(b, false), nil
	case EncodingUTF16BE:
		return utf16ToUTF8(b, true), nil
	case EncodingUTF8:
		return string(b), nil
	default:
		return "", ErrMalformed{Reason: "bad encoding byte"}
	}
}

// utf16ToUTF8 decodes b as UTF-16, honoring a leading BOM if present
// and otherwise falling back to defaultBigEndian. A trailing odd byte
// (malformed input) is ignored rather than causing a panic — the core
// prefers a best-effort string over failing an otherwise decodable
// tag on a single stray byte in a free-text field.
func utf16ToUTF8(b []byte, defaultBigEndian bool) string {
	bigEndian := defaultBigEndian

	if len(b) >= 2 {
		switch {
		case b[0] == 0xFF && b[1] == 0xFE:
			bigEndian = false
			b = b[2:]
		case b[0] == 0xFE && b[1] == 0xFF:
			bigEndian = true
			b = b[2:]
		}
	}

	units := make([]uint16, len(b)/2)
	for i := range units {
		if bigEndian {
			units[i] = uint16(b[i*2])<<8 | uint16(b[i*2+1])
		} else {
			units[i] = uint16(b[i*2]) | uint16(b[i*2+1])<<8
		}
	}

	return string(utf16.Decode(units))
}

// iso88591ToUTF8 transcodes Latin-1 bytes to UTF-8. Every ISO-8859-1
// code point below 128 is identical to its ASCII/UTF-8 encoding;
// every code point at or above 128 encodes as exactly two UTF-8
// bytes, so the output is at most twice the input length.
func iso88591ToUTF8(input []byte) []byte {
	res := make([]byte, 0, len(input)*2)
	for _, b := range input {
		res = utf8.AppendRune(res, rune(b))
	}
	return res
}

// utf8ToISO88591 transcodes UTF-8 text back to Latin-1, used when a
// field is declared ISO-8859-1 but was produced from a Go string
// (e.g. constructing test fixtures). Runes outside Latin-1 are
// replaced with '?', matching the lossy nature of the target charset.
func utf8ToISO88591(input string) []byte {
	res := make([]byte, 0, len(input))
	for _, r := range input {
		if r > 0xFF {
			res = append(res, '?')
			continue
		}
		res = append(res, byte(r))
	}
	return res
}
