package id3

import "fmt"

// Version identifies which ID3 dialect a Tag was decoded from.
type Version int

const (
	V1 Version = iota
	V1_1
	V2_2
	V2_3
	V2_4
)

func (v Version) String() string {
	switch v {
	case V1:
		return "ID3v1"
	case V1_1:
		return "ID3v1.1"
	case V2_2:
		return "ID3v2.2"
	case V2_3:
		return "ID3v2.3"
	case V2_4:
		return "ID3v2.4"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// ProbeVersion inspects the first ten bytes and the last 128 bytes of
// buf against the known header magics and reports which dialect, if
// any, appears to be present. It does not validate the tag beyond the
// magic and version bytes; a positive result is a hint for which
// dispatcher to call, not a guarantee that Decode will succeed.
//
// ID3v2 is preferred over a trailing ID3v1 tag when both are present,
// matching how MP3 players resolve the conflict in practice.
func ProbeVersion(buf []byte) (Version, bool) {
	if len(buf) >= 10 && buf[0] == 'I' && buf[1] == 'D' && buf[2] == '3' {
		switch buf[3] {
		case 2:
			return V2_2, true
		case 3:
			return V2_3, true
		case 4:
			return V2_4, true
		}
	}

	if len(buf) >= 128 {
		trailer := buf[len(buf)-128:]
		if trailer[0] == 'T' && trailer[1] == 'A' && trailer[2] == 'G' {
			if trailer[125] == 0 && trailer[126] != 0 {
				return V1_1, true
			}
			return V1, true
		}
	}

	return 0, false
}
