package id3

// HeaderFlags is the raw ID3v2 header flag byte. Which bits are legal
// depends on the version: v2.2 only permits bit 7, v2.3 permits
// 7/6/5, v2.4 permits 7/6/5/4. Each dispatcher rejects any other bit
// being set with ErrMalformedHeader before constructing a Tag.
type HeaderFlags byte

// Unsynchronisation reports whether the whole tag had the
// unsynchronisation scheme applied (bit 7, all versions).
func (f HeaderFlags) Unsynchronisation() bool { return f&0x80 > 0 }

// ExtendedHeader reports whether an extended header follows the main
// header (bit 6, v2.3/v2.4 only).
func (f HeaderFlags) ExtendedHeader() bool { return f&0x40 > 0 }

// Experimental reports the experimental indicator (bit 5,
// v2.3/v2.4). It is carried as information only; nothing about
// decoding changes when it is set.
func (f HeaderFlags) Experimental() bool { return f&0x20 > 0 }

// Footer reports whether a matching "3DI" footer follows the frames
// (bit 4, v2.4 only). The core accepts but does not act on this bit;
// locating and validating the footer is left to the caller.
func (f HeaderFlags) Footer() bool { return f&0x10 > 0 }

// ExtHeader is implemented by ExtHeaderV23 and ExtHeaderV24. It is a
// closed, version-specific type rather than a single shared struct
// because the two extended header shapes genuinely differ (v2.3 has a
// fixed padding-size/CRC layout, v2.4 has an open list of flag-data
// blocks).
type ExtHeader interface {
	isExtHeader()
}

// ExtHeaderV23 is the ID3v2.3 extended header.
type ExtHeaderV23 struct {
	Size        int
	Flags       uint16
	PaddingSize int
	FrameCRC    *uint32 // non-nil iff Flags&0x8000 != 0
}

func (ExtHeaderV23) isExtHeader() {}

// ExtHeaderV24 is the ID3v2.4 extended header. Only the presence,
// size, and flag byte are modelled structurally; the flag-data bytes
// are surfaced as an opaque view per flag bit set, in bit order from
// most to least significant, matching how the frames themselves carry
// opaque payloads for flag bits the core doesn't interpret further.
type ExtHeaderV24 struct {
	Size     int
	Flags    byte
	FlagData [][]byte
}

func (ExtHeaderV24) isExtHeader() {}
