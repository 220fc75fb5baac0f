package id3

// decodeV23 decodes an ID3v2.3 tag: a 10-byte header, an optional
// extended header, and a flat run of frame headers (4-byte
// identifier, 4-byte non-synchsafe size, 2-byte flag word) each
// followed by that many bytes of body, until padding (four NUL bytes
// where an identifier is expected) or the declared tag size is
// reached.
func decodeV23(buf []byte, policy Policy, diag Diagnostics) (*Tag, error) {
	r := newReader(buf)

	magic, err := r.bytes(3)
	if err != nil || string(magic) != "ID3" {
		return nil, ErrMissingIdentifier{Magic: magic}
	}
	major, err := r.byteVal()
	if err != nil {
		return nil, err
	}
	revision, err := r.byteVal()
	if err != nil {
		return nil, err
	}
	if major != 3 {
		return nil, ErrUnsupportedVersion{Major: major, Revision: revision}
	}
	flagByte, err := r.byteVal()
	if err != nil {
		return nil, err
	}
	if flagByte & ^byte(0xE0) != 0 {
		return nil, ErrMalformedHeader{Reason: "illegal header flag bits for ID3v2.3"}
	}
	flags := HeaderFlags(flagByte)

	size, err := r.synchSafeInt(4)
	if err != nil {
		return nil, err
	}
	headerEnd := r.pos
	tagEnd := min(len(buf), headerEnd+size)

	if flags.Unsynchronisation() {
		resynced := Resync(buf[headerEnd:tagEnd])
		spliced := append(append([]byte{}, buf[:headerEnd]...), resynced...)
		r.update(spliced)
		tagEnd = len(spliced)
	}

	var ext ExtHeader
	if flags.ExtendedHeader() {
		extSize, err := r.intN(4)
		if err != nil {
			return nil, err
		}
		extFlags, err := r.intN(2)
		if err != nil {
			return nil, err
		}
		if extFlags & ^0x8000 != 0 {
			return nil, ErrMalformedHeader{Reason: "illegal extended header flag bits for ID3v2.3"}
		}
		paddingSize, err := r.intN(4)
		if err != nil {
			return nil, err
		}
		e := ExtHeaderV23{Size: extSize, Flags: uint16(extFlags), PaddingSize: paddingSize}
		if extFlags&0x8000 != 0 {
			crc, err := r.intN(4)
			if err != nil {
				return nil, err
			}
			v := uint32(crc)
			e.FrameCRC = &v
		}
		ext = e
	}

	frames := FrameMap{}
	for r.hasMore() && !r.atOrBeyond(tagEnd) {
		frameStart := r.pos
		if r.remaining() < 10 {
			break
		}
		idBytes, err := r.bytes(4)
		if err != nil {
			break
		}
		if idBytes[0] == 0 {
			break // padding
		}
		id := string(idBytes)

		bodySize, err := r.intN(4)
		if err != nil {
			diag.Report(Diagnostic{Kind: "skipped_frame", Frame: id, Offset: frameStart, Reason: err.Error()})
			break
		}
		rawFlags, err := r.intN(2)
		if err != nil {
			diag.Report(Diagnostic{Kind: "skipped_frame", Frame: id, Offset: frameStart, Reason: err.Error()})
			break
		}
		bodyBytes, err := r.bytes(bodySize)
		if err != nil {
			diag.Report(Diagnostic{Kind: "skipped_frame", Frame: id, Offset: frameStart, Reason: err.Error()})
			break
		}

		fr := newReader(bodyBytes)
		fflags, err := parseFrameFlagsV23(uint16(rawFlags), fr)
		if err != nil {
			if policy.StrictFrames {
				return nil, err
			}
			diag.Report(Diagnostic{Kind: "skipped_frame", Frame: id, Offset: frameStart, Reason: err.Error()})
			continue
		}
		header := FrameHeader{id: id, flags: fflags}

		dec, ok := lookupFrameDecoder(V2_3, id)
		var frame Frame
		if !ok {
			diag.Report(Diagnostic{Kind: "unknown_frame", Frame: id, Offset: frameStart})
			frame = BinaryFrame{FrameHeader: header, Data: fr.bytesToEnd()}
		} else {
			frame, err = dec(fr, header)
			if err != nil {
				if policy.StrictFrames {
					return nil, err
				}
				diag.Report(Diagnostic{Kind: "skipped_frame", Frame: id, Offset: frameStart, Reason: err.Error()})
				continue
			}
		}
		frames[id] = append(frames[id], frame)
	}

	return &Tag{Version: V2_3, Flags: flags, ExtHeader: ext, Frames: frames}, nil
}
