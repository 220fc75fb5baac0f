package id3

// decodeV24 decodes an ID3v2.4 tag: a 10-byte header, an optional
// extended header, and a flat run of frame headers (4-byte
// identifier, 4-byte synch-safe size, 2-byte flag word) each followed
// by that many bytes of body, until padding (four NUL bytes where an
// identifier is expected) or the declared tag size is reached. A
// frame whose own Unsync flag is set is resynced individually, unless
// the whole tag was already resynced at the header level.
func decodeV24(buf []byte, policy Policy, diag Diagnostics) (*Tag, error) {
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
	if major != 4 {
		return nil, ErrUnsupportedVersion{Major: major, Revision: revision}
	}
	flagByte, err := r.byteVal()
	if err != nil {
		return nil, err
	}
	if flagByte & ^byte(0xF0) != 0 {
		return nil, ErrMalformedHeader{Reason: "illegal header flag bits for ID3v2.4"}
	}
	flags := HeaderFlags(flagByte)

	size, err := r.synchSafeInt(4)
	if err != nil {
		return nil, err
	}
	headerEnd := r.pos
	tagEnd := min(len(buf), headerEnd+size)

	tagWasUnsynced := flags.Unsynchronisation()
	if tagWasUnsynced {
		resynced := Resync(buf[headerEnd:tagEnd])
		spliced := append(append([]byte{}, buf[:headerEnd]...), resynced...)
		r.update(spliced)
		tagEnd = len(spliced)
	}

	var ext ExtHeader
	if flags.ExtendedHeader() {
		extSize, err := r.synchSafeInt(4)
		if err != nil {
			return nil, err
		}
		extFlagByte, err := r.byteVal()
		if err != nil {
			return nil, err
		}

		var flagData [][]byte
		for bit := 0x80; bit > 0; bit >>= 1 {
			if int(extFlagByte)&bit == 0 {
				continue
			}
			n, err := r.byteVal()
			if err != nil {
				return nil, err
			}
			data, err := r.bytes(int(n))
			if err != nil {
				return nil, err
			}
			flagData = append(flagData, data)
		}

		ext = ExtHeaderV24{Size: extSize, Flags: extFlagByte, FlagData: flagData}
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

		bodySize, err := r.synchSafeInt(4)
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

		if !tagWasUnsynced && rawFlags&0x0002 != 0 {
			bodyBytes = Resync(bodyBytes)
		}

		fr := newReader(bodyBytes)
		fflags, err := parseFrameFlagsV24(uint16(rawFlags), fr)
		if err != nil {
			if policy.StrictFrames {
				return nil, err
			}
			diag.Report(Diagnostic{Kind: "skipped_frame", Frame: id, Offset: frameStart, Reason: err.Error()})
			continue
		}
		header := FrameHeader{id: id, flags: fflags}

		dec, ok := lookupFrameDecoder(V2_4, id)
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

	return &Tag{Version: V2_4, Flags: flags, ExtHeader: ext, Frames: frames}, nil
}
