package id3

// decodeV22 decodes an ID3v2.2 tag: a 10-byte header, no extended
// header, and a flat run of 6-byte frame headers (3-byte identifier,
// 3-byte non-synchsafe size) each followed by that many bytes of
// body, until padding (a NUL where an identifier is expected) or the
// declared tag size is reached.
func decodeV22(buf []byte, policy Policy, diag Diagnostics) (*Tag, error) {
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
	if major != 2 {
		return nil, ErrUnsupportedVersion{Major: major, Revision: revision}
	}
	flagByte, err := r.byteVal()
	if err != nil {
		return nil, err
	}
	if flagByte & ^byte(0x80) != 0 {
		return nil, ErrMalformedHeader{Reason: "illegal header flag bits for ID3v2.2"}
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

	frames := FrameMap{}
	for r.hasMore() && !r.atOrBeyond(tagEnd) {
		frameStart := r.pos
		if r.remaining() < 6 {
			break
		}
		first, err := r.peek()
		if err != nil || first == 0 {
			break // padding
		}

		idBytes, err := r.bytes(3)
		if err != nil {
			break
		}
		id := string(idBytes)

		bodySize, err := r.intN(3)
		if err != nil {
			diag.Report(Diagnostic{Kind: "skipped_frame", Frame: id, Offset: frameStart, Reason: err.Error()})
			break
		}
		bodyBytes, err := r.bytes(bodySize)
		if err != nil {
			diag.Report(Diagnostic{Kind: "skipped_frame", Frame: id, Offset: frameStart, Reason: err.Error()})
			break
		}

		header := FrameHeader{id: id}
		fr := newReader(bodyBytes)

		dec, ok := lookupFrameDecoder(V2_2, id)
		var frame Frame
		if !ok {
			diag.Report(Diagnostic{Kind: "unknown_frame", Frame: id, Offset: frameStart})
			frame = BinaryFrame{FrameHeader: header, Data: bodyBytes}
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

	return &Tag{Version: V2_2, Flags: flags, Frames: frames}, nil
}
