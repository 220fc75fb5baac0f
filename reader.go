package id3

// reader is a cursor over an immutable byte slice. It never copies
// unless a caller explicitly retains a returned slice past the
// reader's lifetime; every primitive here returns a view into the
// backing buffer, following spec.md's "prefer views into the input"
// guidance for potentially large binary bodies.
//
// A reader is not safe for concurrent use — the cursor is mutable
// local state, exactly the "no process-wide state, cursor local to
// each parse call" design the teacher's original code lacked and
// spec.md's concurrency section requires.
type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) hasMore() bool {
	return r.pos < len(r.buf)
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

// atOrBeyond reports whether the cursor has reached or passed the
// given absolute offset into the buffer.
func (r *reader) atOrBeyond(offset int) bool {
	return r.pos >= offset
}

// update replaces the backing buffer while leaving the cursor
// position untouched. This exists because whole-tag unsynchronisation
// is reversed only after the header has already been read from the
// original bytes: the dispatcher reads the 10-byte header, resyncs
// everything after it, splices the two back together, and calls
// update so the cursor — still sitting right after the header —
// keeps working against the desynced buffer.
func (r *reader) update(buf []byte) {
	r.buf = buf
}

func (r *reader) advance(k int) error {
	if r.pos+k > len(r.buf) || k < 0 {
		return ErrUnderflow{Need: k, Have: r.remaining()}
	}
	r.pos += k
	return nil
}

func (r *reader) peek() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, ErrUnderflow{Need: 1, Have: 0}
	}
	return r.buf[r.pos], nil
}

// byteVal reads a single byte and advances the cursor. Named byteVal,
// not byte, because byte is a predeclared type identifier.
func (r *reader) byteVal() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, ErrUnderflow{Need: 1, Have: 0}
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// bytes returns a view of the next n bytes and advances the cursor.
func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, ErrUnderflow{Need: n, Have: r.remaining()}
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// bytesToEnd returns a view of every remaining byte and moves the
// cursor to the end.
func (r *reader) bytesToEnd() []byte {
	b := r.buf[r.pos:]
	r.pos = len(r.buf)
	return b
}

// intN reads a big-endian unsigned integer over n bytes.
func (r *reader) intN(n int) (int, error) {
	b, err := r.bytes(n)
	if err != nil {
		return 0, err
	}
	v := 0
	for _, c := range b {
		v = v<<8 | int(c)
	}
	return v, nil
}

// synchSafeInt reads a synch-safe integer over n bytes: each byte
// contributes only its low 7 bits. The reader does not verify that
// the high bit of each byte is actually zero — spec.md 4.1 leaves
// that unenforced by design.
func (r *reader) synchSafeInt(n int) (int, error) {
	b, err := r.bytes(n)
	if err != nil {
		return 0, err
	}
	v := 0
	for _, c := range b {
		v = v<<7 | int(c&0x7F)
	}
	return v, nil
}

// intToEnd reads a big-endian integer over every remaining byte.
func (r *reader) intToEnd() int {
	b := r.bytesToEnd()
	v := 0
	for _, c := range b {
		v = v<<8 | int(c)
	}
	return v
}

// stringN reads n raw bytes and decodes them. A nil encoding decodes
// as plain ASCII (the raw bytes reinterpreted as a Go string, used
// for frame identifiers, language codes, and other fields the spec
// declares ASCII-only).
func (r *reader) stringN(n int, enc *Encoding) (string, error) {
	b, err := r.bytes(n)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return string(b), nil
	}
	return decodeText(b, *enc)
}

// terminatorWidth reports how many 0x00 bytes terminate a string in
// the given encoding: one for ISO-8859-1/UTF-8, two (16-bit aligned)
// for the UTF-16 variants.
func terminatorWidth(enc Encoding) int {
	switch enc {
	case EncodingUTF16, EncodingUTF16BE:
		return 2
	default:
		return 1
	}
}

// findTerminator locates the offset of the next terminator for enc
// starting at pos, or -1 if none exists. For 16-bit encodings the
// search only considers pairs aligned to the string's own start (pos
// itself, stepping by 2), per spec.md 4.2's requirement to search for
// a 16-bit-aligned 0x0000, not any 0x00 byte.
func findTerminator(buf []byte, pos int, enc Encoding) int {
	if terminatorWidth(enc) == 1 {
		for i := pos; i < len(buf); i++ {
			if buf[i] == 0 {
				return i
			}
		}
		return -1
	}

	for i := pos; i+1 < len(buf); i += 2 {
		if buf[i] == 0 && buf[i+1] == 0 {
			return i
		}
	}
	return -1
}

// stringUntilNull reads bytes up to (and consumes) the terminator
// appropriate for enc, decodes the bytes before it, and leaves the
// cursor just past the terminator. It fails with ErrMalformed if no
// terminator exists before the end of the buffer.
func (r *reader) stringUntilNull(enc Encoding) (string, error) {
	end := findTerminator(r.buf, r.pos, enc)
	if end == -1 {
		return "", ErrMalformed{Reason: "unterminated string"}
	}
	s, err := decodeText(r.buf[r.pos:end], enc)
	if err != nil {
		return "", err
	}
	r.pos = end + terminatorWidth(enc)
	return s, nil
}

// stringUntilEnd decodes every remaining byte.
func (r *reader) stringUntilEnd(enc Encoding) (string, error) {
	return decodeText(r.bytesToEnd(), enc)
}

// stringsUntilEnd splits the remainder of the buffer on the
// terminator appropriate for enc and decodes each piece, used for
// v2.4's multi-valued text frames. The result always has at least one
// element, even if it is empty.
func (r *reader) stringsUntilEnd(enc Encoding) ([]string, error) {
	rest := r.bytesToEnd()
	width := terminatorWidth(enc)

	var parts [][]byte
	start := 0
	for {
		idx := findTerminator(rest, start, enc)
		if idx == -1 {
			parts = append(parts, rest[start:])
			break
		}
		parts = append(parts, rest[start:idx])
		start = idx + width
		if start >= len(rest) {
			break
		}
	}
	if len(parts) == 0 {
		parts = [][]byte{nil}
	}

	out := make([]string, len(parts))
	for i, p := range parts {
		s, err := decodeText(p, enc)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
