package id3

// Resync reverses the ID3v2 unsynchronisation scheme: it removes
// every 0x00 byte that immediately follows a 0xFF byte. It is a pure
// function over its input and returns a new slice; the input is never
// mutated.
//
// Resync is idempotent on already-synchronised data: once the 0xFF
// 0x00 pairs are gone, running it again is a no-op, since there is
// nothing left to remove.
func Resync(buf []byte) []byte {
	out := make([]byte, 0, len(buf))
	for i := 0; i < len(buf); i++ {
		out = append(out, buf[i])
		if buf[i] == 0xFF && i+1 < len(buf) && buf[i+1] == 0x00 {
			i++
		}
	}
	return out
}
