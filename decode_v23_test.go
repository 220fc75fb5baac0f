package id3

import "testing"

func buildV23Frame(id string, flags uint16, body []byte) []byte {
	out := []byte(id)
	out = append(out, intBytes(len(body), 4)...)
	out = append(out, intBytes(int(flags), 2)...)
	out = append(out, body...)
	return out
}

func buildV23Tag(headerFlags byte, extHeader, frames []byte) []byte {
	out := []byte("ID3")
	out = append(out, 3, 0, headerFlags)
	out = append(out, synchSafeBytes(len(extHeader)+len(frames), 4)...)
	out = append(out, extHeader...)
	out = append(out, frames...)
	return out
}

func TestDecodeV23SimpleTitle(t *testing.T) {
	body := append([]byte{byte(EncodingISO88591)}, []byte("Hello")...)
	frames := buildV23Frame("TIT2", 0, body)
	buf := buildV23Tag(0, nil, frames)

	tag, err := Decode(buf, V2_3)
	if err != nil {
		t.Fatal(err)
	}
	if got := tag.Frames.First("TIT2").Value(); got != "Hello" {
		t.Errorf("got %q, want %q", got, "Hello")
	}
}

func TestDecodeV23ExtendedHeader(t *testing.T) {
	ext := []byte{}
	ext = append(ext, intBytes(6, 4)...)  // ext_size
	ext = append(ext, intBytes(0, 2)...)  // ext_flags: no CRC
	ext = append(ext, intBytes(0, 4)...)  // padding_size

	body := append([]byte{byte(EncodingISO88591)}, []byte("Hi")...)
	frames := buildV23Frame("TIT2", 0, body)
	buf := buildV23Tag(0x40, ext, frames)

	tag, err := Decode(buf, V2_3)
	if err != nil {
		t.Fatal(err)
	}
	if tag.ExtHeader == nil {
		t.Fatal("expected a non-nil extended header")
	}
	extHeader := tag.ExtHeader.(ExtHeaderV23)
	if extHeader.FrameCRC != nil {
		t.Error("expected no CRC when the CRC flag bit is unset")
	}
	if got := tag.Frames.First("TIT2").Value(); got != "Hi" {
		t.Errorf("got %q, want %q", got, "Hi")
	}
}

func TestDecodeV23CompressedFlagConsumesDecompressedSize(t *testing.T) {
	body := intBytes(1, 4) // decompressed size, part of the flag payload
	body = append(body, byte(EncodingISO88591))
	body = append(body, []byte("x")...)
	frames := buildV23Frame("TIT2", 0x0080, body)
	buf := buildV23Tag(0, nil, frames)

	tag, err := Decode(buf, V2_3)
	if err != nil {
		t.Fatal(err)
	}
	f := tag.Frames.First("TIT2")
	if !f.Header().Flags().Compressed {
		t.Error("expected the Compressed flag to be set")
	}
	if f.Value() != "x" {
		t.Errorf("got %q, want %q", f.Value(), "x")
	}
}

func TestDecodeV23PaddingStopsFrameScan(t *testing.T) {
	body := append([]byte{byte(EncodingISO88591)}, []byte("Hi")...)
	frames := buildV23Frame("TIT2", 0, body)
	frames = append(frames, make([]byte, 20)...) // padding
	buf := buildV23Tag(0, nil, frames)

	tag, err := Decode(buf, V2_3)
	if err != nil {
		t.Fatal(err)
	}
	if len(tag.Frames) != 1 {
		t.Errorf("got %d frame ids, want 1", len(tag.Frames))
	}
}
