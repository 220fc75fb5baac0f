package id3

import "testing"

func buildV22Frame(id string, body []byte) []byte {
	out := []byte(id)
	out = append(out, intBytes(len(body), 3)...)
	out = append(out, body...)
	return out
}

func buildV22Tag(flags byte, frames []byte) []byte {
	out := []byte("ID3")
	out = append(out, 2, 0, flags)
	out = append(out, synchSafeBytes(len(frames), 4)...)
	out = append(out, frames...)
	return out
}

func TestDecodeV22SimpleTitle(t *testing.T) {
	titleBody := append([]byte{byte(EncodingISO88591)}, []byte("Hello")...)
	frames := buildV22Frame("TT2", titleBody)
	buf := buildV22Tag(0, frames)

	tag, err := Decode(buf, V2_2)
	if err != nil {
		t.Fatal(err)
	}
	if got := tag.Frames.First("TT2").Value(); got != "Hello" {
		t.Errorf("got %q, want %q", got, "Hello")
	}
}

func TestDecodeV22Unsynchronised(t *testing.T) {
	titleBody := []byte{byte(EncodingISO88591), 0xFF, 'X'}
	frames := buildV22Frame("TT2", titleBody)

	// Apply the unsynchronisation scheme by hand: insert a stuffing
	// byte after the 0xFF that would otherwise look like a sync
	// marker.
	var unsynced []byte
	for i, b := range frames {
		unsynced = append(unsynced, b)
		if b == 0xFF && i+1 < len(frames) {
			unsynced = append(unsynced, 0x00)
		}
	}

	buf := buildV22Tag(0x80, unsynced)

	tag, err := Decode(buf, V2_2)
	if err != nil {
		t.Fatal(err)
	}
	got := tag.Frames.First("TT2").Value()
	want := "\xFFX"
	if got != iso88591String(want) {
		t.Errorf("got %q, want %q", got, iso88591String(want))
	}
}

func iso88591String(s string) string {
	out, _ := decodeText([]byte(s), EncodingISO88591)
	return out
}

func TestDecodeV22UnknownFrameBecomesBinary(t *testing.T) {
	frames := buildV22Frame("ZZZ", []byte{1, 2, 3})
	buf := buildV22Tag(0, frames)

	var reported []Diagnostic
	sink := diagnosticsFunc(func(d Diagnostic) { reported = append(reported, d) })

	tag, err := Decode(buf, V2_2, WithDiagnostics(sink))
	if err != nil {
		t.Fatal(err)
	}
	f := tag.Frames.First("ZZZ")
	if f == nil {
		t.Fatal("expected the unknown frame to still be present")
	}
	if _, ok := f.(BinaryFrame); !ok {
		t.Errorf("got %T, want BinaryFrame", f)
	}
	if len(reported) != 1 || reported[0].Kind != "unknown_frame" {
		t.Errorf("got %v, want a single unknown_frame diagnostic", reported)
	}
}

func TestDecodeV22IllegalHeaderFlagBits(t *testing.T) {
	buf := buildV22Tag(0x40, nil)
	_, err := Decode(buf, V2_2)
	if err == nil {
		t.Fatal("expected an error for an illegal header flag bit")
	}
}

type diagnosticsFunc func(Diagnostic)

func (f diagnosticsFunc) Report(d Diagnostic) { f(d) }
