package id3

import "testing"

func buildV24Frame(id string, flags uint16, body []byte) []byte {
	out := []byte(id)
	out = append(out, synchSafeBytes(len(body), 4)...)
	out = append(out, intBytes(int(flags), 2)...)
	out = append(out, body...)
	return out
}

func buildV24Tag(headerFlags byte, frames []byte) []byte {
	out := []byte("ID3")
	out = append(out, 4, 0, headerFlags)
	out = append(out, synchSafeBytes(len(frames), 4)...)
	out = append(out, frames...)
	return out
}

func TestDecodeV24MultiValueText(t *testing.T) {
	body := append([]byte{byte(EncodingISO88591)}, []byte("Alice\x00Bob")...)
	frames := buildV24Frame("TCOM", 0, body)
	buf := buildV24Tag(0, frames)

	tag, err := Decode(buf, V2_4)
	if err != nil {
		t.Fatal(err)
	}
	f := tag.Frames.First("TCOM").(TextFrame)
	if len(f.Values) != 2 || f.Values[0] != "Alice" || f.Values[1] != "Bob" {
		t.Errorf("got %v, want [Alice Bob]", f.Values)
	}
}

func TestDecodeV24TIPLIsPairListNotText(t *testing.T) {
	body := append([]byte{byte(EncodingISO88591)}, []byte("engineer\x00Carol\x00")...)
	frames := buildV24Frame("TIPL", 0, body)
	buf := buildV24Tag(0, frames)

	tag, err := Decode(buf, V2_4)
	if err != nil {
		t.Fatal(err)
	}
	f := tag.Frames.First("TIPL")
	ipf, ok := f.(InvolvedPeopleFrame)
	if !ok {
		t.Fatalf("got %T, want InvolvedPeopleFrame", f)
	}
	if len(ipf.People) != 1 || ipf.People[0].Role != "engineer" || ipf.People[0].Person != "Carol" {
		t.Errorf("got %v", ipf.People)
	}
}

func TestDecodeV24PerFrameUnsync(t *testing.T) {
	raw := append([]byte{byte(EncodingISO88591)}, []byte{0xFF, 'X'}...)
	var unsynced []byte
	for i, b := range raw {
		unsynced = append(unsynced, b)
		if b == 0xFF && i+1 < len(raw) {
			unsynced = append(unsynced, 0x00)
		}
	}

	frames := buildV24Frame("TIT2", 0x0002, unsynced)
	buf := buildV24Tag(0, frames)

	tag, err := Decode(buf, V2_4)
	if err != nil {
		t.Fatal(err)
	}
	f := tag.Frames.First("TIT2")
	if !f.Header().Flags().Unsync {
		t.Error("expected the Unsync flag to be set")
	}
	want := iso88591String("\xFFX")
	if got := f.Value(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDecodeV24IllegalHeaderFlagBits(t *testing.T) {
	buf := buildV24Tag(0x08, nil)
	_, err := Decode(buf, V2_4)
	if err == nil {
		t.Fatal("expected an error for an illegal header flag bit")
	}
}
