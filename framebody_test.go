package id3

import "testing"

func TestDecodeTextFrameSingleValue(t *testing.T) {
	body := newReader(append([]byte{byte(EncodingISO88591)}, []byte("Title")...))
	f, err := decodeTextFrame(body, FrameHeader{id: "TIT2"}, false)
	if err != nil {
		t.Fatal(err)
	}
	tf := f.(TextFrame)
	if tf.Text != "Title" {
		t.Errorf("got %q, want %q", tf.Text, "Title")
	}
	if tf.Values != nil {
		t.Errorf("expected nil Values for a single-value frame, got %v", tf.Values)
	}
}

func TestDecodeTextFrameMultiValue(t *testing.T) {
	raw := append([]byte{byte(EncodingISO88591)}, []byte("a\x00b")...)
	body := newReader(raw)
	f, err := decodeTextFrame(body, FrameHeader{id: "TCOM"}, true)
	if err != nil {
		t.Fatal(err)
	}
	tf := f.(TextFrame)
	if len(tf.Values) != 2 || tf.Values[0] != "a" || tf.Values[1] != "b" {
		t.Errorf("got %v, want [a b]", tf.Values)
	}
	if tf.Text != "a" {
		t.Errorf("got %q, want Text aliasing the first value", tf.Text)
	}
}

func TestDecodeInvolvedPeopleFrameTrailingKeyIsMalformed(t *testing.T) {
	raw := append([]byte{byte(EncodingISO88591)}, []byte("producer\x00")...)
	body := newReader(raw)
	_, err := decodeInvolvedPeopleFrame(body, FrameHeader{id: "IPLS"})
	if err == nil {
		t.Fatal("expected an error for a trailing unpaired key")
	}
}

func TestDecodeInvolvedPeopleFramePairs(t *testing.T) {
	raw := append([]byte{byte(EncodingISO88591)}, []byte("producer\x00Alice\x00")...)
	body := newReader(raw)
	f, err := decodeInvolvedPeopleFrame(body, FrameHeader{id: "IPLS"})
	if err != nil {
		t.Fatal(err)
	}
	ipf := f.(InvolvedPeopleFrame)
	if len(ipf.People) != 1 || ipf.People[0].Role != "producer" || ipf.People[0].Person != "Alice" {
		t.Errorf("got %v", ipf.People)
	}
}

func TestDecodeUniqueFileIdentifierFrameEmptyOwnerIsMalformed(t *testing.T) {
	raw := []byte{0, 1, 2, 3}
	body := newReader(raw)
	_, err := decodeUniqueFileIdentifierFrame(body, FrameHeader{id: "UFID"})
	if err == nil {
		t.Fatal("expected an error for an empty owner")
	}
}

func TestDecodePictureFrameV2x(t *testing.T) {
	raw := append([]byte{byte(EncodingISO88591)}, []byte("image/png\x00")...)
	raw = append(raw, byte(PictureCoverFront))
	raw = append(raw, []byte("cover\x00")...)
	raw = append(raw, []byte{0xDE, 0xAD, 0xBE, 0xEF}...)
	f, err := decodePictureFrameV2x(newReader(raw), FrameHeader{id: "APIC"})
	if err != nil {
		t.Fatal(err)
	}
	pf := f.(PictureFrame)
	if pf.MIMEType != "image/png" {
		t.Errorf("got %q, want %q", pf.MIMEType, "image/png")
	}
	if pf.PictureType != PictureCoverFront {
		t.Errorf("got %v, want %v", pf.PictureType, PictureCoverFront)
	}
	if pf.Description != "cover" {
		t.Errorf("got %q, want %q", pf.Description, "cover")
	}
	if len(pf.Data) != 4 {
		t.Errorf("got %d bytes of image data, want 4", len(pf.Data))
	}
}

func TestDecodeVolumeAdjustFrameRejectsIllegalFlagBits(t *testing.T) {
	raw := []byte{0xFF, 8, 0, 0}
	_, err := decodeVolumeAdjustFrame(V2_3)(newReader(raw), FrameHeader{id: "RVAD"})
	if err == nil {
		t.Fatal("expected an error for illegal increment flag bits")
	}
}

func TestDecodeVolumeAdjustFrameRightLeft(t *testing.T) {
	raw := []byte{0x00, 8, 0x10, 0x20}
	f, err := decodeVolumeAdjustFrame(V2_3)(newReader(raw), FrameHeader{id: "RVAD"})
	if err != nil {
		t.Fatal(err)
	}
	vf := f.(VolumeAdjustFrame)
	if vf.RightDelta != 0x10 || vf.LeftDelta != 0x20 {
		t.Errorf("got right=%d left=%d, want right=16 left=32", vf.RightDelta, vf.LeftDelta)
	}
	if vf.PeakRight != nil {
		t.Errorf("expected no peak fields, got %v", vf.PeakRight)
	}
}
