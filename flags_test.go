package id3

import "testing"

func TestParseFrameFlagsV23Compressed(t *testing.T) {
	body := intBytes(42, 4) // decompressed size
	r := newReader(body)
	f, err := parseFrameFlagsV23(0x0080, r)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Compressed {
		t.Error("expected Compressed to be true")
	}
	if f.DecompressedSize == nil || *f.DecompressedSize != 42 {
		t.Errorf("got %v, want 42", f.DecompressedSize)
	}
	if f.Encrypted || f.GroupID != nil {
		t.Error("no other flag bits were set; no other payload should be read")
	}
}

func TestParseFrameFlagsV23NoPayloadWhenNoBitsSet(t *testing.T) {
	r := newReader(nil)
	f, err := parseFrameFlagsV23(0x0000, r)
	if err != nil {
		t.Fatal(err)
	}
	if f.Compressed || f.Encrypted || f.Grouped {
		t.Error("expected every flag to be false")
	}
}

func TestParseFrameFlagsV24GroupAndEncryption(t *testing.T) {
	body := []byte{0x05, 0x02} // group id, encryption method
	r := newReader(body)
	f, err := parseFrameFlagsV24(0x0040|0x0004, r)
	if err != nil {
		t.Fatal(err)
	}
	if f.GroupID == nil || *f.GroupID != 0x05 {
		t.Errorf("got %v, want 0x05", f.GroupID)
	}
	if f.EncryptionMethod == nil || *f.EncryptionMethod != 0x02 {
		t.Errorf("got %v, want 0x02", f.EncryptionMethod)
	}
	if f.DataLengthIndicator {
		t.Error("DataLengthIndicator bit was not set")
	}
}

func TestParseFrameFlagsV24DataLengthIndicator(t *testing.T) {
	body := synchSafeBytes(128, 4)
	r := newReader(body)
	f, err := parseFrameFlagsV24(0x0001, r)
	if err != nil {
		t.Fatal(err)
	}
	if f.DataLength == nil || *f.DataLength != 128 {
		t.Errorf("got %v, want 128", f.DataLength)
	}
}
