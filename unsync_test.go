package id3

import (
	"bytes"
	"testing"
)

func TestResyncRemovesStuffingByte(t *testing.T) {
	in := []byte{0x01, 0xFF, 0x00, 0x02}
	want := []byte{0x01, 0xFF, 0x02}
	got := Resync(in)
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResyncLeavesOrdinaryBytesAlone(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03}
	got := Resync(in)
	if !bytes.Equal(got, in) {
		t.Errorf("got %v, want %v", got, in)
	}
}

func TestResyncTrailingFF(t *testing.T) {
	in := []byte{0x01, 0xFF}
	got := Resync(in)
	if !bytes.Equal(got, in) {
		t.Errorf("got %v, want %v", got, in)
	}
}

func TestResyncIsIdempotent(t *testing.T) {
	in := []byte{0x01, 0xFF, 0x00, 0xFF, 0x00, 0x02}
	once := Resync(in)
	twice := Resync(once)
	if !bytes.Equal(once, twice) {
		t.Errorf("resyncing twice changed the result: %v vs %v", once, twice)
	}
}
