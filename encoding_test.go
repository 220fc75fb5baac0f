package id3

import "testing"

var (
	utf8TestString = "Ein etwas kürzerer Text mit wenigen Umlauten: äöüß äöüß"
	isoTestString  = []byte("Ein etwas k\xFCrzerer Text mit wenigen Umlauten: \xE4\xF6\xFC\xDF \xE4\xF6\xFC\xDF")
)

func TestUTF8ToISO88591(t *testing.T) {
	res := utf8ToISO88591(utf8TestString)
	if string(res) != string(isoTestString) {
		t.Errorf("got %q, want %q", res, isoTestString)
	}
}

func TestISO88591ToUTF8(t *testing.T) {
	res := iso88591ToUTF8(isoTestString)
	if string(res) != utf8TestString {
		t.Errorf("got %q, want %q", res, utf8TestString)
	}
}

func TestUTF16ToUTF8BigEndianBOM(t *testing.T) {
	in := []byte{0xFE, 0xFF, 0, 'J', 0, 'a'}
	got := utf16ToUTF8(in, false)
	if got != "Ja" {
		t.Errorf("got %q, want %q", got, "Ja")
	}
}

func TestUTF16ToUTF8LittleEndianBOM(t *testing.T) {
	in := []byte{0xFF, 0xFE, 'J', 0, 'a', 0}
	got := utf16ToUTF8(in, true)
	if got != "Ja" {
		t.Errorf("got %q, want %q", got, "Ja")
	}
}

func TestUTF16ToUTF8NoBOMDefaultsLittleEndian(t *testing.T) {
	in := []byte{'J', 0, 'a', 0}
	got := utf16ToUTF8(in, false)
	if got != "Ja" {
		t.Errorf("got %q, want %q", got, "Ja")
	}
}

func TestUTF16BEToUTF8NoBOM(t *testing.T) {
	in := []byte{0, 'J', 0, 'a'}
	got := utf16ToUTF8(in, true)
	if got != "Ja" {
		t.Errorf("got %q, want %q", got, "Ja")
	}
}

func TestDecodeTextEmptyInput(t *testing.T) {
	s, err := decodeText(nil, EncodingUTF8)
	if err != nil {
		t.Fatal(err)
	}
	if s != "" {
		t.Errorf("got %q, want empty string", s)
	}
}

func TestDecodeTextBadSelector(t *testing.T) {
	_, err := decodeText([]byte{1}, Encoding(9))
	if err == nil {
		t.Fatal("expected an error for a bad encoding selector")
	}
}
