package id3

import (
	"strconv"
	"strings"
)

// decodeV1 decodes the 128-byte ID3v1/ID3v1.1 trailer at the end of
// buf. It never fails partway through a record — a short or malformed
// trailer yields ErrMissingIdentifier, and every subsequent field is
// read unconditionally once the magic is confirmed.
//
// The trailer's individual fields are surfaced under the same
// canonical identifiers ID3v2 uses (TIT2, TPE1, ...) so a caller can
// read Tag.Frames the same way regardless of which dialect it came
// from.
func decodeV1(buf []byte) (*Tag, error) {
	if len(buf) < 128 {
		return nil, ErrMissingIdentifier{Magic: buf}
	}
	trailer := buf[len(buf)-128:]
	if trailer[0] != 'T' || trailer[1] != 'A' || trailer[2] != 'G' {
		return nil, ErrMissingIdentifier{Magic: trailer[:3]}
	}

	r := newReader(trailer[3:])
	iso := EncodingISO88591

	songname, _ := r.stringN(30, &iso)
	artist, _ := r.stringN(30, &iso)
	album, _ := r.stringN(30, &iso)
	year, _ := r.stringN(4, &iso)
	commentBytes, _ := r.bytes(30)
	genreByte, _ := r.byteVal()

	v1 := V1Frame{
		Songname: trimNul(songname),
		Artist:   trimNul(artist),
		Album:    trimNul(album),
		Year:     trimNul(year),
		Genre:    genreByte,
	}

	version := V1
	if commentBytes[28] == 0 && commentBytes[29] != 0 {
		comment, _ := decodeText(trimNulBytes(commentBytes[:28]), iso)
		v1.Comment = comment
		track := int(commentBytes[29])
		v1.Track = &track
		version = V1_1
	} else {
		comment, _ := decodeText(trimNulBytes(commentBytes), iso)
		v1.Comment = comment
	}

	frames := FrameMap{}
	addText := func(id, text string) {
		if text == "" {
			return
		}
		frames[id] = []Frame{TextFrame{FrameHeader: FrameHeader{id: id}, Encoding: iso, Text: text}}
	}
	addText("TIT2", v1.Songname)
	addText("TPE1", v1.Artist)
	addText("TALB", v1.Album)
	addText("TYER", v1.Year)
	addText("COMM", v1.Comment)
	addText("TCON", v1.GenreName())
	if v1.Track != nil {
		frames["TRCK"] = []Frame{TextFrame{
			FrameHeader: FrameHeader{id: "TRCK"},
			Encoding:    iso,
			Text:        strconv.Itoa(*v1.Track),
		}}
	}

	return &Tag{Version: version, Frames: frames}, nil
}

func trimNul(s string) string {
	return strings.TrimRight(s, "\x00")
}

func trimNulBytes(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return b[:end]
}
