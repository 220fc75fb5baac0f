package id3

// TextFrame is the body of any "T***" frame except TXXX. In v2.2/2.3
// the whole body after the encoding byte is a single value; in v2.4
// it may be several values separated by the encoding's null
// terminator, with Text aliasing the first one.
type TextFrame struct {
	FrameHeader
	Encoding Encoding
	Text     string
	Values   []string // non-nil only for v2.4
}

func (f TextFrame) Value() string { return f.Text }

func decodeTextFrame(body *reader, header FrameHeader, multiValue bool) (Frame, error) {
	encByte, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	enc := Encoding(encByte)

	f := TextFrame{FrameHeader: header, Encoding: enc}

	if multiValue {
		values, err := body.stringsUntilEnd(enc)
		if err != nil {
			return nil, err
		}
		f.Values = values
		f.Text = values[0]
		return f, nil
	}

	text, err := body.stringUntilEnd(enc)
	if err != nil {
		return nil, err
	}
	f.Text = text
	return f, nil
}

// UserTextFrame is the body of a TXXX frame: an encoding, a
// NUL-terminated description, and a trailing free-text value.
type UserTextFrame struct {
	FrameHeader
	Encoding    Encoding
	Description string
	Text        string
}

func (f UserTextFrame) Value() string { return f.Text }

func decodeUserTextFrame(body *reader, header FrameHeader) (Frame, error) {
	encByte, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	enc := Encoding(encByte)

	desc, err := body.stringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	text, err := body.stringUntilEnd(enc)
	if err != nil {
		return nil, err
	}

	return UserTextFrame{FrameHeader: header, Encoding: enc, Description: desc, Text: text}, nil
}

// URLFrame is the body of any "W***" frame except WXXX. The value is
// always ISO-8859-1, with no leading encoding byte.
type URLFrame struct {
	FrameHeader
	Text string
}

func (f URLFrame) Value() string { return f.Text }

func decodeURLFrame(body *reader, header FrameHeader) (Frame, error) {
	url, err := body.stringUntilEnd(EncodingISO88591)
	if err != nil {
		return nil, err
	}
	return URLFrame{FrameHeader: header, Text: url}, nil
}

// UserURLFrame is the body of a WXXX frame: an encoding, a
// NUL-terminated description in that encoding, and a trailing
// ISO-8859-1 URL.
type UserURLFrame struct {
	FrameHeader
	Encoding    Encoding
	Description string
	URL         string
}

func (f UserURLFrame) Value() string { return f.URL }

func decodeUserURLFrame(body *reader, header FrameHeader) (Frame, error) {
	encByte, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	enc := Encoding(encByte)

	desc, err := body.stringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	url, err := body.stringUntilEnd(EncodingISO88591)
	if err != nil {
		return nil, err
	}

	return UserURLFrame{FrameHeader: header, Encoding: enc, Description: desc, URL: url}, nil
}

// InvolvedPeoplePair is a single role/person entry of an
// InvolvedPeopleFrame (IPLS/IPL/TIPL-style data on the older
// dialects).
type InvolvedPeoplePair struct {
	Role   string
	Person string
}

// InvolvedPeopleFrame is the body of an IPLS (v2.3) or IPL (v2.2)
// frame: an encoding followed by repeated (role, person) pairs, each
// NUL-terminated, until the body is exhausted.
type InvolvedPeopleFrame struct {
	FrameHeader
	Encoding Encoding
	People   []InvolvedPeoplePair
}

func (f InvolvedPeopleFrame) Value() string {
	if len(f.People) == 0 {
		return ""
	}
	return f.People[0].Person
}

func decodeInvolvedPeopleFrame(body *reader, header FrameHeader) (Frame, error) {
	encByte, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	enc := Encoding(encByte)

	var pairs []InvolvedPeoplePair
	for body.hasMore() {
		role, err := body.stringUntilNull(enc)
		if err != nil {
			return nil, err
		}
		if !body.hasMore() {
			return nil, ErrMalformed{Frame: header.id, Reason: "trailing unpaired key in involved people list"}
		}
		person, err := body.stringUntilNull(enc)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, InvolvedPeoplePair{Role: role, Person: person})
	}

	return InvolvedPeopleFrame{FrameHeader: header, Encoding: enc, People: pairs}, nil
}

// LangDescTextFrame is the shared shape of COMM/COM (comments) and
// USLT/ULT (unsynchronised lyrics): an encoding, a 3-character
// language code, a NUL-terminated description, and a trailing
// free-text value.
type LangDescTextFrame struct {
	FrameHeader
	Encoding    Encoding
	Language    string
	Description string
	Text        string
}

func (f LangDescTextFrame) Value() string { return f.Text }

// CommentFrame is an alias kept under the teacher's own name for
// COMM/COM frames, which share LangDescTextFrame's shape exactly.
type CommentFrame = LangDescTextFrame

func decodeLangDescTextFrame(body *reader, header FrameHeader) (Frame, error) {
	encByte, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	enc := Encoding(encByte)

	lang, err := body.stringN(3, nil)
	if err != nil {
		return nil, err
	}
	desc, err := body.stringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	text, err := body.stringUntilEnd(enc)
	if err != nil {
		return nil, err
	}

	return LangDescTextFrame{
		FrameHeader: header,
		Encoding:    enc,
		Language:    lang,
		Description: desc,
		Text:        text,
	}, nil
}
