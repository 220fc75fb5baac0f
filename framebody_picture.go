package id3

// PictureFrame is the body of APIC (v2.3/v2.4) or PIC (v2.2). The two
// dialects differ only in how the image format is spelled: v2.2 packs
// it into a fixed three-character code, v2.3/v2.4 use a
// NUL-terminated MIME string.
type PictureFrame struct {
	FrameHeader
	Encoding    Encoding
	MIMEType    string
	PictureType PictureType
	Description string
	Data        []byte
}

func (f PictureFrame) Value() string { return string(f.Data) }

func decodePictureFrameV22(body *reader, header FrameHeader) (Frame, error) {
	encByte, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	enc := Encoding(encByte)

	format, err := body.stringN(3, nil)
	if err != nil {
		return nil, err
	}
	picType, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	desc, err := body.stringUntilNull(enc)
	if err != nil {
		return nil, err
	}

	return PictureFrame{
		FrameHeader: header,
		Encoding:    enc,
		MIMEType:    format,
		PictureType: PictureType(picType),
		Description: desc,
		Data:        body.bytesToEnd(),
	}, nil
}

func decodePictureFrameV2x(body *reader, header FrameHeader) (Frame, error) {
	encByte, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	enc := Encoding(encByte)

	mime, err := body.stringUntilNull(EncodingISO88591)
	if err != nil {
		return nil, err
	}
	picType, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	desc, err := body.stringUntilNull(enc)
	if err != nil {
		return nil, err
	}

	return PictureFrame{
		FrameHeader: header,
		Encoding:    enc,
		MIMEType:    mime,
		PictureType: PictureType(picType),
		Description: desc,
		Data:        body.bytesToEnd(),
	}, nil
}

// EncapsulatedObjectFrame is the body of GEOB: an arbitrary named
// file embedded in the tag. Per spec.md's Design Notes (resolving
// inconsistent handling across the sources this decoder is grounded
// on), the MIME type is always ISO-8859-1; the filename and
// description use the frame's declared encoding.
type EncapsulatedObjectFrame struct {
	FrameHeader
	Encoding    Encoding
	MIMEType    string
	Filename    string
	Description string
	Data        []byte
}

func (f EncapsulatedObjectFrame) Value() string { return string(f.Data) }

func decodeEncapsulatedObjectFrame(body *reader, header FrameHeader) (Frame, error) {
	encByte, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	enc := Encoding(encByte)

	mime, err := body.stringUntilNull(EncodingISO88591)
	if err != nil {
		return nil, err
	}
	filename, err := body.stringUntilNull(enc)
	if err != nil {
		return nil, err
	}
	desc, err := body.stringUntilNull(enc)
	if err != nil {
		return nil, err
	}

	return EncapsulatedObjectFrame{
		FrameHeader: header,
		Encoding:    enc,
		MIMEType:    mime,
		Filename:    filename,
		Description: desc,
		Data:        body.bytesToEnd(),
	}, nil
}
