package id3

// BinaryFrame is the fallback body for frames whose payload is opaque
// to this package (MCDI, SYTC, USER, SEEK, SIGN, ASPI, and any other
// identifier whose structural decoding isn't worth modelling
// separately): the raw bytes, untouched.
type BinaryFrame struct {
	FrameHeader
	Data []byte
}

func (f BinaryFrame) Value() string { return string(f.Data) }

func decodeBinaryFrame(body *reader, header FrameHeader) (Frame, error) {
	return BinaryFrame{FrameHeader: header, Data: body.bytesToEnd()}, nil
}

// TimestampFrame is the body of ETCO (event timing codes) and POSS
// (position synchronisation): a one-byte timestamp-format indicator
// followed by opaque data whose interpretation depends on that
// format.
type TimestampFrame struct {
	FrameHeader
	TimestampType byte
	Data          []byte
}

func (f TimestampFrame) Value() string { return string(f.Data) }

func decodeTimestampFrame(body *reader, header FrameHeader) (Frame, error) {
	t, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	return TimestampFrame{FrameHeader: header, TimestampType: t, Data: body.bytesToEnd()}, nil
}

// PrivateFrame is the body of a PRIV frame: an owner identifier
// (usually a reverse-DNS string) and an opaque payload meaningful
// only to that owner.
type PrivateFrame struct {
	FrameHeader
	Owner string
	Data  []byte
}

func (f PrivateFrame) Value() string { return string(f.Data) }

func decodePrivateFrame(body *reader, header FrameHeader) (Frame, error) {
	owner, err := body.stringUntilNull(EncodingISO88591)
	if err != nil {
		return nil, err
	}
	return PrivateFrame{FrameHeader: header, Owner: owner, Data: body.bytesToEnd()}, nil
}

// UniqueFileIdentifierFrame is the body of UFID (v2.3/v2.4) or UFI
// (v2.2): a mandatory non-empty owner and an opaque identifier.
type UniqueFileIdentifierFrame struct {
	FrameHeader
	Owner      string
	Identifier []byte
}

func (f UniqueFileIdentifierFrame) Value() string { return string(f.Identifier) }

func decodeUniqueFileIdentifierFrame(body *reader, header FrameHeader) (Frame, error) {
	owner, err := body.stringUntilNull(EncodingISO88591)
	if err != nil {
		return nil, err
	}
	if owner == "" {
		return nil, ErrMalformed{Frame: header.id, Reason: "empty owner"}
	}
	return UniqueFileIdentifierFrame{FrameHeader: header, Owner: owner, Identifier: body.bytesToEnd()}, nil
}

// EncryptedMetaFrame is the body of CRM, an ID3v2.2-only frame that
// wraps an encrypted copy of one or more other frames.
type EncryptedMetaFrame struct {
	FrameHeader
	Owner       string
	Explanation string
	Data        []byte
}

func (f EncryptedMetaFrame) Value() string { return string(f.Data) }

func decodeEncryptedMetaFrame(body *reader, header FrameHeader) (Frame, error) {
	owner, err := body.stringUntilNull(EncodingISO88591)
	if err != nil {
		return nil, err
	}
	if owner == "" {
		return nil, ErrMalformed{Frame: header.id, Reason: "empty owner"}
	}
	explanation, err := body.stringUntilNull(EncodingISO88591)
	if err != nil {
		return nil, err
	}
	return EncryptedMetaFrame{FrameHeader: header, Owner: owner, Explanation: explanation, Data: body.bytesToEnd()}, nil
}

// AudioEncryptionFrame is the body of AENC (v2.3/v2.4) or CRA (v2.2):
// an owner, an optional unencrypted preview window into the audio
// data, and the encrypted payload.
type AudioEncryptionFrame struct {
	FrameHeader
	Owner         string
	PreviewStart  uint16
	PreviewLength uint16
	Data          []byte
}

func (f AudioEncryptionFrame) Value() string { return string(f.Data) }

func decodeAudioEncryptionFrame(body *reader, header FrameHeader) (Frame, error) {
	owner, err := body.stringUntilNull(EncodingISO88591)
	if err != nil {
		return nil, err
	}
	if owner == "" {
		return nil, ErrMalformed{Frame: header.id, Reason: "empty owner"}
	}
	start, err := body.intN(2)
	if err != nil {
		return nil, err
	}
	length, err := body.intN(2)
	if err != nil {
		return nil, err
	}
	return AudioEncryptionFrame{
		FrameHeader:   header,
		Owner:         owner,
		PreviewStart:  uint16(start),
		PreviewLength: uint16(length),
		Data:          body.bytesToEnd(),
	}, nil
}

// LinkedFrame is the body of LINK (v2.3/v2.4) or LNK (v2.2): a
// reference to a frame in another tag, given as that frame's
// identifier, the URL of the tag containing it, and any additional ID
// strings the linked frame's own schema requires.
type LinkedFrame struct {
	FrameHeader
	LinkedFrameID string
	URL           string
	IDs           []string
}

func (f LinkedFrame) Value() string { return f.URL }

func decodeLinkedFrame(idLen int) frameDecoder {
	return func(body *reader, header FrameHeader) (Frame, error) {
		linkedID, err := body.stringN(idLen, nil)
		if err != nil {
			return nil, err
		}
		url, err := body.stringUntilNull(EncodingISO88591)
		if err != nil {
			return nil, err
		}
		var ids []string
		if body.hasMore() {
			rest, err := body.stringUntilEnd(EncodingISO88591)
			if err != nil {
				return nil, err
			}
			ids = splitOnNul(rest)
		}
		return LinkedFrame{FrameHeader: header, LinkedFrameID: linkedID, URL: url, IDs: ids}, nil
	}
}

// EncryptionRegistrationFrame is the body of ENCR: an owner
// identifier for an encryption method, mapped to a symbol used
// elsewhere in the tag to refer to it.
type EncryptionRegistrationFrame struct {
	FrameHeader
	Owner        string
	MethodSymbol byte
	Data         []byte
}

func (f EncryptionRegistrationFrame) Value() string { return f.Owner }

func decodeEncryptionRegistrationFrame(body *reader, header FrameHeader) (Frame, error) {
	owner, err := body.stringUntilNull(EncodingISO88591)
	if err != nil {
		return nil, err
	}
	symbol, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	return EncryptionRegistrationFrame{FrameHeader: header, Owner: owner, MethodSymbol: symbol, Data: body.bytesToEnd()}, nil
}

// GroupRegistrationFrame is the body of GRID: an owner identifier for
// a frame grouping, mapped to a symbol frames reference via their
// GroupID flag payload.
type GroupRegistrationFrame struct {
	FrameHeader
	Owner       string
	GroupSymbol byte
	Data        []byte
}

func (f GroupRegistrationFrame) Value() string { return f.Owner }

func decodeGroupRegistrationFrame(body *reader, header FrameHeader) (Frame, error) {
	owner, err := body.stringUntilNull(EncodingISO88591)
	if err != nil {
		return nil, err
	}
	symbol, err := body.byteVal()
	if err != nil {
		return nil, err
	}
	return GroupRegistrationFrame{FrameHeader: header, Owner: owner, GroupSymbol: symbol, Data: body.bytesToEnd()}, nil
}

func splitOnNul(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
