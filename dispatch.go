package id3

// frameDecoder decodes a frame body reader, positioned at the start of
// the body (after the frame header and any flag payload), into a
// concrete Frame. header carries the already-decoded identifier and
// flags.
type frameDecoder func(body *reader, header FrameHeader) (Frame, error)

func isTextFrameID(id string) bool {
	return len(id) > 0 && id[0] == 'T'
}

func isURLFrameID(id string) bool {
	return len(id) > 0 && id[0] == 'W'
}

func textDecoder(multiValue bool) frameDecoder {
	return func(body *reader, header FrameHeader) (Frame, error) {
		return decodeTextFrame(body, header, multiValue)
	}
}

// v22FrameTable holds the ID3v2.2 three-character identifiers whose
// decoding isn't covered by the generic "T*"/"W*" prefix rule.
var v22FrameTable = map[string]frameDecoder{
	"BUF": decodeBufferRecommendationFrame,
	"CNT": decodePlayCountFrame,
	"COM": decodeLangDescTextFrame,
	"CRA": decodeAudioEncryptionFrame,
	"CRM": decodeEncryptedMetaFrame,
	"ETC": decodeTimestampFrame,
	"EQU": decodeEqualisationFrame,
	"GEO": decodeEncapsulatedObjectFrame,
	"IPL": decodeInvolvedPeopleFrame,
	"LNK": decodeLinkedFrame(3),
	"MCI": decodeBinaryFrame,
	"MLL": decodeMpegLookupFrame,
	"PIC": decodePictureFrameV22,
	"POP": decodePopularimeterFrame,
	"REV": decodeReverbFrame,
	"RVA": decodeVolumeAdjustFrame(V2_2),
	"SLT": decodeSyncedLyricsFrame,
	"STC": decodeBinaryFrame,
	"TXX": decodeUserTextFrame,
	"UFI": decodeUniqueFileIdentifierFrame,
	"ULT": decodeLangDescTextFrame,
	"WXX": decodeUserURLFrame,
}

// v23FrameTable holds the ID3v2.3 four-character identifiers whose
// decoding isn't covered by the generic prefix rule.
var v23FrameTable = map[string]frameDecoder{
	"AENC": decodeAudioEncryptionFrame,
	"APIC": decodePictureFrameV2x,
	"COMM": decodeLangDescTextFrame,
	"COMR": decodeCommercialFrame,
	"ENCR": decodeEncryptionRegistrationFrame,
	"EQUA": decodeEqualisationFrame,
	"ETCO": decodeTimestampFrame,
	"GEOB": decodeEncapsulatedObjectFrame,
	"GRID": decodeGroupRegistrationFrame,
	"IPLS": decodeInvolvedPeopleFrame,
	"LINK": decodeLinkedFrame(4),
	"MCDI": decodeBinaryFrame,
	"MLLT": decodeMpegLookupFrame,
	"OWNE": decodeOwnershipFrame,
	"PCNT": decodePlayCountFrame,
	"POPM": decodePopularimeterFrame,
	"POSS": decodeTimestampFrame,
	"PRIV": decodePrivateFrame,
	"RBUF": decodeBufferRecommendationFrame,
	"RVAD": decodeVolumeAdjustFrame(V2_3),
	"RVRB": decodeReverbFrame,
	"SYLT": decodeSyncedLyricsFrame,
	"SYTC": decodeBinaryFrame,
	"TXXX": decodeUserTextFrame,
	"UFID": decodeUniqueFileIdentifierFrame,
	"USER": decodeBinaryFrame,
	"USLT": decodeLangDescTextFrame,
	"WXXX": decodeUserURLFrame,
}

// v24FrameTable holds the ID3v2.4 four-character identifiers whose
// decoding isn't covered by the generic prefix rule, including the
// frames v2.4 renamed or reshaped relative to v2.3 (RVA2, EQU2) and
// TIPL/TMCL, which despite their "T" prefix are role/person pair
// lists rather than text frames.
var v24FrameTable = map[string]frameDecoder{
	"AENC": decodeAudioEncryptionFrame,
	"APIC": decodePictureFrameV2x,
	"ASPI": decodeBinaryFrame,
	"COMM": decodeLangDescTextFrame,
	"COMR": decodeCommercialFrame,
	"ENCR": decodeEncryptionRegistrationFrame,
	"EQU2": decodeEqualisationFrameV24,
	"ETCO": decodeTimestampFrame,
	"GEOB": decodeEncapsulatedObjectFrame,
	"GRID": decodeGroupRegistrationFrame,
	"LINK": decodeLinkedFrame(4),
	"MCDI": decodeBinaryFrame,
	"MLLT": decodeMpegLookupFrame,
	"OWNE": decodeOwnershipFrame,
	"PCNT": decodePlayCountFrame,
	"POPM": decodePopularimeterFrame,
	"POSS": decodeTimestampFrame,
	"PRIV": decodePrivateFrame,
	"RBUF": decodeBufferRecommendationFrame,
	"RVA2": decodeVolumeAdjustFrameV24,
	"RVRB": decodeReverbFrame,
	"SEEK": decodeBinaryFrame,
	"SIGN": decodeBinaryFrame,
	"SYLT": decodeSyncedLyricsFrame,
	"TIPL": decodeInvolvedPeopleFrame,
	"TMCL": decodeInvolvedPeopleFrame,
	"TXXX": decodeUserTextFrame,
	"UFID": decodeUniqueFileIdentifierFrame,
	"USER": decodeBinaryFrame,
	"USLT": decodeLangDescTextFrame,
	"WXXX": decodeUserURLFrame,
}

// lookupFrameDecoder resolves id to a decoder for the given version.
// An explicit table entry always wins over the generic "T*"/"W*"
// prefix rule (needed for TIPL/TMCL, which are pair-list frames
// despite their identifier starting with T); ids matching neither
// yield ok == false, meaning the caller should fall back to
// BinaryFrame and surface a diagnostic.
func lookupFrameDecoder(version Version, id string) (frameDecoder, bool) {
	var table map[string]frameDecoder
	switch version {
	case V2_2:
		table = v22FrameTable
	case V2_3:
		table = v23FrameTable
	case V2_4:
		table = v24FrameTable
	}

	if dec, ok := table[id]; ok {
		return dec, true
	}
	if isTextFrameID(id) {
		return textDecoder(version == V2_4), true
	}
	if isURLFrameID(id) {
		return decodeURLFrame, true
	}
	return nil, false
}
