package id3

// FrameHeader is embedded in every concrete frame body type. It
// carries the frame's identifier and, for v2.3/v2.4, its decoded
// flags. v1/v1.1 and v2.2 frames carry the zero FrameFlags.
type FrameHeader struct {
	id    string
	flags FrameFlags
}

func (h FrameHeader) ID() string          { return h.id }
func (h FrameHeader) Header() FrameHeader { return h }
func (h FrameHeader) Flags() FrameFlags   { return h.flags }

// Frame is implemented by every frame body type. Value returns
// whatever single string best represents the frame for a caller who
// doesn't care about its full structure — the first value of a text
// frame, a comment's text, a URL, and so on.
type Frame interface {
	ID() string
	Header() FrameHeader
	Value() string
}

// FrameMap is an ordered-per-key collection of decoded frames, keyed
// by frame identifier. ID3 permits more than one frame with the same
// identifier (multiple COMM frames with different languages, for
// instance); the slice preserves the order frames were encountered
// in.
type FrameMap map[string][]Frame

// Get returns every frame decoded under the given identifier, or nil
// if there are none.
func (m FrameMap) Get(id string) []Frame {
	return m[id]
}

// First returns the first frame decoded under the given identifier,
// or nil if there are none.
func (m FrameMap) First(id string) Frame {
	fs := m[id]
	if len(fs) == 0 {
		return nil
	}
	return fs[0]
}

// Tag is the structured result of decoding an ID3 tag of any
// supported dialect.
type Tag struct {
	Version   Version
	Flags     HeaderFlags // zero value for V1/V1_1
	ExtHeader ExtHeader   // nil unless the tag declared one
	Frames    FrameMap
}

// HasFrame reports whether at least one frame was decoded under id.
func (t *Tag) HasFrame(id string) bool {
	return len(t.Frames[id]) > 0
}

// PictureType is the enumerated picture-type byte carried by APIC/PIC
// frames (0x00 through 0x14).
type PictureType byte

const (
	PictureOther PictureType = iota
	PictureFileIcon
	PictureOtherFileIcon
	PictureCoverFront
	PictureCoverBack
	PictureLeaflet
	PictureMedia
	PictureLeadArtist
	PictureArtist
	PictureConductor
	PictureBand
	PictureComposer
	PictureLyricist
	PictureRecordingLocation
	PictureDuringRecording
	PictureDuringPerformance
	PictureVideoCapture
	PictureFish
	PictureIllustration
	PictureBandLogo
	PicturePublisherLogo
)

var pictureTypeNames = []string{
	"Other",
	"32x32 pixels 'file icon' (PNG only)",
	"Other file icon",
	"Cover (front)",
	"Cover (back)",
	"Leaflet page",
	"Media (e.g. label side of CD)",
	"Lead artist/lead performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/Orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording Location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright coloured fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/Studio logotype",
}

func (p PictureType) String() string {
	if int(p) >= len(pictureTypeNames) {
		return ""
	}
	return pictureTypeNames[p]
}

// FrameNames maps v2.3/v2.4 frame identifiers to a human-readable
// label, grounded on the teacher's own FrameNames table. It is used
// for display purposes only (cmd/id3dump); decoding never consults
// it.
var FrameNames = map[string]string{
	"AENC": "Audio encryption",
	"APIC": "Attached picture",
	"ASPI": "Audio seek point index",
	"COMM": "Comments",
	"COMR": "Commercial frame",

	"ENCR": "Encryption method registration",
	"EQU2": "Equalisation (2)",
	"ETCO": "Event timing codes",

	"GEOB": "General encapsulated object",
	"GRID": "Group identification registration",

	"LINK": "Linked information",

	"MCDI": "Music CD identifier",
	"MLLT": "MPEG location lookup table",

	"OWNE": "Ownership frame",

	"PRIV": "Private frame",
	"PCNT": "Play counter",
	"POPM": "Popularimeter",
	"POSS": "Position synchronisation frame",

	"RBUF": "Recommended buffer size",
	"RVA2": "Relative volume adjustment (2)",
	"RVRB": "Reverb",

	"SEEK": "Seek frame",
	"SIGN": "Signature frame",
	"SYLT": "Synchronised lyric/text",
	"SYTC": "Synchronised tempo codes",

	"TALB": "Album/Movie/Show title",
	"TBPM": "BPM (beats per minute)",
	"TCOM": "Composer",
	"TCON": "Content type",
	"TCOP": "Copyright message",
	"TDEN": "Encoding time",
	"TDLY": "Playlist delay",
	"TDOR": "Original release time",
	"TDRC": "Recording time",
	"TDRL": "Release time",
	"TDTG": "Tagging time",
	"TENC": "Encoded by",
	"TEXT": "Lyricist/Text writer",
	"TFLT": "File type",
	"TIPL": "Involved people list",
	"TIT1": "Content group description",
	"TIT2": "Title/songname/content description",
	"TIT3": "Subtitle/Description refinement",
	"TKEY": "Initial key",
	"TLAN": "Language(s)",
	"TLEN": "Length",
	"TMCL": "Musician credits list",
	"TMED": "Media type",
	"TMOO": "Mood",
	"TOAL": "Original album/movie/show title",
	"TOFN": "Original filename",
	"TOLY": "Original lyricist(s)/text writer(s)",
	"TOPE": "Original artist(s)/performer(s)",
	"TOWN": "File owner/licensee",
	"TPE1": "Lead performer(s)/Soloist(s)",
	"TPE2": "Band/orchestra/accompaniment",
	"TPE3": "Conductor/performer refinement",
	"TPE4": "Interpreted, remixed, or otherwise modified by",
	"TPOS": "Part of a set",
	"TPRO": "Produced notice",
	"TPUB": "Publisher",
	"TRCK": "Track number/Position in set",
	"TRSN": "Internet radio station name",
	"TRSO": "Internet radio station owner",
	"TSOA": "Album sort order",
	"TSOP": "Performer sort order",
	"TSOT": "Title sort order",
	"TSRC": "ISRC (international standard recording code)",
	"TSSE": "Software/Hardware and settings used for encoding",
	"TSST": "Set subtitle",
	"TXXX": "User defined text information frame",

	"UFID": "Unique file identifier",
	"USER": "Terms of use",
	"USLT": "Unsynchronised lyric/text transcription",

	"WCOM": "Commercial information",
	"WCOP": "Copyright/Legal information",
	"WOAF": "Official audio file webpage",
	"WOAR": "Official artist/performer webpage",
	"WOAS": "Official audio source webpage",
	"WORS": "Official Internet radio station homepage",
	"WPAY": "Payment",
	"WPUB": "Publishers official webpage",
	"WXXX": "User defined URL link frame",
}
