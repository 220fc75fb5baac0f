package id3

// Policy controls how Decode reacts to a structurally invalid frame
// once the tag header itself has been accepted.
type Policy struct {
	// StrictFrames, if true, makes any frame-body decoding error fatal
	// to the whole Decode call. The default, false, skips the
	// offending frame, reports it through Diagnostics, and continues
	// with the rest of the tag.
	StrictFrames bool
}

type config struct {
	policy Policy
	diag   Diagnostics
}

// Option configures a Decode call.
type Option func(*config)

// WithPolicy sets the frame-error handling policy. The default is the
// zero Policy (lenient).
func WithPolicy(p Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithDiagnostics routes non-fatal decode events to sink. The default
// is DiscardDiagnostics.
func WithDiagnostics(sink Diagnostics) Option {
	return func(c *config) { c.diag = sink }
}

// Decode parses buf as an ID3 tag of the given dialect and returns
// the decoded Tag. version is normally obtained by calling
// ProbeVersion against the same bytes; passing the wrong version for
// the data in buf will generally surface as ErrMissingIdentifier or
// ErrUnsupportedVersion, not a panic.
func Decode(buf []byte, version Version, opts ...Option) (*Tag, error) {
	c := config{diag: DiscardDiagnostics}
	for _, opt := range opts {
		opt(&c)
	}

	switch version {
	case V1, V1_1:
		return decodeV1(buf)
	case V2_2:
		return decodeV22(buf, c.policy, c.diag)
	case V2_3:
		return decodeV23(buf, c.policy, c.diag)
	case V2_4:
		return decodeV24(buf, c.policy, c.diag)
	default:
		return nil, ErrUnsupportedVersion{}
	}
}
