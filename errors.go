package id3

import "fmt"

// ErrMissingIdentifier is returned when the expected header magic
// ("ID3" or "TAG") is absent. This means "no tag here", not
// "corrupt tag" — callers commonly treat it as informational.
type ErrMissingIdentifier struct {
	Magic []byte
}

func (e ErrMissingIdentifier) Error() string {
	return fmt.Sprintf("id3: missing tag identifier (found %q)", e.Magic)
}

// ErrUnsupportedVersion is returned when the major/revision pair in
// an ID3v2 header isn't one this package knows how to dispatch.
type ErrUnsupportedVersion struct {
	Major, Revision byte
}

func (e ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("id3: unsupported version 2.%d.%d", e.Major, e.Revision)
}

// ErrMalformedHeader is returned for reserved header-flag bits being
// set, or illegal extended-header flag combinations.
type ErrMalformedHeader struct {
	Reason string
}

func (e ErrMalformedHeader) Error() string {
	return "id3: malformed header: " + e.Reason
}

// ErrMalformed is returned for a structural violation found while
// decoding a frame body: an unterminated string, an empty required
// owner, an illegal flag combination, a zero bits-for-volume field, a
// bad date, a bad encoding selector byte.
type ErrMalformed struct {
	Frame  string
	Reason string
}

func (e ErrMalformed) Error() string {
	if e.Frame == "" {
		return "id3: malformed: " + e.Reason
	}
	return fmt.Sprintf("id3: malformed %s frame: %s", e.Frame, e.Reason)
}

// ErrUnderflow is returned when a read would move the cursor past the
// end of the buffer.
type ErrUnderflow struct {
	Need, Have int
}

func (e ErrUnderflow) Error() string {
	return fmt.Sprintf("id3: underflow: need %d bytes, have %d", e.Need, e.Have)
}

// Diagnostic describes a non-fatal event surfaced while decoding a
// tag: an unrecognised frame identifier, or (in lenient mode) a frame
// that was dropped because it failed to decode.
type Diagnostic struct {
	Kind   string // "unknown_frame" or "skipped_frame"
	Frame  string
	Offset int
	Reason string
}

func (d Diagnostic) String() string {
	if d.Reason == "" {
		return fmt.Sprintf("id3: %s %q at offset %d", d.Kind, d.Frame, d.Offset)
	}
	return fmt.Sprintf("id3: %s %q at offset %d: %s", d.Kind, d.Frame, d.Offset, d.Reason)
}

// Diagnostics receives non-fatal events during a parse. The zero
// value of Decode's configuration uses DiscardDiagnostics.
type Diagnostics interface {
	Report(Diagnostic)
}

type discardDiagnostics struct{}

func (discardDiagnostics) Report(Diagnostic) {}

// DiscardDiagnostics is a Diagnostics sink that does nothing. It is
// the default used by Decode.
var DiscardDiagnostics Diagnostics = discardDiagnostics{}
