/*
Package id3 decodes ID3 metadata tags embedded in MP3 files.

Supported dialects

The package understands ID3v1, ID3v1.1, and the three ID3v2 header
generations (2.2, 2.3, 2.4). Each dialect gets its own dispatcher
(decodeV1, decodeV22, decodeV23, decodeV24) behind the single public
entry point Decode.

Scope

Decode takes a fully materialised byte slice and a Version and returns
a *Tag. There is no file I/O here, no writing, and no interpretation
of frame payloads beyond their structural shape: a picture frame's
image bytes are handed back raw, an encrypted frame's ciphertext is
handed back raw. Turning those bytes into a decoded JPEG or a
decrypted blob is a job for something built on top of this package,
not this package itself.

Error handling

Header-level problems (bad magic, reserved flag bits, unsupported
major version) are always fatal. Frame-level problems are skipped and
reported through the Diagnostics sink (discarded by default) unless
WithPolicy(Policy{StrictFrames: true}) is given, in which case the
first one aborts the whole decode. Unknown frame identifiers are never
an error; they are reported the same way and the frame body is
retained as a BinaryFrame.
*/
package id3
