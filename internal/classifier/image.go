// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classifier

import (
	"bytes"
	"fmt"
)

// DefaultMaxImageBytes caps uploads when the config does not set a limit.
const DefaultMaxImageBytes = 8 << 20

// imageMagics are the accepted container signatures. WebP is RIFF with a
// WEBP tag at offset 8, handled separately.
var imageMagics = [][]byte{
	{0xFF, 0xD8, 0xFF},    // JPEG
	{0x89, 'P', 'N', 'G'}, // PNG
	[]byte("GIF87a"),
	[]byte("GIF89a"),
}

// ValidateImage rejects payloads before the oracle is invoked: empty input,
// input over maxBytes, and bytes that are not a recognized image container.
// A zero or negative maxBytes applies DefaultMaxImageBytes.
func ValidateImage(data []byte, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	if len(data) == 0 {
		return &Error{Kind: KindBadImage, Msg: "empty image"}
	}
	if int64(len(data)) > maxBytes {
		return &Error{Kind: KindBadImage, Msg: fmt.Sprintf("image exceeds %d bytes", maxBytes)}
	}

	for _, magic := range imageMagics {
		if bytes.HasPrefix(data, magic) {
			return nil
		}
	}
	if len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")) {
		return nil
	}

	return &Error{Kind: KindBadImage, Msg: "unsupported image format"}
}
