package services

import (
	"bytes"
	"io"
)

// newFakePNG returns a tiny PNG-looking payload for multipart upload tests.
func newFakePNG() io.Reader {
	return bytes.NewReader([]byte("\x89PNG\r\n\x1a\nnot-a-real-image"))
}
