package utils

import (
	"bytes"
	"unicode/utf8"
)

// IsBinary reports whether data cannot be presented as UTF-8 text. Content
// that is not valid UTF-8 or that contains a NUL byte is treated as binary.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}
	return !utf8.Valid(data)
}
