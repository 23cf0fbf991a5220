package utils

import "net/http"

// sniffLength is the number of leading bytes http.DetectContentType considers.
const sniffLength = 512

// UnknownMimeType is reported when no content is available to sniff.
const UnknownMimeType = "application/octet-stream"

// DetectMimeType returns the MIME type sniffed from the leading bytes of data.
func DetectMimeType(data []byte) string {
	if len(data) == 0 {
		return UnknownMimeType
	}
	if len(data) > sniffLength {
		data = data[:sniffLength]
	}
	return http.DetectContentType(data)
}
