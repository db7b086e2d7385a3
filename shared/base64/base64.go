package base64

import "strings"

// GetContentType extracts the media type from a data URI, e.g.
// "data:image/png;base64,..." yields "image/png". Returns "" when the
// input is not a well-formed data URI.
func GetContentType(file string) string {
	rest, ok := strings.CutPrefix(file, "data:")
	if !ok {
		return ""
	}

	contentType, _, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return ""
	}

	return contentType
}
