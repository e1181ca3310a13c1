package base64

import "strings"

const (
	dataScheme   = "data:"
	base64Marker = ";base64,"
)

// GetContentType returns the media type of a base64 data URL, lower-cased and without parameters.
// Anything that is not a base64 data URL yields an empty string.
func GetContentType(dataURL string) string {
	if !strings.HasPrefix(strings.ToLower(dataURL), dataScheme) {
		return ""
	}

	header, _, found := strings.Cut(dataURL[len(dataScheme):], base64Marker)
	if !found {
		return ""
	}

	mediaType, _, _ := strings.Cut(header, ";")

	return strings.ToLower(strings.TrimSpace(mediaType))
}
