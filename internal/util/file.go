package util

import (
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ValidateImage sniffs the content of an upload and checks it is an image no
// larger than maxBytes. It returns the detected MIME type.
func ValidateImage(reader io.Reader, size, maxBytes int64) (string, error) {
	if size > maxBytes {
		return "", ErrLogoTooLarge
	}
	mtype, err := mimetype.DetectReader(reader)
	if err != nil {
		return "", err
	}
	if !IsImage(mtype.String()) {
		return mtype.String(), ErrLogoNotImage
	}
	return mtype.String(), nil
}

// IsImage reports whether mimeType is an image type.
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeImage)
}
