package book

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxCoverSize is the largest accepted cover image, in bytes
const MaxCoverSize = 5 * 1024 * 1024

var (
	ErrCoverEmpty    = errors.New("cover image is empty")
	ErrCoverTooLarge = errors.New("cover image must be smaller than 5MB")
	ErrCoverNotImage = errors.New("cover must be an image file")
)

// CoverUpload is an image attached to a form, before conversion
type CoverUpload struct {
	Data []byte
}

// Validate checks size and sniffed content type
func (c CoverUpload) Validate() (string, error) {
	if len(c.Data) == 0 {
		return "", ErrCoverEmpty
	}
	if len(c.Data) > MaxCoverSize {
		return "", ErrCoverTooLarge
	}
	mime := mimetype.Detect(c.Data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", ErrCoverNotImage
	}
	return mime.String(), nil
}

// DataURL validates the upload and embeds it as a data URL
func (c CoverUpload) DataURL() (string, error) {
	mime, err := c.Validate()
	if err != nil {
		return "", err
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(c.Data), nil
}
