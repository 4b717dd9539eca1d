package book_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/marcelsud/bookshelf/book"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestCoverUpload(t *testing.T) {
	t.Run("png becomes a data url", func(t *testing.T) {
		url, err := book.CoverUpload{Data: pngHeader}.DataURL()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := book.CoverUpload{}.Validate()
		assert.ErrorIs(t, err, book.ErrCoverEmpty)
	})

	t.Run("not an image", func(t *testing.T) {
		_, err := book.CoverUpload{Data: []byte("%PDF-1.4 document")}.Validate()
		assert.ErrorIs(t, err, book.ErrCoverNotImage)
	})

	t.Run("too large", func(t *testing.T) {
		data := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, book.MaxCoverSize)...)
		_, err := book.CoverUpload{Data: data}.Validate()
		assert.ErrorIs(t, err, book.ErrCoverTooLarge)
	})
}
