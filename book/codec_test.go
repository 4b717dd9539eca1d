package book_test

import (
	"testing"

	"github.com/marcelsud/bookshelf/book"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeShape(t *testing.T) {
	data, err := book.Encode([]book.Book{{ID: 1, Title: "Dune", Author: "Frank Herbert", Category: book.Fiction, Status: book.Reading, ISBN: "0441013597"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"title":"Dune","author":"Frank Herbert","category":"fiction","status":"reading","isbn":"0441013597"}]`, string(data))

	empty, err := book.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestDecodeRejects(t *testing.T) {
	tests := map[string]string{
		"not json":         `{`,
		"zero id":          `[{"id":0,"title":"x","author":"y","category":"fiction","status":"unread","isbn":""}]`,
		"duplicate id":     `[{"id":1,"category":"fiction","status":"unread"},{"id":1,"category":"fiction","status":"unread"}]`,
		"unknown category": `[{"id":1,"category":"poetry","status":"unread"}]`,
		"missing status":   `[{"id":1,"category":"fiction"}]`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := book.Decode([]byte(payload))
			assert.Error(t, err)
		})
	}
}

func TestDecodeKeepsOrder(t *testing.T) {
	list, err := book.Decode([]byte(`[{"id":5,"title":"B","author":"x","category":"other","status":"completed","isbn":"1"},{"id":2,"title":"A","author":"y","category":"non-fiction","status":"unread","isbn":"2"}]`))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(5), list[0].ID)
	assert.Equal(t, book.NonFiction, list[1].Category)
	assert.Equal(t, book.Completed, list[0].Status)
}
