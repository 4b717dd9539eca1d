package book_test

import (
	"encoding/json"
	"testing"

	"github.com/marcelsud/bookshelf/book"
	"github.com/stretchr/testify/assert"
)

func TestStatusNext(t *testing.T) {
	assert.Equal(t, book.Reading, book.Unread.Next())
	assert.Equal(t, book.Completed, book.Reading.Next())
	assert.Equal(t, book.Unread, book.Completed.Next())
}

func TestParse(t *testing.T) {
	_, err := book.ParseStatus("finished")
	assert.Error(t, err)
	assert.Equal(t, book.Unread, book.NewStatus("finished"))
	assert.Equal(t, book.Technology, book.NewCategory(""))

	c, err := book.ParseCategory("non-fiction")
	assert.NoError(t, err)
	assert.Equal(t, book.NonFiction, c)

	var s book.Status
	assert.Error(t, json.Unmarshal([]byte(`"finished"`), &s))
}

func TestComputeStats(t *testing.T) {
	st := book.ComputeStats(book.DefaultSeed())
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 1, st.Reading())
	assert.Equal(t, 1, st.Completed())
	assert.Equal(t, 3, st.ByCategory[book.Technology])
	assert.Equal(t, 0, st.ByCategory[book.Fiction])

	sum := st.Add(st)
	assert.Equal(t, 6, sum.Total)
	assert.Equal(t, 2, sum.ByStatus[book.Unread])
}
