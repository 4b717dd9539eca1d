//go:build !integration

package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/marcelsud/bookshelf/book"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
Testes unitários com sqlmock: rápidos, sem banco real.
Executar com: go test ./book/postgres/...
*/

const (
	selectQuery = `SELECT payload FROM book_slots WHERE key = $1`
	upsertQuery = `INSERT INTO book_slots (key, payload, updated_at)`
)

func TestSlot_Read_Unit(t *testing.T) {
	t.Run("read existing slot", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		slot := &Slot{DB: db}
		rows := sqlmock.NewRows([]string{"payload"}).AddRow(`[{"id":1}]`)
		mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WithArgs("books:ana@example.com").
			WillReturnRows(rows)

		data, err := slot.Read(context.Background(), "books:ana@example.com")

		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, string(data))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing slot returns ErrSlotEmpty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		slot := &Slot{DB: db}
		mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WithArgs("books:nobody").
			WillReturnRows(sqlmock.NewRows([]string{"payload"}))

		_, err = slot.Read(context.Background(), "books:nobody")

		require.ErrorIs(t, err, book.ErrSlotEmpty)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		slot := &Slot{DB: db}
		mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WithArgs("books:x").
			WillReturnError(errors.New("connection reset"))

		_, err = slot.Read(context.Background(), "books:x")

		require.Error(t, err)
		assert.NotErrorIs(t, err, book.ErrSlotEmpty)
		assert.Contains(t, err.Error(), "reading slot")
	})
}

func TestSlot_Write_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	slot := &Slot{DB: db}
	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
		WithArgs("books:ana@example.com", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = slot.Write(context.Background(), "books:ana@example.com", []byte(`[]`))

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlot_CreateTable_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	slot := &Slot{DB: db}
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS book_slots`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, slot.CreateTable(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
