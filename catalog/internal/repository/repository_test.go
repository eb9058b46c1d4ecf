package repository

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

func TestMapErr(t *testing.T) {
	t.Parallel()
	other := errors.New("boom")
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: pgx.ErrNoRows, want: errs.ErrNotFound},
		{name: "unique", in: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: errs.ErrAlreadyExists},
		{name: "foreign key", in: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: errs.ErrNotFound},
		{name: "bad uuid", in: &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}, want: errs.ErrNotFound},
		{name: "other", in: other, want: other},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mapErr(tt.in)
			if tt.want == nil {
				require.NoError(t, got)
				return
			}
			require.ErrorIs(t, got, tt.want)
		})
	}
}

func TestBookPatchColumns(t *testing.T) {
	t.Parallel()
	title, rating := "t", 4
	status := model.ReadingStatusRead
	var noGenres []string

	set := bookPatchColumns(model.BookPatch{
		Title:          &title,
		PersonalRating: &rating,
		ReadingStatus:  &status,
		Genres:         &noGenres,
		ClearSeries:    true,
	})
	require.Equal(t, map[string]interface{}{
		"title":           "t",
		"personal_rating": 4,
		"reading_status":  "read",
		"genres":          []string{},
		"series":          nil,
	}, set)

	require.Empty(t, bookPatchColumns(model.BookPatch{}))
}

func TestUpsertBookSuffix(t *testing.T) {
	t.Parallel()
	require.True(t, strings.HasPrefix(upsertBookSuffix, "on conflict (id) do update set internal_id = excluded.internal_id"))
	require.Contains(t, upsertBookSuffix, "current_loaner_name = excluded.current_loaner_name")
	require.NotContains(t, upsertBookSuffix, "id = excluded.id,")
	require.Len(t, bookValues(model.Book{}), len(bookColumns))
}

func TestBookInsertSQL(t *testing.T) {
	t.Parallel()
	query, args, err := qb.Insert(booksTableName).
		Columns(bookColumns...).
		Values(bookValues(model.Book{ID: "b", Title: "t"})...).
		Suffix(upsertBookSuffix).
		ToSql()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(query, "INSERT INTO books (id,internal_id,title,"))
	require.Contains(t, query, "$25")
	require.Len(t, args, len(bookColumns))
}
