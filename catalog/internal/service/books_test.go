package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

func TestCreateBook(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := newTestService(store)

	book, err := svc.CreateBook(context.Background(), adminSession, model.BookInput{
		InternalID: "12",
		Title:      "Catch-22",
		Authors:    []model.Author{{FirstName: "Joseph", LastName: "Heller"}},
	})
	require.NoError(t, err)
	require.Equal(t, "id-0001", book.ID)
	require.Equal(t, now, book.DateAdded)
	require.Equal(t, []string{}, book.Genres)
	require.Equal(t, book, store.book("id-0001"))

	entries := store.activityEntries()
	require.Len(t, entries, 1)
	require.Equal(t, model.ActionAdd, entries[0].ActionType)
	require.Equal(t, "id-0001", entries[0].BookID)

	_, err = svc.CreateBook(context.Background(), readerSession, model.BookInput{Title: "x"})
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestUpdateBook(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	store.put(model.Book{ID: "b-1", Title: "old", ISBN: "123", Series: &model.Series{Name: "s"}})
	svc := newTestService(store)
	ctx := context.Background()

	title, status := "new", model.ReadingStatusReading
	book, err := svc.UpdateBook(ctx, adminSession, "b-1", model.BookPatch{
		Title:         &title,
		ReadingStatus: &status,
		ClearSeries:   true,
	})
	require.NoError(t, err)
	require.Equal(t, "new", book.Title)
	require.Equal(t, "123", book.ISBN)
	require.Nil(t, book.Series)
	require.Equal(t, book, store.book("b-1"))
	require.Equal(t, model.ActionEdit, store.activityEntries()[0].ActionType)

	_, err = svc.UpdateBook(ctx, adminSession, "b-1", model.BookPatch{})
	require.ErrorIs(t, err, errs.ErrEmptyPatch)

	_, err = svc.UpdateBook(ctx, adminSession, "nope", model.BookPatch{Title: &title})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	store.put(model.Book{ID: "b-1", Title: "gone"})
	svc := newTestService(store)
	ctx := context.Background()

	require.ErrorIs(t, svc.DeleteBook(ctx, readerSession, "b-1"), errs.ErrForbidden)
	require.NoError(t, svc.DeleteBook(ctx, adminSession, "b-1"))
	require.Equal(t, 0, store.bookCount())

	entries := store.activityEntries()
	require.Len(t, entries, 1)
	require.Equal(t, model.ActionDelete, entries[0].ActionType)
	require.Equal(t, "gone", entries[0].BookTitle)

	require.ErrorIs(t, svc.DeleteBook(ctx, adminSession, "b-1"), errs.ErrNotFound)
}

func TestBookDetails(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	store.put(model.Book{ID: "b-1", Title: "t"})
	svc := newTestService(store)
	ctx := context.Background()

	details, err := svc.BookDetails(ctx, "b-1")
	require.NoError(t, err)
	require.Equal(t, "t", details.Book.Title)
	require.Equal(t, []model.LoanRecord{}, details.LoanHistory)

	_, err = svc.LoanBook(ctx, adminSession, "b-1", model.LoanRequest{LoanerName: "Dana"})
	require.NoError(t, err)
	details, err = svc.BookDetails(ctx, "b-1")
	require.NoError(t, err)
	require.True(t, details.Book.Loaned())
	require.Len(t, details.LoanHistory, 1)

	_, err = svc.BookDetails(ctx, "nope")
	require.ErrorIs(t, err, errs.ErrNotFound)
}
