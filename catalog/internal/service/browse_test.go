package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
)

func ids(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestSortBooks(t *testing.T) {
	t.Parallel()
	fixture := func() []model.Book {
		return []model.Book{
			{ID: "a", InternalID: "10", Title: "b", Authors: []model.Author{{LastName: "Oz"}}},
			{ID: "b", InternalID: "x", Title: "a"},
			{ID: "c", InternalID: "2", Title: "c", Authors: []model.Author{{LastName: "Agnon"}}},
			{ID: "d", InternalID: "", Title: "a"},
		}
	}
	tests := []struct {
		name  string
		field string
		dir   model.SortDirection
		want  []string
	}{
		{
			name:  "internal id numeric asc, non-numeric as zero",
			field: "internalId",
			dir:   model.SortAsc,
			want:  []string{"b", "d", "c", "a"},
		},
		{
			name:  "internal id desc keeps ties in input order",
			field: "internalId",
			dir:   model.SortDesc,
			want:  []string{"a", "c", "b", "d"},
		},
		{
			name:  "title asc stable",
			field: "title",
			dir:   model.SortAsc,
			want:  []string{"b", "d", "a", "c"},
		},
		{
			name:  "empty field sorts by internal id",
			field: "",
			dir:   model.SortAsc,
			want:  []string{"b", "d", "c", "a"},
		},
		{
			name:  "first author last name",
			field: "authors",
			dir:   model.SortAsc,
			want:  []string{"b", "d", "c", "a"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			books := fixture()
			service.SortBooks(books, tt.field, tt.dir)
			require.Equal(t, tt.want, ids(books))
		})
	}
}

func TestSortBooks_Collation(t *testing.T) {
	t.Parallel()
	books := []model.Book{
		{ID: "banana", Title: "banana"},
		{ID: "Apple", Title: "Apple"},
		{ID: "cherry", Title: "cherry"},
		{ID: "Zebra", Title: "Zebra"},
	}
	service.SortBooks(books, "title", model.SortAsc)
	require.Equal(t, []string{"Apple", "banana", "cherry", "Zebra"}, ids(books))

	service.SortBooks(books, "title", model.SortDesc)
	require.Equal(t, []string{"Zebra", "cherry", "banana", "Apple"}, ids(books))

	hebrew := []model.Book{
		{ID: "gimel", Title: "גשר"},
		{ID: "alef", Title: "אלף"},
		{ID: "bet", Title: "בית"},
	}
	service.SortBooks(hebrew, "title", model.SortAsc)
	require.Equal(t, []string{"alef", "bet", "gimel"}, ids(hebrew))
}

func TestSortBooks_InternalIDPrefix(t *testing.T) {
	t.Parallel()
	books := []model.Book{
		{ID: "a", InternalID: "12a"},
		{ID: "b", InternalID: "3"},
		{ID: "c", InternalID: " 7 "},
		{ID: "d", InternalID: "x9"},
	}
	service.SortBooks(books, "internalId", model.SortAsc)
	require.Equal(t, []string{"d", "b", "c", "a"}, ids(books))
	require.Equal(t, "13", service.NextInternalID(books))
}

func TestFilterBooks(t *testing.T) {
	t.Parallel()
	loaned, available := true, false
	books := []model.Book{
		{ID: "a", Title: "The Hobbit", Genres: []string{"fantasy"}, ReadingStatus: model.ReadingStatusRead},
		{ID: "b", Title: "Dune", ISBN: "978-0441", Genres: []string{"sf"}, SubGenres: []string{"space"},
			CurrentLoan: &model.CurrentLoan{LoanerName: "Dana"}},
		{ID: "c", Title: "x", Authors: []model.Author{{FirstName: "Amos", LastName: "Oz"}},
			Series: &model.Series{Name: "Tales"}},
	}
	tests := []struct {
		name  string
		query model.BrowseQuery
		want  []string
	}{
		{name: "no filter", query: model.BrowseQuery{}, want: []string{"a", "b", "c"}},
		{name: "title case-insensitive", query: model.BrowseQuery{Search: "hobb"}, want: []string{"a"}},
		{name: "isbn", query: model.BrowseQuery{Search: "0441"}, want: []string{"b"}},
		{name: "author full name", query: model.BrowseQuery{Search: "amos oz"}, want: []string{"c"}},
		{name: "series", query: model.BrowseQuery{Search: "tales"}, want: []string{"c"}},
		{name: "genre", query: model.BrowseQuery{Genre: "sf"}, want: []string{"b"}},
		{name: "sub genre", query: model.BrowseQuery{SubGenre: "space"}, want: []string{"b"}},
		{name: "status", query: model.BrowseQuery{Status: model.ReadingStatusRead}, want: []string{"a"}},
		{name: "loaned", query: model.BrowseQuery{Loaned: &loaned}, want: []string{"b"}},
		{name: "available", query: model.BrowseQuery{Loaned: &available}, want: []string{"a", "c"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ids(service.FilterBooks(books, tt.query)))
		})
	}
}

func TestNextInternalID(t *testing.T) {
	t.Parallel()
	require.Equal(t, "1", service.NextInternalID(nil))
	require.Equal(t, "42", service.NextInternalID([]model.Book{
		{InternalID: "7"}, {InternalID: "41"}, {InternalID: "abc"}, {InternalID: ""},
	}))
}

func TestCollectStats(t *testing.T) {
	t.Parallel()
	heller := model.Author{FirstName: "Joseph", LastName: "Heller"}
	oz := model.Author{FirstName: "Amos", LastName: "Oz"}
	st := service.CollectStats([]model.Book{
		{Authors: []model.Author{heller}, Genres: []string{"satire"}, ReadingStatus: model.ReadingStatusRead},
		{Authors: []model.Author{oz, heller}, Genres: []string{"satire", "war"}, ReadingStatus: model.ReadingStatusReading},
		{Authors: []model.Author{{}}, ReadingStatus: model.ReadingStatusUnset, CurrentLoan: &model.CurrentLoan{LoanerName: "Dana"}},
		{},
	})
	require.Equal(t, model.Stats{
		Total:   4,
		Loaned:  1,
		Read:    1,
		Reading: 1,
		Unread:  2,
		Genres: []model.Count{
			{Name: "satire", Count: 2},
			{Name: "war", Count: 1},
		},
		TopAuthors: []model.Count{
			{Name: "Joseph Heller", Count: 2},
			{Name: "Amos Oz", Count: 1},
		},
	}, st)
}

func TestBrowseAndStats(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	store.put(model.Book{ID: "a", InternalID: "3", Title: "t1", Genres: []string{"sf"}})
	store.put(model.Book{ID: "b", InternalID: "9", Title: "t2", Genres: []string{"sf"}})
	store.put(model.Book{ID: "c", InternalID: "1", Title: "t3"})
	svc := newTestService(store)
	ctx := context.Background()

	books, err := svc.Browse(ctx, model.BrowseQuery{Genre: "sf", SortField: "internalId", Direction: model.SortDesc})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, ids(books))

	next, err := svc.NextInternalID(ctx)
	require.NoError(t, err)
	require.Equal(t, "10", next)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, st.Total)
	require.Equal(t, 3, st.Unread)
}
