package service

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

const topAuthors = 10

// FilterBooks applies the catalog table filters. Search matches title,
// internal id, isbn, author names and series name case-insensitively.
func FilterBooks(books []model.Book, q model.BrowseQuery) []model.Book {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if search != "" && !matchesSearch(b, search) {
			continue
		}
		if q.Genre != "" && !contains(b.Genres, q.Genre) {
			continue
		}
		if q.SubGenre != "" && !contains(b.SubGenres, q.SubGenre) {
			continue
		}
		if q.Status != "" && b.ReadingStatus != q.Status {
			continue
		}
		if q.Loaned != nil && b.Loaned() != *q.Loaned {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesSearch(b model.Book, term string) bool {
	fields := []string{b.Title, b.InternalID, b.ISBN}
	for _, a := range b.Authors {
		fields = append(fields, a.FirstName+" "+a.LastName)
	}
	if b.Series != nil {
		fields = append(fields, b.Series.Name)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// numericInternalID reads the leading integer of the id ("12a" is 12).
// A missing or non-numeric id is 0.
func numericInternalID(b model.Book) int {
	id := strings.TrimSpace(b.InternalID)
	end := 0
	if end < len(id) && (id[end] == '-' || id[end] == '+') {
		end++
	}
	digits := end
	for end < len(id) && id[end] >= '0' && id[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(id[:end])
	if err != nil {
		return 0
	}
	return n
}

func sortKey(b model.Book, field string) string {
	switch field {
	case "authors":
		if len(b.Authors) > 0 {
			return b.Authors[0].LastName
		}
		return ""
	case "genres":
		if len(b.Genres) > 0 {
			return b.Genres[0]
		}
		return ""
	case "readingStatus":
		return string(b.ReadingStatus)
	}
	return b.Title
}

// SortBooks orders books in place, by internal id when field is empty.
// Text keys use Hebrew collation. The sort is stable, so equal keys keep their input order.
func SortBooks(books []model.Book, field string, dir model.SortDirection) {
	desc := dir == model.SortDesc
	if field == "" || field == "internalId" {
		sort.SliceStable(books, func(i, j int) bool {
			a, b := numericInternalID(books[i]), numericInternalID(books[j])
			if desc {
				return a > b
			}
			return a < b
		})
		return
	}
	// a Collator keeps internal buffers, one per call
	col := collate.New(language.Hebrew)
	sort.SliceStable(books, func(i, j int) bool {
		c := col.CompareString(sortKey(books[i], field), sortKey(books[j], field))
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// NextInternalID suggests the id after the largest numeric one.
func NextInternalID(books []model.Book) string {
	highest := 0
	for _, b := range books {
		if n := numericInternalID(b); n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}

func CollectStats(books []model.Book) model.Stats {
	st := model.Stats{Total: len(books)}
	genres := make(map[string]int)
	authors := make(map[string]int)
	for _, b := range books {
		if b.Loaned() {
			st.Loaned++
		}
		switch b.ReadingStatus {
		case model.ReadingStatusRead:
			st.Read++
		case model.ReadingStatusReading:
			st.Reading++
		default:
			st.Unread++
		}
		for _, g := range b.Genres {
			genres[g]++
		}
		for _, a := range b.Authors {
			name := strings.TrimSpace(a.FirstName + " " + a.LastName)
			if name != "" {
				authors[name]++
			}
		}
	}
	st.Genres = rank(genres, 0)
	st.TopAuthors = rank(authors, topAuthors)
	return st
}

// rank sorts counts descending, ties by name. limit 0 keeps all.
func rank(counts map[string]int, limit int) []model.Count {
	out := make([]model.Count, 0, len(counts))
	for name, n := range counts {
		out = append(out, model.Count{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
