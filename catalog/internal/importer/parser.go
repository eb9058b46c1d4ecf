package importer

import (
	"math"
	"strconv"
	"strings"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

// Row is one sheet record keyed by column header.
type Row map[string]string

func (r Row) get(col string) string {
	return strings.TrimSpace(r[col])
}

// ParseRows validates every row. Invalid rows are kept and flagged.
func ParseRows(rows []Row) []model.ParsedRow {
	out := make([]model.ParsedRow, 0, len(rows))
	for i, row := range rows {
		// row 1 is the header
		out = append(out, ParseRow(i+2, row))
	}
	return out
}

func ParseRow(n int, row Row) model.ParsedRow {
	problems := make([]string, 0)

	in := model.BookInput{
		InternalID:                row.get(ColInternalID),
		Title:                     row.get(ColTitle),
		OriginalTitle:             row.get(ColOriginalTitle),
		Authors:                   parseAuthors(row.get(ColAuthorFirstNames), row.get(ColAuthorLastNames)),
		Language:                  row.get(ColLanguage),
		OriginalLanguage:          row.get(ColOriginalLanguage),
		ISBN:                      row.get(ColISBN),
		PublishedYear:             parseInt(row.get(ColPublishedYear)),
		TranslatedBy:              row.get(ColTranslatedBy),
		TranslationPublishingYear: parseInt(row.get(ColTranslationYear)),
		PublishingHouse:           row.get(ColPublishingHouse),
		Edition:                   row.get(ColEdition),
		NumberOfPages:             parseInt(row.get(ColNumberOfPages)),
		Genres:                    splitList(row.get(ColGenres)),
		SubGenres:                 splitList(row.get(ColSubGenres)),
		Comments:                  row.get(ColComments),
		PhysicalLocation:          row.get(ColPhysicalLocation),
		PersonalRating:            parseRating(row.get(ColRating)),
	}
	if in.Title == "" {
		problems = append(problems, ErrMissingTitle)
	}
	if status := model.ReadingStatus(row.get(ColReadingStatus)); status.Valid() {
		in.ReadingStatus = status
	}
	if name := row.get(ColSeriesName); name != "" {
		in.Series = &model.Series{
			Name:                 name,
			VolumeNumber:         parseInt(row.get(ColVolumeNumber)),
			VolumePart:           parseInt(row.get(ColVolumePart)),
			TotalVolumes:         parseInt(row.get(ColTotalVolumes)),
			HasUntranslatedBooks: row.get(ColUntranslated) == Affirmative,
		}
	}

	return model.ParsedRow{
		Row:    n,
		Book:   in,
		Valid:  len(problems) == 0,
		Errors: problems,
	}
}

// ValidBooks keeps the books of valid rows, in order.
func ValidBooks(rows []model.ParsedRow) []model.BookInput {
	books := make([]model.BookInput, 0, len(rows))
	for _, r := range rows {
		if r.Valid {
			books = append(books, r.Book)
		}
	}
	return books
}

func InvalidRows(rows []model.ParsedRow) []model.ParsedRow {
	invalid := make([]model.ParsedRow, 0)
	for _, r := range rows {
		if !r.Valid {
			invalid = append(invalid, r)
		}
	}
	return invalid
}

// parseAuthors zips first and last names by position, padding the shorter list.
func parseAuthors(firstNames, lastNames string) []model.Author {
	first, last := splitKeep(firstNames), splitKeep(lastNames)
	n := len(first)
	if len(last) > n {
		n = len(last)
	}
	authors := make([]model.Author, 0, n)
	for i := 0; i < n; i++ {
		var a model.Author
		if i < len(first) {
			a.FirstName = first[i]
		}
		if i < len(last) {
			a.LastName = last[i]
		}
		authors = append(authors, a)
	}
	return authors
}

// splitKeep splits on the list separator and keeps empty positions.
func splitKeep(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listSep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, listSep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseInt is permissive: empty or non-numeric input is absent.
func parseInt(s string) *int {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return nil
	}
	v := int(f)
	return &v
}

func parseRating(s string) *int {
	v := parseInt(s)
	if v == nil || *v < 1 || *v > 5 {
		return nil
	}
	return v
}
