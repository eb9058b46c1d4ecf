package importer

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

// FlattenBook lays a book out in Header order.
func FlattenBook(b model.Book) []string {
	first := make([]string, 0, len(b.Authors))
	last := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		first = append(first, a.FirstName)
		last = append(last, a.LastName)
	}
	var (
		seriesName, untranslated string
		volume, part, total      *int
	)
	if s := b.Series; s != nil {
		seriesName = s.Name
		volume, part, total = s.VolumeNumber, s.VolumePart, s.TotalVolumes
		if s.HasUntranslatedBooks {
			untranslated = Affirmative
		}
	}
	var loanedTo string
	if b.CurrentLoan != nil {
		loanedTo = b.CurrentLoan.LoanerName
	}
	return []string{
		b.InternalID,
		b.Title,
		b.OriginalTitle,
		strings.Join(first, listSep+" "),
		strings.Join(last, listSep+" "),
		b.Language,
		b.OriginalLanguage,
		b.ISBN,
		formatInt(b.PublishedYear),
		b.TranslatedBy,
		formatInt(b.TranslationPublishingYear),
		b.PublishingHouse,
		b.Edition,
		formatInt(b.NumberOfPages),
		seriesName,
		formatInt(volume),
		formatInt(part),
		formatInt(total),
		untranslated,
		strings.Join(b.Genres, listSep+" "),
		strings.Join(b.SubGenres, listSep+" "),
		b.Comments,
		b.PhysicalLocation,
		string(b.ReadingStatus),
		formatInt(b.PersonalRating),
		loanedTo,
	}
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func WriteSheet(w io.Writer, format Format, books []model.Book) error {
	switch format {
	case FormatXLSX:
		return writeXLSX(w, books)
	case FormatCSV:
		return writeCSV(w, books)
	}
	return errors.Wrap(errs.ErrUnsupportedFormat, string(format))
}

func writeXLSX(w io.Writer, books []model.Book) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetList()[0], SheetName); err != nil {
		return errors.Wrap(err, "excelize.SetSheetName")
	}
	rtl := true
	if err := f.SetSheetView(SheetName, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return errors.Wrap(err, "excelize.SetSheetView")
	}
	header := Header
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "excelize.SetSheetRow")
	}
	for i, b := range books {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := cellValues(FlattenBook(b))
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return errors.Wrap(err, "excelize.SetSheetRow")
		}
	}
	return f.Write(w)
}

// cellValues stores numeric columns as numbers.
func cellValues(flat []string) []interface{} {
	out := make([]interface{}, len(flat))
	for i, s := range flat {
		if n, err := strconv.Atoi(s); err == nil && numericColumns[Header[i]] {
			out[i] = n
			continue
		}
		out[i] = s
	}
	return out
}

var numericColumns = map[string]bool{
	ColPublishedYear:   true,
	ColTranslationYear: true,
	ColNumberOfPages:   true,
	ColVolumeNumber:    true,
	ColVolumePart:      true,
	ColTotalVolumes:    true,
	ColRating:          true,
}

func writeCSV(w io.Writer, books []model.Book) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, b := range books {
		if err := cw.Write(FlattenBook(b)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
