package importer

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

const utf8BOM = "\ufeff"

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatXLSX, FormatCSV:
		return f, nil
	case "":
		return FormatXLSX, nil
	}
	return "", errors.Wrap(errs.ErrUnsupportedFormat, s)
}

// DetectFormat picks the decoder from the file extension.
func DetectFormat(filename string) (Format, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		return "", errors.Wrap(errs.ErrUnsupportedFormat, filename)
	}
	return ParseFormat(ext)
}

// ReadSheet decodes the first sheet: row 1 is the header, blank rows are skipped.
func ReadSheet(r io.Reader, format Format) ([]Row, error) {
	var (
		records [][]string
		err     error
	)
	switch format {
	case FormatXLSX:
		records, err = readXLSX(r)
	case FormatCSV:
		records, err = readCSV(r)
	default:
		return nil, errors.Wrap(errs.ErrUnsupportedFormat, string(format))
	}
	if err != nil {
		return nil, err
	}
	return toRows(records), nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "excelize.OpenReader")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(err, "excelize.GetRows")
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "csv.ReadAll")
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], utf8BOM)
	}
	return records, nil
}

func toRows(records [][]string) []Row {
	if len(records) == 0 {
		return nil
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		row := make(Row, len(header))
		for i, cell := range rec {
			if i < len(header) && header[i] != "" {
				row[header[i]] = cell
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
