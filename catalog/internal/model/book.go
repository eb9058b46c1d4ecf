package model

import (
	"time"
)

type ReadingStatus string

const (
	ReadingStatusUnread  ReadingStatus = "unread"
	ReadingStatusReading ReadingStatus = "reading"
	ReadingStatusRead    ReadingStatus = "read"
	ReadingStatusUnset   ReadingStatus = "-/-"
)

func (s ReadingStatus) Valid() bool {
	switch s {
	case ReadingStatusUnread, ReadingStatusReading, ReadingStatusRead, ReadingStatusUnset:
		return true
	}
	return false
}

type Author struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Series struct {
	Name                 string `json:"name" validate:"required"`
	VolumeNumber         *int   `json:"volumeNumber,omitempty"`
	VolumePart           *int   `json:"volumePart,omitempty"`
	TotalVolumes         *int   `json:"totalVolumes,omitempty"`
	HasUntranslatedBooks bool   `json:"hasUntranslatedBooks"`
}

// CurrentLoan mirrors the single open entry of the book's loan history.
type CurrentLoan struct {
	LoanerName string    `json:"loanerName"`
	LoanDate   time.Time `json:"loanDate"`
}

type Book struct {
	ID                        string        `json:"id"`
	InternalID                string        `json:"internalId"`
	Title                     string        `json:"title"`
	OriginalTitle             string        `json:"originalTitle,omitempty"`
	Authors                   []Author      `json:"authors"`
	Language                  string        `json:"language,omitempty"`
	OriginalLanguage          string        `json:"originalLanguage,omitempty"`
	ISBN                      string        `json:"isbn,omitempty"`
	PublishedYear             *int          `json:"publishedYear,omitempty"`
	TranslatedBy              string        `json:"translatedBy,omitempty"`
	TranslationPublishingYear *int          `json:"translationPublishingYear,omitempty"`
	PublishingHouse           string        `json:"publishingHouse,omitempty"`
	Edition                   string        `json:"edition,omitempty"`
	NumberOfPages             *int          `json:"numberOfPages,omitempty"`
	CoverImageURL             string        `json:"coverImageUrl,omitempty"`
	Series                    *Series       `json:"series,omitempty"`
	Genres                    []string      `json:"genres"`
	SubGenres                 []string      `json:"subGenres"`
	Comments                  string        `json:"comments,omitempty"`
	PhysicalLocation          string        `json:"physicalLocation,omitempty"`
	ReadingStatus             ReadingStatus `json:"readingStatus,omitempty"`
	PersonalRating            *int          `json:"personalRating,omitempty"`
	DateAdded                 time.Time     `json:"dateAdded"`
	CurrentLoan               *CurrentLoan  `json:"currentLoan"`
}

func (b Book) Loaned() bool {
	return b.CurrentLoan != nil
}

// Normalize replaces nil collections with empty ones.
func (b *Book) Normalize() {
	if b.Authors == nil {
		b.Authors = []Author{}
	}
	if b.Genres == nil {
		b.Genres = []string{}
	}
	if b.SubGenres == nil {
		b.SubGenres = []string{}
	}
}

// BookInput is the writable part of a book, as entered in the form or parsed from a sheet.
type BookInput struct {
	InternalID                string        `json:"internalId"`
	Title                     string        `json:"title" validate:"required"`
	OriginalTitle             string        `json:"originalTitle,omitempty"`
	Authors                   []Author      `json:"authors"`
	Language                  string        `json:"language,omitempty"`
	OriginalLanguage          string        `json:"originalLanguage,omitempty"`
	ISBN                      string        `json:"isbn,omitempty"`
	PublishedYear             *int          `json:"publishedYear,omitempty"`
	TranslatedBy              string        `json:"translatedBy,omitempty"`
	TranslationPublishingYear *int          `json:"translationPublishingYear,omitempty"`
	PublishingHouse           string        `json:"publishingHouse,omitempty"`
	Edition                   string        `json:"edition,omitempty"`
	NumberOfPages             *int          `json:"numberOfPages,omitempty" validate:"omitempty,min=0"`
	CoverImageURL             string        `json:"coverImageUrl,omitempty" validate:"omitempty,url"`
	Series                    *Series       `json:"series,omitempty"`
	Genres                    []string      `json:"genres"`
	SubGenres                 []string      `json:"subGenres"`
	Comments                  string        `json:"comments,omitempty"`
	PhysicalLocation          string        `json:"physicalLocation,omitempty"`
	ReadingStatus             ReadingStatus `json:"readingStatus,omitempty" validate:"omitempty,oneof=unread reading read -/-"`
	PersonalRating            *int          `json:"personalRating,omitempty" validate:"omitempty,min=1,max=5"`
	// DateAdded is carried forward when set; zero means now.
	DateAdded time.Time `json:"dateAdded,omitempty"`
}

// Book builds the full document stored under id. The loan pointer is always cleared.
func (in BookInput) Book(id string) Book {
	b := Book{
		ID:                        id,
		InternalID:                in.InternalID,
		Title:                     in.Title,
		OriginalTitle:             in.OriginalTitle,
		Authors:                   in.Authors,
		Language:                  in.Language,
		OriginalLanguage:          in.OriginalLanguage,
		ISBN:                      in.ISBN,
		PublishedYear:             in.PublishedYear,
		TranslatedBy:              in.TranslatedBy,
		TranslationPublishingYear: in.TranslationPublishingYear,
		PublishingHouse:           in.PublishingHouse,
		Edition:                   in.Edition,
		NumberOfPages:             in.NumberOfPages,
		CoverImageURL:             in.CoverImageURL,
		Series:                    in.Series,
		Genres:                    in.Genres,
		SubGenres:                 in.SubGenres,
		Comments:                  in.Comments,
		PhysicalLocation:          in.PhysicalLocation,
		ReadingStatus:             in.ReadingStatus,
		PersonalRating:            in.PersonalRating,
		DateAdded:                 in.DateAdded,
	}
	b.Normalize()
	return b
}

// BookPatch is a field-level update: nil fields are left untouched.
type BookPatch struct {
	InternalID                *string        `json:"internalId,omitempty"`
	Title                     *string        `json:"title,omitempty" validate:"omitempty,min=1"`
	OriginalTitle             *string        `json:"originalTitle,omitempty"`
	Authors                   *[]Author      `json:"authors,omitempty"`
	Language                  *string        `json:"language,omitempty"`
	OriginalLanguage          *string        `json:"originalLanguage,omitempty"`
	ISBN                      *string        `json:"isbn,omitempty"`
	PublishedYear             *int           `json:"publishedYear,omitempty"`
	TranslatedBy              *string        `json:"translatedBy,omitempty"`
	TranslationPublishingYear *int           `json:"translationPublishingYear,omitempty"`
	PublishingHouse           *string        `json:"publishingHouse,omitempty"`
	Edition                   *string        `json:"edition,omitempty"`
	NumberOfPages             *int           `json:"numberOfPages,omitempty" validate:"omitempty,min=0"`
	CoverImageURL             *string        `json:"coverImageUrl,omitempty"`
	Series                    *Series        `json:"series,omitempty"`
	ClearSeries               bool           `json:"clearSeries,omitempty"`
	Genres                    *[]string      `json:"genres,omitempty"`
	SubGenres                 *[]string      `json:"subGenres,omitempty"`
	Comments                  *string        `json:"comments,omitempty"`
	PhysicalLocation          *string        `json:"physicalLocation,omitempty"`
	ReadingStatus             *ReadingStatus `json:"readingStatus,omitempty" validate:"omitempty,oneof=unread reading read -/-"`
	PersonalRating            *int           `json:"personalRating,omitempty" validate:"omitempty,min=1,max=5"`
}

func (p BookPatch) Empty() bool {
	return p == (BookPatch{})
}

// Apply writes the set fields of p onto b.
func (p BookPatch) Apply(b *Book) {
	setString(&b.InternalID, p.InternalID)
	setString(&b.Title, p.Title)
	setString(&b.OriginalTitle, p.OriginalTitle)
	if p.Authors != nil {
		b.Authors = *p.Authors
	}
	setString(&b.Language, p.Language)
	setString(&b.OriginalLanguage, p.OriginalLanguage)
	setString(&b.ISBN, p.ISBN)
	if p.PublishedYear != nil {
		b.PublishedYear = p.PublishedYear
	}
	setString(&b.TranslatedBy, p.TranslatedBy)
	if p.TranslationPublishingYear != nil {
		b.TranslationPublishingYear = p.TranslationPublishingYear
	}
	setString(&b.PublishingHouse, p.PublishingHouse)
	setString(&b.Edition, p.Edition)
	if p.NumberOfPages != nil {
		b.NumberOfPages = p.NumberOfPages
	}
	setString(&b.CoverImageURL, p.CoverImageURL)
	if p.ClearSeries {
		b.Series = nil
	} else if p.Series != nil {
		b.Series = p.Series
	}
	if p.Genres != nil {
		b.Genres = *p.Genres
	}
	if p.SubGenres != nil {
		b.SubGenres = *p.SubGenres
	}
	setString(&b.Comments, p.Comments)
	setString(&b.PhysicalLocation, p.PhysicalLocation)
	if p.ReadingStatus != nil {
		b.ReadingStatus = *p.ReadingStatus
	}
	if p.PersonalRating != nil {
		b.PersonalRating = p.PersonalRating
	}
	b.Normalize()
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
