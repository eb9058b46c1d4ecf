package importer

// Sheet column headers. The layout is shared by import and export.
const (
	ColInternalID       = "מספר מזהה"
	ColTitle            = "שם הספר"
	ColOriginalTitle    = "שם מקורי"
	ColAuthorFirstNames = "מחבר - שם פרטי"
	ColAuthorLastNames  = "מחבר - שם משפחה"
	ColLanguage         = "שפה"
	ColOriginalLanguage = "שפה מקורית"
	ColISBN             = "ISBN"
	ColPublishedYear    = "שנת הוצאה"
	ColTranslatedBy     = "מתורגם ע״י"
	ColTranslationYear  = "שנת תרגום"
	ColPublishingHouse  = "הוצאה לאור"
	ColEdition          = "מהדורה"
	ColNumberOfPages    = "מספר עמודים"
	ColSeriesName       = "שם סדרה"
	ColVolumeNumber     = "מספר כרך"
	ColVolumePart       = "חלק בכרך"
	ColTotalVolumes     = "סה״כ כרכים"
	ColUntranslated     = "כרכים לא מתורגמים"
	ColGenres           = "ז׳אנרים"
	ColSubGenres        = "תת-ז׳אנרים"
	ColComments         = "הערות"
	ColPhysicalLocation = "מיקום פיזי"
	ColReadingStatus    = "סטטוס קריאה"
	ColRating           = "דירוג"
	// export only
	ColLoanedTo = "מושאל ל"
)

const (
	// Affirmative is the only value that marks a series as having untranslated volumes.
	Affirmative = "כן"
	listSep     = ";"
	// SheetName of exported workbooks.
	SheetName = "ספרים"

	ErrMissingTitle = "missing title"
)

var Header = []string{
	ColInternalID, ColTitle, ColOriginalTitle, ColAuthorFirstNames, ColAuthorLastNames,
	ColLanguage, ColOriginalLanguage, ColISBN, ColPublishedYear, ColTranslatedBy,
	ColTranslationYear, ColPublishingHouse, ColEdition, ColNumberOfPages, ColSeriesName,
	ColVolumeNumber, ColVolumePart, ColTotalVolumes, ColUntranslated, ColGenres,
	ColSubGenres, ColComments, ColPhysicalLocation, ColReadingStatus, ColRating,
	ColLoanedTo,
}
