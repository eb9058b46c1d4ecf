package model

const DefaultPageSize = 50

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type Filter struct {
	Field string
	Value string
}

// BookQuery selects one keyset page of books.
type BookQuery struct {
	PageSize  int
	SortField string
	Direction SortDirection
	// After is the id of the last book of the previous page.
	After   string
	Filters []Filter
}

type BookPage struct {
	Items []Book `json:"items"`
	// Next is the cursor of the following page, empty on the last one.
	Next string `json:"next,omitempty"`
}

// BrowseQuery filters and sorts the whole catalog in memory.
type BrowseQuery struct {
	Search    string
	Genre     string
	SubGenre  string
	Status    ReadingStatus
	Loaned    *bool
	SortField string
	Direction SortDirection
}

type InternalIDRef struct {
	ID         string
	InternalID string
}
