package model

type UpsertResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// ParsedRow is one sheet row after schema validation.
type ParsedRow struct {
	Row    int       `json:"row"`
	Book   BookInput `json:"book"`
	Valid  bool      `json:"valid"`
	Errors []string  `json:"errors"`
}

type ImportReport struct {
	Added       int         `json:"added"`
	Updated     int         `json:"updated"`
	Errors      int         `json:"errors"`
	InvalidRows []ParsedRow `json:"invalidRows"`
}

type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Stats struct {
	Total      int     `json:"total"`
	Loaned     int     `json:"loaned"`
	Read       int     `json:"read"`
	Reading    int     `json:"reading"`
	Unread     int     `json:"unread"`
	Genres     []Count `json:"genres"`
	TopAuthors []Count `json:"topAuthors"`
}
