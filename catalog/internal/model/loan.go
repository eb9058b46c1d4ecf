package model

import "time"

type LoanRecord struct {
	ID         string     `json:"id"`
	BookID     string     `json:"bookId"`
	LoanerName string     `json:"loanerName"`
	LoanDate   time.Time  `json:"loanDate"`
	ReturnDate *time.Time `json:"returnDate,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

func (r LoanRecord) Open() bool {
	return r.ReturnDate == nil
}

type LoanRequest struct {
	LoanerName string     `json:"loanerName" validate:"required"`
	LoanDate   *time.Time `json:"loanDate,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

type ReturnRequest struct {
	ReturnDate *time.Time `json:"returnDate,omitempty"`
}

type BookDetails struct {
	Book        Book         `json:"book"`
	LoanHistory []LoanRecord `json:"loanHistory"`
}

type ReconcileResult struct {
	Checked  int `json:"checked"`
	Repaired int `json:"repaired"`
}
