package model

import "time"

type ActionType string

const (
	ActionAdd    ActionType = "add"
	ActionEdit   ActionType = "edit"
	ActionDelete ActionType = "delete"
	ActionLoan   ActionType = "loan"
	ActionReturn ActionType = "return"
)

// ManualBookID marks entries typed in by an administrator rather than recorded by a mutation.
const ManualBookID = "manual"

type ActivityLogEntry struct {
	ID          string     `json:"id"`
	ActionType  ActionType `json:"actionType"`
	ActionDate  time.Time  `json:"actionDate"`
	BookTitle   string     `json:"bookTitle"`
	BookID      string     `json:"bookId"`
	PerformedBy string     `json:"performedBy"`
	LoanerName  string     `json:"loanerName,omitempty"`
}

type ManualActivityRequest struct {
	ActionType ActionType `json:"actionType" validate:"required,oneof=add edit delete loan return"`
	// ActionDate is a calendar date (2006-01-02) or an RFC3339 timestamp.
	ActionDate string `json:"actionDate" validate:"required"`
	BookTitle  string `json:"bookTitle" validate:"required"`
	LoanerName string `json:"loanerName,omitempty"`
}

type ActivityPatch struct {
	ActionType  *ActionType `json:"actionType,omitempty" validate:"omitempty,oneof=add edit delete loan return"`
	ActionDate  *time.Time  `json:"actionDate,omitempty"`
	BookTitle   *string     `json:"bookTitle,omitempty"`
	PerformedBy *string     `json:"performedBy,omitempty"`
	LoanerName  *string     `json:"loanerName,omitempty"`
}

func (p ActivityPatch) Empty() bool {
	return p == (ActivityPatch{})
}
