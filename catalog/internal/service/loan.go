package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/auth"
)

// LoanBook moves a book from available to loaned: the history entry is written
// first, then the book's loan pointer.
func (s *Service) LoanBook(ctx context.Context, sess auth.Session, bookID string, req model.LoanRequest) (model.LoanRecord, error) {
	if err := requireAdmin(sess); err != nil {
		return model.LoanRecord{}, err
	}
	name := strings.TrimSpace(req.LoanerName)
	if name == "" {
		return model.LoanRecord{}, errs.ErrLoanerName
	}
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.LoanRecord{}, err
	}
	if book.Loaned() {
		return model.LoanRecord{}, errors.Wrapf(errs.ErrAlreadyLoaned, "loaned to %s", book.CurrentLoan.LoanerName)
	}
	// An import overwrite clears the pointer but keeps history, so the open
	// entry is the source of truth.
	history, err := s.repo.LoanHistory(ctx, bookID)
	if err != nil {
		return model.LoanRecord{}, err
	}
	if open, ok := openEntry(history); ok {
		return model.LoanRecord{}, errors.Wrapf(errs.ErrAlreadyLoaned, "open loan to %s", open.LoanerName)
	}

	loanDate := s.dateOrNow(req.LoanDate)
	rec := model.LoanRecord{
		ID:         s.newID(),
		BookID:     bookID,
		LoanerName: name,
		LoanDate:   loanDate,
		Notes:      strings.TrimSpace(req.Notes),
	}
	if err := s.repo.AddLoan(ctx, rec); err != nil {
		return model.LoanRecord{}, errors.Wrap(err, "add loan")
	}
	if err := s.repo.SetCurrentLoan(ctx, bookID, &model.CurrentLoan{LoanerName: name, LoanDate: loanDate}); err != nil {
		s.log.Error("loan pointer not set, history has an orphaned open entry",
			zap.String("bookId", bookID), zap.String("loanId", rec.ID), zap.Error(err))
		return model.LoanRecord{}, errors.Wrap(err, "set current loan")
	}
	s.record(ctx, sess, model.ActionLoan, book, name)
	return rec, nil
}

// ReturnBook closes the open history entry, then clears the loan pointer.
func (s *Service) ReturnBook(ctx context.Context, sess auth.Session, bookID string, req model.ReturnRequest) (model.LoanRecord, error) {
	if err := requireAdmin(sess); err != nil {
		return model.LoanRecord{}, err
	}
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.LoanRecord{}, err
	}
	history, err := s.repo.LoanHistory(ctx, bookID)
	if err != nil {
		return model.LoanRecord{}, err
	}
	open, ok := openEntry(history)
	if !ok {
		return model.LoanRecord{}, errs.ErrNotLoaned
	}

	returnDate := s.dateOrNow(req.ReturnDate)
	if err := s.repo.CloseLoan(ctx, bookID, open.ID, returnDate); err != nil {
		return model.LoanRecord{}, errors.Wrap(err, "close loan")
	}
	if err := s.repo.SetCurrentLoan(ctx, bookID, nil); err != nil {
		s.log.Error("loan pointer not cleared, book still shows as loaned",
			zap.String("bookId", bookID), zap.String("loanId", open.ID), zap.Error(err))
		return model.LoanRecord{}, errors.Wrap(err, "clear current loan")
	}
	open.ReturnDate = &returnDate
	s.record(ctx, sess, model.ActionReturn, book, open.LoanerName)
	return open, nil
}

// GetLoanHistory lists a book's loans, most recent first.
func (s *Service) GetLoanHistory(ctx context.Context, bookID string) ([]model.LoanRecord, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return nil, err
	}
	history, err := s.repo.LoanHistory(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []model.LoanRecord{}
	}
	return history, nil
}

// ReconcileLoans repairs books whose loan pointer disagrees with their history:
// the pointer is set to the most recent open entry, or cleared when there is none.
func (s *Service) ReconcileLoans(ctx context.Context, sess auth.Session) (model.ReconcileResult, error) {
	if err := requireAdmin(sess); err != nil {
		return model.ReconcileResult{}, err
	}
	books, err := s.repo.AllBooks(ctx)
	if err != nil {
		return model.ReconcileResult{}, err
	}
	open, err := s.repo.OpenLoans(ctx)
	if err != nil {
		return model.ReconcileResult{}, err
	}
	latest := make(map[string]model.LoanRecord, len(open))
	for _, rec := range open {
		prev, seen := latest[rec.BookID]
		if !seen {
			latest[rec.BookID] = rec
			continue
		}
		s.log.Warn("several open loans", zap.String("bookId", rec.BookID),
			zap.String("kept", prev.ID), zap.String("extra", rec.ID))
		if rec.LoanDate.After(prev.LoanDate) {
			latest[rec.BookID] = rec
		}
	}

	res := model.ReconcileResult{Checked: len(books)}
	for _, b := range books {
		var want *model.CurrentLoan
		if rec, ok := latest[b.ID]; ok {
			want = &model.CurrentLoan{LoanerName: rec.LoanerName, LoanDate: rec.LoanDate}
		}
		if sameLoan(b.CurrentLoan, want) {
			continue
		}
		if err := s.repo.SetCurrentLoan(ctx, b.ID, want); err != nil {
			return res, errors.Wrapf(err, "repair book %s", b.ID)
		}
		s.log.Info("loan pointer repaired", zap.String("bookId", b.ID), zap.Bool("loaned", want != nil))
		res.Repaired++
	}
	return res, nil
}

// openEntry returns the first entry without a return date.
func openEntry(history []model.LoanRecord) (model.LoanRecord, bool) {
	for _, rec := range history {
		if rec.Open() {
			return rec, true
		}
	}
	return model.LoanRecord{}, false
}

func sameLoan(a, b *model.CurrentLoan) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.LoanerName == b.LoanerName && a.LoanDate.Equal(b.LoanDate)
}

func (s *Service) dateOrNow(t *time.Time) time.Time {
	if t == nil || t.IsZero() {
		return s.now()
	}
	return *t
}
