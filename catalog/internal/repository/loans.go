package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

var loanColumns = []string{"id::text", "book_id::text", "loaner_name", "loan_date", "return_date", "notes"}

func (r *repository) AddLoan(ctx context.Context, rec model.LoanRecord) error {
	_, err := r.exec(ctx, "AddLoan",
		qb.Insert(loanHistoryTableName).
			Columns("id", "book_id", "loaner_name", "loan_date", "return_date", "notes").
			Values(rec.ID, rec.BookID, rec.LoanerName, rec.LoanDate, rec.ReturnDate, rec.Notes))
	return err
}

func (r *repository) CloseLoan(ctx context.Context, bookID, loanID string, returnDate time.Time) error {
	return r.execOne(ctx, "CloseLoan",
		qb.Update(loanHistoryTableName).
			Set("return_date", returnDate).
			Where(sq.Eq{"id": loanID, "book_id": bookID, "return_date": nil}))
}

func (r *repository) LoanHistory(ctx context.Context, bookID string) ([]model.LoanRecord, error) {
	return r.queryLoans(ctx, qb.Select(loanColumns...).
		From(loanHistoryTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("loan_date desc", "id"))
}

// OpenLoans lists every entry without a return date, newest first within a book.
func (r *repository) OpenLoans(ctx context.Context) ([]model.LoanRecord, error) {
	return r.queryLoans(ctx, qb.Select(loanColumns...).
		From(loanHistoryTableName).
		Where(sq.Eq{"return_date": nil}).
		OrderBy("book_id", "loan_date desc", "id"))
}

func (r *repository) queryLoans(ctx context.Context, b sq.SelectBuilder) ([]model.LoanRecord, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	loans, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.LoanRecord, error) {
		var rec model.LoanRecord
		err := row.Scan(&rec.ID, &rec.BookID, &rec.LoanerName, &rec.LoanDate, &rec.ReturnDate, &rec.Notes)
		return rec, err
	})
	if err != nil {
		return nil, errors.Wrap(mapErr(err), "pgx.CollectRows")
	}
	return loans, nil
}
