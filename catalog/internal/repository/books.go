package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

var bookColumns = []string{
	"id", "internal_id", "title", "original_title", "authors", "language", "original_language",
	"isbn", "published_year", "translated_by", "translation_publishing_year", "publishing_house",
	"edition", "number_of_pages", "cover_image_url", "series", "genres", "sub_genres", "comments",
	"physical_location", "reading_status", "personal_rating", "date_added",
	"current_loaner_name", "current_loan_date",
}

var (
	bookSelectColumns = append([]string{"id::text"}, bookColumns[1:]...)
	// full-document overwrite of an existing id
	upsertBookSuffix = func() string {
		set := make([]string, 0, len(bookColumns)-1)
		for _, c := range bookColumns[1:] {
			set = append(set, c+" = excluded."+c)
		}
		return "on conflict (id) do update set " + strings.Join(set, ", ")
	}()
)

var sortColumns = map[string]string{
	"":                "title",
	"title":           "title",
	"internalId":      "internal_id",
	"dateAdded":       "date_added",
	"readingStatus":   "reading_status",
	"publishingHouse": "publishing_house",
}

var filterColumns = map[string]string{
	"internalId":       "internal_id",
	"language":         "language",
	"originalLanguage": "original_language",
	"isbn":             "isbn",
	"publishingHouse":  "publishing_house",
	"physicalLocation": "physical_location",
	"readingStatus":    "reading_status",
}

func bookValues(b model.Book) []interface{} {
	b.Normalize()
	var (
		loaner   *string
		loanDate *time.Time
	)
	if b.CurrentLoan != nil {
		loaner = &b.CurrentLoan.LoanerName
		loanDate = &b.CurrentLoan.LoanDate
	}
	return []interface{}{
		b.ID, b.InternalID, b.Title, b.OriginalTitle, b.Authors, b.Language, b.OriginalLanguage,
		b.ISBN, b.PublishedYear, b.TranslatedBy, b.TranslationPublishingYear, b.PublishingHouse,
		b.Edition, b.NumberOfPages, b.CoverImageURL, b.Series, b.Genres, b.SubGenres, b.Comments,
		b.PhysicalLocation, string(b.ReadingStatus), b.PersonalRating, b.DateAdded,
		loaner, loanDate,
	}
}

func scanBook(row pgx.Row) (model.Book, error) {
	var (
		b        model.Book
		status   string
		loaner   *string
		loanDate *time.Time
	)
	err := row.Scan(
		&b.ID, &b.InternalID, &b.Title, &b.OriginalTitle, &b.Authors, &b.Language, &b.OriginalLanguage,
		&b.ISBN, &b.PublishedYear, &b.TranslatedBy, &b.TranslationPublishingYear, &b.PublishingHouse,
		&b.Edition, &b.NumberOfPages, &b.CoverImageURL, &b.Series, &b.Genres, &b.SubGenres, &b.Comments,
		&b.PhysicalLocation, &status, &b.PersonalRating, &b.DateAdded,
		&loaner, &loanDate,
	)
	if err != nil {
		return model.Book{}, err
	}
	b.ReadingStatus = model.ReadingStatus(status)
	if loaner != nil && loanDate != nil {
		b.CurrentLoan = &model.CurrentLoan{LoanerName: *loaner, LoanDate: *loanDate}
	}
	b.Normalize()
	return b, nil
}

func (r *repository) queryBooks(ctx context.Context, op string, b sq.SelectBuilder) ([]model.Book, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	r.log.Debug(op, zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Book, error) {
		return scanBook(row)
	})
	if err != nil {
		return nil, errors.Wrap(mapErr(err), "pgx.CollectRows")
	}
	return books, nil
}

func (r *repository) ListBooks(ctx context.Context, q model.BookQuery) (model.BookPage, error) {
	col, ok := sortColumns[q.SortField]
	if !ok {
		return model.BookPage{}, errors.Wrapf(errs.ErrBadQuery, "sort field %q", q.SortField)
	}
	dir, cmp := "asc", ">"
	if q.Direction == model.SortDesc {
		dir, cmp = "desc", "<"
	}
	size := q.PageSize
	if size <= 0 {
		size = model.DefaultPageSize
	}

	b := qb.Select(bookSelectColumns...).From(booksTableName)
	for _, f := range q.Filters {
		switch f.Field {
		case "genres":
			b = b.Where(sq.Expr("? = any(genres)", f.Value))
		case "subGenres":
			b = b.Where(sq.Expr("? = any(sub_genres)", f.Value))
		default:
			c, ok := filterColumns[f.Field]
			if !ok {
				return model.BookPage{}, errors.Wrapf(errs.ErrBadQuery, "filter field %q", f.Field)
			}
			b = b.Where(sq.Eq{c: f.Value})
		}
	}
	if q.After != "" {
		b = b.Where(sq.Expr(
			fmt.Sprintf("(%[1]s, id) %[2]s (select %[1]s, id from %[3]s where id = ?)", col, cmp, booksTableName),
			q.After))
	}
	b = b.OrderBy(col+" "+dir, "id "+dir).Limit(uint64(size) + 1)

	books, err := r.queryBooks(ctx, "ListBooks", b)
	if err != nil {
		return model.BookPage{}, err
	}
	page := model.BookPage{Items: books}
	if len(books) > size {
		page.Items = books[:size]
		page.Next = books[size-1].ID
	}
	return page, nil
}

func (r *repository) AllBooks(ctx context.Context) ([]model.Book, error) {
	return r.queryBooks(ctx, "AllBooks",
		qb.Select(bookSelectColumns...).From(booksTableName).OrderBy("title", "id"))
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	query, args, err := qb.Select(bookSelectColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	book, err := scanBook(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Book{}, mapErr(err)
	}
	return book, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) error {
	_, err := r.exec(ctx, "CreateBook",
		qb.Insert(booksTableName).Columns(bookColumns...).Values(bookValues(book)...))
	return err
}

func (r *repository) UpdateBook(ctx context.Context, id string, patch model.BookPatch) error {
	set := bookPatchColumns(patch)
	if len(set) == 0 {
		return errs.ErrEmptyPatch
	}
	return r.execOne(ctx, "UpdateBook",
		qb.Update(booksTableName).SetMap(set).Where(sq.Eq{"id": id}))
}

func bookPatchColumns(p model.BookPatch) map[string]interface{} {
	set := make(map[string]interface{})
	put := func(col string, v *string) {
		if v != nil {
			set[col] = *v
		}
	}
	putInt := func(col string, v *int) {
		if v != nil {
			set[col] = *v
		}
	}
	put("internal_id", p.InternalID)
	put("title", p.Title)
	put("original_title", p.OriginalTitle)
	if p.Authors != nil {
		authors := *p.Authors
		if authors == nil {
			authors = []model.Author{}
		}
		set["authors"] = authors
	}
	put("language", p.Language)
	put("original_language", p.OriginalLanguage)
	put("isbn", p.ISBN)
	putInt("published_year", p.PublishedYear)
	put("translated_by", p.TranslatedBy)
	putInt("translation_publishing_year", p.TranslationPublishingYear)
	put("publishing_house", p.PublishingHouse)
	put("edition", p.Edition)
	putInt("number_of_pages", p.NumberOfPages)
	put("cover_image_url", p.CoverImageURL)
	if p.ClearSeries {
		set["series"] = nil
	} else if p.Series != nil {
		set["series"] = p.Series
	}
	if p.Genres != nil {
		set["genres"] = nonNil(*p.Genres)
	}
	if p.SubGenres != nil {
		set["sub_genres"] = nonNil(*p.SubGenres)
	}
	put("comments", p.Comments)
	put("physical_location", p.PhysicalLocation)
	if p.ReadingStatus != nil {
		set["reading_status"] = string(*p.ReadingStatus)
	}
	putInt("personal_rating", p.PersonalRating)
	return set
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (r *repository) DeleteBook(ctx context.Context, id string) error {
	return r.execOne(ctx, "DeleteBook",
		qb.Delete(booksTableName).Where(sq.Eq{"id": id}))
}

func (r *repository) InternalIDIndex(ctx context.Context) ([]model.InternalIDRef, error) {
	query, args, err := qb.Select("id::text", "internal_id").
		From(booksTableName).
		OrderBy("date_added", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	refs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.InternalIDRef, error) {
		var ref model.InternalIDRef
		err := row.Scan(&ref.ID, &ref.InternalID)
		return ref, err
	})
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return refs, nil
}

func (r *repository) CommitBookBatch(ctx context.Context, books []model.Book) error {
	b := &pgx.Batch{}
	for _, book := range books {
		query, args, err := qb.Insert(booksTableName).
			Columns(bookColumns...).
			Values(bookValues(book)...).
			Suffix(upsertBookSuffix).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "CommitBookBatch")
		}
		b.Queue(query, args...)
	}
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, b).Close()
	})
	if err != nil {
		r.log.Error("CommitBookBatch", zap.Int("size", len(books)), zap.Error(err))
		return mapErr(err)
	}
	return nil
}

func (r *repository) SetCurrentLoan(ctx context.Context, bookID string, loan *model.CurrentLoan) error {
	var (
		loaner   *string
		loanDate *time.Time
	)
	if loan != nil {
		loaner, loanDate = &loan.LoanerName, &loan.LoanDate
	}
	return r.execOne(ctx, "SetCurrentLoan",
		qb.Update(booksTableName).
			Set("current_loaner_name", loaner).
			Set("current_loan_date", loanDate).
			Where(sq.Eq{"id": bookID}))
}
