package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

type BookRepository interface {
	ListBooks(ctx context.Context, q model.BookQuery) (model.BookPage, error)
	AllBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	CreateBook(ctx context.Context, book model.Book) error
	UpdateBook(ctx context.Context, id string, patch model.BookPatch) error
	DeleteBook(ctx context.Context, id string) error
	// InternalIDIndex scans every book, ordered by date_added then id.
	InternalIDIndex(ctx context.Context) ([]model.InternalIDRef, error)
	// CommitBookBatch writes every book under its id in a single transaction.
	CommitBookBatch(ctx context.Context, books []model.Book) error
	SetCurrentLoan(ctx context.Context, bookID string, loan *model.CurrentLoan) error
}

type LoanRepository interface {
	AddLoan(ctx context.Context, rec model.LoanRecord) error
	CloseLoan(ctx context.Context, bookID, loanID string, returnDate time.Time) error
	LoanHistory(ctx context.Context, bookID string) ([]model.LoanRecord, error)
	OpenLoans(ctx context.Context) ([]model.LoanRecord, error)
}

type WishlistRepository interface {
	ListWishlist(ctx context.Context) ([]model.WishlistItem, error)
	AddWishlist(ctx context.Context, item model.WishlistItem) error
	UpdateWishlist(ctx context.Context, id string, patch model.WishlistPatch) error
	DeleteWishlist(ctx context.Context, id string) error
}

type ActivityRepository interface {
	ListActivity(ctx context.Context) ([]model.ActivityLogEntry, error)
	AddActivity(ctx context.Context, entry model.ActivityLogEntry) error
	UpdateActivity(ctx context.Context, id string, patch model.ActivityPatch) error
	DeleteActivity(ctx context.Context, id string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) error
	UserByEmail(ctx context.Context, email string) (model.User, error)
	SetAdmin(ctx context.Context, email string, admin bool) error
}

type Repository interface {
	BookRepository
	LoanRepository
	WishlistRepository
	ActivityRepository
	UserRepository
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName       = `books`
	loanHistoryTableName = `loan_history`
	wishlistTableName    = `wishlist`
	activityTableName    = `activity_log`
	usersTableName       = `users`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// mapErr translates driver errors into errs sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Wrap(errs.ErrAlreadyExists, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return errors.Wrap(errs.ErrNotFound, pgErr.ConstraintName)
		case pgerrcode.InvalidTextRepresentation:
			// malformed uuid in a lookup
			return errs.ErrNotFound
		}
	}
	return err
}

func (r *repository) exec(ctx context.Context, op string, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, op)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error(op, zap.String("q", query), zap.Error(err))
		return 0, mapErr(err)
	}
	return tag.RowsAffected(), nil
}

// execOne is exec that reports errs.ErrNotFound when no row was touched.
func (r *repository) execOne(ctx context.Context, op string, b sq.Sqlizer) error {
	n, err := r.exec(ctx, op, b)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
