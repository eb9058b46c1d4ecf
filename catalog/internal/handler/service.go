package handler

import (
	"context"
	"io"

	"github.com/Astemirdum/library-catalog/catalog/internal/importer"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
	"github.com/Astemirdum/library-catalog/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	ListBooks(ctx context.Context, q model.BookQuery) (model.BookPage, error)
	Browse(ctx context.Context, q model.BrowseQuery) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	BookDetails(ctx context.Context, id string) (model.BookDetails, error)
	CreateBook(ctx context.Context, sess auth.Session, in model.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, sess auth.Session, id string, patch model.BookPatch) (model.Book, error)
	DeleteBook(ctx context.Context, sess auth.Session, id string) error
	NextInternalID(ctx context.Context) (string, error)
	Stats(ctx context.Context) (model.Stats, error)

	LoanBook(ctx context.Context, sess auth.Session, bookID string, req model.LoanRequest) (model.LoanRecord, error)
	ReturnBook(ctx context.Context, sess auth.Session, bookID string, req model.ReturnRequest) (model.LoanRecord, error)
	GetLoanHistory(ctx context.Context, bookID string) ([]model.LoanRecord, error)
	ReconcileLoans(ctx context.Context, sess auth.Session) (model.ReconcileResult, error)

	PreviewSheet(r io.Reader, format importer.Format) ([]model.ParsedRow, error)
	ImportSheet(ctx context.Context, sess auth.Session, r io.Reader, format importer.Format) (model.ImportReport, error)
	ExportSheet(ctx context.Context, w io.Writer, format importer.Format) error

	ListWishlist(ctx context.Context) ([]model.WishlistItem, error)
	AddWishlist(ctx context.Context, sess auth.Session, in model.WishlistInput) (model.WishlistItem, error)
	UpdateWishlist(ctx context.Context, sess auth.Session, id string, patch model.WishlistPatch) error
	DeleteWishlist(ctx context.Context, sess auth.Session, id string) error

	ListActivity(ctx context.Context, sess auth.Session) ([]model.ActivityLogEntry, error)
	AddManualActivity(ctx context.Context, sess auth.Session, req model.ManualActivityRequest) (model.ActivityLogEntry, error)
	UpdateActivity(ctx context.Context, sess auth.Session, id string, patch model.ActivityPatch) error
	DeleteActivity(ctx context.Context, sess auth.Session, id string) error

	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
}

var _ CatalogService = (*service.Service)(nil)
