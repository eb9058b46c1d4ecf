package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/auth"
)

func (s *Service) ListBooks(ctx context.Context, q model.BookQuery) (model.BookPage, error) {
	return s.repo.ListBooks(ctx, q)
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

// BookDetails fetches a book together with its loan history.
func (s *Service) BookDetails(ctx context.Context, id string) (model.BookDetails, error) {
	var (
		book    model.Book
		history []model.LoanRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		book, err = s.repo.GetBook(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		history, err = s.repo.LoanHistory(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.BookDetails{}, err
	}
	if history == nil {
		history = []model.LoanRecord{}
	}
	return model.BookDetails{Book: book, LoanHistory: history}, nil
}

func (s *Service) CreateBook(ctx context.Context, sess auth.Session, in model.BookInput) (model.Book, error) {
	if err := requireAdmin(sess); err != nil {
		return model.Book{}, err
	}
	book := in.Book(s.newID())
	book.DateAdded = s.now()
	if err := s.repo.CreateBook(ctx, book); err != nil {
		return model.Book{}, errors.Wrap(err, "create book")
	}
	s.record(ctx, sess, model.ActionAdd, book, "")
	return book, nil
}

func (s *Service) UpdateBook(ctx context.Context, sess auth.Session, id string, patch model.BookPatch) (model.Book, error) {
	if err := requireAdmin(sess); err != nil {
		return model.Book{}, err
	}
	if patch.Empty() {
		return model.Book{}, errs.ErrEmptyPatch
	}
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	if err := s.repo.UpdateBook(ctx, id, patch); err != nil {
		return model.Book{}, err
	}
	patch.Apply(&book)
	s.record(ctx, sess, model.ActionEdit, book, "")
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, sess auth.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		return err
	}
	s.record(ctx, sess, model.ActionDelete, book, "")
	return nil
}

func (s *Service) Browse(ctx context.Context, q model.BrowseQuery) ([]model.Book, error) {
	books, err := s.repo.AllBooks(ctx)
	if err != nil {
		return nil, err
	}
	books = FilterBooks(books, q)
	SortBooks(books, q.SortField, q.Direction)
	return books, nil
}

func (s *Service) NextInternalID(ctx context.Context) (string, error) {
	books, err := s.repo.AllBooks(ctx)
	if err != nil {
		return "", err
	}
	return NextInternalID(books), nil
}

func (s *Service) Stats(ctx context.Context) (model.Stats, error) {
	books, err := s.repo.AllBooks(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	return CollectStats(books), nil
}
