package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	catalogRepo "github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/Astemirdum/library-catalog/pkg/auth"
)

type TokenIssuer interface {
	Issue(s auth.Session) (string, error)
}

type Service struct {
	log     *zap.Logger
	repo    catalogRepo.Repository
	journal Journal
	tokens  TokenIssuer
	now     func() time.Time
	newID   func() string
}

type Option func(*Service)

func WithJournal(j Journal) Option {
	return func(s *Service) {
		s.journal = j
	}
}

func WithTokenIssuer(t TokenIssuer) Option {
	return func(s *Service) {
		s.tokens = t
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func NewService(repo catalogRepo.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:   log.Named("service"),
		repo:  repo,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.journal == nil {
		s.journal = NewStoreJournal(repo)
	}
	return s
}

func requireAdmin(sess auth.Session) error {
	if !sess.IsAdmin {
		return errs.ErrForbidden
	}
	return nil
}

// record appends an activity entry. Failures are logged and never reach the caller.
func (s *Service) record(ctx context.Context, sess auth.Session, action model.ActionType, book model.Book, loanerName string) {
	entry := model.ActivityLogEntry{
		ID:          s.newID(),
		ActionType:  action,
		ActionDate:  s.now(),
		BookTitle:   book.Title,
		BookID:      book.ID,
		PerformedBy: sess.Email,
		LoanerName:  loanerName,
	}
	if err := s.journal.Record(ctx, entry); err != nil {
		s.log.Warn("activity not recorded",
			zap.String("action", string(action)),
			zap.String("bookId", book.ID),
			zap.Error(err))
	}
}
