package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/auth"
)

func (s *Service) ListActivity(ctx context.Context, sess auth.Session) ([]model.ActivityLogEntry, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	return s.repo.ListActivity(ctx)
}

// AddManualActivity records an entry typed in by an administrator.
func (s *Service) AddManualActivity(ctx context.Context, sess auth.Session, req model.ManualActivityRequest) (model.ActivityLogEntry, error) {
	if err := requireAdmin(sess); err != nil {
		return model.ActivityLogEntry{}, err
	}
	date, err := parseActionDate(req.ActionDate)
	if err != nil {
		return model.ActivityLogEntry{}, err
	}
	entry := model.ActivityLogEntry{
		ID:          s.newID(),
		ActionType:  req.ActionType,
		ActionDate:  date,
		BookTitle:   strings.TrimSpace(req.BookTitle),
		BookID:      model.ManualBookID,
		PerformedBy: sess.Email,
		LoanerName:  strings.TrimSpace(req.LoanerName),
	}
	if err := s.repo.AddActivity(ctx, entry); err != nil {
		return model.ActivityLogEntry{}, err
	}
	return entry, nil
}

func (s *Service) UpdateActivity(ctx context.Context, sess auth.Session, id string, patch model.ActivityPatch) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if patch.Empty() {
		return errs.ErrEmptyPatch
	}
	return s.repo.UpdateActivity(ctx, id, patch)
}

func (s *Service) DeleteActivity(ctx context.Context, sess auth.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	return s.repo.DeleteActivity(ctx, id)
}

func parseActionDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrap(errs.ErrInvalidDate, v)
}
