package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/auth"
)

func (s *Service) ListWishlist(ctx context.Context) ([]model.WishlistItem, error) {
	return s.repo.ListWishlist(ctx)
}

func (s *Service) AddWishlist(ctx context.Context, sess auth.Session, in model.WishlistInput) (model.WishlistItem, error) {
	if err := requireAdmin(sess); err != nil {
		return model.WishlistItem{}, err
	}
	item := model.WishlistItem{
		ID:              s.newID(),
		BookName:        strings.TrimSpace(in.BookName),
		SeriesName:      strings.TrimSpace(in.SeriesName),
		BookVolume:      strings.TrimSpace(in.BookVolume),
		Author:          strings.TrimSpace(in.Author),
		PublishingHouse: strings.TrimSpace(in.PublishingHouse),
		DateAdded:       s.now(),
	}
	if item.BookName == "" {
		return model.WishlistItem{}, errs.ErrBookName
	}
	if err := s.repo.AddWishlist(ctx, item); err != nil {
		return model.WishlistItem{}, err
	}
	return item, nil
}

func (s *Service) UpdateWishlist(ctx context.Context, sess auth.Session, id string, patch model.WishlistPatch) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if patch.Empty() {
		return errs.ErrEmptyPatch
	}
	return s.repo.UpdateWishlist(ctx, id, patch)
}

func (s *Service) DeleteWishlist(ctx context.Context, sess auth.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	return s.repo.DeleteWishlist(ctx, id)
}
