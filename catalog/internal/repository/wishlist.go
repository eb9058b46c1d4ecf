package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

func (r *repository) ListWishlist(ctx context.Context) ([]model.WishlistItem, error) {
	query, args, err := qb.Select("id::text", "book_name", "series_name", "book_volume", "author", "publishing_house", "date_added").
		From(wishlistTableName).
		OrderBy("date_added desc", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.WishlistItem, error) {
		var it model.WishlistItem
		err := row.Scan(&it.ID, &it.BookName, &it.SeriesName, &it.BookVolume, &it.Author, &it.PublishingHouse, &it.DateAdded)
		return it, err
	})
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}

func (r *repository) AddWishlist(ctx context.Context, item model.WishlistItem) error {
	_, err := r.exec(ctx, "AddWishlist",
		qb.Insert(wishlistTableName).
			Columns("id", "book_name", "series_name", "book_volume", "author", "publishing_house", "date_added").
			Values(item.ID, item.BookName, item.SeriesName, item.BookVolume, item.Author, item.PublishingHouse, item.DateAdded))
	return err
}

func (r *repository) UpdateWishlist(ctx context.Context, id string, patch model.WishlistPatch) error {
	set := make(map[string]interface{})
	for col, v := range map[string]*string{
		"book_name":        patch.BookName,
		"series_name":      patch.SeriesName,
		"book_volume":      patch.BookVolume,
		"author":           patch.Author,
		"publishing_house": patch.PublishingHouse,
	} {
		if v != nil {
			set[col] = *v
		}
	}
	if len(set) == 0 {
		return errs.ErrEmptyPatch
	}
	return r.execOne(ctx, "UpdateWishlist",
		qb.Update(wishlistTableName).SetMap(set).Where(sq.Eq{"id": id}))
}

func (r *repository) DeleteWishlist(ctx context.Context, id string) error {
	return r.execOne(ctx, "DeleteWishlist",
		qb.Delete(wishlistTableName).Where(sq.Eq{"id": id}))
}
