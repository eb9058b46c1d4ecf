package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

func (r *repository) ListActivity(ctx context.Context) ([]model.ActivityLogEntry, error) {
	query, args, err := qb.Select("id::text", "action_type", "action_date", "book_title", "book_id", "performed_by", "loaner_name").
		From(activityTableName).
		OrderBy("action_date desc", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ActivityLogEntry, error) {
		var (
			e      model.ActivityLogEntry
			action string
		)
		err := row.Scan(&e.ID, &action, &e.ActionDate, &e.BookTitle, &e.BookID, &e.PerformedBy, &e.LoanerName)
		e.ActionType = model.ActionType(action)
		return e, err
	})
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return entries, nil
}

func (r *repository) AddActivity(ctx context.Context, e model.ActivityLogEntry) error {
	_, err := r.exec(ctx, "AddActivity",
		qb.Insert(activityTableName).
			Columns("id", "action_type", "action_date", "book_title", "book_id", "performed_by", "loaner_name").
			Values(e.ID, string(e.ActionType), e.ActionDate, e.BookTitle, e.BookID, e.PerformedBy, e.LoanerName).
			Suffix("on conflict (id) do nothing"))
	return err
}

func (r *repository) UpdateActivity(ctx context.Context, id string, patch model.ActivityPatch) error {
	set := make(map[string]interface{})
	if patch.ActionType != nil {
		set["action_type"] = string(*patch.ActionType)
	}
	if patch.ActionDate != nil {
		set["action_date"] = *patch.ActionDate
	}
	if patch.BookTitle != nil {
		set["book_title"] = *patch.BookTitle
	}
	if patch.PerformedBy != nil {
		set["performed_by"] = *patch.PerformedBy
	}
	if patch.LoanerName != nil {
		set["loaner_name"] = *patch.LoanerName
	}
	if len(set) == 0 {
		return errs.ErrEmptyPatch
	}
	return r.execOne(ctx, "UpdateActivity",
		qb.Update(activityTableName).SetMap(set).Where(sq.Eq{"id": id}))
}

func (r *repository) DeleteActivity(ctx context.Context, id string) error {
	return r.execOne(ctx, "DeleteActivity",
		qb.Delete(activityTableName).Where(sq.Eq{"id": id}))
}
