package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

func (r *repository) CreateUser(ctx context.Context, user model.User) error {
	_, err := r.exec(ctx, "CreateUser",
		qb.Insert(usersTableName).
			Columns("id", "email", "password_hash", "admin").
			Values(user.ID, strings.ToLower(user.Email), user.PasswordHash, user.Admin))
	return err
}

func (r *repository) UserByEmail(ctx context.Context, email string) (model.User, error) {
	query, args, err := qb.Select("id::text", "email", "password_hash", "admin").
		From(usersTableName).
		Where(sq.Eq{"email": strings.ToLower(email)}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := r.db.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Admin); err != nil {
		return model.User{}, mapErr(err)
	}
	return u, nil
}

func (r *repository) SetAdmin(ctx context.Context, email string, admin bool) error {
	return r.execOne(ctx, "SetAdmin",
		qb.Update(usersTableName).
			Set("admin", admin).
			Where(sq.Eq{"email": strings.ToLower(email)}))
}
