package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"tambula/internal/model"
	"tambula/internal/pkg/dbutil"
	appErr "tambula/internal/pkg/errors"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a user row. A unique violation on either username or
// email surfaces as ErrConflict.
func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	data := map[string]interface{}{
		"username":      user.Username,
		"password_hash": user.PasswordHash,
		"email":         user.Email,
		"name":          user.Name,
		"ctime":         user.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("users", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	where := map[string]interface{}{"username": username}
	sqlStr, args, err := builder.BuildSelect("users", where, []string{"username", "password_hash", "email", "name", "ctime"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var user model.User
	if err := rows.Scan(&user.Username, &user.PasswordHash, &user.Email, &user.Name, &user.Ctime); err != nil {
		return nil, err
	}
	return &user, nil
}
