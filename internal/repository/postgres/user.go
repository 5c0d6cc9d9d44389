package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/acmedash/invoicer-server/internal/logger"
	"github.com/acmedash/invoicer-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db     *Connection
	logger *logger.Logger
}

func NewUserRepository(db *Connection, logger *logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// GetByEmail returns the user with the given email, or model.ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	const query = `SELECT id, name, email, password FROM users WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		r.logger.Error("statement failed", "op", "GetUserByEmail", "error", err.Error())
		return model.User{}, &model.StoreError{Op: "GetUserByEmail", Message: "Failed to fetch user.", Err: err}
	}

	return user, nil
}
