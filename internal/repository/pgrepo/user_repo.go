package pgrepo

import (
	"context"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
)

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// FindByEmail ищет администратора по email. Дефолтный администратор
// создается миграцией.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT id, created_at, updated_at, email, password, role
		FROM users WHERE email = $1`, email)

	var user domain.User
	if err := row.Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Email, &user.Password, &user.Role,
	); err != nil {
		return nil, convertErr(err, "finding user by email `%s`", email)
	}
	return &user, nil
}
