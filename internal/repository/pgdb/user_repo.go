package pgdb

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, email, password_hash, first_name, last_name, role, active, created_at, updated_at`

func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns + `;
	`

	var created domain.User
	if err := q(ctx, u.pool).QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role,
	).Scan(
		&created.ID, &created.Email, &created.PasswordHash, &created.FirstName,
		&created.LastName, &created.Role, &created.Active, &created.CreatedAt, &created.UpdatedAt,
	); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmailTaken)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (u *UserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE users SET
			first_name = $2,
			last_name = $3,
			password_hash = $4,
			updated_at = NOW()
		WHERE id = $1 AND active = true
		RETURNING ` + userColumns + `;
	`

	var updated domain.User
	if err := q(ctx, u.pool).QueryRow(ctx, query,
		user.ID, user.FirstName, user.LastName, user.PasswordHash,
	).Scan(
		&updated.ID, &updated.Email, &updated.PasswordHash, &updated.FirstName,
		&updated.LastName, &updated.Role, &updated.Active, &updated.CreatedAt, &updated.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &updated, nil
}

func (u *UserRepo) Deactivate(ctx context.Context, id int64) error {
	query := `
		UPDATE users SET active = false, updated_at = NOW()
		WHERE id = $1 AND active = true;
	`

	tag, err := q(ctx, u.pool).Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
	}

	return nil
}

func (u *UserRepo) GetActiveByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND active = true;
	`

	return u.scanUser(q(ctx, u.pool).QueryRow(ctx, query, id))
}

func (u *UserRepo) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND active = true;
	`

	return u.scanUser(q(ctx, u.pool).QueryRow(ctx, query, email))
}

func (u *UserRepo) List(ctx context.Context, page *usecase.PageParams) ([]domain.User, int64, error) {
	query := `
		SELECT ` + userColumns + `, COUNT(*) OVER() AS total
		FROM users
		WHERE active = true
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`

	rows, err := q(ctx, u.pool).Query(ctx, query, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int64
	result := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID, &user.Email, &user.PasswordHash, &user.FirstName,
			&user.LastName, &user.Role, &user.Active, &user.CreatedAt, &user.UpdatedAt, &total,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, total, nil
}

func (u *UserRepo) scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName,
		&user.LastName, &user.Role, &user.Active, &user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &user, nil
}
