package pgdb

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// FeedbackRepo реализует репозиторий отзывов поверх PostgreSQL.
type FeedbackRepo struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepo(pool *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{pool: pool}
}

func (f *FeedbackRepo) Create(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error) {
	query := `
		INSERT INTO feedback (order_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, user_id, rating, comment, created_at, updated_at;
	`

	var created domain.Feedback
	if err := q(ctx, f.pool).QueryRow(ctx, query,
		feedback.OrderID, feedback.UserID, feedback.Rating, feedback.Comment,
	).Scan(
		&created.ID, &created.OrderID, &created.UserID,
		&created.Rating, &created.Comment, &created.CreatedAt, &created.UpdatedAt,
	); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrDuplicateFeedback)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (f *FeedbackRepo) ListByOrder(ctx context.Context, orderID int64) ([]domain.Feedback, error) {
	query := `
		SELECT id, order_id, user_id, rating, comment, created_at, updated_at
		FROM feedback
		WHERE order_id = $1
		ORDER BY created_at;
	`

	rows, err := q(ctx, f.pool).Query(ctx, query, orderID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Feedback, 0)
	for rows.Next() {
		var feedback domain.Feedback
		if err := rows.Scan(
			&feedback.ID, &feedback.OrderID, &feedback.UserID,
			&feedback.Rating, &feedback.Comment, &feedback.CreatedAt, &feedback.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, feedback)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (f *FeedbackRepo) Delete(ctx context.Context, id int64) error {
	tag, err := q(ctx, f.pool).Exec(ctx, `DELETE FROM feedback WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrFeedbackNotFound)
	}

	return nil
}
