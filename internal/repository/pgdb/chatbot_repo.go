package pgdb

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ChatRepo реализует журнал сессий чат-бота поверх PostgreSQL.
type ChatRepo struct {
	pool *pgxpool.Pool
}

func NewChatRepo(pool *pgxpool.Pool) *ChatRepo {
	return &ChatRepo{pool: pool}
}

func (c *ChatRepo) CreateSession(ctx context.Context, session *domain.ChatSession) (*domain.ChatSession, error) {
	query := `
		INSERT INTO chat_sessions (user_id, session_token)
		VALUES ($1, $2)
		RETURNING id, user_id, session_token, active, created_at, updated_at;
	`

	var created domain.ChatSession
	if err := q(ctx, c.pool).QueryRow(ctx, query, session.UserID, session.SessionToken).Scan(
		&created.ID, &created.UserID, &created.SessionToken,
		&created.Active, &created.CreatedAt, &created.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (c *ChatRepo) GetSessionByToken(ctx context.Context, token string) (*domain.ChatSession, error) {
	query := `
		SELECT id, user_id, session_token, active, created_at, updated_at
		FROM chat_sessions
		WHERE session_token = $1;
	`

	var session domain.ChatSession
	if err := q(ctx, c.pool).QueryRow(ctx, query, token).Scan(
		&session.ID, &session.UserID, &session.SessionToken,
		&session.Active, &session.CreatedAt, &session.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &session, nil
}

func (c *ChatRepo) CloseSession(ctx context.Context, id int64) error {
	query := `
		UPDATE chat_sessions SET active = false, updated_at = NOW()
		WHERE id = $1 AND active = true;
	`

	tag, err := q(ctx, c.pool).Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
	}

	return nil
}

func (c *ChatRepo) AppendMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	query := `
		INSERT INTO chat_messages (session_id, sender, message)
		VALUES ($1, $2, $3)
		RETURNING id, session_id, sender, message, created_at;
	`

	var created domain.ChatMessage
	if err := q(ctx, c.pool).QueryRow(ctx, query,
		message.SessionID, message.Sender, message.Message,
	).Scan(
		&created.ID, &created.SessionID, &created.Sender, &created.Message, &created.CreatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (c *ChatRepo) ListMessages(ctx context.Context, sessionID int64, page *usecase.PageParams) ([]domain.ChatMessage, int64, error) {
	query := `
		SELECT id, session_id, sender, message, created_at, COUNT(*) OVER() AS total
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3;
	`

	rows, err := q(ctx, c.pool).Query(ctx, query, sessionID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int64
	result := make([]domain.ChatMessage, 0)
	for rows.Next() {
		var message domain.ChatMessage
		if err := rows.Scan(
			&message.ID, &message.SessionID, &message.Sender, &message.Message, &message.CreatedAt, &total,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, message)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, total, nil
}
