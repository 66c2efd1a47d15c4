package usecase

import (
	"context"
	"strings"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/google/uuid"
)

// ChatbotUseCase реализует журнал сессий чат-бота.
type ChatbotUseCase struct {
	chatRepo ChatRepository
	logger   logger.Logger
}

func NewChatbotUC(chatRepo ChatRepository, logger logger.Logger) *ChatbotUseCase {
	return &ChatbotUseCase{
		chatRepo: chatRepo,
		logger:   logger,
	}
}

// StartSession открывает новую сессию; userID опционален для анонимных сессий.
func (c *ChatbotUseCase) StartSession(ctx context.Context, userID *int64) (*domain.ChatSession, error) {
	const op = "ChatbotUseCase.StartSession"

	session, err := c.chatRepo.CreateSession(ctx, &domain.ChatSession{
		UserID:       userID,
		SessionToken: uuid.NewString(),
		Active:       true,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

// AppendMessage дописывает сообщение в активную сессию.
func (c *ChatbotUseCase) AppendMessage(ctx context.Context, req *AppendMessageReq) (*domain.ChatMessage, error) {
	const op = "ChatbotUseCase.AppendMessage"

	if strings.TrimSpace(req.Message) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	if req.Sender != domain.SenderUser && req.Sender != domain.SenderBot {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	session, err := c.chatRepo.GetSessionByToken(ctx, req.SessionToken)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !session.Active {
		return nil, e.Wrap(op, e.ErrSessionNotFound)
	}

	message, err := c.chatRepo.AppendMessage(ctx, &domain.ChatMessage{
		SessionID: session.ID,
		Sender:    req.Sender,
		Message:   req.Message,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return message, nil
}

// ListMessages возвращает страницу сообщений сессии.
func (c *ChatbotUseCase) ListMessages(ctx context.Context, sessionToken string, page *PageParams) (*Page[domain.ChatMessage], error) {
	const op = "ChatbotUseCase.ListMessages"

	session, err := c.chatRepo.GetSessionByToken(ctx, sessionToken)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	page.Normalize()

	messages, total, err := c.chatRepo.ListMessages(ctx, session.ID, page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPage(messages, total, page), nil
}

// CloseSession закрывает сессию по токену.
func (c *ChatbotUseCase) CloseSession(ctx context.Context, sessionToken string) error {
	const op = "ChatbotUseCase.CloseSession"

	session, err := c.chatRepo.GetSessionByToken(ctx, sessionToken)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := c.chatRepo.CloseSession(ctx, session.ID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
