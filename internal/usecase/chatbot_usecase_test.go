package usecase

import (
	"context"
	"testing"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatbotSessionLifecycle(t *testing.T) {
	chatRepo := newFakeChatRepo()
	uc := NewChatbotUC(chatRepo, logger.NewSlogLogger())
	ctx := context.Background()

	session, err := uc.StartSession(ctx, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionToken)
	assert.True(t, session.Active)
	assert.Nil(t, session.UserID)

	msg, err := uc.AppendMessage(ctx, &AppendMessageReq{
		SessionToken: session.SessionToken,
		Sender:       domain.SenderUser,
		Message:      "какие наушники посоветуешь?",
	})
	require.NoError(t, err)
	assert.Equal(t, session.ID, msg.SessionID)

	_, err = uc.AppendMessage(ctx, &AppendMessageReq{
		SessionToken: session.SessionToken,
		Sender:       domain.SenderBot,
		Message:      "возьмите любые с шумоподавлением",
	})
	require.NoError(t, err)

	page, err := uc.ListMessages(ctx, session.SessionToken, &PageParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	require.NoError(t, uc.CloseSession(ctx, session.SessionToken))

	// в закрытую сессию писать нельзя
	_, err = uc.AppendMessage(ctx, &AppendMessageReq{
		SessionToken: session.SessionToken,
		Sender:       domain.SenderUser,
		Message:      "ещё вопрос",
	})
	assert.ErrorIs(t, err, e.ErrSessionNotFound)
}

func TestAppendMessage_Validation(t *testing.T) {
	chatRepo := newFakeChatRepo()
	uc := NewChatbotUC(chatRepo, logger.NewSlogLogger())
	ctx := context.Background()

	session, err := uc.StartSession(ctx, nil)
	require.NoError(t, err)

	_, err = uc.AppendMessage(ctx, &AppendMessageReq{
		SessionToken: session.SessionToken,
		Sender:       domain.SenderUser,
		Message:      "   ",
	})
	assert.ErrorIs(t, err, e.ErrMissingFields)

	_, err = uc.AppendMessage(ctx, &AppendMessageReq{
		SessionToken: session.SessionToken,
		Sender:       "system",
		Message:      "hi",
	})
	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestStartSession_BindsUser(t *testing.T) {
	chatRepo := newFakeChatRepo()
	uc := NewChatbotUC(chatRepo, logger.NewSlogLogger())

	userID := int64(15)
	session, err := uc.StartSession(context.Background(), &userID)
	require.NoError(t, err)
	require.NotNil(t, session.UserID)
	assert.Equal(t, int64(15), *session.UserID)
}
