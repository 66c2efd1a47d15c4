package domain

import "time"

// Отправители сообщений чат-бота
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatSession описывает сессию чат-бота
type ChatSession struct {
	ID           int64
	UserID       *int64
	SessionToken string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// ChatMessage описывает сообщение в сессии чат-бота
type ChatMessage struct {
	ID        int64
	SessionID int64
	Sender    string
	Message   string
	CreatedAt time.Time
}
