package history

import (
	"time"

	"sommelier-srv/internal/model"
	"sommelier-srv/pkg/paginator"
)

// Senders of a reported message.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

type RecordInput struct {
	UserID   string
	Query    string
	Reply    string
	Route    string
	Degraded bool
}

// ListInput pages through a user's transcript, newest first.
type ListInput struct {
	UserID   string
	Paginate paginator.PaginateQuery
}

type ListOutput struct {
	Messages  []model.ChatMessage
	Paginator paginator.Paginator
}

type ReportInput struct {
	UserID string
	Text   string
	Sender string
	SentAt *time.Time
}
