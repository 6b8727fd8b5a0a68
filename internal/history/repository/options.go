package repository

import "time"

type CreateMessageOptions struct {
	UserID   string
	Query    string
	Reply    string
	Route    string
	Degraded bool
}

type ListMessagesOptions struct {
	UserID string
	Limit  int
	Offset int
}

type CreateReportOptions struct {
	UserID string
	Text   string
	Sender string
	SentAt *time.Time
}
