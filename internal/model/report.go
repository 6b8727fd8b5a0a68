package model

import "time"

// MessageReport is a user's complaint about a chat message.
type MessageReport struct {
	ID        string
	UserID    string
	Text      string
	Sender    string // user | bot
	SentAt    *time.Time
	CreatedAt time.Time
}
