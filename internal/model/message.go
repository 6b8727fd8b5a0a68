package model

import "time"

// ChatMessage is one recorded dialogue turn: the user's query and the reply it produced.
type ChatMessage struct {
	ID        string
	UserID    string
	Query     string
	Reply     string
	Route     string // update | greeting | capabilities | recall | off_topic | answer | error
	Degraded  bool
	CreatedAt time.Time
}
