package event

import (
	"time"

	"sommelier-srv/internal/model"
)

const (
	TypePreferenceUpdated = "preference.updated"
	TypeMessageReported   = "message.reported"
)

// Sources of a preference change.
const (
	SourceChat = "chat"
	SourceAPI  = "api"
)

// Event is the JSON envelope published for every domain event. Messages are keyed by user id.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type PreferenceUpdatedPayload struct {
	Source      string            `json:"source"`
	Fields      []string          `json:"fields"`
	Preferences model.Preferences `json:"preferences"`
}

type MessageReportedPayload struct {
	ReportID string `json:"report_id"`
	Text     string `json:"text"`
	Sender   string `json:"sender"`
}
