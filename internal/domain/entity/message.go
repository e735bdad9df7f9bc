package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two users.
type Message struct {
	ID         uuid.UUID
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Body       string
	IsSeen     bool // Set once the receiver has viewed the message.
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// SenderName and ReceiverName are resolved display handles, populated by
	// the repository when listing conversations. Not persisted on the message.
	SenderName   string
	ReceiverName string
}

// CursorTime reports the creation timestamp used as this entity's pagination cursor.
func (m *Message) CursorTime() time.Time {
	return m.CreatedAt
}

// Correspondent summarizes one side of a direct-message conversation.
type Correspondent struct {
	UserID      uuid.UUID
	Username    string
	UnseenCount int  // Messages from/to this correspondent not yet seen.
	IsSender    bool // True when the correspondent initiated the thread.
}
