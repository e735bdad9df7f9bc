package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
)

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index"`
	Body       string    `gorm:"type:text;not null"`
	IsSeen     bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Display handles joined from the users table on read.
	SenderName   string `gorm:"->;-:migration"`
	ReceiverName string `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}

// ToEntity converts the row into a domain entity.
func (m *MessageModel) ToEntity() *entity.Message {
	return &entity.Message{
		ID:           m.ID,
		SenderID:     m.SenderID,
		ReceiverID:   m.ReceiverID,
		Body:         m.Body,
		IsSeen:       m.IsSeen,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		SenderName:   m.SenderName,
		ReceiverName: m.ReceiverName,
	}
}

// MessageModelFromEntity converts a domain entity into a row.
func MessageModelFromEntity(message *entity.Message) *MessageModel {
	return &MessageModel{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Body:       message.Body,
		IsSeen:     message.IsSeen,
		CreatedAt:  message.CreatedAt,
		UpdatedAt:  message.UpdatedAt,
	}
}
