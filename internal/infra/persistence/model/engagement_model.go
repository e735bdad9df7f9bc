package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
)

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TopicID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PosterID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Post      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// ToEntity converts the row into a domain entity.
func (m *CommentModel) ToEntity() *entity.Comment {
	return &entity.Comment{
		ID:        m.ID,
		TopicID:   m.TopicID,
		PosterID:  m.PosterID,
		Post:      m.Post,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CommentModelFromEntity converts a domain entity into a row.
func CommentModelFromEntity(comment *entity.Comment) *CommentModel {
	return &CommentModel{
		ID:        comment.ID,
		TopicID:   comment.TopicID,
		PosterID:  comment.PosterID,
		Post:      comment.Post,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// LikeModel mirrors the 'likes' table. The favoring users are a JSONB array
// because membership is only ever read as a whole set.
type LikeModel struct {
	ID           uuid.UUID                      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SelectionID  uuid.UUID                      `gorm:"type:uuid;unique;not null"`
	HappyClients datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// ToEntity converts the row into a domain entity.
func (m *LikeModel) ToEntity() *entity.Like {
	return &entity.Like{
		ID:           m.ID,
		SelectionID:  m.SelectionID,
		HappyClients: []uuid.UUID(m.HappyClients),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// LikeModelFromEntity converts a domain entity into a row.
func LikeModelFromEntity(like *entity.Like) *LikeModel {
	return &LikeModel{
		ID:           like.ID,
		SelectionID:  like.SelectionID,
		HappyClients: datatypes.NewJSONSlice(like.HappyClients),
		CreatedAt:    like.CreatedAt,
		UpdatedAt:    like.UpdatedAt,
	}
}
