package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	"github.com/irabeny89/ebbs-io/internal/domain/repository"
	"github.com/irabeny89/ebbs-io/internal/errors"
	"github.com/irabeny89/ebbs-io/internal/infra/persistence/model"
)

// messageRepository implements the repository.MessageRepository interface using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// ListConversation returns the messages exchanged between two users, creation
// time ascending. Display handles are joined in for rendering.
func (r *messageRepository) ListConversation(ctx context.Context, userID, otherID uuid.UUID) ([]entity.Message, error) {
	var rows []model.MessageModel
	err := r.db.WithContext(ctx).
		Select("messages.*, su.username AS sender_name, ru.username AS receiver_name").
		Joins("JOIN users su ON su.id = messages.sender_id").
		Joins("JOIN users ru ON ru.id = messages.receiver_id").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("messages.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list conversation")
	}

	messages := make([]entity.Message, 0, len(rows))
	for i := range rows {
		messages = append(messages, *rows[i].ToEntity())
	}

	return messages, nil
}

// ListCorrespondents returns the users the given user has exchanged messages
// with, together with their unseen message counts.
func (r *messageRepository) ListCorrespondents(ctx context.Context, userID uuid.UUID) ([]entity.Correspondent, error) {
	type correspondentRow struct {
		UserID      uuid.UUID
		Username    string
		UnseenCount int
		IsSender    bool
	}

	var rows []correspondentRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT u.id AS user_id,
		            u.username,
		            COUNT(*) FILTER (WHERE m.receiver_id = @user AND NOT m.is_seen) AS unseen_count,
		            BOOL_OR(m.sender_id = u.id) AS is_sender
		     FROM messages m
		     JOIN users u ON u.id = CASE WHEN m.sender_id = @user THEN m.receiver_id ELSE m.sender_id END
		     WHERE m.sender_id = @user OR m.receiver_id = @user
		     GROUP BY u.id, u.username
		     ORDER BY MAX(m.created_at) DESC`,
			map[string]any{"user": userID}).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list correspondents")
	}

	correspondents := make([]entity.Correspondent, 0, len(rows))
	for _, row := range rows {
		correspondents = append(correspondents, entity.Correspondent{
			UserID:      row.UserID,
			Username:    row.Username,
			UnseenCount: row.UnseenCount,
			IsSender:    row.IsSender,
		})
	}

	return correspondents, nil
}

// Create persists a new message.
func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	row := model.MessageModelFromEntity(message)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return errors.Wrap(err, "create message")
	}

	message.ID = row.ID
	message.CreatedAt = row.CreatedAt
	message.UpdatedAt = row.UpdatedAt

	return nil
}

// MarkSeen flags every message sent by otherID to userID as seen.
func (r *messageRepository) MarkSeen(ctx context.Context, userID, otherID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("receiver_id = ? AND sender_id = ? AND NOT is_seen", userID, otherID).
		Update("is_seen", true).Error
	if err != nil {
		return errors.Wrap(err, "mark messages seen")
	}

	return nil
}
