package repository

import (
	"edu_hub_backend/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(msg *model.Message) error {
	return r.DB.Create(msg).Error
}

// FindBetween 两个账号之间双向的全部消息，按创建时间升序。
// 消息不可变，排序只取决于落库顺序，无需分页协调。
func (r *MessageRepository) FindBetween(a, b uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.DB.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Preload("Sender").Preload("Receiver").
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// FindForUser 该用户收发的全部消息，最新在前
func (r *MessageRepository) FindForUser(userID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.DB.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Preload("Sender").Preload("Receiver").
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}
