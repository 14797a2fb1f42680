package model

import "time"

// Message 两个账号之间的私信，写入后不可修改、不可删除
// swagger:model Message
type Message struct {
	UUIDBase
	SenderID   uint      `gorm:"index:idx_pair_created;not null" json:"senderId"`
	ReceiverID uint      `gorm:"index:idx_pair_created;not null" json:"receiverId"`
	CreatedAt  time.Time `gorm:"index:idx_pair_created" json:"createdAt"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Sender     User      `gorm:"foreignKey:SenderID" json:"sender"`
	Receiver   User      `gorm:"foreignKey:ReceiverID" json:"receiver"`
}

func (Message) TableName() string {
	return "messages"
}
