package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/util"

	"gorm.io/gorm"
)

const maxContentLen = 1000

// MessageStore 追加写入的消息日志
type MessageStore interface {
	Create(msg *model.Message) error
	FindBetween(a, b uint) ([]model.Message, error)
	FindForUser(userID uint) ([]model.Message, error)
}

// Publisher 消息落库后的通知出口，NotifyHub 是生产实现
type Publisher interface {
	Publish(topic string, ev Event)
}

type MessageService struct {
	Messages MessageStore
	Users    UserStore
	Notify   Publisher
}

func NewMessageService(messages MessageStore, users UserStore, notify Publisher) *MessageService {
	return &MessageService{Messages: messages, Users: users, Notify: notify}
}

// Send 校验并落库一条消息，然后向会话主题发布通知。
// 收件人可按 id 或邮箱寻址（邮箱寻址来自页面上的"给老师写信"入口）。
func (s *MessageService) Send(sender *model.User, toID uint, toEmail string, content string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", util.ErrValidation)
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return nil, fmt.Errorf("%w: content exceeds %d characters", util.ErrValidation, maxContentLen)
	}
	if toID == 0 && toEmail == "" {
		return nil, fmt.Errorf("%w: receiver is required", util.ErrValidation)
	}
	// 自发自收在查库前就能挡掉
	if toID == sender.ID || (toEmail != "" && strings.EqualFold(toEmail, sender.Email)) {
		return nil, fmt.Errorf("%w: cannot send a message to yourself", util.ErrValidation)
	}

	receiver, err := s.resolveReceiver(toID, toEmail)
	if err != nil {
		return nil, err
	}
	if receiver.ID == sender.ID {
		return nil, fmt.Errorf("%w: cannot send a message to yourself", util.ErrValidation)
	}

	msg := &model.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    content,
		Sender:     *sender,
		Receiver:   *receiver,
	}
	if err := s.Messages.Create(msg); err != nil {
		return nil, err
	}

	topic := PairTopic(sender.ID, receiver.ID)
	s.Notify.Publish(topic, Event{
		SenderID:  sender.ID,
		MessageID: msg.ID,
		SentAt:    msg.CreatedAt,
	})

	return msg, nil
}

// History 双方之间双向的全部消息，升序。无分页——规模上明确不设防。
func (s *MessageService) History(caller *model.User, withID uint) ([]model.Message, error) {
	if withID == 0 {
		return nil, fmt.Errorf("%w: peer id is required", util.ErrValidation)
	}
	if _, err := s.Users.FindByID(withID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", util.ErrNotFound)
		}
		return nil, err
	}
	return s.Messages.FindBetween(caller.ID, withID)
}

// ListForUser 该账号参与的全部消息，最新在前
func (s *MessageService) ListForUser(caller *model.User) ([]model.Message, error) {
	return s.Messages.FindForUser(caller.ID)
}

func (s *MessageService) resolveReceiver(toID uint, toEmail string) (*model.User, error) {
	var receiver *model.User
	var err error
	if toID != 0 {
		receiver, err = s.Users.FindByID(toID)
	} else {
		receiver, err = s.Users.FindByEmail(toEmail)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: receiver not found", util.ErrNotFound)
		}
		return nil, err
	}
	return receiver, nil
}
