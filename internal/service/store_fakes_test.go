package service

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"edu_hub_backend/internal/model"
	"edu_hub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// 内存版的存储实现，错误语义（gorm.ErrRecordNotFound）与生产仓储一致

type fakeUserStore struct {
	nextID uint
	users  map[uint]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*model.User)}
}

func (f *fakeUserStore) Create(user *model.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByID(id uint) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) FindByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) add(name, email string, role model.UserRole) *model.User {
	u := &model.User{Name: name, Email: email, Password: "x", Role: role}
	f.Create(u)
	return u
}

type fakeSubjectStore struct {
	nextID   uint
	subjects map[uint]*model.Subject
	cascaded []uint
}

func newFakeSubjectStore() *fakeSubjectStore {
	return &fakeSubjectStore{subjects: make(map[uint]*model.Subject)}
}

func (f *fakeSubjectStore) Create(subject *model.Subject) error {
	f.nextID++
	subject.ID = f.nextID
	f.subjects[subject.ID] = subject
	return nil
}

func (f *fakeSubjectStore) FindByID(id uint) (*model.Subject, error) {
	if s, ok := f.subjects[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSubjectStore) List() ([]model.Subject, error) {
	out := make([]model.Subject, 0, len(f.subjects))
	for _, s := range f.subjects {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSubjectStore) DeleteCascade(id uint) error {
	delete(f.subjects, id)
	f.cascaded = append(f.cascaded, id)
	return nil
}

type fakeResourceStore struct {
	nextID    uint
	resources map[uint]*model.Resource
}

func newFakeResourceStore() *fakeResourceStore {
	return &fakeResourceStore{resources: make(map[uint]*model.Resource)}
}

func (f *fakeResourceStore) Create(resource *model.Resource) error {
	f.nextID++
	resource.ID = f.nextID
	f.resources[resource.ID] = resource
	return nil
}

func (f *fakeResourceStore) FindByID(id uint) (*model.Resource, error) {
	if r, ok := f.resources[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeResourceStore) FindBySubject(subjectID uint) ([]model.Resource, error) {
	var out []model.Resource
	for _, r := range f.resources {
		if r.SubjectID == subjectID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeResourceStore) Delete(id uint) error {
	delete(f.resources, id)
	return nil
}

type fakeMessageStore struct {
	messages []model.Message
}

func (f *fakeMessageStore) Create(msg *model.Message) error {
	msg.ID = fmt.Sprintf("msg-%d", len(f.messages)+1)
	msg.CreatedAt = time.Now()
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeMessageStore) FindBetween(a, b uint) ([]model.Message, error) {
	var out []model.Message
	for _, m := range f.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) FindForUser(userID uint) ([]model.Message, error) {
	var out []model.Message
	for i := len(f.messages) - 1; i >= 0; i-- {
		m := f.messages[i]
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeFeedbackStore struct {
	nextID    uint
	feedbacks []model.Feedback
}

func (f *fakeFeedbackStore) Create(fb *model.Feedback) error {
	f.nextID++
	fb.ID = f.nextID
	f.feedbacks = append(f.feedbacks, *fb)
	return nil
}

func (f *fakeFeedbackStore) FindBySubject(subjectID uint) ([]model.Feedback, error) {
	var out []model.Feedback
	for _, fb := range f.feedbacks {
		if fb.SubjectID == subjectID {
			out = append(out, fb)
		}
	}
	return out, nil
}

func (f *fakeFeedbackStore) FindAll() ([]model.Feedback, error) {
	return append([]model.Feedback(nil), f.feedbacks...), nil
}

func (f *fakeFeedbackStore) Ratings(subjectID uint) ([]int, error) {
	var out []int
	for _, fb := range f.feedbacks {
		if fb.SubjectID == subjectID {
			out = append(out, fb.Rating)
		}
	}
	return out, nil
}

type fakePublisher struct {
	topics []string
	events []Event
}

func (f *fakePublisher) Publish(topic string, ev Event) {
	f.topics = append(f.topics, topic)
	f.events = append(f.events, ev)
}
