package service

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/util"

	"gorm.io/gorm"
)

const (
	maxCommentLen = 500

	// AverageNoData 课程还没有任何评分时的均值哨兵，绝不除零
	AverageNoData = "N/A"
)

type FeedbackStore interface {
	Create(fb *model.Feedback) error
	FindBySubject(subjectID uint) ([]model.Feedback, error)
	FindAll() ([]model.Feedback, error)
	Ratings(subjectID uint) ([]int, error)
}

// SubjectFinder 评价服务只需要按 id 读课程，不依赖整个目录
type SubjectFinder interface {
	FindByID(id uint) (*model.Subject, error)
}

type FeedbackService struct {
	Feedbacks FeedbackStore
	Subjects  SubjectFinder
}

func NewFeedbackService(feedbacks FeedbackStore, subjects SubjectFinder) *FeedbackService {
	return &FeedbackService{Feedbacks: feedbacks, Subjects: subjects}
}

// Submit 学生给课程评分。同一学生可以对同一课程重复评分（允许随时间
// 重新评价），每次提交都是独立的一条记录。
func (s *FeedbackService) Submit(caller *model.User, subjectID uint, rating int, comment string) (*model.Feedback, error) {
	if caller.Role != model.Student {
		return nil, fmt.Errorf("%w: only students can submit feedback", util.ErrPermissionDenied)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be an integer between 1 and 5", util.ErrValidation)
	}
	if utf8.RuneCountInString(comment) > maxCommentLen {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", util.ErrValidation, maxCommentLen)
	}

	subject, err := s.Subjects.FindByID(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: subject not found", util.ErrNotFound)
		}
		return nil, err
	}
	if subject.OwnerID == caller.ID {
		return nil, fmt.Errorf("%w: cannot rate your own subject", util.ErrPermissionDenied)
	}

	fb := &model.Feedback{
		SubjectID: subjectID,
		StudentID: caller.ID,
		TeacherID: subject.OwnerID, // 写入时冗余，课程易主不影响历史归属
		Rating:    rating,
		Comment:   comment,
		Student:   *caller,
	}
	if err := s.Feedbacks.Create(fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// List subjectID 为 0 时返回全部评价
func (s *FeedbackService) List(subjectID uint) ([]model.Feedback, error) {
	if subjectID == 0 {
		return s.Feedbacks.FindAll()
	}
	return s.Feedbacks.FindBySubject(subjectID)
}

// Average 课程评分的算术平均，保留一位小数；没有评分返回哨兵
func (s *FeedbackService) Average(subjectID uint) (string, error) {
	ratings, err := s.Feedbacks.Ratings(subjectID)
	if err != nil {
		return "", err
	}
	return averageOf(ratings), nil
}

func averageOf(ratings []int) string {
	if len(ratings) == 0 {
		return AverageNoData
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(ratings)))
}
