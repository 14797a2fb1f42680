package repository

import (
	"edu_hub_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(fb *model.Feedback) error {
	return r.DB.Create(fb).Error
}

func (r *FeedbackRepository) FindBySubject(subjectID uint) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.DB.Where("subject_id = ?", subjectID).
		Preload("Student").
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *FeedbackRepository) FindAll() ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.DB.Preload("Student").
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

// Ratings 只取评分列，均值在服务层算
func (r *FeedbackRepository) Ratings(subjectID uint) ([]int, error) {
	var ratings []int
	err := r.DB.Model(&model.Feedback{}).
		Where("subject_id = ?", subjectID).
		Pluck("rating", &ratings).Error
	return ratings, err
}
