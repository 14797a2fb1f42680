package repository

import (
	"edu_hub_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) Create(subject *model.Subject) error {
	return r.DB.Create(subject).Error
}

func (r *SubjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.Preload("Owner").First(&subject, id).Error
	return &subject, err
}

func (r *SubjectRepository) List() ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Preload("Owner").Order("name ASC").Find(&subjects).Error
	return subjects, err
}

// DeleteCascade 删除课程并级联清掉其资源与评价，单事务完成
func (r *SubjectRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_id = ?", id).Delete(&model.Resource{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", id).Delete(&model.Feedback{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Subject{}, id).Error
	})
}
