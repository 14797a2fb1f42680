package model

// Feedback 学生对课程的评分与评语。TeacherID 在写入时从课程冗余，
// 课程易主后历史评价仍归属当时的授课教师。
// swagger:model Feedback
type Feedback struct {
	BaseModel
	SubjectID uint   `gorm:"index;not null" json:"subjectId"`
	StudentID uint   `gorm:"index;not null" json:"studentId"`
	TeacherID uint   `gorm:"index;not null" json:"teacherId"`
	Rating    int    `gorm:"type:tinyint;not null" json:"rating"`
	Comment   string `gorm:"size:500" json:"comment,omitempty"`
	Student   User   `gorm:"foreignKey:StudentID" json:"student"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
