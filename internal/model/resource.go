package model

type ResourceKind string

const (
	Document     ResourceKind = "document"
	Presentation ResourceKind = "presentation"
	Video        ResourceKind = "video"
	Link         ResourceKind = "link"
)

// ValidResourceKind 资源类型为四值封闭枚举
func ValidResourceKind(k ResourceKind) bool {
	switch k {
	case Document, Presentation, Video, Link:
		return true
	}
	return false
}

// Resource 挂在课程下的学习资料链接
// swagger:model Resource
type Resource struct {
	BaseModel
	SubjectID   uint         `gorm:"index;not null" json:"subjectId"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description,omitempty"`
	Kind        ResourceKind `gorm:"type:enum('document','presentation','video','link');not null" json:"kind"`
	URL         string       `gorm:"size:255;not null" json:"url"`
	UploaderID  uint         `gorm:"index;not null" json:"uploaderId"`
}

func (Resource) TableName() string {
	return "resources"
}
