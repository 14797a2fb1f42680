package model

// Subject 教师发布的课程（学科），资源与评价都挂在它之下
// swagger:model Subject
type Subject struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	ExternalURL string `gorm:"size:255" json:"externalUrl,omitempty"`
	OwnerID     uint   `gorm:"index;not null" json:"ownerId"`
	Owner       User   `gorm:"foreignKey:OwnerID" json:"owner"`
}

func (Subject) TableName() string {
	return "subjects"
}
