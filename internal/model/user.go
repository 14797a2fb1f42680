package model

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
)

// ValidRole 注册时校验角色取值；角色在创建后不可变更
func ValidRole(r UserRole) bool {
	switch r {
	case Student, Teacher:
		return true
	}
	return false
}

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('student','teacher');default:'student'" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser 嵌入到消息、课程等响应中的用户摘要
type PublicUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
