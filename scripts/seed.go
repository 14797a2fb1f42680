// 填充演示数据脚本
//
// 建一个教师号、一个学生号、一门带资源的课程和一条评价，方便前端联调。
// 重复执行是安全的：演示邮箱已存在时直接跳过。
//
// 用法: go run scripts/seed.go

package main

import (
	"errors"
	"log"

	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/repository"
	"edu_hub_backend/pkg/database"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("连接数据库失败: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("迁移失败: %v", err)
	}

	users := repository.NewUserRepository(db)
	subjects := repository.NewSubjectRepository(db)
	resources := repository.NewResourceRepository(db)
	feedbacks := repository.NewFeedbackRepository(db)

	teacher, created := ensureUser(users, "Demo Teacher", "teacher@demo.local", model.Teacher)
	student, _ := ensureUser(users, "Demo Student", "student@demo.local", model.Student)
	if !created {
		log.Println("演示数据已存在，不再重复创建")
		return
	}

	subject := &model.Subject{
		Name:        "Go 入门",
		Description: "从零开始的 Go 语言课程",
		ExternalURL: "https://go.dev/tour",
		OwnerID:     teacher.ID,
	}
	if err := subjects.Create(subject); err != nil {
		log.Fatalf("创建课程失败: %v", err)
	}

	resource := &model.Resource{
		SubjectID:  subject.ID,
		Title:      "第一周讲义",
		Kind:       model.Document,
		URL:        "https://go.dev/doc/effective_go",
		UploaderID: teacher.ID,
	}
	if err := resources.Create(resource); err != nil {
		log.Fatalf("创建资源失败: %v", err)
	}

	fb := &model.Feedback{
		SubjectID: subject.ID,
		StudentID: student.ID,
		TeacherID: teacher.ID,
		Rating:    5,
		Comment:   "讲得很清楚",
	}
	if err := feedbacks.Create(fb); err != nil {
		log.Fatalf("创建评价失败: %v", err)
	}

	log.Printf("演示数据就绪: 课程 %d（teacher@demo.local / student@demo.local，密码 demo123456）", subject.ID)
}

func ensureUser(users *repository.UserRepository, name, email string, role model.UserRole) (*model.User, bool) {
	if existing, err := users.FindByEmail(email); err == nil {
		log.Printf("账号 %s 已存在，跳过", email)
		return existing, false
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("查询账号失败: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo123456"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("密码哈希失败: %v", err)
	}
	user := &model.User{Name: name, Email: email, Password: string(hashed), Role: role}
	if err := users.Create(user); err != nil {
		log.Fatalf("创建账号 %s 失败: %v", email, err)
	}
	return user, true
}
