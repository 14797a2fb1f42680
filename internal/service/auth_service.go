package service

import (
	"errors"
	"fmt"
	"strings"

	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore 账号存取。服务只依赖这层抽象，repository.UserRepository 是生产实现。
type UserStore interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
}

type AuthService struct {
	Users UserStore
	Cfg   *config.Config
}

func NewAuthService(users UserStore, cfg *config.Config) *AuthService {
	return &AuthService{Users: users, Cfg: cfg}
}

// Register 建号即登录：创建成功直接签发令牌。角色缺省为学生，建号后不可变更。
func (s *AuthService) Register(name, email, password string, role model.UserRole) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", util.ErrValidation)
	}
	if role == "" {
		role = model.Student
	}
	if !model.ValidRole(role) {
		return nil, "", fmt.Errorf("%w: role must be student or teacher", util.ErrValidation)
	}

	if _, err := s.Users.FindByEmail(email); err == nil {
		return nil, "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login 账号不存在和密码错误返回同一个错误，不给枚举邮箱的余地
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return nil, "", util.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrUnauthorized
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
