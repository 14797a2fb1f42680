package service

import (
	"testing"

	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(users UserStore) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "auth-service-test-secret"
	return NewAuthService(users, cfg)
}

func TestRegister(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	user, token, err := svc.Register("Alice", "alice@example.com", "secret123", model.Teacher)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, model.Teacher, user.Role)

	// 密码只存哈希
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	// 注册即登录：返回的令牌直接可用
	claims, err := util.ParseJWT(token, "auth-service-test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Teacher, claims.Role)
}

func TestRegister_DefaultRoleIsStudent(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	user, _, err := svc.Register("Bob", "bob@example.com", "secret123", "")
	require.NoError(t, err)
	assert.Equal(t, model.Student, user.Role)
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	cases := []struct {
		name     string
		userName string
		email    string
		password string
		role     model.UserRole
	}{
		{"missing name", "", "a@example.com", "secret123", model.Student},
		{"missing email", "A", "", "secret123", model.Student},
		{"missing password", "A", "a@example.com", "", model.Student},
		{"unknown role", "A", "a@example.com", "secret123", "admin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Register(tc.userName, tc.email, tc.password, tc.role)
			assert.ErrorIs(t, err, util.ErrValidation)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	store.add("Alice", "alice@example.com", model.Student)
	svc := newAuthService(store)

	_, _, err := svc.Register("Another Alice", "alice@example.com", "secret123", model.Student)
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	_, _, err := svc.Register("Alice", "alice@example.com", "secret123", model.Student)
	require.NoError(t, err)

	user, token, err := svc.Login("alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	claims, err := util.ParseJWT(token, "auth-service-test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLogin_UniformFailure(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	_, _, err := svc.Register("Alice", "alice@example.com", "secret123", model.Student)
	require.NoError(t, err)

	// 未知邮箱和密码错误返回同一个错误
	_, _, errUnknown := svc.Login("nobody@example.com", "secret123")
	_, _, errWrongPw := svc.Login("alice@example.com", "wrong-password")
	assert.ErrorIs(t, errUnknown, util.ErrUnauthorized)
	assert.ErrorIs(t, errWrongPw, util.ErrUnauthorized)
	assert.Equal(t, errUnknown, errWrongPw)
}
