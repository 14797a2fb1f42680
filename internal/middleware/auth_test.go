package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAccounts struct {
	accounts map[uint]*model.User
}

func (f *fakeAccounts) FindByID(id uint) (*model.User, error) {
	if u, ok := f.accounts[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func testRouter(cfg *config.Config, accounts *fakeAccounts, required model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", AuthMiddleware(cfg, accounts))
	group.GET("/me", func(c *gin.Context) {
		account := util.GetAccountFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": account.ID})
	})
	group.GET("/restricted", RoleMiddleware(required), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func newAuthFixture(t *testing.T, role model.UserRole) (*config.Config, *fakeAccounts, *model.User, string) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"

	user := &model.User{Name: "Alice", Email: "alice@example.com", Role: role}
	user.ID = 1
	accounts := &fakeAccounts{accounts: map[uint]*model.User{user.ID: user}}

	token, err := util.GenerateJWT(user, cfg.JWT.Secret)
	require.NoError(t, err)
	return cfg, accounts, user, token
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	cfg, accounts, _, token := newAuthFixture(t, model.Student)
	router := testRouter(cfg, accounts, model.Student)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 1}`, w.Body.String())
}

func TestAuthMiddleware_QueryTokenFallback(t *testing.T) {
	cfg, accounts, _, token := newAuthFixture(t, model.Student)
	router := testRouter(cfg, accounts, model.Student)

	// WebSocket 握手场景：令牌走 query 参数
	req := httptest.NewRequest(http.MethodGet, "/me?token="+token, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	cfg, accounts, _, _ := newAuthFixture(t, model.Student)
	router := testRouter(cfg, accounts, model.Student)

	cases := []struct {
		name   string
		header string
	}{
		{"no token", ""},
		{"malformed token", "Bearer not-a-token"},
		{"wrong scheme only", "Basic abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
		})
	}
}

func TestAuthMiddleware_DeletedAccount(t *testing.T) {
	cfg, accounts, user, token := newAuthFixture(t, model.Student)
	router := testRouter(cfg, accounts, model.Student)

	// 令牌还有效，但账号已经没了
	delete(accounts.accounts, user.ID)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	cfg, accounts, _, token := newAuthFixture(t, model.Student)

	// 角色匹配放行
	router := testRouter(cfg, accounts, model.Student)
	req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// 角色不匹配 403
	router = testRouter(cfg, accounts, model.Teacher)
	req = httptest.NewRequest(http.MethodGet, "/restricted", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "insufficient role"}`, w.Body.String())
}

func TestRoleMiddleware_LiveRoleWins(t *testing.T) {
	cfg, accounts, user, token := newAuthFixture(t, model.Teacher)
	router := testRouter(cfg, accounts, model.Teacher)

	// 令牌里的角色声明仅供参考，库里的实时角色才算数
	user.Role = model.Student
	accounts.accounts[user.ID] = user

	req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
