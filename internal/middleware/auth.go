package middleware

import (
	"strings"

	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AccountLoader 网关按令牌里的 userId 回读实时账号
type AccountLoader interface {
	FindByID(id uint) (*model.User, error)
}

// AuthMiddleware 解析 Bearer 令牌并加载实时账号。令牌里的角色声明仅供参考，
// 账号可能在令牌签发后被删除或变更，以库里当前状态为准。
func AuthMiddleware(cfg *config.Config, accounts AccountLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// WebSocket 握手带不了自定义头，退回 query 参数
		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		account, err := accounts.FindByID(claims.UserID)
		if err != nil {
			// 令牌还在，账号已经没了
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Set("account", account)
		c.Next()
	}
}

// RoleMiddleware 按实时角色做穷尽匹配。两个角色变体都显式列出，
// 往枚举里加新角色时漏改这里会在评审里一眼看出来。
func RoleMiddleware(required model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := util.GetAccountFromContext(c)
		if account == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		var allowed bool
		switch account.Role {
		case model.Student:
			allowed = required == model.Student
		case model.Teacher:
			allowed = required == model.Teacher
		default:
			allowed = false
		}

		if !allowed {
			util.Forbidden(c, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}
