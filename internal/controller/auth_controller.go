package controller

import (
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/service"
	"edu_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=student teacher"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authPayload struct {
	User  userView `json:"user"`
	Token string   `json:"token"`
}

type userView struct {
	ID    uint           `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Role  model.UserRole `json:"role"`
}

func viewOf(u *model.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Register godoc
// @Summary 注册新账号
// @Description 创建账号并直接签发令牌，角色缺省为学生
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "注册信息"
// @Success 201 {object} authPayload
// @Failure 400 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse "邮箱已被注册"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Register(req.Name, req.Email, req.Password, model.UserRole(req.Role))
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Created(ctx, authPayload{User: viewOf(user), Token: token})
}

// Login godoc
// @Summary 登录
// @Description 验证邮箱密码并返回 7 天有效期的令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭据"
// @Success 200 {object} authPayload
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, authPayload{User: viewOf(user), Token: token})
}

// GetProfile godoc
// @Summary 当前账号资料
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} userView
// @Failure 401 {object} util.ErrorResponse
// @Router /profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	account := util.GetAccountFromContext(ctx)
	if account == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, viewOf(account))
}
