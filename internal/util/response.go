package util

import (
	"edu_hub_backend/pkg/logger"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 所有错误统一为 {"error": "..."}
type ErrorResponse struct {
	Error string `json:"error"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// WriteError 按错误分类落状态码；分类之外的错误记日志并统一回 "operation failed"，
// 不把内部细节泄露给客户端。
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		Error(c, http.StatusBadRequest, trimCategory(err, ErrValidation))
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		Unauthorized(c)
	case errors.Is(err, ErrPermissionDenied):
		Error(c, http.StatusForbidden, trimCategory(err, ErrPermissionDenied))
	case errors.Is(err, ErrNotFound):
		Error(c, http.StatusNotFound, trimCategory(err, ErrNotFound))
	case errors.Is(err, ErrEmailRegistered):
		Error(c, http.StatusConflict, ErrEmailRegistered.Error())
	default:
		logger.Log.Error("operation failed", zap.Error(err))
		Error(c, http.StatusInternalServerError, "operation failed")
	}
}

// trimCategory 去掉 "%w: " 包装前缀，只保留面向用户的那截
func trimCategory(err error, category error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, category.Error()+": "); ok {
		return rest
	}
	return msg
}
