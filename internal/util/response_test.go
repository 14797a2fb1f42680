package util

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"edu_hub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func writeErrorResponse(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	WriteError(c, err)
	return w
}

func TestWriteError_Taxonomy(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		wantBody string
	}{
		{
			"validation",
			fmt.Errorf("%w: rating must be an integer between 1 and 5", ErrValidation),
			http.StatusBadRequest,
			`{"error": "rating must be an integer between 1 and 5"}`,
		},
		{
			"unauthorized",
			ErrUnauthorized,
			http.StatusUnauthorized,
			`{"error": "Unauthorized"}`,
		},
		{
			"invalid token",
			ErrInvalidToken,
			http.StatusUnauthorized,
			`{"error": "Unauthorized"}`,
		},
		{
			"permission denied",
			fmt.Errorf("%w: only the owning teacher can delete a subject", ErrPermissionDenied),
			http.StatusForbidden,
			`{"error": "only the owning teacher can delete a subject"}`,
		},
		{
			"not found",
			fmt.Errorf("%w: subject not found", ErrNotFound),
			http.StatusNotFound,
			`{"error": "subject not found"}`,
		},
		{
			"email registered",
			ErrEmailRegistered,
			http.StatusConflict,
			`{"error": "email already registered"}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := writeErrorResponse(tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestWriteError_UnknownError(t *testing.T) {
	// 分类之外的错误不把内部细节泄露给客户端
	w := writeErrorResponse(errors.New("dial tcp 10.0.0.5:3306: connect: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "operation failed"}`, w.Body.String())
}
