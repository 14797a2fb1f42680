package util

import (
	"testing"
	"time"

	"edu_hub_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  model.Teacher,
	}
	user.ID = 42

	token, err := GenerateJWT(user, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.Teacher, claims.Role)
	assert.Equal(t, "alice@example.com", claims.Email)

	// 有效期固定 7 天（时间戳序列化到秒级）
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.InDelta(t, TokenTTL.Seconds(), ttl.Seconds(), 1)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	user := &model.User{Email: "bob@example.com", Role: model.Student}
	user.ID = 1

	token, err := GenerateJWT(user, testSecret)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "another-secret")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWT_Garbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		claims, err := ParseJWT(raw, testSecret)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestParseJWT_Expired(t *testing.T) {
	claims := &Claims{
		UserID: 7,
		Role:   model.Student,
		Email:  "old@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	// 过期和伪造返回同一个错误，不区分失败原因
	parsed, err := ParseJWT(token, testSecret)
	assert.Nil(t, parsed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWT_RejectsNonHMAC(t *testing.T) {
	// alg=none 的令牌必须被拒绝
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parsed, err := ParseJWT(token, testSecret)
	assert.Nil(t, parsed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
