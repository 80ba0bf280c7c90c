package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uModel "emojiku_backend/internals/features/users/user/model"
)

func TestSignAndParseAccessToken(t *testing.T) {
	user := &uModel.UserModel{
		ID:       uuid.New(),
		UserName: "bu_siti",
		Role:     "teacher",
	}
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	raw, err := SignToken(BuildAccessClaims(user, now), "rahasia-test")
	require.NoError(t, err)

	tok, err := jwt.Parse(raw, func(tk *jwt.Token) (any, error) {
		return []byte("rahasia-test"), nil
	}, jwt.WithoutClaimsValidation())
	require.NoError(t, err)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "bu_siti", claims["user_name"])
	assert.Equal(t, "teacher", claims["role"])
	assert.Equal(t, float64(now.Add(AccessTTL).Unix()), claims["exp"])
}

func TestComputeRefreshHash(t *testing.T) {
	h1 := ComputeRefreshHash("token-a", "secret")
	h2 := ComputeRefreshHash("token-a", "secret")
	assert.Equal(t, h1, h2, "hash deterministik")

	assert.NotEqual(t, h1, ComputeRefreshHash("token-b", "secret"))
	assert.NotEqual(t, h1, ComputeRefreshHash("token-a", "secret-lain"))

	// hex sha256 → 64 karakter
	assert.Len(t, h1, 64)
}
