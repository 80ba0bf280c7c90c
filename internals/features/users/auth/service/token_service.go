// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	uModel "emojiku_backend/internals/features/users/user/model"
)

const (
	AccessTTL  = 2 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

// BuildAccessClaims: klaim access token. Satu role global per user —
// guard role di middleware baca klaim "role" ini.
func BuildAccessClaims(u *uModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       u.ID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTTL).Unix(),
	}
}

func BuildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTTL).Unix(),
	}
}

// SignToken: HS256, secret dari configs.
func SignToken(claims jwt.MapClaims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ComputeRefreshHash: HMAC-SHA256 atas token mentah; yang disimpan di DB
// cuma hash-nya, token mentah hanya hidup di cookie client.
func ComputeRefreshHash(rawToken, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(rawToken))
	return hex.EncodeToString(mac.Sum(nil))
}
