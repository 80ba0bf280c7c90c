// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"emojiku_backend/internals/configs"
	authModel "emojiku_backend/internals/features/users/auth/model"
	authService "emojiku_backend/internals/features/users/auth/service"
	uDto "emojiku_backend/internals/features/users/user/dto"
	uModel "emojiku_backend/internals/features/users/user/model"
	helper "emojiku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/*
	=========================================================
	  REGISTER (public, selalu jadi student)
	=========================================================
*/

// POST /api/public/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req uDto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Normalize()
	req.Role = "student" // register publik tidak boleh pilih role sendiri
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var count int64
	if err := ctrl.DB.Model(&uModel.UserModel{}).
		Where("email = ? OR user_name = ?", req.Email, req.UserName).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi user")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	newUser := req.ToModel()
	newUser.Password = string(hashed)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(newUser).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registrasi gagal")
	}

	return helper.JsonCreated(c, "Registrasi berhasil! Silakan login.", uDto.FromModel(newUser))
}

/*
	=========================================================
	  LOGIN
	=========================================================
*/

// POST /api/public/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"` // user_name atau email
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	input.Identifier = strings.TrimSpace(strings.ToLower(input.Identifier))
	if input.Identifier == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifier dan password wajib diisi")
	}

	var user uModel.UserModel
	if err := ctrl.DB.
		Where("LOWER(user_name) = ? OR email = ?", input.Identifier, input.Identifier).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sengaja sama dengan password salah
			return helper.JsonError(c, fiber.StatusUnauthorized, "User atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User atau password salah")
	}

	now := time.Now().UTC()
	access, err := authService.SignToken(authService.BuildAccessClaims(&user, now), configs.JWTSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := authService.SignToken(authService.BuildRefreshClaims(user.ID, now), configs.JWTRefreshSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// simpan hash refresh
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&authModel.RefreshTokenModel{
			UserID:    user.ID,
			Token:     authService.ComputeRefreshHash(refresh, configs.JWTRefreshSecret),
			ExpiresAt: now.Add(authService.RefreshTTL),
			UserAgent: strptr(c.Get("User-Agent")),
			IP:        strptr(c.IP()),
		}).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan refresh token")
	}

	setRefreshCookie(c, refresh, now)

	return helper.JsonOK(c, "Selamat datang, "+user.FullName+"!", fiber.Map{
		"access_token": access,
		"user":         uDto.FromModel(&user),
	})
}

/*
	=========================================================
	  REFRESH & LOGOUT
	=========================================================
*/

// POST /api/public/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh masih aktif di DB
	hash := authService.ComputeRefreshHash(refreshCookie, configs.JWTRefreshSecret)
	var rt authModel.RefreshTokenModel
	if err := ctrl.DB.
		Where("token = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		First(&rt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var user uModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	now := time.Now().UTC()
	newAccess, err := authService.SignToken(authService.BuildAccessClaims(&user, now), configs.JWTSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal buat access baru")
	}
	newRefresh, err := authService.SignToken(authService.BuildRefreshClaims(user.ID, now), configs.JWTRefreshSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal buat refresh baru")
	}

	// ROTATE: revoke lama + simpan hash baru, satu transaksi
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&authModel.RefreshTokenModel{}).
			Where("id = ?", rt.ID).Update("revoked_at", now).Error; err != nil {
			return err
		}
		return tx.Create(&authModel.RefreshTokenModel{
			UserID:    user.ID,
			Token:     authService.ComputeRefreshHash(newRefresh, configs.JWTRefreshSecret),
			ExpiresAt: now.Add(authService.RefreshTTL),
			UserAgent: strptr(c.Get("User-Agent")),
			IP:        strptr(c.IP()),
		}).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal rotasi refresh token")
	}

	setRefreshCookie(c, newRefresh, now)

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token": newAccess,
	})
}

// POST /api/u/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		hash := authService.ComputeRefreshHash(refreshCookie, configs.JWTRefreshSecret)
		now := time.Now().UTC()
		ctrl.DB.Model(&authModel.RefreshTokenModel{}).
			Where("token = ? AND revoked_at IS NULL", hash).
			Update("revoked_at", now)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return helper.JsonOK(c, "Logout berhasil", nil)
}

/*
	=========================================================
	  CHANGE PASSWORD
	=========================================================
*/

// POST /api/u/auth/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if len(input.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Password baru minimal 8 karakter")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user uModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password saat ini salah")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.NewPassword)); err == nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Password baru tidak boleh sama dengan password lama")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password baru")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&uModel.UserModel{}).
			Where("id = ?", userID).Update("password", string(newHash)).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update password")
	}

	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}

/* =========================== util kecil =========================== */

func strptr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func setRefreshCookie(c *fiber.Ctx, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(authService.RefreshTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}
