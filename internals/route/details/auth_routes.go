// internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "emojiku_backend/internals/features/users/auth/controller"
	"emojiku_backend/internals/middlewares"
)

// AuthPublicRoutes: register/login/refresh tanpa token.
func AuthPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	grp := public.Group("/auth")
	grp.Post("/register", middlewares.LoginRateLimiter(), ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/refresh-token", ctrl.RefreshToken)
}

// AuthUserRoutes: endpoint auth yang butuh login.
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	grp := user.Group("/auth")
	grp.Post("/logout", ctrl.Logout)
	grp.Post("/change-password", ctrl.ChangePassword)
}
