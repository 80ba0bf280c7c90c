// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emojiku_backend/internals/configs"
	"emojiku_backend/internals/constants"
	authMw "emojiku_backend/internals/middlewares/auth"
	"emojiku_backend/internals/route/details"
)

/* =======================================================
   SETUP ROUTES
   Tiga lapis:
     /api/public → tanpa token
     /api/u      → login (role apa pun, guard detail per fitur)
     /api/a      → login + role admin
   ======================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ---------- PUBLIC ----------
	public := api.Group("/public")
	details.AuthPublicRoutes(public, db)

	// ---------- USER (login) ----------
	user := api.Group("/u",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	details.AuthUserRoutes(user, db)
	details.UserSelfRoutes(user, db)
	details.CourseUserRoutes(user, db)
	details.EmojiUserRoutes(user, db)
	details.EmojiStatsRoutes(user, db)

	// ---------- ADMIN ----------
	admin := api.Group("/a",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMw.OnlyRoles(constants.RoleErrorAdmin("panel admin"), constants.AdminOnly...),
	)
	details.UserAdminRoutes(admin, db)
	details.CourseAdminRoutes(admin, db)
}
