// internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "emojiku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: CRUD user, khusus admin.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserAdminController(db)

	grp := admin.Group("/users")
	grp.Get("/", ctrl.ListUsers)
	grp.Get("/:id", ctrl.GetUser)
	grp.Post("/", ctrl.CreateUser)
	grp.Patch("/:id", ctrl.UpdateUser)
	grp.Delete("/:id", ctrl.DeleteUser)
}

// UserSelfRoutes: profil milik sendiri.
func UserSelfRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserProfileController(db)

	grp := user.Group("/profile")
	grp.Get("/", ctrl.GetProfile)
	grp.Patch("/", ctrl.UpdateProfile)
}
