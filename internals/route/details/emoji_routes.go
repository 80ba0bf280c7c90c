// internals/route/details/emoji_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"emojiku_backend/internals/constants"
	emojiController "emojiku_backend/internals/features/emojis/controller"
	"emojiku_backend/internals/middlewares"
	authMw "emojiku_backend/internals/middlewares/auth"
)

// EmojiUserRoutes: kirim/tarik/riwayat emoji — khusus student.
func EmojiUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := emojiController.NewEmojiUserController(db)

	grp := user.Group("/emojis",
		authMw.OnlyRoles(constants.RoleErrorStudent("kirim emoji"), constants.StudentOnly...),
	)
	grp.Post("/", ctrl.SendEmoji)
	grp.Delete("/:id", ctrl.RecallEmoji)
	grp.Get("/history", ctrl.History)
}

// EmojiStatsRoutes: chart & export statistik — teacher/admin.
// Guard kepemilikan course dicek lagi per-request di controller.
func EmojiStatsRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := emojiController.NewEmojiStatsController(db)

	grp := user.Group("/stats/courses/:course_id",
		authMw.OnlyRoles(constants.RoleErrorTeacher("statistik emoji"), constants.TeacherAndAbove...),
	)
	grp.Get("/timeline", ctrl.Timeline)
	grp.Get("/bar", ctrl.Bar)
	grp.Get("/pie", ctrl.Pie)
	grp.Get("/export/csv", middlewares.ExportRateLimiter(), ctrl.ExportCSV)
	grp.Get("/export/image", middlewares.ExportRateLimiter(), ctrl.ExportImage)
}
