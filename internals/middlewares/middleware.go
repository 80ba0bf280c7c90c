// internals/middlewares/middleware.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"emojiku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan tetap:
// recovery paling luar, lalu logging, CORS, dan rate limit global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
