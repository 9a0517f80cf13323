package http

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/volunteer-hub/internal/domain"
	"github.com/spec-kit/volunteer-hub/internal/observability"
	"github.com/spec-kit/volunteer-hub/internal/session"
)

// RegisterMiddlewares attaches global middlewares: CORS, request logging,
// error translation and session resolution, in that order.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, sessionCfg session.Config) {
	app.Use(corsMiddleware())
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(session.Middleware(sessionCfg))
}

// corsMiddleware allows all origins and short-circuits preflight requests
// with HTTP 200 and an empty body.
func corsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
		c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")

		if c.Method() == fiber.MethodOptions {
			c.Status(fiber.StatusOK)
			return nil
		}
		return c.Next()
	}
}

// errorHandlingMiddleware translates failures into the response envelope:
// the error's status with {success:false, message}. Panics become internal
// errors.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = domain.NewInternalError(nil)
			}
			if err != nil {
				appErr := domain.FromError(err)
				metrics.RecordError(c.Path(), c.Method(), appErr.Code)
				if appErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(appErr))
				}
				c.Status(appErr.HTTPStatus)
				_ = c.JSON(fiber.Map{"success": false, "message": appErr.Message})
				err = nil
			}
		}()
		return c.Next()
	}
}
