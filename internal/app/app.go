// Package app assembles the HTTP application from its handlers.
package app

import (
	fiber "github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/atelierhq/atelier/pkg/api/v1/handlers"
	"github.com/atelierhq/atelier/pkg/api/v1/routes"
)

// NewApp builds the Fiber application with middleware and all v1 routes
// registered over the given RPC handler.
func NewApp(rpcHandler *handlers.RPCHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(fiberlogger.New())

	routes.RegisterRoutes(app, rpcHandler)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
