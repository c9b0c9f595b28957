// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"
	"sync"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/atelierhq/atelier/pkg/api/v1/handlers"
)

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	// Health check
	HealthCheck = "HealthCheck"

	// RPC route. All entity operations go through it using entity:verb
	// method names.
	RPC = "RPC"
)

// routeCache stores extracted routes for use prior to compilation
var (
	routeCache     map[string]string
	routeCacheMu   sync.RWMutex
	routeCacheInit sync.Once
)

// RegisterRoutes configures all the v1 routes
func RegisterRoutes(app *fiber.App, rpcHandler *handlers.RPCHandler) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	}).Name(HealthCheck)

	// RPC endpoint as the root handler for all operations
	v1 := app.Group(APIv1Prefix)
	v1.Post("/", rpcHandler.HandleRPC).Name(RPC)
}

// initRouteCache initializes the route cache by creating a mock app and extracting routes
func initRouteCache() {
	routeCacheInit.Do(func() {
		routeCache = make(map[string]string)

		// Create a mock app
		app := fiber.New()

		// Register routes with an empty handler; only the paths matter here
		RegisterRoutes(app, &handlers.RPCHandler{})

		// Extract routes from the app
		for _, route := range app.GetRoutes() {
			if route.Name != "" {
				routeCache[route.Name] = route.Path
			}
		}
	})
}

// GetRoute returns the route pattern for the given route name
func GetRoute(name string) string {
	routeCacheMu.RLock()
	defer routeCacheMu.RUnlock()

	// Initialize cache if needed
	if routeCache == nil {
		routeCacheMu.RUnlock()
		initRouteCache()
		routeCacheMu.RLock()
	}

	return routeCache[name]
}

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return GetRoute(HealthCheck)
}

// RPCURL returns the URL for the RPC endpoint
func RPCURL() string {
	return GetRoute(RPC)
}
