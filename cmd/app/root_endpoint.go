package main

import (
	"fmt"
	"net/http"

	"CustomerAPI/internal/config"

	"github.com/labstack/echo/v4"
)

// registerRootRoutes mounts the service metadata / endpoint directory.
func registerRootRoutes(e *echo.Echo, cfg *config.Config) {
	env := "production"
	if cfg.Debug {
		env = "development"
	}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":     config.APITitle,
			"version":     config.APIVersion,
			"environment": env,
			"endpoints": map[string]string{
				"list_customers":      "/api/customers",
				"get_customer":        "/api/customers/<id>",
				"get_customer_orders": "/api/customers/<id>/orders",
				"get_order":           "/api/orders/<id>",
				"health_check":        "/api/health",
			},
			"documentation": map[string]interface{}{
				"list_customers": map[string]interface{}{
					"method": "GET",
					"parameters": map[string]string{
						"page":   "Page number (default: 1)",
						"limit":  fmt.Sprintf("Items per page (default: %d, max: %d)", cfg.DefaultPageSize, cfg.MaxPageSize),
						"search": "Search in first_name, last_name, or email",
					},
				},
				"get_customer": map[string]interface{}{
					"method":      "GET",
					"description": "Get customer details with order statistics",
				},
			},
		})
	})
}
