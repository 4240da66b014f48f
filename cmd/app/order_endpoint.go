package main

import (
	"errors"
	"fmt"
	"net/http"

	"CustomerAPI/internal/apperr"
	"CustomerAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// registerOrderRoutes mounts the order endpoints:
//
//	GET /orders/:id -> order detail joined with its owning customer
func registerOrderRoutes(api *echo.Group, os *services.OrderService) {
	api.GET("/orders/:id", func(c echo.Context) error {
		id, rerr := pathID(c, "Order")
		if rerr != nil {
			return rerr.respond(c)
		}

		resp, err := os.GetOrder(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, apperr.ErrOrderNotFound) {
				return jsonError(c, http.StatusNotFound, "Order Not Found",
					fmt.Sprintf("Order with ID %d does not exist", id))
			}
			return storeError(c, err, "An error occurred while fetching order details")
		}
		return c.JSON(http.StatusOK, resp)
	})
}
