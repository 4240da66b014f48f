package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"CustomerAPI/internal/apperr"
	"CustomerAPI/internal/config"
	"CustomerAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// registerCustomerRoutes mounts the customer endpoints:
//
//	GET /customers            -> paginated list, optional ?search=
//	GET /customers/:id        -> detail + order summary
//	GET /customers/:id/orders -> paginated orders, optional ?status=
func registerCustomerRoutes(api *echo.Group, cs *services.CustomerService, cfg *config.Config) {
	api.GET("/customers", func(c echo.Context) error {
		page, limit, rerr := pageParams(c, cfg)
		if rerr != nil {
			return rerr.respond(c)
		}
		search := strings.TrimSpace(c.QueryParam("search"))

		resp, err := cs.ListCustomers(c.Request().Context(), page, limit, search)
		if err != nil {
			return storeError(c, err, "An error occurred while fetching customers")
		}
		return c.JSON(http.StatusOK, resp)
	})

	api.GET("/customers/:id", func(c echo.Context) error {
		id, rerr := pathID(c, "Customer")
		if rerr != nil {
			return rerr.respond(c)
		}

		resp, err := cs.GetCustomer(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, apperr.ErrCustomerNotFound) {
				return jsonError(c, http.StatusNotFound, "Customer Not Found",
					fmt.Sprintf("Customer with ID %d does not exist", id))
			}
			return storeError(c, err, "An error occurred while fetching customer details")
		}
		return c.JSON(http.StatusOK, resp)
	})

	api.GET("/customers/:id/orders", func(c echo.Context) error {
		id, rerr := pathID(c, "Customer")
		if rerr != nil {
			return rerr.respond(c)
		}
		page, limit, rerr := pageParams(c, cfg)
		if rerr != nil {
			return rerr.respond(c)
		}
		status := strings.ToLower(strings.TrimSpace(c.QueryParam("status")))

		resp, err := cs.GetCustomerOrders(c.Request().Context(), id, page, limit, status)
		if err != nil {
			if errors.Is(err, apperr.ErrCustomerNotFound) {
				return jsonError(c, http.StatusNotFound, "Customer Not Found",
					fmt.Sprintf("Customer with ID %d does not exist", id))
			}
			return storeError(c, err, "An error occurred while fetching customer orders")
		}
		return c.JSON(http.StatusOK, resp)
	})
}
