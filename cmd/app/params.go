package main

import (
	"fmt"
	"net/http"
	"strconv"

	"CustomerAPI/internal/config"
	"CustomerAPI/internal/model"

	"github.com/labstack/echo/v4"
)

// requestError is a rejected request parameter, ready to render.
type requestError struct {
	status  int
	title   string
	message string
}

func (e *requestError) respond(c echo.Context) error {
	return jsonError(c, e.status, e.title, e.message)
}

// pageParams validates page and limit. Absent values take the configured
// defaults; malformed or out-of-range values are rejected.
func pageParams(c echo.Context, cfg *config.Config) (page, limit int, rerr *requestError) {
	page = model.MinPage
	if raw := c.QueryParam("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < model.MinPage {
			return 0, 0, &requestError{
				status:  http.StatusBadRequest,
				title:   "Invalid page number",
				message: "Page number must be 1 or greater",
			}
		}
		page = n
	}

	limit = cfg.DefaultPageSize
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < model.MinLimit || n > cfg.MaxPageSize {
			return 0, 0, &requestError{
				status:  http.StatusBadRequest,
				title:   "Invalid limit",
				message: fmt.Sprintf("Limit must be between 1 and %d", cfg.MaxPageSize),
			}
		}
		limit = n
	}

	return page, limit, nil
}

// pathID validates the numeric path segment. A non-numeric segment is a
// routing miss (404), a non-positive number a validation failure (400); the
// asymmetry is part of the public contract.
func pathID(c echo.Context, resource string) (int64, *requestError) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, &requestError{
			status:  http.StatusNotFound,
			title:   "Not Found",
			message: "The requested resource was not found",
		}
	}
	if id <= 0 {
		return 0, &requestError{
			status:  http.StatusBadRequest,
			title:   fmt.Sprintf("Invalid %s ID", resource),
			message: fmt.Sprintf("%s ID must be a positive integer", resource),
		}
	}
	return id, nil
}
