package main

import (
	"errors"
	"net/http"

	"CustomerAPI/internal/apperr"
	"CustomerAPI/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// errorBody is the uniform error envelope. Status mirrors the HTTP code for
// client backward-compatibility.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func jsonError(c echo.Context, status int, title, message string) error {
	return c.JSON(status, errorBody{Error: title, Message: message, Status: status})
}

// storeError converts a store-layer failure into the 500 envelope. Failures
// to obtain a connection report as a database error; anything else is a
// generic internal error with a per-route message. Driver text never reaches
// the client.
func storeError(c echo.Context, err error, message string) error {
	if errors.Is(err, apperr.ErrStoreUnavailable) {
		log.Error().Err(err).
			Str("request_id", middleware.RequestID(c)).
			Str("path", c.Request().URL.Path).
			Msg("database connection failed")
		return jsonError(c, http.StatusInternalServerError, "Database Error", "Unable to connect to database")
	}
	log.Error().Err(err).
		Str("request_id", middleware.RequestID(c)).
		Str("path", c.Request().URL.Path).
		Msg("store query failed")
	return jsonError(c, http.StatusInternalServerError, "Internal Server Error", message)
}

// httpErrorHandler renders echo-level errors (unmatched routes, binding
// failures, recovered panics) with the same envelope the handlers use.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
	}

	body := errorBody{Error: http.StatusText(status), Message: "Request failed", Status: status}
	switch status {
	case http.StatusNotFound:
		body.Error = "Not Found"
		body.Message = "The requested resource was not found"
	case http.StatusBadRequest:
		body.Error = "Bad Request"
		body.Message = "Invalid request parameters"
	case http.StatusInternalServerError:
		body.Error = "Internal Server Error"
		body.Message = "An unexpected error occurred"
		log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
	}

	if jerr := c.JSON(status, body); jerr != nil {
		log.Error().Err(jerr).Msg("failed to write error response")
	}
}
