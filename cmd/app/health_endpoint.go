package main

import (
	"context"
	"net/http"
	"time"

	"CustomerAPI/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type healthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// registerHealthRoutes mounts the store reachability probe. A failed probe
// still answers 200; the body carries the disconnected state.
func registerHealthRoutes(api *echo.Group, probe func(context.Context) error) {
	api.GET("/health", func(c echo.Context) error {
		dbStatus := "connected"
		if err := probe(c.Request().Context()); err != nil {
			log.Warn().Err(err).Msg("health probe failed")
			dbStatus = "disconnected"
		}
		return c.JSON(http.StatusOK, healthResponse{
			Status:    "healthy",
			Database:  dbStatus,
			Timestamp: time.Now().Format("2006-01-02T15:04:05"),
			Version:   config.APIVersion,
		})
	})
}
